package impl

import (
	"context"
	"testing"

	"fretex/internal/domain/entity"
	domainerrors "fretex/internal/domain/errors"
	"fretex/internal/domain/repository"
	"fretex/internal/domain/service"
	mockRepo "fretex/internal/mocks/repository"
	mockSvc "fretex/internal/mocks/service"
	"fretex/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type tripMocks struct {
	tripRepo      *mockRepo.MockTripRepository
	routeProvider *mockSvc.MockRouteProvider
}

func newTripService(t *testing.T) (usecase.TripUsecase, *tripMocks) {
	t.Helper()

	mocks := &tripMocks{
		tripRepo:      mockRepo.NewMockTripRepository(t),
		routeProvider: mockSvc.NewMockRouteProvider(t),
	}

	service := NewTripService(TripServiceParams{
		TripRepo:      mocks.tripRepo,
		RouteProvider: mocks.routeProvider,
		Logger:        testLogger(),
	})

	return service, mocks
}

func tripInput() usecase.CreateTripInput {
	return usecase.CreateTripInput{
		Origin:      usecase.GeoPointInput{Label: "São Paulo", Lat: -23.55, Lng: -46.63},
		Destination: usecase.GeoPointInput{Label: "Curitiba", Lat: -25.43, Lng: -49.27},
	}
}

func TestTripService_CreateTrip_Success(t *testing.T) {
	svc, mocks := newTripService(t)
	ctx := context.Background()
	driverID := uuid.New()

	route := &service.Route{
		Geometry:  orb.LineString{{-46.63, -23.55}, {-49.27, -25.43}},
		DistanceM: 408000,
		DurationS: 18600,
	}

	mocks.routeProvider.EXPECT().
		ComputeRoute(ctx, "driving-car", mock.AnythingOfType("[]orb.Point")).
		Return(route, nil)

	mocks.tripRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Trip")).
		Return(nil)

	trip, err := svc.CreateTrip(ctx, driverID, tripInput())
	require.NoError(t, err)
	assert.Equal(t, driverID, trip.DriverID)
	assert.Equal(t, "driving-car", trip.Profile)
	assert.InDelta(t, entity.DefaultCorridorRadiusM, trip.CorridorRadiusM, 1e-9)
	assert.Equal(t, entity.TripStatusActive, trip.Status)
	assert.True(t, trip.HasRoute())
	assert.InDelta(t, 408000, trip.RouteDistanceM, 1e-9)
}

func TestTripService_CreateTrip_RouteFailureStillPersists(t *testing.T) {
	svc, mocks := newTripService(t)
	ctx := context.Background()

	mocks.routeProvider.EXPECT().
		ComputeRoute(ctx, "driving-car", mock.AnythingOfType("[]orb.Point")).
		Return(nil, errors.New("routing service unavailable"))

	mocks.tripRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Trip")).
		Return(nil)

	trip, err := svc.CreateTrip(ctx, uuid.New(), tripInput())
	require.NoError(t, err)
	assert.False(t, trip.HasRoute())
}

func TestTripService_CreateTrip_InvalidGeometry(t *testing.T) {
	svc, _ := newTripService(t)

	input := tripInput()
	input.Origin.Lat = 123

	trip, err := svc.CreateTrip(context.Background(), uuid.New(), input)
	assert.Nil(t, trip)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidGeometry)
}

func TestTripService_CreateTrip_UnknownProfile(t *testing.T) {
	svc, _ := newTripService(t)

	input := tripInput()
	input.Profile = "flying-carpet"

	trip, err := svc.CreateTrip(context.Background(), uuid.New(), input)
	assert.Nil(t, trip)

	appErr, ok := domainerrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), appErr.ErrorCode())
}

func TestTripService_UpdateTrip_RecomputeFailureAborts(t *testing.T) {
	svc, mocks := newTripService(t)
	ctx := context.Background()
	driverID := uuid.New()
	trip := equatorTrip(driverID)

	mocks.tripRepo.EXPECT().
		FindByID(ctx, trip.ID).
		Return(trip, nil)

	mocks.routeProvider.EXPECT().
		ComputeRoute(ctx, "driving-car", mock.AnythingOfType("[]orb.Point")).
		Return(nil, errors.New("routing service unavailable"))

	input := usecase.UpdateTripInput{
		Origin:      usecase.GeoPointInput{Lat: 0, Lng: 0},
		Destination: usecase.GeoPointInput{Lat: 0, Lng: 2},
	}

	updated, err := svc.UpdateTrip(ctx, driverID, trip.ID, input)
	assert.Nil(t, updated)

	appErr, ok := domainerrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, domainerrors.ErrRouteComputationFailed.ErrorCode(), appErr.ErrorCode())
}

func TestTripService_UpdateTrip_SkipsRecomputeWhenUnchanged(t *testing.T) {
	svc, mocks := newTripService(t)
	ctx := context.Background()
	driverID := uuid.New()
	trip := equatorTrip(driverID)

	mocks.tripRepo.EXPECT().
		FindByID(ctx, trip.ID).
		Return(trip, nil)

	mocks.tripRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Trip")).
		Return(nil)

	input := usecase.UpdateTripInput{
		Origin:          usecase.GeoPointInput{Lat: 0, Lng: 0},
		Destination:     usecase.GeoPointInput{Lat: 0, Lng: 1},
		Profile:         "driving-car",
		CorridorRadiusM: 30000,
	}

	updated, err := svc.UpdateTrip(ctx, driverID, trip.ID, input)
	require.NoError(t, err)
	assert.InDelta(t, 30000, updated.CorridorRadiusM, 1e-9)
	assert.True(t, updated.HasRoute())
}

func TestTripService_UpdateTrip_NotOwner(t *testing.T) {
	svc, mocks := newTripService(t)
	ctx := context.Background()
	trip := equatorTrip(uuid.New())

	mocks.tripRepo.EXPECT().
		FindByID(ctx, trip.ID).
		Return(trip, nil)

	updated, err := svc.UpdateTrip(ctx, uuid.New(), trip.ID, usecase.UpdateTripInput{})
	assert.Nil(t, updated)
	assert.ErrorIs(t, err, domainerrors.ErrOwnershipViolation)
}

func TestTripService_CancelTrip_Idempotent(t *testing.T) {
	svc, mocks := newTripService(t)
	ctx := context.Background()
	driverID := uuid.New()
	trip := equatorTrip(driverID)
	trip.Status = entity.TripStatusCancelled

	mocks.tripRepo.EXPECT().
		FindByID(ctx, trip.ID).
		Return(trip, nil)

	cancelled, err := svc.CancelTrip(ctx, driverID, trip.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.TripStatusCancelled, cancelled.Status)
}

func TestTripService_GetTrip_NotFound(t *testing.T) {
	svc, mocks := newTripService(t)
	ctx := context.Background()
	tripID := uuid.New()

	mocks.tripRepo.EXPECT().
		FindByID(ctx, tripID).
		Return(nil, repository.ErrTripNotFound)

	trip, err := svc.GetTrip(ctx, tripID)
	assert.Nil(t, trip)
	assert.ErrorIs(t, err, domainerrors.ErrTripNotFound)
}

func TestTripService_PreviewRoute_TooFewWaypoints(t *testing.T) {
	svc, _ := newTripService(t)

	route, err := svc.PreviewRoute(context.Background(), "driving-hgv", []orb.Point{{-46.63, -23.55}})
	assert.Nil(t, route)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidGeometry)
}
