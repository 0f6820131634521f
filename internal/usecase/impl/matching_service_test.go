package impl

import (
	"context"
	"testing"

	"fretex/internal/domain/entity"
	domainerrors "fretex/internal/domain/errors"
	"fretex/internal/domain/repository"
	mockRepo "fretex/internal/mocks/repository"
	"fretex/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type matchingMocks struct {
	tripRepo         *mockRepo.MockTripRepository
	freightRepo      *mockRepo.MockFreightRepository
	matchRequestRepo *mockRepo.MockMatchRequestRepository
}

func newMatchingService(t *testing.T) (usecase.MatchingUsecase, *matchingMocks) {
	t.Helper()

	mocks := &matchingMocks{
		tripRepo:         mockRepo.NewMockTripRepository(t),
		freightRepo:      mockRepo.NewMockFreightRepository(t),
		matchRequestRepo: mockRepo.NewMockMatchRequestRepository(t),
	}

	service := NewMatchingService(MatchingServiceParams{
		TripRepo:         mocks.tripRepo,
		FreightRepo:      mocks.freightRepo,
		MatchRequestRepo: mocks.matchRequestRepo,
		Logger:           testLogger(),
	})

	return service, mocks
}

// equatorTrip follows the equator from lng 0 to lng 1, roughly 111 km.
func equatorTrip(driverID uuid.UUID) *entity.Trip {
	return &entity.Trip{
		ID:              uuid.New(),
		DriverID:        driverID,
		Origin:          orb.Point{0, 0},
		Destination:     orb.Point{1, 0},
		Profile:         "driving-car",
		CorridorRadiusM: 50000,
		Route:           orb.LineString{{0, 0}, {1, 0}},
		RouteDistanceM:  111320,
		Status:          entity.TripStatusActive,
	}
}

func freightAt(pickup, dropoff orb.Point) *entity.Freight {
	return &entity.Freight{
		ID:      uuid.New(),
		Pickup:  pickup,
		Dropoff: dropoff,
		Status:  entity.FreightStatusOpen,
	}
}

func TestMatchingService_ComputeMatches_TripNotFound(t *testing.T) {
	service, mocks := newMatchingService(t)
	ctx := context.Background()
	tripID := uuid.New()

	mocks.tripRepo.EXPECT().
		FindByID(ctx, tripID).
		Return(nil, repository.ErrTripNotFound)

	result, err := service.ComputeMatches(ctx, uuid.New(), usecase.ComputeMatchesInput{TripID: tripID})
	assert.Nil(t, result)
	assert.ErrorIs(t, err, domainerrors.ErrTripNotFound)
}

func TestMatchingService_ComputeMatches_OwnershipViolation(t *testing.T) {
	service, mocks := newMatchingService(t)
	ctx := context.Background()
	trip := equatorTrip(uuid.New())

	mocks.tripRepo.EXPECT().
		FindByID(ctx, trip.ID).
		Return(trip, nil)

	result, err := service.ComputeMatches(ctx, uuid.New(), usecase.ComputeMatchesInput{TripID: trip.ID})
	assert.Nil(t, result)
	assert.ErrorIs(t, err, domainerrors.ErrOwnershipViolation)
}

func TestMatchingService_ComputeMatches_RouteNotReady(t *testing.T) {
	service, mocks := newMatchingService(t)
	ctx := context.Background()
	driverID := uuid.New()
	trip := equatorTrip(driverID)
	trip.Route = nil

	mocks.tripRepo.EXPECT().
		FindByID(ctx, trip.ID).
		Return(trip, nil)

	result, err := service.ComputeMatches(ctx, driverID, usecase.ComputeMatchesInput{TripID: trip.ID})
	assert.Nil(t, result)
	assert.ErrorIs(t, err, domainerrors.ErrRouteNotReady)
}

func TestMatchingService_ComputeMatches_Pipeline(t *testing.T) {
	service, mocks := newMatchingService(t)
	ctx := context.Background()
	driverID := uuid.New()
	trip := equatorTrip(driverID)

	// Sits exactly on the route, in travel direction.
	onRoute := freightAt(orb.Point{0.2, 0}, orb.Point{0.8, 0})
	// Offset roughly 11 km north, still inside the 50 km corridor.
	nearRoute := freightAt(orb.Point{0.3, 0.1}, orb.Point{0.7, 0.1})
	// Pickup after dropoff along the route.
	backwards := freightAt(orb.Point{0.8, 0}, orb.Point{0.2, 0})
	// Roughly 111 km off the route, outside the corridor.
	farAway := freightAt(orb.Point{0.5, 1}, orb.Point{0.6, 1})
	// Malformed latitude, must be skipped and counted.
	malformed := freightAt(orb.Point{0.5, 95}, orb.Point{0.6, 0})

	mocks.tripRepo.EXPECT().
		FindByID(ctx, trip.ID).
		Return(trip, nil)

	mocks.freightRepo.EXPECT().
		FindOpenWithinBound(ctx, mock.AnythingOfType("orb.Bound"), usecase.DefaultCandidateLimit).
		Return([]*entity.Freight{nearRoute, onRoute, backwards, farAway, malformed}, nil)

	mocks.matchRequestRepo.EXPECT().
		LatestStatusByTrip(ctx, trip.ID).
		Return(map[uuid.UUID]entity.MatchRequestStatus{
			onRoute.ID: entity.MatchRequestStatusPending,
		}, nil)

	result, err := service.ComputeMatches(ctx, driverID, usecase.ComputeMatchesInput{TripID: trip.ID})
	require.NoError(t, err)
	require.Len(t, result.Matches, 2)
	assert.Equal(t, 1, result.SkippedCount)

	best := result.Matches[0]
	assert.Equal(t, onRoute.ID, best.FreightID)
	assert.InDelta(t, 1.0, best.Score, 1e-9)
	assert.InDelta(t, 0.2, best.PickupPos, 1e-6)
	assert.InDelta(t, 0.8, best.DropoffPos, 1e-6)
	assert.Equal(t, entity.MatchRequestStatusPending, best.RequestStatus)

	second := result.Matches[1]
	assert.Equal(t, nearRoute.ID, second.FreightID)
	assert.Less(t, second.Score, best.Score)
	assert.Greater(t, second.Score, 0.0)
	assert.Empty(t, second.RequestStatus)
	assert.LessOrEqual(t, second.PickupPos, second.DropoffPos)
}

func TestMatchingService_ComputeMatches_LimitTruncates(t *testing.T) {
	service, mocks := newMatchingService(t)
	ctx := context.Background()
	driverID := uuid.New()
	trip := equatorTrip(driverID)

	onRoute := freightAt(orb.Point{0.2, 0}, orb.Point{0.8, 0})
	nearRoute := freightAt(orb.Point{0.3, 0.1}, orb.Point{0.7, 0.1})

	mocks.tripRepo.EXPECT().
		FindByID(ctx, trip.ID).
		Return(trip, nil)

	mocks.freightRepo.EXPECT().
		FindOpenWithinBound(ctx, mock.AnythingOfType("orb.Bound"), usecase.DefaultCandidateLimit).
		Return([]*entity.Freight{nearRoute, onRoute}, nil)

	mocks.matchRequestRepo.EXPECT().
		LatestStatusByTrip(ctx, trip.ID).
		Return(nil, nil)

	result, err := service.ComputeMatches(ctx, driverID, usecase.ComputeMatchesInput{TripID: trip.ID, Limit: 1})
	require.NoError(t, err)
	require.Len(t, result.Matches, 1)
	assert.Equal(t, onRoute.ID, result.Matches[0].FreightID)
}

func TestRankMatches_Deterministic(t *testing.T) {
	idA := uuid.MustParse("11111111-1111-1111-1111-111111111111")
	idB := uuid.MustParse("22222222-2222-2222-2222-222222222222")

	matches := []entity.Match{
		{FreightID: idB, Score: 0.5, PickupDistM: 100, DropoffDistM: 100},
		{FreightID: idA, Score: 0.5, PickupDistM: 100, DropoffDistM: 100},
		{FreightID: uuid.New(), Score: 0.9, PickupDistM: 10, DropoffDistM: 10},
		{FreightID: uuid.New(), Score: 0.5, PickupDistM: 50, DropoffDistM: 50},
	}

	rankMatches(matches)

	// Highest score first.
	assert.InDelta(t, 0.9, matches[0].Score, 1e-9)
	// Equal scores fall back to combined distance.
	assert.InDelta(t, 100.0, matches[1].PickupDistM+matches[1].DropoffDistM, 1e-9)
	// Equal distances fall back to freight ID ordering.
	assert.Equal(t, idA, matches[2].FreightID)
	assert.Equal(t, idB, matches[3].FreightID)
}

func TestMatchScore(t *testing.T) {
	assert.InDelta(t, 1.0, matchScore(0, 0, 50000), 1e-9)
	assert.InDelta(t, 0.5, matchScore(25000, 25000, 50000), 1e-9)
	assert.Greater(t, matchScore(100, 100, 50000), matchScore(200, 200, 50000))
}

func TestResolveRadius_Clamping(t *testing.T) {
	trip := &entity.Trip{CorridorRadiusM: 50000}

	assert.InDelta(t, 50000, resolveRadius(trip, 0), 1e-9)
	assert.InDelta(t, 30000, resolveRadius(trip, 30000), 1e-9)
	assert.InDelta(t, entity.MinCorridorRadiusM, resolveRadius(trip, 1), 1e-9)
	assert.InDelta(t, entity.MaxCorridorRadiusM, resolveRadius(trip, 1e9), 1e-9)
}

func TestResolveLimit_Clamping(t *testing.T) {
	assert.Equal(t, usecase.DefaultMatchLimit, resolveLimit(0))
	assert.Equal(t, 10, resolveLimit(10))
	assert.Equal(t, usecase.MaxMatchLimit, resolveLimit(10000))
}
