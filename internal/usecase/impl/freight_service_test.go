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

func newFreightService(t *testing.T) (usecase.FreightUsecase, *mockRepo.MockFreightRepository) {
	t.Helper()

	freightRepo := mockRepo.NewMockFreightRepository(t)
	service := NewFreightService(FreightServiceParams{
		FreightRepo: freightRepo,
		Logger:      testLogger(),
	})

	return service, freightRepo
}

func i64(v int64) *int64 { return &v }

func freightInput() usecase.CreateFreightInput {
	return usecase.CreateFreightInput{
		Pickup:  usecase.GeoPointInput{Label: "Campinas", Lat: -22.9, Lng: -47.06, RadiusM: 500},
		Dropoff: usecase.GeoPointInput{Label: "Santos", Lat: -23.96, Lng: -46.33},

		DistanceM:         i64(152000),
		DurationS:         i64(7200),
		PriceTotalCents:   i64(180000),
		DriverPayoutCents: i64(150000),
	}
}

func TestFreightService_CreateFreight_Defaults(t *testing.T) {
	svc, freightRepo := newFreightService(t)
	ctx := context.Background()
	shipperID := uuid.New()

	freightRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Freight")).
		Return(nil)

	freight, err := svc.CreateFreight(ctx, shipperID, freightInput())
	require.NoError(t, err)
	assert.Equal(t, shipperID, freight.ShipperID)
	assert.Equal(t, entity.FreightStatusOpen, freight.Status)
	assert.Equal(t, entity.DefaultCurrency, freight.Currency)
	assert.InDelta(t, 500, freight.PickupRadiusM, 1e-9)
	assert.InDelta(t, -22.9, freight.Pickup.Lat(), 1e-9)
	assert.InDelta(t, -47.06, freight.Pickup.Lon(), 1e-9)
}

func TestFreightService_CreateFreight_InvalidGeometry(t *testing.T) {
	svc, _ := newFreightService(t)

	input := freightInput()
	input.Dropoff.Lng = 200

	freight, err := svc.CreateFreight(context.Background(), uuid.New(), input)
	assert.Nil(t, freight)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidGeometry)
}

func TestFreightService_GetFreight_NotFound(t *testing.T) {
	svc, freightRepo := newFreightService(t)
	ctx := context.Background()
	freightID := uuid.New()

	freightRepo.EXPECT().
		FindByID(ctx, freightID).
		Return(nil, repository.ErrFreightNotFound)

	freight, err := svc.GetFreight(ctx, freightID)
	assert.Nil(t, freight)
	assert.ErrorIs(t, err, domainerrors.ErrFreightNotFound)
}

func TestFreightService_ListFreights_DefaultLimit(t *testing.T) {
	svc, freightRepo := newFreightService(t)
	ctx := context.Background()
	shipperID := uuid.New()

	freightRepo.EXPECT().
		List(ctx, mock.MatchedBy(func(filter repository.FreightListFilter) bool {
			return filter.Limit == usecase.DefaultMatchLimit && *filter.ShipperID == shipperID
		})).
		Return([]*entity.Freight{}, nil)

	freights, err := svc.ListFreights(ctx, shipperID, usecase.ListFreightsInput{})
	require.NoError(t, err)
	assert.Empty(t, freights)
}

func TestFreightService_UpdateFreight_NotOwner(t *testing.T) {
	svc, freightRepo := newFreightService(t)
	ctx := context.Background()
	freight := freightAt(orb.Point{-47.06, -22.9}, orb.Point{-46.33, -23.96})
	freight.ShipperID = uuid.New()

	freightRepo.EXPECT().
		FindByID(ctx, freight.ID).
		Return(freight, nil)

	input := usecase.UpdateFreightInput{
		Pickup:  usecase.GeoPointInput{Lat: -22.9, Lng: -47.06},
		Dropoff: usecase.GeoPointInput{Lat: -23.96, Lng: -46.33},
	}

	updated, err := svc.UpdateFreight(ctx, uuid.New(), freight.ID, input)
	assert.Nil(t, updated)
	assert.ErrorIs(t, err, domainerrors.ErrOwnershipViolation)
}

func TestFreightService_CloseFreight_Idempotent(t *testing.T) {
	svc, freightRepo := newFreightService(t)
	ctx := context.Background()
	shipperID := uuid.New()
	freight := freightAt(orb.Point{-47.06, -22.9}, orb.Point{-46.33, -23.96})
	freight.ShipperID = shipperID
	freight.Status = entity.FreightStatusClosed

	freightRepo.EXPECT().
		FindByID(ctx, freight.ID).
		Return(freight, nil)

	closed, err := svc.CloseFreight(ctx, shipperID, freight.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.FreightStatusClosed, closed.Status)
}
