package impl

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"go.uber.org/fx"

	"fretex/internal/domain/entity"
	domainerrors "fretex/internal/domain/errors"
	"fretex/internal/domain/repository"
	"fretex/internal/geo"
	"fretex/internal/usecase"
)

// FreightServiceParams contains the dependencies for the freight service.
type FreightServiceParams struct {
	fx.In

	FreightRepo repository.FreightRepository
	Logger      *slog.Logger
}

type freightService struct {
	freightRepo repository.FreightRepository
	logger      *slog.Logger
}

// NewFreightService creates the freight publication service.
func NewFreightService(params FreightServiceParams) usecase.FreightUsecase {
	return &freightService{
		freightRepo: params.FreightRepo,
		logger:      params.Logger,
	}
}

func (s *freightService) CreateFreight(ctx context.Context, shipperID uuid.UUID, input usecase.CreateFreightInput) (*entity.Freight, error) {
	if err := validateEndpoints(input.Pickup, input.Dropoff); err != nil {
		return nil, err
	}

	currency := input.Currency
	if currency == "" {
		currency = entity.DefaultCurrency
	}

	now := time.Now()
	freight := &entity.Freight{
		ID:        uuid.New(),
		ShipperID: shipperID,

		PickupLabel:   input.Pickup.Label,
		Pickup:        orb.Point{input.Pickup.Lng, input.Pickup.Lat},
		PickupRadiusM: nonNegative(input.Pickup.RadiusM),

		DropoffLabel:   input.Dropoff.Label,
		Dropoff:        orb.Point{input.Dropoff.Lng, input.Dropoff.Lat},
		DropoffRadiusM: nonNegative(input.Dropoff.RadiusM),

		Notes: input.Notes,

		DistanceM:         input.DistanceM,
		DurationS:         input.DurationS,
		PriceTotalCents:   input.PriceTotalCents,
		DriverPayoutCents: input.DriverPayoutCents,
		Currency:          currency,

		Status:    entity.FreightStatusOpen,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.freightRepo.Create(ctx, freight); err != nil {
		return nil, fmt.Errorf("create freight: %w", err)
	}

	s.logger.InfoContext(ctx, "freight created",
		slog.String("freight_id", freight.ID.String()),
		slog.String("shipper_id", shipperID.String()))

	return freight, nil
}

func (s *freightService) GetFreight(ctx context.Context, id uuid.UUID) (*entity.Freight, error) {
	freight, err := s.freightRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrFreightNotFound) {
			return nil, domainerrors.ErrFreightNotFound
		}

		return nil, fmt.Errorf("find freight: %w", err)
	}

	return freight, nil
}

func (s *freightService) ListFreights(ctx context.Context, shipperID uuid.UUID, input usecase.ListFreightsInput) ([]*entity.Freight, error) {
	filter := repository.FreightListFilter{
		ShipperID: &shipperID,
		Status:    input.Status,
		Query:     input.Query,
		Limit:     input.Limit,
	}
	if filter.Limit <= 0 {
		filter.Limit = usecase.DefaultMatchLimit
	}

	freights, err := s.freightRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list freights: %w", err)
	}

	return freights, nil
}

func (s *freightService) UpdateFreight(ctx context.Context, shipperID, id uuid.UUID, input usecase.UpdateFreightInput) (*entity.Freight, error) {
	freight, err := s.ownedFreight(ctx, shipperID, id)
	if err != nil {
		return nil, err
	}

	if err := validateEndpoints(input.Pickup, input.Dropoff); err != nil {
		return nil, err
	}

	freight.PickupLabel = input.Pickup.Label
	freight.Pickup = orb.Point{input.Pickup.Lng, input.Pickup.Lat}
	freight.PickupRadiusM = nonNegative(input.Pickup.RadiusM)
	freight.DropoffLabel = input.Dropoff.Label
	freight.Dropoff = orb.Point{input.Dropoff.Lng, input.Dropoff.Lat}
	freight.DropoffRadiusM = nonNegative(input.Dropoff.RadiusM)
	freight.Notes = input.Notes
	freight.UpdatedAt = time.Now()

	if err := s.freightRepo.Update(ctx, freight); err != nil {
		return nil, fmt.Errorf("update freight: %w", err)
	}

	return freight, nil
}

func (s *freightService) CloseFreight(ctx context.Context, shipperID, id uuid.UUID) (*entity.Freight, error) {
	freight, err := s.ownedFreight(ctx, shipperID, id)
	if err != nil {
		return nil, err
	}

	if !freight.IsOpen() {
		return freight, nil
	}

	freight.Close(time.Now())
	if err := s.freightRepo.Update(ctx, freight); err != nil {
		return nil, fmt.Errorf("close freight: %w", err)
	}

	s.logger.InfoContext(ctx, "freight closed",
		slog.String("freight_id", freight.ID.String()))

	return freight, nil
}

// ownedFreight loads a freight and verifies the shipper owns it.
func (s *freightService) ownedFreight(ctx context.Context, shipperID, id uuid.UUID) (*entity.Freight, error) {
	freight, err := s.freightRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrFreightNotFound) {
			return nil, domainerrors.ErrFreightNotFound
		}

		return nil, fmt.Errorf("find freight: %w", err)
	}

	if freight.ShipperID != shipperID {
		return nil, domainerrors.ErrOwnershipViolation
	}

	return freight, nil
}

// validateEndpoints checks both client-supplied coordinates.
func validateEndpoints(pickup, dropoff usecase.GeoPointInput) error {
	if !geo.IsValidCoordinate(pickup.Lat, pickup.Lng) ||
		!geo.IsValidCoordinate(dropoff.Lat, dropoff.Lng) {
		return domainerrors.ErrInvalidGeometry
	}

	return nil
}

func nonNegative(v float64) float64 {
	if v < 0 {
		return 0
	}

	return v
}
