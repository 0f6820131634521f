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

	"fretex/internal/domain/constants"
	"fretex/internal/domain/entity"
	domainerrors "fretex/internal/domain/errors"
	"fretex/internal/domain/repository"
	"fretex/internal/domain/service"
	"fretex/internal/geo"
	"fretex/internal/usecase"
)

// TripServiceParams contains the dependencies for the trip service.
type TripServiceParams struct {
	fx.In

	TripRepo      repository.TripRepository
	RouteProvider service.RouteProvider
	Logger        *slog.Logger
}

type tripService struct {
	tripRepo      repository.TripRepository
	routeProvider service.RouteProvider
	logger        *slog.Logger
}

// NewTripService creates the trip planning service.
func NewTripService(params TripServiceParams) usecase.TripUsecase {
	return &tripService{
		tripRepo:      params.TripRepo,
		routeProvider: params.RouteProvider,
		logger:        params.Logger,
	}
}

// CreateTrip plans a trip and computes its route. The trip is persisted even
// when route computation fails; matching then reports the route as not ready
// until an update recomputes it.
func (s *tripService) CreateTrip(ctx context.Context, driverID uuid.UUID, input usecase.CreateTripInput) (*entity.Trip, error) {
	if err := validateEndpoints(input.Origin, input.Destination); err != nil {
		return nil, err
	}

	profile, err := resolveProfile(input.Profile)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	trip := &entity.Trip{
		ID:       uuid.New(),
		DriverID: driverID,

		OriginLabel:      input.Origin.Label,
		Origin:           orb.Point{input.Origin.Lng, input.Origin.Lat},
		DestinationLabel: input.Destination.Label,
		Destination:      orb.Point{input.Destination.Lng, input.Destination.Lat},

		Profile:         profile,
		CorridorRadiusM: resolveCorridorRadius(input.CorridorRadiusM),
		DepartAt:        input.DepartAt,
		Notes:           input.Notes,

		Status:    entity.TripStatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.attachRoute(ctx, trip); err != nil {
		s.logger.WarnContext(ctx, "route computation failed, trip saved without route",
			slog.String("trip_id", trip.ID.String()),
			slog.Any("error", err))
	}

	if err := s.tripRepo.Create(ctx, trip); err != nil {
		return nil, fmt.Errorf("create trip: %w", err)
	}

	s.logger.InfoContext(ctx, "trip created",
		slog.String("trip_id", trip.ID.String()),
		slog.String("driver_id", driverID.String()),
		slog.Bool("has_route", trip.HasRoute()))

	return trip, nil
}

func (s *tripService) GetTrip(ctx context.Context, id uuid.UUID) (*entity.Trip, error) {
	trip, err := s.tripRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrTripNotFound) {
			return nil, domainerrors.ErrTripNotFound
		}

		return nil, fmt.Errorf("find trip: %w", err)
	}

	return trip, nil
}

func (s *tripService) ListTrips(ctx context.Context, driverID uuid.UUID, input usecase.ListTripsInput) ([]*entity.Trip, error) {
	filter := repository.TripListFilter{
		DriverID: &driverID,
		Status:   input.Status,
		Query:    input.Query,
		Limit:    input.Limit,
	}
	if filter.Limit <= 0 {
		filter.Limit = usecase.DefaultMatchLimit
	}

	trips, err := s.tripRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list trips: %w", err)
	}

	return trips, nil
}

// UpdateTrip updates a trip and recomputes the route when the origin,
// destination or profile changed. A failed recomputation aborts the update
// so the stored route always matches the stored endpoints.
func (s *tripService) UpdateTrip(ctx context.Context, driverID, id uuid.UUID, input usecase.UpdateTripInput) (*entity.Trip, error) {
	trip, err := s.ownedTrip(ctx, driverID, id)
	if err != nil {
		return nil, err
	}

	if !trip.IsActive() {
		return nil, domainerrors.ErrTripUnavailable
	}

	if err := validateEndpoints(input.Origin, input.Destination); err != nil {
		return nil, err
	}

	profile, err := resolveProfile(input.Profile)
	if err != nil {
		return nil, err
	}

	newOrigin := orb.Point{input.Origin.Lng, input.Origin.Lat}
	newDestination := orb.Point{input.Destination.Lng, input.Destination.Lat}
	needsRoute := !trip.HasRoute() ||
		trip.Origin != newOrigin ||
		trip.Destination != newDestination ||
		trip.Profile != profile

	trip.OriginLabel = input.Origin.Label
	trip.Origin = newOrigin
	trip.DestinationLabel = input.Destination.Label
	trip.Destination = newDestination
	trip.Profile = profile
	trip.CorridorRadiusM = resolveCorridorRadius(input.CorridorRadiusM)
	trip.DepartAt = input.DepartAt
	trip.Notes = input.Notes
	trip.UpdatedAt = time.Now()

	if needsRoute {
		if err := s.attachRoute(ctx, trip); err != nil {
			return nil, domainerrors.ErrRouteComputationFailed.WithCause(err)
		}
	}

	if err := s.tripRepo.Update(ctx, trip); err != nil {
		return nil, fmt.Errorf("update trip: %w", err)
	}

	return trip, nil
}

func (s *tripService) CancelTrip(ctx context.Context, driverID, id uuid.UUID) (*entity.Trip, error) {
	trip, err := s.ownedTrip(ctx, driverID, id)
	if err != nil {
		return nil, err
	}

	if !trip.IsActive() {
		return trip, nil
	}

	trip.Cancel(time.Now())
	if err := s.tripRepo.Update(ctx, trip); err != nil {
		return nil, fmt.Errorf("cancel trip: %w", err)
	}

	s.logger.InfoContext(ctx, "trip cancelled",
		slog.String("trip_id", trip.ID.String()))

	return trip, nil
}

// PreviewRoute computes a route for an ordered waypoint list without
// persisting anything.
func (s *tripService) PreviewRoute(ctx context.Context, profile string, waypoints []orb.Point) (*service.Route, error) {
	resolved, err := resolveProfile(profile)
	if err != nil {
		return nil, err
	}

	if len(waypoints) < 2 {
		return nil, domainerrors.ErrInvalidGeometry
	}
	for _, wp := range waypoints {
		if !geo.IsValidCoordinate(wp.Lat(), wp.Lon()) {
			return nil, domainerrors.ErrInvalidGeometry
		}
	}

	route, err := s.routeProvider.ComputeRoute(ctx, resolved, waypoints)
	if err != nil {
		return nil, domainerrors.ErrRouteComputationFailed.WithCause(err)
	}

	return route, nil
}

// attachRoute computes the origin-to-destination route and stores it on the
// trip.
func (s *tripService) attachRoute(ctx context.Context, trip *entity.Trip) error {
	route, err := s.routeProvider.ComputeRoute(ctx, trip.Profile, []orb.Point{trip.Origin, trip.Destination})
	if err != nil {
		return fmt.Errorf("compute route: %w", err)
	}

	trip.Route = route.Geometry
	trip.RouteDistanceM = route.DistanceM
	trip.RouteDurationS = route.DurationS

	return nil
}

// ownedTrip loads a trip and verifies the driver owns it.
func (s *tripService) ownedTrip(ctx context.Context, driverID, id uuid.UUID) (*entity.Trip, error) {
	trip, err := s.tripRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrTripNotFound) {
			return nil, domainerrors.ErrTripNotFound
		}

		return nil, fmt.Errorf("find trip: %w", err)
	}

	if trip.DriverID != driverID {
		return nil, domainerrors.ErrOwnershipViolation
	}

	return trip, nil
}

func resolveProfile(profile string) (string, error) {
	switch profile {
	case "":
		return constants.ProfileCar, nil
	case constants.ProfileCar, constants.ProfileHGV:
		return profile, nil
	default:
		return "", domainerrors.ValidationError(map[string]any{
			"profile": "perfil de roteamento desconhecido",
		})
	}
}

func resolveCorridorRadius(radius float64) float64 {
	if radius <= 0 {
		return entity.DefaultCorridorRadiusM
	}
	if radius < entity.MinCorridorRadiusM {
		return entity.MinCorridorRadiusM
	}
	if radius > entity.MaxCorridorRadiusM {
		return entity.MaxCorridorRadiusM
	}

	return radius
}
