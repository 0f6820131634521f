package impl

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/fx"

	"fretex/internal/domain/entity"
	domainerrors "fretex/internal/domain/errors"
	"fretex/internal/domain/repository"
	"fretex/internal/geo"
	"fretex/internal/usecase"
)

// MatchingServiceParams contains the dependencies for the matching service.
type MatchingServiceParams struct {
	fx.In

	TripRepo         repository.TripRepository
	FreightRepo      repository.FreightRepository
	MatchRequestRepo repository.MatchRequestRepository
	Logger           *slog.Logger
}

type matchingService struct {
	tripRepo         repository.TripRepository
	freightRepo      repository.FreightRepository
	matchRequestRepo repository.MatchRequestRepository
	logger           *slog.Logger
}

// NewMatchingService creates the corridor matching service.
func NewMatchingService(params MatchingServiceParams) usecase.MatchingUsecase {
	return &matchingService{
		tripRepo:         params.TripRepo,
		freightRepo:      params.FreightRepo,
		matchRequestRepo: params.MatchRequestRepo,
		logger:           params.Logger,
	}
}

// ComputeMatches runs the corridor matching pipeline for a trip: coarse
// bounding-box pre-filter over OPEN freights, per-candidate projection and
// scoring, then deterministic ranking.
func (s *matchingService) ComputeMatches(ctx context.Context, driverID uuid.UUID, input usecase.ComputeMatchesInput) (*entity.MatchResult, error) {
	trip, err := s.tripRepo.FindByID(ctx, input.TripID)
	if err != nil {
		if errors.Is(err, repository.ErrTripNotFound) {
			return nil, domainerrors.ErrTripNotFound
		}

		return nil, fmt.Errorf("find trip: %w", err)
	}

	if trip.DriverID != driverID {
		return nil, domainerrors.ErrOwnershipViolation
	}

	if !trip.HasRoute() {
		return nil, domainerrors.ErrRouteNotReady
	}

	radius := resolveRadius(trip, input.RadiusM)
	limit := resolveLimit(input.Limit)

	bound := geo.ExpandBound(trip.Route.Bound(), radius)
	candidates, err := s.freightRepo.FindOpenWithinBound(ctx, bound, usecase.DefaultCandidateLimit)
	if err != nil {
		return nil, fmt.Errorf("find candidate freights: %w", err)
	}

	statusByFreight, err := s.matchRequestRepo.LatestStatusByTrip(ctx, trip.ID)
	if err != nil {
		return nil, fmt.Errorf("load request statuses: %w", err)
	}

	matches, skipped := s.scoreCandidates(trip, candidates, radius, statusByFreight)
	rankMatches(matches)

	if len(matches) > limit {
		matches = matches[:limit]
	}

	s.logger.DebugContext(ctx, "matches computed",
		slog.String("trip_id", trip.ID.String()),
		slog.Int("candidates", len(candidates)),
		slog.Int("matches", len(matches)),
		slog.Int("skipped", skipped))

	return &entity.MatchResult{Matches: matches, SkippedCount: skipped}, nil
}

// scoreCandidates projects each candidate's endpoints onto the route and
// keeps those inside the corridor in travel direction. Candidates with
// malformed coordinates are skipped and counted, never failing the request.
func (s *matchingService) scoreCandidates(trip *entity.Trip, candidates []*entity.Freight, radius float64, statuses map[uuid.UUID]entity.MatchRequestStatus) ([]entity.Match, int) {
	matches := make([]entity.Match, 0, len(candidates))
	skipped := 0

	for _, freight := range candidates {
		if !geo.IsValidCoordinate(freight.Pickup.Lat(), freight.Pickup.Lon()) ||
			!geo.IsValidCoordinate(freight.Dropoff.Lat(), freight.Dropoff.Lon()) {
			skipped++

			continue
		}

		pickup, err := geo.ProjectOntoPolyline(freight.Pickup, trip.Route)
		if err != nil {
			skipped++

			continue
		}
		dropoff, err := geo.ProjectOntoPolyline(freight.Dropoff, trip.Route)
		if err != nil {
			skipped++

			continue
		}

		// Both endpoints must sit inside the corridor.
		if pickup.DistanceM > radius || dropoff.DistanceM > radius {
			continue
		}

		// Pickup must come before dropoff along the route; equal positions
		// are a valid co-located pair.
		if pickup.Fraction > dropoff.Fraction {
			continue
		}

		matches = append(matches, entity.Match{
			FreightID:     freight.ID,
			PickupDistM:   pickup.DistanceM,
			DropoffDistM:  dropoff.DistanceM,
			PickupPos:     pickup.Fraction,
			DropoffPos:    dropoff.Fraction,
			Score:         matchScore(pickup.DistanceM, dropoff.DistanceM, radius),
			RequestStatus: statuses[freight.ID],
		})
	}

	return matches, skipped
}

// matchScore maps combined detour distance into (0, 1]; a freight sitting
// exactly on the route scores 1.
func matchScore(pickupDistM, dropoffDistM, radiusM float64) float64 {
	return 1 / (1 + (pickupDistM+dropoffDistM)/radiusM)
}

// rankMatches orders by score descending, breaking ties by combined distance
// ascending and finally by freight ID so results are deterministic.
func rankMatches(matches []entity.Match) {
	sort.Slice(matches, func(i, j int) bool {
		if matches[i].Score != matches[j].Score {
			return matches[i].Score > matches[j].Score
		}

		di := matches[i].PickupDistM + matches[i].DropoffDistM
		dj := matches[j].PickupDistM + matches[j].DropoffDistM
		if di != dj {
			return di < dj
		}

		return strings.Compare(matches[i].FreightID.String(), matches[j].FreightID.String()) < 0
	})
}

func resolveRadius(trip *entity.Trip, override float64) float64 {
	radius := trip.CorridorRadiusM
	if override > 0 {
		radius = override
	}

	if radius < entity.MinCorridorRadiusM {
		radius = entity.MinCorridorRadiusM
	}
	if radius > entity.MaxCorridorRadiusM {
		radius = entity.MaxCorridorRadiusM
	}

	return radius
}

func resolveLimit(limit int) int {
	if limit <= 0 {
		return usecase.DefaultMatchLimit
	}
	if limit > usecase.MaxMatchLimit {
		return usecase.MaxMatchLimit
	}

	return limit
}
