package usecase

import (
	"context"

	"github.com/google/uuid"

	"fretex/internal/domain/entity"
)

// Matching pipeline defaults. The candidate cap bounds the coarse pre-filter,
// the match limit bounds the ranked result.
const (
	DefaultCandidateLimit = 500
	DefaultMatchLimit     = 50
	MaxMatchLimit         = 200
)

// ComputeMatchesInput parameterizes a matching computation.
type ComputeMatchesInput struct {
	TripID uuid.UUID

	// RadiusM overrides the trip's corridor radius when positive.
	RadiusM float64

	// Limit caps the ranked matches; DefaultMatchLimit when zero.
	Limit int
}

// MatchingUsecase computes ranked freight matches for a trip's route corridor.
type MatchingUsecase interface {
	// ComputeMatches runs the filter, scorer and ranker pipeline for the
	// driver's trip. The trip must belong to the driver and carry a
	// computed route.
	ComputeMatches(ctx context.Context, driverID uuid.UUID, input ComputeMatchesInput) (*entity.MatchResult, error)
}
