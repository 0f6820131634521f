package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"

	"fretex/internal/domain/entity"
)

// ErrFreightNotFound is returned when a freight does not exist.
var ErrFreightNotFound = errors.New("freight not found")

// FreightListFilter narrows freight listings.
type FreightListFilter struct {
	ShipperID *uuid.UUID
	Status    entity.FreightStatus
	// Query matches pickup label, dropoff label or notes, case-insensitive.
	Query string
	Limit int
}

// FreightRepository manages freight persistence.
type FreightRepository interface {
	// Create persists a new freight.
	Create(ctx context.Context, freight *entity.Freight) error

	// FindByID retrieves a freight by its ID.
	// Returns ErrFreightNotFound when it does not exist.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Freight, error)

	// List returns freights matching the filter, newest first.
	List(ctx context.Context, filter FreightListFilter) ([]*entity.Freight, error)

	// Update persists changes to an existing freight.
	Update(ctx context.Context, freight *entity.Freight) error

	// FindOpenWithinBound returns OPEN freights whose pickup or dropoff
	// point falls inside the bounding envelope, capped at limit. This is
	// the coarse pre-filter of the matching pipeline; precise corridor
	// checks happen in the scorer.
	FindOpenWithinBound(ctx context.Context, bound orb.Bound, limit int) ([]*entity.Freight, error)
}
