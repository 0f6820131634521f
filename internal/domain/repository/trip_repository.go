package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"fretex/internal/domain/entity"
)

// ErrTripNotFound is returned when a trip does not exist.
var ErrTripNotFound = errors.New("trip not found")

// TripListFilter narrows trip listings.
type TripListFilter struct {
	DriverID *uuid.UUID
	Status   entity.TripStatus
	// Query matches origin or destination label, case-insensitive.
	Query string
	Limit int
}

// TripRepository manages trip persistence.
type TripRepository interface {
	// Create persists a new trip.
	Create(ctx context.Context, trip *entity.Trip) error

	// FindByID retrieves a trip by its ID.
	// Returns ErrTripNotFound when it does not exist.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Trip, error)

	// List returns trips matching the filter, newest first.
	List(ctx context.Context, filter TripListFilter) ([]*entity.Trip, error)

	// Update persists changes to an existing trip, including its route.
	Update(ctx context.Context, trip *entity.Trip) error
}
