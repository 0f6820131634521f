package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb"

	"fretex/internal/domain/entity"
	"fretex/internal/domain/service"
)

// CreateTripInput carries the fields to plan a trip.
type CreateTripInput struct {
	Origin      GeoPointInput
	Destination GeoPointInput

	Profile         string
	CorridorRadiusM float64
	DepartAt        *time.Time
	Notes           *string
}

// UpdateTripInput carries the mutable fields of a trip. Changing the origin,
// destination or profile triggers a route recomputation.
type UpdateTripInput struct {
	Origin      GeoPointInput
	Destination GeoPointInput

	Profile         string
	CorridorRadiusM float64
	DepartAt        *time.Time
	Notes           *string
}

// ListTripsInput filters a driver's trip listing.
type ListTripsInput struct {
	Status entity.TripStatus
	Query  string
	Limit  int
}

// TripUsecase manages driver trips and their routes.
type TripUsecase interface {
	CreateTrip(ctx context.Context, driverID uuid.UUID, input CreateTripInput) (*entity.Trip, error)
	GetTrip(ctx context.Context, id uuid.UUID) (*entity.Trip, error)
	ListTrips(ctx context.Context, driverID uuid.UUID, input ListTripsInput) ([]*entity.Trip, error)
	UpdateTrip(ctx context.Context, driverID, id uuid.UUID, input UpdateTripInput) (*entity.Trip, error)
	CancelTrip(ctx context.Context, driverID, id uuid.UUID) (*entity.Trip, error)

	// PreviewRoute computes a route for an ordered waypoint list without
	// persisting anything. Used by clients to draw candidate journeys.
	PreviewRoute(ctx context.Context, profile string, waypoints []orb.Point) (*service.Route, error)
}
