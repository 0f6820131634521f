package usecase

import (
	"context"

	"github.com/google/uuid"

	"fretex/internal/domain/entity"
)

// GeoPointInput is a labeled coordinate supplied by a client.
type GeoPointInput struct {
	Label   string
	Lat     float64
	Lng     float64
	RadiusM float64
}

// CreateFreightInput carries the fields to publish a freight.
type CreateFreightInput struct {
	Pickup  GeoPointInput
	Dropoff GeoPointInput
	Notes   *string

	DistanceM         *int64
	DurationS         *int64
	PriceTotalCents   *int64
	DriverPayoutCents *int64
	Currency          string
}

// UpdateFreightInput carries the mutable fields of a freight.
type UpdateFreightInput struct {
	Pickup  GeoPointInput
	Dropoff GeoPointInput
	Notes   *string
}

// ListFreightsInput filters a shipper's freight listing.
type ListFreightsInput struct {
	Status entity.FreightStatus
	Query  string
	Limit  int
}

// FreightUsecase manages freight publications.
type FreightUsecase interface {
	CreateFreight(ctx context.Context, shipperID uuid.UUID, input CreateFreightInput) (*entity.Freight, error)
	GetFreight(ctx context.Context, id uuid.UUID) (*entity.Freight, error)
	ListFreights(ctx context.Context, shipperID uuid.UUID, input ListFreightsInput) ([]*entity.Freight, error)
	UpdateFreight(ctx context.Context, shipperID, id uuid.UUID, input UpdateFreightInput) (*entity.Freight, error)
	CloseFreight(ctx context.Context, shipperID, id uuid.UUID) (*entity.Freight, error)
}
