package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// TripStatus represents the lifecycle state of a trip.
type TripStatus string

const (
	// TripStatusActive means the trip is planned and can be matched.
	TripStatusActive TripStatus = "ACTIVE"
	// TripStatusCancelled means the driver withdrew the trip. Terminal.
	TripStatusCancelled TripStatus = "CANCELLED"
)

// IsValid checks if the status is a known trip status.
func (s TripStatus) IsValid() bool {
	return s == TripStatusActive || s == TripStatusCancelled
}

// Corridor radius bounds in meters. The default mirrors the product UI.
const (
	DefaultCorridorRadiusM = 50000.0
	MinCorridorRadiusM     = 1000.0
	MaxCorridorRadiusM     = 200000.0
)

// Trip is a driver's planned journey. The route polyline is computed by the
// external route provider after creation and on origin/destination changes,
// so it may be empty while computation is pending or has failed.
type Trip struct {
	ID       uuid.UUID
	DriverID uuid.UUID

	OriginLabel      string
	Origin           orb.Point
	DestinationLabel string
	Destination      orb.Point

	// Profile selects the routing vehicle profile (driving-car, driving-hgv).
	Profile string

	CorridorRadiusM float64

	Route          orb.LineString
	RouteDistanceM float64
	RouteDurationS float64

	DepartAt *time.Time
	Notes    *string

	Status    TripStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasRoute reports whether a usable route polyline is attached.
func (t *Trip) HasRoute() bool {
	return len(t.Route) >= 2
}

// IsActive reports whether the trip can still be matched.
func (t *Trip) IsActive() bool {
	return t.Status == TripStatusActive
}

// Cancel marks the trip as cancelled. Cancelling is idempotent.
func (t *Trip) Cancel(now time.Time) {
	t.Status = TripStatusCancelled
	t.UpdatedAt = now
}
