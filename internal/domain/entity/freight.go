package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// FreightStatus represents the publication state of a freight.
type FreightStatus string

const (
	// FreightStatusOpen means the freight accepts match proposals.
	FreightStatusOpen FreightStatus = "OPEN"
	// FreightStatusClosed means the freight no longer accepts proposals.
	// Closed is terminal.
	FreightStatusClosed FreightStatus = "CLOSED"
)

// IsValid checks if the status is a known freight status.
func (s FreightStatus) IsValid() bool {
	return s == FreightStatusOpen || s == FreightStatusClosed
}

// DefaultCurrency is applied when a freight omits its currency.
const DefaultCurrency = "BRL"

// Freight is a cargo publication by a shipper: a pickup point, a dropoff
// point and the commercial terms. Matching considers only OPEN freights.
type Freight struct {
	ID        uuid.UUID
	ShipperID uuid.UUID

	PickupLabel   string
	Pickup        orb.Point
	PickupRadiusM float64

	DropoffLabel   string
	Dropoff        orb.Point
	DropoffRadiusM float64

	Notes *string

	// Commercial terms. Monetary amounts are integer cents.
	DistanceM         *int64
	DurationS         *int64
	PriceTotalCents   *int64
	DriverPayoutCents *int64
	Currency          string

	Status    FreightStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsOpen reports whether the freight still accepts proposals.
func (f *Freight) IsOpen() bool {
	return f.Status == FreightStatusOpen
}

// Close marks the freight as closed. Closing is idempotent.
func (f *Freight) Close(now time.Time) {
	f.Status = FreightStatusClosed
	f.UpdatedAt = now
}
