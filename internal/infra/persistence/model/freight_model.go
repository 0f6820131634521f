package model

import (
	"time"

	"github.com/google/uuid"

	"fretex/internal/domain/entity"
)

// Freight is the persistence model for freight publications.
type Freight struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	ShipperID uuid.UUID `gorm:"type:uuid;not null;index"`

	PickupLabel   string  `gorm:"type:varchar(255);not null"`
	PickupGeom    Point   `gorm:"type:geometry(Point,4326);not null;index:idx_freight_pickup_geom,type:gist"`
	PickupRadiusM float64 `gorm:"not null;default:0"`

	DropoffLabel   string  `gorm:"type:varchar(255);not null"`
	DropoffGeom    Point   `gorm:"type:geometry(Point,4326);not null;index:idx_freight_dropoff_geom,type:gist"`
	DropoffRadiusM float64 `gorm:"not null;default:0"`

	Notes *string `gorm:"type:text"`

	DistanceM         *int64
	DurationS         *int64
	PriceTotalCents   *int64
	DriverPayoutCents *int64
	Currency          string `gorm:"type:varchar(3);not null;default:'BRL'"`

	Status    string    `gorm:"type:varchar(16);not null;index"`
	CreatedAt time.Time `gorm:"not null;index"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM.
func (Freight) TableName() string {
	return "freights"
}

// ToEntity converts the model to a domain entity.
func (m *Freight) ToEntity() *entity.Freight {
	return &entity.Freight{
		ID:        m.ID,
		ShipperID: m.ShipperID,

		PickupLabel:   m.PickupLabel,
		Pickup:        m.PickupGeom.Point,
		PickupRadiusM: m.PickupRadiusM,

		DropoffLabel:   m.DropoffLabel,
		Dropoff:        m.DropoffGeom.Point,
		DropoffRadiusM: m.DropoffRadiusM,

		Notes: m.Notes,

		DistanceM:         m.DistanceM,
		DurationS:         m.DurationS,
		PriceTotalCents:   m.PriceTotalCents,
		DriverPayoutCents: m.DriverPayoutCents,
		Currency:          m.Currency,

		Status:    entity.FreightStatus(m.Status),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// FreightFromEntity converts a domain entity to the persistence model.
func FreightFromEntity(e *entity.Freight) *Freight {
	return &Freight{
		ID:        e.ID,
		ShipperID: e.ShipperID,

		PickupLabel:   e.PickupLabel,
		PickupGeom:    NewPoint(e.Pickup),
		PickupRadiusM: e.PickupRadiusM,

		DropoffLabel:   e.DropoffLabel,
		DropoffGeom:    NewPoint(e.Dropoff),
		DropoffRadiusM: e.DropoffRadiusM,

		Notes: e.Notes,

		DistanceM:         e.DistanceM,
		DurationS:         e.DurationS,
		PriceTotalCents:   e.PriceTotalCents,
		DriverPayoutCents: e.DriverPayoutCents,
		Currency:          e.Currency,

		Status:    string(e.Status),
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}
