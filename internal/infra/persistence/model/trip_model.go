package model

import (
	"time"

	"github.com/google/uuid"

	"fretex/internal/domain/entity"
)

// Trip is the persistence model for driver trips. RouteGeom is NULL until
// the external provider has computed the route.
type Trip struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	DriverID uuid.UUID `gorm:"type:uuid;not null;index"`

	OriginLabel      string `gorm:"type:varchar(255);not null"`
	OriginGeom       Point  `gorm:"type:geometry(Point,4326);not null"`
	DestinationLabel string `gorm:"type:varchar(255);not null"`
	DestinationGeom  Point  `gorm:"type:geometry(Point,4326);not null"`

	Profile         string  `gorm:"type:varchar(32);not null"`
	CorridorRadiusM float64 `gorm:"not null"`

	RouteGeom      LineString `gorm:"type:geometry(LineString,4326);index:idx_trip_route_geom,type:gist"`
	RouteDistanceM float64
	RouteDurationS float64

	DepartAt *time.Time
	Notes    *string `gorm:"type:text"`

	Status    string    `gorm:"type:varchar(16);not null;index"`
	CreatedAt time.Time `gorm:"not null;index"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM.
func (Trip) TableName() string {
	return "trips"
}

// ToEntity converts the model to a domain entity.
func (m *Trip) ToEntity() *entity.Trip {
	return &entity.Trip{
		ID:       m.ID,
		DriverID: m.DriverID,

		OriginLabel:      m.OriginLabel,
		Origin:           m.OriginGeom.Point,
		DestinationLabel: m.DestinationLabel,
		Destination:      m.DestinationGeom.Point,

		Profile:         m.Profile,
		CorridorRadiusM: m.CorridorRadiusM,

		Route:          m.RouteGeom.LineString,
		RouteDistanceM: m.RouteDistanceM,
		RouteDurationS: m.RouteDurationS,

		DepartAt: m.DepartAt,
		Notes:    m.Notes,

		Status:    entity.TripStatus(m.Status),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// TripFromEntity converts a domain entity to the persistence model.
func TripFromEntity(e *entity.Trip) *Trip {
	return &Trip{
		ID:       e.ID,
		DriverID: e.DriverID,

		OriginLabel:      e.OriginLabel,
		OriginGeom:       NewPoint(e.Origin),
		DestinationLabel: e.DestinationLabel,
		DestinationGeom:  NewPoint(e.Destination),

		Profile:         e.Profile,
		CorridorRadiusM: e.CorridorRadiusM,

		RouteGeom:      NewLineString(e.Route),
		RouteDistanceM: e.RouteDistanceM,
		RouteDurationS: e.RouteDurationS,

		DepartAt: e.DepartAt,
		Notes:    e.Notes,

		Status:    string(e.Status),
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}
