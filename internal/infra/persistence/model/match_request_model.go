package model

import (
	"time"

	"github.com/google/uuid"

	"fretex/internal/domain/entity"
)

// MatchRequest is the persistence model for match requests. The partial
// unique index allows at most one PENDING row per (freight, trip) pair while
// keeping the full history of rejected and cancelled requests.
type MatchRequest struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	FreightID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:uniq_pending_pair,where:status = 'PENDING'"`
	TripID    uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:uniq_pending_pair,where:status = 'PENDING'"`
	DriverID  uuid.UUID `gorm:"type:uuid;not null;index"`
	ShipperID uuid.UUID `gorm:"type:uuid;not null;index"`

	Message *string `gorm:"type:text"`

	Status      string    `gorm:"type:varchar(16);not null;index"`
	CreatedAt   time.Time `gorm:"not null;index"`
	RespondedAt *time.Time
}

// TableName specifies the table name for GORM.
func (MatchRequest) TableName() string {
	return "match_requests"
}

// ToEntity converts the model to a domain entity.
func (m *MatchRequest) ToEntity() *entity.MatchRequest {
	return &entity.MatchRequest{
		ID:        m.ID,
		FreightID: m.FreightID,
		TripID:    m.TripID,
		DriverID:  m.DriverID,
		ShipperID: m.ShipperID,

		Message: m.Message,

		Status:      entity.MatchRequestStatus(m.Status),
		CreatedAt:   m.CreatedAt,
		RespondedAt: m.RespondedAt,
	}
}

// MatchRequestFromEntity converts a domain entity to the persistence model.
func MatchRequestFromEntity(e *entity.MatchRequest) *MatchRequest {
	return &MatchRequest{
		ID:        e.ID,
		FreightID: e.FreightID,
		TripID:    e.TripID,
		DriverID:  e.DriverID,
		ShipperID: e.ShipperID,

		Message: e.Message,

		Status:      string(e.Status),
		CreatedAt:   e.CreatedAt,
		RespondedAt: e.RespondedAt,
	}
}
