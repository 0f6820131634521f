package entity

import (
	"time"

	"github.com/google/uuid"
)

// MatchRequestStatus represents the lifecycle state of a match request.
type MatchRequestStatus string

const (
	// MatchRequestStatusPending awaits the shipper's decision.
	MatchRequestStatusPending MatchRequestStatus = "PENDING"
	// MatchRequestStatusAccepted means the shipper accepted. Terminal.
	MatchRequestStatusAccepted MatchRequestStatus = "ACCEPTED"
	// MatchRequestStatusRejected means the shipper declined. Terminal.
	MatchRequestStatusRejected MatchRequestStatus = "REJECTED"
	// MatchRequestStatusCancelled means the driver withdrew. Terminal.
	MatchRequestStatusCancelled MatchRequestStatus = "CANCELLED"
)

// IsValid checks if the status is a known match request status.
func (s MatchRequestStatus) IsValid() bool {
	switch s {
	case MatchRequestStatusPending, MatchRequestStatusAccepted,
		MatchRequestStatusRejected, MatchRequestStatusCancelled:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether the status admits no further transitions.
func (s MatchRequestStatus) IsTerminal() bool {
	return s != MatchRequestStatusPending
}

// MatchRequest is a driver's proposal to carry a freight on a trip. Only one
// PENDING request may exist per (freight, trip) pair; after a rejection or a
// cancellation the driver may propose again, which creates a new request.
type MatchRequest struct {
	ID        uuid.UUID
	FreightID uuid.UUID
	TripID    uuid.UUID
	DriverID  uuid.UUID
	ShipperID uuid.UUID

	Message *string

	Status      MatchRequestStatus
	CreatedAt   time.Time
	RespondedAt *time.Time
}

// IsPending reports whether the request still awaits a decision.
func (r *MatchRequest) IsPending() bool {
	return r.Status == MatchRequestStatusPending
}

// CanTransitionTo checks whether the state machine allows moving to next.
// Transitions are only allowed out of PENDING.
func (r *MatchRequest) CanTransitionTo(next MatchRequestStatus) bool {
	if r.Status != MatchRequestStatusPending {
		return false
	}

	switch next {
	case MatchRequestStatusAccepted, MatchRequestStatusRejected, MatchRequestStatusCancelled:
		return true
	default:
		return false
	}
}
