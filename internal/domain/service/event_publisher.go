package service

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// EventType identifies a match request lifecycle event.
type EventType string

const (
	EventMatchRequestProposed  EventType = "match_request.proposed"
	EventMatchRequestAccepted  EventType = "match_request.accepted"
	EventMatchRequestRejected  EventType = "match_request.rejected"
	EventMatchRequestCancelled EventType = "match_request.cancelled"
)

// MatchRequestEvent is published on every match request state change so the
// notification worker can inform the counterparty.
type MatchRequestEvent struct {
	Type       EventType `json:"type"`
	RequestID  uuid.UUID `json:"requestId"`
	FreightID  uuid.UUID `json:"freightId"`
	TripID     uuid.UUID `json:"tripId"`
	DriverID   uuid.UUID `json:"driverId"`
	ShipperID  uuid.UUID `json:"shipperId"`
	OccurredAt time.Time `json:"occurredAt"`
}

// EventPublisher publishes match request lifecycle events. Publishing is
// best-effort; failures are logged and never abort the state transition.
type EventPublisher interface {
	PublishMatchRequestEvent(ctx context.Context, event *MatchRequestEvent) error
	Close() error
}
