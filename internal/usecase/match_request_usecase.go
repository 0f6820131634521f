package usecase

import (
	"context"

	"github.com/google/uuid"

	"fretex/internal/domain/entity"
)

// ProposeInput carries a driver's proposal to carry a freight on a trip.
type ProposeInput struct {
	FreightID uuid.UUID
	TripID    uuid.UUID
	Message   *string
}

// MatchRequestDetail is a request together with its freight and trip. The
// contact link is only populated once the request is ACCEPTED.
type MatchRequestDetail struct {
	Request    *entity.MatchRequest
	Freight    *entity.Freight
	Trip       *entity.Trip
	ContactURL string
}

// MatchRequestUsecase drives the match request lifecycle:
// PENDING, then exactly one of ACCEPTED, REJECTED or CANCELLED.
type MatchRequestUsecase interface {
	// Propose creates a PENDING request from the driver to the freight's
	// shipper. A rejected or cancelled pair may be proposed again.
	Propose(ctx context.Context, driverID uuid.UUID, input ProposeInput) (*entity.MatchRequest, error)

	// Respond lets the freight's shipper accept or reject a PENDING request.
	Respond(ctx context.Context, shipperID, requestID uuid.UUID, accept bool) (*entity.MatchRequest, error)

	// Cancel lets the proposing driver withdraw a PENDING request.
	Cancel(ctx context.Context, driverID, requestID uuid.UUID) (*entity.MatchRequest, error)

	// GetRequest returns the request with its freight and trip. Only the
	// two parties may read it.
	GetRequest(ctx context.Context, userID, requestID uuid.UUID) (*MatchRequestDetail, error)

	// ListForTrip returns the driver's requests on a trip, newest first.
	ListForTrip(ctx context.Context, driverID, tripID uuid.UUID) ([]*entity.MatchRequest, error)

	// ContactQR renders the contact link of an ACCEPTED request as a PNG
	// QR code for either party.
	ContactQR(ctx context.Context, userID, requestID uuid.UUID) ([]byte, error)
}
