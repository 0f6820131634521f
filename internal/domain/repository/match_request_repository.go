package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"fretex/internal/domain/entity"
)

// Match request sentinel errors.
var (
	ErrMatchRequestNotFound = errors.New("match request not found")

	// ErrDuplicatePendingRequest is returned when a PENDING request already
	// exists for the same (freight, trip) pair. The storage layer enforces
	// this with a partial unique index, so concurrent proposers race safely.
	ErrDuplicatePendingRequest = errors.New("pending match request already exists")

	// ErrRequestNotPending is returned by Update when the stored row is no
	// longer PENDING. Terminal statuses are immutable; a concurrent
	// transition that committed first wins.
	ErrRequestNotPending = errors.New("match request is no longer pending")
)

// MatchRequestRepository manages match request persistence.
type MatchRequestRepository interface {
	// Create persists a new request.
	// Returns ErrDuplicatePendingRequest when a PENDING request for the
	// same (freight, trip) pair already exists.
	Create(ctx context.Context, request *entity.MatchRequest) error

	// FindByID retrieves a request by its ID.
	// Returns ErrMatchRequestNotFound when it does not exist.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.MatchRequest, error)

	// Update persists a transition out of PENDING.
	// Returns ErrRequestNotPending when the stored row already left PENDING
	// and ErrMatchRequestNotFound when it does not exist.
	Update(ctx context.Context, request *entity.MatchRequest) error

	// ListByTrip returns all requests for a trip, newest first.
	ListByTrip(ctx context.Context, tripID uuid.UUID) ([]*entity.MatchRequest, error)

	// ListByFreight returns all requests for a freight, newest first.
	ListByFreight(ctx context.Context, freightID uuid.UUID) ([]*entity.MatchRequest, error)

	// LatestStatusByTrip returns, per freight, the status of the most
	// recent request between that freight and the trip.
	LatestStatusByTrip(ctx context.Context, tripID uuid.UUID) (map[uuid.UUID]entity.MatchRequestStatus, error)
}
