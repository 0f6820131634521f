package entity

import "github.com/google/uuid"

// Match is a scored pairing of a freight with a trip's route corridor.
type Match struct {
	FreightID uuid.UUID

	// Great-circle distances from the freight endpoints to the route, meters.
	PickupDistM  float64
	DropoffDistM float64

	// Positions of the projected endpoints along the route, in [0, 1].
	// PickupPos <= DropoffPos always holds for a produced match.
	PickupPos  float64
	DropoffPos float64

	// Score in (0, 1]; higher is better.
	Score float64

	// RequestStatus carries the current request state for this freight on
	// the queried trip, if any. Empty when no request exists.
	RequestStatus MatchRequestStatus
}

// MatchResult is the outcome of a corridor matching computation.
type MatchResult struct {
	Matches []Match

	// SkippedCount counts candidates dropped for malformed geometry.
	SkippedCount int
}
