package service

import (
	"github.com/google/uuid"

	"fretex/internal/domain/entity"
)

// TokenClaims is the verified identity extracted from an access token.
// User identities are issued by the surrounding platform; this service only
// verifies and reads them.
type TokenClaims struct {
	UserID uuid.UUID
	Roles  entity.Roles
}

// TokenService verifies access tokens.
type TokenService interface {
	ValidateAccessToken(tokenString string) (*TokenClaims, error)
}
