package storage

import "context"

// TokenStorage defines the durable store for the bearer token.
// The session manager is its only writer; absence of the token
// means the user is logged out.
type TokenStorage interface {
	// SaveToken persists the bearer token, replacing any previous one
	SaveToken(ctx context.Context, token string) error

	// GetToken returns the persisted bearer token.
	// Returns ErrTokenNotFound if no token is stored.
	GetToken(ctx context.Context) (string, error)

	// DeleteToken removes the persisted token (logout).
	// Deleting an absent token is not an error.
	DeleteToken(ctx context.Context) error
}
