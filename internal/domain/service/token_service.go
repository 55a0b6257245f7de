// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// Claims are the verified contents of a locally issued access token.
type Claims struct {
	UserID   string
	Username string
}

// TokenService defines the interface for issuing and validating locally
// signed access tokens. Tokens are self-contained claims bound to a user
// id; there is no server-side revocation list.
type TokenService interface {
	// Generate creates a signed access token for the given user.
	Generate(userID, username string) (string, error)

	// Validate checks signature and expiry of a token string and returns
	// its claims.
	Validate(tokenString string) (*Claims, error)
}
