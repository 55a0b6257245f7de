// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"

	"tripflow/config"
	"tripflow/internal/domain/service"
)

const defaultAlgorithm = "HS256"

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret    string            // Secret key for signing access tokens.
	method    jwt.SigningMethod // Configured HMAC signing method.
	accessTTL time.Duration     // Time-to-live for access tokens.
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt access secret must be provided")
	}

	algorithm := cfg.SecretKey.Algorithm
	if algorithm == "" {
		algorithm = defaultAlgorithm
	}
	method := jwt.GetSigningMethod(algorithm)
	if _, ok := method.(*jwt.SigningMethodHMAC); !ok {
		return nil, errors.Errorf("unsupported jwt signing algorithm: %s", algorithm)
	}

	return &jwtService{
		secret:    cfg.SecretKey.Access,
		method:    method,
		accessTTL: time.Hour * 24,
	}, nil
}

// Generate creates a signed access token bound to the given user.
func (s *jwtService) Generate(userID, username string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":      userID,
		"username": username,
		"iat":      now.Unix(),
		"exp":      now.Add(s.accessTTL).Unix(),
	}

	token := jwt.NewWithClaims(s.method, claims)
	signed, err := token.SignedString([]byte(s.secret))
	if err != nil {
		return "", errors.Wrap(err, "failed to sign access token")
	}

	return signed, nil
}

// Validate checks signature and expiry of a token string and returns its claims.
func (s *jwtService) Validate(tokenString string) (*service.Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if token.Method.Alg() != s.method.Alg() {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.secret), nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse access token")
	}
	if !token.Valid {
		return nil, errors.New("access token is not valid")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("failed to parse token claims")
	}

	userID, ok := claims["sub"].(string)
	if !ok || userID == "" {
		return nil, errors.New("user id missing from token")
	}
	username, _ := claims["username"].(string)

	return &service.Claims{UserID: userID, Username: username}, nil
}
