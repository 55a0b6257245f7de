package auth

import (
	"context"

	"tripflow/internal/domain/entity"
	domainerrors "tripflow/internal/domain/errors"
	"tripflow/internal/domain/service"
)

// localVerifier resolves bearer credentials against the local signed-token
// scheme. Tokens are self-contained, so verification never touches storage.
type localVerifier struct {
	tokens service.TokenService
}

// NewLocalVerifier is the constructor for localVerifier.
func NewLocalVerifier(tokens service.TokenService) service.IdentityVerifier {
	return &localVerifier{tokens: tokens}
}

// Verify validates the token signature and expiry and maps its claims to a
// canonical identity.
func (v *localVerifier) Verify(_ context.Context, credential string) (*entity.Identity, error) {
	claims, err := v.tokens.Validate(credential)
	if err != nil {
		return nil, domainerrors.ErrInvalidToken.WrapMessage(err.Error())
	}

	return &entity.Identity{
		ID:       claims.UserID,
		Username: claims.Username,
	}, nil
}
