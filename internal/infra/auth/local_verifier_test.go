package auth

import (
	"context"
	"testing"

	domainerrors "tripflow/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalVerifier_AcceptsIssuedToken(t *testing.T) {
	tokens, err := NewJWTService(testJWTConfig())
	require.NoError(t, err)
	verifier := NewLocalVerifier(tokens)

	token, err := tokens.Generate("user-123", "alice")
	require.NoError(t, err)

	identity, err := verifier.Verify(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", identity.ID)
	assert.Equal(t, "alice", identity.Username)
}

func TestLocalVerifier_RejectsGarbage(t *testing.T) {
	tokens, err := NewJWTService(testJWTConfig())
	require.NoError(t, err)
	verifier := NewLocalVerifier(tokens)

	_, err = verifier.Verify(context.Background(), "not-a-token")
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}
