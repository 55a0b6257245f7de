package service

import (
	"context"

	"tripflow/internal/domain/entity"
)

// IdentityVerifier resolves an inbound bearer credential to a canonical
// identity. Two implementations exist: the local variant validates a
// self-contained signed token, the remote variant forwards the credential
// to the external identity endpoint. The deployment configuration selects
// exactly one at startup; they are never mixed at runtime.
type IdentityVerifier interface {
	Verify(ctx context.Context, credential string) (*entity.Identity, error)
}
