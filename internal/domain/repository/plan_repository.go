// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"tripflow/internal/domain/entity"
)

// ErrPlanNotFound is returned when a plan does not exist or is not owned by
// the caller. The two cases are deliberately indistinguishable so that a
// guessed id never leaks the existence of another owner's plan.
var ErrPlanNotFound = errors.New("travel plan not found")

// PlanRepository defines the standard operations for travel plan
// persistence. Exactly one implementation is active per deployment: the
// local relational backend or the remote managed backend. The ownership
// filter is mandatory in every operation that touches an existing row.
type PlanRepository interface {
	// List returns all plans owned by ownerID, ordered by id.
	List(ctx context.Context, ownerID string) ([]*entity.StoredPlan, error)

	// Create persists a new plan for ownerID. The backend assigns the id
	// and timestamps; the owner is always set server-side and never taken
	// from the document.
	Create(ctx context.Context, ownerID string, plan *entity.TravelPlan) (*entity.StoredPlan, error)

	// Update applies doc to the plan identified by id AND ownerID. The
	// local backend replaces the whole document; the remote backend merges
	// the supplied top-level sections. Returns ErrPlanNotFound when no row
	// matches both filters.
	Update(ctx context.Context, id int64, ownerID string, doc map[string]any) (*entity.StoredPlan, error)

	// Delete removes the plan identified by id AND ownerID. Deletion is
	// immediate and irreversible; a second delete returns ErrPlanNotFound.
	Delete(ctx context.Context, id int64, ownerID string) error
}
