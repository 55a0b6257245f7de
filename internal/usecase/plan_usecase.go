package usecase

import (
	"context"

	"tripflow/internal/domain/entity"
)

// CreatePlanInput defines the loosely-typed document accepted on plan
// creation. The schema layer coerces it into the canonical shape.
type CreatePlanInput struct {
	Title            string         `json:"title"`
	BasicInfo        map[string]any `json:"basicInfo"`
	DestinationIntro map[string]any `json:"destinationIntro"`
	DailyPlan        []any          `json:"dailyPlan"`
	Summary          map[string]any `json:"summary"`
}

// Document reassembles the input into a single document for validation.
func (in *CreatePlanInput) Document() map[string]any {
	doc := map[string]any{
		"title": in.Title,
	}
	if in.BasicInfo != nil {
		doc["basicInfo"] = in.BasicInfo
	}
	if in.DestinationIntro != nil {
		doc["destinationIntro"] = in.DestinationIntro
	}
	if in.DailyPlan != nil {
		doc["dailyPlan"] = in.DailyPlan
	}
	if in.Summary != nil {
		doc["summary"] = in.Summary
	}

	return doc
}

// PlanUsecase defines the interface for itinerary persistence operations.
// Every operation is scoped to the calling owner; the backing store is
// selected once at startup and is invisible here.
type PlanUsecase interface {
	ListPlans(ctx context.Context, ownerID string) ([]*entity.StoredPlan, error)
	CreatePlan(ctx context.Context, ownerID string, input *CreatePlanInput) (*entity.StoredPlan, error)
	UpdatePlan(ctx context.Context, id int64, ownerID string, doc map[string]any) (*entity.StoredPlan, error)
	DeletePlan(ctx context.Context, id int64, ownerID string) error
}
