package impl

import (
	"context"
	"log/slog"

	"tripflow/internal/domain/entity"
	domainerrors "tripflow/internal/domain/errors"
	"tripflow/internal/domain/repository"
	"tripflow/internal/domain/schema"
	"tripflow/internal/usecase"

	"github.com/pkg/errors"
)

// planService implements the PlanUsecase interface on top of whichever
// PlanRepository the startup wiring selected.
type planService struct {
	planRepo repository.PlanRepository
	logger   *slog.Logger
}

// NewPlanService is the constructor for planService.
func NewPlanService(planRepo repository.PlanRepository, logger *slog.Logger) usecase.PlanUsecase {
	return &planService{
		planRepo: planRepo,
		logger:   logger,
	}
}

// ListPlans returns every plan owned by the caller, oldest first.
func (srv *planService) ListPlans(ctx context.Context, ownerID string) ([]*entity.StoredPlan, error) {
	plans, err := srv.planRepo.List(ctx, ownerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list travel plans")
	}

	return plans, nil
}

// CreatePlan validates the submitted document and persists the canonical
// form under the caller's ownership.
func (srv *planService) CreatePlan(ctx context.Context, ownerID string, input *usecase.CreatePlanInput) (*entity.StoredPlan, error) {
	srv.logger.Info("Creating travel plan", "ownerID", ownerID, "title", input.Title)

	plan, err := schema.Validate(input.Document())
	if err != nil {
		var violation *schema.Violation
		if errors.As(err, &violation) {
			return nil, domainerrors.ErrSchemaViolation.WithDetails(violation.Error())
		}

		return nil, errors.Wrap(err, "failed to validate travel plan")
	}

	stored, err := srv.planRepo.Create(ctx, ownerID, plan)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create travel plan")
	}

	return stored, nil
}

// UpdatePlan applies a partial document to an existing plan. The repository
// enforces the ownership filter; a plan owned by someone else is reported
// the same way as a missing one.
func (srv *planService) UpdatePlan(ctx context.Context, id int64, ownerID string, doc map[string]any) (*entity.StoredPlan, error) {
	srv.logger.Info("Updating travel plan", "ownerID", ownerID, "planID", id)

	stored, err := srv.planRepo.Update(ctx, id, ownerID, doc)
	if err != nil {
		if errors.Is(err, repository.ErrPlanNotFound) {
			return nil, domainerrors.ErrPlanNotFound
		}

		return nil, errors.Wrap(err, "failed to update travel plan")
	}

	return stored, nil
}

// DeletePlan removes a plan owned by the caller.
func (srv *planService) DeletePlan(ctx context.Context, id int64, ownerID string) error {
	srv.logger.Info("Deleting travel plan", "ownerID", ownerID, "planID", id)

	if err := srv.planRepo.Delete(ctx, id, ownerID); err != nil {
		if errors.Is(err, repository.ErrPlanNotFound) {
			return domainerrors.ErrPlanNotFound
		}

		return errors.Wrap(err, "failed to delete travel plan")
	}

	return nil
}
