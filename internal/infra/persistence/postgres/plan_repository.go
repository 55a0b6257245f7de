package postgres

import (
	"context"
	"encoding/json"

	"tripflow/internal/domain/entity"
	domainerrors "tripflow/internal/domain/errors"
	"tripflow/internal/domain/repository"
	"tripflow/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// planRepository implements repository.PlanRepository against the local
// relational backend. The ownership filter is part of every WHERE clause;
// an un-owned id is indistinguishable from a missing one.
type planRepository struct {
	db *gorm.DB
}

// NewPlanRepository is the constructor for planRepository.
func NewPlanRepository(db *gorm.DB) repository.PlanRepository {
	return &planRepository{db: db}
}

// List returns all plans owned by ownerID, ordered by id.
func (repo *planRepository) List(ctx context.Context, ownerID string) ([]*entity.StoredPlan, error) {
	var rows []model.TravelPlanModel
	if err := repo.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("id").
		Find(&rows).Error; err != nil {
		return nil, domainerrors.NewStorageError(err, "failed to list travel plans")
	}

	plans := make([]*entity.StoredPlan, 0, len(rows))
	for i := range rows {
		plan, err := toStoredPlan(&rows[i])
		if err != nil {
			return nil, err
		}
		plans = append(plans, plan)
	}

	return plans, nil
}

// Create persists a new plan for ownerID. The database assigns the id and
// timestamps.
func (repo *planRepository) Create(ctx context.Context, ownerID string, plan *entity.TravelPlan) (*entity.StoredPlan, error) {
	data, err := json.Marshal(plan)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode travel plan document")
	}

	row := &model.TravelPlanModel{
		OwnerID: ownerID,
		Title:   plan.Title,
		Data:    datatypes.JSON(data),
	}
	if err := repo.db.WithContext(ctx).Create(row).Error; err != nil {
		return nil, domainerrors.NewStorageError(err, "failed to create travel plan")
	}

	return toStoredPlan(row)
}

// Update replaces the entire document blob of the plan identified by id AND
// ownerID.
func (repo *planRepository) Update(ctx context.Context, id int64, ownerID string, doc map[string]any) (*entity.StoredPlan, error) {
	var row model.TravelPlanModel
	err := repo.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", id, ownerID).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, repository.ErrPlanNotFound
	}
	if err != nil {
		return nil, domainerrors.NewStorageError(err, "failed to load travel plan for update")
	}

	data, err := json.Marshal(doc)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode travel plan document")
	}

	row.Data = datatypes.JSON(data)
	if title, ok := doc["title"].(string); ok && title != "" {
		row.Title = title
	}

	if err := repo.db.WithContext(ctx).Save(&row).Error; err != nil {
		return nil, domainerrors.NewStorageError(err, "failed to update travel plan")
	}

	return toStoredPlan(&row)
}

// Delete removes the plan identified by id AND ownerID. Missing and
// un-owned rows both report not-found.
func (repo *planRepository) Delete(ctx context.Context, id int64, ownerID string) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", id, ownerID).
		Delete(&model.TravelPlanModel{})
	if result.Error != nil {
		return domainerrors.NewStorageError(result.Error, "failed to delete travel plan")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPlanNotFound
	}

	return nil
}

// toStoredPlan maps a persistence row back to the canonical entity.
func toStoredPlan(row *model.TravelPlanModel) (*entity.StoredPlan, error) {
	plan := &entity.StoredPlan{
		ID:        row.ID,
		OwnerID:   row.OwnerID,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
	if len(row.Data) > 0 {
		if err := json.Unmarshal(row.Data, &plan.TravelPlan); err != nil {
			return nil, errors.Wrap(err, "failed to decode travel plan document")
		}
	}
	if plan.Title == "" {
		plan.Title = row.Title
	}

	return plan, nil
}
