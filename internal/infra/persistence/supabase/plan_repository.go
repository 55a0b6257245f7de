package supabase

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"tripflow/internal/domain/entity"
	"tripflow/internal/domain/repository"

	"github.com/pkg/errors"
)

const plansPath = "/rest/v1/travel_plans"

// planRow mirrors the remotely managed travel_plans table. Sections are
// separate jsonb columns so a PATCH merges at section granularity.
type planRow struct {
	ID               int64           `json:"id,omitempty"`
	OwnerID          string          `json:"owner_id,omitempty"`
	Title            string          `json:"title,omitempty"`
	BasicInfo        json.RawMessage `json:"basic_info,omitempty"`
	DestinationIntro json.RawMessage `json:"destination_intro,omitempty"`
	DailyPlan        json.RawMessage `json:"daily_plan,omitempty"`
	Summary          json.RawMessage `json:"summary,omitempty"`
	CreatedAt        string          `json:"created_at,omitempty"`
	UpdatedAt        string          `json:"updated_at,omitempty"`
}

// planRepository implements repository.PlanRepository against the remote
// managed backend. The remote store has no notion of the original per-user
// token, so every query applies the owner filter itself.
type planRepository struct {
	client *Client
}

// NewPlanRepository is the constructor for the remote planRepository.
func NewPlanRepository(client *Client) repository.PlanRepository {
	return &planRepository{client: client}
}

// List returns all plans whose owner_id matches ownerID.
func (repo *planRepository) List(ctx context.Context, ownerID string) ([]*entity.StoredPlan, error) {
	query := url.Values{}
	query.Set("owner_id", "eq."+ownerID)
	query.Set("order", "id.asc")

	var rows []planRow
	if err := repo.client.do(ctx, http.MethodGet, plansPath, query, nil, &rows); err != nil {
		return nil, err
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

// Create inserts a new row. The owner id is injected server-side here; a
// client-supplied owner field is never trusted.
func (repo *planRepository) Create(ctx context.Context, ownerID string, plan *entity.TravelPlan) (*entity.StoredPlan, error) {
	row, err := fromTravelPlan(plan)
	if err != nil {
		return nil, err
	}
	row.OwnerID = ownerID

	var created []planRow
	if err := repo.client.do(ctx, http.MethodPost, plansPath, nil, row, &created); err != nil {
		return nil, err
	}
	if len(created) == 0 {
		return nil, errors.New("remote backend did not return the created plan")
	}

	return toStoredPlan(&created[0])
}

// Update patches the row matched by id AND owner_id jointly, so a guessed
// id can never affect another owner's plan. Only the supplied top-level
// sections are sent, giving partial-merge semantics.
func (repo *planRepository) Update(ctx context.Context, id int64, ownerID string, doc map[string]any) (*entity.StoredPlan, error) {
	patch, err := patchFromDocument(doc)
	if err != nil {
		return nil, err
	}

	var updated []planRow
	if err := repo.client.do(ctx, http.MethodPatch, plansPath, ownerScopedQuery(id, ownerID), patch, &updated); err != nil {
		return nil, err
	}
	if len(updated) == 0 {
		return nil, repository.ErrPlanNotFound
	}

	return toStoredPlan(&updated[0])
}

// Delete removes the row matched by id AND owner_id jointly.
func (repo *planRepository) Delete(ctx context.Context, id int64, ownerID string) error {
	var deleted []planRow
	if err := repo.client.do(ctx, http.MethodDelete, plansPath, ownerScopedQuery(id, ownerID), nil, &deleted); err != nil {
		return err
	}
	if len(deleted) == 0 {
		return repository.ErrPlanNotFound
	}

	return nil
}

func ownerScopedQuery(id int64, ownerID string) url.Values {
	query := url.Values{}
	query.Set("id", "eq."+strconv.FormatInt(id, 10))
	query.Set("owner_id", "eq."+ownerID)

	return query
}

// patchFromDocument maps the supplied document sections onto row columns,
// leaving absent sections untouched by the remote merge.
func patchFromDocument(doc map[string]any) (*planRow, error) {
	patch := &planRow{}
	if title, ok := doc["title"].(string); ok {
		patch.Title = title
	}

	sections := []struct {
		key    string
		target *json.RawMessage
	}{
		{"basicInfo", &patch.BasicInfo},
		{"destinationIntro", &patch.DestinationIntro},
		{"dailyPlan", &patch.DailyPlan},
		{"summary", &patch.Summary},
	}
	for _, section := range sections {
		value, ok := doc[section.key]
		if !ok {
			continue
		}
		raw, err := json.Marshal(value)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to encode %s section", section.key)
		}
		*section.target = raw
	}

	return patch, nil
}

func fromTravelPlan(plan *entity.TravelPlan) (*planRow, error) {
	row := &planRow{Title: plan.Title}

	var err error
	if row.BasicInfo, err = json.Marshal(plan.BasicInfo); err != nil {
		return nil, errors.Wrap(err, "failed to encode basicInfo section")
	}
	if row.DestinationIntro, err = json.Marshal(plan.DestinationIntro); err != nil {
		return nil, errors.Wrap(err, "failed to encode destinationIntro section")
	}
	if row.DailyPlan, err = json.Marshal(plan.DailyPlan); err != nil {
		return nil, errors.Wrap(err, "failed to encode dailyPlan section")
	}
	if row.Summary, err = json.Marshal(plan.Summary); err != nil {
		return nil, errors.Wrap(err, "failed to encode summary section")
	}

	return row, nil
}

func toStoredPlan(row *planRow) (*entity.StoredPlan, error) {
	plan := &entity.StoredPlan{
		ID:      row.ID,
		OwnerID: row.OwnerID,
	}
	plan.Title = row.Title

	var err error
	if plan.CreatedAt, err = parseTimestamp(row.CreatedAt); err != nil {
		return nil, errors.Wrap(err, "failed to decode created_at column")
	}
	if plan.UpdatedAt, err = parseTimestamp(row.UpdatedAt); err != nil {
		return nil, errors.Wrap(err, "failed to decode updated_at column")
	}

	sections := []struct {
		name   string
		raw    json.RawMessage
		target any
	}{
		{"basic_info", row.BasicInfo, &plan.BasicInfo},
		{"destination_intro", row.DestinationIntro, &plan.DestinationIntro},
		{"daily_plan", row.DailyPlan, &plan.DailyPlan},
		{"summary", row.Summary, &plan.Summary},
	}
	for _, section := range sections {
		if len(section.raw) == 0 {
			continue
		}
		if err := json.Unmarshal(section.raw, section.target); err != nil {
			return nil, errors.Wrapf(err, "failed to decode %s column", section.name)
		}
	}

	return plan, nil
}

// timestampLayouts covers both remote column types: timestamptz renders as
// RFC 3339, plain timestamp carries no zone suffix.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
}

func parseTimestamp(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}

	for _, layout := range timestampLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed, nil
		}
	}

	return time.Time{}, errors.Errorf("unrecognized timestamp %q", value)
}
