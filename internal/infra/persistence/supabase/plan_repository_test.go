package supabase

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"tripflow/config"
	"tripflow/internal/domain/entity"
	domainerrors "tripflow/internal/domain/errors"
	"tripflow/internal/domain/repository"
	"tripflow/internal/domain/schema"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepository(t *testing.T, handler http.HandlerFunc) repository.PlanRepository {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{
		Supabase: &config.SupabaseConfig{
			URL:            server.URL,
			ServiceRoleKey: "service-key",
		},
	}
	client, err := NewClient(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	return NewPlanRepository(client)
}

func TestPlanRepository_List_AppliesOwnerFilter(t *testing.T) {
	var gotQuery, gotAuth string
	repo := newTestRepository(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode([]map[string]any{
			{
				"id":         1,
				"owner_id":   "owner-1",
				"title":      "Tokyo Trip",
				"basic_info": map[string]any{"destination": "Tokyo", "travelers": 2},
				"created_at": "2026-04-01T10:00:00Z",
			},
		})
	})

	plans, err := repo.List(context.Background(), "owner-1")

	require.NoError(t, err)
	assert.Contains(t, gotQuery, "owner_id=eq.owner-1")
	assert.Contains(t, gotQuery, "order=id.asc")
	assert.Equal(t, "Bearer service-key", gotAuth)
	require.Len(t, plans, 1)
	assert.Equal(t, int64(1), plans[0].ID)
	assert.Equal(t, "owner-1", plans[0].OwnerID)
	assert.Equal(t, "Tokyo", plans[0].BasicInfo.Destination)
	assert.Equal(t, 2026, plans[0].CreatedAt.Year())
}

func TestPlanRepository_Create_InjectsOwner(t *testing.T) {
	var gotBody planRow
	repo := newTestRepository(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		assert.Equal(t, "return=representation", r.Header.Get("Prefer"))
		json.NewEncoder(w).Encode([]map[string]any{
			{"id": 5, "owner_id": gotBody.OwnerID, "title": gotBody.Title},
		})
	})

	plan := &entity.TravelPlan{Title: "Kyoto Trip"}
	plan.BasicInfo = entity.BasicInfo{Destination: "Kyoto", Travelers: 1}

	stored, err := repo.Create(context.Background(), "owner-1", plan)

	require.NoError(t, err)
	assert.Equal(t, "owner-1", gotBody.OwnerID)
	assert.Equal(t, int64(5), stored.ID)
	assert.Equal(t, "Kyoto Trip", stored.Title)
}

func TestPlanRepository_Update_SendsOnlySuppliedSections(t *testing.T) {
	var gotQuery string
	var gotPatch map[string]json.RawMessage
	repo := newTestRepository(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotPatch))
		json.NewEncoder(w).Encode([]map[string]any{
			{"id": 7, "owner_id": "owner-1", "title": "Renamed"},
		})
	})

	doc := map[string]any{
		"title":     "Renamed",
		"basicInfo": map[string]any{"destination": "Nara"},
	}
	stored, err := repo.Update(context.Background(), 7, "owner-1", doc)

	require.NoError(t, err)
	assert.Contains(t, gotQuery, "id=eq.7")
	assert.Contains(t, gotQuery, "owner_id=eq.owner-1")
	assert.Contains(t, gotPatch, "title")
	assert.Contains(t, gotPatch, "basic_info")
	assert.NotContains(t, gotPatch, "daily_plan")
	assert.NotContains(t, gotPatch, "summary")
	assert.Equal(t, int64(7), stored.ID)
}

func TestPlanRepository_Update_EmptyMatchIsNotFound(t *testing.T) {
	repo := newTestRepository(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]map[string]any{})
	})

	_, err := repo.Update(context.Background(), 99, "owner-2", map[string]any{"title": "x"})

	assert.ErrorIs(t, err, repository.ErrPlanNotFound)
}

func TestPlanRepository_Delete_EmptyMatchIsNotFound(t *testing.T) {
	repo := newTestRepository(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]map[string]any{})
	})

	err := repo.Delete(context.Background(), 99, "owner-2")

	assert.ErrorIs(t, err, repository.ErrPlanNotFound)
}

// Both backends must serialize the same stored document identically; the
// local backend round-trips one json blob, the remote one decodes per-section
// columns, and the API response may not reveal which one served it.
func TestPlanRepository_MatchesLocalBlobSerialization(t *testing.T) {
	const storedAt = "2026-04-01T10:00:00Z"
	repo := newTestRepository(t, func(w http.ResponseWriter, r *http.Request) {
		var row planRow
		require.NoError(t, json.NewDecoder(r.Body).Decode(&row))
		row.ID = 1
		row.CreatedAt = storedAt
		row.UpdatedAt = storedAt
		json.NewEncoder(w).Encode([]planRow{row})
	})

	plan, err := schema.Validate(map[string]any{
		"title": "Tokyo Trip",
		"basicInfo": map[string]any{
			"departure":   "Shanghai",
			"destination": "Tokyo",
			"travelers":   2,
			"days":        2,
			"budget":      1500,
			"startDate":   "2026-04-01",
			"endDate":     "2026-04-02",
			"preferences": []any{"food"},
		},
		"destinationIntro": map[string]any{"overview": "Metropolis"},
		"dailyPlan": []any{
			map[string]any{
				"day":  1,
				"date": "2026-04-01",
				"attractions": []any{
					map[string]any{"name": "Senso-ji", "ticketPrice": 0},
				},
			},
		},
		"summary": map[string]any{
			"totalDays":   2,
			"totalBudget": map[string]any{"attractions": 100, "hotels": 800, "meals": 600, "total": 1500},
			"suggestions": []any{"book early"},
		},
	})
	require.NoError(t, err)

	remote, err := repo.Create(context.Background(), "owner-1", plan)
	require.NoError(t, err)

	// The local backend's path: the whole document as one blob, decoded
	// back into the stored entity.
	blob, err := json.Marshal(plan)
	require.NoError(t, err)
	local := &entity.StoredPlan{
		ID:        1,
		OwnerID:   "owner-1",
		CreatedAt: time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC),
		UpdatedAt: time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC),
	}
	require.NoError(t, json.Unmarshal(blob, &local.TravelPlan))

	remoteJSON, err := json.Marshal(remote)
	require.NoError(t, err)
	localJSON, err := json.Marshal(local)
	require.NoError(t, err)
	assert.JSONEq(t, string(localJSON), string(remoteJSON))
}

func TestPlanRepository_ParsesTimestampWithoutZone(t *testing.T) {
	repo := newTestRepository(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]map[string]any{
			{
				"id":         1,
				"owner_id":   "owner-1",
				"title":      "Tokyo Trip",
				"created_at": "2026-04-01T10:00:00.123456",
				"updated_at": "2026-04-01T10:00:00.123456",
			},
		})
	})

	plans, err := repo.List(context.Background(), "owner-1")

	require.NoError(t, err)
	require.Len(t, plans, 1)
	assert.False(t, plans[0].CreatedAt.IsZero())
	assert.Equal(t, 2026, plans[0].CreatedAt.Year())
}

func TestPlanRepository_RejectsUnrecognizedTimestamp(t *testing.T) {
	repo := newTestRepository(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]map[string]any{
			{
				"id":         1,
				"owner_id":   "owner-1",
				"title":      "Tokyo Trip",
				"created_at": "04/01/2026 10:00",
			},
		})
	})

	_, err := repo.List(context.Background(), "owner-1")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "created_at")
}

func TestPlanRepository_UpstreamFailureCarriesStatus(t *testing.T) {
	repo := newTestRepository(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte(`{"message":"overloaded"}`))
	})

	_, err := repo.List(context.Background(), "owner-1")

	require.Error(t, err)
	var storageErr *domainerrors.StorageError
	require.ErrorAs(t, err, &storageErr)
	assert.Equal(t, http.StatusServiceUnavailable, storageErr.UpstreamStatus())
	assert.Contains(t, storageErr.Details(), "overloaded")
}
