package schema

import (
	"testing"

	"tripflow/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDocument() map[string]any {
	return map[string]any{
		"title": "Tokyo Trip",
		"basicInfo": map[string]any{
			"departure":   "Shanghai",
			"destination": "Tokyo",
			"travelers":   2,
			"days":        3,
			"budget":      1500,
			"startDate":   "2026-04-01",
			"endDate":     "2026-04-03",
			"preferences": []any{"food", "museums"},
		},
		"dailyPlan": []any{
			map[string]any{"day": 1, "date": "2026-04-01"},
			map[string]any{"day": 2, "date": "2026-04-02"},
		},
	}
}

func TestValidate_Success(t *testing.T) {
	plan, err := Validate(validDocument())

	require.NoError(t, err)
	assert.Equal(t, "Tokyo Trip", plan.Title)
	assert.Equal(t, "Tokyo", plan.BasicInfo.Destination)
	assert.Equal(t, 2, plan.BasicInfo.Travelers)
	assert.InDelta(t, 1500, plan.BasicInfo.Budget, 0.001)
	assert.Len(t, plan.DailyPlan, 2)
}

func TestValidate_WeaklyTypedNumbers(t *testing.T) {
	doc := validDocument()
	basicInfo := doc["basicInfo"].(map[string]any)
	basicInfo["travelers"] = "2"
	basicInfo["budget"] = "1500.5"

	plan, err := Validate(doc)

	require.NoError(t, err)
	assert.Equal(t, 2, plan.BasicInfo.Travelers)
	assert.InDelta(t, 1500.5, plan.BasicInfo.Budget, 0.001)
}

func TestValidate_MissingTitle(t *testing.T) {
	doc := validDocument()
	doc["title"] = ""

	_, err := Validate(doc)

	var violation *Violation
	require.ErrorAs(t, err, &violation)
	assert.Equal(t, "title", violation.Field)
}

func TestValidate_MissingDestination(t *testing.T) {
	doc := validDocument()
	doc["basicInfo"].(map[string]any)["destination"] = ""

	_, err := Validate(doc)

	var violation *Violation
	require.ErrorAs(t, err, &violation)
	assert.Equal(t, "basicInfo.destination", violation.Field)
}

func TestValidate_NonPositiveTravelers(t *testing.T) {
	doc := validDocument()
	doc["basicInfo"].(map[string]any)["travelers"] = 0

	_, err := Validate(doc)

	var violation *Violation
	require.ErrorAs(t, err, &violation)
	assert.Equal(t, "basicInfo.travelers", violation.Field)
}

func TestValidate_NegativeBudget(t *testing.T) {
	doc := validDocument()
	doc["basicInfo"].(map[string]any)["budget"] = -1

	_, err := Validate(doc)

	var violation *Violation
	require.ErrorAs(t, err, &violation)
	assert.Equal(t, "basicInfo.budget", violation.Field)
}

func TestValidate_InvertedDateRange(t *testing.T) {
	doc := validDocument()
	doc["basicInfo"].(map[string]any)["startDate"] = "2026-04-10"

	_, err := Validate(doc)

	var violation *Violation
	require.ErrorAs(t, err, &violation)
	assert.Equal(t, "basicInfo.startDate", violation.Field)
}

func TestValidate_ZeroBasedDayIndex(t *testing.T) {
	doc := validDocument()
	doc["dailyPlan"] = []any{map[string]any{"day": 0}}

	_, err := Validate(doc)

	var violation *Violation
	require.ErrorAs(t, err, &violation)
	assert.Equal(t, "dailyPlan[0].day", violation.Field)
}

func TestValidate_NormalizesNilCollections(t *testing.T) {
	doc := map[string]any{
		"title": "Minimal",
		"basicInfo": map[string]any{
			"destination": "Tokyo",
			"travelers":   1,
		},
	}

	plan, err := Validate(doc)

	require.NoError(t, err)
	assert.Equal(t, []string{}, plan.BasicInfo.Preferences)
	assert.Equal(t, []entity.DayPlan{}, plan.DailyPlan)
	assert.Equal(t, []string{}, plan.Summary.Suggestions)
}

func TestValidateBasicInfo_Standalone(t *testing.T) {
	err := ValidateBasicInfo(&entity.BasicInfo{Destination: "Kyoto", Travelers: 1})

	assert.NoError(t, err)
}
