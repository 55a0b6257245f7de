// Package schema validates and normalizes loosely-typed travel plan
// documents into the canonical entity shape. It is a pure data contract:
// no side effects, no storage, no provider calls.
package schema

import (
	"fmt"

	"tripflow/internal/domain/entity"

	"github.com/go-viper/mapstructure/v2"
)

// Violation reports the first offending field of a malformed document.
type Violation struct {
	Field  string
	Reason string
}

// Error implements the error interface.
func (v *Violation) Error() string {
	return fmt.Sprintf("schema violation at %s: %s", v.Field, v.Reason)
}

// Validate coerces a loosely-typed document (for example one produced by a
// third-party provider or a JSON client) into a conformant TravelPlan. It
// weakly converts compatible types (numbers in strings, ints for floats)
// and fails with a *Violation naming the offending field.
//
// The additive total-budget property and the days/date-range relationship
// are advisory only and deliberately not checked here.
func Validate(doc map[string]any) (*entity.TravelPlan, error) {
	var plan entity.TravelPlan

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &plan,
		TagName:          "json",
		WeaklyTypedInput: true,
	})
	if err != nil {
		return nil, &Violation{Field: "document", Reason: err.Error()}
	}
	if err := decoder.Decode(doc); err != nil {
		return nil, &Violation{Field: "document", Reason: err.Error()}
	}

	if plan.Title == "" {
		return nil, &Violation{Field: "title", Reason: "must not be empty"}
	}
	if err := validateBasicInfo(&plan.BasicInfo); err != nil {
		return nil, err
	}
	for i, day := range plan.DailyPlan {
		if day.Day < 1 {
			return nil, &Violation{
				Field:  fmt.Sprintf("dailyPlan[%d].day", i),
				Reason: "must be a positive 1-based index",
			}
		}
	}

	normalize(&plan)

	return &plan, nil
}

// ValidateBasicInfo checks a standalone BasicInfo object, e.g. one produced
// by the extraction pipeline.
func ValidateBasicInfo(info *entity.BasicInfo) error {
	return validateBasicInfo(info)
}

func validateBasicInfo(info *entity.BasicInfo) error {
	if info.Destination == "" {
		return &Violation{Field: "basicInfo.destination", Reason: "must not be empty"}
	}
	if info.Travelers < 1 {
		return &Violation{Field: "basicInfo.travelers", Reason: "must be a positive integer"}
	}
	if info.Budget < 0 {
		return &Violation{Field: "basicInfo.budget", Reason: "must not be negative"}
	}
	// ISO calendar dates compare correctly as strings.
	if info.StartDate != "" && info.EndDate != "" && info.StartDate > info.EndDate {
		return &Violation{Field: "basicInfo.startDate", Reason: "must not be after endDate"}
	}

	return nil
}

// normalize fills nil collections so the canonical form always serializes
// arrays, never null, keeping responses identical across backends.
func normalize(plan *entity.TravelPlan) {
	if plan.BasicInfo.Preferences == nil {
		plan.BasicInfo.Preferences = []string{}
	}
	if plan.DailyPlan == nil {
		plan.DailyPlan = []entity.DayPlan{}
	}
	for i := range plan.DailyPlan {
		if plan.DailyPlan[i].Attractions == nil {
			plan.DailyPlan[i].Attractions = []entity.Attraction{}
		}
	}
	if plan.Summary.Suggestions == nil {
		plan.Summary.Suggestions = []string{}
	}
}
