// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// BasicInfo holds the minimal structured trip parameters that drive
// itinerary generation. Destination is the only hard requirement;
// Days is caller-supplied and is not reconciled against the date range.
type BasicInfo struct {
	Departure   string   `json:"departure,omitempty"`
	Destination string   `json:"destination"`
	Travelers   int      `json:"travelers"`
	StartDate   string   `json:"startDate"`
	EndDate     string   `json:"endDate"`
	Days        int      `json:"days"`
	Preferences []string `json:"preferences"`
	Budget      float64  `json:"budget"`
}

// DestinationIntro is free-text background about the destination.
type DestinationIntro struct {
	Overview string `json:"overview,omitempty"`
	Weather  string `json:"weather,omitempty"`
	Culture  string `json:"culture,omitempty"`
}

// Attraction is a single sight within a day plan. Location is left untyped
// because the plan provider returns coordinates in varying shapes.
type Attraction struct {
	Name               string  `json:"name"`
	Address            string  `json:"address,omitempty"`
	Description        string  `json:"description,omitempty"`
	TicketPrice        float64 `json:"ticketPrice,omitempty"`
	EstimatedVisitTime string  `json:"estimatedVisitTime,omitempty"`
	Location           any     `json:"location,omitempty"`
}

// Accommodation is the overnight stay for a day plan.
type Accommodation struct {
	Name    string  `json:"name"`
	Address string  `json:"address,omitempty"`
	Cost    float64 `json:"cost,omitempty"`
}

// MealInfo describes a single meal.
type MealInfo struct {
	Name        string  `json:"name,omitempty"`
	Description string  `json:"description,omitempty"`
	Cost        float64 `json:"cost,omitempty"`
}

// DayMeals groups the three meals of a day.
type DayMeals struct {
	Breakfast MealInfo `json:"breakfast"`
	Lunch     MealInfo `json:"lunch"`
	Dinner    MealInfo `json:"dinner"`
}

// DayPlan is one day of the itinerary. Day is a 1-based sequence index.
type DayPlan struct {
	Day           int            `json:"day"`
	Date          string         `json:"date"`
	Accommodation *Accommodation `json:"accommodation,omitempty"`
	Attractions   []Attraction   `json:"attractions"`
	Meals         *DayMeals      `json:"meals,omitempty"`
}

// TotalBudget is the cost breakdown of a plan. The additive property
// (attractions + hotels + meals = total) is advisory only; the plan
// provider produces these numbers and this layer does not reconcile them.
type TotalBudget struct {
	Attractions float64 `json:"attractions"`
	Hotels      float64 `json:"hotels"`
	Meals       float64 `json:"meals"`
	Total       float64 `json:"total"`
}

// Summary closes out a plan with totals and free-text suggestions.
type Summary struct {
	TotalDays   int         `json:"totalDays"`
	TotalBudget TotalBudget `json:"totalBudget"`
	Suggestions []string    `json:"suggestions"`
}

// TravelPlan is the canonical itinerary document. It carries no storage
// identity; that is assigned by the backend on creation.
type TravelPlan struct {
	Title            string           `json:"title"`
	BasicInfo        BasicInfo        `json:"basicInfo"`
	DestinationIntro DestinationIntro `json:"destinationIntro"`
	DailyPlan        []DayPlan        `json:"dailyPlan"`
	Summary          Summary          `json:"summary"`
}

// StoredPlan is the persisted form of a TravelPlan: the document plus the
// backend-assigned id, its single owner and timestamps. Every read, update
// and delete against a StoredPlan is filtered by owner.
type StoredPlan struct {
	ID        int64     `json:"id"`
	OwnerID   string    `json:"ownerId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	TravelPlan
}
