package model

import (
	"time"

	"gorm.io/datatypes"
)

// TravelPlanModel mirrors the 'travel_plans' table. The itinerary document
// lives in an opaque jsonb blob next to a denormalized title; owner_id is a
// plain column filtered on every query.
type TravelPlanModel struct {
	ID        int64          `gorm:"primaryKey;autoIncrement"`
	OwnerID   string         `gorm:"type:varchar(64);index;not null"`
	Title     string         `gorm:"type:varchar(255);not null"`
	Data      datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (TravelPlanModel) TableName() string {
	return "travel_plans"
}
