package models

import "gorm.io/datatypes"

// PostModel persists duty posts. EligibleYears is a JSON array of cohort
// years.
type PostModel struct {
	ID                uint           `gorm:"primaryKey"`
	Name              string         `gorm:"size:100;not null;uniqueIndex"`
	GenderRestriction string         `gorm:"size:10;not null"`
	EligibleYears     datatypes.JSON `gorm:"not null"`
	Heightened        bool           `gorm:"not null;default:false"`
	RequiredRole      string         `gorm:"size:100"`
	CreatedAt         int64          `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt         int64          `gorm:"autoUpdateTime:milli;not null"`
}

func (PostModel) TableName() string {
	return "posts"
}

// RosterDayModel persists roster days. Calendar dates are stored as
// YYYY-MM-DD strings, which order and range correctly in SQL.
type RosterDayModel struct {
	DutyDate  string `gorm:"primaryKey;size:10;column:duty_date"`
	Routine   string `gorm:"size:2;not null"`
	Status    string `gorm:"size:10;not null;index"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (RosterDayModel) TableName() string {
	return "roster_days"
}

// AllocationModel persists allocations. The (user_id, duty_date) unique
// index is the storage-level guarantee that a user holds at most one slot
// per day.
type AllocationModel struct {
	ID           string `gorm:"primaryKey;size:36"`
	UserID       string `gorm:"size:32;not null;uniqueIndex:idx_allocations_user_date"`
	DutyDate     string `gorm:"size:10;not null;uniqueIndex:idx_allocations_user_date;index"`
	PostID       uint   `gorm:"not null;index"`
	IsPunishment bool   `gorm:"not null;default:false"`
	Tag          string `gorm:"size:100"`
	Version      int    `gorm:"not null;default:1"`
	CreatedAt    int64  `gorm:"autoCreateTime:milli;not null"`
}

func (AllocationModel) TableName() string {
	return "allocations"
}

// UnavailabilityWindowModel persists unavailability windows with inclusive
// date bounds.
type UnavailabilityWindowModel struct {
	ID        uint   `gorm:"primaryKey"`
	UserID    string `gorm:"size:32;not null;index"`
	StartDate string `gorm:"size:10;not null;index"`
	EndDate   string `gorm:"size:10;not null;index"`
	Reason    string `gorm:"size:200"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null"`
}

func (UnavailabilityWindowModel) TableName() string {
	return "unavailability_windows"
}
