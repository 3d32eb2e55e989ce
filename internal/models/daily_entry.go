package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DailyEntry holds one day of emissions for a user, already converted to
// kg CO2e. There is at most one row per (user_id, date).
type DailyEntry struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_daily_entries_user_date,priority:1" json:"user_id"`
	Date        time.Time `gorm:"type:date;not null;uniqueIndex:idx_daily_entries_user_date,priority:2" json:"date"`
	Travel      float64   `gorm:"not null;default:0" json:"travel"`
	Food        float64   `gorm:"not null;default:0" json:"food"`
	Waste       float64   `gorm:"not null;default:0" json:"waste"`
	Electricity float64   `gorm:"not null;default:0" json:"electricity"`
	CreatedAt   time.Time `json:"created_at"`
	User        User      `gorm:"foreignKey:UserID" json:"-"`
}

func (e *DailyEntry) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

func (DailyEntry) TableName() string {
	return "daily_entries"
}

func (e *DailyEntry) Total() float64 {
	return e.Travel + e.Food + e.Waste + e.Electricity
}
