package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Badge is a catalog entry. Rows are seeded from the fixed catalog, never
// created by users.
type Badge struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Criteria    string    `gorm:"not null;size:50;uniqueIndex" json:"criteria"`
	Name        string    `gorm:"not null;size:100;uniqueIndex" json:"name"`
	Description string    `gorm:"type:text;not null" json:"description"`
	Icon        string    `gorm:"not null;size:16" json:"icon"`
	CreatedAt   time.Time `json:"created_at"`
}

func (b *Badge) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

func (Badge) TableName() string {
	return "badges"
}

// UserBadge records that a user earned a badge. One row per (user, badge).
type UserBadge struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_user_badges_user_badge,priority:1" json:"user_id"`
	BadgeID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_user_badges_user_badge,priority:2" json:"badge_id"`
	EarnedAt time.Time `gorm:"not null" json:"earned_at"`
	User     User      `gorm:"foreignKey:UserID" json:"-"`
	Badge    Badge     `gorm:"foreignKey:BadgeID" json:"badge,omitempty"`
}

func (ub *UserBadge) BeforeCreate(tx *gorm.DB) error {
	if ub.ID == uuid.Nil {
		ub.ID = uuid.New()
	}
	return nil
}

func (UserBadge) TableName() string {
	return "user_badges"
}
