package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	GoalSourceManual    = "manual"
	GoalSourceGenerated = "generated"

	DefaultGoalPoints   = 10
	DefaultGoalCategory = "general"
)

// Goal is a point-valued task. Completed only moves from false to true and
// DateCompleted is set in the same update.
type Goal struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	UserID        uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	Title         string     `gorm:"not null;size:150" json:"title"`
	Description   string     `gorm:"size:300" json:"description"`
	Category      string     `gorm:"size:50;default:'general'" json:"category"`
	Points        int        `gorm:"not null;default:10" json:"points"`
	Completed     bool       `gorm:"not null;default:false;index" json:"completed"`
	DateCompleted *time.Time `json:"date_completed"`
	Source        string     `gorm:"size:20;default:'manual'" json:"source"`
	GeneratedAt   *time.Time `gorm:"index" json:"generated_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
	User          User       `gorm:"foreignKey:UserID" json:"-"`
}

func (g *Goal) BeforeCreate(tx *gorm.DB) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	return nil
}
