package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User is a tracker account. BaselineFootprint is computed once at signup.
// TotalPoints only grows, and only through goal completion.
type User struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Username          string    `gorm:"not null;size:80;uniqueIndex" json:"username"`
	Password          string    `gorm:"not null" json:"-"`
	FullName          string    `gorm:"size:150" json:"full_name"`
	LocationType      string    `gorm:"size:20" json:"location_type"`
	HouseholdSize     int       `gorm:"not null;default:1" json:"household_size"`
	BaselineFootprint float64   `gorm:"not null;default:0" json:"baseline_footprint"`
	SetupComplete     bool      `gorm:"default:false" json:"setup_complete"`
	TotalPoints       int       `gorm:"not null;default:0" json:"totalPoints"`
	Role              string    `gorm:"size:20;default:'user'" json:"role"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// DisplayName prefers the full name and falls back to the username.
func (u *User) DisplayName() string {
	if u.FullName != "" {
		return u.FullName
	}
	return u.Username
}
