package services

import (
	"testing"
	"time"

	"github.com/ahmetcoskunkizilkaya/ecotrack-backend/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var fixedNow = time.Date(2026, 3, 14, 15, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

func createUser(t *testing.T, db *gorm.DB, username, fullName string) *models.User {
	t.Helper()
	user := &models.User{
		Username:      username,
		Password:      "x",
		FullName:      fullName,
		HouseholdSize: 1,
		Role:          models.RoleUser,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createGoal(t *testing.T, db *gorm.DB, userID uuid.UUID, points int, completed bool) *models.Goal {
	t.Helper()
	goal := &models.Goal{
		UserID:   userID,
		Title:    "Walk to work",
		Category: "travel",
		Points:   points,
		Source:   models.GoalSourceManual,
	}
	require.NoError(t, db.Create(goal).Error)
	if completed {
		now := fixedNow
		require.NoError(t, db.Model(goal).Updates(map[string]interface{}{"completed": true, "date_completed": now}).Error)
		require.NoError(t, db.Model(&models.User{}).Where("id = ?", userID).
			Update("total_points", gorm.Expr("total_points + ?", points)).Error)
	}
	return goal
}

func createEntry(t *testing.T, db *gorm.DB, userID uuid.UUID, date time.Time, travel, food float64) {
	t.Helper()
	require.NoError(t, db.Create(&models.DailyEntry{
		UserID: userID,
		Date:   startOfDay(date),
		Travel: travel,
		Food:   food,
	}).Error)
}
