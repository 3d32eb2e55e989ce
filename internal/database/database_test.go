package database_test

import (
	"testing"

	"github.com/ahmetcoskunkizilkaya/ecotrack-backend/internal/database"
	"github.com/ahmetcoskunkizilkaya/ecotrack-backend/internal/database/dbtest"
	"github.com/ahmetcoskunkizilkaya/ecotrack-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrateCreatesDomainTables(t *testing.T) {
	db := dbtest.New(t)

	require.NoError(t, database.Ping(db))
	for _, model := range []interface{}{
		&models.User{}, &models.DailyEntry{}, &models.Goal{},
		&models.Badge{}, &models.UserBadge{}, &models.RefreshToken{}, &models.SystemLog{},
	} {
		assert.True(t, db.Migrator().HasTable(model), "%T", model)
	}
	assert.True(t, db.Migrator().HasIndex(&models.DailyEntry{}, "idx_daily_entries_user_date"))
	assert.True(t, db.Migrator().HasIndex(&models.UserBadge{}, "idx_user_badges_user_badge"))
}

func TestTestDatabasesAreIsolated(t *testing.T) {
	a := dbtest.New(t)
	b := dbtest.New(t)

	require.NoError(t, a.Create(&models.User{Username: "alice", Password: "x"}).Error)

	var count int64
	require.NoError(t, b.Model(&models.User{}).Count(&count).Error)
	assert.Zero(t, count)
}
