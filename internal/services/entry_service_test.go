package services

import (
	"testing"
	"time"

	"github.com/ahmetcoskunkizilkaya/ecotrack-backend/internal/database/dbtest"
	"github.com/ahmetcoskunkizilkaya/ecotrack-backend/internal/emission"
	"github.com/ahmetcoskunkizilkaya/ecotrack-backend/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddDailyConvertsActivity(t *testing.T) {
	db := dbtest.New(t)
	svc := NewEntryService(db)
	svc.now = fixedClock
	user := createUser(t, db, "alice", "")

	resp, err := svc.AddDaily(user.ID, emission.Activity{Travel: 10, Food: 2, Waste: 1, Electricity: 3})
	require.NoError(t, err)

	assert.Equal(t, "2026-03-14", resp.Date)
	assert.InDelta(t, 1.92, resp.Travel, 0.0001)
	assert.InDelta(t, 5.0, resp.Food, 0.0001)
	assert.InDelta(t, 1.5, resp.Waste, 0.0001)
	assert.InDelta(t, 13.5, resp.Electricity, 0.0001)
	assert.InDelta(t, 21.92, resp.Total, 0.0001)
}

func TestAddDailyRejectsSecondEntry(t *testing.T) {
	db := dbtest.New(t)
	svc := NewEntryService(db)
	svc.now = fixedClock
	user := createUser(t, db, "alice", "")

	_, err := svc.AddDaily(user.ID, emission.Activity{Travel: 1})
	require.NoError(t, err)

	_, err = svc.AddDaily(user.ID, emission.Activity{Travel: 2})
	assert.ErrorIs(t, err, ErrEntryExists)

	svc.now = func() time.Time { return fixedNow.AddDate(0, 0, 1) }
	next, err := svc.AddDaily(user.ID, emission.Activity{Travel: 2})
	require.NoError(t, err)
	assert.Equal(t, "2026-03-15", next.Date)

	var count int64
	require.NoError(t, db.Model(&models.DailyEntry{}).Where("user_id = ?", user.ID).Count(&count).Error)
	assert.Equal(t, int64(2), count)
}

func TestAddDailyUnknownUser(t *testing.T) {
	svc := NewEntryService(dbtest.New(t))

	_, err := svc.AddDaily(uuid.New(), emission.Activity{})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestChartWindows(t *testing.T) {
	db := dbtest.New(t)
	svc := NewEntryService(db)
	svc.now = fixedClock
	user := createUser(t, db, "alice", "")

	for _, daysAgo := range []int{0, 3, 20, 45} {
		createEntry(t, db, user.ID, fixedNow.AddDate(0, 0, -daysAgo), 1, 1)
	}

	tests := []struct {
		filter string
		want   int
	}{
		{"daily", 1},
		{"weekly", 2},
		{"monthly", 3},
		{"bogus", 1},
	}
	for _, tt := range tests {
		t.Run(tt.filter, func(t *testing.T) {
			points, err := svc.Chart(user.ID, tt.filter)
			require.NoError(t, err)
			assert.Len(t, points, tt.want)
		})
	}

	points, err := svc.Chart(user.ID, "monthly")
	require.NoError(t, err)
	assert.Equal(t, "2026-02-22", points[0].Date)
	assert.Equal(t, "2026-03-14", points[len(points)-1].Date)
}

func TestFact(t *testing.T) {
	svc := NewEntryService(nil)
	assert.Contains(t, facts, svc.Fact())
}
