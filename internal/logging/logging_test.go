package logging

import (
	"context"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"github.com/ahmetcoskunkizilkaya/ecotrack-backend/internal/database/dbtest"
	"github.com/ahmetcoskunkizilkaya/ecotrack-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingHandler struct {
	level   slog.Level
	records []slog.Record
}

func (r *recordingHandler) Enabled(_ context.Context, l slog.Level) bool { return l >= r.level }
func (r *recordingHandler) Handle(_ context.Context, rec slog.Record) error {
	r.records = append(r.records, rec)
	return nil
}
func (r *recordingHandler) WithAttrs([]slog.Attr) slog.Handler { return r }
func (r *recordingHandler) WithGroup(string) slog.Handler      { return r }

func TestMultiHandlerFansOutByLevel(t *testing.T) {
	info := &recordingHandler{level: slog.LevelInfo}
	errs := &recordingHandler{level: slog.LevelError}
	logger := slog.New(NewMultiHandler(info, errs))

	logger.Info("hello")
	logger.Error("boom")
	logger.Debug("dropped")

	assert.Len(t, info.records, 2)
	require.Len(t, errs.records, 1)
	assert.Equal(t, "boom", errs.records[0].Message)
}

func TestDBHandlerPersistsErrors(t *testing.T) {
	db := dbtest.New(t)
	h := NewDBHandler(db, time.Hour)
	t.Cleanup(h.Stop)

	logger := slog.New(h).With("action", "generate_goals")
	logger.Info("ignored")
	logger.Error("AI request failed", "user_id", "u-1", "error", "timeout", "provider", "gemini", "latency_ms", 12.6)
	h.Flush()

	var logs []models.SystemLog
	require.NoError(t, db.Find(&logs).Error)
	require.Len(t, logs, 1)

	entry := logs[0]
	assert.Equal(t, "ERROR", entry.Level)
	assert.Equal(t, "generate_goals", entry.Action)
	assert.Equal(t, "timeout", entry.Error)
	require.NotNil(t, entry.UserID)
	assert.Equal(t, "u-1", *entry.UserID)
	assert.Equal(t, 13, entry.LatencyMs)

	var extra map[string]interface{}
	require.NoError(t, json.Unmarshal(entry.Extra, &extra))
	assert.Equal(t, "gemini", extra["provider"])
}

func TestCleanupRemovesExpiredLogs(t *testing.T) {
	db := dbtest.New(t)
	now := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, db.Create(&[]models.SystemLog{
		{Timestamp: now.AddDate(0, 0, -40), Level: "ERROR", Message: "old"},
		{Timestamp: now.AddDate(0, 0, -2), Level: "ERROR", Message: "recent"},
	}).Error)

	deleted, err := Cleanup(db, 30, now)
	require.NoError(t, err)
	assert.EqualValues(t, 1, deleted)

	var remaining []models.SystemLog
	require.NoError(t, db.Find(&remaining).Error)
	require.Len(t, remaining, 1)
	assert.Equal(t, "recent", remaining[0].Message)
}
