package services

import (
	"context"
	"testing"
	"time"

	"github.com/ahmetcoskunkizilkaya/ecotrack-backend/internal/ai"
	"github.com/ahmetcoskunkizilkaya/ecotrack-backend/internal/database/dbtest"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecommend(t *testing.T) {
	db := dbtest.New(t)
	fake := &ai.Fake{Reply: "```json\n{\"priority_actions\": [], \"recommendations\": []}\n```"}
	svc := NewRecommendationService(db, fake, time.Second)
	svc.now = fixedClock
	user := createUser(t, db, "alice", "")
	createEntry(t, db, user.ID, fixedNow.AddDate(0, 0, -10), 4, 2)
	createEntry(t, db, user.ID, fixedNow.AddDate(0, 0, -40), 100, 100)

	out, err := svc.Recommend(context.Background(), user.ID)
	require.NoError(t, err)
	assert.JSONEq(t, `{"priority_actions": [], "recommendations": []}`, string(out))

	require.Equal(t, 1, fake.Calls())
	assert.Contains(t, fake.Prompts[0], "past 30 days")
	assert.Contains(t, fake.Prompts[0], "Travel: 4.00 kg CO2")
}

func TestRecommendNoData(t *testing.T) {
	db := dbtest.New(t)
	fake := &ai.Fake{Reply: "{}"}
	svc := NewRecommendationService(db, fake, time.Second)
	svc.now = fixedClock
	user := createUser(t, db, "alice", "")

	_, err := svc.Recommend(context.Background(), user.ID)
	assert.ErrorIs(t, err, ErrInsufficientData)
	assert.Zero(t, fake.Calls())

	_, err = svc.Recommend(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestRecommendMalformedReply(t *testing.T) {
	tests := []struct {
		name  string
		reply string
	}{
		{"bare", "{\"priority_actions\": [,]}"},
		{"fenced", "```json\n{\"priority_actions\": [,]}\n```"},
		{"prose", "Try cycling more often."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := dbtest.New(t)
			svc := NewRecommendationService(db, &ai.Fake{Reply: tt.reply}, time.Second)
			svc.now = fixedClock
			user := createUser(t, db, "alice", "")
			createEntry(t, db, user.ID, fixedNow, 1, 1)

			_, err := svc.Recommend(context.Background(), user.ID)
			require.ErrorIs(t, err, ErrUpstreamFormat)
			var ferr *UpstreamFormatError
			require.ErrorAs(t, err, &ferr)
			assert.Equal(t, tt.reply, ferr.Raw)
		})
	}
}
