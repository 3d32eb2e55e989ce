package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/ahmetcoskunkizilkaya/ecotrack-backend/internal/ai"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const recommendationWindowDays = 30

type RecommendationService struct {
	db      *gorm.DB
	ai      ai.Client
	timeout time.Duration
	now     func() time.Time
}

func NewRecommendationService(db *gorm.DB, client ai.Client, timeout time.Duration) *RecommendationService {
	return &RecommendationService{db: db, ai: client, timeout: timeout, now: time.Now}
}

// Recommend returns the model's JSON advice for the last 30 days of
// entries. The reply is passed through as-is once it parses as JSON.
func (s *RecommendationService) Recommend(ctx context.Context, userID uuid.UUID) (json.RawMessage, error) {
	if err := ensureUser(s.db, userID); err != nil {
		return nil, err
	}

	since := startOfDay(s.now()).AddDate(0, 0, -recommendationWindowDays)
	entries, err := recentEntries(s.db, userID, since)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, ErrInsufficientData
	}

	reply, err := generateText(ctx, s.ai, s.timeout, "recommendations", recommendationPrompt(summarize(entries), recommendationWindowDays))
	if err != nil {
		return nil, err
	}

	body := ai.CleanJSON(reply)
	var decoded interface{}
	if err := json.Unmarshal([]byte(body), &decoded); err != nil {
		return nil, &UpstreamFormatError{Raw: reply, Err: err}
	}
	return json.RawMessage(body), nil
}
