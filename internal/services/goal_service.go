package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/ahmetcoskunkizilkaya/ecotrack-backend/internal/ai"
	"github.com/ahmetcoskunkizilkaya/ecotrack-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/ecotrack-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	generationWindowDays = 14
	minGeneratedPoints   = 10
	maxGeneratedPoints   = 30
)

var generatedCategories = map[string]bool{
	"travel": true, "food": true, "waste": true, "electricity": true,
}

type GoalService struct {
	db       *gorm.DB
	ai       ai.Client
	badges   *BadgeService
	cooldown time.Duration
	timeout  time.Duration
	now      func() time.Time
}

func NewGoalService(db *gorm.DB, client ai.Client, badges *BadgeService, cooldown, timeout time.Duration) *GoalService {
	return &GoalService{
		db:       db,
		ai:       client,
		badges:   badges,
		cooldown: cooldown,
		timeout:  timeout,
		now:      time.Now,
	}
}

func (s *GoalService) List(userID uuid.UUID) ([]dto.GoalResponse, error) {
	var goals []models.Goal
	if err := s.db.Where("user_id = ?", userID).Order("created_at ASC").Find(&goals).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch goals: %w", err)
	}

	resp := make([]dto.GoalResponse, len(goals))
	for i := range goals {
		resp[i] = mapGoalToResponse(&goals[i])
	}
	return resp, nil
}

// Create stores a manual goal. Missing category becomes "general" and
// missing or non-positive points become the default of 10.
func (s *GoalService) Create(userID uuid.UUID, req *dto.CreateGoalRequest) (*dto.GoalResponse, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, &ValidationError{Message: "title is required"}
	}
	if err := ensureUser(s.db, userID); err != nil {
		return nil, err
	}

	category := strings.ToLower(strings.TrimSpace(req.Category))
	if category == "" {
		category = models.DefaultGoalCategory
	}
	points := models.DefaultGoalPoints
	if req.Points != nil && *req.Points > 0 {
		points = *req.Points
	}

	goal := models.Goal{
		UserID:      userID,
		Title:       title,
		Description: strings.TrimSpace(req.Description),
		Category:    category,
		Points:      points,
		Source:      models.GoalSourceManual,
	}
	if err := s.db.Create(&goal).Error; err != nil {
		return nil, fmt.Errorf("failed to create goal: %w", err)
	}

	resp := mapGoalToResponse(&goal)
	return &resp, nil
}

// Complete marks a goal done and awards its points in one transaction.
// Completing an already completed goal succeeds without awarding again.
func (s *GoalService) Complete(userID, goalID uuid.UUID) (*dto.CompleteGoalResponse, error) {
	resp := &dto.CompleteGoalResponse{NewBadges: []dto.BadgeResponse{}}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var goal models.Goal
		if err := tx.First(&goal, "id = ? AND user_id = ?", goalID, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrGoalNotFound
			}
			return fmt.Errorf("failed to fetch goal: %w", err)
		}

		var user models.User
		if !goal.Completed {
			if err := tx.First(&user, "id = ?", userID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrUserNotFound
				}
				return fmt.Errorf("failed to fetch user: %w", err)
			}
		}

		points := goal.Points
		if points <= 0 {
			points = models.DefaultGoalPoints
		}

		awarded := false
		if !goal.Completed {
			// The completed = false guard makes a concurrent second completion
			// update zero rows instead of awarding twice.
			result := tx.Model(&models.Goal{}).
				Where("id = ? AND completed = ?", goal.ID, false).
				Updates(map[string]interface{}{
					"completed":      true,
					"date_completed": s.now().UTC(),
					"points":         points,
				})
			if result.Error != nil {
				return fmt.Errorf("failed to complete goal: %w", result.Error)
			}
			awarded = result.RowsAffected == 1
		}

		if awarded {
			err := tx.Model(&models.User{}).
				Where("id = ?", userID).
				Update("total_points", gorm.Expr("total_points + ?", points)).Error
			if err != nil {
				return fmt.Errorf("failed to award points: %w", err)
			}
		}

		if err := tx.First(&user, "id = ?", userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return fmt.Errorf("failed to reload user: %w", err)
		}

		resp.NewTotalPoints = user.TotalPoints
		if awarded {
			resp.Message = "Goal marked as complete"
			resp.AwardedPoints = points
		} else {
			resp.Message = "Goal already completed"
			resp.AlreadyCompleted = true
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if !resp.AlreadyCompleted && s.badges != nil {
		granted, err := s.badges.Evaluate(userID)
		if err != nil {
			slog.Error("badge evaluation failed", "action", "complete_goal", "user_id", userID.String(), "error", err)
		}
		for i := range granted {
			resp.NewBadges = append(resp.NewBadges, mapBadgeToResponse(&granted[i], nil))
		}
	}

	return resp, nil
}

// Generate asks the text model for 3-5 goals based on the last 14 days of
// emissions. It is a no-op while the user's last generated goal is younger
// than the cooldown.
func (s *GoalService) Generate(ctx context.Context, userID uuid.UUID) (*dto.GenerateGoalsResponse, error) {
	if err := ensureUser(s.db, userID); err != nil {
		return nil, err
	}

	now := s.now().UTC()

	var latest models.Goal
	err := s.db.Where("user_id = ? AND generated_at IS NOT NULL", userID).
		Order("generated_at DESC").
		First(&latest).Error
	switch {
	case err == nil:
		if latest.GeneratedAt != nil && now.Sub(*latest.GeneratedAt) < s.cooldown {
			return &dto.GenerateGoalsResponse{
				Message:          "Goals already generated recently",
				AlreadyGenerated: true,
				Goals:            []dto.GeneratedGoal{},
			}, nil
		}
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, fmt.Errorf("failed to fetch latest generated goal: %w", err)
	}

	entries, err := recentEntries(s.db, userID, startOfDay(now).AddDate(0, 0, -generationWindowDays))
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, ErrInsufficientData
	}

	reply, err := generateText(ctx, s.ai, s.timeout, "generate_goals", goalPrompt(summarize(entries), generationWindowDays))
	if err != nil {
		return nil, err
	}

	generated, err := parseGeneratedGoals(reply)
	if err != nil {
		return nil, err
	}

	goals := make([]models.Goal, len(generated))
	for i, g := range generated {
		goals[i] = models.Goal{
			UserID:      userID,
			Title:       g.Title,
			Description: g.Description,
			Category:    g.Category,
			Points:      g.Points,
			Source:      models.GoalSourceGenerated,
			GeneratedAt: &now,
		}
	}
	if err := s.db.Create(&goals).Error; err != nil {
		return nil, fmt.Errorf("failed to save generated goals: %w", err)
	}

	slog.Info("goals generated", "user_id", userID.String(), "count", len(goals), "provider", s.ai.Name())
	return &dto.GenerateGoalsResponse{
		Message: "Goals generated and saved successfully",
		Goals:   generated,
	}, nil
}

// ClearAll deletes every goal and resets point counters so totals stay
// equal to the (now empty) completed-goal sums. Earned badges are kept.
func (s *GoalService) ClearAll() (int64, error) {
	var deleted int64
	err := s.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.Goal{})
		if result.Error != nil {
			return fmt.Errorf("failed to delete goals: %w", result.Error)
		}
		deleted = result.RowsAffected

		err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).
			Model(&models.User{}).
			Update("total_points", 0).Error
		if err != nil {
			return fmt.Errorf("failed to reset points: %w", err)
		}
		return nil
	})
	return deleted, err
}

// parseGeneratedGoals decodes the model reply and coerces each entry.
// Entries without a title are dropped. Format errors keep the reply as
// received, fences included.
func parseGeneratedGoals(reply string) ([]dto.GeneratedGoal, error) {
	body := []byte(ai.CleanJSON(reply))

	var items []map[string]interface{}
	if err := json.Unmarshal(body, &items); err != nil {
		var wrapped struct {
			Goals []map[string]interface{} `json:"goals"`
		}
		if werr := json.Unmarshal(body, &wrapped); werr != nil || wrapped.Goals == nil {
			return nil, &UpstreamFormatError{Raw: reply, Err: err}
		}
		items = wrapped.Goals
	}

	goals := make([]dto.GeneratedGoal, 0, len(items))
	for _, item := range items {
		title := stringField(item, "title")
		if title == "" {
			continue
		}
		category := strings.ToLower(stringField(item, "category"))
		if !generatedCategories[category] {
			category = models.DefaultGoalCategory
		}
		goals = append(goals, dto.GeneratedGoal{
			Title:       title,
			Description: stringField(item, "description"),
			Category:    category,
			Points:      coercePoints(item["points"]),
		})
	}

	if len(goals) == 0 {
		return nil, &UpstreamFormatError{Raw: reply, Err: errors.New("no usable goals in reply")}
	}
	return goals, nil
}

func stringField(item map[string]interface{}, key string) string {
	v, ok := item[key].(string)
	if !ok {
		return ""
	}
	return strings.TrimSpace(v)
}

// coercePoints turns a number or numeric string into points within
// [10, 30]; anything else is the default.
func coercePoints(v interface{}) int {
	var f float64
	switch p := v.(type) {
	case float64:
		f = p
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return models.DefaultGoalPoints
		}
		f = parsed
	default:
		return models.DefaultGoalPoints
	}

	if math.IsNaN(f) || f <= 0 {
		return models.DefaultGoalPoints
	}
	points := int(math.Round(f))
	if points < minGeneratedPoints {
		return minGeneratedPoints
	}
	if points > maxGeneratedPoints {
		return maxGeneratedPoints
	}
	return points
}

func mapGoalToResponse(g *models.Goal) dto.GoalResponse {
	var completedAt *string
	if g.DateCompleted != nil {
		s := g.DateCompleted.UTC().Format(time.RFC3339)
		completedAt = &s
	}
	return dto.GoalResponse{
		ID:            g.ID,
		Title:         g.Title,
		Description:   g.Description,
		Category:      g.Category,
		Points:        g.Points,
		Completed:     g.Completed,
		DateCompleted: completedAt,
		Source:        g.Source,
	}
}
