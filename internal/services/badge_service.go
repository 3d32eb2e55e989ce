package services

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ahmetcoskunkizilkaya/ecotrack-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BadgeDef is one entry of the fixed badge catalog. Criteria is either
// "first_goal", "<n>_goals" or "<n>_points".
type BadgeDef struct {
	Criteria    string
	Name        string
	Description string
	Icon        string
}

var badgeCatalog = []BadgeDef{
	{"first_goal", "First Step", "Complete your first goal", "👣"},
	{"5_goals", "Starter", "Complete 5 goals", "🚀"},
	{"10_goals", "Goal Getter", "Complete 10 goals", "🎯"},
	{"25_goals", "Goal Chaser", "Complete 25 goals", "🏃"},
	{"50_goals", "Achiever", "Complete 50 goals", "🏆"},
	{"100_goals", "Legend", "Complete 100 goals", "👑"},
	{"500_points", "Rising Star", "Earn 500 points", "⭐"},
	{"750_points", "Almost There", "Earn 750 points", "⏳"},
	{"1000_points", "Point Master", "Earn 1000 total points", "🏅"},
	{"2000_points", "Elite Performer", "Earn 2000 points", "🥇"},
}

// Catalog returns a copy of the badge catalog.
func Catalog() []BadgeDef {
	out := make([]BadgeDef, len(badgeCatalog))
	copy(out, badgeCatalog)
	return out
}

// Satisfied reports whether the given totals meet the criteria. Unknown
// criteria never match.
func (d BadgeDef) Satisfied(completedGoals, points int) bool {
	if d.Criteria == "first_goal" {
		return completedGoals >= 1
	}
	raw, kind, ok := strings.Cut(d.Criteria, "_")
	if !ok {
		return false
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return false
	}
	switch kind {
	case "goals":
		return completedGoals >= n
	case "points":
		return points >= n
	}
	return false
}

type BadgeService struct {
	db  *gorm.DB
	now func() time.Time
}

func NewBadgeService(db *gorm.DB) *BadgeService {
	return &BadgeService{db: db, now: time.Now}
}

// EnsureCatalog creates missing catalog rows and returns all of them in
// catalog order.
func (s *BadgeService) EnsureCatalog() ([]models.Badge, error) {
	badges := make([]models.Badge, 0, len(badgeCatalog))
	for _, def := range badgeCatalog {
		var badge models.Badge
		err := s.db.Where(models.Badge{Criteria: def.Criteria}).
			Attrs(models.Badge{Name: def.Name, Description: def.Description, Icon: def.Icon}).
			FirstOrCreate(&badge).Error
		if err != nil {
			return nil, fmt.Errorf("failed to seed badge %s: %w", def.Criteria, err)
		}
		badges = append(badges, badge)
	}
	return badges, nil
}

// Evaluate grants every catalog badge the user now qualifies for and has not
// earned yet. It never revokes, and running it twice grants nothing new.
func (s *BadgeService) Evaluate(userID uuid.UUID) ([]models.Badge, error) {
	badges, err := s.EnsureCatalog()
	if err != nil {
		return nil, err
	}

	completed, points, err := completedTotals(s.db, userID)
	if err != nil {
		return nil, err
	}

	earned, err := s.earnedSet(userID)
	if err != nil {
		return nil, err
	}

	var granted []models.Badge
	for i, badge := range badges {
		if earned[badge.ID] || !badgeCatalog[i].Satisfied(completed, points) {
			continue
		}

		ub := models.UserBadge{UserID: userID, BadgeID: badge.ID, EarnedAt: s.now().UTC()}
		result := s.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&ub)
		if result.Error != nil {
			return nil, fmt.Errorf("failed to grant badge %s: %w", badge.Criteria, result.Error)
		}
		if result.RowsAffected > 0 {
			granted = append(granted, badge)
		}
	}
	return granted, nil
}

// Earned returns the user's badges keyed by badge id.
func (s *BadgeService) Earned(userID uuid.UUID) (map[uuid.UUID]models.UserBadge, error) {
	var rows []models.UserBadge
	if err := s.db.Where("user_id = ?", userID).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch user badges: %w", err)
	}
	out := make(map[uuid.UUID]models.UserBadge, len(rows))
	for _, ub := range rows {
		out[ub.BadgeID] = ub
	}
	return out, nil
}

func (s *BadgeService) earnedSet(userID uuid.UUID) (map[uuid.UUID]bool, error) {
	var ids []uuid.UUID
	if err := s.db.Model(&models.UserBadge{}).Where("user_id = ?", userID).Pluck("badge_id", &ids).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch earned badges: %w", err)
	}
	set := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set, nil
}

// completedTotals recomputes the completed-goal count and point sum.
func completedTotals(db *gorm.DB, userID uuid.UUID) (int, int, error) {
	var row struct {
		Count  int64
		Points int64
	}
	err := db.Model(&models.Goal{}).
		Select("COUNT(*) AS count, COALESCE(SUM(points), 0) AS points").
		Where("user_id = ? AND completed = ?", userID, true).
		Scan(&row).Error
	if err != nil {
		return 0, 0, fmt.Errorf("failed to total completed goals: %w", err)
	}
	return int(row.Count), int(row.Points), nil
}
