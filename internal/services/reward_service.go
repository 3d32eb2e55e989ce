package services

import (
	"fmt"
	"time"

	"github.com/ahmetcoskunkizilkaya/ecotrack-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/ecotrack-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	leaderboardSize   = 5
	leaderboardAvatar = "👤"
)

type RewardService struct {
	db     *gorm.DB
	badges *BadgeService
}

func NewRewardService(db *gorm.DB, badges *BadgeService) *RewardService {
	return &RewardService{db: db, badges: badges}
}

// Rewards evaluates badges for the user and returns their points, badge
// progress and the current leaderboard.
func (s *RewardService) Rewards(userID uuid.UUID) (*dto.RewardsResponse, error) {
	if err := ensureUser(s.db, userID); err != nil {
		return nil, err
	}

	if _, err := s.badges.Evaluate(userID); err != nil {
		return nil, err
	}

	_, points, err := completedTotals(s.db, userID)
	if err != nil {
		return nil, err
	}

	catalog, err := s.badges.EnsureCatalog()
	if err != nil {
		return nil, err
	}
	earned, err := s.badges.Earned(userID)
	if err != nil {
		return nil, err
	}

	resp := &dto.RewardsResponse{
		TotalPoints:     points,
		EarnedBadges:    []dto.BadgeResponse{},
		AvailableBadges: []dto.BadgeResponse{},
		AllBadges:       make([]dto.BadgeResponse, 0, len(catalog)),
	}
	for i := range catalog {
		var ub *models.UserBadge
		if got, ok := earned[catalog[i].ID]; ok {
			ub = &got
		}
		badge := mapBadgeToResponse(&catalog[i], ub)
		resp.AllBadges = append(resp.AllBadges, badge)
		if badge.Earned {
			resp.EarnedBadges = append(resp.EarnedBadges, badge)
		} else {
			resp.AvailableBadges = append(resp.AvailableBadges, badge)
		}
	}

	resp.Leaderboard, err = s.Leaderboard(userID)
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// Leaderboard ranks users by completed-goal points, highest first. Ties are
// ordered by username so ranks are stable. Users without a completed goal
// are not ranked.
func (s *RewardService) Leaderboard(requestingUserID uuid.UUID) ([]dto.LeaderboardEntry, error) {
	var rows []struct {
		ID       uuid.UUID
		Username string
		FullName string
		Points   int
	}
	err := s.db.Table("users").
		Select("users.id, users.username, users.full_name, SUM(goals.points) AS points").
		Joins("JOIN goals ON goals.user_id = users.id AND goals.completed = ?", true).
		Group("users.id, users.username, users.full_name").
		Order("points DESC, users.username ASC").
		Limit(leaderboardSize).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to build leaderboard: %w", err)
	}

	board := make([]dto.LeaderboardEntry, len(rows))
	for i, row := range rows {
		u := models.User{Username: row.Username, FullName: row.FullName}
		board[i] = dto.LeaderboardEntry{
			Rank:   i + 1,
			Name:   u.DisplayName(),
			Points: row.Points,
			Avatar: leaderboardAvatar,
			IsUser: row.ID == requestingUserID,
		}
	}
	return board, nil
}

func mapBadgeToResponse(b *models.Badge, earned *models.UserBadge) dto.BadgeResponse {
	resp := dto.BadgeResponse{
		ID:          b.ID,
		Name:        b.Name,
		Description: b.Description,
		Icon:        b.Icon,
	}
	if earned != nil {
		date := earned.EarnedAt.UTC().Format(time.DateOnly)
		resp.Earned = true
		resp.EarnedDate = &date
	}
	return resp
}
