package dto

import "github.com/google/uuid"

type BadgeResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	Earned      bool      `json:"earned"`
	EarnedDate  *string   `json:"earnedDate,omitempty"`
}

type LeaderboardEntry struct {
	Rank   int    `json:"rank"`
	Name   string `json:"name"`
	Points int    `json:"points"`
	Avatar string `json:"avatar"`
	IsUser bool   `json:"isUser"`
}

type RewardsResponse struct {
	TotalPoints     int                `json:"totalPoints"`
	EarnedBadges    []BadgeResponse    `json:"earnedBadges"`
	AvailableBadges []BadgeResponse    `json:"availableBadges"`
	AllBadges       []BadgeResponse    `json:"allBadges"`
	Leaderboard     []LeaderboardEntry `json:"leaderboard"`
}

type ClearGoalsResponse struct {
	Message string `json:"message"`
	Deleted int64  `json:"deleted"`
}
