package dto

import "github.com/google/uuid"

type CreateGoalRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Points      *int   `json:"points"`
}

type GoalResponse struct {
	ID            uuid.UUID `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Category      string    `json:"category"`
	Points        int       `json:"points"`
	Completed     bool      `json:"completed"`
	DateCompleted *string   `json:"dateCompleted"`
	Source        string    `json:"source"`
}

type CompleteGoalResponse struct {
	Message          string          `json:"message"`
	AlreadyCompleted bool            `json:"already_completed"`
	AwardedPoints    int             `json:"awarded_points"`
	NewTotalPoints   int             `json:"new_total_points"`
	NewBadges        []BadgeResponse `json:"new_badges"`
}

type GeneratedGoal struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Points      int    `json:"points"`
}

type GenerateGoalsResponse struct {
	Message          string          `json:"message"`
	AlreadyGenerated bool            `json:"already_generated"`
	Goals            []GeneratedGoal `json:"goals"`
}
