package dto

import "github.com/google/uuid"

type SignupRequest struct {
	Username      string `json:"username"`
	Password      string `json:"password"`
	FullName      string `json:"full_name"`
	LocationType  string `json:"location_type"`
	HouseholdSize int    `json:"household_size"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type LogoutRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type SignupResponse struct {
	Message           string    `json:"message"`
	UserID            uuid.UUID `json:"user_id"`
	BaselineFootprint float64   `json:"baseline_footprint"`
}

type AuthResponse struct {
	Message      string    `json:"message"`
	UserID       uuid.UUID `json:"user_id"`
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
}

type UserResponse struct {
	ID                uuid.UUID `json:"id"`
	Username          string    `json:"username"`
	FullName          string    `json:"full_name"`
	LocationType      string    `json:"location_type"`
	HouseholdSize     int       `json:"household_size"`
	BaselineFootprint float64   `json:"baseline_footprint"`
	SetupComplete     bool      `json:"setup_complete"`
	TotalPoints       int       `json:"totalPoints"`
	JoinedDate        string    `json:"joined_date"`
}

type ErrorResponse struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
	Raw     string `json:"raw,omitempty"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	DB        string `json:"db"`
	AI        string `json:"ai"`
}
