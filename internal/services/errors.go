package services

import (
	"errors"
	"fmt"
)

var (
	ErrUsernameTaken      = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidToken       = errors.New("invalid or expired refresh token")
	ErrUserNotFound       = errors.New("user not found")
	ErrGoalNotFound       = errors.New("goal not found")
	ErrEntryExists        = errors.New("data for today already exists")
	ErrInsufficientData   = errors.New("not enough recent data")
	ErrAINotConfigured    = errors.New("AI service not configured")
	ErrUpstreamFormat     = errors.New("AI response was not valid JSON")
	ErrUpstreamFailure    = errors.New("AI request failed")
)

// ValidationError reports bad caller input.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// UpstreamFormatError carries the raw model reply that failed to parse.
type UpstreamFormatError struct {
	Raw string
	Err error
}

func (e *UpstreamFormatError) Error() string {
	if e.Err == nil {
		return ErrUpstreamFormat.Error()
	}
	return fmt.Sprintf("%s: %v", ErrUpstreamFormat.Error(), e.Err)
}

func (e *UpstreamFormatError) Is(target error) bool { return target == ErrUpstreamFormat }

func (e *UpstreamFormatError) Unwrap() error { return e.Err }
