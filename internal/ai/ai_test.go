package ai

import (
	"context"
	"errors"
	"testing"

	"github.com/ahmetcoskunkizilkaya/ecotrack-backend/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", `[{"a":1}]`, `[{"a":1}]`},
		{"json fence", "```json\n[{\"a\":1}]\n```", `[{"a":1}]`},
		{"upper fence", "```JSON\n{}\n```", `{}`},
		{"bare fence", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"surrounding whitespace", "  \n```json {} ```  \n", `{}`},
		{"prose is kept", "Here you go: {}", "Here you go: {}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanJSON(tt.in))
		})
	}
}

func TestFallbackUsesFirstSuccess(t *testing.T) {
	failing := &Fake{Err: errors.New("quota exceeded")}
	working := &Fake{Reply: "ok"}
	unused := &Fake{Reply: "never"}

	f := NewFallback(failing, working, unused)
	text, err := f.Generate(context.Background(), "prompt")

	require.NoError(t, err)
	assert.Equal(t, "ok", text)
	assert.Equal(t, 1, failing.Calls())
	assert.Equal(t, 1, working.Calls())
	assert.Zero(t, unused.Calls())
}

func TestFallbackJoinsErrors(t *testing.T) {
	first := errors.New("first down")
	second := errors.New("second down")

	f := NewFallback(&Fake{Err: first}, &Fake{Err: second})
	_, err := f.Generate(context.Background(), "prompt")

	require.Error(t, err)
	assert.ErrorIs(t, err, first)
	assert.ErrorIs(t, err, second)
}

func TestFallbackNotConfigured(t *testing.T) {
	f := NewFallback()
	assert.False(t, f.Configured())

	_, err := f.Generate(context.Background(), "prompt")
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestNewSkipsProvidersWithoutKeys(t *testing.T) {
	cfg := &config.Config{
		AIProviders:    []string{"gemini", "glm", "deepseek", "openai", "mystery"},
		DeepSeekAPIKey: "ds-key",
		DeepSeekAPIURL: "https://api.deepseek.com/v1",
		DeepSeekModel:  "deepseek-chat",
	}

	f, err := New(context.Background(), cfg)

	require.NoError(t, err)
	assert.True(t, f.Configured())
	assert.Equal(t, "deepseek", f.Name())
}
