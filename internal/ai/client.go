// Package ai wraps the text-generation providers used for goal suggestions
// and recommendations behind a single Client interface.
package ai

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ahmetcoskunkizilkaya/ecotrack-backend/internal/config"
)

var (
	ErrNotConfigured = errors.New("AI service not configured")
	ErrEmptyResponse = errors.New("empty response from AI provider")
)

// Client turns a prompt into raw model text.
type Client interface {
	Name() string
	Generate(ctx context.Context, prompt string) (string, error)
}

const systemPrompt = "You are an expert environmental assistant that returns only valid JSON. No markdown, no explanation."

// New builds a Fallback over every provider in cfg.AIProviders that has an
// API key. Unknown provider names are logged and skipped.
func New(ctx context.Context, cfg *config.Config) (*Fallback, error) {
	var clients []Client
	for _, name := range cfg.AIProviders {
		switch name {
		case "gemini":
			if cfg.GeminiAPIKey == "" {
				continue
			}
			c, err := NewGeminiClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModel, cfg.AITemperature)
			if err != nil {
				return nil, fmt.Errorf("failed to create Gemini client: %w", err)
			}
			clients = append(clients, c)
		case "glm":
			if cfg.GLMAPIKey == "" {
				continue
			}
			clients = append(clients, NewOpenAIClient("glm", cfg.GLMAPIURL, cfg.GLMAPIKey, cfg.GLMModel, cfg.AITemperature, cfg.AITimeout))
		case "deepseek":
			if cfg.DeepSeekAPIKey == "" {
				continue
			}
			clients = append(clients, NewOpenAIClient("deepseek", cfg.DeepSeekAPIURL, cfg.DeepSeekAPIKey, cfg.DeepSeekModel, cfg.AITemperature, cfg.AITimeout))
		case "openai":
			if cfg.OpenAIAPIKey == "" {
				continue
			}
			clients = append(clients, NewOpenAIClient("openai", "", cfg.OpenAIAPIKey, cfg.OpenAIModel, cfg.AITemperature, cfg.AITimeout))
		default:
			slog.Warn("unknown AI provider ignored", "provider", name)
		}
	}
	return NewFallback(clients...), nil
}

// CleanJSON strips surrounding whitespace and markdown code fences from a
// model reply.
func CleanJSON(content string) string {
	content = strings.TrimSpace(content)
	if len(content) >= 7 && strings.EqualFold(content[:7], "```json") {
		content = content[7:]
	} else if strings.HasPrefix(content, "```") {
		content = strings.TrimPrefix(content, "```")
	}
	if strings.HasSuffix(content, "```") {
		content = strings.TrimSuffix(content, "```")
	}
	return strings.TrimSpace(content)
}
