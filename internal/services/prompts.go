package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/ahmetcoskunkizilkaya/ecotrack-backend/internal/ai"
	"github.com/getsentry/sentry-go"
)

func goalPrompt(sum EmissionSummary, windowDays int) string {
	return fmt.Sprintf(`You are an expert environmental assistant. A user has emitted the following carbon emissions in the last %d days:
- Travel: %.2f kg CO2
- Food: %.2f kg CO2
- Waste: %.2f kg CO2
- Electricity: %.2f kg CO2

Based on this data, suggest 3 to 5 personalized, actionable sustainability goals that can help reduce their carbon footprint.

For each goal, provide:
- title (string)
- description (string)
- category: one of ['travel', 'food', 'waste', 'electricity']
- points (integer between 10 and 30)

Return only a valid JSON array of objects in the following format:
[
  {
    "title": "...",
    "description": "...",
    "category": "...",
    "points": 20
  }
]
No explanation or preamble. Only return the JSON.`, windowDays, sum.Travel, sum.Food, sum.Waste, sum.Electricity)
}

func recommendationPrompt(sum EmissionSummary, windowDays int) string {
	return fmt.Sprintf(`A user has emitted the following carbon emissions over the past %d days:
- Travel: %.2f kg CO2
- Food: %.2f kg CO2
- Waste: %.2f kg CO2
- Electricity: %.2f kg CO2

Based on this data:
1. Suggest 3 priority actions with high CO2 savings.
   Each should include: title, impact (High/Medium/Low), effort, estimated daily CO2 savings, and a short description.
2. Recommend 3-5 actionable tips each for:
   - Transportation
   - Food & Diet
   - Energy Usage
   - Waste Reduction

Return the result as a valid JSON in this format:
{
  "priority_actions": [
    {
      "title": "...",
      "impact": "...",
      "effort": "...",
      "co2Savings": "...",
      "description": "..."
    }
  ],
  "recommendations": [
    {
      "category": "...",
      "tips": ["...", "..."]
    }
  ]
}
Return a JSON object with strict syntax. No comments or trailing commas.`, windowDays, sum.Travel, sum.Food, sum.Waste, sum.Electricity)
}

// generateText calls the model with a deadline and returns the reply as
// received. Provider errors come back wrapped in ErrUpstreamFailure, a
// missing provider as ErrAINotConfigured.
func generateText(ctx context.Context, client ai.Client, timeout time.Duration, action, prompt string) (string, error) {
	if client == nil {
		return "", ErrAINotConfigured
	}
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	reply, err := client.Generate(ctx, prompt)
	if err != nil {
		if errors.Is(err, ai.ErrNotConfigured) {
			return "", ErrAINotConfigured
		}
		slog.Error("AI request failed", "action", action, "provider", client.Name(), "error", err)
		sentry.CaptureException(err)
		return "", fmt.Errorf("%w: %w", ErrUpstreamFailure, err)
	}
	return reply, nil
}
