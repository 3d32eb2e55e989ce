package ai

import (
	"context"
	"errors"
	"io"
	"log/slog"
)

// Fallback tries each client in order and returns the first reply.
type Fallback struct {
	clients []Client
}

func NewFallback(clients ...Client) *Fallback {
	return &Fallback{clients: clients}
}

func (f *Fallback) Name() string {
	if len(f.clients) == 0 {
		return "none"
	}
	return f.clients[0].Name()
}

// Configured reports whether at least one provider is available.
func (f *Fallback) Configured() bool {
	return len(f.clients) > 0
}

func (f *Fallback) Generate(ctx context.Context, prompt string) (string, error) {
	if len(f.clients) == 0 {
		return "", ErrNotConfigured
	}

	var errs []error
	for _, c := range f.clients {
		text, err := c.Generate(ctx, prompt)
		if err == nil {
			return text, nil
		}
		errs = append(errs, err)
		if ctx.Err() != nil {
			break
		}
		slog.Warn("AI provider failed", "provider", c.Name(), "error", err)
	}
	return "", errors.Join(errs...)
}

// Close releases clients that hold connections.
func (f *Fallback) Close() error {
	var errs []error
	for _, c := range f.clients {
		if closer, ok := c.(io.Closer); ok {
			errs = append(errs, closer.Close())
		}
	}
	return errors.Join(errs...)
}
