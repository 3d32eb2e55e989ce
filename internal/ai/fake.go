package ai

import (
	"context"
	"sync"
)

// Fake is a scripted Client for tests.
type Fake struct {
	mu      sync.Mutex
	Reply   string
	Err     error
	Prompts []string
}

func (f *Fake) Name() string { return "fake" }

func (f *Fake) Generate(_ context.Context, prompt string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Prompts = append(f.Prompts, prompt)
	if f.Err != nil {
		return "", f.Err
	}
	return f.Reply, nil
}

// Calls returns how many prompts were sent.
func (f *Fake) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.Prompts)
}
