package testutil

import (
	"context"
	"sync"
)

// FakePrompter answers prompts from a fixed reply and records each dialog title.
type FakePrompter struct {
	mu     sync.Mutex
	Reply  string
	Err    error
	Titles []string
}

// NewFakePrompter creates a prompter that always answers reply.
func NewFakePrompter(reply string) *FakePrompter {
	return &FakePrompter{Reply: reply}
}

// Prompt records the dialog and returns the configured reply.
func (p *FakePrompter) Prompt(_ context.Context, title, _ string) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.Titles = append(p.Titles, title)

	return p.Reply, p.Err
}

// Calls returns how many dialogs were shown.
func (p *FakePrompter) Calls() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	return len(p.Titles)
}

// FailingStore is a kv.Store whose every operation fails with Err.
type FailingStore struct {
	Err error
}

func (s FailingStore) Get(string) (string, bool, error) { return "", false, s.Err }
func (s FailingStore) Set(string, string) error         { return s.Err }
func (s FailingStore) Delete(string) error              { return s.Err }
