package history

import "time"

// Entry is one remembered dispatch. Passwords are never stored.
type Entry struct {
	Workflow  string    `json:"workflow"`
	Ref       string    `json:"ref"`
	TaskType  string    `json:"task_type"`
	RunCount  int       `json:"run_count"`
	LastRunAt time.Time `json:"last_run_at"`
}

// Store holds dispatch history keyed by "owner/repo".
type Store struct {
	Entries map[string][]Entry `json:"entries"`
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{Entries: make(map[string][]Entry)}
}
