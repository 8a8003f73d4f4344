package history

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// CachePath returns the path to the history file.
func CachePath() string {
	if xdg := os.Getenv("XDG_CACHE_HOME"); xdg != "" {
		return filepath.Join(xdg, "runsync", "history.json")
	}

	home, _ := os.UserHomeDir()

	return filepath.Join(home, ".cache", "runsync", "history.json")
}

// Load reads the store from the default path, returning an empty store if not found.
func Load() (*Store, error) {
	return LoadFrom(CachePath())
}

// LoadFrom reads the store from a specific path.
func LoadFrom(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return NewStore(), nil
		}

		return nil, fmt.Errorf("failed to read history: %w", err)
	}

	var store Store
	if err := json.Unmarshal(data, &store); err != nil {
		return nil, fmt.Errorf("failed to parse history %s: %w", path, err)
	}

	if store.Entries == nil {
		store.Entries = make(map[string][]Entry)
	}

	return &store, nil
}

// Save writes the store to the default path.
func (s *Store) Save() error {
	return s.SaveTo(CachePath())
}

// SaveTo writes the store to a specific path.
func (s *Store) SaveTo(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create history directory: %w", err)
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o644)
}

// Record adds or bumps the entry for a dispatched task type.
func (s *Store) Record(repo, workflow, ref, taskType string) {
	s.RecordAt(repo, workflow, ref, taskType, time.Now())
}

// RecordAt is Record with an explicit timestamp.
func (s *Store) RecordAt(repo, workflow, ref, taskType string, at time.Time) {
	entries := s.Entries[repo]

	for i, e := range entries {
		if e.Workflow == workflow && e.Ref == ref && e.TaskType == taskType {
			entries[i].RunCount++
			entries[i].LastRunAt = at

			return
		}
	}

	s.Entries[repo] = append(entries, Entry{
		Workflow:  workflow,
		Ref:       ref,
		TaskType:  taskType,
		RunCount:  1,
		LastRunAt: at,
	})
}

// TopForRepo returns the top entries for a repo, optionally filtered by workflow.
// A limit of zero or less returns every entry.
func (s *Store) TopForRepo(repo, workflowFilter string, limit int) []Entry {
	return s.topAt(repo, workflowFilter, limit, time.Now())
}

func (s *Store) topAt(repo, workflowFilter string, limit int, now time.Time) []Entry {
	entries := s.Entries[repo]
	if len(entries) == 0 {
		return nil
	}

	result := make([]Entry, len(entries))
	copy(result, entries)

	result = FilterByWorkflow(result, workflowFilter)
	SortByFrecency(result, now)

	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}

	return result
}

// TaskTypes returns the distinct task types recorded for a repo and workflow, best first.
func (s *Store) TaskTypes(repo, workflow string) []string {
	var names []string

	for _, e := range s.TopForRepo(repo, workflow, 0) {
		names = append(names, e.TaskType)
	}

	return names
}
