package history

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
	"time"
)

func TestStore_Record(t *testing.T) {
	store := NewStore()

	store.Record("Lxkasmehl/RunSync", "runsync.yml", "main", "sync")

	entries := store.Entries["Lxkasmehl/RunSync"]
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}

	e := entries[0]
	if e.Workflow != "runsync.yml" || e.Ref != "main" || e.TaskType != "sync" {
		t.Errorf("unexpected entry: %+v", e)
	}

	if e.RunCount != 1 {
		t.Errorf("expected run count 1, got %d", e.RunCount)
	}
}

func TestStore_Record_Increment(t *testing.T) {
	store := NewStore()

	for range 3 {
		store.Record("o/r", "runsync.yml", "main", "sync")
	}

	entries := store.Entries["o/r"]
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry (incremented), got %d", len(entries))
	}

	if entries[0].RunCount != 3 {
		t.Errorf("expected run count 3, got %d", entries[0].RunCount)
	}
}

func TestStore_Record_DifferentTaskTypes(t *testing.T) {
	store := NewStore()

	store.Record("o/r", "runsync.yml", "main", "sync")
	store.Record("o/r", "runsync.yml", "main", "backup")
	store.Record("o/other", "runsync.yml", "main", "sync")

	if got := len(store.Entries["o/r"]); got != 2 {
		t.Errorf("expected 2 entries for o/r, got %d", got)
	}

	if got := len(store.Entries["o/other"]); got != 1 {
		t.Errorf("expected repos to be kept apart, got %d entries", got)
	}
}

func TestStore_TopForRepo(t *testing.T) {
	now := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)
	store := NewStore()

	store.RecordAt("o/r", "runsync.yml", "main", "old-frequent", now.Add(-30*24*time.Hour))
	store.RecordAt("o/r", "runsync.yml", "main", "old-frequent", now.Add(-30*24*time.Hour))
	store.RecordAt("o/r", "runsync.yml", "main", "recent", now.Add(-10*time.Minute))
	store.RecordAt("o/r", "runsync.yml", "main", "yesterday", now.Add(-20*time.Hour))
	store.RecordAt("o/r", "other.yml", "main", "elsewhere", now)

	top := store.topAt("o/r", "runsync.yml", 0, now)

	var names []string
	for _, e := range top {
		names = append(names, e.TaskType)
	}

	want := []string{"recent", "yesterday", "old-frequent"}
	if !slices.Equal(names, want) {
		t.Errorf("order = %v, want %v", names, want)
	}

	if got := store.topAt("o/r", "", 2, now); len(got) != 2 {
		t.Errorf("limit: got %d entries, want 2", len(got))
	}

	if got := store.TopForRepo("unknown/repo", "", 5); got != nil {
		t.Errorf("expected nil for unknown repo, got %v", got)
	}
}

func TestScore(t *testing.T) {
	now := time.Now()

	tests := []struct {
		ago  time.Duration
		want float64
	}{
		{30 * time.Minute, 8},
		{5 * time.Hour, 4},
		{72 * time.Hour, 2},
		{30 * 24 * time.Hour, 1},
	}

	for _, tt := range tests {
		got := Score(Entry{RunCount: 2, LastRunAt: now.Add(-tt.ago)}, now)
		if got != tt.want {
			t.Errorf("Score(%s ago) = %v, want %v", tt.ago, got, tt.want)
		}
	}
}

func TestStore_SaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "history.json")

	store := NewStore()
	store.Record("o/r", "runsync.yml", "main", "sync")

	if err := store.SaveTo(path); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read history: %v", err)
	}

	if strings.Contains(string(data), "password") {
		t.Errorf("history must not contain passwords: %s", data)
	}

	loaded, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}

	if got := loaded.TaskTypes("o/r", "runsync.yml"); !slices.Equal(got, []string{"sync"}) {
		t.Errorf("TaskTypes() = %v", got)
	}
}

func TestLoadFrom_Missing(t *testing.T) {
	store, err := LoadFrom(filepath.Join(t.TempDir(), "none.json"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if store.Entries == nil || len(store.Entries) != 0 {
		t.Errorf("expected empty store, got %+v", store)
	}
}

func TestLoadFrom_Corrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadFrom(path); err == nil {
		t.Error("expected error for corrupt history")
	}
}

func TestCachePath(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "/cache")

	if got := CachePath(); got != filepath.Join("/cache", "runsync", "history.json") {
		t.Errorf("CachePath() = %q", got)
	}
}
