package validation

import (
	"testing"

	"github.com/lxkasmehl/runsync-dispatch/internal/testutil"
	"github.com/lxkasmehl/runsync-dispatch/internal/workflow"
)

func runSyncWorkflow(options ...string) *workflow.WorkflowFile {
	wf := testutil.RunSyncWorkflow(options...)
	return &wf
}

func TestCheckTaskType(t *testing.T) {
	wf := runSyncWorkflow("strava", "garmin", "sheets")

	tests := []struct {
		name           string
		taskType       string
		wf             *workflow.WorkflowFile
		wantStatus     TaskTypeStatus
		wantSuggestion string
	}{
		{name: "nil workflow", taskType: "anything", wf: nil, wantStatus: StatusUnconstrained},
		{name: "free-form input", taskType: "anything", wf: &workflow.WorkflowFile{}, wantStatus: StatusUnconstrained},
		{name: "known option", taskType: "garmin", wf: wf, wantStatus: StatusKnown},
		{name: "abbreviation", taskType: "grm", wf: wf, wantStatus: StatusUnknown, wantSuggestion: "garmin"},
		{name: "prefix", taskType: "str", wf: wf, wantStatus: StatusUnknown, wantSuggestion: "strava"},
		{name: "case differs", taskType: "Strava", wf: wf, wantStatus: StatusUnknown},
		{name: "no match", taskType: "xyz", wf: wf, wantStatus: StatusUnknown, wantSuggestion: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CheckTaskType(tt.taskType, tt.wf)

			if got.Status != tt.wantStatus {
				t.Errorf("Status = %v, want %v", got.Status, tt.wantStatus)
			}

			if tt.wantSuggestion != "" && got.Suggestion != tt.wantSuggestion {
				t.Errorf("Suggestion = %q, want %q", got.Suggestion, tt.wantSuggestion)
			}

			if tt.name == "no match" && got.Suggestion != "" {
				t.Errorf("expected no suggestion, got %q", got.Suggestion)
			}
		})
	}
}

func TestCheckTaskType_OptionsSorted(t *testing.T) {
	got := CheckTaskType("strava", runSyncWorkflow("strava", "garmin"))

	if len(got.Options) != 2 || got.Options[0] != "garmin" {
		t.Errorf("Options = %v, want sorted", got.Options)
	}
}
