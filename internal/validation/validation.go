// Package validation produces advisory checks for dispatch inputs.
// Nothing here blocks a dispatch: task types are always sent verbatim.
package validation

import (
	"sort"

	"github.com/sahilm/fuzzy"

	"github.com/lxkasmehl/runsync-dispatch/internal/workflow"
)

// TaskTypeStatus describes how a task type relates to the declared options.
type TaskTypeStatus int

const (
	StatusUnconstrained TaskTypeStatus = iota // Workflow declares no options
	StatusKnown                               // Task type is one of the options
	StatusUnknown                             // Task type is not among the options
)

// TaskTypeCheck is the outcome of CheckTaskType.
type TaskTypeCheck struct {
	TaskType   string
	Status     TaskTypeStatus
	Suggestion string   // Closest declared option, for StatusUnknown
	Options    []string // Declared options, sorted
}

// CheckTaskType compares taskType against the task_type options of wf.
// A nil workflow is treated as unconstrained.
func CheckTaskType(taskType string, wf *workflow.WorkflowFile) TaskTypeCheck {
	check := TaskTypeCheck{TaskType: taskType, Status: StatusUnconstrained}
	if wf == nil {
		return check
	}

	options := wf.TaskTypes()
	if len(options) == 0 {
		return check
	}

	sorted := make([]string, len(options))
	copy(sorted, options)
	sort.Strings(sorted)
	check.Options = sorted

	for _, option := range sorted {
		if option == taskType {
			check.Status = StatusKnown
			return check
		}
	}

	check.Status = StatusUnknown
	check.Suggestion = findBestMatch(taskType, sorted)

	return check
}

// findBestMatch uses fuzzy matching to find the most similar option.
// Returns empty string if nothing matches.
func findBestMatch(value string, options []string) string {
	if value == "" || len(options) == 0 {
		return ""
	}

	matches := fuzzy.Find(value, options)
	if len(matches) == 0 {
		return ""
	}

	return matches[0].Str
}
