package testutil

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/lxkasmehl/runsync-dispatch/internal/workflow"
)

// WorkflowFixture creates a dispatchable workflow with the given inputs.
func WorkflowFixture(name, filename string, inputs map[string]workflow.WorkflowInput) workflow.WorkflowFile {
	return workflow.WorkflowFile{
		Name:     name,
		Filename: filename,
		On: workflow.OnTrigger{
			WorkflowDispatch: &workflow.WorkflowDispatch{
				Inputs: inputs,
			},
		},
	}
}

// RunSyncWorkflow creates the runsync.yml fixture with a task_type choice input and a password input.
func RunSyncWorkflow(taskTypes ...string) workflow.WorkflowFile {
	return WorkflowFixture("RunSync Tasks", "runsync.yml", map[string]workflow.WorkflowInput{
		"task_type": {
			Description: "Task to run",
			Required:    true,
			Type:        "choice",
			Options:     taskTypes,
		},
		"password": {
			Description: "Admin password",
			Required:    true,
			Type:        "string",
		},
	})
}

// AssertEqual fails the test if got != want.
func AssertEqual[T comparable](t *testing.T, got, want T, msgAndArgs ...interface{}) {
	t.Helper()

	if got != want {
		if len(msgAndArgs) > 0 {
			format := msgAndArgs[0].(string)
			args := msgAndArgs[1:]
			t.Errorf(format+": got %v, want %v", append(args, got, want)...)
		} else {
			t.Errorf("got %v, want %v", got, want)
		}
	}
}

// AssertFalse fails the test if condition is true.
func AssertFalse(t *testing.T, condition bool, msgAndArgs ...interface{}) {
	t.Helper()

	if condition {
		if len(msgAndArgs) > 0 {
			format := msgAndArgs[0].(string)
			args := msgAndArgs[1:]
			t.Errorf(format, args...)
		} else {
			t.Error("expected false, got true")
		}
	}
}

// AssertContains fails the test if haystack doesn't contain needle.
func AssertContains(t *testing.T, haystack, needle string, msgAndArgs ...interface{}) {
	t.Helper()

	if !strings.Contains(haystack, needle) {
		if len(msgAndArgs) > 0 {
			format := msgAndArgs[0].(string)
			args := msgAndArgs[1:]
			t.Errorf(format+": %q not found in %q", append(args, needle, haystack)...)
		} else {
			t.Errorf("%q not found in %q", needle, haystack)
		}
	}
}

// MustMarshalJSON marshals v to JSON, failing the test if an error occurs.
func MustMarshalJSON(t *testing.T, v any) string {
	t.Helper()

	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("failed to marshal JSON: %v", err)
	}

	return string(data)
}
