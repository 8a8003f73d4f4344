package runner

import (
	"fmt"
	"strings"
)

// PasswordPlaceholder stands in for a password that was not supplied.
const PasswordPlaceholder = "<password>"

// Manual describes how to start the workflow by hand from the Actions page.
type Manual struct {
	ActionsURL   string
	WorkflowName string
	TaskType     string
	Password     string
}

// Instructions renders the numbered steps for a manual run.
func Instructions(m Manual) string {
	name := m.WorkflowName
	if name == "" {
		name = "RunSync Tasks"
	}

	password := m.Password
	if password == "" {
		password = PasswordPlaceholder
	}

	steps := []string{
		"Go to: " + m.ActionsURL,
		fmt.Sprintf("Click on %q", name),
		`Click "Run workflow"`,
		"Choose task: " + m.TaskType,
		"Password: " + password,
		`Click "Run workflow"`,
	}

	var s strings.Builder

	for i, step := range steps {
		fmt.Fprintf(&s, "%d. %s\n", i+1, step)
	}

	return s.String()
}

// MaskInputs returns a copy of inputs with the named keys replaced by "****".
func MaskInputs(inputs map[string]string, secret ...string) map[string]string {
	masked := make(map[string]string, len(inputs))
	for k, v := range inputs {
		masked[k] = v
	}

	for _, k := range secret {
		if masked[k] != "" {
			masked[k] = "****"
		}
	}

	return masked
}
