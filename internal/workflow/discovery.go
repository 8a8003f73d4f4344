// Package workflow reads the local definition of the dispatched workflow.
package workflow

import (
	"fmt"
	"os"
	"path/filepath"
)

// WorkflowsDir is the directory GitHub reads workflow files from, relative to a repo root.
const WorkflowsDir = ".github/workflows"

// Find loads filename from repoRoot/.github/workflows.
// A missing file is not an error: it returns nil, nil.
func Find(repoRoot, filename string) (*WorkflowFile, error) {
	return Load(filepath.Join(repoRoot, WorkflowsDir, filename))
}

// Load parses the workflow at path. A missing file returns nil, nil.
func Load(path string) (*WorkflowFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}

		return nil, fmt.Errorf("failed to read workflow file: %w", err)
	}

	wf, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse workflow file %s: %w", filepath.Base(path), err)
	}

	wf.Filename = filepath.Base(path)

	return &wf, nil
}
