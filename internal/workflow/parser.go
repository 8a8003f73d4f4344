package workflow

import (
	"gopkg.in/yaml.v3"
)

// Parse parses workflow YAML content into a WorkflowFile struct.
func Parse(data []byte) (WorkflowFile, error) {
	var raw rawWorkflow
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return WorkflowFile{}, err
	}

	return WorkflowFile{
		Name: raw.Name,
		On:   OnTrigger{WorkflowDispatch: raw.On.WorkflowDispatch},
	}, nil
}

// rawWorkflow handles the flexible "on" field parsing.
type rawWorkflow struct {
	Name string       `yaml:"name"`
	On   rawOnTrigger `yaml:"on"`
}

// rawOnTrigger handles "on" being either a string, list, or map.
type rawOnTrigger struct {
	WorkflowDispatch *WorkflowDispatch
}

func (t *rawOnTrigger) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		if node.Value == "workflow_dispatch" {
			t.WorkflowDispatch = &WorkflowDispatch{}
		}
	case yaml.SequenceNode:
		var triggers []string
		if err := node.Decode(&triggers); err == nil {
			for _, trigger := range triggers {
				if trigger == "workflow_dispatch" {
					t.WorkflowDispatch = &WorkflowDispatch{}
					break
				}
			}
		}
	case yaml.MappingNode:
		var m struct {
			WorkflowDispatch *WorkflowDispatch `yaml:"workflow_dispatch"`
		}

		if err := node.Decode(&m); err != nil {
			return err
		}

		// "workflow_dispatch:" with no body decodes to nil but still enables dispatch.
		if m.WorkflowDispatch == nil && hasKey(node, "workflow_dispatch") {
			m.WorkflowDispatch = &WorkflowDispatch{}
		}

		t.WorkflowDispatch = m.WorkflowDispatch
	}

	return nil
}

func hasKey(node *yaml.Node, key string) bool {
	for i := 0; i < len(node.Content)-1; i += 2 {
		if node.Content[i].Value == key {
			return true
		}
	}

	return false
}
