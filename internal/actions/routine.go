package actions

import "gopkg.in/yaml.v3"

// Routine holds the entire routine definition from the YAML file
type Routine struct {
	RoutineName string       `yaml:"routine_name"`
	Description string       `yaml:"description,omitempty"`
	Steps       []ActionStep `yaml:"steps"`
}

// UnmarshalYAML handles 'steps' being a list of interfaces: each entry is
// decoded into the concrete type its 'action' field names.
func (r *Routine) UnmarshalYAML(node *yaml.Node) error {
	var raw struct {
		RoutineName string      `yaml:"routine_name"`
		Description string      `yaml:"description"`
		Steps       []yaml.Node `yaml:"steps"`
	}
	if err := node.Decode(&raw); err != nil {
		return err
	}

	r.RoutineName = raw.RoutineName
	r.Description = raw.Description

	steps, err := unmarshalActionNodes(raw.Steps)
	if err != nil {
		return err
	}
	r.Steps = steps
	return nil
}
