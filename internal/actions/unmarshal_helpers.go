package actions

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// getRegisteredActions returns the registered action names for error messages
func getRegisteredActions() []string {
	names := make([]string, 0, len(actionRegistry))
	for name := range actionRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// unmarshalAction decodes one step node into its concrete action type,
// chosen by the node's 'action' field
func unmarshalAction(node *yaml.Node) (ActionStep, error) {
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("must be a map/object")
	}

	var head struct {
		Action string `yaml:"action"`
	}
	if err := node.Decode(&head); err != nil {
		return nil, err
	}
	if head.Action == "" {
		return nil, fmt.Errorf("missing or invalid 'action' field")
	}

	structType, found := actionRegistry[strings.ToLower(head.Action)]
	if !found {
		return nil, fmt.Errorf("unknown action type '%s' (available actions: %v)", head.Action, getRegisteredActions())
	}

	action := reflect.New(structType).Interface().(ActionStep)
	if err := node.Decode(action); err != nil {
		return nil, fmt.Errorf("error unmarshaling %s: %w", head.Action, err)
	}
	return action, nil
}

func unmarshalActionNodes(nodes []yaml.Node) ([]ActionStep, error) {
	actions := make([]ActionStep, 0, len(nodes))
	for i := range nodes {
		action, err := unmarshalAction(&nodes[i])
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i+1, err)
		}
		actions = append(actions, action)
	}
	return actions, nil
}
