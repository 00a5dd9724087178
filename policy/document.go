package policy

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// StringOrList is an IAM-style value that may be written as a single
// string or a list of strings.
type StringOrList []string

// UnmarshalYAML accepts either a scalar or a sequence.
func (s *StringOrList) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		var single string
		if err := value.Decode(&single); err != nil {
			return err
		}
		*s = StringOrList{single}
		return nil
	case yaml.SequenceNode:
		var list []string
		if err := value.Decode(&list); err != nil {
			return err
		}
		*s = StringOrList(list)
		return nil
	default:
		return fmt.Errorf("policy: expected string or list, got yaml kind %d", value.Kind)
	}
}

// MarshalJSON emits a bare string for single values, matching the way
// the source documents are written.
func (s StringOrList) MarshalJSON() ([]byte, error) {
	if len(s) == 1 {
		return json.Marshal(s[0])
	}
	return json.Marshal([]string(s))
}

// MarshalYAML mirrors MarshalJSON.
func (s StringOrList) MarshalYAML() (interface{}, error) {
	if len(s) == 1 {
		return s[0], nil
	}
	return []string(s), nil
}

// UnmarshalJSON accepts either a string or a list of strings.
func (s *StringOrList) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*s = StringOrList{single}
		return nil
	}
	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return fmt.Errorf("policy: expected string or list: %w", err)
	}
	*s = StringOrList(list)
	return nil
}

// Statement is a single permission grant.
type Statement struct {
	Sid       string                             `yaml:"Sid,omitempty" json:"Sid,omitempty"`
	Effect    string                             `yaml:"Effect" json:"Effect" validate:"required,oneof=Allow Deny"`
	Action    StringOrList                       `yaml:"Action" json:"Action" validate:"required,min=1"`
	Resource  StringOrList                       `yaml:"Resource" json:"Resource" validate:"required,min=1"`
	Condition map[string]map[string]StringOrList `yaml:"Condition,omitempty" json:"Condition,omitempty"`
}

// Document is a declarative permission document.
type Document struct {
	Version   string      `yaml:"Version" json:"Version" validate:"required"`
	Statement []Statement `yaml:"Statement" json:"Statement" validate:"required,min=1,dive"`
}
