package genderlist

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"gender-swap/internal/common"
	"gender-swap/internal/diagnostic"
)

// yamlFile is the YAML form of a gender list.
type yamlFile struct {
	Characters []yamlCharacter `yaml:"characters"`
}

type yamlCharacter struct {
	Name     string       `yaml:"name"`
	Number   string       `yaml:"number"`
	Ordering orderingList `yaml:"ordering"`
	Gender   string       `yaml:"gender"`

	line int
}

// UnmarshalYAML records the line of the entry for diagnostics.
func (c *yamlCharacter) UnmarshalYAML(node *yaml.Node) error {
	type plain yamlCharacter

	var p plain

	err := node.Decode(&p)
	if err != nil {
		return err
	}

	*c = yamlCharacter(p)
	c.line = node.Line

	return nil
}

// orderingList accepts either "female/male" or [female, male].
type orderingList []string

// UnmarshalYAML implements custom YAML unmarshaling for orderingList.
func (o *orderingList) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var str string

		err := node.Decode(&str)
		if err != nil {
			return err
		}

		*o = common.SplitTrim(str, orderingSep)

		return nil

	case yaml.SequenceNode:
		var arr []string

		err := node.Decode(&arr)
		if err != nil {
			return err
		}

		*o = arr

		return nil

	default:
		return fmt.Errorf("line %d: ordering must be a string or a list, got %v", node.Line, node.Kind)
	}
}

// ParseYAML parses a YAML gender list with a zero Parser.
func ParseYAML(data []byte) (*Definitions, *diagnostic.Diagnostics, error) {
	return Parser{}.ParseYAML(data)
}

// ParseYAML parses a YAML gender list. A document that is not valid YAML is
// an error and yields no definitions. Entries are validated exactly like
// lines of the line format.
func (p Parser) ParseYAML(data []byte) (*Definitions, *diagnostic.Diagnostics, error) {
	var f yamlFile

	err := yaml.Unmarshal(data, &f)
	if err != nil {
		return nil, nil, fmt.Errorf("parsing gender list YAML: %w", err)
	}

	s := p.newState()

	for _, c := range f.Characters {
		e := entry{
			location: p.location(c.line),
			name:     c.Name,
			number:   c.Number,
			ordering: c.Ordering,
			selected: c.Gender,
		}

		s.add(e, c.text())
	}

	return s.result()
}

// text renders the entry in line format for error messages.
func (c yamlCharacter) text() string {
	return strings.Join([]string{c.Name, c.Number, strings.Join(c.Ordering, orderingSep), c.Gender}, fieldSep+" ")
}
