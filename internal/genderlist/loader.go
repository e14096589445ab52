package genderlist

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gender-swap/internal/common"
	"gender-swap/internal/diagnostic"
	"gender-swap/internal/pronoun"
)

const filePerm = 0o644

// LoadFile reads and parses the gender list at path. Files ending in .yaml or
// .yml are parsed as YAML, anything else as the line format. Diagnostics are
// located by path and line number.
func LoadFile(path string, notify func(diagnostic.Diagnostic)) (*Definitions, *diagnostic.Diagnostics, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("reading gender list %s: %w", path, err)
	}

	p := Parser{Source: path, Notify: notify}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return p.ParseYAML(data)
	default:
		return p.Parse(common.Lines(string(data)))
	}
}

// Format renders definitions in the line format, ordered by character number.
// Parsing the result yields the same definitions: both parsers reject names
// and ordering entries that the line format cannot hold.
func Format(defs *Definitions) string {
	var b strings.Builder

	for _, n := range defs.Numbers() {
		c := defs.Assignment[n]

		labels := make([]string, len(defs.Ordering[n]))
		for i, g := range defs.Ordering[n] {
			labels[i] = string(g)
		}

		b.WriteString(strings.Join([]string{
			c.Name,
			strconv.Itoa(n),
			strings.Join(labels, orderingSep),
			selectedLabel(c.Gender),
		}, fieldSep+" "))
		b.WriteByte('\n')
	}

	return b.String()
}

// selectedLabel keeps an unresolved selection unresolved on the next parse.
func selectedLabel(g pronoun.Gender) string {
	return g.String()
}

// WriteFile writes definitions to path in the line format.
func WriteFile(defs *Definitions, path string) error {
	if err := os.WriteFile(path, []byte(Format(defs)), filePerm); err != nil {
		return fmt.Errorf("writing gender list %s: %w", path, err)
	}

	return nil
}
