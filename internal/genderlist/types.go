package genderlist

import (
	"fmt"
	"slices"

	"gender-swap/internal/common"
	"gender-swap/internal/pronoun"
)

// Character is one entry of a gender list.
type Character struct {
	Name   string
	Number int
	Gender pronoun.Gender
}

// Assignment maps a character number to its character.
type Assignment map[int]Character

// Ordering maps a character number to the gender of each alternative
// position, left to right.
type Ordering map[int][]pronoun.Gender

// Definitions is a parsed gender list. Assignment and Ordering always have
// the same keys. A Definitions is not modified after parsing and may be
// shared between goroutines.
type Definitions struct {
	Assignment Assignment
	Ordering   Ordering
}

// NewDefinitions returns empty definitions.
func NewDefinitions() *Definitions {
	return &Definitions{
		Assignment: make(Assignment),
		Ordering:   make(Ordering),
	}
}

// Len returns the number of characters.
func (d *Definitions) Len() int {
	if d == nil {
		return 0
	}

	return len(d.Assignment)
}

// Numbers returns the character numbers in ascending order.
func (d *Definitions) Numbers() []int {
	if d == nil {
		return nil
	}

	return common.SortedKeys(d.Assignment)
}

// Lookup returns the character and ordering for number.
func (d *Definitions) Lookup(number int) (Character, []pronoun.Gender, bool) {
	if d == nil {
		return Character{}, nil, false
	}

	c, ok := d.Assignment[number]
	if !ok {
		return Character{}, nil, false
	}

	return c, slices.Clone(d.Ordering[number]), true
}

func (d *Definitions) set(c Character, ordering []pronoun.Gender) {
	d.Assignment[c.Number] = c
	d.Ordering[c.Number] = ordering
}

// MalformedLineError reports a gender-list line that could not be split into
// its fields.
type MalformedLineError struct {
	Location string // e.g. "genders.txt:4" or "line 4"
	Text     string // the offending line
	Reason   string
}

func (e *MalformedLineError) Error() string {
	return fmt.Sprintf("%s: malformed gender list line %q: %s", e.Location, e.Text, e.Reason)
}
