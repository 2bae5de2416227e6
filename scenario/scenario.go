// Package scenario holds the fixture records that drive the translator
// suite: inputs, expected renderings and classification tags.
package scenario

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"swiftqa/normalize"
)

// Group identifies which procedure a scenario is executed with.
type Group string

const (
	GroupPositive Group = "positive"
	GroupNegative Group = "negative"
	GroupUI       Group = "ui"
)

// Groups lists every group in execution order.
var Groups = []Group{GroupPositive, GroupNegative, GroupUI}

// ParseGroup converts a group name to a Group.
func ParseGroup(s string) (Group, error) {
	for _, g := range Groups {
		if string(g) == s {
			return g, nil
		}
	}
	return "", fmt.Errorf("unknown group %q", s)
}

// Length is the rough size bucket of an input.
type Length string

const (
	Short  Length = "S"
	Medium Length = "M"
	Long   Length = "L"
)

// ParseLength accepts S, M or L in either case.
func ParseLength(s string) (Length, error) {
	switch l := Length(strings.ToUpper(s)); l {
	case Short, Medium, Long:
		return l, nil
	}
	return "", fmt.Errorf("unknown length %q", s)
}

// Quality is the dimension a scenario is meant to validate.
type Quality string

const (
	Accuracy   Quality = "Accuracy validation"
	Robustness Quality = "Robustness validation"
	Formatting Quality = "Formatting preservation"
)

// Qualities lists every quality dimension.
var Qualities = []Quality{Accuracy, Robustness, Formatting}

// ParseQuality accepts the full dimension name or its first word,
// ignoring case: "accuracy" selects Accuracy.
func ParseQuality(s string) (Quality, error) {
	for _, q := range Qualities {
		first, _, _ := strings.Cut(string(q), " ")
		if strings.EqualFold(s, string(q)) || strings.EqualFold(s, first) {
			return q, nil
		}
	}
	return "", fmt.Errorf("unknown quality %q", s)
}

// Tags classify a scenario for reporting and filtering. They never change
// how a scenario is executed.
type Tags struct {
	Category string
	Grammar  string
	Length   Length
	Quality  Quality
}

// Scenario is the part shared by every kind of case.
type Scenario struct {
	ID    string
	Name  string
	Input string
	Tags  Tags
}

// Base returns the shared scenario fields.
func (s Scenario) Base() Scenario { return s }

// Title is the label used for subtests and reports.
func (s Scenario) Title() string {
	return s.ID + " — " + s.Name
}

// Case is implemented by Positive, Negative and Interaction only.
type Case interface {
	Base() Scenario
	Group() Group
	isCase()
}

// Positive is a scenario whose rendered output must equal Expected exactly
// once both are normalized.
type Positive struct {
	Scenario
	Expected string
}

func (Positive) Group() Group { return GroupPositive }
func (Positive) isCase()      {}

// Negative is a malformed or unusual input with no known correct
// rendering. Only graceful handling is checked, unless KnownWeakness marks
// it as a documented gap that always reports failure.
type Negative struct {
	Scenario
	KnownWeakness bool
}

func (Negative) Group() Group { return GroupNegative }
func (Negative) isCase()      {}

// Interaction is typed keystroke by keystroke; the live output must
// contain Expected.
type Interaction struct {
	Scenario
	Expected string
}

func (Interaction) Group() Group { return GroupUI }
func (Interaction) isCase()      {}

// Positives returns the built-in exact-match scenarios in order.
func Positives() []Positive { return slices.Clone(positive) }

// Negatives returns the built-in malformed-input scenarios in order.
func Negatives() []Negative { return slices.Clone(negative) }

// Interactions returns the built-in live typing scenarios in order.
func Interactions() []Interaction { return slices.Clone(interaction) }

// Catalog is an ordered set of scenarios split by group.
type Catalog struct {
	Positive    []Positive
	Negative    []Negative
	Interaction []Interaction
}

// Default returns the built-in catalog.
func Default() Catalog {
	return Catalog{
		Positive:    Positives(),
		Negative:    Negatives(),
		Interaction: Interactions(),
	}
}

// Len returns the total number of scenarios.
func (c Catalog) Len() int {
	return len(c.Positive) + len(c.Negative) + len(c.Interaction)
}

// Cases flattens the catalog: positives, then negatives, then UI cases.
func (c Catalog) Cases() []Case {
	cases := make([]Case, 0, c.Len())
	for _, p := range c.Positive {
		cases = append(cases, p)
	}
	for _, n := range c.Negative {
		cases = append(cases, n)
	}
	for _, u := range c.Interaction {
		cases = append(cases, u)
	}
	return cases
}

// Lookup finds a scenario by id in any group.
func (c Catalog) Lookup(id string) (Case, bool) {
	for _, cs := range c.Cases() {
		if cs.Base().ID == id {
			return cs, true
		}
	}
	return nil, false
}

// Merge appends other after c and validates the result.
func (c Catalog) Merge(other Catalog) (Catalog, error) {
	merged := Catalog{
		Positive:    append(slices.Clone(c.Positive), other.Positive...),
		Negative:    append(slices.Clone(c.Negative), other.Negative...),
		Interaction: append(slices.Clone(c.Interaction), other.Interaction...),
	}
	if err := Validate(merged); err != nil {
		return Catalog{}, err
	}
	return merged, nil
}

// Validate checks that ids are present and unique across the catalog and
// that every exact-match and UI scenario carries expected text. Reports
// and run history are keyed by id alone.
func Validate(c Catalog) error {
	var errs []error

	seen := make(map[string]bool)
	for _, p := range c.Positive {
		errs = append(errs, checkID(GroupPositive, p.ID, seen))
		if normalize.Clean(p.Expected) == "" {
			errs = append(errs, fmt.Errorf("%s %s: expected output is empty", GroupPositive, p.ID))
		}
	}

	for _, n := range c.Negative {
		errs = append(errs, checkID(GroupNegative, n.ID, seen))
	}

	for _, u := range c.Interaction {
		errs = append(errs, checkID(GroupUI, u.ID, seen))
		if normalize.Clean(u.Expected) == "" {
			errs = append(errs, fmt.Errorf("%s %s: expected output is empty", GroupUI, u.ID))
		}
	}

	return errors.Join(errs...)
}

func checkID(g Group, id string, seen map[string]bool) error {
	if id == "" {
		return fmt.Errorf("%s: scenario with empty id", g)
	}
	if seen[id] {
		return fmt.Errorf("%s: duplicate id %s", g, id)
	}
	seen[id] = true
	return nil
}
