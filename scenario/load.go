package scenario

import (
	"fmt"
	"io"

	"github.com/BurntSushi/toml"
)

// entry is the on-disk shape of one scenario in a catalog file.
type entry struct {
	ID            string `toml:"id"`
	Name          string `toml:"name"`
	Input         string `toml:"input"`
	Expected      string `toml:"expected"`
	KnownWeakness bool   `toml:"knownWeakness"`
	Category      string `toml:"category"`
	Grammar       string `toml:"grammar"`
	Length        string `toml:"length"`
	Quality       string `toml:"quality"`
}

type file struct {
	Positive    []entry `toml:"positive"`
	Negative    []entry `toml:"negative"`
	Interaction []entry `toml:"interaction"`
}

func (e entry) scenario() Scenario {
	return Scenario{
		ID:    e.ID,
		Name:  e.Name,
		Input: e.Input,
		Tags: Tags{
			Category: e.Category,
			Grammar:  e.Grammar,
			Length:   Length(e.Length),
			Quality:  Quality(e.Quality),
		},
	}
}

// LoadFile reads an extra catalog from a TOML file:
//
//	[[positive]]
//	id = "Pos_Extra_01"
//	name = "Greeting"
//	input = "suba dahawalak!"
//	expected = "සුබ දහවලක්!"
//
//	[[negative]]
//	id = "Neg_Extra_01"
//	input = "???"
//	knownWeakness = true
//
// Negative entries must not carry expected text.
func LoadFile(path string) (Catalog, error) {
	var f file
	if _, err := toml.DecodeFile(path, &f); err != nil {
		return Catalog{}, fmt.Errorf("parsing catalog %s: %w", path, err)
	}
	return f.catalog()
}

// Decode reads an extra catalog in the LoadFile format from r.
func Decode(r io.Reader) (Catalog, error) {
	var f file
	if _, err := toml.NewDecoder(r).Decode(&f); err != nil {
		return Catalog{}, fmt.Errorf("parsing catalog: %w", err)
	}
	return f.catalog()
}

func (f file) catalog() (Catalog, error) {
	var c Catalog
	for _, e := range f.Positive {
		c.Positive = append(c.Positive, Positive{Scenario: e.scenario(), Expected: e.Expected})
	}
	for _, e := range f.Negative {
		if e.Expected != "" {
			return Catalog{}, fmt.Errorf("%s %s: negative scenarios cannot have expected output", GroupNegative, e.ID)
		}
		c.Negative = append(c.Negative, Negative{Scenario: e.scenario(), KnownWeakness: e.KnownWeakness})
	}
	for _, e := range f.Interaction {
		c.Interaction = append(c.Interaction, Interaction{Scenario: e.scenario(), Expected: e.Expected})
	}
	if err := Validate(c); err != nil {
		return Catalog{}, err
	}
	return c, nil
}
