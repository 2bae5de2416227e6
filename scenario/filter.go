package scenario

import "slices"

// Filter selects a subset of a catalog. Empty fields match everything;
// non-empty fields must all match.
type Filter struct {
	Groups     []Group
	IDs        []string
	Categories []string
	Lengths    []Length
	Qualities  []Quality
}

// IsZero reports whether the filter matches every scenario.
func (f Filter) IsZero() bool {
	return len(f.Groups) == 0 && len(f.IDs) == 0 && len(f.Categories) == 0 &&
		len(f.Lengths) == 0 && len(f.Qualities) == 0
}

// Match reports whether the case passes the filter.
func (f Filter) Match(c Case) bool {
	s := c.Base()
	return matches(f.Groups, c.Group()) &&
		matches(f.IDs, s.ID) &&
		matches(f.Categories, s.Tags.Category) &&
		matches(f.Lengths, s.Tags.Length) &&
		matches(f.Qualities, s.Tags.Quality)
}

func matches[T comparable](want []T, v T) bool {
	return len(want) == 0 || slices.Contains(want, v)
}

// Filter returns the scenarios matching f, keeping catalog order.
func (c Catalog) Filter(f Filter) Catalog {
	if f.IsZero() {
		return Catalog{
			Positive:    slices.Clone(c.Positive),
			Negative:    slices.Clone(c.Negative),
			Interaction: slices.Clone(c.Interaction),
		}
	}

	var out Catalog
	for _, p := range c.Positive {
		if f.Match(p) {
			out.Positive = append(out.Positive, p)
		}
	}
	for _, n := range c.Negative {
		if f.Match(n) {
			out.Negative = append(out.Negative, n)
		}
	}
	for _, u := range c.Interaction {
		if f.Match(u) {
			out.Interaction = append(out.Interaction, u)
		}
	}
	return out
}
