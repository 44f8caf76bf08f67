package confluxer

import "slices"

// ModelStats holds aggregated statistics for a trained Confluxer.
type ModelStats struct {
	Prefixes      int `json:"prefixes"`       // The number of distinct prefixes with at least one continuation.
	Transitions   int `json:"transitions"`    // The total number of recorded prefix->continuation observations.
	StartPrefixes int `json:"start_prefixes"` // The number of distinct prefixes that can start a chain.
}

// Stats returns a snapshot of the model's size.
func (c *Confluxer) Stats() ModelStats {
	transitions := 0
	for _, continuations := range c.mapping {
		transitions += len(continuations)
	}
	return ModelStats{
		Prefixes:      len(c.mapping),
		Transitions:   transitions,
		StartPrefixes: len(c.starts),
	}
}

// Continuations returns a copy of the continuations recorded for prefix, in
// corpus order. It returns nil for an unknown prefix.
func (c *Confluxer) Continuations(prefix string) []string {
	return slices.Clone(c.mapping[prefix])
}

// StartPrefixes returns a copy of the start prefixes in the order they were
// first seen.
func (c *Confluxer) StartPrefixes() []string {
	return slices.Clone(c.starts)
}

// Prefixes returns every prefix in the transition table, sorted.
func (c *Confluxer) Prefixes() []string {
	prefixes := make([]string, 0, len(c.mapping))
	for prefix := range c.mapping {
		prefixes = append(prefixes, prefix)
	}
	slices.Sort(prefixes)
	return prefixes
}
