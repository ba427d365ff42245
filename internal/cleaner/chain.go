package cleaner

import (
	"strings"
)

// ChainCleaner applies multiple cleaners in sequence.
type ChainCleaner struct {
	cleaners []Cleaner
}

// NewChain creates a new cleaner that applies multiple cleaners in sequence.
// Cleaners are applied in the order provided.
//
// Example:
//
//	chain := cleaner.NewChain(
//	    cleaner.NewRegexp("collapse-spaces", ` {2,}`, " "),
//	    cleaner.NewTrim(),
//	)
func NewChain(cleaners ...Cleaner) *ChainCleaner {
	return &ChainCleaner{
		cleaners: cleaners,
	}
}

// Clean applies all cleaners in sequence.
func (c *ChainCleaner) Clean(text string) string {
	for _, cl := range c.cleaners {
		text = cl.Clean(text)
	}
	return text
}

// Steps returns the chained cleaners in application order.
func (c *ChainCleaner) Steps() []Cleaner {
	steps := make([]Cleaner, len(c.cleaners))
	copy(steps, c.cleaners)
	return steps
}

// Name returns the names of all chained cleaners.
func (c *ChainCleaner) Name() string {
	names := make([]string, len(c.cleaners))
	for i, cl := range c.cleaners {
		names[i] = cl.Name()
	}
	return "chain(" + strings.Join(names, "->") + ")"
}
