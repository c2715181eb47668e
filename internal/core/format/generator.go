package format

import (
	"github.com/fmfug/fmfug/internal/core"
)

// DefaultFormats is the pattern set used when the caller supplies none.
// It covers first/last/firstlast/lastfirst in plain, dotted, hyphenated,
// underscored and length-truncated variants.
var DefaultFormats = []string{
	"first", "last", "firstlast", "lastfirst",
	"first.last", "last.first", "first-last", "last-first",
	"first_last", "last_first", "first[1].last", "last[1].first",
	"firstlast[1]", "first[1]last", "last[1]first", "lastfirst[1]",
	"first[1]last[1]", "last[1]first[1]",
}

// Generator turns work items into username candidates by evaluating a
// compiled pattern list in order.
type Generator struct {
	patterns []*Pattern
	opts     Options
}

// NewGenerator compiles the given patterns. An empty formats list falls
// back to DefaultFormats.
func NewGenerator(formats []string, opts Options) *Generator {
	if len(formats) == 0 {
		formats = DefaultFormats
	}
	patterns := make([]*Pattern, 0, len(formats))
	for _, f := range formats {
		patterns = append(patterns, Compile(f))
	}
	return &Generator{patterns: patterns, opts: opts}
}

// Formats returns the number of configured patterns.
func (g *Generator) Formats() int {
	return len(g.patterns)
}

// FromName generates every username implied by the configured patterns, in
// pattern-list order. Names without a usable first component (including
// blank input) yield an empty result; duplicates across patterns are kept.
func (g *Generator) FromName(raw string) []string {
	name := core.ParseName(raw)
	if name.First == "" {
		return nil
	}
	var out []string
	for _, p := range g.patterns {
		out = append(out, p.Apply(name, g.opts)...)
	}
	return out
}

// Generate runs one work item through the pattern list.
func (g *Generator) Generate(item core.WorkItem) []string {
	return g.FromName(item.FullName())
}
