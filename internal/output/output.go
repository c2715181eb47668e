package output

import (
	"fmt"
	"strings"

	"github.com/fmfug/fmfug/internal/core"
	"github.com/fmfug/fmfug/internal/core/format"
)

// Format represents an output format for pattern listings.
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

// ParseFormat validates and normalizes a format string.
func ParseFormat(value string) (Format, error) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	switch normalized {
	case "", string(FormatTable):
		return FormatTable, nil
	case string(FormatJSON):
		return FormatJSON, nil
	case string(FormatYAML):
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported output format: %s", value)
	}
}

// PatternEntry describes one format pattern together with a sample
// expansion.
type PatternEntry struct {
	Pattern string `json:"pattern" yaml:"pattern"`
	Example string `json:"example" yaml:"example"`
}

// BuildEntries evaluates each pattern against a sample name. Patterns that
// produce multiple usernames (numeric suffixes) contribute their first
// expansion as the example.
func BuildEntries(patterns []string, sampleName string, opts format.Options) []PatternEntry {
	name := core.ParseName(sampleName)
	entries := make([]PatternEntry, 0, len(patterns))
	for _, raw := range patterns {
		entry := PatternEntry{Pattern: raw}
		if produced := format.Compile(raw).Apply(name, opts); len(produced) > 0 {
			entry.Example = produced[0]
		}
		entries = append(entries, entry)
	}
	return entries
}

// FormatPatternList renders the entries using the requested format.
func FormatPatternList(f Format, entries []PatternEntry) (string, error) {
	switch f {
	case FormatJSON:
		return renderJSON(entries)
	case FormatYAML:
		return renderYAML(entries)
	default:
		return renderTable(entries), nil
	}
}
