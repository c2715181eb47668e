// Package format implements the username format pattern language. A pattern
// recombines the components of a parsed name through keyword substitution
// (first, middle, last), bracketed length truncation (first[2]) and
// whole-pattern numeric-suffix enumeration (first5 expands to first0..first5).
package format

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/fmfug/fmfug/internal/core"
)

// Keyword recognition is case-insensitive so case-shaping patterns like
// First.Last still substitute; the directive itself is derived from the
// original pattern text.
var (
	// reNumeric matches the whole-pattern numeric-suffix form:
	// keyword, optional bracket modifier, trailing digit group.
	reNumeric = regexp.MustCompile(`(?i)^(first|middle|last)(\[(\d+)\])?(\d+)$`)

	// reToken matches a keyword with an optional bracket modifier.
	reToken = regexp.MustCompile(`(?i)(first|middle|last)(\[(\d+)\])?`)
)

// Options controls global evaluation behavior shared by every pattern.
type Options struct {
	// CaseSensitive preserves the casing contributed by name values.
	// When false every produced username is lowercased.
	CaseSensitive bool

	// SuffixTruncation applies the bracket modifier of numeric-suffix
	// patterns (first[2]5) to the enumerated base. The historical behavior
	// parses the bracket but ignores it, so first[2]5 equals first5; this
	// option opts into the corrected truncate-then-enumerate behavior.
	SuffixTruncation bool
}

// segment is one compiled piece of an ordinary pattern: literal text, or a
// keyword reference with an optional truncation length.
type segment struct {
	literal string
	keyword string
	trunc   int // -1 when no bracket modifier is present
}

// Pattern is a compiled format pattern. Compile once, apply to any number
// of names.
type Pattern struct {
	raw string

	// numeric-suffix form
	numeric bool
	keyword string
	trunc   int // bracket digits inside the numeric form, -1 if absent
	max     int // trailing digit group; enumerates 0..max inclusive

	// ordinary form
	segments []segment

	// case directives derived from the original pattern text
	upper bool
	title bool
}

// Compile parses a format pattern. Compilation never fails: text that
// matches no construct passes through as literal output.
func Compile(raw string) *Pattern {
	p := &Pattern{raw: raw, trunc: -1}

	if first, _ := utf8.DecodeRuneInString(raw); unicode.IsUpper(first) && len(raw) > 1 {
		if isUpper(raw) {
			p.upper = true
		} else {
			p.title = true
		}
	}

	if m := reNumeric.FindStringSubmatch(raw); m != nil {
		p.numeric = true
		p.keyword = strings.ToLower(m[1])
		if m[3] != "" {
			p.trunc, _ = strconv.Atoi(m[3])
		}
		p.max, _ = strconv.Atoi(m[4])
		return p
	}

	p.segments = compileSegments(raw)
	return p
}

// String returns the original pattern text.
func (p *Pattern) String() string {
	return p.raw
}

// Apply evaluates the pattern against a parsed name. It returns zero
// strings when the pattern produces nothing usable, one string for an
// ordinary pattern, or max+1 strings for a numeric-suffix pattern.
func (p *Pattern) Apply(name core.ParsedName, opts Options) []string {
	if p.numeric {
		return p.enumerate(name, opts)
	}

	var b strings.Builder
	for _, seg := range p.segments {
		if seg.keyword == "" {
			b.WriteString(seg.literal)
			continue
		}
		value := fieldValue(name, seg.keyword)
		if seg.trunc >= 0 {
			value = truncate(value, seg.trunc)
		}
		b.WriteString(value)
	}

	result := b.String()
	if strings.TrimSpace(result) == "" {
		return nil
	}

	switch {
	case !opts.CaseSensitive:
		result = strings.ToLower(result)
	case p.upper:
		result = strings.ToUpper(result)
	case p.title:
		result = capitalizeSegments(result)
	}

	return []string{result}
}

// enumerate expands the numeric-suffix form: the keyword value concatenated
// with every integer from 0 to max inclusive. The case directive never
// fires here because the matched keyword is always lowercase.
func (p *Pattern) enumerate(name core.ParsedName, opts Options) []string {
	base := fieldValue(name, p.keyword)
	if opts.SuffixTruncation && p.trunc >= 0 {
		base = truncate(base, p.trunc)
	}
	if !opts.CaseSensitive {
		base = strings.ToLower(base)
	}
	if strings.TrimSpace(base) == "" {
		return nil
	}

	out := make([]string, 0, p.max+1)
	for i := 0; i <= p.max; i++ {
		out = append(out, base+strconv.Itoa(i))
	}
	return out
}

func compileSegments(raw string) []segment {
	segs := make([]segment, 0, 4)
	pos := 0
	for _, m := range reToken.FindAllStringSubmatchIndex(raw, -1) {
		if m[0] > pos {
			segs = append(segs, segment{literal: raw[pos:m[0]]})
		}
		seg := segment{keyword: strings.ToLower(raw[m[2]:m[3]]), trunc: -1}
		if m[6] >= 0 {
			seg.trunc, _ = strconv.Atoi(raw[m[6]:m[7]])
		}
		segs = append(segs, seg)
		pos = m[1]
	}
	if pos < len(raw) {
		segs = append(segs, segment{literal: raw[pos:]})
	}
	return segs
}

func fieldValue(name core.ParsedName, keyword string) string {
	switch keyword {
	case "first":
		return name.First
	case "middle":
		return name.Middle
	default:
		return name.Last
	}
}

// truncate keeps the first n characters of s. Values shorter than n pass
// through whole; there is no padding.
func truncate(s string, n int) string {
	runes := []rune(s)
	if n >= len(runes) {
		return s
	}
	return string(runes[:n])
}

// capitalizeSegments splits on the separator characters . _ - (keeping the
// separators) and capitalizes the first alphabetic character of each
// segment, lowercasing the remainder.
func capitalizeSegments(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	start := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '.', '_', '-':
			b.WriteString(capitalize(s[start:i]))
			b.WriteByte(s[i])
			start = i + 1
		}
	}
	b.WriteString(capitalize(s[start:]))
	return b.String()
}

func capitalize(seg string) string {
	if seg == "" {
		return seg
	}
	r, size := utf8.DecodeRuneInString(seg)
	if !unicode.IsLetter(r) {
		return seg
	}
	return string(unicode.ToUpper(r)) + strings.ToLower(seg[size:])
}

// isUpper reports whether s contains at least one letter and no lowercase
// letters.
func isUpper(s string) bool {
	hasLetter := false
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) {
			hasLetter = true
		}
	}
	return hasLetter
}
