package core

import (
	"fmt"
	"strings"
)

// ParsedName holds the components of a full name split on whitespace.
type ParsedName struct {
	First  string
	Middle string
	Last   string
}

// ParseName splits a raw full name into its components. The first token
// becomes First; the last token becomes Last only when more than one token
// is present; the second token becomes Middle only when more than two are.
// Tokens beyond the second are ignored for Middle. Blank input yields a
// ParsedName with all fields empty.
func ParseName(raw string) ParsedName {
	parts := strings.Fields(raw)
	name := ParsedName{}
	if len(parts) > 0 {
		name.First = parts[0]
	}
	if len(parts) > 2 {
		name.Middle = parts[1]
	}
	if len(parts) > 1 {
		name.Last = parts[len(parts)-1]
	}
	return name
}

// WorkItem is one unit of input: either a raw full name, or a first/last
// pair produced by cross-product mode.
type WorkItem struct {
	Raw   string
	First string
	Last  string
}

// IsPair reports whether the item carries a first/last pair.
func (w WorkItem) IsPair() bool {
	return w.First != "" && w.Last != ""
}

// FullName returns the name string the generator should parse.
func (w WorkItem) FullName() string {
	if w.IsPair() {
		return w.First + " " + w.Last
	}
	return w.Raw
}

func (w WorkItem) String() string {
	if w.IsPair() {
		return fmt.Sprintf("(%s, %s)", w.First, w.Last)
	}
	return w.Raw
}
