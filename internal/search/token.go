// Package search implements the query grammar and the matching rules used to
// filter the catalog.
//
// A query is split on single spaces. Each trimmed, non-empty segment becomes
// a Token. With VariantExtended a leading '|' marks an OR-clause and a
// leading '&' an explicit AND-clause; unprefixed segments are AND-clauses.
// VariantSimple treats every segment as an AND-clause verbatim.
package search

import (
	"fmt"
	"strings"
)

// Mode is the boolean role of a token
type Mode int

const (
	ModeAnd Mode = iota
	ModeOr
)

func (m Mode) String() string {
	switch m {
	case ModeOr:
		return "or"
	default:
		return "and"
	}
}

// Token is one atomic query unit
type Token struct {
	Mode Mode
	Text string
}

// Variant selects the token grammar
type Variant int

const (
	// VariantExtended understands '|' and '&' prefixes
	VariantExtended Variant = iota
	// VariantSimple treats every segment as an AND-clause
	VariantSimple
)

const (
	orPrefix  = '|'
	andPrefix = '&'
)

func (v Variant) String() string {
	switch v {
	case VariantSimple:
		return "simple"
	default:
		return "extended"
	}
}

// ParseVariant converts a config value into a Variant. An empty string
// selects the default (extended) grammar.
func ParseVariant(s string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "extended", "or":
		return VariantExtended, nil
	case "simple", "and":
		return VariantSimple, nil
	default:
		return VariantExtended, fmt.Errorf("unknown search variant %q (want simple or extended)", s)
	}
}

// ParseTokens splits text into tokens. Segments that are empty after
// trimming (or after prefix stripping) are dropped. An empty result means
// "match everything".
func ParseTokens(text string, variant Variant) []Token {
	if text == "" {
		return nil
	}

	var tokens []Token
	for _, segment := range strings.Split(text, " ") {
		segment = strings.TrimSpace(segment)
		if segment == "" {
			continue
		}

		token, ok := parseSegment(segment, variant)
		if !ok {
			continue
		}
		tokens = append(tokens, token)
	}
	return tokens
}

func parseSegment(segment string, variant Variant) (Token, bool) {
	if variant == VariantSimple {
		return Token{Mode: ModeAnd, Text: segment}, true
	}

	var token Token
	switch segment[0] {
	case orPrefix:
		token = Token{Mode: ModeOr, Text: segment[1:]}
	case andPrefix:
		token = Token{Mode: ModeAnd, Text: segment[1:]}
	default:
		token = Token{Mode: ModeAnd, Text: segment}
	}
	return token, token.Text != ""
}

// HasOr reports whether any token is an OR-clause
func HasOr(tokens []Token) bool {
	for _, t := range tokens {
		if t.Mode == ModeOr {
			return true
		}
	}
	return false
}
