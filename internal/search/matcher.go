package search

import (
	"assetcreator/internal/domain"
)

// Options tune how tokens are compared against entries
type Options struct {
	Variant Variant
	// MatchDisplayLabel lets a token hit the display label as well as the
	// identifying name.
	MatchDisplayLabel bool
}

// Matcher is the compiled form of a token sequence
type Matcher struct {
	tokens []Token
	root   Searcher
}

// Compile parses text and builds a matcher for it
func Compile(text string, opts Options) *Matcher {
	return NewMatcher(ParseTokens(text, opts.Variant), opts)
}

// NewMatcher builds a matcher from already parsed tokens
func NewMatcher(tokens []Token, opts Options) *Matcher {
	return &Matcher{
		tokens: tokens,
		root:   makeSearcher(tokens, opts),
	}
}

func makeSearcher(tokens []Token, opts Options) Searcher {
	if len(tokens) == 0 {
		return &AllSearcher{}
	}

	fields := []Field{FieldName}
	if opts.MatchDisplayLabel {
		fields = append(fields, FieldLabel)
	}

	if opts.Variant == VariantSimple {
		searchers := make([]Searcher, len(tokens))
		for i, token := range tokens {
			searchers[i] = MakeExactSearcher(token.Text, fields...)
		}
		return MakeAndSearcher(searchers)
	}

	var orSearchers, andSearchers []Searcher
	for _, token := range tokens {
		searcher := MakeExactSearcher(token.Text, fields...)
		if token.Mode == ModeOr {
			orSearchers = append(orSearchers, searcher)
		} else {
			andSearchers = append(andSearchers, searcher)
		}
	}

	if len(orSearchers) == 0 {
		return MakeAndSearcher(andSearchers)
	}
	if len(andSearchers) == 0 {
		return MakeOrSearcher(orSearchers)
	}
	return MakePrecheckSearcher(MakeOrSearcher(orSearchers), MakeAndSearcher(andSearchers))
}

// Tokens returns the parsed tokens
func (m *Matcher) Tokens() []Token {
	return m.tokens
}

// MatchesAll reports whether the matcher is the unfiltered sentinel
func (m *Matcher) MatchesAll() bool {
	return len(m.tokens) == 0
}

// Match reports whether entry satisfies the query
func (m *Matcher) Match(entry domain.CatalogEntry) bool {
	return m.match(NewCandidate(entry))
}

func (m *Matcher) match(c *Candidate) bool {
	if m.MatchesAll() {
		return true
	}
	if c.Entry.Name == "" {
		return false
	}
	return m.root.Match(c)
}

// Filter returns the entries that match, in catalog order. The result is a
// fresh slice; entries itself is never modified.
func Filter(entries []domain.CatalogEntry, m *Matcher) []domain.CatalogEntry {
	matches := make([]domain.CatalogEntry, 0, len(entries))
	if m.MatchesAll() {
		return append(matches, entries...)
	}

	for _, entry := range entries {
		if m.match(NewCandidate(entry)) {
			matches = append(matches, entry)
		}
	}
	return matches
}
