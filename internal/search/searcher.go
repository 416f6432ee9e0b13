package search

import (
	"strings"

	"assetcreator/internal/domain"
)

const (
	SearchTypeAll      = "all"
	SearchTypeExact    = "exact"
	SearchTypeAnd      = "and"
	SearchTypeOr       = "or"
	SearchTypePrecheck = "precheck"
	SearchTypeNone     = "none"
)

// Field names a searchable attribute of an entry
type Field int

const (
	FieldName Field = iota
	FieldLabel
)

// Candidate wraps an entry and caches its lower-cased fields for the
// duration of one filter pass.
type Candidate struct {
	Entry domain.CatalogEntry

	lowered    bool
	lowerName  string
	lowerLabel string
}

// NewCandidate wraps an entry
func NewCandidate(entry domain.CatalogEntry) *Candidate {
	return &Candidate{Entry: entry}
}

// Field returns the lower-cased value of the given field
func (c *Candidate) Field(f Field) string {
	if !c.lowered {
		c.lowerName = strings.ToLower(c.Entry.Name)
		c.lowerLabel = strings.ToLower(c.Entry.DisplayLabel)
		c.lowered = true
	}
	if f == FieldLabel {
		return c.lowerLabel
	}
	return c.lowerName
}

// Searcher decides whether one candidate matches
type Searcher interface {
	Match(c *Candidate) bool
	GetType() string
}

// AllSearcher matches everything
type AllSearcher struct{}

func (s *AllSearcher) Match(*Candidate) bool { return true }
func (s *AllSearcher) GetType() string       { return SearchTypeAll }

// NoneSearcher matches nothing
type NoneSearcher struct{}

func (s *NoneSearcher) Match(*Candidate) bool { return false }
func (s *NoneSearcher) GetType() string       { return SearchTypeNone }

// ExactSearcher is a case-insensitive substring test against one or more fields
type ExactSearcher struct {
	fields []Field
	term   string
}

// MakeExactSearcher creates a searcher for term. The term is lower-cased once here.
func MakeExactSearcher(term string, fields ...Field) Searcher {
	if len(fields) == 0 {
		fields = []Field{FieldName}
	}
	return &ExactSearcher{
		fields: fields,
		term:   strings.ToLower(term),
	}
}

func (s *ExactSearcher) Match(c *Candidate) bool {
	for _, f := range s.fields {
		if strings.Contains(c.Field(f), s.term) {
			return true
		}
	}
	return false
}

func (s *ExactSearcher) GetType() string { return SearchTypeExact }

// AndSearcher matches when every child matches
type AndSearcher struct {
	searchers []Searcher
}

func MakeAndSearcher(searchers []Searcher) Searcher {
	return &AndSearcher{searchers: searchers}
}

func (s *AndSearcher) Match(c *Candidate) bool {
	for _, searcher := range s.searchers {
		if !searcher.Match(c) {
			return false
		}
	}
	return true
}

func (s *AndSearcher) GetType() string { return SearchTypeAnd }

// OrSearcher matches when any child matches. With no children nothing matches.
type OrSearcher struct {
	searchers []Searcher
}

func MakeOrSearcher(searchers []Searcher) Searcher {
	return &OrSearcher{searchers: searchers}
}

func (s *OrSearcher) Match(c *Candidate) bool {
	for _, searcher := range s.searchers {
		if searcher.Match(c) {
			return true
		}
	}
	return false
}

func (s *OrSearcher) GetType() string { return SearchTypeOr }

// PrecheckSearcher evaluates the OR-clauses first; any hit is a match
// regardless of the AND-clauses. Otherwise every AND-clause must hit. A
// query made only of OR-clauses that all miss does not match.
type PrecheckSearcher struct {
	or  Searcher
	and Searcher
}

func MakePrecheckSearcher(or Searcher, and Searcher) Searcher {
	return &PrecheckSearcher{or: or, and: and}
}

func (s *PrecheckSearcher) Match(c *Candidate) bool {
	if s.or.Match(c) {
		return true
	}
	return s.and.Match(c)
}

func (s *PrecheckSearcher) GetType() string { return SearchTypePrecheck }
