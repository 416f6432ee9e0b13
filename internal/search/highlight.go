package search

import (
	"sort"
	"strings"

	"github.com/junegunn/fzf/src/algo"
	"github.com/junegunn/fzf/src/util"
)

// Span is a half-open rune range [Start, End) inside a label
type Span struct {
	Start int
	End   int
}

// Highlighter locates token hits inside display text. It does not take part
// in matching; it only tells the view which runes to emphasise.
type Highlighter struct {
	slab *util.Slab
}

// NewHighlighter creates a highlighter with its own scratch slab
func NewHighlighter() *Highlighter {
	return &Highlighter{slab: util.MakeSlab(64, 4096)}
}

// Spans returns the sorted, merged rune ranges of text hit by any token
func (h *Highlighter) Spans(text string, tokens []Token) []Span {
	if text == "" || len(tokens) == 0 {
		return nil
	}

	chars := util.ToChars([]byte(text))
	var spans []Span
	for _, token := range tokens {
		pattern := []rune(strings.ToLower(token.Text))
		if len(pattern) == 0 {
			continue
		}
		result, _ := algo.ExactMatchNaive(false, false, true, &chars, pattern, false, h.slab)
		if result.Start < 0 || result.End <= result.Start {
			continue
		}
		spans = append(spans, Span{Start: result.Start, End: result.End})
	}
	return mergeSpans(spans)
}

func mergeSpans(spans []Span) []Span {
	if len(spans) < 2 {
		return spans
	}

	sort.Slice(spans, func(i, j int) bool {
		return spans[i].Start < spans[j].Start
	})

	merged := spans[:1]
	for _, s := range spans[1:] {
		last := &merged[len(merged)-1]
		if s.Start <= last.End {
			if s.End > last.End {
				last.End = s.End
			}
			continue
		}
		merged = append(merged, s)
	}
	return merged
}
