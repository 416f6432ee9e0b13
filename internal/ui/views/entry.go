package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"assetcreator/internal/domain"
	"assetcreator/internal/search"
)

// EntryRenderer handles rendering of catalog entries
type EntryRenderer struct {
	styles      *Styles
	highlighter *search.Highlighter
}

// NewEntryRenderer creates a new entry renderer
func NewEntryRenderer(styles *Styles) *EntryRenderer {
	return &EntryRenderer{
		styles:      styles,
		highlighter: search.NewHighlighter(),
	}
}

// RenderEntry renders one line of the match list
func (r *EntryRenderer) RenderEntry(entry domain.CatalogEntry, isSelected bool, tokens []search.Token) string {
	base := lipgloss.NewStyle()
	dim := r.styles.Dim
	highlight := r.styles.Highlight
	if isSelected {
		base = base.Inherit(r.styles.SelectionBg)
		dim = dim.Inherit(r.styles.SelectionBg)
		highlight = highlight.Inherit(r.styles.SelectionBg)
	}

	prefix := "  "
	if isSelected {
		prefix = r.styles.Cursor.Render("> ")
	}

	labelSpans, nameSpans := r.Spans(entry, tokens)
	line := r.renderHighlighted(entry.DisplayName(), labelSpans, base, highlight)

	if entry.DisplayLabel != "" {
		line += base.Render(" ") + r.renderHighlighted(entry.Name, nameSpans, dim, highlight)
	}
	return prefix + line
}

// Spans returns the token hits inside the shown label and, for entries with
// a display label, inside the identifying name printed beside it. Matching
// runs on the name, so a labelled row may only show hits in the name part.
func (r *EntryRenderer) Spans(entry domain.CatalogEntry, tokens []search.Token) (label, name []search.Span) {
	label = r.highlighter.Spans(entry.DisplayName(), tokens)
	if entry.DisplayLabel != "" {
		name = r.highlighter.Spans(entry.Name, tokens)
	}
	return label, name
}

func (r *EntryRenderer) renderHighlighted(text string, spans []search.Span, base, highlight lipgloss.Style) string {
	if len(spans) == 0 {
		return base.Render(text)
	}

	runes := []rune(text)
	var b strings.Builder
	pos := 0
	for _, span := range spans {
		if span.Start > pos {
			b.WriteString(base.Render(string(runes[pos:span.Start])))
		}
		end := span.End
		if end > len(runes) {
			end = len(runes)
		}
		b.WriteString(highlight.Render(string(runes[span.Start:end])))
		pos = end
	}
	if pos < len(runes) {
		b.WriteString(base.Render(string(runes[pos:])))
	}
	return b.String()
}
