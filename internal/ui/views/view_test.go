package views

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"assetcreator/internal/domain"
	"assetcreator/internal/search"
)

func TestVisibleRange(t *testing.T) {
	tests := []struct {
		name                  string
		total, offset, height int
		start, end            int
	}{
		{"no height shows all", 5, 0, 0, 0, 5},
		{"height larger than list", 3, 0, 10, 0, 3},
		{"window from top", 10, 0, 4, 0, 4},
		{"window in middle", 10, 3, 4, 3, 7},
		{"offset past end is pulled back", 10, 9, 4, 6, 10},
		{"negative offset", 10, -2, 4, 0, 4},
		{"empty list", 0, 0, 4, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := VisibleRange(tt.total, tt.offset, tt.height)
			assert.Equal(t, tt.start, start)
			assert.Equal(t, tt.end, end)
		})
	}
}

func TestRenderEmptyMatchesShowsNotFound(t *testing.T) {
	out := NewRenderer().Render(ViewState{CatalogSize: 3})
	assert.Contains(t, out, "Not found.")
	assert.Contains(t, out, "0 of 3 types")
}

func TestRenderScrollIndicators(t *testing.T) {
	var matches []domain.CatalogEntry
	for _, n := range []string{"a.A", "a.B", "a.C", "a.D", "a.E"} {
		matches = append(matches, domain.CatalogEntry{Name: n})
	}
	out := NewRenderer().Render(ViewState{
		Matches:        matches,
		ViewportOffset: 1,
		ViewportHeight: 2,
	})
	assert.Contains(t, out, "↑ 1 more")
	assert.Contains(t, out, "↓ 2 more")
	assert.Contains(t, out, "a.B")
	assert.NotContains(t, out, "a.E")
}

func TestRenderEntryKeepsText(t *testing.T) {
	r := NewEntryRenderer(NewStyles())
	entry := domain.CatalogEntry{Name: "game.EnemyWave", DisplayLabel: "Waves/Enemy Wave"}
	tokens := []search.Token{{Mode: search.ModeAnd, Text: "enemy"}}

	out := r.RenderEntry(entry, true, tokens)
	assert.Contains(t, out, "Enemy")
	assert.Contains(t, out, "game.EnemyWave")
	assert.Contains(t, out, ">")
}

func TestSpansCoverTheMatchedName(t *testing.T) {
	r := NewEntryRenderer(NewStyles())
	// "config" matches the identifying name but not the menu label
	entry := domain.CatalogEntry{Name: "game.EnemyConfig", DisplayLabel: "Characters/Enemy"}
	tokens := []search.Token{{Mode: search.ModeAnd, Text: "config"}}

	label, name := r.Spans(entry, tokens)
	assert.Empty(t, label)
	assert.Equal(t, []search.Span{{Start: 10, End: 16}}, name)
}

func TestSpansWithoutLabel(t *testing.T) {
	r := NewEntryRenderer(NewStyles())
	entry := domain.CatalogEntry{Name: "game.EnemyWave"}
	tokens := []search.Token{{Mode: search.ModeAnd, Text: "wave"}}

	label, name := r.Spans(entry, tokens)
	assert.Equal(t, []search.Span{{Start: 10, End: 14}}, label)
	assert.Nil(t, name)
}
