package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"

	"assetcreator/internal/domain"
	"assetcreator/internal/search"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width          int
	Height         int
	Destination    string
	Input          string // rendered query field
	Matches        []domain.CatalogEntry
	CatalogSize    int
	Tokens         []search.Token
	SelectedIndex  int
	ViewportOffset int
	ViewportHeight int
	StatusMessage  string
	ErrorMessage   string
	HelpModel      help.Model
	KeyBindings    []key.Binding
}

// Renderer handles all view rendering
type Renderer struct {
	styles      *Styles
	entryRender *EntryRenderer
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:      styles,
		entryRender: NewEntryRenderer(styles),
	}
}

// Styles returns the renderer's styles
func (r *Renderer) Styles() *Styles {
	return r.styles
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	content := &strings.Builder{}

	content.WriteString(r.styles.Title.Render("Create Asset"))
	content.WriteString("\n")

	dest := state.Destination
	if dest == "" {
		dest = "(default)"
	}
	content.WriteString(r.styles.Label.Render("Destination: "))
	content.WriteString(r.styles.Destination.Render(dest))
	content.WriteString("\n\n")

	content.WriteString(state.Input)
	content.WriteString("\n\n")

	content.WriteString(r.renderList(state))

	content.WriteString(r.renderStatus(state))

	if len(state.KeyBindings) > 0 {
		content.WriteString("\n")
		content.WriteString(state.HelpModel.ShortHelpView(state.KeyBindings))
	}

	return r.styles.Main.Render(content.String())
}

func (r *Renderer) renderList(state ViewState) string {
	if len(state.Matches) == 0 {
		return r.styles.NotFound.Render("Not found.") + "\n"
	}

	b := &strings.Builder{}
	start, end := VisibleRange(len(state.Matches), state.ViewportOffset, state.ViewportHeight)

	if start > 0 {
		b.WriteString(r.styles.Scroll.Render(fmt.Sprintf("↑ %d more", start)))
		b.WriteString("\n")
	}
	for i := start; i < end; i++ {
		b.WriteString(r.entryRender.RenderEntry(state.Matches[i], i == state.SelectedIndex, state.Tokens))
		b.WriteString("\n")
	}
	if end < len(state.Matches) {
		b.WriteString(r.styles.Scroll.Render(fmt.Sprintf("↓ %d more", len(state.Matches)-end)))
		b.WriteString("\n")
	}
	return b.String()
}

func (r *Renderer) renderStatus(state ViewState) string {
	if state.ErrorMessage != "" {
		return r.styles.Status.Render(r.styles.Error.Render(state.ErrorMessage))
	}
	if state.StatusMessage != "" {
		return r.styles.Status.Render(state.StatusMessage)
	}
	return r.styles.Status.Render(fmt.Sprintf("%d of %d types", len(state.Matches), state.CatalogSize))
}

// VisibleRange returns the [start, end) slice of a list of total items shown
// in a viewport of height rows starting at offset.
func VisibleRange(total, offset, height int) (int, int) {
	if height <= 0 || height > total {
		height = total
	}
	if offset < 0 {
		offset = 0
	}
	if offset > total-height {
		offset = total - height
	}
	return offset, offset + height
}
