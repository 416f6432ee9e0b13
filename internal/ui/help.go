package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/noborus/ov/oviewer"
)

// HelpRenderer handles help content rendering
type HelpRenderer struct {
	keys KeyMap
}

// NewHelpRenderer creates a new help renderer
func NewHelpRenderer(keys KeyMap) *HelpRenderer {
	return &HelpRenderer{keys: keys}
}

// Render generates help content with colors for the pager
func (r *HelpRenderer) Render() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220")).
		Width(12)

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	line := func(keys, desc string) string {
		return fmt.Sprintf("  %s %s\n", keyStyle.Render(keys), descStyle.Render(desc))
	}

	var help strings.Builder

	help.WriteString(titleStyle.Render("Create Asset Help"))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Keys"))
	help.WriteString("\n")
	for _, group := range r.keys.FullHelp() {
		for _, b := range group {
			h := b.Help()
			help.WriteString(line(h.Key, h.Desc))
		}
	}
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Query"))
	help.WriteString("\n")
	help.WriteString(line("word", "type name must contain word"))
	help.WriteString(line("&word", "same as word"))
	help.WriteString(line("|word", "any |word contained is enough"))
	help.WriteString(line("(empty)", "list every type"))
	help.WriteString("\n")

	exampleStyle := lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("241"))
	help.WriteString(exampleStyle.Render("  Examples: enemy config, |loot |item, wave &enemy"))
	help.WriteString("\n")
	help.WriteString(exampleStyle.Render("  Matching ignores case. Words are separated by single spaces."))

	return help.String()
}

// HelpOps shows help in the ov pager
type HelpOps struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewHelpOps creates a new help operations instance
func NewHelpOps() *HelpOps {
	return &HelpOps{}
}

// SetProgram sets the program whose terminal is released while paging
func (h *HelpOps) SetProgram(p *tea.Program) {
	h.program = p
}

// ShowHelpInPager shows help content using ov pager
func (h *HelpOps) ShowHelpInPager(helpContent string) error {
	if h.program == nil {
		return fmt.Errorf("program not set")
	}

	if err := h.program.ReleaseTerminal(); err != nil {
		return err
	}

	defer func() {
		// Small delay to ensure ov has fully exited before restoring terminal
		time.Sleep(100 * time.Millisecond)
		_ = h.program.RestoreTerminal()
	}()

	root, err := oviewer.NewRoot(strings.NewReader(helpContent))
	if err != nil {
		return err
	}

	// Don't write the document back to our screen on exit
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}
