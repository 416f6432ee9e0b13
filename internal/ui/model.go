package ui

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	log "github.com/sirupsen/logrus"

	"assetcreator/internal/session"
	"assetcreator/internal/sink"
	"assetcreator/internal/ui/views"
)

// Rows taken by everything except the match list
const chromeHeight = 13

// ErrNothingSelected is reported when enter is pressed with an empty match list
var ErrNothingSelected = errors.New("no type selected")

// Model is the query window: a text field over a Session and the match list
// below it.
type Model struct {
	session     *session.Session
	destination string

	input    textinput.Model
	keys     KeyMap
	help     help.Model
	renderer *views.Renderer

	helpRenderer *HelpRenderer
	helpOps      *HelpOps

	cursor int
	offset int
	width  int
	height int

	paused     bool
	committing bool // a commit command is in flight
	status     string
	err        error
	result     *sink.Result
}

// NewModel creates the window for sess. destination is the directory new
// assets are written to, relative to the sink root; empty means the default.
func NewModel(sess *session.Session, destination string) *Model {
	ti := textinput.New()
	ti.Placeholder = "type to search, |a |b for any of"
	ti.Prompt = "> "
	ti.CharLimit = 256
	ti.SetValue(sess.Query())

	keys := DefaultKeyMap()

	return &Model{
		session:      sess,
		destination:  destination,
		input:        ti,
		keys:         keys,
		help:         help.New(),
		renderer:     views.NewRenderer(),
		helpRenderer: NewHelpRenderer(keys),
		helpOps:      NewHelpOps(),
	}
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.helpOps.SetProgram(p)
}

// Result returns the asset written by the window, if any
func (m *Model) Result() (sink.Result, bool) {
	if m.result == nil {
		return sink.Result{}, false
	}
	return *m.result, true
}

// Err returns the last commit failure
func (m *Model) Err() error {
	return m.err
}

// Cursor returns the index of the highlighted match
func (m *Model) Cursor() int {
	return m.cursor
}

// Focused reports whether the query field has keyboard focus
func (m *Model) Focused() bool {
	return m.input.Focused()
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return tea.Batch(requestFocus, textinput.Blink)
}

func requestFocus() tea.Msg {
	return focusQueryMsg{}
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.input.Width = msg.Width - 8
		m.ensureVisible()
		return m, nil

	case focusQueryMsg:
		if m.session.TakeFocusRequest() {
			return m, m.input.Focus()
		}
		return m, nil

	case assetCreatedMsg:
		m.result = &msg.result
		m.err = nil
		return m, tea.Quit

	case commitFailedMsg:
		m.committing = false
		m.err = msg.err
		return m, nil

	case helpPagerMsg:
		if msg.err != nil {
			log.Warnf("Help pager failed: %v", msg.err)
		}
		return m, nil

	case pauseRenderingMsg:
		m.paused = true
		return m, nil

	case resumeRenderingMsg:
		m.paused = false
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}
	// The entry is already on its way to the sink
	if m.committing {
		return m, nil
	}

	switch {

	case key.Matches(msg, m.keys.Back):
		if m.session.Query() == "" {
			return m, tea.Quit
		}
		return m, m.clear()

	case key.Matches(msg, m.keys.Clear):
		return m, m.clear()

	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)
		return m, nil

	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)
		return m, nil

	case key.Matches(msg, m.keys.PageUp):
		m.moveCursor(-m.listHeight())
		return m, nil

	case key.Matches(msg, m.keys.PageDown):
		m.moveCursor(m.listHeight())
		return m, nil

	case key.Matches(msg, m.keys.Create):
		return m, m.commit()

	case key.Matches(msg, m.keys.Help):
		return m, m.showHelp()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != m.session.Query() {
		m.session.SetQuery(m.input.Value())
		m.cursor = 0
		m.offset = 0
		m.err = nil
	}
	return m, cmd
}

// clear empties the query and schedules the refocus the session asks for
func (m *Model) clear() tea.Cmd {
	m.input.SetValue("")
	m.input.Blur()
	m.session.Clear()
	m.cursor = 0
	m.offset = 0
	m.err = nil
	return requestFocus
}

func (m *Model) moveCursor(delta int) {
	n := len(m.session.CurrentMatches())
	if n == 0 {
		m.cursor = 0
		return
	}
	m.cursor += delta
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor >= n {
		m.cursor = n - 1
	}
	m.ensureVisible()
}

func (m *Model) listHeight() int {
	if m.height == 0 {
		return 0
	}
	h := m.height - chromeHeight
	if h < 3 {
		h = 3
	}
	return h
}

func (m *Model) ensureVisible() {
	h := m.listHeight()
	if h == 0 {
		m.offset = 0
		return
	}
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+h {
		m.offset = m.cursor - h + 1
	}
}

// commit returns a command that hands the highlighted entry to the sink
func (m *Model) commit() tea.Cmd {
	matches := m.session.CurrentMatches()
	if m.cursor < 0 || m.cursor >= len(matches) {
		m.err = ErrNothingSelected
		return nil
	}
	entry := matches[m.cursor]
	dest := m.destination
	m.committing = true
	m.err = nil
	sess := m.session
	return func() tea.Msg {
		result, err := sess.Commit(entry, dest)
		if err != nil {
			return commitFailedMsg{err: err}
		}
		return assetCreatedMsg{result: result}
	}
}

// showHelp returns a command that shows help using ov pager
func (m *Model) showHelp() tea.Cmd {
	if m.helpOps.program == nil {
		return nil
	}
	content := m.helpRenderer.Render()
	program := m.helpOps.program
	return func() tea.Msg {
		program.Send(pauseRenderingMsg{})
		err := m.helpOps.ShowHelpInPager(content)
		program.Send(resumeRenderingMsg{})
		return helpPagerMsg{err: err}
	}
}

// View implements tea.Model
func (m *Model) View() string {
	if m.paused {
		return ""
	}

	state := views.ViewState{
		Width:          m.width,
		Height:         m.height,
		Destination:    m.destination,
		Input:          m.input.View(),
		Matches:        m.session.CurrentMatches(),
		CatalogSize:    len(m.session.Catalog()),
		Tokens:         m.session.Tokens(),
		SelectedIndex:  m.cursor,
		ViewportOffset: m.offset,
		ViewportHeight: m.listHeight(),
		HelpModel:      m.help,
		KeyBindings:    m.keys.ShortHelp(),
	}
	if m.err != nil {
		state.ErrorMessage = fmt.Sprintf("Failed to create asset: %v", m.err)
	}
	if m.result != nil {
		state.StatusMessage = fmt.Sprintf("Created %s", m.result.Path)
	}

	return m.renderer.Render(state)
}
