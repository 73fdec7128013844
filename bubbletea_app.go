// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/cybrota/termfolio/completion"
	"github.com/cybrota/termfolio/editor"
	"github.com/cybrota/termfolio/markup"
	"github.com/cybrota/termfolio/shell"
	"github.com/cybrota/termfolio/vfs"
)

// keyMap lists the bindings handled by the model itself. Everything else is
// passed to the line editor.
type keyMap struct {
	Quit     key.Binding
	Copy     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Complete key.Binding
	Clear    key.Binding
	History  key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Quit:     key.NewBinding(key.WithKeys("esc", "ctrl+d"), key.WithHelp("esc", "quit")),
		Copy:     key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("ctrl+y", "copy output")),
		PageUp:   key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "scroll up")),
		PageDown: key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "scroll down")),
		Complete: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "complete")),
		Clear:    key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("ctrl+l", "clear")),
		History:  key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑/↓", "history")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Complete, k.History, k.Clear, k.Copy, k.PageUp, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// flushMsg delivers the held back result of submission seq.
type flushMsg struct{ seq int }

// statusMsg is shown in the footer until the next key press.
type statusMsg string

// Model represents the Bubble Tea application state
type Model struct {
	ready bool

	interp *shell.Interpreter
	editor *editor.Editor
	panels *PanelRenderer
	logger *zap.Logger

	terminal viewport.Model
	keys     keyMap
	help     help.Model

	resultDelay time.Duration
	candidates  []string
	status      string

	styles map[shell.Theme]*Styles

	// Dimensions
	width  int
	height int
}

// InitialModel creates the initial model
func InitialModel(cfg *Config, theme shell.Theme, logger *zap.Logger) Model {
	fs := vfs.Default()
	interp := shell.NewInterpreter(fs,
		shell.WithTheme(theme),
		shell.WithLogger(logger.Named("shell")),
	)
	engine := completion.NewEngine(fs, interp.Registry().Names(), shell.ViewNames(),
		completion.WithPathCommands(shell.PathCommands...),
		completion.WithViewCommand(shell.ViewCommand),
	)
	ed := editor.New(interp, engine,
		editor.WithDoubleTabWindow(cfg.Editor.DoubleTabWindow),
		editor.WithDeferredResults(cfg.Editor.ResultDelay > 0),
	)

	welcome, ok := fs.ResolveFile("welcome.txt", vfs.Home)
	if ok {
		interp.Log().Append(shell.Entry{Kind: shell.EntryOutput, Text: welcome.Content()})
	}

	return Model{
		interp:      interp,
		editor:      ed,
		panels:      NewPanelRenderer(NewPanelCache()),
		logger:      logger,
		terminal:    viewport.New(0, 0),
		keys:        newKeyMap(),
		help:        help.New(),
		resultDelay: cfg.Editor.ResultDelay,
		styles: map[shell.Theme]*Styles{
			shell.ThemeLight: NewStyles(shell.ThemeLight),
			shell.ThemeDark:  NewStyles(shell.ThemeDark),
		},
	}
}

// Init is called when the program starts
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles all the I/O
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		m.ready = true

	case flushMsg:
		m.editor.Flush(msg.seq)
		m.refreshTerminal()

	case statusMsg:
		m.status = string(msg)

	case tea.KeyMsg:
		m.status = ""
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Copy):
			return m, m.copyLastOutput()
		case key.Matches(msg, m.keys.PageUp):
			m.terminal.LineUp(max(m.terminal.Height/2, 1))
			return m, nil
		case key.Matches(msg, m.keys.PageDown):
			m.terminal.LineDown(max(m.terminal.Height/2, 1))
			return m, nil
		}

		var cmds []tea.Cmd
		view := m.interp.Session().View
		for _, k := range editorKeys(msg) {
			out := m.editor.HandleKey(k)
			switch out.Action {
			case editor.ActionComplete:
				m.candidates = nil
				if len(out.Candidates) > 1 {
					m.candidates = out.Candidates
				}
			case editor.ActionDeferred:
				seq := out.Seq
				cmds = append(cmds, tea.Tick(m.resultDelay, func(time.Time) tea.Msg {
					return flushMsg{seq: seq}
				}))
				m.candidates = nil
			case editor.ActionSubmit, editor.ActionInterrupt, editor.ActionClearScreen:
				m.candidates = nil
			}
		}
		if next := m.interp.Session().View; next != view {
			m.logger.Debug("view switched", zap.String("from", string(view)), zap.String("to", string(next)))
			m.updateLayout()
		}
		m.refreshTerminal()
		return m, tea.Batch(cmds...)
	}

	return m, nil
}

// editorKeys translates a bubbletea key press into line editor keys. Pasted
// text arrives as one message and becomes one key per rune.
func editorKeys(msg tea.KeyMsg) []editor.Key {
	switch msg.Type {
	case tea.KeyEnter:
		return []editor.Key{editor.Named(editor.KeyEnter)}
	case tea.KeyTab:
		return []editor.Key{editor.Named(editor.KeyTab)}
	case tea.KeyUp:
		return []editor.Key{editor.Named(editor.KeyUp)}
	case tea.KeyDown:
		return []editor.Key{editor.Named(editor.KeyDown)}
	case tea.KeyLeft:
		return []editor.Key{editor.Named(editor.KeyLeft)}
	case tea.KeyRight:
		return []editor.Key{editor.Named(editor.KeyRight)}
	case tea.KeyHome:
		return []editor.Key{editor.Named(editor.KeyHome)}
	case tea.KeyEnd:
		return []editor.Key{editor.Named(editor.KeyEnd)}
	case tea.KeyBackspace:
		return []editor.Key{editor.Named(editor.KeyBackspace)}
	case tea.KeyDelete:
		return []editor.Key{editor.Named(editor.KeyDelete)}
	case tea.KeySpace:
		return []editor.Key{editor.Char(' ')}
	case tea.KeyCtrlA:
		return []editor.Key{editor.Ctrl('a')}
	case tea.KeyCtrlC:
		return []editor.Key{editor.Ctrl('c')}
	case tea.KeyCtrlE:
		return []editor.Key{editor.Ctrl('e')}
	case tea.KeyCtrlK:
		return []editor.Key{editor.Ctrl('k')}
	case tea.KeyCtrlL:
		return []editor.Key{editor.Ctrl('l')}
	case tea.KeyCtrlU:
		return []editor.Key{editor.Ctrl('u')}
	case tea.KeyRunes:
		// Alt stands in for Cmd/Meta
		if msg.Alt && len(msg.Runes) == 1 {
			return []editor.Key{editor.Ctrl(msg.Runes[0])}
		}
		keys := make([]editor.Key, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			keys = append(keys, editor.Char(r))
		}
		return keys
	}
	return nil
}

func (m Model) currentStyles() *Styles {
	if s, ok := m.styles[m.interp.Session().Theme]; ok {
		return s
	}
	return m.styles[shell.ThemeDark]
}

// copyLastOutput copies the newest output entry, without markup.
func (m Model) copyLastOutput() tea.Cmd {
	e, ok := m.interp.Log().Last(shell.EntryOutput)
	if !ok {
		return func() tea.Msg { return statusMsg("Nothing to copy yet") }
	}
	text := markup.Strip(e.Text)
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			m.logger.Warn("clipboard copy failed", zap.Error(err))
			return statusMsg(fmt.Sprintf("Copy failed: %v", err))
		}
		return statusMsg("📋 Copied last output to clipboard")
	}
}

// terminalWidth is the width of the terminal box; the panel takes the rest.
func (m Model) terminalWidth() int {
	if m.interp.Session().View == shell.ViewMain {
		return m.width
	}
	return m.width * 55 / 100
}

// updateLayout updates component dimensions
func (m *Model) updateLayout() {
	headerHeight := 1
	footerHeight := 3
	m.terminal.Width = max(m.terminalWidth()-2, 10)
	m.terminal.Height = max(m.height-headerHeight-footerHeight-2, 3)
	m.help.Width = m.width
	m.refreshTerminal()
}

// refreshTerminal re-renders the transcript and the live input line.
func (m *Model) refreshTerminal() {
	s := m.currentStyles()
	width := max(m.terminal.Width, 10)

	var lines []string
	for _, e := range m.interp.Log().Entries() {
		lines = append(lines, lipgloss.NewStyle().Width(width).Render(s.RenderEntry(e)))
	}
	if !m.editor.Executing() {
		lines = append(lines, s.prompt(m.interp.Session().Cwd)+m.renderInput(s))
	}

	m.terminal.SetContent(strings.Join(lines, "\n"))
	m.terminal.GotoBottom()
}

// renderInput draws the input buffer with a block cursor.
func (m Model) renderInput(s *Styles) string {
	buf := []rune(m.editor.Buffer())
	cur := m.editor.Cursor()
	cursor := lipgloss.NewStyle().Reverse(true)

	if cur >= len(buf) {
		return s.Input.Render(string(buf)) + cursor.Render(" ")
	}
	return s.Input.Render(string(buf[:cur])) +
		cursor.Render(string(buf[cur])) +
		s.Input.Render(string(buf[cur+1:]))
}

func (m Model) renderTabs(s *Styles) string {
	active := m.interp.Session().View
	var tabs []string
	for _, v := range shell.Views() {
		style := s.TabInactive
		if v == active {
			style = s.TabActive
		}
		tabs = append(tabs, style.Render(panelTitles[v]))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) renderFooter(s *Styles) string {
	var rows []string
	if len(m.candidates) > 0 {
		rows = append(rows, s.Candidates.Render(strings.Join(m.candidates, "   ")))
	}
	if m.status != "" {
		rows = append(rows, s.HelpDesc.Render(m.status))
	}
	rows = append(rows, m.help.View(m.keys))

	return lipgloss.NewStyle().
		Padding(0, 0, 0, 2).
		Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

// View renders the program's UI
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.width < 30 || m.height < 10 {
		return "Terminal too small. Please resize your terminal."
	}

	s := m.currentStyles()
	session := m.interp.Session()

	terminalBox := s.BorderFocused.
		Width(m.terminalWidth() - 2).
		Height(m.terminal.Height).
		Render(m.terminal.View())

	body := terminalBox
	if session.View != shell.ViewMain {
		panelWidth := m.width - m.terminalWidth() - 2
		panel := m.panels.Render(session.View, session.Theme, panelWidth)
		panelBox := s.BorderBlurred.
			Width(panelWidth).
			Height(m.terminal.Height).
			MaxHeight(m.terminal.Height + 2).
			Render(panel)
		body = lipgloss.JoinHorizontal(lipgloss.Top, terminalBox, panelBox)
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderTabs(s),
		body,
		m.renderFooter(s),
	)
}

// runBubbleTeaApp starts the Bubble Tea application
func runBubbleTeaApp(cfg *Config, theme shell.Theme, logger *zap.Logger) error {
	model := InitialModel(cfg, theme, logger)

	program := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := program.Run()
	return err
}
