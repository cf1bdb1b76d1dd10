package tui

import (
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"wikiview/internal/tui/state"
	"wikiview/internal/tui/util"
	"wikiview/internal/tui/widgets/findbox"
	"wikiview/internal/tui/widgets/helpoverlay"
	"wikiview/internal/tui/widgets/sidebar"
	"wikiview/internal/tui/widgets/statusbar"
)

// Run shows the viewer and blocks until the user quits. The bubbletea
// program owns the terminal lifecycle: alt screen, raw mode and mouse
// capture are restored on every exit path, including an event-read failure.
func Run() error {
	m := newModel()
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}

// ===== Model =====

type model struct {
	ui state.UIState

	// entries is append-only; submits are the only writer.
	entries []string

	find     *findbox.Buffer
	side     sidebar.Sidebar
	status   statusbar.StatusBar
	showHelp bool
}

func newModel() *model {
	return &model{
		find:   findbox.New(),
		side:   sidebar.New(),
		status: statusbar.NewStatusBar(),
	}
}

func (m *model) Init() tea.Cmd { return nil }

// pageHeight is the interior height of the entry pane: total height minus
// the top margin, the status row and the pane border. The scroll-down cap
// and the render-time clamp both use it, so keyboard, wheel and render
// agree on bounds.
func (m *model) pageHeight() int {
	h := m.ui.Height - 4
	if h < 1 {
		h = 1
	}
	return h
}

// Update handles one event per cycle: key, mouse or resize.
func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ui = state.Resize(m.ui, msg.Width, msg.Height)
		return m, nil

	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress {
			return m, nil
		}
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			m.ui = state.ScrollUp(m.ui)
		case tea.MouseButtonWheelDown:
			m.ui = state.ScrollDown(m.ui, len(m.entries), m.pageHeight())
		}
		return m, nil

	case tea.KeyMsg:
		// Always active, whatever the mode.
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.ScrollUp):
			m.ui = state.ScrollUp(m.ui)
			return m, nil
		case key.Matches(msg, keys.ScrollDown):
			m.ui = state.ScrollDown(m.ui, len(m.entries), m.pageHeight())
			return m, nil
		case key.Matches(msg, keys.ToggleFind):
			m.ui = state.ToggleFind(m.ui)
			m.showHelp = false
			return m, nil
		}

		if m.ui.Mode == state.Editing {
			return m.updateEditing(msg)
		}

		if key.Matches(msg, keys.Help) {
			m.showHelp = !m.showHelp
		}
		return m, nil
	}
	return m, nil
}

func (m *model) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Submit):
		m.entries = append(m.entries, m.find.Submit())
	case key.Matches(msg, keys.Backspace):
		m.find.DeleteBackward()
	case key.Matches(msg, keys.Left):
		m.find.MoveLeft()
	case key.Matches(msg, keys.Right):
		m.find.MoveRight()
	case key.Matches(msg, keys.Paste):
		if s, err := clipboard.ReadAll(); err == nil {
			m.find.InsertString(s)
		} else {
			m.ui.Notice = "clipboard: " + err.Error()
		}
	default:
		switch msg.Type {
		case tea.KeyRunes:
			if msg.Alt {
				break
			}
			for _, r := range msg.Runes {
				m.find.Insert(r)
			}
		case tea.KeySpace:
			m.find.Insert(' ')
		}
	}
	return m, nil
}

// ===== Views =====

var (
	pal       = util.DefaultPalette()
	paneStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(pal.Muted)
)

// View redraws the whole screen: sidebar and entry panes under a one-cell
// top/side margin, a status row at the bottom, and the find popup or help
// box spliced on top when visible.
func (m *model) View() string {
	if m.ui.Width < 8 || m.ui.Height < 5 {
		return ""
	}

	pageH := m.pageHeight()
	off := state.ClampScroll(m.ui, len(m.entries), pageH)

	innerW := m.ui.Width - 2
	sideW := innerW * 20 / 100
	if sideW < 4 {
		sideW = 4
	}
	mainW := innerW - sideW
	contentW := mainW - 2
	if contentW < 1 {
		contentW = 1
	}

	end := off + pageH
	if end > len(m.entries) {
		end = len(m.entries)
	}
	rows := make([]string, 0, end-off)
	for _, e := range m.entries[off:end] {
		rows = append(rows, runewidth.Truncate(e, contentW, "…"))
	}

	left := paneStyle.Width(sideW - 2).Height(pageH).Render(m.side.View(sideW-2, pageH))
	right := paneStyle.Width(mainW - 2).Height(pageH).Render(strings.Join(rows, "\n"))
	body := lipgloss.JoinHorizontal(lipgloss.Top, left, right)

	var b strings.Builder
	b.WriteString("\n")
	for _, ln := range strings.Split(body, "\n") {
		b.WriteString(" " + ln + "\n")
	}
	b.WriteString(runewidth.Truncate(m.status.View(m.ui, len(m.entries), off), m.ui.Width, ""))
	view := b.String()

	if m.ui.Mode == state.Editing {
		r := util.Centered(40, 10, m.ui.Width, m.ui.Height)
		popup := m.find.View(r.W, r.H, true)
		view = util.Overlay(view, popup, r.X, r.Y)
	}
	if m.showHelp {
		help := helpoverlay.View(helpSections())
		x := (m.ui.Width - lipgloss.Width(help)) / 2
		y := (m.ui.Height - lipgloss.Height(help)) / 2
		view = util.Overlay(view, help, x, y)
	}
	return view
}
