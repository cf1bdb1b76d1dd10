package sidebar

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	faintStyle = lipgloss.NewStyle().Faint(true)
)

type Sidebar struct{}

func New() Sidebar { return Sidebar{} }

// View renders the navigation placeholder pane at the given interior size.
func (Sidebar) View(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	lines := []string{
		titleStyle.Render(runewidth.Truncate("Hyprland Wiki", width, "…")),
	}
	if height > 2 {
		lines = append(lines, "", faintStyle.Render(runewidth.Truncate("no sections", width, "…")))
	}
	if len(lines) > height {
		lines = lines[:height]
	}
	return strings.Join(lines, "\n")
}
