package statusbar

import (
	"fmt"
	"strings"

	"wikiview/internal/tui/state"
)

type StatusBar struct{}

func NewStatusBar() StatusBar { return StatusBar{} }

// View composes a concise status line reflecting key UI state. offset is the
// effective (render-clamped) scroll offset.
func (StatusBar) View(s state.UIState, entryCount, offset int) string {
	mode := "[VIEW]"
	if s.Mode == state.Editing {
		mode = "[FIND]"
	}
	pos := fmt.Sprintf("Entry %d/%d", offset, entryCount)
	keys := "ctrl+f: find  ?: help  q: quit"

	parts := []string{mode, pos, keys}
	if s.Notice != "" {
		parts = append(parts, s.Notice)
	}
	return strings.Join(parts, "  ")
}
