package findbox

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"wikiview/internal/tui/util"
)

// Buffer is a single-line edit buffer with a character-index cursor.
// The cursor is always a valid insertion point in [0, len].
type Buffer struct {
	content []rune
	cursor  int
}

func New() *Buffer {
	return &Buffer{content: make([]rune, 0, 64)}
}

// Text returns the current content.
func (b *Buffer) Text() string { return string(b.content) }

// Len returns the content length in runes.
func (b *Buffer) Len() int { return len(b.content) }

// Cursor returns the cursor position as a rune index.
func (b *Buffer) Cursor() int { return b.cursor }

// Insert places r at the cursor and advances past it.
func (b *Buffer) Insert(r rune) {
	b.content = append(b.content[:b.cursor], append([]rune{r}, b.content[b.cursor:]...)...)
	b.MoveRight()
}

// InsertString inserts s rune by rune at the cursor. Newlines are flattened
// to spaces; this is a single-line field.
func (b *Buffer) InsertString(s string) {
	for _, r := range s {
		if r == '\n' || r == '\r' {
			r = ' '
		}
		b.Insert(r)
	}
}

// DeleteBackward removes the rune before the cursor. No-op at position 0.
func (b *Buffer) DeleteBackward() {
	if b.cursor == 0 {
		return
	}
	b.content = append(b.content[:b.cursor-1], b.content[b.cursor:]...)
	b.MoveLeft()
}

// MoveLeft shifts the cursor one rune left, clamped at 0.
func (b *Buffer) MoveLeft() {
	b.cursor = clamp(b.cursor-1, len(b.content))
}

// MoveRight shifts the cursor one rune right, clamped at the content length.
func (b *Buffer) MoveRight() {
	b.cursor = clamp(b.cursor+1, len(b.content))
}

// Submit returns the content and resets the buffer to empty with the cursor
// at 0.
func (b *Buffer) Submit() string {
	s := string(b.content)
	b.content = b.content[:0]
	b.cursor = 0
	return s
}

func clamp(pos, length int) int {
	if pos < 0 {
		return 0
	}
	if pos > length {
		return length
	}
	return pos
}

// ===== rendering =====

var (
	pal = util.DefaultPalette()

	idleBorder = lipgloss.NewStyle().Foreground(pal.Muted)
	editBorder = lipgloss.NewStyle().Foreground(pal.Success)
	editText   = lipgloss.NewStyle().Foreground(pal.Success)
	cursorCell = lipgloss.NewStyle().Reverse(true)
)

// View renders the bordered "Find" field at the given outer size. While
// editing, the cell at the cursor is drawn in reverse video; bubbletea owns
// the hardware cursor, so the field paints its own.
func (b *Buffer) View(width, height int, editing bool) string {
	if width < 6 {
		width = 6
	}
	if height < 3 {
		height = 3
	}
	inner := width - 2

	border := idleBorder
	if editing {
		border = editBorder
	}

	lines := make([]string, 0, height)
	lines = append(lines, border.Render(topEdge(inner, "Find")))
	side := border.Render("│")
	lines = append(lines, side+b.renderField(inner, editing)+side)
	for row := 3; row < height; row++ {
		lines = append(lines, side+strings.Repeat(" ", inner)+side)
	}
	lines = append(lines, border.Render("╰"+strings.Repeat("─", inner)+"╯"))
	return strings.Join(lines, "\n")
}

// topEdge builds the top border with the title centered in it.
func topEdge(inner int, title string) string {
	t := " " + title + " "
	tw := runewidth.StringWidth(t)
	if tw > inner {
		t = runewidth.Truncate(t, inner, "")
		tw = runewidth.StringWidth(t)
	}
	left := (inner - tw) / 2
	return "╭" + strings.Repeat("─", left) + t + strings.Repeat("─", inner-left-tw) + "╮"
}

// renderField paints the single content row, scrolled so the cursor stays
// visible, padded to exactly width cells.
func (b *Buffer) renderField(width int, editing bool) string {
	text := lipgloss.NewStyle()
	if editing {
		text = editText
	}

	if !editing {
		s := runewidth.Truncate(string(b.content), width, "…")
		return text.Render(s) + strings.Repeat(" ", width-runewidth.StringWidth(s))
	}

	// Scroll the window right until the cursor cell fits.
	start := 0
	cell := " "
	if b.cursor < len(b.content) {
		cell = string(b.content[b.cursor])
	}
	cellW := runewidth.StringWidth(cell)
	for start < b.cursor &&
		runewidth.StringWidth(string(b.content[start:b.cursor]))+cellW > width {
		start++
	}

	before := string(b.content[start:b.cursor])
	after := ""
	if b.cursor < len(b.content) {
		after = string(b.content[b.cursor+1:])
	}
	used := runewidth.StringWidth(before) + cellW
	after = runewidth.Truncate(after, width-used, "")
	used += runewidth.StringWidth(after)

	return text.Render(before) +
		cursorCell.Render(cell) +
		text.Render(after) +
		strings.Repeat(" ", width-used)
}
