package state

// Mode is the application's input mode. The find popup is visible exactly
// when the mode is Editing; there is no separate visibility flag to drift
// out of sync.
type Mode int

const (
	Normal Mode = iota
	Editing
)

// UIState holds cross-widget UI state shared by the event loop and the
// render pass.
type UIState struct {
	Mode Mode

	// Terminal dimensions from the last resize.
	Width  int
	Height int

	// Stored scroll offset into the entry log. Clamped at use time, not
	// here, so a transient resize never loses the stored position.
	Scroll int

	// Notices and ephemeral messages
	Notice string
}
