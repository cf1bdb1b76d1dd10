package state

// ScrollUp moves the viewport up one entry, floored at 0.
func ScrollUp(s UIState) UIState {
	if s.Scroll > 0 {
		s.Scroll--
	}
	return s
}

// ScrollDown moves the viewport down one entry, capped so the offset never
// points past the last full page. Keyboard and mouse wheel both route here.
func ScrollDown(s UIState, entryCount, viewHeight int) UIState {
	if s.Scroll < MaxScroll(entryCount, viewHeight) {
		s.Scroll++
	}
	return s
}

// MaxScroll is the largest useful offset for entryCount entries in a pane
// viewHeight rows tall.
func MaxScroll(entryCount, viewHeight int) int {
	max := entryCount - viewHeight
	if max < 0 {
		max = 0
	}
	return max
}

// ClampScroll returns the effective offset for rendering, re-clamped against
// the current pane height. The stored offset is left untouched; the pane may
// have resized since the offset was last moved.
func ClampScroll(s UIState, entryCount, viewHeight int) int {
	if max := MaxScroll(entryCount, viewHeight); s.Scroll > max {
		return max
	}
	return s.Scroll
}

// ToggleFind flips between Normal and Editing and sets a brief notice.
// This is the only transition path for the mode, so popup visibility
// (mode == Editing) cannot diverge from it.
func ToggleFind(s UIState) UIState {
	if s.Mode == Normal {
		s.Mode = Editing
		s.Notice = "[FIND]"
	} else {
		s.Mode = Normal
		s.Notice = ""
	}
	return s
}

// Resize records the new terminal dimensions.
func Resize(s UIState, width, height int) UIState {
	s.Width = width
	s.Height = height
	return s
}
