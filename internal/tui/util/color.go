package util

import "github.com/charmbracelet/lipgloss"

// Palette defines a small set of colors used across widgets.
type Palette struct {
	Primary lipgloss.Color
	Success lipgloss.Color
	Danger  lipgloss.Color
	Muted   lipgloss.Color
}

// DefaultPalette returns the default palette.
func DefaultPalette() Palette {
	return Palette{
		Primary: lipgloss.Color("#3D6DFF"),
		Success: lipgloss.Color("#2AA876"),
		Danger:  lipgloss.Color("#D9534F"),
		Muted:   lipgloss.Color("#6C757D"),
	}
}
