package styles

import "github.com/charmbracelet/lipgloss"

// Catppuccin Macchiato accents
var (
	Overlay0 = lipgloss.Color("#6e738d")
	Red      = lipgloss.Color("#ed8796")
	Green    = lipgloss.Color("#a6da95")
)
