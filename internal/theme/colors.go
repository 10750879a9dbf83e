package theme

import "github.com/charmbracelet/lipgloss"

// Color is an alias for lipgloss.Color for convenience
type Color = lipgloss.Color

// Check result colors
const (
	ColorFail Color = "196" // Bright red
	ColorPass Color = "2"   // Green
)
