package theme

import "github.com/charmbracelet/lipgloss"

// Check result styles
var (
	FailStyle = lipgloss.NewStyle().
			Foreground(ColorFail).
			Bold(true)

	PassStyle = lipgloss.NewStyle().
			Foreground(ColorPass).
			Bold(true)
)

// Pass renders a passing check line
func Pass(msg string) string {
	return PassStyle.Render("✓") + " " + msg
}

// Fail renders a failing check line
func Fail(msg string) string {
	return FailStyle.Render("✗") + " " + msg
}
