package output

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"github.com/pterm/pterm"
)

// Semantic styles for rendered trees. Adaptive colors keep the output
// readable on both light and dark terminals.
var (
	dirStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "25", Dark: "39"})

	fileStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "240", Dark: "250"})

	sourceStyle = lipgloss.NewStyle().
			Italic(true).
			Foreground(lipgloss.AdaptiveColor{Light: "243", Dark: "245"})

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			MarginBottom(1)
)

// statusStyle returns the pterm style for a materialization status word.
func statusStyle(status string) *pterm.Style {
	switch status {
	case "created", "copied":
		return pterm.NewStyle(pterm.FgGreen)
	case "exists":
		return pterm.NewStyle(pterm.FgGray)
	case "overwrote":
		return pterm.NewStyle(pterm.FgYellow)
	case "planned":
		return pterm.NewStyle(pterm.FgCyan)
	default:
		return pterm.NewStyle(pterm.FgDefault)
	}
}

// colorsEnabled reports whether styled output should be produced. It honors
// NO_COLOR, requires stdout to be a terminal, and checks the terminal's
// color profile.
func colorsEnabled() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return false
	}
	return termenv.ColorProfile() != termenv.Ascii
}
