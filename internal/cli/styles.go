package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
)

var (
	stepStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39"))

	countStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("252"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("242"))

	doneStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("42"))
)

// step prints one progress line to stderr. All status output goes to
// stderr so stdout stays clean for piped JSON.
func step(format string, args ...any) {
	fmt.Fprintln(os.Stderr, stepStyle.Render(fmt.Sprintf(format, args...)))
}

// count renders a number for embedding in a status line.
func count(n int) string {
	return countStyle.Render(fmt.Sprintf("%d", n))
}
