package table

import (
	"os"

	"golang.org/x/term"
)

// DefaultTerminalWidth is used when the terminal width cannot be determined.
const DefaultTerminalWidth = 80

// TerminalWidth returns the width of stdout, or DefaultTerminalWidth when stdout is not a terminal.
func TerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return DefaultTerminalWidth
	}
	return width
}

// IsTerminal reports whether stdout is attached to a terminal.
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}
