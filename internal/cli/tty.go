package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// terminal is where the picker draws and reads keys
type terminal struct {
	in    *os.File
	out   *os.File
	close func()
}

// openTerminal uses stdin and stdout when both are a terminal. When
// either carries data (a pipe or command substitution) the picker talks
// to the controlling terminal instead.
func openTerminal() (*terminal, error) {
	if term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd())) {
		return &terminal{in: os.Stdin, out: os.Stdout, close: func() {}}, nil
	}

	tty, err := os.OpenFile("/dev/tty", os.O_RDWR, 0)
	if err != nil {
		return nil, fmt.Errorf("no terminal available: %w", err)
	}

	// stdout is not a tty; take the color profile from the terminal we draw on
	lipgloss.SetColorProfile(termenv.NewOutput(tty).ColorProfile())

	return &terminal{in: tty, out: tty, close: func() { _ = tty.Close() }}, nil
}

func stdinIsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}
