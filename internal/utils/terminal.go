package utils

import (
	"fmt"
	"os"
	"runtime"

	"golang.org/x/term"
)

// ttyPath returns the controlling terminal device for this platform.
func ttyPath() string {
	if runtime.GOOS == "windows" {
		return "CON"
	}
	return "/dev/tty"
}

// IsStdoutTerminal returns true if stdout is a terminal.
func IsStdoutTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// WriteToTTY writes content directly to the terminal (bypassing stdout/stderr).
// On Unix, writes to /dev/tty. On Windows, writes to CON.
// Returns an error if the TTY cannot be opened.
func WriteToTTY(content []byte) (int, error) {
	path := ttyPath()
	tty, err := os.OpenFile(path, os.O_WRONLY, 0)
	if err != nil {
		return 0, fmt.Errorf("cannot open %s for writing: %w", path, err)
	}
	defer tty.Close()

	n, err := tty.Write(content)
	if err != nil {
		return n, fmt.Errorf("failed to write to TTY: %w", err)
	}

	return n, nil
}

// TTYWriter is an io.Writer over the controlling terminal. Protected text the
// user asked to see goes here so it never lands in redirected stdout or logs.
type TTYWriter struct{}

func (TTYWriter) Write(p []byte) (int, error) {
	return WriteToTTY(p)
}
