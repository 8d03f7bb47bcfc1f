// Package utils provides the terminal-facing helpers used by kpw.
//
// # Terminal Utilities
//
// Functions for terminal detection and interaction:
//   - IsStdoutTerminal: decides whether the start banner is shown
//   - WriteToTTY, TTYWriter: write to the controlling terminal, bypassing
//     stdout; this is the reveal sink for protected text
//
// # Clipboard
//
//   - Clipboard: copies passwords via xclip, xsel, wl-clipboard, pbcopy or
//     the Windows clipboard
//
// # Editor
//
// Functions for multi-line input:
//   - EditText: opens $VISUAL, $EDITOR or vi on a private temp file
package utils
