package utils

import (
	"errors"

	"github.com/atotto/clipboard"
)

// ErrClipboardUnsupported is returned when no clipboard utility was found.
var ErrClipboardUnsupported = errors.New("no clipboard utility available (install xclip, xsel or wl-clipboard)")

// Clipboard copies text to the system clipboard.
type Clipboard struct{}

// Copy places b on the clipboard. The caller keeps ownership of b.
func (Clipboard) Copy(b []byte) error {
	if clipboard.Unsupported {
		return ErrClipboardUnsupported
	}
	return clipboard.WriteAll(string(b))
}
