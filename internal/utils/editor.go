package utils

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// DefaultEditor is used when neither $VISUAL nor $EDITOR is set.
const DefaultEditor = "vi"

// EditorCommand returns the user's editor command line split into fields.
func EditorCommand() []string {
	for _, env := range []string{"VISUAL", "EDITOR"} {
		if fields := strings.Fields(os.Getenv(env)); len(fields) > 0 {
			return fields
		}
	}
	return []string{DefaultEditor}
}

// EditText opens initial in the user's editor and returns the saved text.
// The temp file is created with 0600 permissions and removed afterwards.
func EditText(initial string) (string, error) {
	f, err := os.CreateTemp("", "kpw-*.txt")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	path := f.Name()
	defer os.Remove(path)

	if _, err := f.WriteString(initial); err != nil {
		f.Close()
		return "", fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("failed to close temp file: %w", err)
	}

	argv := EditorCommand()
	cmd := exec.Command(argv[0], append(argv[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("editor %q failed: %w", argv[0], err)
	}

	edited, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read edited text: %w", err)
	}
	// Overwrite the plaintext before the file is unlinked.
	_ = os.WriteFile(path, make([]byte, len(edited)), 0600)

	return strings.TrimRight(string(edited), "\n"), nil
}
