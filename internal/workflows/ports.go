package workflows

// Prompter asks the user for input.
type Prompter interface {
	// Secret reads a masked value such as a passphrase.
	Secret(label string) (string, error)
	// Select returns the index of the chosen item.
	Select(label string, items []string) (int, error)
	// Text reads a required line, pre-filled with initial.
	Text(label, initial string) (string, error)
	// Editor reads multi-line text, starting from initial.
	Editor(label, initial string) (string, error)
	// Confirm asks a yes/no question with def as the default answer.
	Confirm(label string, def bool) (bool, error)
}

// Clipboard receives copied passwords.
type Clipboard interface {
	Copy(b []byte) error
}
