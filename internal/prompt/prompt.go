package prompt

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/PolarWolf314/kpw/internal/ui"
	"github.com/PolarWolf314/kpw/internal/utils"
	"github.com/manifoldco/promptui"
	"github.com/manifoldco/promptui/list"
)

// DefaultPageSize is the number of items a select shows at once.
const DefaultPageSize = 15

// KeyGlyph replaces an accepted secret in the terminal.
const KeyGlyph = "🔑"

// ErrRequired is returned by the text validator for blank input.
var ErrRequired = errors.New("a value is required")

// Prompter asks the user for input on the terminal.
type Prompter struct {
	PageSize int
	Out      io.Writer
	Edit     func(initial string) (string, error)
}

// New returns a Prompter showing pageSize items per select page.
func New(pageSize int) *Prompter {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &Prompter{
		PageSize: pageSize,
		Out:      os.Stdout,
		Edit:     utils.EditText,
	}
}

// Secret reads a masked value. The typed characters are never echoed.
// There is no key to reveal the input while typing: promptui fixes the mask
// when the prompt starts.
func (p *Prompter) Secret(label string) (string, error) {
	prompt := secretPrompt(label)
	value, err := prompt.Run()
	if err != nil {
		return "", err
	}

	fmt.Fprintf(p.Out, "%s: %s\n", label, ui.Secret.Sprint(KeyGlyph))
	return value, nil
}

func secretPrompt(label string) promptui.Prompt {
	return promptui.Prompt{
		Label:       label,
		Mask:        '*',
		HideEntered: true,
	}
}

// Select shows items and returns the index of the chosen one.
func (p *Prompter) Select(label string, items []string) (int, error) {
	sel := promptui.Select{
		Label:    label,
		Items:    items,
		Size:     p.PageSize,
		Searcher: containsSearcher(items),
		HideHelp: len(items) <= p.PageSize,
	}

	idx, _, err := sel.Run()
	return idx, err
}

// Text reads a required line of text, pre-filled with initial.
func (p *Prompter) Text(label, initial string) (string, error) {
	prompt := promptui.Prompt{
		Label:     label,
		Default:   initial,
		AllowEdit: true,
		Validate:  required,
	}

	value, err := prompt.Run()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(value), nil
}

// Editor opens the user's editor on initial.
func (p *Prompter) Editor(label, initial string) (string, error) {
	fmt.Fprintf(p.Out, "%s %s\n", ui.Info.Sprint(label+":"), ui.Muted.Sprint("opening editor"))
	return p.Edit(initial)
}

// Confirm asks a yes/no question. def is the answer on an empty reply.
func (p *Prompter) Confirm(label string, def bool) (bool, error) {
	prompt := promptui.Prompt{
		Label:     label,
		IsConfirm: true,
		Default:   confirmDefault(def),
	}

	_, err := prompt.Run()
	if err == nil {
		return true, nil
	}
	if errors.Is(err, promptui.ErrAbort) {
		return false, nil
	}
	return false, err
}

func confirmDefault(def bool) string {
	if def {
		return "y"
	}
	return "n"
}

func required(s string) error {
	if strings.TrimSpace(s) == "" {
		return ErrRequired
	}
	return nil
}

func containsSearcher(items []string) list.Searcher {
	return func(input string, index int) bool {
		needle := strings.ToLower(strings.TrimSpace(input))
		return strings.Contains(strings.ToLower(items[index]), needle)
	}
}
