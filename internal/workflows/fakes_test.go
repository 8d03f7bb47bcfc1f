package workflows

import (
	"fmt"
	"io"
	"os"
	"slices"
	"testing"

	"github.com/PolarWolf314/kpw/internal/secrets"
	"github.com/PolarWolf314/kpw/internal/vaultfile"
)

func TestMain(m *testing.M) {
	secrets.KDFIterations = 1000
	vaultfile.DefaultKDF = vaultfile.KDFParams{Time: 1, Memory: 64, Threads: 1}
	os.Exit(m.Run())
}

// scriptedPrompter answers prompts from a fixed script, in order. Select
// answers name the item to choose. Confirm answers are "y" or "n". Once
// the script runs out every prompt fails with io.EOF.
type scriptedPrompter struct {
	answers []string
	labels  []string
}

func script(answers ...string) *scriptedPrompter {
	return &scriptedPrompter{answers: answers}
}

func (p *scriptedPrompter) next(label string) (string, error) {
	p.labels = append(p.labels, label)
	if len(p.answers) == 0 {
		return "", io.EOF
	}
	a := p.answers[0]
	p.answers = p.answers[1:]
	return a, nil
}

func (p *scriptedPrompter) Secret(label string) (string, error) {
	return p.next(label)
}

func (p *scriptedPrompter) Select(label string, items []string) (int, error) {
	a, err := p.next(label)
	if err != nil {
		return 0, err
	}
	i := slices.Index(items, a)
	if i < 0 {
		return 0, fmt.Errorf("scripted answer %q is not one of %q", a, items)
	}
	return i, nil
}

func (p *scriptedPrompter) Text(label, initial string) (string, error) {
	return p.next(label)
}

func (p *scriptedPrompter) Editor(label, initial string) (string, error) {
	return p.next(label)
}

func (p *scriptedPrompter) Confirm(label string, def bool) (bool, error) {
	a, err := p.next(label)
	if err != nil {
		return false, err
	}
	return a == "y", nil
}

// quickCode adapts the prompter to quickunlock.CodePrompt.
func (p *scriptedPrompter) quickCode(label string) (string, error) {
	return p.Secret(label)
}

type recordingClipboard struct {
	copied []string
	err    error
}

func (c *recordingClipboard) Copy(b []byte) error {
	if c.err != nil {
		return c.err
	}
	c.copied = append(c.copied, string(b))
	return nil
}
