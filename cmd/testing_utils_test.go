package cmd

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/PolarWolf314/kpw/internal/configs"
	"github.com/PolarWolf314/kpw/internal/workflows"
)

// scriptedPrompter answers prompts from a fixed script, in order.
type scriptedPrompter struct {
	answers []string
}

func (p *scriptedPrompter) next() (string, error) {
	if len(p.answers) == 0 {
		return "", io.EOF
	}
	a := p.answers[0]
	p.answers = p.answers[1:]
	return a, nil
}

func (p *scriptedPrompter) Secret(string) (string, error)       { return p.next() }
func (p *scriptedPrompter) Text(string, string) (string, error)   { return p.next() }
func (p *scriptedPrompter) Editor(string, string) (string, error) { return p.next() }

func (p *scriptedPrompter) Select(_ string, items []string) (int, error) {
	a, err := p.next()
	if err != nil {
		return 0, err
	}
	if i := slices.Index(items, a); i >= 0 {
		return i, nil
	}
	return 0, fmt.Errorf("scripted answer %q is not one of %q", a, items)
}

func (p *scriptedPrompter) Confirm(string, bool) (bool, error) {
	a, err := p.next()
	return a == "y", err
}

type discardClipboard struct{}

func (discardClipboard) Copy([]byte) error { return nil }

// setupTestEnvironment writes a config file pointing every temp path into a
// fresh directory and installs scripted terminal adapters.
func setupTestEnvironment(t *testing.T, answers ...string) (dir, configFile string) {
	t.Helper()
	dir = t.TempDir()
	configFile = filepath.Join(dir, "config.toml")

	settings := configs.DefaultSettings()
	settings.CachePath = filepath.Join(dir, ".kpw")
	settings.StagingPath = filepath.Join(dir, ".pass.kpw")
	settings.Banner = false
	if err := configs.SaveTOML(configFile, settings); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	prompter := &scriptedPrompter{answers: answers}
	origPrompter, origClipboard, origReveal := newPrompter, newClipboard, newReveal
	newPrompter = func(*configs.Settings) workflows.Prompter { return prompter }
	newClipboard = func() workflows.Clipboard { return discardClipboard{} }
	newReveal = func() io.Writer { return io.Discard }

	ResetGlobalState()
	t.Cleanup(func() {
		newPrompter, newClipboard, newReveal = origPrompter, origClipboard, origReveal
		ResetGlobalState()
		RootCmd.SetArgs(nil)
		RootCmd.SetOut(nil)
		RootCmd.SetErr(nil)
	})

	return dir, configFile
}

// executeRoot runs the root command with args and returns its output.
func executeRoot(args ...string) (string, error) {
	var buf bytes.Buffer
	RootCmd.SetOut(&buf)
	RootCmd.SetErr(&buf)
	RootCmd.SetArgs(args)

	output, err := captureOutput(func() error {
		return RootCmd.Execute()
	})
	return buf.String() + output, err
}

// captureOutput captures both stdout and stderr during function execution.
func captureOutput(fn func() error) (string, error) {
	originalStdout := os.Stdout
	originalStderr := os.Stderr

	reader, writer, err := os.Pipe()
	if err != nil {
		return "", err
	}
	os.Stdout = writer
	os.Stderr = writer

	outputChan := make(chan string, 1)
	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, reader)
		outputChan <- buf.String()
	}()

	err = fn()

	writer.Close()
	os.Stdout = originalStdout
	os.Stderr = originalStderr

	return <-outputChan, err
}
