package workflows

import (
	"context"
	"fmt"
	"io"

	logger "github.com/PolarWolf314/kpw/internal/logging"
	"github.com/PolarWolf314/kpw/internal/secrets"
	"github.com/PolarWolf314/kpw/internal/ui"
	"github.com/PolarWolf314/kpw/internal/vault"
	"github.com/PolarWolf314/kpw/internal/vaultfile"
)

// Menu actions, in display order.
const (
	ActionSearch = "Search"
	ActionEdit   = "Edit"
	ActionNew    = "New"
	ActionQuit   = "Quit"
)

// Edit actions, in display order.
const (
	EditTitle          = "Title"
	EditUserName       = "UserName"
	EditNotes          = "Notes"
	EditRandomPassword = "Password (Random)"
	EditManualPassword = "Password (Manual)"
	EditDone           = "Done"
)

var (
	menuActions = []string{ActionSearch, ActionEdit, ActionNew, ActionQuit}
	editActions = []string{EditTitle, EditUserName, EditNotes, EditRandomPassword, EditManualPassword, EditDone}
)

// SaveFunc persists the vault after a mutation.
type SaveFunc func(ctx context.Context, v *vault.Vault, key vaultfile.Key) error

// Session is an unlocked vault and the menu loop operating on it.
type Session struct {
	Vault *vault.Vault
	Key   vaultfile.Key

	Prompt    Prompter
	Clipboard Clipboard

	// Out receives status lines and non-secret entry fields.
	Out io.Writer

	// Reveal receives protected text the user asked to see.
	Reveal io.Writer

	Logger logger.Logger

	Save SaveFunc

	// GeneratePassword defaults to the default password policy.
	GeneratePassword func() ([]byte, error)
}

// Run shows the menu until the user quits, a prompt fails or ctx is done.
// A save error ends the session; the in-memory vault is not rolled back.
func (s *Session) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		i, err := s.Prompt.Select(">", menuActions)
		if err != nil {
			return err
		}
		s.Logger.Debugf("Menu action: %s", menuActions[i])

		switch menuActions[i] {
		case ActionSearch:
			err = s.Search(ctx)
		case ActionEdit:
			err = s.Edit(ctx)
		case ActionNew:
			err = s.New(ctx)
		case ActionQuit:
			return nil
		}
		if err != nil {
			return err
		}
	}
}

// Search lets the user pick an entry, shows it and copies its password.
func (s *Session) Search(ctx context.Context) error {
	e, err := s.pick()
	if err != nil || e == nil {
		return err
	}
	return s.view(e)
}

// New builds an entry from prompts with a generated password and, once
// confirmed, adds it to the root group and saves.
func (s *Session) New(ctx context.Context) error {
	e := vault.NewEntry()

	if err := s.editTitle(e); err != nil {
		return err
	}
	if err := s.editUserName(e); err != nil {
		return err
	}
	if err := s.editNotes(e); err != nil {
		return err
	}
	if err := s.randomPassword(e); err != nil {
		return err
	}

	if err := s.view(e); err != nil {
		return err
	}

	ok, err := s.Prompt.Confirm("Ok?", true)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintf(s.Out, "%s Discarded.\n", ui.Info.Sprint(">"))
		return nil
	}

	s.Vault.Add(e)
	s.Logger.Infof("Added entry %s", e.ID())
	return s.save(ctx)
}

// Edit lets the user pick an entry, shows it, then edits fields until Done
// and saves.
func (s *Session) Edit(ctx context.Context) error {
	picked, err := s.pick()
	if err != nil || picked == nil {
		return err
	}
	if err := s.view(picked); err != nil {
		return err
	}

	e := s.Vault.Find(picked.ID())
	if e == nil {
		s.Logger.Debugf("Entry %s vanished between view and edit", picked.ID())
		fmt.Fprintf(s.Out, "%s Entry no longer exists\n", ui.Warning.Sprint(">"))
		return nil
	}

	for {
		i, err := s.Prompt.Select(">", editActions)
		if err != nil {
			return err
		}

		switch editActions[i] {
		case EditTitle:
			err = s.editTitle(e)
		case EditUserName:
			err = s.editUserName(e)
		case EditNotes:
			err = s.editNotes(e)
		case EditRandomPassword:
			err = s.randomPassword(e)
		case EditManualPassword:
			err = s.manualPassword(e)
		case EditDone:
			s.Logger.Infof("Edited entry %s", e.ID())
			return s.save(ctx)
		}
		if err != nil {
			return err
		}
	}
}

// pick returns the chosen entry, or nil if the vault has no entries.
func (s *Session) pick() (*vault.Entry, error) {
	entries := s.Vault.List()
	if len(entries) == 0 {
		fmt.Fprintf(s.Out, "%s No entries\n", ui.Info.Sprint(">"))
		return nil, nil
	}

	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.String()
	}

	i, err := s.Prompt.Select("Select entry", names)
	if err != nil {
		return nil, err
	}
	return entries[i], nil
}

// view shows the entry and copies its password to the clipboard.
func (s *Session) view(e *vault.Entry) error {
	if err := writeEntry(s.Out, s.Reveal, e); err != nil {
		s.Logger.Warnf("Could not show notes: %v", err)
	}

	pw, ok := fieldBytes(e, vault.FieldPassword)
	if !ok {
		return nil
	}
	defer vault.Wipe(pw)

	if err := s.Clipboard.Copy(pw); err != nil {
		return fmt.Errorf("copying password to clipboard: %w", err)
	}
	fmt.Fprintf(s.Out, "%s Copied to clipboard!\n", ui.Success.Sprint(">"))
	return nil
}

func (s *Session) save(ctx context.Context) error {
	return s.Save(ctx, s.Vault, s.Key)
}

func (s *Session) editTitle(e *vault.Entry) error {
	title, err := s.Prompt.Text(vault.FieldTitle, e.Title())
	if err != nil {
		return err
	}
	e.SetPlain(vault.FieldTitle, title)
	return nil
}

func (s *Session) editUserName(e *vault.Entry) error {
	name, err := s.Prompt.Text(vault.FieldUserName, e.UserName())
	if err != nil {
		return err
	}
	e.SetPlain(vault.FieldUserName, name)
	return nil
}

func (s *Session) editNotes(e *vault.Entry) error {
	current, _ := e.Text(vault.FieldNotes)
	notes, err := s.Prompt.Editor(vault.FieldNotes, current)
	if err != nil {
		return err
	}
	if notes == "" {
		if old, ok := e.Protected(vault.FieldNotes); ok {
			old.Wipe()
		}
		delete(e.Fields, vault.FieldNotes)
		return nil
	}
	e.SetProtected(vault.FieldNotes, []byte(notes))
	return nil
}

func (s *Session) randomPassword(e *vault.Entry) error {
	generate := s.GeneratePassword
	if generate == nil {
		generate = func() ([]byte, error) {
			return secrets.GeneratePassword(secrets.DefaultPasswordPolicy(secrets.DefaultPasswordLength))
		}
	}

	pw, err := generate()
	if err != nil {
		return fmt.Errorf("generating password: %w", err)
	}
	defer vault.Wipe(pw)

	e.SetProtected(vault.FieldPassword, pw)
	fmt.Fprintf(s.Out, "%s Password generated.\n", ui.Info.Sprint(">"))
	return nil
}

// manualPassword reads a masked password. Empty input keeps the current one.
func (s *Session) manualPassword(e *vault.Entry) error {
	pw, err := s.Prompt.Secret(vault.FieldPassword)
	if err != nil {
		return err
	}
	if pw == "" {
		fmt.Fprintf(s.Out, "%s Password unchanged.\n", ui.Info.Sprint(">"))
		return nil
	}
	e.SetProtected(vault.FieldPassword, []byte(pw))
	return nil
}

// fieldBytes returns a copy of a field's content. Callers wipe it.
func fieldBytes(e *vault.Entry, name string) ([]byte, bool) {
	switch v := e.Fields[name].(type) {
	case *vault.Protected:
		if v == nil {
			return nil, false
		}
		return v.Bytes(), true
	case vault.Plain:
		return []byte(v), true
	default:
		return nil, false
	}
}

// writeEntry renders e. Plain fields go to out; notes go to reveal only.
func writeEntry(out, reveal io.Writer, e *vault.Entry) error {
	prefix := ui.Info.Sprint(">")

	fmt.Fprintf(out, "%s Title: %s\n", prefix, ui.Highlight.Sprint(e.String()))
	if name := e.UserName(); name != "" {
		fmt.Fprintf(out, "%s Username: %s\n", prefix, name)
	}
	if url := e.URL(); url != "" {
		fmt.Fprintf(out, "%s Url: %s\n", prefix, url)
	}
	if _, ok := e.Get(vault.FieldPassword); ok {
		fmt.Fprintf(out, "%s Password: %s\n", prefix, ui.Secret.Sprint(vault.Redacted))
	}

	notes, ok := fieldBytes(e, vault.FieldNotes)
	if !ok {
		return nil
	}
	defer vault.Wipe(notes)

	fmt.Fprintf(out, "%s Notes: %s\n", prefix, ui.Muted.Sprint("shown on terminal"))
	block := make([]byte, 0, len(notes)+64)
	block = append(block, "-- Notes ----------------\n"...)
	block = append(block, notes...)
	block = append(block, "\n-------------------------\n"...)
	defer vault.Wipe(block)

	_, err := reveal.Write(block)
	return err
}
