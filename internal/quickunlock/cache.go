package quickunlock

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"unicode/utf8"

	kerrors "github.com/PolarWolf314/kpw/internal/errors"
	"github.com/PolarWolf314/kpw/internal/secrets"
)

// DefaultCodeLength is the number of trailing passphrase characters that form the code.
const DefaultCodeLength = 3

// Status is the outcome of TryUnlock.
type Status int

const (
	// StatusNoCache means no cache file existed; nothing was prompted.
	StatusNoCache Status = iota
	// StatusUnlocked means the code was correct and the passphrase recovered.
	StatusUnlocked
	// StatusDestroyed means the code was wrong and the cache file was deleted.
	StatusDestroyed
)

func (s Status) String() string {
	switch s {
	case StatusNoCache:
		return "no-cache"
	case StatusUnlocked:
		return "unlocked"
	case StatusDestroyed:
		return "destroyed"
	default:
		return "unknown"
	}
}

// Result holds the outcome of TryUnlock. Passphrase is set only for StatusUnlocked.
type Result struct {
	Status     Status
	Passphrase string
}

// CodePrompt asks the user for the quick code.
type CodePrompt func(label string) (string, error)

// Cache is the quick-unlock cache stored at Path.
type Cache struct {
	Path       string
	CodeLength int
	Prompt     CodePrompt
}

// New returns a cache at path that derives codes of length n and asks for them with prompt.
func New(path string, n int, prompt CodePrompt) *Cache {
	return &Cache{Path: path, CodeLength: n, Prompt: prompt}
}

func (c *Cache) codeLength() int {
	if c.CodeLength <= 0 {
		return DefaultCodeLength
	}
	return c.CodeLength
}

// DeriveCode returns the last n Unicode characters of passphrase.
func DeriveCode(passphrase string, n int) (string, error) {
	if n <= 0 {
		return "", fmt.Errorf("quick code length must be positive, got %d", n)
	}
	idx := len(passphrase)
	for i := 0; i < n; i++ {
		if idx == 0 {
			return "", kerrors.ErrPassphraseTooShort
		}
		_, size := utf8.DecodeLastRuneInString(passphrase[:idx])
		idx -= size
	}
	return passphrase[idx:], nil
}

// Exists reports whether a cache file is present.
func (c *Cache) Exists() bool {
	_, err := os.Stat(c.Path)
	return err == nil
}

// Store replaces the cache with passphrase sealed under its derived code.
func (c *Cache) Store(passphrase string) error {
	code, err := DeriveCode(passphrase, c.codeLength())
	if err != nil {
		return err
	}

	blob, err := secrets.Seal([]byte(code), []byte(passphrase))
	if err != nil {
		return fmt.Errorf("sealing quick-unlock cache: %w", err)
	}

	f, err := os.Create(c.Path)
	if err != nil {
		return fmt.Errorf("creating quick-unlock cache %s: %w", c.Path, err)
	}
	if _, err := f.Write(blob); err != nil {
		_ = f.Close()
		return fmt.Errorf("writing quick-unlock cache %s: %w", c.Path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing quick-unlock cache %s: %w", c.Path, err)
	}
	return nil
}

// TryUnlock gives the user one attempt to recover the passphrase from the cache.
// A wrong code deletes the cache file.
func (c *Cache) TryUnlock() (Result, error) {
	blob, err := os.ReadFile(c.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return Result{Status: StatusNoCache}, nil
	}
	if err != nil {
		return Result{}, fmt.Errorf("reading quick-unlock cache %s: %w", c.Path, err)
	}

	code, err := c.Prompt("Quick Pass")
	if err != nil {
		return Result{}, fmt.Errorf("reading quick code: %w", err)
	}

	plaintext, err := secrets.Open([]byte(code), blob)
	if err != nil {
		if rmErr := c.Remove(); rmErr != nil {
			return Result{}, rmErr
		}
		return Result{Status: StatusDestroyed}, nil
	}
	defer secrets.Wipe(plaintext)

	if !utf8.Valid(plaintext) {
		return Result{}, kerrors.ErrInvalidEncoding
	}
	return Result{Status: StatusUnlocked, Passphrase: string(plaintext)}, nil
}

// Remove deletes the cache file. A missing file is not an error.
func (c *Cache) Remove() error {
	if err := os.Remove(c.Path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("removing quick-unlock cache %s: %w", c.Path, err)
	}
	return nil
}
