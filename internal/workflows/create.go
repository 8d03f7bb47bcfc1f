package workflows

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	kerrors "github.com/PolarWolf314/kpw/internal/errors"
	logger "github.com/PolarWolf314/kpw/internal/logging"
	"github.com/PolarWolf314/kpw/internal/quickunlock"
	"github.com/PolarWolf314/kpw/internal/vault"
	"github.com/PolarWolf314/kpw/internal/vaultfile"
)

// CreateOptions configures the create workflow.
type CreateOptions struct {
	// VaultPath is where the new vault file is written. It must not exist.
	VaultPath string

	// Cache is seeded with the new passphrase.
	Cache *quickunlock.Cache

	// Prompt asks for the passphrase and its confirmation.
	Prompt Prompter

	Logger logger.Logger
}

// CreateResult contains the outcome of a create operation.
type CreateResult struct {
	Vault *vault.Vault
	Key   vaultfile.Key

	// CacheStored is true if the quick-unlock cache was seeded.
	CacheStored bool
}

// Create writes a new, empty vault whose root group is named after the file.
//
// The workflow:
//  1. Prompts for the passphrase twice
//  2. Writes the empty vault, refusing to overwrite an existing file
//  3. Stores the quick-unlock cache for the new passphrase
//
// Returns ErrPassphraseTooShort if the passphrase is empty.
// Returns ErrPassphraseMismatch if the two passphrases differ.
// Returns ErrVaultExists if VaultPath already exists.
func Create(ctx context.Context, opts CreateOptions) (*CreateResult, error) {
	log := opts.Logger

	passphrase, err := opts.Prompt.Secret("New " + PassphraseLabel)
	if err != nil {
		return nil, err
	}
	if passphrase == "" {
		return nil, fmt.Errorf("%w: passphrase is empty", kerrors.ErrPassphraseTooShort)
	}

	confirm, err := opts.Prompt.Secret("Confirm " + PassphraseLabel)
	if err != nil {
		return nil, err
	}
	if confirm != passphrase {
		return nil, kerrors.ErrPassphraseMismatch
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	v := vault.New(rootName(opts.VaultPath))
	key := vaultfile.NewPasswordKey(passphrase)
	if err := vaultfile.Create(opts.VaultPath, v, key); err != nil {
		return nil, err
	}
	log.Infof("Created vault %s", opts.VaultPath)

	stored, err := storeCache(opts.Cache, passphrase, log)
	if err != nil {
		return nil, err
	}

	return &CreateResult{Vault: v, Key: key, CacheStored: stored}, nil
}

// rootName returns the vault file name without directory or extension.
func rootName(path string) string {
	base := filepath.Base(path)
	if name := strings.TrimSuffix(base, filepath.Ext(base)); name != "" {
		return name
	}
	return base
}
