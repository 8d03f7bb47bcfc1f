package workflows

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	kerrors "github.com/PolarWolf314/kpw/internal/errors"
	logger "github.com/PolarWolf314/kpw/internal/logging"
	"github.com/PolarWolf314/kpw/internal/quickunlock"
	"github.com/PolarWolf314/kpw/internal/ui"
	"github.com/PolarWolf314/kpw/internal/vault"
	"github.com/PolarWolf314/kpw/internal/vaultfile"
)

// PassphraseLabel is the prompt shown for the master passphrase.
const PassphraseLabel = "Password"

// UnlockOptions configures the unlock workflow.
type UnlockOptions struct {
	// VaultPath is the vault file to open.
	VaultPath string

	// Cache is the quick-unlock cache consulted before the passphrase.
	Cache *quickunlock.Cache

	// Prompt asks for the passphrase.
	Prompt Prompter

	// Out receives user-facing status lines.
	Out io.Writer

	Logger logger.Logger
}

// UnlockResult contains the opened vault and the key that opened it.
type UnlockResult struct {
	Vault *vault.Vault
	Key   vaultfile.Key

	// FromCache is true if the quick code recovered the passphrase.
	FromCache bool

	// Attempts counts full passphrase prompts.
	Attempts int

	// CacheStored is true if a new quick-unlock cache was written.
	CacheStored bool
}

// Unlock opens the vault at VaultPath.
//
// The workflow:
//  1. Offers the quick-unlock cache, if one exists, for a single code attempt
//  2. Otherwise prompts for the passphrase until it opens the vault
//  3. Stores a fresh quick-unlock cache for the accepted passphrase
//
// A wrong quick code destroys the cache and falls through to step 2. A
// passphrase that fails to open the vault is reported and asked for again,
// without limit; the loop ends only when the prompt itself fails.
//
// Returns ErrCachedKeyRejected if a passphrase recovered from the cache does
// not open the vault.
// Returns ErrInvalidEncoding if the cache holds a non UTF-8 passphrase.
// Returns the underlying error if the vault file cannot be read.
func Unlock(ctx context.Context, opts UnlockOptions) (*UnlockResult, error) {
	log := opts.Logger

	cached, err := opts.Cache.TryUnlock()
	if err != nil {
		return nil, err
	}
	log.Debugf("Quick-unlock cache at %s: %s", opts.Cache.Path, cached.Status)

	switch cached.Status {
	case quickunlock.StatusUnlocked:
		key := vaultfile.NewPasswordKey(cached.Passphrase)
		v, err := openVault(opts.VaultPath, key)
		if err != nil {
			var pathErr *os.PathError
			if errors.As(err, &pathErr) {
				return nil, err
			}
			return nil, fmt.Errorf("%w: %w", kerrors.ErrCachedKeyRejected, err)
		}
		log.Infof("Opened %s with the quick code", opts.VaultPath)
		return &UnlockResult{Vault: v, Key: key, FromCache: true}, nil

	case quickunlock.StatusDestroyed:
		fmt.Fprintf(opts.Out, "%s Quick Pass was incorrect.\n", ui.Warning.Sprint("!"))
	}

	result := &UnlockResult{}
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		passphrase, err := opts.Prompt.Secret(PassphraseLabel)
		if err != nil {
			return nil, err
		}
		result.Attempts++

		key := vaultfile.NewPasswordKey(passphrase)
		v, err := openVault(opts.VaultPath, key)
		if err != nil {
			var pathErr *os.PathError
			if errors.As(err, &pathErr) {
				return nil, err
			}
			fmt.Fprintf(opts.Out, "%s Failed to open vault. Wrong passphrase?\n", ui.Warning.Sprint("!"))
			fmt.Fprintf(opts.Out, "%s   %v\n", ui.Info.Sprint(">"), err)
			continue
		}

		stored, err := storeCache(opts.Cache, passphrase, log)
		if err != nil {
			return nil, err
		}

		result.Vault = v
		result.Key = key
		result.CacheStored = stored
		log.Infof("Opened %s after %d attempt(s)", opts.VaultPath, result.Attempts)
		return result, nil
	}
}

func openVault(path string, key vaultfile.Key) (*vault.Vault, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return vaultfile.Open(f, key)
}

// storeCache writes the quick-unlock cache. A passphrase too short to
// derive a code only disables quick unlock.
func storeCache(cache *quickunlock.Cache, passphrase string, log logger.Logger) (bool, error) {
	err := cache.Store(passphrase)
	switch {
	case errors.Is(err, kerrors.ErrPassphraseTooShort):
		log.Warnf("Passphrase is shorter than the quick code; quick unlock is disabled")
		return false, nil
	case err != nil:
		return false, fmt.Errorf("storing quick-unlock cache: %w", err)
	}
	log.Debugf("Stored quick-unlock cache at %s", cache.Path)
	return true, nil
}
