// Package errors provides typed error values for kpw.
//
// Using sentinel errors allows callers to handle specific error conditions
// programmatically with errors.Is() rather than string matching. This makes
// error handling more robust and refactoring-safe.
//
// # Error Categories
//
// Errors are grouped by category:
//
//   - Vault errors: the container could not be opened (ErrInvalidKey, ErrCorruptVault)
//   - Quick-unlock errors: cache artifacts that cannot be used (ErrPassphraseTooShort)
//   - Crypto errors: SecretBlob failures (ErrDecryptFailed)
//   - Save errors: a step of the transactional save failed (ErrBackupFailed)
//   - CLI errors: invalid invocation (ErrMissingVaultPath)
//
// # Usage
//
// Return errors from internal packages:
//
//	if len(runes) < n {
//	    return "", errors.ErrPassphraseTooShort
//	}
//
// Handle errors in the CLI layer:
//
//	v, err := vaultfile.Open(f, key)
//	if errors.Is(err, kerrors.ErrInvalidKey) {
//	    // Ask for the passphrase again
//	}
//
// Wrap errors with additional context:
//
//	return fmt.Errorf("copying %s to backup: %w", path, errors.ErrBackupFailed)
package errors
