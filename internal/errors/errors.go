package errors

import "errors"

// Vault errors indicate the container could not be opened or written.
var (
	// ErrInvalidKey indicates the passphrase is wrong or the ciphertext was tampered with.
	ErrInvalidKey = errors.New("invalid key or tampered vault")

	// ErrCorruptVault indicates the container decrypted but its contents are malformed.
	ErrCorruptVault = errors.New("vault is corrupt")

	// ErrNotVault indicates the file is not a kpw container.
	ErrNotVault = errors.New("file is not a kpw vault")

	// ErrUnsupportedVersion indicates the container was written by a newer format revision.
	ErrUnsupportedVersion = errors.New("unsupported vault format version")

	// ErrVaultExists indicates a new vault would overwrite an existing file.
	ErrVaultExists = errors.New("vault file already exists")

	// ErrCachedKeyRejected indicates a passphrase recovered from the quick-unlock
	// cache did not open the vault. The cache is trusted, so this is fatal.
	ErrCachedKeyRejected = errors.New("cached passphrase was rejected by the vault")
)

// Quick-unlock errors indicate the cache cannot be written or read back.
var (
	// ErrPassphraseTooShort indicates the passphrase has fewer runes than the quick code.
	ErrPassphraseTooShort = errors.New("passphrase is shorter than the quick code")

	// ErrInvalidEncoding indicates a recovered passphrase is not valid UTF-8.
	ErrInvalidEncoding = errors.New("recovered passphrase is not valid UTF-8")

	// ErrPassphraseMismatch indicates the confirmation did not match the passphrase.
	ErrPassphraseMismatch = errors.New("passphrases do not match")
)

// Cryptographic errors indicate failures of the SecretBlob codec.
var (
	// ErrDecryptFailed indicates the blob could not be authenticated under the given passphrase.
	ErrDecryptFailed = errors.New("failed to decrypt secret blob")

	// ErrEncryptFailed indicates the blob could not be sealed.
	ErrEncryptFailed = errors.New("failed to encrypt secret blob")

	// ErrBlobTruncated indicates the blob is shorter than its fixed header.
	ErrBlobTruncated = errors.New("secret blob is truncated")
)

// Save errors identify the step of the transactional save that failed.
var (
	// ErrBackupFailed indicates the previous vault could not be copied to the backup path.
	ErrBackupFailed = errors.New("failed to back up vault")

	// ErrStagingFailed indicates the vault could not be serialized to the staging path.
	ErrStagingFailed = errors.New("failed to write staging vault")

	// ErrPublishFailed indicates the staging file could not be copied over the vault.
	ErrPublishFailed = errors.New("failed to publish vault")

	// ErrSavePathConflict indicates the backup or staging path resolves to the vault file.
	ErrSavePathConflict = errors.New("save paths overlap")
)

// CLI errors indicate invalid invocations or settings.
var (
	// ErrMissingVaultPath indicates no vault path was given on the command line.
	ErrMissingVaultPath = errors.New("missing vault path")

	// ErrInvalidSettings indicates the config file holds unusable values.
	ErrInvalidSettings = errors.New("invalid settings")
)
