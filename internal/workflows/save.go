package workflows

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	kerrors "github.com/PolarWolf314/kpw/internal/errors"
	"github.com/PolarWolf314/kpw/internal/vault"
	"github.com/PolarWolf314/kpw/internal/vaultfile"
)

// Serializer writes an encrypted vault to w.
type Serializer func(w io.Writer, v *vault.Vault, key vaultfile.Key) error

// SaveOptions configures the save workflow.
type SaveOptions struct {
	// Vault is the in-memory tree to persist.
	Vault *vault.Vault

	// Key encrypts the written container.
	Key vaultfile.Key

	// TargetPath is the vault file being replaced.
	TargetPath string

	// BackupPath receives a copy of the target before anything is written.
	BackupPath string

	// StagingPath receives the fully encrypted vault before it is published.
	StagingPath string

	// Serialize defaults to vaultfile.Serialize.
	Serialize Serializer
}

// SaveResult contains the outcome of a save operation.
type SaveResult struct {
	// BackupBytes is the size of the pre-save copy of the target.
	BackupBytes int64

	// WrittenBytes is the size of the published vault.
	WrittenBytes int64
}

// Save persists the vault in three steps:
//  1. Copies the target to BackupPath, overwriting an earlier backup
//  2. Serializes the vault to StagingPath
//  3. Copies the staging file over the target
//
// The target is only written once the staging file is complete. The
// sequence is not atomic: a crash during step 3 can leave a partial target,
// which the backup recovers.
//
// Returns ErrSavePathConflict if the backup or staging path is the target.
// Returns ErrBackupFailed if the target cannot be copied.
// Returns ErrStagingFailed if the staging file cannot be written.
// Returns ErrPublishFailed if the staging file cannot be copied over the target.
func Save(ctx context.Context, opts SaveOptions) (*SaveResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := checkDistinctPaths(opts); err != nil {
		return nil, err
	}

	serialize := opts.Serialize
	if serialize == nil {
		serialize = vaultfile.Serialize
	}

	backupBytes, err := copyFile(opts.TargetPath, opts.BackupPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", kerrors.ErrBackupFailed, err)
	}

	if err := writeStaging(opts.StagingPath, opts.Vault, opts.Key, serialize); err != nil {
		return nil, fmt.Errorf("%w: %w", kerrors.ErrStagingFailed, err)
	}

	written, err := copyFile(opts.StagingPath, opts.TargetPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", kerrors.ErrPublishFailed, err)
	}

	return &SaveResult{
		BackupBytes:  backupBytes,
		WrittenBytes: written,
	}, nil
}

// checkDistinctPaths rejects backup or staging paths that name the target,
// or each other, after cleaning.
func checkDistinctPaths(opts SaveOptions) error {
	target := cleanPath(opts.TargetPath)
	backup := cleanPath(opts.BackupPath)
	staging := cleanPath(opts.StagingPath)

	switch {
	case backup == target:
		return fmt.Errorf("%w: backup path %s is the vault file", kerrors.ErrSavePathConflict, opts.BackupPath)
	case staging == target:
		return fmt.Errorf("%w: staging path %s is the vault file", kerrors.ErrSavePathConflict, opts.StagingPath)
	case staging == backup:
		return fmt.Errorf("%w: staging path %s is the backup file", kerrors.ErrSavePathConflict, opts.StagingPath)
	}
	return nil
}

// cleanPath returns an absolute, cleaned form of path for comparison.
func cleanPath(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return filepath.Clean(path)
}

func writeStaging(path string, v *vault.Vault, key vaultfile.Key, serialize Serializer) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := serialize(f, v, key); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// copyFile copies src over dst with create-truncate semantics.
func copyFile(src, dst string) (int64, error) {
	in, err := os.Open(src)
	if err != nil {
		return 0, err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return 0, err
	}

	n, err := io.Copy(out, in)
	if err != nil {
		out.Close()
		return n, err
	}
	return n, out.Close()
}
