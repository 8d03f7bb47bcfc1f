package configs

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	kerrors "github.com/PolarWolf314/kpw/internal/errors"
)

// Built-in defaults.
const (
	DefaultCacheName      = ".kpw"
	DefaultStagingName    = ".pass.kpw"
	DefaultBackupName     = ".backup.kpw"
	DefaultCodeLength     = 3
	DefaultPasswordLength = 12
	DefaultPageSize       = 15
)

type Settings struct {
	CachePath      string `toml:"cache_path"`
	StagingPath    string `toml:"staging_path"`
	BackupName     string `toml:"backup_name"`
	CodeLength     int    `toml:"code_length"`
	PasswordLength int    `toml:"password_length"`
	PageSize       int    `toml:"page_size"`
	Banner         bool   `toml:"banner"`
}

// DefaultSettings returns the settings used when no config file exists.
func DefaultSettings() *Settings {
	tmp := os.TempDir()
	return &Settings{
		CachePath:      filepath.Join(tmp, DefaultCacheName),
		StagingPath:    filepath.Join(tmp, DefaultStagingName),
		BackupName:     DefaultBackupName,
		CodeLength:     DefaultCodeLength,
		PasswordLength: DefaultPasswordLength,
		PageSize:       DefaultPageSize,
		Banner:         true,
	}
}

// DefaultConfigPath returns kpw/config.toml under the user config directory.
func DefaultConfigPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("error getting config directory: %w", err)
	}
	return filepath.Join(dir, "kpw", "config.toml"), nil
}

// LoadSettings reads the config file at path over the defaults. A missing
// file is not an error.
func LoadSettings(path string) (*Settings, error) {
	settings := DefaultSettings()
	if path == "" {
		return settings, nil
	}

	if err := LoadTOML(path, settings); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return settings, nil
		}
		return nil, fmt.Errorf("failed to load settings from %s: %w", path, err)
	}

	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return settings, nil
}

// Validate rejects settings that would break the unlock or save paths.
func (s *Settings) Validate() error {
	switch {
	case s.CachePath == "":
		return fmt.Errorf("%w: cache_path is empty", kerrors.ErrInvalidSettings)
	case s.StagingPath == "":
		return fmt.Errorf("%w: staging_path is empty", kerrors.ErrInvalidSettings)
	case s.BackupName == "" || strings.ContainsAny(s.BackupName, `/\`):
		return fmt.Errorf("%w: backup_name must be a plain file name, got %q", kerrors.ErrInvalidSettings, s.BackupName)
	case s.CodeLength <= 0:
		return fmt.Errorf("%w: code_length must be positive, got %d", kerrors.ErrInvalidSettings, s.CodeLength)
	case s.PasswordLength < 4:
		return fmt.Errorf("%w: password_length must be at least 4, got %d", kerrors.ErrInvalidSettings, s.PasswordLength)
	case s.PageSize <= 0:
		return fmt.Errorf("%w: page_size must be positive, got %d", kerrors.ErrInvalidSettings, s.PageSize)
	}
	return nil
}

// BackupPath returns the backup file for the vault at vaultPath.
func (s *Settings) BackupPath(vaultPath string) string {
	return filepath.Join(filepath.Dir(vaultPath), s.BackupName)
}
