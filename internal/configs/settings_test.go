package configs

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	kerrors "github.com/PolarWolf314/kpw/internal/errors"
)

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()

	if s.CachePath != filepath.Join(os.TempDir(), ".kpw") {
		t.Errorf("unexpected cache path %q", s.CachePath)
	}
	if s.StagingPath != filepath.Join(os.TempDir(), ".pass.kpw") {
		t.Errorf("unexpected staging path %q", s.StagingPath)
	}
	if s.CodeLength != 3 {
		t.Errorf("expected code length 3, got %d", s.CodeLength)
	}
	if err := s.Validate(); err != nil {
		t.Errorf("defaults should validate, got: %v", err)
	}
}

func TestLoadSettings_MissingFile(t *testing.T) {
	s, err := LoadSettings(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if s.PageSize != DefaultPageSize {
		t.Errorf("expected default page size, got %d", s.PageSize)
	}
}

func TestLoadSettings_EmptyPath(t *testing.T) {
	s, err := LoadSettings("")
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if s.BackupName != DefaultBackupName {
		t.Errorf("expected default backup name, got %q", s.BackupName)
	}
}

func TestLoadSettings_PartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kpw", "config.toml")
	partial := struct {
		CachePath string `toml:"cache_path"`
		PageSize  int    `toml:"page_size"`
		Banner    bool   `toml:"banner"`
	}{"/var/run/user/1000/kpw-cache", 30, false}

	if err := SaveTOML(path, partial); err != nil {
		t.Fatalf("SaveTOML failed: %v", err)
	}

	s, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("LoadSettings failed: %v", err)
	}
	if s.CachePath != "/var/run/user/1000/kpw-cache" {
		t.Errorf("cache path not overridden: %q", s.CachePath)
	}
	if s.PageSize != 30 {
		t.Errorf("page size not overridden: %d", s.PageSize)
	}
	if s.Banner {
		t.Error("banner should be disabled")
	}
	// Untouched keys keep their defaults.
	if s.CodeLength != DefaultCodeLength || s.BackupName != DefaultBackupName {
		t.Errorf("defaults lost: %+v", s)
	}
}

func TestLoadSettings_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"zero code length", "code_length = 0\n"},
		{"backup name with separator", "backup_name = \"../backup\"\n"},
		{"short passwords", "password_length = 2\n"},
		{"zero page size", "page_size = 0\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(path, []byte(tt.content), 0600); err != nil {
				t.Fatalf("Failed to write config: %v", err)
			}
			_, err := LoadSettings(path)
			if !errors.Is(err, kerrors.ErrInvalidSettings) {
				t.Errorf("expected ErrInvalidSettings, got: %v", err)
			}
		})
	}
}

func TestLoadSettings_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("code_length = \"three\"\n"), 0600); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	if _, err := LoadSettings(path); err == nil {
		t.Error("expected an error for a malformed config")
	}
}

func TestBackupPath(t *testing.T) {
	s := DefaultSettings()
	got := s.BackupPath(filepath.Join("home", "bob", "vault.kpw"))
	want := filepath.Join("home", "bob", ".backup.kpw")
	if got != want {
		t.Errorf("BackupPath() = %q, want %q", got, want)
	}
}
