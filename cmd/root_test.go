package cmd

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	kerrors "github.com/PolarWolf314/kpw/internal/errors"
	"github.com/PolarWolf314/kpw/internal/secrets"
	"github.com/PolarWolf314/kpw/internal/vaultfile"
	"github.com/spf13/pflag"
)

func TestMain(m *testing.M) {
	secrets.KDFIterations = 1000
	vaultfile.DefaultKDF = vaultfile.KDFParams{Time: 1, Memory: 64, Threads: 1}
	os.Setenv("NO_COLOR", "1")
	os.Exit(m.Run())
}

func TestRoot_Flags(t *testing.T) {
	want := map[string]string{
		"verbose": "v",
		"debug":   "d",
		"config":  "",
		"init":    "",
		"forget":  "",
	}

	seen := map[string]bool{}
	visit := func(f *pflag.Flag) {
		shorthand, ok := want[f.Name]
		if !ok {
			return
		}
		seen[f.Name] = true
		if f.Shorthand != shorthand {
			t.Errorf("flag --%s has shorthand %q, want %q", f.Name, f.Shorthand, shorthand)
		}
	}
	GetRootCmd().PersistentFlags().VisitAll(visit)
	GetRootCmd().Flags().VisitAll(visit)

	for name := range want {
		if !seen[name] {
			t.Errorf("flag --%s is not registered", name)
		}
	}
}

func TestRoot_MissingVaultPath(t *testing.T) {
	_, configFile := setupTestEnvironment(t)

	output, err := executeRoot("--config", configFile)
	if !errors.Is(err, kerrors.ErrMissingVaultPath) {
		t.Fatalf("Expected ErrMissingVaultPath, got: %v", err)
	}
	if !strings.Contains(output, "Usage:") {
		t.Errorf("Expected usage in output, got: %s", output)
	}
}

func TestRoot_InitAndForgetConflict(t *testing.T) {
	dir, configFile := setupTestEnvironment(t)

	_, err := executeRoot("--config", configFile, "--init", "--forget", filepath.Join(dir, "vault.kpw"))
	if err == nil {
		t.Fatal("Expected an error when --init and --forget are combined")
	}
}

func TestRoot_InvalidConfig(t *testing.T) {
	dir, _ := setupTestEnvironment(t)
	configFile := filepath.Join(dir, "bad.toml")
	if err := os.WriteFile(configFile, []byte("code_length = 0\n"), 0600); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	_, err := executeRoot("--config", configFile, filepath.Join(dir, "vault.kpw"))
	if !errors.Is(err, kerrors.ErrInvalidSettings) {
		t.Errorf("Expected ErrInvalidSettings, got: %v", err)
	}
}

func TestRoot_Forget(t *testing.T) {
	dir, configFile := setupTestEnvironment(t)
	cachePath := filepath.Join(dir, ".kpw")
	if err := os.WriteFile(cachePath, []byte("cached"), 0600); err != nil {
		t.Fatalf("Failed to write cache: %v", err)
	}

	output, err := executeRoot("--config", configFile, "--forget")
	if err != nil {
		t.Fatalf("Command failed: %v\nOutput: %s", err, output)
	}
	if _, err := os.Stat(cachePath); !os.IsNotExist(err) {
		t.Error("Expected the cache file to be removed")
	}
	if !strings.Contains(output, "Removed quick-unlock cache") {
		t.Errorf("Expected removal message, got: %s", output)
	}
}

func TestRoot_ForgetWithoutCache(t *testing.T) {
	_, configFile := setupTestEnvironment(t)

	output, err := executeRoot("--config", configFile, "--forget")
	if err != nil {
		t.Fatalf("Command failed: %v", err)
	}
	if !strings.Contains(output, "No quick-unlock cache") {
		t.Errorf("Expected no-cache message, got: %s", output)
	}
}

func TestRoot_InitThenQuickUnlock(t *testing.T) {
	dir, configFile := setupTestEnvironment(t,
		// --init
		"correct-horse", "correct-horse",
		"New", "Mail", "bob", "", "y",
		"Quit",
		// reopen with the quick code
		"rse",
		"Search", "Mail",
		"Quit",
	)
	vaultPath := filepath.Join(dir, "vault.kpw")

	output, err := executeRoot("--config", configFile, "--init", vaultPath)
	if err != nil {
		t.Fatalf("Init failed: %v\nOutput: %s", err, output)
	}
	if !strings.Contains(output, "Created") {
		t.Errorf("Expected creation message, got: %s", output)
	}
	if !strings.Contains(output, "Saved") {
		t.Errorf("Expected save message, got: %s", output)
	}
	if _, err := os.Stat(filepath.Join(dir, ".backup.kpw")); err != nil {
		t.Errorf("Expected a backup next to the vault: %v", err)
	}

	ResetGlobalState()
	output, err = executeRoot("--config", configFile, vaultPath)
	if err != nil {
		t.Fatalf("Reopen failed: %v\nOutput: %s", err, output)
	}
	if !strings.Contains(output, "Username: bob") {
		t.Errorf("Expected the saved entry to be shown, got: %s", output)
	}
	if strings.Contains(output, "Quick Pass was incorrect") {
		t.Errorf("Quick code should have been accepted: %s", output)
	}
}

func TestRoot_InitRefusesExistingFile(t *testing.T) {
	dir, configFile := setupTestEnvironment(t, "correct-horse", "correct-horse")
	vaultPath := filepath.Join(dir, "vault.kpw")
	if err := os.WriteFile(vaultPath, []byte("existing"), 0600); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	_, err := executeRoot("--config", configFile, "--init", vaultPath)
	if !errors.Is(err, kerrors.ErrVaultExists) {
		t.Errorf("Expected ErrVaultExists, got: %v", err)
	}

	data, _ := os.ReadFile(vaultPath)
	if string(data) != "existing" {
		t.Error("Existing file was modified")
	}
}
