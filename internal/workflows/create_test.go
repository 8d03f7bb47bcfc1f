package workflows

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	kerrors "github.com/PolarWolf314/kpw/internal/errors"
	"github.com/PolarWolf314/kpw/internal/quickunlock"
	"github.com/PolarWolf314/kpw/internal/vaultfile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createIn(t *testing.T, dir string, answers ...string) (*CreateResult, *quickunlock.Cache, error) {
	t.Helper()
	prompt := script(answers...)
	cache := quickunlock.New(filepath.Join(dir, ".kpw"), quickunlock.DefaultCodeLength, prompt.quickCode)

	result, err := Create(context.Background(), CreateOptions{
		VaultPath: filepath.Join(dir, "personal.kpw"),
		Cache:     cache,
		Prompt:    prompt,
	})
	return result, cache, err
}

func TestCreate(t *testing.T) {
	dir := t.TempDir()

	result, cache, err := createIn(t, dir, "correct-horse", "correct-horse")
	require.NoError(t, err)

	assert.Equal(t, "personal", result.Vault.Root.Name)
	assert.Zero(t, result.Vault.Len())
	assert.True(t, result.CacheStored)
	assert.True(t, cache.Exists())

	reopened, err := vaultfile.OpenFile(filepath.Join(dir, "personal.kpw"), vaultfile.NewPasswordKey("correct-horse"))
	require.NoError(t, err)
	assert.Equal(t, result.Vault.Root.ID(), reopened.Root.ID())
}

func TestCreate_Mismatch(t *testing.T) {
	dir := t.TempDir()

	_, cache, err := createIn(t, dir, "correct-horse", "correct-hose")
	require.ErrorIs(t, err, kerrors.ErrPassphraseMismatch)

	_, statErr := os.Stat(filepath.Join(dir, "personal.kpw"))
	assert.True(t, os.IsNotExist(statErr))
	assert.False(t, cache.Exists())
}

func TestCreate_EmptyPassphrase(t *testing.T) {
	_, _, err := createIn(t, t.TempDir(), "")
	require.ErrorIs(t, err, kerrors.ErrPassphraseTooShort)
}

func TestCreate_ExistingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "personal.kpw")
	require.NoError(t, os.WriteFile(path, []byte("keep"), 0600))

	_, cache, err := createIn(t, dir, "correct-horse", "correct-horse")
	require.ErrorIs(t, err, kerrors.ErrVaultExists)
	assert.False(t, cache.Exists())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "keep", string(data))
}

func TestRootName(t *testing.T) {
	assert.Equal(t, "vault", rootName("/home/bob/vault.kpw"))
	assert.Equal(t, "vault", rootName("vault"))
	assert.Equal(t, ".kpw", rootName(".kpw"))
}
