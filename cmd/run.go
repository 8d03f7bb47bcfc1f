package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/PolarWolf314/kpw/internal/configs"
	"github.com/PolarWolf314/kpw/internal/prompt"
	"github.com/PolarWolf314/kpw/internal/quickunlock"
	"github.com/PolarWolf314/kpw/internal/secrets"
	"github.com/PolarWolf314/kpw/internal/ui"
	"github.com/PolarWolf314/kpw/internal/utils"
	"github.com/PolarWolf314/kpw/internal/vault"
	"github.com/PolarWolf314/kpw/internal/vaultfile"
	"github.com/PolarWolf314/kpw/internal/workflows"
	"github.com/spf13/cobra"
)

// Terminal adapters, replaced in tests.
var (
	newPrompter = func(settings *configs.Settings) workflows.Prompter {
		return prompt.New(settings.PageSize)
	}
	newClipboard = func() workflows.Clipboard {
		return utils.Clipboard{}
	}
	newReveal = func() io.Writer {
		return utils.TTYWriter{}
	}
)

// loadSettings reads --config, or the default config file when the flag is unset.
func loadSettings() (*configs.Settings, error) {
	path := configPath
	if path == "" {
		defaultPath, err := configs.DefaultConfigPath()
		if err != nil {
			Logger.Debugf("No user config directory, using defaults: %v", err)
			return configs.DefaultSettings(), nil
		}
		path = defaultPath
	}

	Logger.Debugf("Loading settings from %s", path)
	return configs.LoadSettings(path)
}

func runForget(cmd *cobra.Command, settings *configs.Settings) error {
	out := cmd.OutOrStdout()
	cache := quickunlock.New(settings.CachePath, settings.CodeLength, nil)

	if !cache.Exists() {
		fmt.Fprintf(out, "%s No quick-unlock cache at %s\n", ui.Info.Sprint("→"), ui.Path.Sprint(settings.CachePath))
		return nil
	}

	if err := cache.Remove(); err != nil {
		return Logger.ErrorfAndReturn("Failed to remove quick-unlock cache: %w", err)
	}
	fmt.Fprintf(out, "%s Removed quick-unlock cache %s\n", ui.Success.Sprint("✓"), ui.Path.Sprint(settings.CachePath))
	return nil
}

func runVault(ctx context.Context, cmd *cobra.Command, settings *configs.Settings, vaultPath string) error {
	out := cmd.OutOrStdout()
	prompter := newPrompter(settings)
	cache := quickunlock.New(settings.CachePath, settings.CodeLength, prompter.Secret)

	if settings.Banner && utils.IsStdoutTerminal() {
		printBanner(out)
	}

	var (
		v   *vault.Vault
		key vaultfile.Key
	)
	if initVault {
		Logger.Infof("Creating vault %s", vaultPath)
		result, err := workflows.Create(ctx, workflows.CreateOptions{
			VaultPath: vaultPath,
			Cache:     cache,
			Prompt:    prompter,
			Logger:    Logger,
		})
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%s Created %s\n", ui.Success.Sprint("✓"), ui.Path.Sprint(vaultPath))
		v, key = result.Vault, result.Key
	} else {
		Logger.Infof("Opening vault %s", vaultPath)
		result, err := workflows.Unlock(ctx, workflows.UnlockOptions{
			VaultPath: vaultPath,
			Cache:     cache,
			Prompt:    prompter,
			Out:       out,
			Logger:    Logger,
		})
		if err != nil {
			return err
		}
		v, key = result.Vault, result.Key
	}
	Logger.Debugf("Vault holds %d entries", v.Len())

	session := &workflows.Session{
		Vault:     v,
		Key:       key,
		Prompt:    prompter,
		Clipboard: newClipboard(),
		Out:       out,
		Reveal:    newReveal(),
		Logger:    Logger,
		Save:      newSaveFunc(settings, vaultPath),
		GeneratePassword: func() ([]byte, error) {
			return secrets.GeneratePassword(secrets.DefaultPasswordPolicy(settings.PasswordLength))
		},
	}
	return session.Run(ctx)
}
