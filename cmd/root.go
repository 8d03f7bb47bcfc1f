package cmd

import (
	"context"
	"fmt"

	kerrors "github.com/PolarWolf314/kpw/internal/errors"
	logger "github.com/PolarWolf314/kpw/internal/logging"
	"github.com/spf13/cobra"
)

var (
	verbose    bool
	debug      bool
	configPath string
	initVault  bool
	forget     bool
	Logger     logger.Logger

	RootCmd = &cobra.Command{
		Use:   "kpw [flags] <vault-file>",
		Short: "kpw - a personal password vault for the terminal",
		Long: `kpw opens an encrypted password vault, lets you search, create and edit
entries, and copies passwords to the clipboard without printing them.

After the first successful unlock, the last three characters of your
passphrase act as a quick code for the next launch. A wrong quick code
destroys the cache and falls back to the full passphrase.

Examples:
  kpw ~/vault.kpw            # open a vault
  kpw --init ~/vault.kpw     # create a new vault
  kpw --forget               # delete the quick-unlock cache`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			Logger = logger.Logger{
				Verbose: verbose,
				Debug:   debug,
			}
			Logger.Debugf("Initializing kpw with verbose=%t, debug=%t", verbose, debug)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if initVault && forget {
				return fmt.Errorf("--init and --forget cannot be used together")
			}

			settings, err := loadSettings()
			if err != nil {
				return Logger.ErrorfAndReturn("Failed to load settings: %w", err)
			}

			if forget {
				return runForget(cmd, settings)
			}

			if len(args) == 0 {
				_ = cmd.Usage()
				return kerrors.ErrMissingVaultPath
			}

			return runVault(cmd.Context(), cmd, settings, args[0])
		},
	}
)

func init() {
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	RootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug output")
	RootCmd.Flags().StringVar(&configPath, "config", "", "config file (default is $XDG_CONFIG_HOME/kpw/config.toml)")
	RootCmd.Flags().BoolVar(&initVault, "init", false, "create a new vault at <vault-file>")
	RootCmd.Flags().BoolVar(&forget, "forget", false, "delete the quick-unlock cache and exit")
}

// Execute runs the root command with ctx.
func Execute(ctx context.Context) error {
	return RootCmd.ExecuteContext(ctx)
}

// Helper functions for testing

// GetRootCmd returns the RootCmd for testing.
func GetRootCmd() *cobra.Command {
	return RootCmd
}

// ResetGlobalState resets all global variables to their default values for testing.
func ResetGlobalState() {
	verbose = false
	debug = false
	configPath = ""
	initVault = false
	forget = false
	Logger = logger.Logger{}
}
