package cmd

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/PolarWolf314/kpw/internal/configs"
	"github.com/PolarWolf314/kpw/internal/ui"
	"github.com/PolarWolf314/kpw/internal/vault"
	"github.com/PolarWolf314/kpw/internal/vaultfile"
	"github.com/PolarWolf314/kpw/internal/workflows"
	"github.com/briandowns/spinner"
	"github.com/common-nighthawk/go-figure"
)

// startSpinner shows message on a spinner, or logs it when verbose or debug
// output is on. The returned func stops the spinner and prints its FinalMSG,
// which needs no trailing newline.
func startSpinner(message string, verbose bool) (*spinner.Spinner, func()) {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = " " + message
	if err := s.Color("cyan"); err != nil {
		Logger.Warnf("Spinner color: %v", err)
	}

	quiet := !verbose && !debug
	if quiet {
		s.Start()
	} else {
		Logger.Infof("%s", message)
	}

	return s, func() {
		final := s.FinalMSG
		s.FinalMSG = ""
		if quiet {
			s.Stop()
		}
		if final != "" {
			fmt.Print(ui.EnsureNewline(final))
		}
	}
}

// newSaveFunc returns the session's save step for the vault at vaultPath.
func newSaveFunc(settings *configs.Settings, vaultPath string) workflows.SaveFunc {
	return func(ctx context.Context, v *vault.Vault, key vaultfile.Key) error {
		spinner, cleanup := startSpinner("Saving...", verbose)
		defer cleanup()

		result, err := workflows.Save(ctx, workflows.SaveOptions{
			Vault:       v,
			Key:         key,
			TargetPath:  vaultPath,
			BackupPath:  settings.BackupPath(vaultPath),
			StagingPath: settings.StagingPath,
		})
		if err != nil {
			spinner.FinalMSG = ui.Error.Sprint("✗") + " Failed to save " + ui.Path.Sprint(vaultPath)
			return err
		}

		Logger.Infof("Backed up %d bytes to %s", result.BackupBytes, settings.BackupPath(vaultPath))
		Logger.Debugf("Published %d bytes from %s", result.WrittenBytes, settings.StagingPath)
		spinner.FinalMSG = ui.Success.Sprint("✓") + " Saved " + ui.Path.Sprint(vaultPath)
		return nil
	}
}

// printBanner prints the start banner.
func printBanner(out io.Writer) {
	fig := figure.NewFigure("kpw", "", true)
	fmt.Fprintln(out)
	fmt.Fprint(out, ui.Success.Sprint(fig.String()))
	fmt.Fprintln(out)
}
