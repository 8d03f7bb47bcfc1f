package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/PolarWolf314/kpw/cmd"
	kerrors "github.com/PolarWolf314/kpw/internal/errors"
	"github.com/PolarWolf314/kpw/internal/ui"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := cmd.Execute(ctx)
	stop()

	if err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", ui.Error.Sprint("✗"), err)
		if errors.Is(err, kerrors.ErrCachedKeyRejected) {
			fmt.Fprintf(os.Stderr, "%s Run %s to drop the cache and use the full passphrase\n",
				ui.Info.Sprint("→"), ui.Code.Sprint("kpw --forget"))
		}
		os.Exit(1)
	}
}
