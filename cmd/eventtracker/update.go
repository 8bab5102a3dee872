package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/limbo/eventtracker/internal/updatecheck"
)

var checkUpdateCmd = &cobra.Command{
	Use:   "check-update",
	Short: "Ask the release manifest whether a newer version exists",
	Args:  cobra.NoArgs,
	RunE:  runCheckUpdate,
}

func init() {
	addFormatFlag(checkUpdateCmd)
}

func newChecker() *updatecheck.Checker {
	return updatecheck.NewChecker(cfg.UpdateURL, version, cfg.UpdateTimeout, logger)
}

// startUpdateCheck runs the automatic check alongside the command. Nothing
// waits for it: a result that is not ready when the command ends is dropped.
func startUpdateCheck(ctx context.Context) {
	if cfg.UpdateURL == "" {
		return
	}
	ctx, cancelUpdate = context.WithCancel(ctx)
	updates = newChecker().Start(ctx, false)
}

func reportUpdate(cmd *cobra.Command) {
	if updates == nil {
		return
	}
	select {
	case res, ok := <-updates:
		if ok && res.Status == updatecheck.UpdateAvailable {
			printUpdate(cmd.ErrOrStderr(), res)
		}
	default:
	}
}

func runCheckUpdate(cmd *cobra.Command, args []string) error {
	res, ok := <-newChecker().Start(cmd.Context(), true)
	if !ok {
		return cmd.Context().Err()
	}
	return render(cmd.OutOrStdout(), res, func(w io.Writer) error {
		printUpdate(w, res)
		return nil
	})
}

func printUpdate(w io.Writer, res updatecheck.Result) {
	switch res.Status {
	case updatecheck.UpdateAvailable:
		fmt.Fprintf(w, "Version %s is available (you have %s): %s\n", res.Version, version, res.URL)
	case updatecheck.UpToDate:
		fmt.Fprintf(w, "eventtracker %s is up to date.\n", version)
	default:
		fmt.Fprintf(w, "Update check failed: %s\n", res.Reason)
	}
}
