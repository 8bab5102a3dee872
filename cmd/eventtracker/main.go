package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/limbo/eventtracker/internal/updatecheck"
	"github.com/limbo/eventtracker/pkg/cleanup"
	"github.com/limbo/eventtracker/pkg/config"
	"github.com/limbo/eventtracker/pkg/logging"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "0.1.0"

var (
	// Global flags
	envFile  string
	userFlag string

	cfg    *config.Config
	logger *zap.Logger

	// Automatic update check started before a command and read after it.
	updates      <-chan updatecheck.Result
	cancelUpdate context.CancelFunc
)

var rootCmd = &cobra.Command{
	Use:   "eventtracker",
	Short: "Record the dates an event happens and see how often it does",
	Long: `eventtracker keeps a per-user catalog of events, each with the list of
dates it happened on, and prints occurrence reports: a cumulative timeline,
weekly density, the distribution of gaps between occurrences, a yearly heatmap
and a monthly summary.

Data lives in EVENTTRACKER_DATA_DIR (default ./Data) unless
EVENTTRACKER_STORAGE=postgres.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(envFile)
		if err != nil {
			return err
		}
		logger, err = logging.New(cfg.LogLevel)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		if !manualCommands[cmd.Name()] {
			startUpdateCheck(cmd.Context())
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		reportUpdate(cmd)
	},
}

// manualCommands do not run the automatic update check.
var manualCommands = map[string]bool{
	"check-update": true,
	"migrate":      true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file read before the environment")
	rootCmd.PersistentFlags().StringVarP(&userFlag, "user", "u", "", "account to sign in as")

	rootCmd.AddCommand(registerCmd, loginCmd, logoutCmd)
	rootCmd.AddCommand(categoriesCmd, categoryCmd, datesCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(checkUpdateCmd, migrateCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if cancelUpdate != nil {
		cancelUpdate()
	}
	if logger != nil {
		cleanup.CleanUp(logger)
		_ = logger.Sync()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
