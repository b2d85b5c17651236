package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"offertory/internal/config"
	"offertory/internal/core"
	"offertory/internal/registry"
	"offertory/internal/services"
	"offertory/internal/session"
	"offertory/internal/storage"
)

// app holds the wired components for the lifetime of one command run.
type app struct {
	cfg   *config.Config
	store storage.Store
	svc   *services.RecordService
}

var current app

var rootCmd = &cobra.Command{
	Use:   "offertory",
	Short: "Giving records and cash reconciliation",
	Long: `offertory records giving sessions per service, keeps the member
registry with its code sequence, and reconciles counted cash against
the expected amount.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		LoadEnvFile()
		logger := SetupLogger(slog.LevelInfo)
		current.cfg = LoadAndValidateConfig(logger)

		level, _ := current.cfg.SlogLevel()
		SetupLogger(level)

		store, err := OpenStore(current.cfg)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		current.store = store

		reg := registry.New(store)
		sessions := session.NewStore(store)
		current.svc = services.New(reg, sessions)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if current.store != nil {
			if err := current.store.Close(); err != nil {
				slog.Warn("Closing store failed", "error", err)
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(memberCmd)
	rootCmd.AddCommand(sessionCmd)
	rootCmd.AddCommand(reconcileCmd)
	rootCmd.AddCommand(summaryCmd)
}

// Execute runs the command tree and maps failures onto the operator
// facing messages before exiting non-zero.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, userMessage(err))
		os.Exit(1)
	}
}

// userMessage translates known failure kinds into the short messages
// shown to the operator. Anything unrecognized passes through as-is.
func userMessage(err error) string {
	switch {
	case errors.Is(err, core.ErrMissingDate):
		return "Please select a date."
	case errors.Is(err, core.ErrNotFound):
		return "No record found for this date and service type."
	case errors.Is(err, core.ErrDuplicateCode):
		return "Code already exists."
	case errors.Is(err, core.ErrBlankLastName):
		return "Last name is required."
	case errors.Is(err, core.ErrImportInFlight):
		return "An import is already running. Try again once it finishes."
	default:
		return "Error: " + err.Error()
	}
}
