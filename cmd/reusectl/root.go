package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/reuse-backend/internal/app"
	"github.com/heartmarshall/reuse-backend/internal/config"
)

const commandTimeout = 5 * time.Minute

// env carries what every subcommand needs after config is loaded.
type env struct {
	cfg    *config.Config
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	e := &env{}

	root := &cobra.Command{
		Use:           "reusectl",
		Short:         "Operate the item exchange backend",
		Version:       app.BuildVersion(),
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			e.cfg = cfg
			e.logger = app.NewLogger(cfg.Log)
			return nil
		},
	}

	root.AddCommand(
		newMigrateCmd(e),
		newMatchesCmd(e),
		newLikesCmd(e),
		newTokenCmd(e),
	)
	return root
}

func withTimeout(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	return context.WithTimeout(cmd.Context(), commandTimeout)
}
