package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/ncobase/monoapi/config"
	"github.com/ncobase/monoapi/data"
	"github.com/ncobase/monoapi/logging/logger"
	"github.com/spf13/cobra"
)

// NewMigrateCommand creates the migrate command. It creates the tables of
// all three databases and exits.
func NewMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "migrate",
		Aliases: []string{"m"},
		Args:    cobra.NoArgs,
		Short:   "Create or update the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.GetConfig()
			if err != nil {
				return err
			}

			l, cleanup, err := logger.ProvideLogger(cfg.Logger)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			defer cleanup()

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			d, err := data.New(ctx, cfg.Data, l)
			if err != nil {
				return err
			}
			defer func() {
				if errs := d.Close(); len(errs) > 0 {
					l.Errorf(ctx, "close databases: %v", errors.Join(errs...))
				}
			}()

			if err := d.Migrate(ctx); err != nil {
				return err
			}
			l.Info(ctx, "migrations applied")
			return nil
		},
	}
}
