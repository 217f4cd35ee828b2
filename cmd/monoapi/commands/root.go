// Package commands holds the monoapi command line.
package commands

import (
	"flag"

	"github.com/ncobase/monoapi/config"
	"github.com/spf13/cobra"

	// database drivers
	_ "github.com/ncobase/monoapi/data/all"
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	var configFile string

	rootCmd := &cobra.Command{
		Use:           "monoapi",
		Short:         "Items, users, analytics and logs API",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// cobra owns the command line; keep config from parsing os.Args again
			if err := flag.CommandLine.Parse(nil); err != nil {
				return err
			}
			config.SetPath(configFile)
			return nil
		},
	}
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "config file path")

	rootCmd.AddCommand(
		NewServeCommand(),
		NewMigrateCommand(),
		NewVersionCommand(),
	)

	return rootCmd
}
