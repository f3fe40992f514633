package cmd

import (
	"errors"
	"fmt"

	"github.com/jzelinskie/cobrautil/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/tupyy/parcm/internal/config"
)

const envPrefix = "parcm"

func NewRootCommand(cfg *config.Configuration) *cobra.Command {
	var configFile string

	root := &cobra.Command{
		Use:           "parcm",
		Short:         "Album player with background loading over a worker pool",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: cobrautil.CommandStack(
			func(cmd *cobra.Command, args []string) error {
				return loadConfigFile(cmd, configFile)
			},
			cobrautil.SyncViperPreRunE(envPrefix),
			func(cmd *cobra.Command, args []string) error {
				return setupLogger(cfg.LogFormat, cfg.LogLevel)
			},
		),
	}

	root.PersistentFlags().StringVar(&configFile, "config", "", "optional yaml or json file with flag values")
	root.PersistentFlags().StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "log format: console or json")
	root.PersistentFlags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn or error")
	root.PersistentFlags().StringVar(&cfg.Catalog.DatabasePath, "db", cfg.Catalog.DatabasePath, "path of the DuckDB catalog, :memory: for an in-memory catalog")

	root.AddCommand(
		NewRunCommand(cfg),
		NewImportCommand(cfg),
		NewAlbumsCommand(cfg),
		NewPlayerCommand(),
	)

	return root
}

// loadConfigFile sets every flag not given on the command line from the keys of path.
// Keys are flag names. Command line flags win over the file and the file wins over PARCM_* variables.
func loadConfigFile(cmd *cobra.Command, path string) error {
	if path == "" {
		return nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var errs []error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if f.Changed || !v.IsSet(f.Name) {
			return
		}
		if err := cmd.Flags().Set(f.Name, v.GetString(f.Name)); err != nil {
			errs = append(errs, fmt.Errorf("invalid value for %s in %s: %w", f.Name, path, err))
		}
	})
	return errors.Join(errs...)
}
