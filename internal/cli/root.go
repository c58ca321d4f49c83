// Package cli provides the swagger-sync command line.
package cli

import (
	"io"
	"log/slog"

	"github.com/Aman-s12345/swagger-sync/internal/config"
	"github.com/Aman-s12345/swagger-sync/internal/logging"
	"github.com/spf13/cobra"
)

type app struct {
	cfg        config.Config
	configPath string
	logLevel   string
	logFile    string

	logger  *slog.Logger
	closers []io.Closer
}

// Execute creates and runs the root command.
func Execute() error {
	a := &app{}
	defer a.close()
	return a.rootCommand().Execute()
}

func (a *app) rootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "swagger-sync",
		Short: "Keep OpenAPI annotations and route docs in sync with an Express codebase",
		Long: `swagger-sync scans a JavaScript codebase by naming convention.

  annotate  prepends OpenAPI JSDoc blocks to controller entry files
  routes    collects router.route('/path').method declarations into one document`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", "Path to a YAML or JSON config file")
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Log level: trace, debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&a.logFile, "log-file", "", "Also write logs to this file")

	rootCmd.AddCommand(a.annotateCommand())
	rootCmd.AddCommand(a.routesCommand())
	return rootCmd
}

// setup loads the configuration and builds the logger. Subcommands apply
// their own flags on top and validate before running.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	a.cfg = config.Default()
	if a.configPath != "" {
		if err := config.Load(a.configPath, &a.cfg); err != nil {
			return err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		a.cfg.Log.Level = a.logLevel
	}
	if flags.Changed("log-file") {
		a.cfg.Log.File = a.logFile
	}

	logger, closers, err := logging.Setup(a.cfg.Log.Level, a.cfg.Log.File)
	if err != nil {
		return err
	}
	a.logger = logger
	a.closers = closers
	return nil
}

func (a *app) close() {
	for _, c := range a.closers {
		_ = c.Close()
	}
}
