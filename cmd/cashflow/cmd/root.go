// Package cmd provides the CLI commands of cashflow.
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"cashflow-report/internal/config"
	"cashflow-report/internal/logging"

	"github.com/spf13/cobra"
)

var (
	envFile    string
	debug      bool
	silent     bool
	exportPath string

	cfg    *config.Config
	logger *slog.Logger
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "cashflow",
	Short: "Categorize bank transactions and report cash flow",
	Long: `cashflow turns an easybank account history into categorized
transactions and aggregates them into monthly balances, monthly income
and expenses, and income and expenses per category and year or quarter.

Example:
  cashflow import easybank.csv
  cashflow scrape --headless
  cashflow report --year 2023 --save
  cashflow serve
  cashflow sample --months 24`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(envFile)
		if err != nil {
			return err
		}
		if exportPath != "" {
			cfg.Data.ExportPath = exportPath
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid configuration: %w", err)
		}

		level := cfg.App.LogLevel
		if debug {
			level = "debug"
		}
		logger = logging.New(level, silent, cmd.ErrOrStderr())
		slog.SetDefault(logger)
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env", "", "env file to load (default is .env when present)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&silent, "silent", false, "only log errors")
	rootCmd.PersistentFlags().StringVar(&exportPath, "export", "", "transaction export file (overrides CASHFLOW_EXPORT_PATH)")

	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(scrapeCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(rulesCmd)
	rootCmd.AddCommand(sampleCmd)
}

// exitOnError logs err and exits the process
func exitOnError(err error, msg string) {
	if err != nil {
		slog.Error(msg, "error", err)
		fmt.Fprintf(os.Stderr, "Error: %s: %v\n", msg, err)
		os.Exit(1)
	}
}
