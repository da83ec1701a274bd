package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"cashflow-report/internal/models"
	"cashflow-report/internal/repositories"
	"cashflow-report/internal/services"

	"github.com/spf13/cobra"
)

var (
	sampleMonths int
	sampleSeed   int64
)

// sampleCmd represents the sample command.
var sampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Write a generated account history to the export file",
	Long: `Generate a made-up account history ending this month so the reports
and the API can be tried without bank access. Rule files that do not
exist yet are created with rules matching the generated merchants.

Example:
  cashflow sample --months 24
  cashflow sample --seed 42 --export demo/transactions.csv`,
	Args: cobra.NoArgs,
	Run:  runSample,
}

func init() {
	sampleCmd.Flags().IntVar(&sampleMonths, "months", 18, "number of months to generate")
	sampleCmd.Flags().Int64Var(&sampleSeed, "seed", 1, "random seed; equal seeds give equal histories")
}

func runSample(cmd *cobra.Command, args []string) {
	if sampleMonths < 1 {
		exitOnError(fmt.Errorf("months must be positive, got %d", sampleMonths), "invalid flags")
	}

	generator := services.NewSampleGenerator(sampleSeed)
	accountRules, textRules := generator.SampleRules()
	exitOnError(writeRulesIfMissing(cfg.Rules.AccountRulesPath, accountRules), "failed to write account rules")
	exitOnError(writeRulesIfMissing(cfg.Rules.TextRulesPath, textRules), "failed to write text rules")

	metrics := newRunMetrics()
	importService, err := newImportService(metrics)
	exitOnError(err, "failed to set up import")
	defer metrics.Log()

	start := time.Now().UTC().AddDate(0, 1-sampleMonths, 0)
	transactions, err := importService.Import(services.ImportSourceSample, generator.Generate(start, sampleMonths))
	exitOnError(err, "failed to store transactions")

	fmt.Fprintf(cmd.OutOrStdout(), "generated %d transactions into %s\n", len(transactions), cfg.Data.ExportPath)
}

// writeRulesIfMissing leaves existing rule files untouched
func writeRulesIfMissing(path string, rules []models.CategoryRule) error {
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); err == nil || !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := repositories.WriteRules(f, rules); err != nil {
		f.Close()
		return err
	}
	logger.Info("rule file created", "path", path, "rules", len(rules))
	return f.Close()
}
