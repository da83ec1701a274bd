package cmd

import (
	"fmt"

	"cashflow-report/internal/models"
	"cashflow-report/internal/repositories"
	"cashflow-report/internal/services"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	reportYear      int
	reportSkipFirst bool
	reportJSON      bool
	reportSave      bool
	reportOutDir    string
	reportNoColor   bool
)

// reportCmd represents the report command.
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Aggregate the transaction export",
	Long: `Aggregate the transaction export into the monthly balance, monthly
income and expenses, and yearly and quarterly income and expenses per
category, and print them.

With --year the report covers one calendar year and starts from the
balance carried over from earlier years. With --save every series is also
written as CSV, together with a JSON document, to a new folder named
outputYYYYMMDD-HHMMSS.

Example:
  cashflow report
  cashflow report --year 2023 --save --out reports
  cashflow report --skip-first-transaction --json`,
	Run: runReport,
}

func init() {
	reportCmd.Flags().IntVar(&reportYear, "year", 0, "restrict the report to one calendar year")
	reportCmd.Flags().BoolVar(&reportSkipFirst, "skip-first-transaction", false, "ignore the first transaction in the flow series, e.g. an opening deposit")
	reportCmd.Flags().BoolVar(&reportJSON, "json", false, "print the report as JSON")
	reportCmd.Flags().BoolVar(&reportSave, "save", false, "write the series to a timestamped folder")
	reportCmd.Flags().StringVar(&reportOutDir, "out", "", "folder for --save (overrides CASHFLOW_OUTPUT_DIR)")
	reportCmd.Flags().BoolVar(&reportNoColor, "no-color", false, "disable coloured output")
}

func runReport(cmd *cobra.Command, args []string) {
	if reportNoColor {
		color.NoColor = true
	}

	transactions, err := repositories.NewFileTransactionRepository(cfg.Data.ExportPath).Load()
	exitOnError(err, "failed to load transactions")
	logger.Debug("transactions loaded", "path", cfg.Data.ExportPath, "count", len(transactions))

	reportService := services.NewReportService(logger, nil)
	report, err := reportService.GenerateReport(transactions, models.ReportOptions{
		Year:      reportYear,
		SkipFirst: reportSkipFirst,
	})
	exitOnError(err, "failed to generate report")

	if reportJSON {
		err = repositories.WriteReportJSON(cmd.OutOrStdout(), report)
	} else {
		err = reportService.WriteSummary(cmd.OutOrStdout(), report)
	}
	exitOnError(err, "failed to print report")

	if !reportSave {
		return
	}

	outDir := cfg.Data.OutputDir
	if reportOutDir != "" {
		outDir = reportOutDir
	}
	dir, err := repositories.NewFileReportRepository(outDir).Save(report)
	exitOnError(err, "failed to save report")

	logger.Info("report saved", "folder", dir)
	if !reportJSON {
		fmt.Fprintf(cmd.ErrOrStderr(), "series written to %s\n", dir)
	}
}
