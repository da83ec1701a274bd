package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// importCmd represents the import command.
var importCmd = &cobra.Command{
	Use:   "import STATEMENT",
	Short: "Import an easybank CSV statement",
	Long: `Parse an easybank CSV statement (semicolon separated, ISO-8859-1),
categorize every transaction with the rule tables and replace the
transaction export with the result in chronological order.

Example:
  cashflow import ~/Downloads/easybank_umsaetze.csv
  cashflow import statement.csv --export data/transactions.csv`,
	Args: cobra.ExactArgs(1),
	Run:  runImport,
}

func runImport(cmd *cobra.Command, args []string) {
	metrics := newRunMetrics()
	importService, err := newImportService(metrics)
	exitOnError(err, "failed to set up import")
	defer metrics.Log()

	f, err := os.Open(args[0])
	exitOnError(err, "failed to open statement")
	defer f.Close()

	transactions, err := importService.ImportStatement(f)
	exitOnError(err, "failed to import statement")

	fmt.Fprintf(cmd.OutOrStdout(), "imported %d transactions into %s\n", len(transactions), cfg.Data.ExportPath)
}
