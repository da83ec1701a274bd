package repositories

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"cashflow-report/internal/models"
)

// ReportFolderLayout names the timestamped folder a report run writes to
const ReportFolderLayout = "output20060102-150405"

// Series file names inside a report folder
const (
	MonthlyBalanceFile       = "monthly_balance.csv"
	MonthlyIncomeExpenseFile = "monthly_income_expense.csv"
	YearlyIncomeFile         = "yearly_income.csv"
	YearlyExpensesFile       = "yearly_expenses.csv"
	QuarterlyIncomeFile      = "quarterly_income.csv"
	QuarterlyExpensesFile    = "quarterly_expenses.csv"
	ReportJSONFile           = "report.json"
)

type fileReportRepository struct {
	baseDir string
	now     func() time.Time
}

// NewFileReportRepository writes every report series as its own CSV file
// below baseDir, for plotting with external tools
func NewFileReportRepository(baseDir string) ReportRepositoryInterface {
	return &fileReportRepository{baseDir: baseDir, now: time.Now}
}

func (r *fileReportRepository) Save(report *models.Report) (string, error) {
	dir := filepath.Join(r.baseDir, r.now().Format(ReportFolderLayout))
	if report.Year != 0 {
		dir = filepath.Join(dir, fmt.Sprintf("%d", report.Year))
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create report folder %q: %w", dir, err)
	}

	files := []struct {
		name  string
		write func(io.Writer) error
	}{
		{MonthlyBalanceFile, func(w io.Writer) error { return WriteBalanceSeries(w, report.MonthlyBalance) }},
		{MonthlyIncomeExpenseFile, func(w io.Writer) error { return WriteIncomeExpenseSeries(w, report.MonthlyIncomeExpense) }},
		{YearlyIncomeFile, func(w io.Writer) error { return WriteCashflowSeries(w, report.YearlyIncome) }},
		{YearlyExpensesFile, func(w io.Writer) error { return WriteCashflowSeries(w, report.YearlyExpenses) }},
		{QuarterlyIncomeFile, func(w io.Writer) error { return WriteCashflowSeries(w, report.QuarterlyIncome) }},
		{QuarterlyExpensesFile, func(w io.Writer) error { return WriteCashflowSeries(w, report.QuarterlyExpenses) }},
		{ReportJSONFile, func(w io.Writer) error { return WriteReportJSON(w, report) }},
	}

	for _, file := range files {
		if err := writeFile(filepath.Join(dir, file.name), file.write); err != nil {
			return "", err
		}
	}

	return dir, nil
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file %q: %w", path, err)
	}
	defer f.Close()

	if err := write(f); err != nil {
		return fmt.Errorf("failed to write output file %q: %w", path, err)
	}
	return f.Close()
}

// WriteBalanceSeries writes one date,balance row per month
func WriteBalanceSeries(out io.Writer, series []models.BalancePoint) error {
	writer := csv.NewWriter(out)

	if err := writer.Write([]string{"date", "balance"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, point := range series {
		if err := writer.Write([]string{point.Date.Format(models.DateLayout), point.Balance.StringFixed(2)}); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// WriteIncomeExpenseSeries writes one month,income,expense row per month
func WriteIncomeExpenseSeries(out io.Writer, series []models.IncomeExpense) error {
	writer := csv.NewWriter(out)

	if err := writer.Write([]string{"month", "income", "expense"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, bucket := range series {
		row := []string{
			bucket.Month.Format("2006-01"),
			bucket.Income.StringFixed(2),
			bucket.Expense.StringFixed(2),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// WriteCashflowSeries writes a period column followed by one column per
// category seen in any period; missing categories are written as 0.00
func WriteCashflowSeries(out io.Writer, series []models.CategoricalCashflow) error {
	writer := csv.NewWriter(out)
	categories := models.CashflowCategories(series)

	header := append([]string{"period"}, categories...)
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, bucket := range series {
		row := make([]string, 0, len(header))
		row = append(row, bucket.Key.String())
		for _, category := range categories {
			row = append(row, bucket.Totals[category].StringFixed(2))
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// WriteReportJSON writes the whole report as indented JSON
func WriteReportJSON(out io.Writer, report *models.Report) error {
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(report); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	return nil
}
