package services

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"cashflow-report/internal/models"

	"github.com/fatih/color"
	"github.com/google/uuid"
)

const (
	ReportStatusSuccess = "success"
	ReportStatusFailed  = "failed"
)

var (
	ErrNoTransactionsInYear = errors.New("no transactions in the selected year")
)

type reportService struct {
	logger  *slog.Logger
	metrics MetricsRecorderInterface
}

func NewReportService(logger *slog.Logger, metrics MetricsRecorderInterface) ReportServiceInterface {
	if logger == nil {
		logger = slog.Default()
	}
	if metrics == nil {
		metrics = NoopMetrics{}
	}
	return &reportService{
		logger:  logger,
		metrics: metrics,
	}
}

// scope applies the year filter; a year-scoped sequence always starts with
// the opening balance entry, which the flow series must skip
func (s *reportService) scope(transactions []models.Transaction, opts models.ReportOptions) ([]models.Transaction, bool, error) {
	if opts.Year == 0 {
		return transactions, opts.SkipFirst, nil
	}

	scoped := ScopeToYear(transactions, opts.Year)
	if len(scoped) == 1 {
		return nil, false, fmt.Errorf("%w: %d", ErrNoTransactionsInYear, opts.Year)
	}
	return scoped, true, nil
}

func (s *reportService) GenerateReport(transactions []models.Transaction, opts models.ReportOptions) (*models.Report, error) {
	start := time.Now()

	report, err := s.generate(transactions, opts)
	if err != nil {
		s.metrics.RecordReport(ReportStatusFailed, time.Since(start))
		s.logger.Error("failed to generate report",
			"year", opts.Year,
			"transaction_count", len(transactions),
			"error", err)
		return nil, err
	}

	s.metrics.RecordReport(ReportStatusSuccess, time.Since(start))
	s.logger.Info("report generated",
		"report_id", report.ID,
		"year", opts.Year,
		"transaction_count", report.TransactionCount,
		"months", len(report.MonthlyBalance),
		"closing_balance", report.ClosingBalance.StringFixed(2))

	return report, nil
}

func (s *reportService) generate(transactions []models.Transaction, opts models.ReportOptions) (*models.Report, error) {
	scoped, skipFirst, err := s.scope(transactions, opts)
	if err != nil {
		return nil, err
	}

	balance, err := MonthlyBalance(scoped)
	if err != nil {
		return nil, fmt.Errorf("monthly balance: %w", err)
	}

	incomeExpense, err := MonthlyIncomeExpense(scoped, skipFirst)
	if err != nil {
		return nil, fmt.Errorf("monthly income and expenses: %w", err)
	}

	report := &models.Report{
		ID:                   uuid.New(),
		Year:                 opts.Year,
		TransactionCount:     len(scoped),
		ClosingBalance:       balance[len(balance)-1].Balance,
		MonthlyBalance:       balance,
		MonthlyIncomeExpense: incomeExpense,
		YearlyIncome:         CategoricalCashflow(scoped, skipFirst, true, models.BucketYear),
		YearlyExpenses:       CategoricalCashflow(scoped, skipFirst, false, models.BucketYear),
		QuarterlyIncome:      CategoricalCashflow(scoped, skipFirst, true, models.BucketQuarter),
		QuarterlyExpenses:    CategoricalCashflow(scoped, skipFirst, false, models.BucketQuarter),
		GeneratedAt:          time.Now().UTC(),
	}
	if opts.Year != 0 {
		report.OpeningBalance = scoped[0].Amount
		report.TransactionCount--
	}

	return report, nil
}

func (s *reportService) MonthlyBalance(transactions []models.Transaction, opts models.ReportOptions) ([]models.BalancePoint, error) {
	scoped, _, err := s.scope(transactions, opts)
	if err != nil {
		return nil, err
	}
	return MonthlyBalance(scoped)
}

func (s *reportService) MonthlyIncomeExpense(transactions []models.Transaction, opts models.ReportOptions) ([]models.IncomeExpense, error) {
	scoped, skipFirst, err := s.scope(transactions, opts)
	if err != nil {
		return nil, err
	}
	return MonthlyIncomeExpense(scoped, skipFirst)
}

func (s *reportService) Cashflow(transactions []models.Transaction, opts models.ReportOptions, wantIncome bool, bucket models.Bucket) ([]models.CategoricalCashflow, error) {
	scoped, skipFirst, err := s.scope(transactions, opts)
	if err != nil {
		return nil, err
	}
	return CategoricalCashflow(scoped, skipFirst, wantIncome, bucket), nil
}

// WriteSummary prints every series of the report bucket by bucket
func (s *reportService) WriteSummary(w io.Writer, report *models.Report) error {
	heading := color.New(color.Bold)
	income := color.New(color.FgGreen)
	expense := color.New(color.FgRed)

	sw := &summaryWriter{w: w}

	if report.Year != 0 {
		sw.printf(heading, "Report %d (opening balance %s)\n\n", report.Year, report.OpeningBalance.StringFixed(2))
	}

	sw.printf(heading, "Monthly balance\n")
	for _, point := range report.MonthlyBalance {
		sw.printf(nil, "  %s  %12s\n", point.Date.Format("2006-01-02"), point.Balance.StringFixed(2))
	}
	sw.printf(nil, "\n")

	sw.printf(heading, "Monthly income and expenses\n")
	for _, month := range report.MonthlyIncomeExpense {
		sw.printf(nil, "  %s  ", month.Month.Format("2006-01"))
		sw.printf(income, "%12s", month.Income.StringFixed(2))
		sw.printf(nil, "  ")
		sw.printf(expense, "%12s", month.Expense.StringFixed(2))
		sw.printf(nil, "\n")
	}
	sw.printf(nil, "\n")

	sections := []struct {
		title  string
		series []models.CategoricalCashflow
		c      *color.Color
	}{
		{"Yearly income", report.YearlyIncome, income},
		{"Yearly expenses", report.YearlyExpenses, expense},
		{"Quarterly income", report.QuarterlyIncome, income},
		{"Quarterly expenses", report.QuarterlyExpenses, expense},
	}
	for _, section := range sections {
		sw.printf(heading, "%s\n", section.title)
		for _, period := range section.series {
			sw.printf(nil, "%s\n", period.Key)
			for _, category := range period.Categories() {
				sw.printf(nil, "  %-24s ", category)
				sw.printf(section.c, "%12s", period.Totals[category].StringFixed(2))
				sw.printf(nil, "\n")
			}
		}
		sw.printf(nil, "\n")
	}

	return sw.err
}

// summaryWriter keeps the first write error so the printing code stays linear
type summaryWriter struct {
	w   io.Writer
	err error
}

func (sw *summaryWriter) printf(c *color.Color, format string, args ...interface{}) {
	if sw.err != nil {
		return
	}
	if c == nil {
		_, sw.err = fmt.Fprintf(sw.w, format, args...)
		return
	}
	_, sw.err = c.Fprintf(sw.w, format, args...)
}
