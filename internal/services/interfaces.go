package services

import (
	"io"
	"time"

	"cashflow-report/internal/models"
)

// CategoryServiceInterface defines the interface for transaction categorization operations
type CategoryServiceInterface interface {
	// Categorize returns the category for an account identifier and memo, "" when no rule matches
	Categorize(accountID, memo string) string

	// CategorizeTransaction returns a categorized copy of txn and how the category was found
	CategorizeTransaction(txn models.Transaction) (models.Transaction, *models.CategorizationResult)

	// BatchCategorize categorizes multiple transactions, keeping their order
	BatchCategorize(transactions []models.Transaction) []models.Transaction

	// Rules returns the rule table in use
	Rules() *models.RuleTable
}

// ReportServiceInterface builds the aggregated series of a date-ordered transaction sequence
type ReportServiceInterface interface {
	GenerateReport(transactions []models.Transaction, opts models.ReportOptions) (*models.Report, error)
	MonthlyBalance(transactions []models.Transaction, opts models.ReportOptions) ([]models.BalancePoint, error)
	MonthlyIncomeExpense(transactions []models.Transaction, opts models.ReportOptions) ([]models.IncomeExpense, error)
	Cashflow(transactions []models.Transaction, opts models.ReportOptions, wantIncome bool, bucket models.Bucket) ([]models.CategoricalCashflow, error)
	WriteSummary(w io.Writer, report *models.Report) error
}

// ImportServiceInterface turns raw bank data into the categorized export file
type ImportServiceInterface interface {
	ImportStatement(r io.Reader) ([]models.Transaction, error)
	Import(source string, transactions []models.Transaction) ([]models.Transaction, error)
}

// MetricsRecorderInterface records operational metrics
type MetricsRecorderInterface interface {
	RecordCategorization(method string)
	RecordTransactionsImported(source string, count int)
	RecordReport(status string, duration time.Duration)
}
