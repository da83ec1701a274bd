package repositories

import (
	"io"

	"cashflow-report/internal/models"
)

// RuleRepositoryInterface loads the category rule table
type RuleRepositoryInterface interface {
	Load() (*models.RuleTable, error)
}

// TransactionRepositoryInterface reads and writes the transaction export file
type TransactionRepositoryInterface interface {
	// Load returns the stored transactions sorted ascending by date
	Load() ([]models.Transaction, error)
	Save(transactions []models.Transaction) error
}

// StatementParserInterface turns a bank statement into uncategorized
// transactions in chronological order
type StatementParserInterface interface {
	Parse(r io.Reader) ([]models.Transaction, error)
}

// ReportRepositoryInterface stores the series of a generated report
type ReportRepositoryInterface interface {
	// Save writes the report and returns the folder it was written to
	Save(report *models.Report) (string, error)
}
