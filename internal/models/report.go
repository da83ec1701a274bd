package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ReportOptions selects the scope of a report
type ReportOptions struct {
	// Year restricts the report to one calendar year; 0 means the whole history
	Year int
	// SkipFirst drops the first transaction from the income/expense and cash flow series
	SkipFirst bool
}

// Report bundles every aggregated series of one run
type Report struct {
	ID                   uuid.UUID             `json:"id"`
	Year                 int                   `json:"year,omitempty"`
	TransactionCount     int                   `json:"transaction_count"`
	OpeningBalance       decimal.Decimal       `json:"opening_balance"`
	ClosingBalance       decimal.Decimal       `json:"closing_balance"`
	MonthlyBalance       []BalancePoint        `json:"monthly_balance"`
	MonthlyIncomeExpense []IncomeExpense       `json:"monthly_income_expense"`
	YearlyIncome         []CategoricalCashflow `json:"yearly_income"`
	YearlyExpenses       []CategoricalCashflow `json:"yearly_expenses"`
	QuarterlyIncome      []CategoricalCashflow `json:"quarterly_income"`
	QuarterlyExpenses    []CategoricalCashflow `json:"quarterly_expenses"`
	GeneratedAt          time.Time             `json:"generated_at"`
}
