package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the day-precision layout used by the bank and the export file
const DateLayout = "02.01.2006"

var (
	ErrInvalidDate   = errors.New("invalid transaction date")
	ErrInvalidAmount = errors.New("invalid transaction amount")
)

// Transaction represents one ledger entry of a bank account.
//
// Values are built once by an ingestion adapter and never mutated afterwards;
// categorization returns a copy.
type Transaction struct {
	Date      time.Time       `json:"date"`
	AccountID string          `json:"account_id"`
	Amount    decimal.Decimal `json:"amount"`
	Category  string          `json:"category"`
	Memo      string          `json:"memo"`
}

// NewTransaction builds a transaction truncated to day precision
func NewTransaction(date time.Time, accountID string, amount decimal.Decimal, category, memo string) Transaction {
	return Transaction{
		Date:      DateOnly(date),
		AccountID: accountID,
		Amount:    amount,
		Category:  category,
		Memo:      memo,
	}
}

// ParseTransaction builds a transaction from its textual fields. The amount
// must already be in canonical decimal form ("-1234.56").
func ParseTransaction(date, accountID, amount, category, memo string) (Transaction, error) {
	d, err := ParseDate(date)
	if err != nil {
		return Transaction{}, err
	}

	a, err := decimal.NewFromString(amount)
	if err != nil {
		return Transaction{}, fmt.Errorf("%w: %q", ErrInvalidAmount, amount)
	}

	return NewTransaction(d, accountID, a, category, memo), nil
}

// ParseDate parses a dd.mm.yyyy date
func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return d, nil
}

// DateOnly strips the clock part and normalizes to UTC
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// WithCategory returns a copy of the transaction carrying the given category
func (t Transaction) WithCategory(category string) Transaction {
	t.Category = category
	return t
}

// IsIncome returns true for credits (strictly positive amounts)
func (t Transaction) IsIncome() bool {
	return t.Amount.IsPositive()
}

// IsExpense returns true for debits
func (t Transaction) IsExpense() bool {
	return t.Amount.IsNegative()
}

// IsCategorized reports whether a rule assigned a category
func (t Transaction) IsCategorized() bool {
	return t.Category != ""
}

// CategoryLabel returns the category, or the uncategorized label when empty
func (t Transaction) CategoryLabel() string {
	if t.Category == "" {
		return CategoryUncategorized
	}
	return t.Category
}

// FormattedDate renders the date in the export layout
func (t Transaction) FormattedDate() string {
	return t.Date.Format(DateLayout)
}

func (t Transaction) String() string {
	return fmt.Sprintf("Transaction: (%s, %s, %s)", t.FormattedDate(), t.AccountID, t.Amount.String())
}

// SumAmounts adds up the amounts of all transactions
func SumAmounts(transactions []Transaction) decimal.Decimal {
	total := decimal.Zero
	for i := range transactions {
		total = total.Add(transactions[i].Amount)
	}
	return total
}
