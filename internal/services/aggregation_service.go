package services

import (
	"errors"
	"time"

	"cashflow-report/internal/models"

	"github.com/shopspring/decimal"
)

// The folds below expect transactions in non-decreasing date order. They
// never sort and never check: a bucket is emitted as soon as the period of
// the current transaction differs from the previous one and is not reopened.

// OpeningBalanceMemo marks the pseudo entry added by ScopeToYear
const OpeningBalanceMemo = "Opening balance"

var (
	ErrEmptyTransactions = errors.New("at least one transaction is required")
)

// MonthlyBalance returns the running balance after the last transaction of
// every month
func MonthlyBalance(transactions []models.Transaction) ([]models.BalancePoint, error) {
	if len(transactions) == 0 {
		return nil, ErrEmptyTransactions
	}

	series := make([]models.BalancePoint, 0)
	balance := decimal.Zero
	var last *models.BalancePoint

	for i := range transactions {
		txn := &transactions[i]
		if last != nil && !models.SameMonth(last.Date, txn.Date) {
			series = append(series, *last)
		}
		balance = balance.Add(txn.Amount)
		last = &models.BalancePoint{Date: txn.Date, Balance: balance}
	}

	series = append(series, *last)
	return series, nil
}

// MonthlyIncomeExpense returns income and expense magnitude per month. With
// skipFirst the first transaction, usually an opening balance, is ignored.
func MonthlyIncomeExpense(transactions []models.Transaction, skipFirst bool) ([]models.IncomeExpense, error) {
	if skipFirst && len(transactions) > 0 {
		transactions = transactions[1:]
	}
	if len(transactions) == 0 {
		return nil, ErrEmptyTransactions
	}

	series := make([]models.IncomeExpense, 0)
	income, expense := decimal.Zero, decimal.Zero
	lastDate := transactions[0].Date

	for i := range transactions {
		txn := &transactions[i]
		if i > 0 && !models.SameMonth(lastDate, txn.Date) {
			series = append(series, models.IncomeExpense{
				Month:   models.FirstOfMonth(lastDate),
				Income:  income,
				Expense: expense,
			})
			income, expense = decimal.Zero, decimal.Zero
		}

		if txn.Amount.IsNegative() {
			expense = expense.Add(txn.Amount.Neg())
		} else {
			income = income.Add(txn.Amount)
		}
		lastDate = txn.Date
	}

	series = append(series, models.IncomeExpense{
		Month:   models.FirstOfMonth(lastDate),
		Income:  income,
		Expense: expense,
	})
	return series, nil
}

// CategoricalCashflow sums income (wantIncome) or expense magnitudes per
// category and period. Empty input yields an empty series; otherwise the last
// period is always emitted, even when no transaction in it had the wanted sign.
func CategoricalCashflow(transactions []models.Transaction, skipFirst, wantIncome bool, bucket models.Bucket) []models.CategoricalCashflow {
	series := make([]models.CategoricalCashflow, 0)
	if skipFirst && len(transactions) > 0 {
		transactions = transactions[1:]
	}
	if len(transactions) == 0 {
		return series
	}

	totals := make(map[string]decimal.Decimal)
	lastKey := models.PeriodKeyOf(transactions[0].Date, bucket)

	for i := range transactions {
		txn := &transactions[i]
		key := models.PeriodKeyOf(txn.Date, bucket)
		if key != lastKey {
			series = append(series, models.CategoricalCashflow{Key: lastKey, Totals: totals})
			totals = make(map[string]decimal.Decimal)
		}

		if (wantIncome && txn.IsIncome()) || (!wantIncome && txn.IsExpense()) {
			category := txn.CategoryLabel()
			totals[category] = totals[category].Add(txn.Amount.Abs())
		}
		lastKey = key
	}

	series = append(series, models.CategoricalCashflow{Key: lastKey, Totals: totals})
	return series
}

// ScopeToYear keeps the transactions of one calendar year and prepends an
// opening balance entry dated 1 January holding the sum of everything before
func ScopeToYear(transactions []models.Transaction, year int) []models.Transaction {
	opening := decimal.Zero
	scoped := make([]models.Transaction, 1, len(transactions)+1)

	for i := range transactions {
		txn := transactions[i]
		switch {
		case txn.Date.Year() < year:
			opening = opening.Add(txn.Amount)
		case txn.Date.Year() == year:
			scoped = append(scoped, txn)
		}
	}

	scoped[0] = models.Transaction{
		Date:   time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC),
		Amount: opening,
		Memo:   OpeningBalanceMemo,
	}
	return scoped
}
