package models

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// BalancePoint is the balance after the last transaction of a month
type BalancePoint struct {
	Date    time.Time       `json:"date"`
	Balance decimal.Decimal `json:"balance"`
}

// IncomeExpense holds the totals of one calendar month. Expense is a magnitude.
type IncomeExpense struct {
	Month   time.Time       `json:"month"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
}

// Net returns income minus expense
func (ie IncomeExpense) Net() decimal.Decimal {
	return ie.Income.Sub(ie.Expense)
}

// CategoricalCashflow contains the per-category totals of one period
type CategoricalCashflow struct {
	Key    PeriodKey                  `json:"period"`
	Totals map[string]decimal.Decimal `json:"totals"`
}

// Categories returns the category names sorted alphabetically
func (c CategoricalCashflow) Categories() []string {
	categories := make([]string, 0, len(c.Totals))
	for category := range c.Totals {
		categories = append(categories, category)
	}
	sort.Strings(categories)
	return categories
}

// Total sums all category totals of the period
func (c CategoricalCashflow) Total() decimal.Decimal {
	total := decimal.Zero
	for _, amount := range c.Totals {
		total = total.Add(amount)
	}
	return total
}

// CashflowCategories returns every category that appears in any period, sorted
func CashflowCategories(series []CategoricalCashflow) []string {
	seen := make(map[string]struct{})
	for _, period := range series {
		for category := range period.Totals {
			seen[category] = struct{}{}
		}
	}

	categories := make([]string, 0, len(seen))
	for category := range seen {
		categories = append(categories, category)
	}
	sort.Strings(categories)
	return categories
}
