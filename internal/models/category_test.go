package models

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRuleTable_InvalidPattern(t *testing.T) {
	_, err := NewRuleTable(nil, []CategoryRule{
		{Category: "Groceries", Pattern: "SPAR|BILLA"},
		{Category: "Broken", Pattern: "(unclosed"},
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidRulePattern)
	assert.Contains(t, err.Error(), "rule 2")
}

func TestRuleTable_FirstMatchWins(t *testing.T) {
	table, err := NewRuleTable(
		[]CategoryRule{
			{Category: "Rent", Pattern: "AT611904300234573201"},
			{Category: "Landlord", Pattern: "AT611904300234573201"},
		},
		[]CategoryRule{
			{Category: "Groceries", Pattern: "BILLA"},
			{Category: "Shopping", Pattern: "BILLA|Amazon"},
		},
	)
	require.NoError(t, err)

	rule, ok := table.MatchAccount("AT611904300234573201")
	require.True(t, ok)
	assert.Equal(t, "Rent", rule.Category)

	rule, ok = table.MatchText("BILLA Filiale 12")
	require.True(t, ok)
	assert.Equal(t, "Groceries", rule.Category)

	_, ok = table.MatchAccount("")
	assert.False(t, ok)

	assert.Equal(t, 4, table.Len())
}

func TestRuleTable_AccessorsReturnCopies(t *testing.T) {
	table, err := NewRuleTable([]CategoryRule{{Category: "Rent", Pattern: "X"}}, []CategoryRule{{Category: "Food", Pattern: "Y"}})
	require.NoError(t, err)

	accounts := table.AccountRules()
	accounts[0].Category = "changed"
	texts := table.TextRules()
	texts[0].Category = "changed"

	assert.Equal(t, "Rent", table.AccountRules()[0].Category)
	assert.Equal(t, "Food", table.TextRules()[0].Category)
}

func TestCategoricalCashflow_Helpers(t *testing.T) {
	series := []CategoricalCashflow{
		{Key: PeriodKey{Year: 2022}, Totals: map[string]decimal.Decimal{
			"Salary": decimal.RequireFromString("1000.00"),
			"Bonus":  decimal.RequireFromString("250.50"),
		}},
		{Key: PeriodKey{Year: 2023}, Totals: map[string]decimal.Decimal{
			"Interest": decimal.RequireFromString("3.10"),
		}},
	}

	assert.Equal(t, []string{"Bonus", "Salary"}, series[0].Categories())
	assert.True(t, decimal.RequireFromString("1250.50").Equal(series[0].Total()))
	assert.Equal(t, []string{"Bonus", "Interest", "Salary"}, CashflowCategories(series))
}

func TestIncomeExpense_Net(t *testing.T) {
	ie := IncomeExpense{
		Month:   time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
		Income:  decimal.RequireFromString("100.00"),
		Expense: decimal.RequireFromString("30.00"),
	}

	assert.True(t, decimal.RequireFromString("70").Equal(ie.Net()))
}
