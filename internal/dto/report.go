package dto

import (
	"time"

	"cashflow-report/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ReportQuery selects the scope of every report endpoint
type ReportQuery struct {
	Year      int  `query:"year" validate:"omitempty,min=1900,max=2999"`
	SkipFirst bool `query:"skipFirst"`
}

// Options converts the query to service options
func (q ReportQuery) Options() models.ReportOptions {
	return models.ReportOptions{Year: q.Year, SkipFirst: q.SkipFirst}
}

// CashflowQuery selects a categorical cash flow series
type CashflowQuery struct {
	Year      int    `query:"year" validate:"omitempty,min=1900,max=2999"`
	SkipFirst bool   `query:"skipFirst"`
	Kind      string `query:"kind" validate:"required,cashflow_kind"`
	Bucket    string `query:"bucket" validate:"omitempty,period_bucket"`
}

func (q CashflowQuery) Options() models.ReportOptions {
	return models.ReportOptions{Year: q.Year, SkipFirst: q.SkipFirst}
}

// BucketOrDefault returns the requested bucket, yearly when none was given
func (q CashflowQuery) BucketOrDefault() models.Bucket {
	if q.Bucket == "" {
		return models.BucketYear
	}
	return models.Bucket(q.Bucket)
}

// Amounts are rendered as fixed two-decimal strings

type BalancePointResponse struct {
	Date    string `json:"date"`
	Balance string `json:"balance"`
}

type IncomeExpenseResponse struct {
	Month   string `json:"month"`
	Income  string `json:"income"`
	Expense string `json:"expense"`
	Net     string `json:"net"`
}

type CashflowPeriodResponse struct {
	Period  string            `json:"period"`
	Year    int               `json:"year"`
	Quarter int               `json:"quarter,omitempty"`
	Key     string            `json:"key"`
	Totals  map[string]string `json:"totals"`
	Total   string            `json:"total"`
}

type CashflowResponse struct {
	Kind       string                   `json:"kind"`
	Bucket     string                   `json:"bucket"`
	Categories []string                 `json:"categories"`
	Periods    []CashflowPeriodResponse `json:"periods"`
}

type ReportSummaryResponse struct {
	ID               uuid.UUID `json:"id"`
	Year             int       `json:"year,omitempty"`
	TransactionCount int       `json:"transactionCount"`
	OpeningBalance   string    `json:"openingBalance"`
	ClosingBalance   string    `json:"closingBalance"`
	TotalIncome      string    `json:"totalIncome"`
	TotalExpense     string    `json:"totalExpense"`
	Months           int       `json:"months"`
	From             string    `json:"from"`
	To               string    `json:"to"`
	GeneratedAt      time.Time `json:"generatedAt"`
}

func NewBalanceResponse(series []models.BalancePoint) []BalancePointResponse {
	out := make([]BalancePointResponse, 0, len(series))
	for _, point := range series {
		out = append(out, BalancePointResponse{
			Date:    point.Date.Format(time.DateOnly),
			Balance: point.Balance.StringFixed(2),
		})
	}
	return out
}

func NewIncomeExpenseResponse(series []models.IncomeExpense) []IncomeExpenseResponse {
	out := make([]IncomeExpenseResponse, 0, len(series))
	for _, month := range series {
		out = append(out, IncomeExpenseResponse{
			Month:   month.Month.Format("2006-01"),
			Income:  month.Income.StringFixed(2),
			Expense: month.Expense.StringFixed(2),
			Net:     month.Net().StringFixed(2),
		})
	}
	return out
}

func NewCashflowResponse(kind string, bucket models.Bucket, series []models.CategoricalCashflow) CashflowResponse {
	periods := make([]CashflowPeriodResponse, 0, len(series))
	for _, period := range series {
		totals := make(map[string]string, len(period.Totals))
		for category, amount := range period.Totals {
			totals[category] = amount.StringFixed(2)
		}
		periods = append(periods, CashflowPeriodResponse{
			Period:  period.Key.String(),
			Year:    period.Key.Year,
			Quarter: period.Key.Quarter,
			Key:     period.Key.Value().String(),
			Totals:  totals,
			Total:   period.Total().StringFixed(2),
		})
	}

	return CashflowResponse{
		Kind:       kind,
		Bucket:     string(bucket),
		Categories: models.CashflowCategories(series),
		Periods:    periods,
	}
}

func NewReportSummaryResponse(report *models.Report) ReportSummaryResponse {
	resp := ReportSummaryResponse{
		ID:               report.ID,
		Year:             report.Year,
		TransactionCount: report.TransactionCount,
		OpeningBalance:   report.OpeningBalance.StringFixed(2),
		ClosingBalance:   report.ClosingBalance.StringFixed(2),
		Months:           len(report.MonthlyIncomeExpense),
		GeneratedAt:      report.GeneratedAt,
	}

	income, expense := decimal.Zero, decimal.Zero
	for _, month := range report.MonthlyIncomeExpense {
		income = income.Add(month.Income)
		expense = expense.Add(month.Expense)
	}
	resp.TotalIncome = income.StringFixed(2)
	resp.TotalExpense = expense.StringFixed(2)

	if n := len(report.MonthlyBalance); n > 0 {
		resp.From = report.MonthlyBalance[0].Date.Format(time.DateOnly)
		resp.To = report.MonthlyBalance[n-1].Date.Format(time.DateOnly)
	}
	return resp
}
