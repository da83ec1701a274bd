package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"cashflow-report/internal/dto"
	apperrors "cashflow-report/internal/errors"
	"cashflow-report/internal/models"
	"cashflow-report/internal/repositories/repository_mocks"
	"cashflow-report/internal/services"
	"cashflow-report/internal/services/service_mocks"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/go-playground/validator/v10"
	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type ReportHandlerTestSuite struct {
	suite.Suite
	echo                *echo.Echo
	ctrl                *gomock.Controller
	mockTransactionRepo *repository_mocks.MockTransactionRepositoryInterface
	handler             *ReportHandler
	history             []models.Transaction
}

func TestReportHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReportHandlerTestSuite))
}

func (s *ReportHandlerTestSuite) SetupTest() {
	s.echo = echo.New()
	s.echo.Validator = NewValidator()
	s.ctrl = gomock.NewController(s.T())
	s.mockTransactionRepo = repository_mocks.NewMockTransactionRepositoryInterface(s.ctrl)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.handler = NewReportHandler(s.mockTransactionRepo, services.NewReportService(logger, nil), logger)

	s.history = []models.Transaction{
		txn(2022, time.November, 3, "1000", "Salary"),
		txn(2022, time.December, 1, "-400", "Rent"),
		txn(2023, time.January, 2, "100", "Salary"),
		txn(2023, time.January, 15, "-30", "Groceries"),
		txn(2023, time.April, 20, "-20", "Groceries"),
	}
}

func (s *ReportHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func txn(year int, month time.Month, day int, amount, category string) models.Transaction {
	return models.NewTransaction(
		time.Date(year, month, day, 0, 0, 0, 0, time.UTC),
		"",
		decimal.RequireFromString(amount),
		category,
		gofakeit.Sentence(3),
	)
}

func (s *ReportHandlerTestSuite) request(query string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/reports?"+query, nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.Set(TraceIDContextKey, "test-trace-id")
	return c, rec
}

func (s *ReportHandlerTestSuite) decodeData(rec *httptest.ResponseRecorder, out interface{}) {
	var body struct {
		Data json.RawMessage `json:"data"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Require().NoError(json.Unmarshal(body.Data, out))
}

func (s *ReportHandlerTestSuite) TestMonthlyBalance_WholeHistory() {
	s.mockTransactionRepo.EXPECT().Load().Return(s.history, nil)
	c, rec := s.request("")

	s.Require().NoError(s.handler.MonthlyBalance(c))
	s.Equal(http.StatusOK, rec.Code)

	var points []dto.BalancePointResponse
	s.decodeData(rec, &points)
	s.Require().Len(points, 4)
	s.Equal(dto.BalancePointResponse{Date: "2022-11-03", Balance: "1000.00"}, points[0])
	s.Equal(dto.BalancePointResponse{Date: "2023-04-20", Balance: "650.00"}, points[3])
}

func (s *ReportHandlerTestSuite) TestMonthlyIncomeExpense_YearScope() {
	s.mockTransactionRepo.EXPECT().Load().Return(s.history, nil)
	c, rec := s.request("year=2023")

	s.Require().NoError(s.handler.MonthlyIncomeExpense(c))
	s.Equal(http.StatusOK, rec.Code)

	var months []dto.IncomeExpenseResponse
	s.decodeData(rec, &months)
	s.Require().Len(months, 2)
	s.Equal(dto.IncomeExpenseResponse{Month: "2023-01", Income: "100.00", Expense: "30.00", Net: "70.00"}, months[0])
	s.Equal("20.00", months[1].Expense)
}

func (s *ReportHandlerTestSuite) TestCashflow_QuarterlyExpenses() {
	s.mockTransactionRepo.EXPECT().Load().Return(s.history, nil)
	c, rec := s.request("kind=expense&bucket=quarter")

	s.Require().NoError(s.handler.Cashflow(c))
	s.Equal(http.StatusOK, rec.Code)

	var resp dto.CashflowResponse
	s.decodeData(rec, &resp)
	s.Equal("expense", resp.Kind)
	s.Equal("quarter", resp.Bucket)
	s.Equal([]string{"Groceries", "Rent"}, resp.Categories)
	s.Require().Len(resp.Periods, 3)
	s.Equal("2022-Q4", resp.Periods[0].Period)
	s.Equal("400.00", resp.Periods[0].Totals["Rent"])
	s.Equal(2023, resp.Periods[2].Year)
	s.Equal(2, resp.Periods[2].Quarter)
}

func (s *ReportHandlerTestSuite) TestCashflow_DefaultsToYearlyBuckets() {
	s.mockTransactionRepo.EXPECT().Load().Return(s.history, nil)
	c, rec := s.request("kind=income")

	s.Require().NoError(s.handler.Cashflow(c))

	var resp dto.CashflowResponse
	s.decodeData(rec, &resp)
	s.Equal("year", resp.Bucket)
	s.Require().Len(resp.Periods, 2)
	s.Equal("1000.00", resp.Periods[0].Totals["Salary"])
	s.Equal("2023", resp.Periods[1].Key)
}

func (s *ReportHandlerTestSuite) TestCashflow_InvalidQuery() {
	testCases := []struct {
		name  string
		query string
		field string
		tag   string
	}{
		{"missing kind", "bucket=year", "kind", "required"},
		{"unknown kind", "kind=savings", "kind", "cashflow_kind"},
		{"unknown bucket", "kind=income&bucket=month", "bucket", "period_bucket"},
		{"year out of range", "kind=income&year=12", "year", "min"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			c, _ := s.request(tc.query)

			err := s.handler.Cashflow(c)

			var validationErrs validator.ValidationErrors
			s.Require().True(errors.As(err, &validationErrs))
			s.Equal(tc.field, validationErrs[0].Field())
			s.Equal(tc.tag, validationErrs[0].Tag())
		})
	}
}

func (s *ReportHandlerTestSuite) TestSummary_MalformedYear() {
	c, rec := s.request("year=abc")

	s.Require().NoError(s.handler.Summary(c))
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Contains(rec.Body.String(), "VALIDATION_003")
}

func (s *ReportHandlerTestSuite) TestSummary_Success() {
	s.mockTransactionRepo.EXPECT().Load().Return(s.history, nil)
	c, rec := s.request("year=2023")

	s.Require().NoError(s.handler.Summary(c))
	s.Equal(http.StatusOK, rec.Code)

	var summary dto.ReportSummaryResponse
	s.decodeData(rec, &summary)
	s.Equal(2023, summary.Year)
	s.Equal(3, summary.TransactionCount)
	s.Equal("600.00", summary.OpeningBalance)
	s.Equal("650.00", summary.ClosingBalance)
	s.Equal("100.00", summary.TotalIncome)
	s.Equal("50.00", summary.TotalExpense)
}

func (s *ReportHandlerTestSuite) TestSummary_ErrorMapping() {
	testCases := []struct {
		name         string
		transactions []models.Transaction
		loadErr      error
		query        string
		status       int
		code         string
	}{
		{"export unreadable", nil, errors.New("open transactions.csv: no such file"), "", http.StatusServiceUnavailable, "REPORT_003"},
		{"empty export", []models.Transaction{}, nil, "", http.StatusUnprocessableEntity, "REPORT_001"},
		{"year without data", s.history, nil, "year=2019", http.StatusNotFound, "REPORT_002"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.mockTransactionRepo.EXPECT().Load().Return(tc.transactions, tc.loadErr)
			c, rec := s.request(tc.query)

			s.Require().NoError(s.handler.Summary(c))
			s.Equal(tc.status, rec.Code)
			s.Contains(rec.Body.String(), tc.code)
			s.Contains(rec.Body.String(), "test-trace-id")
		})
	}
}

func (s *ReportHandlerTestSuite) TestCashflow_LoadErrorHidesCause() {
	s.mockTransactionRepo.EXPECT().Load().Return(nil, errors.New("open /srv/data/transactions.csv: permission denied"))
	c, rec := s.request("kind=income")

	s.Require().NoError(s.handler.Cashflow(c))
	s.Equal(http.StatusServiceUnavailable, rec.Code)

	var body apperrors.ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Equal("REPORT_003", body.Error.Code)
	s.Equal("test-trace-id", body.Error.TraceID)
	s.Empty(body.Error.Details)
	s.NotContains(rec.Body.String(), "permission denied")
}

func (s *ReportHandlerTestSuite) TestSummary_UnexpectedServiceError() {
	mockReportService := service_mocks.NewMockReportServiceInterface(s.ctrl)
	handler := NewReportHandler(s.mockTransactionRepo, mockReportService, nil)

	s.mockTransactionRepo.EXPECT().Load().Return(s.history, nil)
	mockReportService.EXPECT().
		GenerateReport(s.history, models.ReportOptions{SkipFirst: true}).
		Return(nil, fmt.Errorf("boom"))

	c, rec := s.request("skipFirst=true")

	s.Require().NoError(handler.Summary(c))
	s.Equal(http.StatusInternalServerError, rec.Code)
	s.Contains(rec.Body.String(), "SYSTEM_001")
	s.Contains(rec.Body.String(), "test-trace-id")
	s.NotContains(rec.Body.String(), "boom")
}

func (s *ReportHandlerTestSuite) TestRegisterRoutes() {
	s.handler.RegisterRoutes(s.echo.Group("/api/v1/reports"))

	paths := map[string]bool{}
	for _, route := range s.echo.Routes() {
		paths[route.Path] = true
	}
	s.True(paths["/api/v1/reports/summary"])
	s.True(paths["/api/v1/reports/monthly-balance"])
	s.True(paths["/api/v1/reports/monthly-income-expense"])
	s.True(paths["/api/v1/reports/cashflow"])
}
