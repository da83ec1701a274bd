package handlers

import (
	stderrors "errors"
	"log/slog"
	"net/http"

	"cashflow-report/internal/dto"
	"cashflow-report/internal/errors"
	"cashflow-report/internal/models"
	"cashflow-report/internal/repositories"
	"cashflow-report/internal/services"
	"cashflow-report/internal/validation"

	"github.com/labstack/echo/v4"
)

// ReportHandler serves the aggregated series of the transaction export
type ReportHandler struct {
	transactionRepo repositories.TransactionRepositoryInterface
	reportService   services.ReportServiceInterface
	logger          *slog.Logger
}

// NewReportHandler creates a new report handler
func NewReportHandler(
	transactionRepo repositories.TransactionRepositoryInterface,
	reportService services.ReportServiceInterface,
	logger *slog.Logger,
) *ReportHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ReportHandler{
		transactionRepo: transactionRepo,
		reportService:   reportService,
		logger:          logger,
	}
}

// RegisterRoutes mounts the report endpoints on g
func (h *ReportHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/summary", h.Summary)
	g.GET("/monthly-balance", h.MonthlyBalance)
	g.GET("/monthly-income-expense", h.MonthlyIncomeExpense)
	g.GET("/cashflow", h.Cashflow)
}

// Summary generates a full report and returns its headline figures
// @Summary Report summary
// @Tags Reports
// @Produce json
// @Param year query int false "Restrict to one calendar year"
// @Param skipFirst query bool false "Skip the first transaction in the flow series"
// @Success 200 {object} dto.ReportSummaryResponse
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid parameters"
// @Failure 404 {object} errors.ErrorResponse "REPORT_002 - No transactions in the selected year"
// @Failure 422 {object} errors.ErrorResponse "REPORT_001 - No transactions to aggregate"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Unexpected failure"
// @Failure 503 {object} errors.ErrorResponse "REPORT_003 - Transaction export could not be read"
// @Router /reports/summary [get]
func (h *ReportHandler) Summary(c echo.Context) error {
	var query dto.ReportQuery
	if err := c.Bind(&query); err != nil {
		return sendBindError(c)
	}
	if err := c.Validate(&query); err != nil {
		return err
	}

	transactions, err := h.transactionRepo.Load()
	if err != nil {
		return h.sendLoadError(c, err)
	}

	report, err := h.reportService.GenerateReport(transactions, query.Options())
	if err != nil {
		return h.sendReportError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: dto.NewReportSummaryResponse(report)})
}

// MonthlyBalance returns the balance at the end of every month
// @Summary Monthly balance
// @Tags Reports
// @Produce json
// @Param year query int false "Restrict to one calendar year"
// @Success 200 {array} dto.BalancePointResponse
// @Router /reports/monthly-balance [get]
func (h *ReportHandler) MonthlyBalance(c echo.Context) error {
	var query dto.ReportQuery
	if err := c.Bind(&query); err != nil {
		return sendBindError(c)
	}
	if err := c.Validate(&query); err != nil {
		return err
	}

	transactions, err := h.transactionRepo.Load()
	if err != nil {
		return h.sendLoadError(c, err)
	}

	series, err := h.reportService.MonthlyBalance(transactions, query.Options())
	if err != nil {
		return h.sendReportError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: dto.NewBalanceResponse(series),
		Meta: map[string]int{"count": len(series)},
	})
}

// MonthlyIncomeExpense returns income and expense totals per month
// @Summary Monthly income and expenses
// @Tags Reports
// @Produce json
// @Param year query int false "Restrict to one calendar year"
// @Param skipFirst query bool false "Skip the first transaction"
// @Success 200 {array} dto.IncomeExpenseResponse
// @Router /reports/monthly-income-expense [get]
func (h *ReportHandler) MonthlyIncomeExpense(c echo.Context) error {
	var query dto.ReportQuery
	if err := c.Bind(&query); err != nil {
		return sendBindError(c)
	}
	if err := c.Validate(&query); err != nil {
		return err
	}

	transactions, err := h.transactionRepo.Load()
	if err != nil {
		return h.sendLoadError(c, err)
	}

	series, err := h.reportService.MonthlyIncomeExpense(transactions, query.Options())
	if err != nil {
		return h.sendReportError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: dto.NewIncomeExpenseResponse(series),
		Meta: map[string]int{"count": len(series)},
	})
}

// Cashflow returns income or expense totals per category and period
// @Summary Categorical cash flow
// @Tags Reports
// @Produce json
// @Param kind query string true "income or expense"
// @Param bucket query string false "year (default) or quarter"
// @Param year query int false "Restrict to one calendar year"
// @Param skipFirst query bool false "Skip the first transaction"
// @Success 200 {object} dto.CashflowResponse
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_005 - Invalid bucket or VALIDATION_006 - Invalid kind"
// @Router /reports/cashflow [get]
func (h *ReportHandler) Cashflow(c echo.Context) error {
	var query dto.CashflowQuery
	if err := c.Bind(&query); err != nil {
		return sendBindError(c)
	}
	if err := c.Validate(&query); err != nil {
		return err
	}

	transactions, err := h.transactionRepo.Load()
	if err != nil {
		return h.sendLoadError(c, err)
	}

	bucket := query.BucketOrDefault()
	series, err := h.reportService.Cashflow(transactions, query.Options(), query.Kind == validation.KindIncome, bucket)
	if err != nil {
		return h.sendReportError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: dto.NewCashflowResponse(query.Kind, bucket, series)})
}

// sendBindError answers query parameters of the wrong type, e.g. year=abc
func sendBindError(c echo.Context) error {
	return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("query parameters could not be parsed"))
}

func (h *ReportHandler) sendLoadError(c echo.Context, err error) error {
	errorResponse, cause := errors.WrapDataError(err, getTraceIDFromContext(c))
	h.logger.Error("failed to load transactions",
		"trace_id", errorResponse.Error.TraceID,
		"client_ip", getClientIP(c),
		"error", cause)
	return c.JSON(errorResponse.GetHTTPStatus(), errorResponse)
}

func (h *ReportHandler) sendReportError(c echo.Context, err error) error {
	switch {
	case stderrors.Is(err, services.ErrEmptyTransactions):
		return SendError(c, errors.ReportNoTransactions)
	case stderrors.Is(err, services.ErrNoTransactionsInYear):
		return SendError(c, errors.ReportEmptyYear, errors.WithDetails(err.Error()))
	case stderrors.Is(err, models.ErrInvalidBucket):
		return SendError(c, errors.ValidationInvalidBucket)
	default:
		h.logger.Error("report generation failed",
			"trace_id", getTraceIDFromContext(c),
			"path", c.Path(),
			"error", err)
		return SendSystemError(c, err)
	}
}
