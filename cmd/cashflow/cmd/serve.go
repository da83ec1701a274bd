package cmd

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cashflow-report/internal/handlers"
	"cashflow-report/internal/middleware"
	"cashflow-report/internal/repositories"
	"cashflow-report/internal/services"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 30 * time.Second

// serveCmd represents the serve command.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the reports over HTTP",
	Long: `Start a read-only JSON API over the transaction export.

Endpoints:
  GET /health
  GET /metrics
  GET /api/v1/reports/summary
  GET /api/v1/reports/monthly-balance
  GET /api/v1/reports/monthly-income-expense
  GET /api/v1/reports/cashflow?kind=income|expense&bucket=year|quarter

Every report endpoint accepts year and skipFirst.

Example:
  cashflow serve
  SERVER_PORT=9000 cashflow serve --export data/transactions.csv`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func runServe(cmd *cobra.Command, args []string) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	e := newServer(ctx)
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	go func() {
		logger.Info("Starting report server", "address", cfg.Server.Address(), "export", cfg.Data.ExportPath)
		if err := e.Start(cfg.Server.Address()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			exitOnError(err, "server error")
		}
	}()

	<-ctx.Done()
	logger.Info("Shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}
	logger.Info("Server stopped gracefully")
}

// newServer wires the report API; the rate limiter cleanup stops with ctx
func newServer(ctx context.Context) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler
	e.Validator = handlers.NewValidator()

	limiter := middleware.NewRateLimiter(float64(cfg.Server.RateLimitPerSecond), cfg.Server.RateLimitBurst)
	go limiter.Run(ctx)

	e.Use(middleware.RequestID())
	e.Use(middleware.RequestLogger(logger))
	e.Use(middleware.PanicRecovery(logger))
	e.Use(middleware.SecurityHeaders())
	e.Use(middleware.CORS(cfg.Server.CORSAllowOrigins))

	metrics := services.NewReportMetrics(prometheus.DefaultRegisterer)
	reportHandler := handlers.NewReportHandler(
		repositories.NewFileTransactionRepository(cfg.Data.ExportPath),
		services.NewReportService(logger, metrics),
		logger,
	)

	e.GET("/health", handlers.NewHealthCheckHandler(cfg.Data.ExportPath).HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	reportHandler.RegisterRoutes(e.Group("/api/v1/reports", limiter.Middleware()))

	return e
}
