package services

import (
	"fmt"
	"io"
	"log/slog"

	"cashflow-report/internal/models"
	"cashflow-report/internal/repositories"
)

// Import sources, used as metric labels
const (
	ImportSourceStatement = "statement"
	ImportSourceScraper   = "scraper"
	ImportSourceSample    = "sample"
)

type importService struct {
	parser     repositories.StatementParserInterface
	categories CategoryServiceInterface
	repo       repositories.TransactionRepositoryInterface
	logger     *slog.Logger
	metrics    MetricsRecorderInterface
}

// NewImportService wires a statement parser and the categorizer to the export file
func NewImportService(
	parser repositories.StatementParserInterface,
	categories CategoryServiceInterface,
	repo repositories.TransactionRepositoryInterface,
	logger *slog.Logger,
	metrics MetricsRecorderInterface,
) ImportServiceInterface {
	if logger == nil {
		logger = slog.Default()
	}
	if metrics == nil {
		metrics = NoopMetrics{}
	}
	return &importService{
		parser:     parser,
		categories: categories,
		repo:       repo,
		logger:     logger,
		metrics:    metrics,
	}
}

// ImportStatement parses a bank statement and stores it categorized
func (s *importService) ImportStatement(r io.Reader) ([]models.Transaction, error) {
	transactions, err := s.parser.Parse(r)
	if err != nil {
		s.logger.Error("failed to parse statement", "error", err)
		return nil, fmt.Errorf("failed to parse statement: %w", err)
	}

	return s.Import(ImportSourceStatement, transactions)
}

// Import categorizes chronologically ordered transactions and replaces the
// export file with them
func (s *importService) Import(source string, transactions []models.Transaction) ([]models.Transaction, error) {
	s.logger.Info("importing transactions",
		"source", source,
		"count", len(transactions))

	categorized := s.categories.BatchCategorize(transactions)

	uncategorized := 0
	for i := range categorized {
		if !categorized[i].IsCategorized() {
			uncategorized++
			s.logger.Debug("transaction not categorized",
				"date", categorized[i].FormattedDate(),
				"account_id", categorized[i].AccountID,
				"memo", categorized[i].Memo)
		}
	}

	if err := s.repo.Save(categorized); err != nil {
		s.logger.Error("failed to save transactions",
			"source", source,
			"error", err)
		return nil, fmt.Errorf("failed to save transactions: %w", err)
	}
	s.metrics.RecordTransactionsImported(source, len(categorized))

	s.logger.Info("saved transactions to export file",
		"source", source,
		"count", len(categorized),
		"uncategorized", uncategorized)

	return categorized, nil
}
