// Package scraper collects transactions from the easybank online banking
// pages with a headless Chrome.
package scraper

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"cashflow-report/internal/models"
)

var (
	ErrMissingCredentials = errors.New("username and password are required")
	ErrMalformedRow       = errors.New("malformed transaction row")
)

// Cell positions in the transactions table
const (
	dateCell   = 1
	memoCell   = 3
	amountCell = 9
	minCells   = 10
)

type Config struct {
	LoginURL string
	User     string
	Password string
	Headless bool
	Timeout  time.Duration
	MaxPages int
}

// browser is the part of the banking site the scraper drives
type browser interface {
	Login(ctx context.Context, user, password string) error
	OpenTransactions(ctx context.Context) error
	// Rows returns the cell texts of every row on the current page
	Rows(ctx context.Context) ([][]string, error)
	// NextPage follows the "next" link and reports false when there is none
	// or it is disabled
	NextPage(ctx context.Context) (bool, error)
}

type Scraper struct {
	cfg    Config
	logger *slog.Logger
}

func New(cfg Config, logger *slog.Logger) *Scraper {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.MaxPages <= 0 {
		cfg.MaxPages = 100
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 2 * time.Minute
	}
	return &Scraper{cfg: cfg, logger: logger}
}

// Scrape logs in, walks every page of the transaction list and returns the
// uncategorized transactions oldest first
func (s *Scraper) Scrape(ctx context.Context) ([]models.Transaction, error) {
	if s.cfg.User == "" || s.cfg.Password == "" {
		return nil, ErrMissingCredentials
	}

	ctx, cancel := context.WithTimeout(ctx, s.cfg.Timeout)
	defer cancel()

	b, closeBrowser := newChromeBrowser(ctx, s.cfg.LoginURL, s.cfg.Headless)
	defer closeBrowser()

	return s.collect(ctx, b)
}

func (s *Scraper) collect(ctx context.Context, b browser) ([]models.Transaction, error) {
	if err := b.Login(ctx, s.cfg.User, s.cfg.Password); err != nil {
		return nil, fmt.Errorf("failed to log in: %w", err)
	}
	s.logger.Info("tried to log in")

	if err := b.OpenTransactions(ctx); err != nil {
		return nil, fmt.Errorf("failed to open transactions page: %w", err)
	}

	var transactions []models.Transaction
	for page := 1; ; page++ {
		rows, err := b.Rows(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to read page %d: %w", page, err)
		}

		parsed, err := ParseRows(rows)
		if err != nil {
			return nil, fmt.Errorf("page %d: %w", page, err)
		}
		transactions = append(transactions, parsed...)
		s.logger.Info("saved transactions to stack", "page", page, "count", len(parsed))

		if page >= s.cfg.MaxPages {
			s.logger.Warn("page limit reached, stopping", "max_pages", s.cfg.MaxPages)
			break
		}

		more, err := b.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to open page %d: %w", page+1, err)
		}
		if !more {
			break
		}
	}

	// the bank lists newest first
	slices.Reverse(transactions)
	return transactions, nil
}

// ParseRows converts table rows to transactions, keeping their order
func ParseRows(rows [][]string) ([]models.Transaction, error) {
	transactions := make([]models.Transaction, 0, len(rows))

	for i, cells := range rows {
		if len(cells) < minCells {
			return nil, fmt.Errorf("%w %d: expected %d cells, got %d", ErrMalformedRow, i+1, minCells, len(cells))
		}

		date, err := models.ParseDate(cells[dateCell])
		if err != nil {
			return nil, fmt.Errorf("%w %d: %w", ErrMalformedRow, i+1, err)
		}

		amount, err := models.ParseLocaleAmount(cells[amountCell])
		if err != nil {
			return nil, fmt.Errorf("%w %d: %w", ErrMalformedRow, i+1, err)
		}

		memo := cells[memoCell]
		transactions = append(transactions, models.NewTransaction(date, models.ExtractAccountID(memo), amount, "", memo))
	}

	return transactions, nil
}
