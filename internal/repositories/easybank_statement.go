package repositories

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"slices"

	"cashflow-report/internal/models"

	"golang.org/x/text/encoding/charmap"
)

var (
	ErrMalformedStatementRow = errors.New("malformed statement row")
)

// Column positions of the easybank statement export
const (
	easybankMemoColumn   = 1
	easybankDateColumn   = 2
	easybankAmountColumn = 4
	easybankMinColumns   = 5
)

type easybankStatementParser struct{}

// NewEasybankStatementParser parses the semicolon separated, latin-1 encoded
// statement export of easybank. The bank lists newest rows first.
func NewEasybankStatementParser() StatementParserInterface {
	return &easybankStatementParser{}
}

func (p *easybankStatementParser) Parse(in io.Reader) ([]models.Transaction, error) {
	reader := csv.NewReader(charmap.ISO8859_1.NewDecoder().Reader(in))
	reader.Comma = ';'
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	transactions := make([]models.Transaction, 0)
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedStatementRow, err)
		}

		line, _ := reader.FieldPos(0)
		txn, err := parseEasybankRow(row)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %w", ErrMalformedStatementRow, line, err)
		}
		transactions = append(transactions, txn)
	}

	slices.Reverse(transactions)
	return transactions, nil
}

func parseEasybankRow(row []string) (models.Transaction, error) {
	if len(row) < easybankMinColumns {
		return models.Transaction{}, fmt.Errorf("expected at least %d columns, got %d", easybankMinColumns, len(row))
	}

	memo := row[easybankMemoColumn]

	date, err := models.ParseDate(row[easybankDateColumn])
	if err != nil {
		return models.Transaction{}, err
	}

	amount, err := models.ParseLocaleAmount(row[easybankAmountColumn])
	if err != nil {
		return models.Transaction{}, err
	}

	return models.NewTransaction(date, models.ExtractAccountID(memo), amount, "", memo), nil
}
