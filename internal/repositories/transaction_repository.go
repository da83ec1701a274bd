package repositories

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"cashflow-report/internal/models"
)

var (
	ErrMalformedExportRow = errors.New("malformed export row")
)

// ExportHeader is the header row of the transaction export file
var ExportHeader = []string{"date", "IBAN", "amount", "category", "text"}

type fileTransactionRepository struct {
	path string
}

// NewFileTransactionRepository stores transactions in a quoted, comma
// separated export file
func NewFileTransactionRepository(path string) TransactionRepositoryInterface {
	return &fileTransactionRepository{path: path}
}

func (r *fileTransactionRepository) Load() ([]models.Transaction, error) {
	f, err := os.Open(r.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open export file %q: %w", r.path, err)
	}
	defer f.Close()

	transactions, err := ReadExport(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read export file %q: %w", r.path, err)
	}
	return transactions, nil
}

func (r *fileTransactionRepository) Save(transactions []models.Transaction) error {
	if dir := filepath.Dir(r.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create export directory %q: %w", dir, err)
		}
	}

	f, err := os.Create(r.path)
	if err != nil {
		return fmt.Errorf("failed to create export file %q: %w", r.path, err)
	}
	defer f.Close()

	if err := WriteExport(f, transactions); err != nil {
		return fmt.Errorf("failed to write export file %q: %w", r.path, err)
	}
	return f.Close()
}

// ReadExport parses an export file and returns its rows sorted ascending by
// date. Rows of the same day keep their file order.
func ReadExport(in io.Reader) ([]models.Transaction, error) {
	reader := csv.NewReader(in)
	reader.FieldsPerRecord = len(ExportHeader)

	header, err := reader.Read()
	if err == io.EOF {
		return []models.Transaction{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: header: %v", ErrMalformedExportRow, err)
	}
	if !strings.EqualFold(strings.Join(header, ","), strings.Join(ExportHeader, ",")) {
		return nil, fmt.Errorf("%w: unexpected header %v", ErrMalformedExportRow, header)
	}

	transactions := make([]models.Transaction, 0)
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedExportRow, err)
		}

		txn, err := models.ParseTransaction(row[0], row[1], row[2], row[3], row[4])
		if err != nil {
			line, _ := reader.FieldPos(0)
			return nil, fmt.Errorf("%w: line %d: %w", ErrMalformedExportRow, line, err)
		}
		transactions = append(transactions, txn)
	}

	sort.SliceStable(transactions, func(i, j int) bool {
		return transactions[i].Date.Before(transactions[j].Date)
	})
	return transactions, nil
}

// WriteExport writes the header and one fully quoted row per transaction
func WriteExport(out io.Writer, transactions []models.Transaction) error {
	w := bufio.NewWriter(out)

	if err := writeQuotedRow(w, ExportHeader); err != nil {
		return fmt.Errorf("failed to write export header: %w", err)
	}

	for i := range transactions {
		txn := &transactions[i]
		row := []string{
			txn.FormattedDate(),
			txn.AccountID,
			txn.Amount.String(),
			txn.Category,
			txn.Memo,
		}
		if err := writeQuotedRow(w, row); err != nil {
			return fmt.Errorf("failed to write export row: %w", err)
		}
	}

	return w.Flush()
}

// writeQuotedRow quotes every field, which encoding/csv only does on demand
func writeQuotedRow(w *bufio.Writer, fields []string) error {
	for i, field := range fields {
		if i > 0 {
			if err := w.WriteByte(','); err != nil {
				return err
			}
		}
		if _, err := w.WriteString(`"` + strings.ReplaceAll(field, `"`, `""`) + `"`); err != nil {
			return err
		}
	}
	return w.WriteByte('\n')
}
