package gateway

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"erp-reconciliation/internal/domain"
)

// Column names recognized in ERP exports and bank statements, matched after
// trimming and lower-casing the header row.
const (
	colInvoiceID   = "invoice id"
	colRefID       = "ref id"
	colAmount      = "amount"
	colStatus      = "status"
	colDescription = "description"
	colDate        = "date"
)

// FileRecordRepository implements the RecordRepository interface for on-disk
// ledger files: the ERP export as .xlsx or .csv, the bank statement as .csv
// (statements arriving as PDF are converted upstream).
type FileRecordRepository struct {
	erpPath  string
	bankPath string
}

// NewFileRecordRepository creates a repository reading from the given paths.
func NewFileRecordRepository(erpPath, bankPath string) *FileRecordRepository {
	return &FileRecordRepository{erpPath: erpPath, bankPath: bankPath}
}

// GetERPRecords reads and parses the ERP transaction export.
func (r *FileRecordRepository) GetERPRecords(ctx context.Context) ([]domain.ERPRecord, error) {
	rows, err := readRows(r.erpPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read ERP export %s: %w", r.erpPath, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("ERP export %s has no header row", r.erpPath)
	}

	cols := indexHeader(rows[0])
	idCol, ok := cols[colInvoiceID]
	if !ok {
		// Older exports label the identifier column "ref id".
		if idCol, ok = cols[colRefID]; !ok {
			return nil, fmt.Errorf("ERP export %s missing %q column", r.erpPath, colInvoiceID)
		}
	}
	amountCol, ok := cols[colAmount]
	if !ok {
		return nil, fmt.Errorf("ERP export %s missing %q column", r.erpPath, colAmount)
	}
	statusCol, hasStatus := cols[colStatus]

	records := make([]domain.ERPRecord, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if emptyRow(row) {
			continue
		}
		rec := domain.ERPRecord{
			InvoiceID: cell(row, idCol),
			Amount:    parseAmount(cell(row, amountCol)),
		}
		if hasStatus {
			rec.Status = cell(row, statusCol)
		}
		records = append(records, rec)
	}
	return records, nil
}

// GetBankRecords reads and parses the bank statement.
func (r *FileRecordRepository) GetBankRecords(ctx context.Context) ([]domain.BankRecord, error) {
	rows, err := readRows(r.bankPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read bank statement %s: %w", r.bankPath, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("bank statement %s has no header row", r.bankPath)
	}

	cols := indexHeader(rows[0])
	descCol, ok := cols[colDescription]
	if !ok {
		return nil, fmt.Errorf("bank statement %s missing %q column", r.bankPath, colDescription)
	}
	amountCol, ok := cols[colAmount]
	if !ok {
		return nil, fmt.Errorf("bank statement %s missing %q column", r.bankPath, colAmount)
	}
	dateCol, hasDate := cols[colDate]

	records := make([]domain.BankRecord, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if emptyRow(row) {
			continue
		}
		rec := domain.BankRecord{
			Description: cell(row, descCol),
			Amount:      parseAmount(cell(row, amountCol)),
		}
		if hasDate {
			rec.Date = cell(row, dateCol)
		}
		records = append(records, rec)
	}
	return records, nil
}

// readRows loads the whole file as string rows, dispatching on extension.
func readRows(path string) ([][]string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		return readExcelRows(path)
	case ".csv":
		return readCSVRows(path)
	default:
		return nil, fmt.Errorf("unsupported file type %q", filepath.Ext(path))
	}
}

func readExcelRows(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func readCSVRows(path string) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	return reader.ReadAll()
}

// indexHeader maps trimmed, lower-cased column names to their positions.
func indexHeader(header []string) map[string]int {
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	return cols
}

func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func emptyRow(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

// parseAmount turns a raw cell into a nullable decimal. Unparseable amounts
// are null, not errors: the engine classifies them as mismatches instead of
// rejecting the whole file.
func parseAmount(raw string) decimal.NullDecimal {
	raw = strings.ReplaceAll(raw, ",", "")
	if raw == "" {
		return decimal.NullDecimal{}
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: d, Valid: true}
}
