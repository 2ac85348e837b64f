package domain

import "github.com/shopspring/decimal"

// MatchStatus is the label attached to a flat report row.
type MatchStatus string

const (
	StatusMatch          MatchStatus = "Match"
	StatusAmountMismatch MatchStatus = "Amount mismatch"
	StatusMissingInERP   MatchStatus = "Missing in ERP"
	StatusMissingInBank  MatchStatus = "Missing in Bank"
)

// MatchedPair holds the ERP and bank records that share a canonical key.
type MatchedPair struct {
	Key  CanonicalKey     `json:"key"`
	ERP  NormalizedRecord `json:"erp"`
	Bank NormalizedRecord `json:"bank"`
}

// MissingEntry is a key that appeared in only one source, with the record
// that represents it there.
type MissingEntry struct {
	Key    CanonicalKey     `json:"key"`
	Record NormalizedRecord `json:"record"`
}

// DuplicateGroup lists all records of one source that share a canonical key
// that was expected to be unique.
type DuplicateGroup struct {
	Key     CanonicalKey       `json:"key"`
	Source  SourceTag          `json:"source"`
	Records []NormalizedRecord `json:"records"`
}

// Summary provides per-bucket counts for the reconciliation run.
type Summary struct {
	ERPRecordsProcessed  int `json:"erp_records_processed"`
	BankRecordsProcessed int `json:"bank_records_processed"`
	Matched              int `json:"matched"`
	AmountMismatched     int `json:"amount_mismatched"`
	MissingInBank        int `json:"missing_in_bank"`
	MissingInERP         int `json:"missing_in_erp"`
	DuplicateKeys        int `json:"duplicate_keys"`
}

// Report is the final output of a reconciliation run: five ordered outcome
// buckets plus aggregate counts. It is created fresh per run and never
// mutated afterward.
type Report struct {
	Summary          Summary          `json:"summary"`
	Matched          []MatchedPair    `json:"matched"`
	AmountMismatched []MatchedPair    `json:"amount_mismatched"`
	MissingInBank    []MissingEntry   `json:"missing_in_bank"`
	MissingInERP     []MissingEntry   `json:"missing_in_erp"`
	Duplicates       []DuplicateGroup `json:"duplicates"`
}

// ReportRow is the flat per-key projection of a report, used by callers that
// want one record per canonical key rather than nested buckets. Absent
// amounts serialize as null.
type ReportRow struct {
	Key        CanonicalKey        `json:"key"`
	ERPAmount  decimal.NullDecimal `json:"erp_amount"`
	BankAmount decimal.NullDecimal `json:"bank_amount"`
	Status     MatchStatus         `json:"status"`
}

// Rows flattens the four primary buckets into one row per canonical key,
// preserving bucket-internal order: matched, then amount mismatches, then
// keys missing from the bank, then keys missing from the ERP. Duplicates are
// not rows; they annotate keys that already have one.
func (r *Report) Rows() []ReportRow {
	rows := make([]ReportRow, 0,
		len(r.Matched)+len(r.AmountMismatched)+len(r.MissingInBank)+len(r.MissingInERP))
	for _, pair := range r.Matched {
		rows = append(rows, ReportRow{
			Key:        pair.Key,
			ERPAmount:  pair.ERP.Amount,
			BankAmount: pair.Bank.Amount,
			Status:     StatusMatch,
		})
	}
	for _, pair := range r.AmountMismatched {
		rows = append(rows, ReportRow{
			Key:        pair.Key,
			ERPAmount:  pair.ERP.Amount,
			BankAmount: pair.Bank.Amount,
			Status:     StatusAmountMismatch,
		})
	}
	for _, entry := range r.MissingInBank {
		rows = append(rows, ReportRow{
			Key:       entry.Key,
			ERPAmount: entry.Record.Amount,
			Status:    StatusMissingInBank,
		})
	}
	for _, entry := range r.MissingInERP {
		rows = append(rows, ReportRow{
			Key:        entry.Key,
			BankAmount: entry.Record.Amount,
			Status:     StatusMissingInERP,
		})
	}
	return rows
}
