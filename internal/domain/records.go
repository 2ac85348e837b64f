package domain

import "github.com/shopspring/decimal"

// SourceTag identifies which ledger a record came from.
type SourceTag string

const (
	SourceERP  SourceTag = "erp"
	SourceBank SourceTag = "bank"
)

// CanonicalKey is the normalized transaction identifier used to correlate
// ERP and bank records (uppercase letters followed by digits, e.g. "INV0001").
// It is always derived by a key extractor, never authored directly.
type CanonicalKey string

// ERPRecord represents a single row of the ERP transaction export.
// Amount is null when the exported cell was empty or unparseable.
type ERPRecord struct {
	InvoiceID string              `json:"invoice_id"`
	Amount    decimal.NullDecimal `json:"amount"`
	Status    string              `json:"status"`
}

// BankRecord represents a single line of the bank statement. The transaction
// identifier is buried in the free-text description and must be extracted
// during normalization.
type BankRecord struct {
	Description string              `json:"description"`
	Amount      decimal.NullDecimal `json:"amount"`
	Date        string              `json:"date,omitempty"`
}

// NormalizedRecord is a record that has passed normalization: it carries its
// canonical key, its source tag, and the fields that matter for matching and
// reporting. Records that fail normalization never become NormalizedRecords.
type NormalizedRecord struct {
	Key    CanonicalKey        `json:"key"`
	Source SourceTag           `json:"source"`
	Amount decimal.NullDecimal `json:"amount"`
	// Detail is the field the key was extracted from: the raw invoice
	// identifier for ERP records, the statement description for bank records.
	Detail string `json:"detail"`
}

// LookupTable groups the normalized records of one source by canonical key,
// preserving the order in which keys first appeared. Every record in a table
// carries exactly that table's source tag.
type LookupTable struct {
	source SourceTag
	keys   []CanonicalKey
	groups map[CanonicalKey][]NormalizedRecord
}

// NewLookupTable creates an empty table scoped to one source.
func NewLookupTable(source SourceTag) *LookupTable {
	return &LookupTable{
		source: source,
		groups: make(map[CanonicalKey][]NormalizedRecord),
	}
}

// Add appends a record to its key's group. Records whose source tag does not
// match the table are ignored; the table invariant always holds.
func (t *LookupTable) Add(rec NormalizedRecord) {
	if rec.Source != t.source {
		return
	}
	if _, seen := t.groups[rec.Key]; !seen {
		t.keys = append(t.keys, rec.Key)
	}
	t.groups[rec.Key] = append(t.groups[rec.Key], rec)
}

// Source returns the table's source tag.
func (t *LookupTable) Source() SourceTag {
	return t.source
}

// Keys returns the canonical keys in first-appearance order.
func (t *LookupTable) Keys() []CanonicalKey {
	return t.keys
}

// Group returns the records sharing a key, in input order, or nil if the key
// is absent.
func (t *LookupTable) Group(key CanonicalKey) []NormalizedRecord {
	return t.groups[key]
}

// First returns the earliest-inserted record for a key. The second return
// value is false when the key is absent.
func (t *LookupTable) First(key CanonicalKey) (NormalizedRecord, bool) {
	group := t.groups[key]
	if len(group) == 0 {
		return NormalizedRecord{}, false
	}
	return group[0], true
}

// Has reports whether the key appears in the table.
func (t *LookupTable) Has(key CanonicalKey) bool {
	_, ok := t.groups[key]
	return ok
}

// Len returns the number of distinct keys.
func (t *LookupTable) Len() int {
	return len(t.keys)
}

// Duplicates returns, in key order, every key whose group holds more than one
// record. A duplicated key is data to report, not an error.
func (t *LookupTable) Duplicates() []DuplicateGroup {
	var dupes []DuplicateGroup
	for _, key := range t.keys {
		if group := t.groups[key]; len(group) > 1 {
			dupes = append(dupes, DuplicateGroup{
				Key:     key,
				Source:  t.source,
				Records: group,
			})
		}
	}
	return dupes
}
