package usecase

import "erp-reconciliation/internal/domain"

// BuildLookup groups one source's normalized records by canonical key,
// keeping keys in first-appearance order and records in input order within
// each group. A key mapping to more than one record is the duplicate
// condition, surfaced later via the table's Duplicates method.
func BuildLookup(source domain.SourceTag, records []domain.NormalizedRecord) *domain.LookupTable {
	table := domain.NewLookupTable(source)
	for _, rec := range records {
		table.Add(rec)
	}
	return table
}
