package usecase

import "erp-reconciliation/internal/domain"

// ClassifiedOutcomes is the cross matcher's output: every canonical key in
// the union of both tables assigned to exactly one primary bucket, with
// duplicate groups tracked additively alongside.
type ClassifiedOutcomes struct {
	Matched          []domain.MatchedPair
	AmountMismatched []domain.MatchedPair
	MissingInBank    []domain.MissingEntry
	MissingInERP     []domain.MissingEntry
	Duplicates       []domain.DuplicateGroup
}

// Match joins the two per-source lookup tables on canonical key. Keys present
// in both sides are compared through the comparator using the
// earliest-inserted record of each group; keys present on one side only
// become missing entries for the other. Iteration covers ERP keys in their
// insertion order, then bank-only keys in theirs, so identical inputs always
// produce identical reports. An empty table on either side is valid and
// degenerates to everything missing from that side.
func Match(erp, bank *domain.LookupTable, equal AmountComparator) ClassifiedOutcomes {
	var out ClassifiedOutcomes

	for _, key := range erp.Keys() {
		erpRec, _ := erp.First(key)
		bankRec, inBank := bank.First(key)
		if !inBank {
			out.MissingInBank = append(out.MissingInBank, domain.MissingEntry{Key: key, Record: erpRec})
			continue
		}
		pair := domain.MatchedPair{Key: key, ERP: erpRec, Bank: bankRec}
		if equal(erpRec.Amount, bankRec.Amount) {
			out.Matched = append(out.Matched, pair)
		} else {
			out.AmountMismatched = append(out.AmountMismatched, pair)
		}
	}

	for _, key := range bank.Keys() {
		if erp.Has(key) {
			continue
		}
		bankRec, _ := bank.First(key)
		out.MissingInERP = append(out.MissingInERP, domain.MissingEntry{Key: key, Record: bankRec})
	}

	// Duplicate annotation is orthogonal to the primary outcome: a key with
	// several records on one side is still matched/missing like any other.
	out.Duplicates = append(out.Duplicates, erp.Duplicates()...)
	out.Duplicates = append(out.Duplicates, bank.Duplicates()...)

	return out
}
