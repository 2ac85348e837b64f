package usecase

import (
	"regexp"
	"strings"

	"erp-reconciliation/internal/domain"
)

// KeyExtractor pulls a canonical key out of a raw field value. It returns
// false when the value holds no recognizable identifier, in which case the
// record is excluded from matching.
type KeyExtractor func(value string) (domain.CanonicalKey, bool)

var invoicePattern = regexp.MustCompile(`(?i)[A-Z]+[0-9]+`)

// DefaultKeyExtractor matches the first run of letters immediately followed
// by digits (e.g. "INV0001" inside "Payment for INV0001 order") and
// canonicalizes it to uppercase.
func DefaultKeyExtractor(value string) (domain.CanonicalKey, bool) {
	match := invoicePattern.FindString(value)
	if match == "" {
		return "", false
	}
	return domain.CanonicalKey(strings.ToUpper(match)), true
}

const statusCancelled = "cancelled"

// Normalizer turns raw per-source records into normalized records carrying a
// canonical key. The key extraction strategy is injectable so alternate
// identifier formats can be supported without touching the matching core.
type Normalizer struct {
	extract KeyExtractor
}

// NewNormalizer creates a Normalizer. A nil extractor falls back to
// DefaultKeyExtractor.
func NewNormalizer(extract KeyExtractor) *Normalizer {
	if extract == nil {
		extract = DefaultKeyExtractor
	}
	return &Normalizer{extract: extract}
}

// NormalizeERP converts ERP export rows into normalized records. Cancelled
// rows are filtered first; rows whose invoice field yields no canonical key
// are dropped. Input order is preserved and the input is never mutated.
func (n *Normalizer) NormalizeERP(records []domain.ERPRecord) []domain.NormalizedRecord {
	normalized := make([]domain.NormalizedRecord, 0, len(records))
	for _, rec := range records {
		if strings.EqualFold(strings.TrimSpace(rec.Status), statusCancelled) {
			continue
		}
		key, ok := n.extract(rec.InvoiceID)
		if !ok {
			continue
		}
		normalized = append(normalized, domain.NormalizedRecord{
			Key:    key,
			Source: domain.SourceERP,
			Amount: rec.Amount,
			Detail: rec.InvoiceID,
		})
	}
	return normalized
}

// NormalizeBank converts bank statement lines into normalized records,
// extracting the canonical key from the free-text description. Lines with no
// extractable key are dropped.
func (n *Normalizer) NormalizeBank(records []domain.BankRecord) []domain.NormalizedRecord {
	normalized := make([]domain.NormalizedRecord, 0, len(records))
	for _, rec := range records {
		key, ok := n.extract(rec.Description)
		if !ok {
			continue
		}
		normalized = append(normalized, domain.NormalizedRecord{
			Key:    key,
			Source: domain.SourceBank,
			Amount: rec.Amount,
			Detail: rec.Description,
		})
	}
	return normalized
}
