package usecase

import (
	"context"
	"fmt"

	"erp-reconciliation/internal/domain"
)

// ReconciliationUseCase orchestrates a reconciliation run: fetch both
// ledgers, normalize, build per-source lookups, cross-match, assemble the
// report. Each run is a pure function of the two input sequences; the use
// case holds no cross-invocation state and is safe for concurrent runs.
type ReconciliationUseCase struct {
	repo       RecordRepository
	normalizer *Normalizer
	equal      AmountComparator
}

// NewReconciliationUseCase creates a new instance of the usecase. A nil
// normalizer or comparator falls back to the defaults.
func NewReconciliationUseCase(repo RecordRepository, normalizer *Normalizer, equal AmountComparator) *ReconciliationUseCase {
	if normalizer == nil {
		normalizer = NewNormalizer(nil)
	}
	if equal == nil {
		equal = ToleranceComparator(DefaultTolerance)
	}
	return &ReconciliationUseCase{repo: repo, normalizer: normalizer, equal: equal}
}

// Reconcile performs the main reconciliation logic.
func (uc *ReconciliationUseCase) Reconcile(ctx context.Context) (*domain.Report, error) {
	erpRecords, err := uc.repo.GetERPRecords(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not get ERP records: %w", err)
	}

	bankRecords, err := uc.repo.GetBankRecords(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not get bank records: %w", err)
	}

	erpNormalized := uc.normalizer.NormalizeERP(erpRecords)
	bankNormalized := uc.normalizer.NormalizeBank(bankRecords)

	erpLookup := BuildLookup(domain.SourceERP, erpNormalized)
	bankLookup := BuildLookup(domain.SourceBank, bankNormalized)

	outcomes := Match(erpLookup, bankLookup, uc.equal)

	report := AssembleReport(outcomes)
	report.Summary.ERPRecordsProcessed = len(erpNormalized)
	report.Summary.BankRecordsProcessed = len(bankNormalized)
	return report, nil
}

// AssembleReport buckets classified outcomes into the final report,
// preserving the matcher's iteration order within each bucket and attaching
// per-bucket counts. Buckets are non-nil so the report always serializes with
// all five keys present.
func AssembleReport(outcomes ClassifiedOutcomes) *domain.Report {
	report := &domain.Report{
		Matched:          outcomes.Matched,
		AmountMismatched: outcomes.AmountMismatched,
		MissingInBank:    outcomes.MissingInBank,
		MissingInERP:     outcomes.MissingInERP,
		Duplicates:       outcomes.Duplicates,
	}
	if report.Matched == nil {
		report.Matched = []domain.MatchedPair{}
	}
	if report.AmountMismatched == nil {
		report.AmountMismatched = []domain.MatchedPair{}
	}
	if report.MissingInBank == nil {
		report.MissingInBank = []domain.MissingEntry{}
	}
	if report.MissingInERP == nil {
		report.MissingInERP = []domain.MissingEntry{}
	}
	if report.Duplicates == nil {
		report.Duplicates = []domain.DuplicateGroup{}
	}
	report.Summary = domain.Summary{
		Matched:          len(report.Matched),
		AmountMismatched: len(report.AmountMismatched),
		MissingInBank:    len(report.MissingInBank),
		MissingInERP:     len(report.MissingInERP),
		DuplicateKeys:    len(report.Duplicates),
	}
	return report
}
