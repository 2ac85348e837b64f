package usecase

import (
	"context"

	"erp-reconciliation/internal/domain"
)

// RecordRepository defines the interface for fetching the two raw ledgers.
// The usecase layer depends on this interface, not on a concrete
// implementation.
//
//go:generate mockgen -destination=mocks/mock_repository.go -source=interface.go RecordRepository
type RecordRepository interface {
	GetERPRecords(ctx context.Context) ([]domain.ERPRecord, error)
	GetBankRecords(ctx context.Context) ([]domain.BankRecord, error)
}
