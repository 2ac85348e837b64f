package toolserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"erp-reconciliation/internal/domain"
	"erp-reconciliation/internal/usecase"
)

type stubRepository struct {
	erp     []domain.ERPRecord
	bank    []domain.BankRecord
	erpErr  error
	bankErr error
}

func (s *stubRepository) GetERPRecords(ctx context.Context) ([]domain.ERPRecord, error) {
	return s.erp, s.erpErr
}

func (s *stubRepository) GetBankRecords(ctx context.Context) ([]domain.BankRecord, error) {
	return s.bank, s.bankErr
}

func money(s string) decimal.NullDecimal {
	return decimal.NullDecimal{Decimal: decimal.RequireFromString(s), Valid: true}
}

func newTestServer(repo usecase.RecordRepository) http.Handler {
	uc := usecase.NewReconciliationUseCase(repo, nil, nil)
	return NewServer(uc, repo).Routes()
}

func TestServer_ListTools(t *testing.T) {
	handler := newTestServer(&stubRepository{})

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/tools", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var tools []toolDescriptor
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &tools))
	require.Len(t, tools, 1)
	assert.Equal(t, "reconcile_transactions", tools[0].Name)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestServer_Reconcile(t *testing.T) {
	repo := &stubRepository{
		erp: []domain.ERPRecord{
			{InvoiceID: "INV0001", Amount: money("100.00"), Status: "active"},
			{InvoiceID: "INV0002", Amount: money("20.00"), Status: "active"},
		},
		bank: []domain.BankRecord{
			{Description: "INV0001 settlement", Amount: money("100.00")},
			{Description: "INV0003 transfer", Amount: money("75.00")},
		},
	}
	handler := newTestServer(repo)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/tools/reconcile_transactions", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp reconcileResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Summary.Matched)
	assert.Equal(t, 1, resp.Summary.MissingInBank)
	assert.Equal(t, 1, resp.Summary.MissingInERP)
	require.Len(t, resp.Rows, 3)
	assert.Equal(t, domain.StatusMatch, resp.Rows[0].Status)
	assert.Empty(t, resp.Duplicates)
}

func TestServer_Reconcile_MethodNotAllowed(t *testing.T) {
	handler := newTestServer(&stubRepository{})

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/tools/reconcile_transactions", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestServer_Reconcile_UpstreamFailure(t *testing.T) {
	handler := newTestServer(&stubRepository{erpErr: errors.New("export unreadable")})

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/tools/reconcile_transactions", nil))

	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestServer_Resources(t *testing.T) {
	repo := &stubRepository{
		erp: []domain.ERPRecord{
			{InvoiceID: "INV0001", Amount: money("100.00"), Status: "active"},
		},
		bank: []domain.BankRecord{
			{Description: "INV0001 settlement", Amount: money("100.00"), Date: "2025-08-01"},
		},
	}
	handler := newTestServer(repo)

	t.Run("erp transactions", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/resources/erp/transactions", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		var records []domain.ERPRecord
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &records))
		assert.Equal(t, repo.erp, records)
	})

	t.Run("bank transactions", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/resources/bank/transactions", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		var records []domain.BankRecord
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &records))
		assert.Equal(t, repo.bank, records)
	})

	t.Run("nil slice serializes as empty array", func(t *testing.T) {
		rec := httptest.NewRecorder()
		newTestServer(&stubRepository{}).ServeHTTP(rec,
			httptest.NewRequest(http.MethodGet, "/resources/erp/transactions", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, "[]", rec.Body.String())
	})
}
