// Package toolserver exposes the reconciliation engine as a callable tool
// over HTTP: one tool (reconcile_transactions) and two read resources (the
// raw ERP and bank ledgers). It is a transport binding only; all decision
// logic lives in the usecase layer.
package toolserver

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"erp-reconciliation/internal/domain"
	"erp-reconciliation/internal/usecase"
)

const toolReconcile = "reconcile_transactions"

// Server wires the reconciliation use case and the raw record repository to
// HTTP handlers.
type Server struct {
	uc   *usecase.ReconciliationUseCase
	repo usecase.RecordRepository
}

// NewServer creates the tool API server.
func NewServer(uc *usecase.ReconciliationUseCase, repo usecase.RecordRepository) *Server {
	return &Server{uc: uc, repo: repo}
}

// Routes registers HTTP routes.
func (s *Server) Routes() http.Handler {
	r := mux.NewRouter()
	r.Use(requestIDMiddleware)
	r.HandleFunc("/tools", s.listTools).Methods(http.MethodGet)
	r.HandleFunc("/tools/"+toolReconcile, s.reconcile).Methods(http.MethodPost)
	r.HandleFunc("/resources/erp/transactions", s.erpTransactions).Methods(http.MethodGet)
	r.HandleFunc("/resources/bank/transactions", s.bankTransactions).Methods(http.MethodGet)
	return r
}

type toolDescriptor struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type reconcileResponse struct {
	Summary    domain.Summary          `json:"summary"`
	Rows       []domain.ReportRow      `json:"rows"`
	Duplicates []domain.DuplicateGroup `json:"duplicates"`
}

func (s *Server) listTools(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, []toolDescriptor{
		{
			Name:        toolReconcile,
			Description: "Match ERP and bank transactions by canonical key and flag discrepancies.",
		},
	})
}

func (s *Server) reconcile(w http.ResponseWriter, r *http.Request) {
	report, err := s.uc.Reconcile(r.Context())
	if err != nil {
		// Only upstream read failures get here; data-quality issues are
		// report content, never HTTP errors.
		log.Printf("[%s] reconcile failed: %v", requestID(r.Context()), err)
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}
	writeJSON(w, http.StatusOK, reconcileResponse{
		Summary:    report.Summary,
		Rows:       report.Rows(),
		Duplicates: report.Duplicates,
	})
}

func (s *Server) erpTransactions(w http.ResponseWriter, r *http.Request) {
	records, err := s.repo.GetERPRecords(r.Context())
	if err != nil {
		log.Printf("[%s] ERP read failed: %v", requestID(r.Context()), err)
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}
	if records == nil {
		records = []domain.ERPRecord{}
	}
	writeJSON(w, http.StatusOK, records)
}

func (s *Server) bankTransactions(w http.ResponseWriter, r *http.Request) {
	records, err := s.repo.GetBankRecords(r.Context())
	if err != nil {
		log.Printf("[%s] bank read failed: %v", requestID(r.Context()), err)
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}
	if records == nil {
		records = []domain.BankRecord{}
	}
	writeJSON(w, http.StatusOK, records)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
