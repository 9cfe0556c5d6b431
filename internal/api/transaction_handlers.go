package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"bengkel-backend/internal/domain"
	"bengkel-backend/internal/storage"
)

type transactionRequest struct {
	ToolID    int32  `json:"tool_id"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// parseDate accepts either a bare date or a full RFC 3339 timestamp.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("invalid date %q, want YYYY-MM-DD or RFC 3339", s)
}

func (s *Server) handleTransactionRequest(w http.ResponseWriter, r *http.Request, txType domain.TransactionType) {
	var req transactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeValidationError(w, "invalid request body")
		return
	}
	start, err := parseDate(req.StartDate)
	if err != nil {
		writeValidationError(w, err.Error())
		return
	}
	end, err := parseDate(req.EndDate)
	if err != nil {
		writeValidationError(w, err.Error())
		return
	}

	claims := claimsFrom(r.Context())
	tx, err := s.transactions.RequestTransaction(r.Context(), claims.UserID, req.ToolID, txType, start, end)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, tx)
}

func (s *Server) handleBorrow(w http.ResponseWriter, r *http.Request) {
	s.handleTransactionRequest(w, r, domain.TransactionTypeLending)
}

func (s *Server) handleRentalRequest(w http.ResponseWriter, r *http.Request) {
	s.handleTransactionRequest(w, r, domain.TransactionTypeRental)
}

func (s *Server) handleMyTransactions(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r.Context())
	txs, err := s.transactions.ListMyTransactions(r.Context(), claims.UserID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, txs)
}

func (s *Server) handleAllTransactions(w http.ResponseWriter, r *http.Request) {
	offset, limit := pagination(r)
	txs, err := s.transactions.ListAllTransactions(r.Context(), offset, limit)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, txs)
}

func (s *Server) handleApproveTransaction(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeValidationError(w, "invalid transaction id")
		return
	}

	tx, err := s.transactions.ApproveTransaction(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tx)
}

func (s *Server) handleRejectTransaction(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeValidationError(w, "invalid transaction id")
		return
	}

	tx, err := s.transactions.RejectTransaction(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tx)
}

// handleRentalPay records the payment for a rental. The request is multipart:
// a payment_method field plus a payment_proof file that is stored and linked
// to the payment record.
func (s *Server) handleRentalPay(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeValidationError(w, "invalid transaction id")
		return
	}

	if err := r.ParseMultipartForm(s.files.MaxBytes()); err != nil {
		writeValidationError(w, "invalid multipart form")
		return
	}

	method := domain.PaymentMethod(r.FormValue("payment_method"))

	var proofURL string
	file, header, err := r.FormFile("payment_proof")
	if err == nil {
		defer file.Close()
		proofURL, err = s.files.Save(r.Context(), storage.CategoryPaymentProofs, header.Filename, file)
		if err != nil {
			writeValidationError(w, err.Error())
			return
		}
	} else if err != http.ErrMissingFile {
		writeValidationError(w, "invalid payment proof upload")
		return
	}

	claims := claimsFrom(r.Context())
	payment, err := s.transactions.RecordPayment(r.Context(), claims.UserID, id, method, proofURL)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, payment)
}
