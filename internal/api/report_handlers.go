package api

import (
	"net/http"
	"strconv"
)

func yearMonth(r *http.Request) (int, int, bool) {
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		return 0, 0, false
	}
	month, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil {
		return 0, 0, false
	}
	return year, month, true
}

func (s *Server) handleUsageReport(w http.ResponseWriter, r *http.Request) {
	year, month, ok := yearMonth(r)
	if !ok {
		writeValidationError(w, "year and month query parameters are required")
		return
	}

	stats, err := s.reports.MonthlyToolUsage(r.Context(), year, month)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (s *Server) handleFinancialReport(w http.ResponseWriter, r *http.Request) {
	year, month, ok := yearMonth(r)
	if !ok {
		writeValidationError(w, "year and month query parameters are required")
		return
	}

	report, err := s.reports.MonthlyFinancial(r.Context(), year, month)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}
