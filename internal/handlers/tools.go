// internal/handlers/tools.go
package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	httpserver "gmao/internal/http"
	"gmao/internal/models"
	"gmao/internal/service"
)

// parseDate accepts either a plain date or a full RFC 3339 timestamp.
func parseDate(s string) (time.Time, bool) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	return time.Time{}, false
}

// mountLoans registers the guarded loan transitions on the tools subrouter.
func mountLoans(loans *service.Loans, writeMW func(http.Handler) http.Handler) func(chi.Router) {
	return func(sr chi.Router) {
		sr.Get("/overdue", func(w http.ResponseWriter, req *http.Request) {
			tools, err := loans.Overdue(req.Context(), time.Now())
			if err != nil {
				httpserver.Error(w, err, "overdue lookup failed")
				return
			}
			httpserver.JSON(w, http.StatusOK, tools)
		})

		sr.With(writeMW).Post("/{id}/loan", func(w http.ResponseWriter, req *http.Request) {
			id, ok := urlID(req)
			if !ok {
				httpserver.JSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
				return
			}
			var body struct {
				Borrower       string `json:"borrower"`
				LoanDate       string `json:"loan_date"`
				ExpectedReturn string `json:"expected_return"`
			}
			if !decodeBody(w, req, &body) {
				return
			}
			loanDate := time.Now().UTC()
			if body.LoanDate != "" {
				d, ok := parseDate(body.LoanDate)
				if !ok {
					httpserver.Error(w, models.Invalid("loan_date", "invalid date"), "loan failed")
					return
				}
				loanDate = d
			}
			expected, ok := parseDate(body.ExpectedReturn)
			if !ok {
				httpserver.Error(w, models.Invalid("expected_return", "invalid date"), "loan failed")
				return
			}
			tool, err := loans.Loan(req.Context(), id, body.Borrower, loanDate, expected)
			if err != nil {
				httpserver.Error(w, err, "loan failed")
				return
			}
			httpserver.JSON(w, http.StatusOK, tool)
		})

		sr.With(writeMW).Post("/{id}/return", func(w http.ResponseWriter, req *http.Request) {
			id, ok := urlID(req)
			if !ok {
				httpserver.JSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
				return
			}
			tool, err := loans.Return(req.Context(), id)
			if err != nil {
				httpserver.Error(w, err, "return failed")
				return
			}
			httpserver.JSON(w, http.StatusOK, tool)
		})
	}
}
