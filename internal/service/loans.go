// internal/service/loans.go
package service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"gmao/internal/models"
	"gmao/internal/repo"
)

// Loans guards the tool loan/return transitions. in_repair and
// out_of_service are reached only through plain repository updates, never
// through here.
type Loans struct {
	tools *repo.Collection[models.Tool]
}

func NewLoans(tools *repo.Collection[models.Tool]) *Loans {
	return &Loans{tools: tools}
}

// Loan hands a tool to a borrower. Valid only from "available"; any other
// availability fails with ErrConflict.
func (l *Loans) Loan(ctx context.Context, toolID int64, borrower string, loanDate, expectedReturn time.Time) (models.Tool, error) {
	if strings.TrimSpace(borrower) == "" {
		return models.Tool{}, models.Invalid("borrower", "required")
	}
	tool, err := l.tools.Mutate(ctx, toolID, func(t *models.Tool) error {
		if t.Availability != models.ToolAvailable {
			return models.ErrConflict
		}
		ld, er := loanDate, expectedReturn
		t.Availability = models.ToolOnLoan
		t.Borrower = strings.TrimSpace(borrower)
		t.LoanDate = &ld
		t.ExpectedReturn = &er
		return nil
	})
	if err != nil {
		return models.Tool{}, err
	}
	slog.InfoContext(ctx, "tool loaned", "tool_id", toolID, "borrower", tool.Borrower)
	return tool, nil
}

// Return takes a tool back. Valid only from "on_loan"; borrower and loan
// dates are cleared together with the transition.
func (l *Loans) Return(ctx context.Context, toolID int64) (models.Tool, error) {
	tool, err := l.tools.Mutate(ctx, toolID, func(t *models.Tool) error {
		if t.Availability != models.ToolOnLoan {
			return models.ErrConflict
		}
		t.Availability = models.ToolAvailable
		t.Borrower = ""
		t.LoanDate = nil
		t.ExpectedReturn = nil
		return nil
	})
	if err != nil {
		return models.Tool{}, err
	}
	slog.InfoContext(ctx, "tool returned", "tool_id", toolID)
	return tool, nil
}

// IsOverdue reports whether a tool is on loan past its expected return date.
// Day granularity: a tool due today is not overdue. Derived, never persisted.
func IsOverdue(t models.Tool, now time.Time) bool {
	if t.Availability != models.ToolOnLoan || t.ExpectedReturn == nil {
		return false
	}
	y, m, d := now.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	return t.ExpectedReturn.Before(today)
}

// Overdue lists the tools currently on loan past their expected return date.
func (l *Loans) Overdue(ctx context.Context, now time.Time) ([]models.Tool, error) {
	tools, err := l.tools.All(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]models.Tool, 0)
	for _, t := range tools {
		if IsOverdue(t, now) {
			out = append(out, t)
		}
	}
	return out, nil
}
