package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gmao/internal/models"
	"gmao/internal/service"
)

func TestLoans_LoanAndReturn(t *testing.T) {
	reg := newRegistry(t)
	loans := service.NewLoans(reg.Tools)
	ctx := context.Background()

	loanDate := time.Date(2024, time.November, 20, 0, 0, 0, 0, time.UTC)
	due := loanDate.AddDate(0, 0, 7)

	tool, err := loans.Loan(ctx, 1, "Jean Dupont", loanDate, due)
	require.NoError(t, err)
	assert.Equal(t, models.ToolOnLoan, tool.Availability)
	assert.Equal(t, "Jean Dupont", tool.Borrower)
	require.NotNil(t, tool.LoanDate)
	assert.True(t, tool.LoanDate.Equal(loanDate))
	require.NotNil(t, tool.ExpectedReturn)
	assert.True(t, tool.ExpectedReturn.Equal(due))

	// the transition persisted
	got, err := reg.Tools.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, models.ToolOnLoan, got.Availability)

	returned, err := loans.Return(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, models.ToolAvailable, returned.Availability)
	assert.Empty(t, returned.Borrower)
	assert.Nil(t, returned.LoanDate)
	assert.Nil(t, returned.ExpectedReturn)
}

func TestLoans_LoanRequiresAvailable(t *testing.T) {
	reg := newRegistry(t)
	loans := service.NewLoans(reg.Tools)
	ctx := context.Background()

	loanDate := time.Now()
	due := loanDate.AddDate(0, 0, 7)

	// tool 3 is seeded in_repair
	_, err := loans.Loan(ctx, 3, "Jean Dupont", loanDate, due)
	assert.ErrorIs(t, err, models.ErrConflict)

	// double loan
	_, err = loans.Loan(ctx, 1, "Jean Dupont", loanDate, due)
	require.NoError(t, err)
	_, err = loans.Loan(ctx, 1, "Marie Martin", loanDate, due)
	assert.ErrorIs(t, err, models.ErrConflict)
}

func TestLoans_LoanRequiresBorrower(t *testing.T) {
	reg := newRegistry(t)
	loans := service.NewLoans(reg.Tools)

	_, err := loans.Loan(context.Background(), 1, "   ", time.Now(), time.Now().AddDate(0, 0, 7))
	var verr *models.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "borrower", verr.Field)
}

func TestLoans_ReturnRequiresOnLoan(t *testing.T) {
	reg := newRegistry(t)
	loans := service.NewLoans(reg.Tools)
	ctx := context.Background()

	_, err := loans.Return(ctx, 1)
	assert.ErrorIs(t, err, models.ErrConflict)

	_, err = loans.Return(ctx, 999)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestIsOverdue(t *testing.T) {
	now := time.Date(2024, time.November, 25, 14, 30, 0, 0, time.UTC)
	onLoan := func(due time.Time) models.Tool {
		return models.Tool{Availability: models.ToolOnLoan, ExpectedReturn: &due}
	}

	yesterday := time.Date(2024, time.November, 24, 0, 0, 0, 0, time.UTC)
	today := time.Date(2024, time.November, 25, 0, 0, 0, 0, time.UTC)
	tomorrow := time.Date(2024, time.November, 26, 0, 0, 0, 0, time.UTC)

	assert.True(t, service.IsOverdue(onLoan(yesterday), now))
	// due today is not yet overdue
	assert.False(t, service.IsOverdue(onLoan(today), now))
	assert.False(t, service.IsOverdue(onLoan(tomorrow), now))

	// only tools on loan can be overdue
	past := models.Tool{Availability: models.ToolAvailable, ExpectedReturn: &yesterday}
	assert.False(t, service.IsOverdue(past, now))
	assert.False(t, service.IsOverdue(models.Tool{Availability: models.ToolOnLoan}, now))
}

func TestLoans_Overdue(t *testing.T) {
	reg := newRegistry(t)
	loans := service.NewLoans(reg.Tools)
	ctx := context.Background()

	now := time.Now()
	_, err := loans.Loan(ctx, 1, "Jean Dupont", now.AddDate(0, 0, -10), now.AddDate(0, 0, -3))
	require.NoError(t, err)
	_, err = loans.Loan(ctx, 2, "Marie Martin", now, now.AddDate(0, 0, 7))
	require.NoError(t, err)

	overdue, err := loans.Overdue(ctx, now)
	require.NoError(t, err)
	require.Len(t, overdue, 1)
	assert.Equal(t, int64(1), overdue[0].ID)
}
