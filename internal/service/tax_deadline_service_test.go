package service

import (
	"context"
	"testing"
	"time"

	"taxledger/internal/model"
	"taxledger/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyDeadline(t *testing.T) {
	now := time.Date(2024, 4, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		deadline string
		days     int
		status   DeadlineStatus
	}{
		{"2024-04-01", -9, DeadlineOverdue},
		{"2024-04-10", 0, DeadlineUrgent},
		{"2024-04-11", 1, DeadlineUrgent},
		{"2024-04-17", 7, DeadlineUrgent},
		{"2024-04-18", 8, DeadlineUpcoming},
		{"2024-05-10", 30, DeadlineUpcoming},
		{"2024-05-11", 31, DeadlineFuture},
	}

	for _, tt := range tests {
		t.Run(tt.deadline, func(t *testing.T) {
			days, status := ClassifyDeadline(date(tt.deadline), now)
			assert.Equal(t, tt.days, days)
			assert.Equal(t, tt.status, status)
		})
	}
}

func TestTaxDeadlineService_GroupsByYear(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewTaxDeadlineRepository(db)
	ctx := context.Background()

	q1 := 1
	for _, d := range []*model.TaxDeadline{
		{TaxType: "income_tax", DeadlineDate: date("2025-03-20"), PeriodYear: 2025},
		{TaxType: "vat", DeadlineDate: date("2024-04-22"), PeriodYear: 2024, PeriodQuarter: &q1},
		{TaxType: "income_tax", DeadlineDate: date("2024-03-20"), PeriodYear: 2024},
	} {
		require.NoError(t, repo.Create(ctx, d))
	}

	svc := NewTaxDeadlineService(repo)
	now := time.Date(2024, 4, 15, 0, 0, 0, 0, time.UTC)

	groups, err := svc.ListDeadlines(ctx, 0, now)
	require.NoError(t, err)
	require.Len(t, groups, 2)
	assert.Equal(t, 2024, groups[0].Year)
	require.Len(t, groups[0].Deadlines, 2)
	assert.Equal(t, "2024-03-20", groups[0].Deadlines[0].DeadlineDate)
	assert.Equal(t, DeadlineOverdue, groups[0].Deadlines[0].Status)
	assert.Equal(t, DeadlineUrgent, groups[0].Deadlines[1].Status)
	assert.Equal(t, 2025, groups[1].Year)
	assert.Equal(t, DeadlineFuture, groups[1].Deadlines[0].Status)

	only, err := svc.ListDeadlines(ctx, 2025, now)
	require.NoError(t, err)
	require.Len(t, only, 1)
	assert.Len(t, only[0].Deadlines, 1)

	_, err = svc.ListDeadlines(ctx, -1, now)
	assert.ErrorIs(t, err, ErrInvalidRequest)
}
