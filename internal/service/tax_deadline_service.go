package service

import (
	"context"
	"fmt"
	"maps"
	"math"
	"slices"
	"time"

	"taxledger/internal/model"
	"taxledger/internal/repository"
	"taxledger/internal/taxengine"
)

type DeadlineStatus string

const (
	DeadlineOverdue  DeadlineStatus = "overdue"
	DeadlineUrgent   DeadlineStatus = "urgent"
	DeadlineUpcoming DeadlineStatus = "upcoming"
	DeadlineFuture   DeadlineStatus = "future"
)

// --- DTOs ---

type TaxDeadlineResponse struct {
	ID             string         `json:"id"`
	TaxType        string         `json:"tax_type"`
	DeadlineDate   string         `json:"deadline_date"`
	PeriodYear     int            `json:"period_year"`
	PeriodQuarter  *int           `json:"period_quarter"`
	Description    string         `json:"description"`
	IsReminderSent bool           `json:"is_reminder_sent"`
	DaysUntil      int            `json:"days_until"`
	Status         DeadlineStatus `json:"status"`
}

type DeadlineYearGroup struct {
	Year      int                   `json:"year"`
	Deadlines []TaxDeadlineResponse `json:"deadlines"`
}

// --- Interface ---

type TaxDeadlineService interface {
	ListDeadlines(ctx context.Context, year int, now time.Time) ([]DeadlineYearGroup, error)
}

type taxDeadlineService struct {
	deadlines repository.TaxDeadlineRepository
}

func NewTaxDeadlineService(deadlines repository.TaxDeadlineRepository) TaxDeadlineService {
	return &taxDeadlineService{deadlines: deadlines}
}

// ListDeadlines groups deadlines by period year, years ascending, each group
// ordered by deadline date. year 0 lists every year.
func (s *taxDeadlineService) ListDeadlines(ctx context.Context, year int, now time.Time) ([]DeadlineYearGroup, error) {
	if year < 0 {
		return nil, fmt.Errorf("%w: invalid year", ErrInvalidRequest)
	}
	deadlines, err := s.deadlines.List(ctx, year)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch tax deadlines: %w", err)
	}

	byYear := make(map[int][]TaxDeadlineResponse)
	for _, d := range deadlines {
		byYear[d.PeriodYear] = append(byYear[d.PeriodYear], toTaxDeadlineResponse(d, now))
	}

	groups := make([]DeadlineYearGroup, 0, len(byYear))
	for _, y := range slices.Sorted(maps.Keys(byYear)) {
		groups = append(groups, DeadlineYearGroup{Year: y, Deadlines: byYear[y]})
	}
	return groups, nil
}

// ClassifyDeadline returns the whole days left until deadline, rounded up,
// and the matching status.
func ClassifyDeadline(deadline, now time.Time) (int, DeadlineStatus) {
	days := int(math.Ceil(deadline.Sub(now).Hours() / 24))
	switch {
	case days < 0:
		return days, DeadlineOverdue
	case days <= 7:
		return days, DeadlineUrgent
	case days <= 30:
		return days, DeadlineUpcoming
	default:
		return days, DeadlineFuture
	}
}

func toTaxDeadlineResponse(d model.TaxDeadline, now time.Time) TaxDeadlineResponse {
	days, status := ClassifyDeadline(d.DeadlineDate, now)
	return TaxDeadlineResponse{
		ID:             d.ID.String(),
		TaxType:        d.TaxType,
		DeadlineDate:   d.DeadlineDate.Format(taxengine.DateLayout),
		PeriodYear:     d.PeriodYear,
		PeriodQuarter:  d.PeriodQuarter,
		Description:    d.Description,
		IsReminderSent: d.IsReminderSent,
		DaysUntil:      days,
		Status:         status,
	}
}
