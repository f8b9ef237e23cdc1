package service

import (
	"context"
	"fmt"
	"time"

	"taxledger/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// RecentCalculationsLimit is how many calculations the summary carries
const RecentCalculationsLimit = 5

type DashboardSummaryResponse struct {
	BusinessID         string                   `json:"business_id"`
	Year               int                      `json:"year"`
	TotalRevenue       string                   `json:"total_revenue"`
	TotalExpenses      string                   `json:"total_expenses"`
	TotalTaxLiability  string                   `json:"total_tax_liability"`
	RecentCalculations []TaxCalculationResponse `json:"recent_calculations"`
}

type DashboardService interface {
	Summary(ctx context.Context, businessID string, year int) (*DashboardSummaryResponse, error)
}

type dashboardService struct {
	revenues     repository.RevenueRepository
	expenses     repository.ExpenseRepository
	calculations repository.TaxCalculationRepository
}

func NewDashboardService(
	revenues repository.RevenueRepository,
	expenses repository.ExpenseRepository,
	calculations repository.TaxCalculationRepository,
) DashboardService {
	return &dashboardService{revenues: revenues, expenses: expenses, calculations: calculations}
}

// Summary aggregates one business's year to date figures. Revenues count only
// when their booked period lies inside the year. The tax liability is the one
// on the most recent calculation, whatever period it covers.
func (s *dashboardService) Summary(ctx context.Context, businessID string, year int) (*DashboardSummaryResponse, error) {
	id, err := uuid.Parse(businessID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid business_id", ErrInvalidRequest)
	}
	if year < 1 || year > 9999 {
		return nil, fmt.Errorf("%w: invalid year", ErrInvalidRequest)
	}

	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)

	res := &DashboardSummaryResponse{BusinessID: id.String(), Year: year}
	revenue, expenses := decimal.Zero, decimal.Zero

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		rows, err := s.revenues.ListWithin(gctx, id, start, end)
		if err != nil {
			return fmt.Errorf("failed to fetch revenues: %w", err)
		}
		for _, r := range rows {
			revenue = revenue.Add(r.Amount)
		}
		return nil
	})
	g.Go(func() error {
		rows, err := s.expenses.ListBetween(gctx, id, start, end)
		if err != nil {
			return fmt.Errorf("failed to fetch expenses: %w", err)
		}
		for _, e := range rows {
			expenses = expenses.Add(e.Amount)
		}
		return nil
	})
	g.Go(func() error {
		filter := repository.TaxCalculationFilter{BusinessID: &id, Limit: RecentCalculationsLimit}
		calcs, _, err := s.calculations.List(gctx, filter)
		if err != nil {
			return fmt.Errorf("failed to fetch tax calculations: %w", err)
		}
		res.RecentCalculations = make([]TaxCalculationResponse, 0, len(calcs))
		for _, c := range calcs {
			res.RecentCalculations = append(res.RecentCalculations, toTaxCalculationResponse(c))
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	res.TotalRevenue = money(revenue)
	res.TotalExpenses = money(expenses)
	res.TotalTaxLiability = money(decimal.Zero)
	if len(res.RecentCalculations) > 0 {
		res.TotalTaxLiability = res.RecentCalculations[0].TotalTaxLiability
	}
	return res, nil
}
