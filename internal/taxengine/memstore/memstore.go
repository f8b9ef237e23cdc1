// Package memstore is an in-memory taxengine.RecordStore with the same
// filtering rules as the gorm-backed store. It is meant for tests and local
// experiments.
package memstore

import (
	"context"
	"sync"

	"taxledger/internal/model"
	"taxledger/internal/taxengine"

	"github.com/google/uuid"
)

// Store keeps records in insertion order. The Fail* fields inject errors into
// the matching operation.
type Store struct {
	mu           sync.RWMutex
	businesses   map[uuid.UUID]model.Business
	rates        []model.TaxRate
	revenues     []model.Revenue
	expenses     []model.Expense
	payroll      []model.Payroll
	calculations []model.TaxCalculation

	FailBusiness error
	FailRates    error
	FailRevenues error
	FailExpenses error
	FailPayroll  error
	FailInsert   error
}

var _ taxengine.RecordStore = (*Store)(nil)

func New() *Store {
	return &Store{businesses: make(map[uuid.UUID]model.Business)}
}

func (s *Store) AddBusiness(b model.Business) model.Business {
	s.mu.Lock()
	defer s.mu.Unlock()
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	s.businesses[b.ID] = b
	return b
}

func (s *Store) AddTaxRate(r model.TaxRate) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	s.rates = append(s.rates, r)
}

func (s *Store) AddRevenue(r model.Revenue) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.revenues = append(s.revenues, r)
}

func (s *Store) AddExpense(e model.Expense) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.expenses = append(s.expenses, e)
}

func (s *Store) AddPayroll(p model.Payroll) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.payroll = append(s.payroll, p)
}

// Calculations returns a copy of every inserted calculation
func (s *Store) Calculations() []model.TaxCalculation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.TaxCalculation, len(s.calculations))
	copy(out, s.calculations)
	return out
}

func (s *Store) FindBusiness(_ context.Context, id uuid.UUID) (*model.Business, error) {
	if s.FailBusiness != nil {
		return nil, s.FailBusiness
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.businesses[id]
	if !ok {
		return nil, nil
	}
	return &b, nil
}

func (s *Store) ListActiveTaxRates(_ context.Context, regime model.TaxRegime) ([]model.TaxRate, error) {
	if s.FailRates != nil {
		return nil, s.FailRates
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []model.TaxRate
	for _, r := range s.rates {
		if r.Regime == regime && r.EffectiveTo == nil {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *Store) ListRevenues(_ context.Context, businessID uuid.UUID, p taxengine.Period) ([]model.Revenue, error) {
	if s.FailRevenues != nil {
		return nil, s.FailRevenues
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []model.Revenue
	for _, r := range s.revenues {
		if r.BusinessID != businessID {
			continue
		}
		if !r.PeriodStart.Before(p.Start) && !r.PeriodEnd.After(p.End) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *Store) ListExpenses(_ context.Context, businessID uuid.UUID, p taxengine.Period) ([]model.Expense, error) {
	if s.FailExpenses != nil {
		return nil, s.FailExpenses
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []model.Expense
	for _, e := range s.expenses {
		if e.BusinessID == businessID && p.Contains(e.ExpenseDate) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (s *Store) ListPayroll(_ context.Context, businessID uuid.UUID, fromYear, toYear int) ([]model.Payroll, error) {
	if s.FailPayroll != nil {
		return nil, s.FailPayroll
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []model.Payroll
	for _, p := range s.payroll {
		if p.BusinessID == businessID && p.PeriodYear >= fromYear && p.PeriodYear <= toYear {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *Store) InsertTaxCalculation(_ context.Context, calc *model.TaxCalculation) error {
	if s.FailInsert != nil {
		return s.FailInsert
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if calc.ID == uuid.Nil {
		calc.ID = uuid.New()
	}
	s.calculations = append(s.calculations, *calc)
	return nil
}
