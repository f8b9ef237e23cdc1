package taxengine

import (
	"context"

	"taxledger/internal/model"

	"github.com/google/uuid"
)

//go:generate mockgen -destination=mocks/mock_store.go -package=mocks taxledger/internal/taxengine RecordStore

// RecordStore is the data access the engine needs. Implementations own
// timeouts and retries; the engine never retries.
type RecordStore interface {
	// FindBusiness returns (nil, nil) when the business does not exist.
	FindBusiness(ctx context.Context, id uuid.UUID) (*model.Business, error)
	// ListActiveTaxRates returns the regime's rates with no effective_to.
	ListActiveTaxRates(ctx context.Context, regime model.TaxRegime) ([]model.TaxRate, error)
	// ListRevenues returns revenues fully contained in [start, end].
	ListRevenues(ctx context.Context, businessID uuid.UUID, p Period) ([]model.Revenue, error)
	// ListExpenses returns expenses dated within [start, end].
	ListExpenses(ctx context.Context, businessID uuid.UUID, p Period) ([]model.Expense, error)
	// ListPayroll returns entries whose period_year is in [fromYear, toYear].
	// The engine narrows them to the window by month.
	ListPayroll(ctx context.Context, businessID uuid.UUID, fromYear, toYear int) ([]model.Payroll, error)
	InsertTaxCalculation(ctx context.Context, calc *model.TaxCalculation) error
}
