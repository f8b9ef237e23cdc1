package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"taxledger/internal/model"
	"taxledger/internal/taxengine"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// StoreError wraps a failed store call and records whether retrying it later
// might succeed.
type StoreError struct {
	Op        string
	Err       error
	transient bool
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

func (e *StoreError) Transient() bool { return e.transient }

type RecordStoreConfig struct {
	Timeout       time.Duration
	MaxRetries    int
	RetryInterval time.Duration
}

func DefaultRecordStoreConfig() RecordStoreConfig {
	return RecordStoreConfig{
		Timeout:       5 * time.Second,
		MaxRetries:    2,
		RetryInterval: 100 * time.Millisecond,
	}
}

// RecordStore serves the tax engine from the gorm repositories. Reads retry
// transient connection errors; the calculation insert is attempted once.
type RecordStore struct {
	businesses   BusinessRepository
	rates        TaxRateRepository
	revenues     RevenueRepository
	expenses     ExpenseRepository
	payroll      PayrollRepository
	calculations TaxCalculationRepository
	cfg          RecordStoreConfig
	logger       *zap.Logger
}

var _ taxengine.RecordStore = (*RecordStore)(nil)

func NewRecordStore(db *gorm.DB, cfg RecordStoreConfig, logger *zap.Logger) *RecordStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultRecordStoreConfig().Timeout
	}
	if cfg.RetryInterval <= 0 {
		cfg.RetryInterval = DefaultRecordStoreConfig().RetryInterval
	}
	if cfg.MaxRetries < 0 {
		cfg.MaxRetries = 0
	}
	return &RecordStore{
		businesses:   NewBusinessRepository(db),
		rates:        NewTaxRateRepository(db),
		revenues:     NewRevenueRepository(db),
		expenses:     NewExpenseRepository(db),
		payroll:      NewPayrollRepository(db),
		calculations: NewTaxCalculationRepository(db),
		cfg:          cfg,
		logger:       logger,
	}
}

func (s *RecordStore) FindBusiness(ctx context.Context, id uuid.UUID) (*model.Business, error) {
	var business *model.Business
	err := s.read(ctx, "find business", func(ctx context.Context) error {
		b, err := s.businesses.FindByID(ctx, id)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		business = b
		return err
	})
	if err != nil {
		return nil, err
	}
	return business, nil
}

func (s *RecordStore) ListActiveTaxRates(ctx context.Context, regime model.TaxRegime) ([]model.TaxRate, error) {
	var rates []model.TaxRate
	err := s.read(ctx, "list active tax rates", func(ctx context.Context) (err error) {
		rates, err = s.rates.ListActive(ctx, regime)
		return err
	})
	return rates, err
}

func (s *RecordStore) ListRevenues(ctx context.Context, businessID uuid.UUID, p taxengine.Period) ([]model.Revenue, error) {
	var revenues []model.Revenue
	err := s.read(ctx, "list revenues", func(ctx context.Context) (err error) {
		revenues, err = s.revenues.ListWithin(ctx, businessID, p.Start, p.End)
		return err
	})
	return revenues, err
}

func (s *RecordStore) ListExpenses(ctx context.Context, businessID uuid.UUID, p taxengine.Period) ([]model.Expense, error) {
	var expenses []model.Expense
	err := s.read(ctx, "list expenses", func(ctx context.Context) (err error) {
		expenses, err = s.expenses.ListBetween(ctx, businessID, p.Start, p.End)
		return err
	})
	return expenses, err
}

func (s *RecordStore) ListPayroll(ctx context.Context, businessID uuid.UUID, fromYear, toYear int) ([]model.Payroll, error) {
	var entries []model.Payroll
	err := s.read(ctx, "list payroll", func(ctx context.Context) (err error) {
		entries, err = s.payroll.ListByYears(ctx, businessID, fromYear, toYear)
		return err
	})
	return entries, err
}

// InsertTaxCalculation is not retried: a lost acknowledgement could
// otherwise store the same calculation twice.
func (s *RecordStore) InsertTaxCalculation(ctx context.Context, calc *model.TaxCalculation) error {
	callCtx, cancel := context.WithTimeout(ctx, s.cfg.Timeout)
	defer cancel()
	if err := s.calculations.Create(callCtx, calc); err != nil {
		return s.classify(ctx, callCtx, "insert tax calculation", err)
	}
	return nil
}

// read runs fn with a per-attempt timeout and retries transient errors with
// exponential backoff. Inside a transaction a failed statement aborts the
// transaction, so nothing is retried there.
func (s *RecordStore) read(ctx context.Context, op string, fn func(ctx context.Context) error) error {
	attempt := 0
	operation := func() error {
		attempt++
		callCtx, cancel := context.WithTimeout(ctx, s.cfg.Timeout)
		defer cancel()

		err := fn(callCtx)
		if err == nil {
			return nil
		}
		storeErr := s.classify(ctx, callCtx, op, err)
		if !isRetryable(storeErr) || InTx(ctx) {
			return backoff.Permanent(storeErr)
		}
		s.logger.Warn("transient store error, retrying",
			zap.String("op", op),
			zap.Int("attempt", attempt),
			zap.Error(err),
		)
		return storeErr
	}

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = s.cfg.RetryInterval
	policy.MaxElapsedTime = 0

	return backoff.Retry(operation, backoff.WithContext(
		backoff.WithMaxRetries(policy, uint64(s.cfg.MaxRetries)), ctx))
}

// classify wraps err as a StoreError. callCtx is the per-call context and ctx
// its parent; a deadline on callCtx alone is our own timeout.
func (s *RecordStore) classify(ctx, callCtx context.Context, op string, err error) *StoreError {
	storeErr := &StoreError{Op: op, Err: err}
	switch {
	case ctx.Err() != nil:
		// caller gave up, not a store fault worth retrying
	case errors.Is(callCtx.Err(), context.DeadlineExceeded), pgconn.Timeout(err):
		storeErr.Err = fmt.Errorf("timed out after %s: %w", s.cfg.Timeout, err)
		storeErr.transient = true
	case isTransientPgError(err):
		storeErr.transient = true
	}
	return storeErr
}

// isRetryable excludes timeouts: a statement that hit our deadline is likely
// to hit it again.
func isRetryable(err *StoreError) bool {
	if !err.transient {
		return false
	}
	return isTransientPgError(err.Err) && !errors.Is(err.Err, context.DeadlineExceeded)
}

// isTransientPgError reports connection-class and concurrency SQLSTATEs and
// failures to reach the server at all.
func isTransientPgError(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case strings.HasPrefix(pgErr.Code, "08"):
			return true
		case pgErr.Code == "40001", pgErr.Code == "40P01", pgErr.Code == "57P01":
			return true
		}
		return false
	}
	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) {
		return true
	}
	return pgconn.SafeToRetry(err)
}
