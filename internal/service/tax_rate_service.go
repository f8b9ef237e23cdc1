package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"taxledger/internal/model"
	"taxledger/internal/repository"
	"taxledger/internal/taxengine"
	"taxledger/internal/websocket"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// --- DTOs ---

type SupersedeTaxRateRequest struct {
	Regime        string `json:"regime" binding:"required,oneof=simplified general"`
	RateType      string `json:"rate_type" binding:"required,oneof=income_tax vat social payroll"`
	RateValue     string `json:"rate_value" binding:"required"`     // Percent as decimal string, e.g. "20"
	EffectiveFrom string `json:"effective_from" binding:"required"` // YYYY-MM-DD
	Description   string `json:"description"`
}

type TaxRateResponse struct {
	ID            string  `json:"id"`
	Regime        string  `json:"regime"`
	RateType      string  `json:"rate_type"`
	RateValue     string  `json:"rate_value"`
	EffectiveFrom string  `json:"effective_from"`
	EffectiveTo   *string `json:"effective_to"`
	Description   string  `json:"description"`
	CreatedAt     string  `json:"created_at"`
}

// --- Interface ---

type TaxRateService interface {
	List(ctx context.Context, regime string) ([]TaxRateResponse, error)
	Supersede(ctx context.Context, req SupersedeTaxRateRequest) (*TaxRateResponse, error)
}

type taxRateService struct {
	rates  repository.TaxRateRepository
	audits repository.AuditRepository
	tx     repository.TransactionManager
	events EventPublisher
	logger *zap.Logger
}

func NewTaxRateService(
	rates repository.TaxRateRepository,
	audits repository.AuditRepository,
	tx repository.TransactionManager,
	events EventPublisher,
	logger *zap.Logger,
) TaxRateService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &taxRateService{
		rates:  rates,
		audits: audits,
		tx:     tx,
		events: publisherOrNop(events),
		logger: logger,
	}
}

var maxRateValue = decimal.NewFromInt(100)

// --- Implementation ---

func (s *taxRateService) List(ctx context.Context, regime string) ([]TaxRateResponse, error) {
	r := model.TaxRegime(regime)
	if regime != "" && !r.Valid() {
		return nil, fmt.Errorf("%w: unknown regime %q", ErrInvalidRequest, regime)
	}

	rates, err := s.rates.List(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch tax rates: %w", err)
	}

	res := make([]TaxRateResponse, 0, len(rates))
	for _, rate := range rates {
		res = append(res, toTaxRateResponse(rate))
	}
	return res, nil
}

// Supersede replaces the open-ended rate for (regime, rate_type). The old rate
// ends the day before the new one starts, so at most one rate per pair is
// ever open.
func (s *taxRateService) Supersede(ctx context.Context, req SupersedeTaxRateRequest) (*TaxRateResponse, error) {
	rate, err := parseSupersedeRequest(req)
	if err != nil {
		return nil, err
	}

	var closed *model.TaxRate
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		active, err := s.rates.FindActive(txCtx, rate.Regime, rate.RateType)
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			active = nil
		case err != nil:
			return fmt.Errorf("failed to fetch active tax rate: %w", err)
		}

		if active != nil {
			if !rate.EffectiveFrom.After(active.EffectiveFrom) {
				return fmt.Errorf("%w (%s)", ErrTaxRateNotAfterActive, active.EffectiveFrom.Format(taxengine.DateLayout))
			}
			end := rate.EffectiveFrom.AddDate(0, 0, -1)
			if err := s.rates.Close(txCtx, active.ID, end); err != nil {
				return fmt.Errorf("failed to close tax rate: %w", err)
			}
			active.EffectiveTo = &end
			closed = active
		}

		if err := s.rates.Create(txCtx, rate); err != nil {
			return fmt.Errorf("failed to create tax rate: %w", err)
		}

		details := map[string]string{"rate_value": rate.RateValue.String()}
		if closed != nil {
			details["superseded_id"] = closed.ID.String()
		}
		return writeAuditLog(txCtx, s.audits, model.ActionSupersedeTaxRate, rate.ID.String(),
			string(rate.Regime)+" "+string(rate.RateType), details)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("tax rate superseded",
		zap.String("regime", string(rate.Regime)),
		zap.String("rate_type", string(rate.RateType)),
		zap.String("rate_value", rate.RateValue.String()),
		zap.Bool("replaced_active", closed != nil),
	)

	res := toTaxRateResponse(*rate)
	payload := map[string]any{"rate": res}
	if closed != nil {
		payload["superseded"] = toTaxRateResponse(*closed)
	}
	s.events.Publish(websocket.Event{Type: websocket.EventTaxRateSuperseded, Payload: payload})
	return &res, nil
}

// --- Helpers ---

func parseSupersedeRequest(req SupersedeTaxRateRequest) (*model.TaxRate, error) {
	regime := model.TaxRegime(req.Regime)
	if !regime.Valid() {
		return nil, fmt.Errorf("%w: unknown regime %q", ErrInvalidRequest, req.Regime)
	}
	rateType := model.RateType(req.RateType)
	if !rateType.Valid() {
		return nil, fmt.Errorf("%w: unknown rate type %q", ErrInvalidRequest, req.RateType)
	}
	value, err := decimal.NewFromString(req.RateValue)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid rate value: %w", ErrInvalidRequest, err)
	}
	if value.IsNegative() || value.GreaterThan(maxRateValue) {
		return nil, fmt.Errorf("%w: rate value must be between 0 and 100", ErrInvalidRequest)
	}
	from, err := time.Parse(taxengine.DateLayout, req.EffectiveFrom)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid effective_from date format (expected YYYY-MM-DD)", ErrInvalidRequest)
	}
	return &model.TaxRate{
		Regime:        regime,
		RateType:      rateType,
		RateValue:     value,
		EffectiveFrom: from,
		Description:   req.Description,
	}, nil
}

func toTaxRateResponse(r model.TaxRate) TaxRateResponse {
	resp := TaxRateResponse{
		ID:            r.ID.String(),
		Regime:        string(r.Regime),
		RateType:      string(r.RateType),
		RateValue:     r.RateValue.StringFixed(2),
		EffectiveFrom: r.EffectiveFrom.Format(taxengine.DateLayout),
		Description:   r.Description,
		CreatedAt:     r.CreatedAt.Format(time.RFC3339),
	}
	if r.EffectiveTo != nil {
		s := r.EffectiveTo.Format(taxengine.DateLayout)
		resp.EffectiveTo = &s
	}
	return resp
}
