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
	"taxledger/pkg/pagination"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// --- DTOs ---

type CalculationRequest struct {
	BusinessID  string `json:"business_id" binding:"required"`
	PeriodStart string `json:"period_start" binding:"required"` // YYYY-MM-DD
	PeriodEnd   string `json:"period_end" binding:"required"`   // YYYY-MM-DD
}

type TaxCalculationResponse struct {
	ID                  string `json:"id"`
	BusinessID          string `json:"business_id"`
	PeriodStart         string `json:"period_start"`
	PeriodEnd           string `json:"period_end"`
	TotalRevenue        string `json:"total_revenue"`
	TotalExpenses       string `json:"total_expenses"`
	TaxableIncome       string `json:"taxable_income"`
	IncomeTax           string `json:"income_tax"`
	VATPayable          string `json:"vat_payable"`
	SocialContributions string `json:"social_contributions"`
	TotalTaxLiability   string `json:"total_tax_liability"`
	Status              string `json:"status"`
	CreatedAt           string `json:"created_at"`
}

type RevenueLineResponse struct {
	Amount      string `json:"amount"`
	Date        string `json:"date"`
	Description string `json:"description"`
}

type ExpenseLineResponse struct {
	Amount   string `json:"amount"`
	Date     string `json:"date"`
	Category string `json:"category"`
}

type PayrollLineResponse struct {
	Salary   string `json:"salary"`
	Employee string `json:"employee"`
	Tax      string `json:"tax"`
}

type BreakdownResponse struct {
	Revenues []RevenueLineResponse `json:"revenue_details"`
	Expenses []ExpenseLineResponse `json:"expense_details"`
	Payroll  []PayrollLineResponse `json:"payroll_details"`
}

// CalculationPreviewResponse is an unsaved engine result
type CalculationPreviewResponse struct {
	BusinessID          string            `json:"business_id"`
	PeriodStart         string            `json:"period_start"`
	PeriodEnd           string            `json:"period_end"`
	Regime              string            `json:"regime"`
	TotalRevenue        string            `json:"total_revenue"`
	TotalExpenses       string            `json:"total_expenses"`
	TotalPayroll        string            `json:"total_payroll"`
	TaxableIncome       string            `json:"taxable_income"`
	IncomeTax           string            `json:"income_tax"`
	VATPayable          string            `json:"vat_payable"`
	SocialContributions string            `json:"social_contributions"`
	TotalTaxLiability   string            `json:"total_tax_liability"`
	Breakdown           BreakdownResponse `json:"breakdown"`
	Warnings            []string          `json:"warnings"`
}

type CalculateResponse struct {
	Calculation TaxCalculationResponse     `json:"calculation"`
	Result      CalculationPreviewResponse `json:"result"`
}

// --- Interface ---

type TaxCalculationService interface {
	Preview(ctx context.Context, req CalculationRequest) (*CalculationPreviewResponse, error)
	Calculate(ctx context.Context, req CalculationRequest) (*CalculateResponse, error)
	List(ctx context.Context, businessID string, p pagination.Params) ([]TaxCalculationResponse, int64, error)
	Get(ctx context.Context, id string) (*TaxCalculationResponse, error)
	Finalize(ctx context.Context, id string) (*TaxCalculationResponse, error)
}

type taxCalculationService struct {
	engine       *taxengine.Engine
	calculations repository.TaxCalculationRepository
	audits       repository.AuditRepository
	events       EventPublisher
	logger       *zap.Logger
}

func NewTaxCalculationService(
	engine *taxengine.Engine,
	calculations repository.TaxCalculationRepository,
	audits repository.AuditRepository,
	events EventPublisher,
	logger *zap.Logger,
) TaxCalculationService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &taxCalculationService{
		engine:       engine,
		calculations: calculations,
		audits:       audits,
		events:       publisherOrNop(events),
		logger:       logger,
	}
}

// --- Implementation ---

func (s *taxCalculationService) Preview(ctx context.Context, req CalculationRequest) (*CalculationPreviewResponse, error) {
	result, err := s.compute(ctx, req)
	if err != nil {
		return nil, err
	}
	res := toPreviewResponse(result)
	return &res, nil
}

func (s *taxCalculationService) Calculate(ctx context.Context, req CalculationRequest) (*CalculateResponse, error) {
	result, err := s.compute(ctx, req)
	if err != nil {
		return nil, err
	}

	calc, err := s.engine.Save(ctx, result, model.CalculationDraft)
	if err != nil {
		return nil, err
	}

	s.audit(ctx, model.ActionCreateTaxCalculation, calc, map[string]string{
		"period":              result.Period.String(),
		"total_tax_liability": money(calc.TotalTaxLiability),
	})

	res := &CalculateResponse{
		Calculation: toTaxCalculationResponse(*calc),
		Result:      toPreviewResponse(result),
	}
	s.events.Publish(websocket.Event{
		Type:       websocket.EventTaxCalculationCreated,
		BusinessID: calc.BusinessID.String(),
		Payload:    res.Calculation,
	})
	return res, nil
}

func (s *taxCalculationService) List(ctx context.Context, businessID string, p pagination.Params) ([]TaxCalculationResponse, int64, error) {
	filter := repository.TaxCalculationFilter{Offset: p.Offset, Limit: p.Limit}
	if businessID != "" {
		id, err := uuid.Parse(businessID)
		if err != nil {
			return nil, 0, fmt.Errorf("%w: invalid business_id", ErrInvalidRequest)
		}
		filter.BusinessID = &id
	}

	calcs, total, err := s.calculations.List(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch tax calculations: %w", err)
	}

	res := make([]TaxCalculationResponse, 0, len(calcs))
	for _, c := range calcs {
		res = append(res, toTaxCalculationResponse(c))
	}
	return res, total, nil
}

func (s *taxCalculationService) Get(ctx context.Context, id string) (*TaxCalculationResponse, error) {
	calc, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	res := toTaxCalculationResponse(*calc)
	return &res, nil
}

// Finalize moves a draft to final. A final calculation is never changed again.
func (s *taxCalculationService) Finalize(ctx context.Context, id string) (*TaxCalculationResponse, error) {
	calc, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if calc.Status == model.CalculationFinal {
		return nil, ErrTaxCalculationAlreadyFinal
	}

	updated, err := s.calculations.UpdateStatus(ctx, calc.ID, model.CalculationDraft, model.CalculationFinal)
	if err != nil {
		return nil, fmt.Errorf("failed to finalize tax calculation: %w", err)
	}
	if !updated {
		return nil, ErrTaxCalculationAlreadyFinal
	}
	calc.Status = model.CalculationFinal

	s.audit(ctx, model.ActionFinalizeTaxCalculation, calc, map[string]string{
		"total_tax_liability": money(calc.TotalTaxLiability),
	})

	res := toTaxCalculationResponse(*calc)
	s.events.Publish(websocket.Event{
		Type:       websocket.EventTaxCalculationFinalized,
		BusinessID: calc.BusinessID.String(),
		Payload:    res,
	})
	return &res, nil
}

// --- Helpers ---

func (s *taxCalculationService) compute(ctx context.Context, req CalculationRequest) (*taxengine.Result, error) {
	businessID, err := uuid.Parse(req.BusinessID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid business_id", ErrInvalidRequest)
	}
	period, err := taxengine.ParsePeriod(req.PeriodStart, req.PeriodEnd)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}
	return s.engine.Calculate(ctx, businessID, period)
}

func (s *taxCalculationService) find(ctx context.Context, id string) (*model.TaxCalculation, error) {
	calcID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid tax calculation id", ErrInvalidRequest)
	}
	calc, err := s.calculations.FindByID(ctx, calcID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaxCalculationNotFound
		}
		return nil, fmt.Errorf("failed to fetch tax calculation: %w", err)
	}
	return calc, nil
}

// audit is best effort: the calculation row is already committed
func (s *taxCalculationService) audit(ctx context.Context, action string, calc *model.TaxCalculation, details map[string]string) {
	name := calc.PeriodStart.Format(taxengine.DateLayout) + ".." + calc.PeriodEnd.Format(taxengine.DateLayout)
	if err := writeAuditLog(ctx, s.audits, action, calc.ID.String(), name, details); err != nil {
		s.logger.Warn("failed to write audit log",
			zap.String("action", action),
			zap.String("calculation_id", calc.ID.String()),
			zap.Error(err),
		)
	}
}

func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func toTaxCalculationResponse(c model.TaxCalculation) TaxCalculationResponse {
	return TaxCalculationResponse{
		ID:                  c.ID.String(),
		BusinessID:          c.BusinessID.String(),
		PeriodStart:         c.PeriodStart.Format(taxengine.DateLayout),
		PeriodEnd:           c.PeriodEnd.Format(taxengine.DateLayout),
		TotalRevenue:        money(c.TotalRevenue),
		TotalExpenses:       money(c.TotalExpenses),
		TaxableIncome:       money(c.TaxableIncome),
		IncomeTax:           money(c.IncomeTax),
		VATPayable:          money(c.VATPayable),
		SocialContributions: money(c.SocialContributions),
		TotalTaxLiability:   money(c.TotalTaxLiability),
		Status:              string(c.Status),
		CreatedAt:           c.CreatedAt.Format(time.RFC3339),
	}
}

func toPreviewResponse(r *taxengine.Result) CalculationPreviewResponse {
	res := CalculationPreviewResponse{
		BusinessID:          r.BusinessID.String(),
		PeriodStart:         r.Period.Start.Format(taxengine.DateLayout),
		PeriodEnd:           r.Period.End.Format(taxengine.DateLayout),
		Regime:              string(r.Regime),
		TotalRevenue:        money(r.TotalRevenue),
		TotalExpenses:       money(r.TotalExpenses),
		TotalPayroll:        money(r.TotalPayroll),
		TaxableIncome:       money(r.TaxableIncome),
		IncomeTax:           money(r.IncomeTax),
		VATPayable:          money(r.VATPayable),
		SocialContributions: money(r.SocialContributions),
		TotalTaxLiability:   money(r.TotalTaxLiability),
		Breakdown: BreakdownResponse{
			Revenues: make([]RevenueLineResponse, 0, len(r.Breakdown.Revenues)),
			Expenses: make([]ExpenseLineResponse, 0, len(r.Breakdown.Expenses)),
			Payroll:  make([]PayrollLineResponse, 0, len(r.Breakdown.Payroll)),
		},
		Warnings: r.Warnings,
	}
	if res.Warnings == nil {
		res.Warnings = []string{}
	}
	for _, l := range r.Breakdown.Revenues {
		res.Breakdown.Revenues = append(res.Breakdown.Revenues, RevenueLineResponse{
			Amount: money(l.Amount), Date: l.Date.Format(taxengine.DateLayout), Description: l.Description,
		})
	}
	for _, l := range r.Breakdown.Expenses {
		res.Breakdown.Expenses = append(res.Breakdown.Expenses, ExpenseLineResponse{
			Amount: money(l.Amount), Date: l.Date.Format(taxengine.DateLayout), Category: l.Category,
		})
	}
	for _, l := range r.Breakdown.Payroll {
		res.Breakdown.Payroll = append(res.Breakdown.Payroll, PayrollLineResponse{
			Salary: money(l.Salary), Employee: l.Employee, Tax: money(l.Tax),
		})
	}
	return res
}
