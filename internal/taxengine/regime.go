package taxengine

import (
	"fmt"

	"taxledger/internal/model"

	"github.com/shopspring/decimal"
)

// RegimeRules holds the formulas that differ between regimes. Income tax and
// VAT are shared and live in Derive.
type RegimeRules interface {
	Regime() model.TaxRegime
	SocialContributions(payrollGross decimal.Decimal, rates RateTable) decimal.Decimal
}

type simplifiedRules struct{}

func (simplifiedRules) Regime() model.TaxRegime { return model.RegimeSimplified }

// SocialContributions is always zero under the simplified regime, whatever
// the payroll. Pending confirmation with the domain expert.
func (simplifiedRules) SocialContributions(decimal.Decimal, RateTable) decimal.Decimal {
	return decimal.Zero
}

type generalRules struct{}

func (generalRules) Regime() model.TaxRegime { return model.RegimeGeneral }

func (generalRules) SocialContributions(payrollGross decimal.Decimal, rates RateTable) decimal.Decimal {
	return payrollGross.Mul(rates.RateFor(model.RateTypeSocial))
}

var regimeRules = map[model.TaxRegime]RegimeRules{
	model.RegimeSimplified: simplifiedRules{},
	model.RegimeGeneral:    generalRules{},
}

// RulesFor selects the strategy for a regime
func RulesFor(regime model.TaxRegime) (RegimeRules, error) {
	rules, ok := regimeRules[regime]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownRegime, regime)
	}
	return rules, nil
}
