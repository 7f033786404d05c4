package tax

import (
	"github.com/shopspring/decimal"

	"fakturo/internal/domain"
)

// CalculateZUS computes the monthly contribution breakdown from a resolved
// rate configuration. Contributions are a fixed monthly policy with no
// period dependency. Sickness insurance is zeroed when not included,
// regardless of its rate.
func CalculateZUS(cfg RateConfig) domain.ZUSBreakdown {
	base := cfg.ZUSBase

	retirement := contribution(base, cfg.RetirementRate)
	disability := contribution(base, cfg.DisabilityRate)
	accident := contribution(base, cfg.AccidentRate)
	sickness := decimal.Zero
	if cfg.SicknessIncluded {
		sickness = contribution(base, cfg.SicknessRate)
	}
	laborFund := contribution(base, cfg.LaborFundRate)
	fep := contribution(base, cfg.FEPRate)

	health := cfg.HealthInsuranceAmount
	if !health.IsPositive() {
		health = HealthInsuranceForTier(cfg.HealthInsuranceTier)
	}

	socialTotal := retirement.Add(disability).Add(accident).Add(sickness).Add(laborFund).Add(fep)

	return domain.ZUSBreakdown{
		Retirement:           retirement,
		Disability:           disability,
		Accident:             accident,
		Sickness:             sickness,
		LaborFund:            laborFund,
		FEP:                  fep,
		HealthInsurance:      health,
		SocialInsuranceTotal: socialTotal,
		Total:                socialTotal.Add(health),
	}
}

func contribution(base decimal.Decimal, ratePercent float64) decimal.Decimal {
	return base.Mul(decimal.NewFromFloat(ratePercent)).Div(oneHundred)
}
