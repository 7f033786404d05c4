package tax

import (
	"strings"

	"github.com/shopspring/decimal"

	"fakturo/internal/domain"
)

// Statutory defaults, substituted field-by-field when the stored company
// profile is absent or a specific field is unset. An explicit zero is a
// valid override and is never replaced.
const (
	DefaultVATRate        = 23.0
	DefaultRetirementRate = 19.52
	DefaultDisabilityRate = 8.0
	DefaultAccidentRate   = 1.67
	DefaultSicknessRate   = 2.45
	DefaultLaborFundRate  = 2.45
	DefaultFEPRate        = 0.1
	DefaultPITRate        = 12.0
)

var DefaultZUSBase = decimal.RequireFromString("5203.80")

// Health-insurance amounts by annual income tier.
var healthInsuranceTiers = map[domain.HealthTier]decimal.Decimal{
	domain.HealthTierLow:    decimal.RequireFromString("461.66"),
	domain.HealthTierMedium: decimal.RequireFromString("773.23"),
	domain.HealthTierHigh:   decimal.RequireFromString("1384.97"),
}

// HealthInsuranceForTier resolves the fixed health-insurance amount for a
// tier. The match is case-insensitive; an unrecognized tier falls back to
// the low band.
func HealthInsuranceForTier(tier domain.HealthTier) decimal.Decimal {
	normalized := domain.HealthTier(strings.ToLower(string(tier)))
	if amount, ok := healthInsuranceTiers[normalized]; ok {
		return amount
	}
	return healthInsuranceTiers[domain.HealthTierLow]
}

// RateConfig is the single effective tax/contribution policy. It is a fully
// resolved value: every field carries either the stored override or the
// statutory default.
type RateConfig struct {
	VATRate float64

	PITTaxType domain.TaxType
	PITRate    float64

	ZUSBase          decimal.Decimal
	RetirementRate   float64
	DisabilityRate   float64
	AccidentRate     float64
	SicknessRate     float64
	SicknessIncluded bool
	LaborFundRate    float64
	FEPRate          float64

	// HealthInsuranceAmount overrides the tier table when positive.
	HealthInsuranceAmount decimal.Decimal
	HealthInsuranceTier   domain.HealthTier
}

// DefaultRateConfig returns the full statutory default table.
func DefaultRateConfig() RateConfig {
	return RateConfig{
		VATRate:               DefaultVATRate,
		PITTaxType:            domain.TaxTypeLumpSum,
		PITRate:               DefaultPITRate,
		ZUSBase:               DefaultZUSBase,
		RetirementRate:        DefaultRetirementRate,
		DisabilityRate:        DefaultDisabilityRate,
		AccidentRate:          DefaultAccidentRate,
		SicknessRate:          DefaultSicknessRate,
		SicknessIncluded:      true,
		LaborFundRate:         DefaultLaborFundRate,
		FEPRate:               DefaultFEPRate,
		HealthInsuranceAmount: decimal.Zero,
		HealthInsuranceTier:   domain.HealthTierLow,
	}
}

// ResolveRateConfig merges a possibly-partial company profile over the
// defaults. A nil profile yields the full default table.
func ResolveRateConfig(profile *domain.CompanyProfile) RateConfig {
	cfg := DefaultRateConfig()
	if profile == nil {
		return cfg
	}

	if profile.DefaultVATRate != nil {
		cfg.VATRate = *profile.DefaultVATRate
	}
	if profile.PITTaxType != nil {
		cfg.PITTaxType = *profile.PITTaxType
	}
	if profile.PITRate != nil {
		cfg.PITRate = *profile.PITRate
	}
	if profile.ZUSBaseAmount.Valid {
		cfg.ZUSBase = profile.ZUSBaseAmount.Decimal
	}
	if profile.ZUSRetirementRate != nil {
		cfg.RetirementRate = *profile.ZUSRetirementRate
	}
	if profile.ZUSDisabilityRate != nil {
		cfg.DisabilityRate = *profile.ZUSDisabilityRate
	}
	if profile.ZUSAccidentRate != nil {
		cfg.AccidentRate = *profile.ZUSAccidentRate
	}
	if profile.ZUSSicknessRate != nil {
		cfg.SicknessRate = *profile.ZUSSicknessRate
	}
	if profile.ZUSSicknessIncluded != nil {
		cfg.SicknessIncluded = *profile.ZUSSicknessIncluded
	}
	if profile.ZUSLaborFundRate != nil {
		cfg.LaborFundRate = *profile.ZUSLaborFundRate
	}
	if profile.ZUSFEPRate != nil {
		cfg.FEPRate = *profile.ZUSFEPRate
	}
	if profile.ZUSHealthInsuranceAmount.Valid {
		cfg.HealthInsuranceAmount = profile.ZUSHealthInsuranceAmount.Decimal
	}
	if profile.ZUSHealthInsuranceTier != nil {
		cfg.HealthInsuranceTier = *profile.ZUSHealthInsuranceTier
	}
	return cfg
}
