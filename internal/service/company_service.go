package service

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"fakturo/internal/domain"
	"fakturo/internal/port"
	"fakturo/internal/tax"
)

// CompanyService manages the single company profile and its ZUS settings.
type CompanyService interface {
	GetProfile(ctx context.Context) (*domain.CompanyProfile, error)
	SaveProfile(ctx context.Context, profile *domain.CompanyProfile) error
	// UpdateZUSSettings overwrites only the rate-configuration slice of the
	// profile. It fails when no profile exists yet.
	UpdateZUSSettings(ctx context.Context, settings *ZUSSettings) (*domain.CompanyProfile, error)
	// CurrentContributions resolves the effective rate configuration
	// (defaults applied field-by-field) and computes the ZUS breakdown.
	CurrentContributions(ctx context.Context) (*domain.ZUSBreakdown, error)
}

// ZUSSettings is the rate-configuration slice of the company profile.
type ZUSSettings struct {
	BaseAmount            *float64           `json:"zus_base_amount"`
	RetirementRate        *float64           `json:"retirement_rate"`
	DisabilityRate        *float64           `json:"disability_rate"`
	AccidentRate          *float64           `json:"accident_rate"`
	SicknessRate          *float64           `json:"sickness_rate"`
	SicknessIncluded      *bool              `json:"sickness_included"`
	LaborFundRate         *float64           `json:"labor_fund_rate"`
	FEPRate               *float64           `json:"fep_rate"`
	HealthInsuranceAmount *float64           `json:"health_insurance_amount"`
	HealthInsuranceTier   *domain.HealthTier `json:"health_insurance_tier"`
}

type companyService struct {
	companies port.CompanyRepository
}

// NewCompanyService creates a new CompanyService implementation.
func NewCompanyService(companies port.CompanyRepository) CompanyService {
	return &companyService{companies: companies}
}

func (s *companyService) GetProfile(ctx context.Context) (*domain.CompanyProfile, error) {
	return s.companies.Get(ctx)
}

func (s *companyService) SaveProfile(ctx context.Context, profile *domain.CompanyProfile) error {
	if profile.CompanyName == "" {
		return domain.NewValidationError("company_name", "is required")
	}
	if profile.NIP == "" {
		return domain.NewValidationError("nip", "is required")
	}
	return s.companies.Save(ctx, profile)
}

func (s *companyService) UpdateZUSSettings(ctx context.Context, settings *ZUSSettings) (*domain.CompanyProfile, error) {
	profile, err := s.companies.Get(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNoCompanyProfile
		}
		return nil, err
	}

	if settings.BaseAmount != nil {
		profile.ZUSBaseAmount = decimalFromFloat(*settings.BaseAmount)
	}
	profile.ZUSRetirementRate = coalesce(settings.RetirementRate, profile.ZUSRetirementRate)
	profile.ZUSDisabilityRate = coalesce(settings.DisabilityRate, profile.ZUSDisabilityRate)
	profile.ZUSAccidentRate = coalesce(settings.AccidentRate, profile.ZUSAccidentRate)
	profile.ZUSSicknessRate = coalesce(settings.SicknessRate, profile.ZUSSicknessRate)
	if settings.SicknessIncluded != nil {
		profile.ZUSSicknessIncluded = settings.SicknessIncluded
	}
	profile.ZUSLaborFundRate = coalesce(settings.LaborFundRate, profile.ZUSLaborFundRate)
	profile.ZUSFEPRate = coalesce(settings.FEPRate, profile.ZUSFEPRate)
	if settings.HealthInsuranceAmount != nil {
		profile.ZUSHealthInsuranceAmount = decimalFromFloat(*settings.HealthInsuranceAmount)
	}
	if settings.HealthInsuranceTier != nil {
		profile.ZUSHealthInsuranceTier = settings.HealthInsuranceTier
	}

	if err := s.companies.Save(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func (s *companyService) CurrentContributions(ctx context.Context) (*domain.ZUSBreakdown, error) {
	profile, err := s.companies.Get(ctx)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}
	breakdown := tax.CalculateZUS(tax.ResolveRateConfig(profile))
	return &breakdown, nil
}

func decimalFromFloat(v float64) decimal.NullDecimal {
	return decimal.NullDecimal{Decimal: decimal.NewFromFloat(v), Valid: true}
}

func coalesce(override, current *float64) *float64 {
	if override != nil {
		return override
	}
	return current
}
