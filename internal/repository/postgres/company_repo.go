package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"fakturo/internal/domain"
	"fakturo/internal/port"
)

type companyRepo struct {
	db *sqlx.DB
}

// NewCompanyRepo creates a new PostgreSQL-backed CompanyRepository.
func NewCompanyRepo(db *sqlx.DB) port.CompanyRepository {
	return &companyRepo{db: db}
}

func (r *companyRepo) Get(ctx context.Context) (*domain.CompanyProfile, error) {
	var profile domain.CompanyProfile
	err := r.db.GetContext(ctx, &profile,
		"SELECT * FROM company_profile ORDER BY id LIMIT 1")
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("companyRepo.Get: %w", err)
	}
	return &profile, nil
}

const companyUpdateQuery = `UPDATE company_profile SET
	company_name = $1, nip = $2, street_address = $3, city = $4,
	postal_code = $5, bank_account_number = $6, default_vat_rate = $7,
	pit_tax_type = $8, pit_rate = $9, zus_base_amount = $10,
	zus_retirement_rate = $11, zus_disability_rate = $12,
	zus_accident_rate = $13, zus_sickness_rate = $14,
	zus_sickness_included = $15, zus_labor_fund_rate = $16,
	zus_fep_rate = $17, zus_health_insurance_amount = $18,
	zus_health_insurance_tier = $19, updated_at = $20
	WHERE id = $21`

const companyInsertQuery = `INSERT INTO company_profile (
	company_name, nip, street_address, city, postal_code,
	bank_account_number, default_vat_rate, pit_tax_type, pit_rate,
	zus_base_amount, zus_retirement_rate, zus_disability_rate,
	zus_accident_rate, zus_sickness_rate, zus_sickness_included,
	zus_labor_fund_rate, zus_fep_rate, zus_health_insurance_amount,
	zus_health_insurance_tier, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
		$15, $16, $17, $18, $19, $20, $20)
	RETURNING id`

func (r *companyRepo) Save(ctx context.Context, p *domain.CompanyProfile) error {
	now := time.Now().UTC()
	p.UpdatedAt = now

	existing, err := r.Get(ctx)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return err
	}

	if existing != nil {
		p.ID = existing.ID
		p.CreatedAt = existing.CreatedAt
		_, err := r.db.ExecContext(ctx, companyUpdateQuery,
			p.CompanyName, p.NIP, p.StreetAddress, p.City, p.PostalCode,
			p.BankAccountNumber, p.DefaultVATRate, p.PITTaxType, p.PITRate,
			p.ZUSBaseAmount, p.ZUSRetirementRate, p.ZUSDisabilityRate,
			p.ZUSAccidentRate, p.ZUSSicknessRate, p.ZUSSicknessIncluded,
			p.ZUSLaborFundRate, p.ZUSFEPRate, p.ZUSHealthInsuranceAmount,
			p.ZUSHealthInsuranceTier, p.UpdatedAt, p.ID)
		if err != nil {
			return fmt.Errorf("companyRepo.Save update: %w", err)
		}
		return nil
	}

	p.CreatedAt = now
	err = r.db.QueryRowxContext(ctx, companyInsertQuery,
		p.CompanyName, p.NIP, p.StreetAddress, p.City, p.PostalCode,
		p.BankAccountNumber, p.DefaultVATRate, p.PITTaxType, p.PITRate,
		p.ZUSBaseAmount, p.ZUSRetirementRate, p.ZUSDisabilityRate,
		p.ZUSAccidentRate, p.ZUSSicknessRate, p.ZUSSicknessIncluded,
		p.ZUSLaborFundRate, p.ZUSFEPRate, p.ZUSHealthInsuranceAmount,
		p.ZUSHealthInsuranceTier, now).Scan(&p.ID)
	if err != nil {
		return fmt.Errorf("companyRepo.Save insert: %w", err)
	}
	return nil
}
