package service

import (
	"context"
	"errors"
	"sync"

	"github.com/shopspring/decimal"

	"fakturo/internal/domain"
	"fakturo/internal/port"
	"fakturo/internal/tax"
)

// SummaryService composes the period tax report: VAT position, income tax,
// and ZUS contributions.
type SummaryService interface {
	GetFinancialSummary(ctx context.Context, month, year int) (*domain.FinancialSummary, error)
}

type summaryService struct {
	ledger    port.LedgerRepository
	companies port.CompanyRepository
}

// NewSummaryService creates a new SummaryService implementation.
func NewSummaryService(ledger port.LedgerRepository, companies port.CompanyRepository) SummaryService {
	return &summaryService{ledger: ledger, companies: companies}
}

func (s *summaryService) GetFinancialSummary(ctx context.Context, month, year int) (*domain.FinancialSummary, error) {
	period := domain.Period{Month: month, Year: year}
	if err := period.Validate(); err != nil {
		return nil, err
	}

	// A missing profile is not an error here: the calculation falls back to
	// the full statutory default table.
	profile, err := s.companies.Get(ctx)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}
	cfg := tax.ResolveRateConfig(profile)

	start, end := period.Range()

	// The VAT and PIT aggregations are independent; run them concurrently
	// and join before composing. Any failure aborts the whole summary.
	var (
		wg                    sync.WaitGroup
		vatCollected, vatPaid decimal.Decimal
		income, expenses      decimal.Decimal
		vatErr, pitErr        error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		vatCollected, vatErr = s.ledger.SumInvoiceVAT(ctx, start, end)
		if vatErr != nil {
			return
		}
		vatPaid, vatErr = s.ledger.SumExpenseVATPaid(ctx, start, end)
	}()
	go func() {
		defer wg.Done()
		income, pitErr = s.ledger.SumInvoiceNet(ctx, start, end)
		if pitErr != nil {
			return
		}
		expenses, pitErr = s.ledger.SumExpenseNet(ctx, start, end)
	}()
	wg.Wait()

	if vatErr != nil {
		return nil, vatErr
	}
	if pitErr != nil {
		return nil, pitErr
	}

	vat := tax.CalculateVAT(vatCollected, vatPaid)
	pit, err := tax.CalculatePIT(income, expenses, cfg.PITTaxType, cfg.PITRate)
	if err != nil {
		return nil, err
	}
	zus := tax.CalculateZUS(cfg)

	return &domain.FinancialSummary{
		Month:          month,
		Year:           year,
		VAT:            vat,
		PIT:            pit,
		ZUS:            zus,
		TotalTaxBurden: vat.VATDue.Add(pit.IncomeTax).Add(zus.Total),
	}, nil
}
