package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"fakturo/internal/domain"
	"fakturo/internal/service"
	"fakturo/mocks"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func setupSummary() (*mocks.MockLedgerRepo, *mocks.MockCompanyRepo, service.SummaryService) {
	ledger := new(mocks.MockLedgerRepo)
	companies := new(mocks.MockCompanyRepo)
	svc := service.NewSummaryService(ledger, companies)
	return ledger, companies, svc
}

func TestGetFinancialSummary_DefaultsWhenNoProfile(t *testing.T) {
	ledger, companies, svc := setupSummary()

	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)

	companies.On("Get", mock.Anything).Return(nil, domain.ErrNotFound)
	ledger.On("SumInvoiceVAT", mock.Anything, start, end).Return(dec("2300"), nil)
	ledger.On("SumExpenseVATPaid", mock.Anything, start, end).Return(dec("920"), nil)
	ledger.On("SumInvoiceNet", mock.Anything, start, end).Return(dec("10000"), nil)
	ledger.On("SumExpenseNet", mock.Anything, start, end).Return(dec("4000"), nil)

	summary, err := svc.GetFinancialSummary(context.Background(), 3, 2024)
	require.NoError(t, err)

	assert.Equal(t, 3, summary.Month)
	assert.Equal(t, 2024, summary.Year)
	assert.True(t, summary.VAT.VATDue.Equal(dec("1380")))

	// Default regime is lump-sum at 12%: expenses are not deducted.
	assert.Equal(t, domain.TaxTypeLumpSum, summary.PIT.TaxType)
	assert.Equal(t, "1200.00", summary.PIT.IncomeTax.StringFixed(2))

	// Full statutory default table, sickness included.
	assert.True(t, summary.ZUS.Total.Equal(dec("2240.83922")))
	assert.True(t, summary.TotalTaxBurden.Equal(dec("1380").Add(dec("1200")).Add(dec("2240.83922"))))

	ledger.AssertExpectations(t)
	companies.AssertExpectations(t)
}

func TestGetFinancialSummary_UsesProfileOverrides(t *testing.T) {
	ledger, companies, svc := setupSummary()

	linear := domain.TaxTypeLinear
	rate := 19.0
	profile := &domain.CompanyProfile{PITTaxType: &linear, PITRate: &rate}

	companies.On("Get", mock.Anything).Return(profile, nil)
	ledger.On("SumInvoiceVAT", mock.Anything, mock.Anything, mock.Anything).Return(dec("0"), nil)
	ledger.On("SumExpenseVATPaid", mock.Anything, mock.Anything, mock.Anything).Return(dec("0"), nil)
	ledger.On("SumInvoiceNet", mock.Anything, mock.Anything, mock.Anything).Return(dec("5000"), nil)
	ledger.On("SumExpenseNet", mock.Anything, mock.Anything, mock.Anything).Return(dec("8000"), nil)

	summary, err := svc.GetFinancialSummary(context.Background(), 6, 2024)
	require.NoError(t, err)

	// Linear regime with a loss: zero tax, never negative.
	assert.Equal(t, domain.TaxTypeLinear, summary.PIT.TaxType)
	assert.True(t, summary.PIT.TaxableIncome.Equal(dec("-3000")))
	assert.True(t, summary.PIT.IncomeTax.IsZero())
}

func TestGetFinancialSummary_InvalidPeriod(t *testing.T) {
	_, _, svc := setupSummary()

	_, err := svc.GetFinancialSummary(context.Background(), 13, 2023)
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))

	_, err = svc.GetFinancialSummary(context.Background(), 5, 1999)
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))
}

func TestGetFinancialSummary_LedgerFailureAborts(t *testing.T) {
	ledger, companies, svc := setupSummary()

	dbErr := errors.New("connection reset")
	companies.On("Get", mock.Anything).Return(nil, domain.ErrNotFound)
	ledger.On("SumInvoiceVAT", mock.Anything, mock.Anything, mock.Anything).Return(decimal.Zero, dbErr)
	ledger.On("SumInvoiceNet", mock.Anything, mock.Anything, mock.Anything).Return(decimal.Zero, nil)
	ledger.On("SumExpenseNet", mock.Anything, mock.Anything, mock.Anything).Return(decimal.Zero, nil)

	summary, err := svc.GetFinancialSummary(context.Background(), 3, 2024)
	assert.Nil(t, summary)
	require.Error(t, err)
	assert.ErrorIs(t, err, dbErr)
}

func TestGetFinancialSummary_ProfileReadFailureAborts(t *testing.T) {
	_, companies, svc := setupSummary()

	dbErr := errors.New("connection reset")
	companies.On("Get", mock.Anything).Return(nil, dbErr)

	summary, err := svc.GetFinancialSummary(context.Background(), 3, 2024)
	assert.Nil(t, summary)
	assert.ErrorIs(t, err, dbErr)
}
