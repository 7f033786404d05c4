package service_test

import (
	"context"
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

func setupInvoice() (*mocks.MockInvoiceRepo, *mocks.MockClientRepo, service.InvoiceService) {
	invoices := new(mocks.MockInvoiceRepo)
	clients := new(mocks.MockClientRepo)
	svc := service.NewInvoiceService(invoices, clients)
	return invoices, clients, svc
}

func decp(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func validRequest() *service.CreateInvoiceRequest {
	return &service.CreateInvoiceRequest{
		ClientID:  7,
		IssueDate: time.Date(2024, 7, 15, 0, 0, 0, 0, time.UTC),
		Items: []service.InvoiceItemInput{
			{Description: "consulting", Quantity: decp("3"), UnitPriceNet: decp("10.005"), VATRate: decp("23")},
		},
	}
}

func TestCreateInvoice(t *testing.T) {
	invoices, clients, svc := setupInvoice()

	clients.On("GetByID", mock.Anything, int64(7)).Return(&domain.Client{ID: 7, ClientName: "ACME"}, nil)
	invoices.On("Create", mock.Anything, mock.AnythingOfType("*domain.Invoice"), mock.AnythingOfType("[]domain.InvoiceItem")).Return(nil)

	inv, items, err := svc.Create(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, "30.02", inv.TotalNet.StringFixed(2))
	assert.Equal(t, "6.90", inv.TotalVAT.StringFixed(2))
	assert.Equal(t, "36.92", inv.TotalGross.StringFixed(2))
	assert.Equal(t, domain.StatusDraft, inv.Status)

	require.Len(t, items, 1)
	assert.True(t, items[0].TotalNet.Equal(dec("30.015")))

	invoices.AssertExpectations(t)
	clients.AssertExpectations(t)
}

func TestCreateInvoice_UnknownClient(t *testing.T) {
	invoices, clients, svc := setupInvoice()

	clients.On("GetByID", mock.Anything, int64(7)).Return(nil, domain.ErrNotFound)

	_, _, err := svc.Create(context.Background(), validRequest())
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))

	invoices.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateInvoice_MissingFields(t *testing.T) {
	_, _, svc := setupInvoice()

	tests := []struct {
		name   string
		mutate func(*service.CreateInvoiceRequest)
	}{
		{"no client", func(r *service.CreateInvoiceRequest) { r.ClientID = 0 }},
		{"no issue date", func(r *service.CreateInvoiceRequest) { r.IssueDate = time.Time{} }},
		{"no items", func(r *service.CreateInvoiceRequest) { r.Items = nil }},
		{"item without quantity", func(r *service.CreateInvoiceRequest) { r.Items[0].Quantity = nil }},
		{"item without price", func(r *service.CreateInvoiceRequest) { r.Items[0].UnitPriceNet = nil }},
		{"item without vat rate", func(r *service.CreateInvoiceRequest) { r.Items[0].VATRate = nil }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)

			_, _, err := svc.Create(context.Background(), req)
			require.Error(t, err)
			assert.True(t, domain.IsValidation(err))
		})
	}
}

func TestCreateInvoice_InvalidStatus(t *testing.T) {
	_, clients, svc := setupInvoice()

	clients.On("GetByID", mock.Anything, int64(7)).Return(&domain.Client{ID: 7}, nil)

	req := validRequest()
	req.Status = domain.InvoiceStatus("Cancelled")

	_, _, err := svc.Create(context.Background(), req)
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))
}

func TestCreateInvoice_DuplicateNumberPropagates(t *testing.T) {
	invoices, clients, svc := setupInvoice()

	clients.On("GetByID", mock.Anything, int64(7)).Return(&domain.Client{ID: 7}, nil)
	invoices.On("Create", mock.Anything, mock.Anything, mock.Anything).Return(domain.ErrDuplicateInvoiceNumber)

	_, _, err := svc.Create(context.Background(), validRequest())
	assert.ErrorIs(t, err, domain.ErrDuplicateInvoiceNumber)
}

func TestPreviewTotals(t *testing.T) {
	_, _, svc := setupInvoice()

	totals, err := svc.PreviewTotals([]service.InvoiceItemInput{
		{Quantity: decp("10"), UnitPriceNet: decp("100"), VATRate: decp("23")},
	})
	require.NoError(t, err)

	assert.Equal(t, "1000.00", totals.TotalNet.StringFixed(2))
	assert.Equal(t, "230.00", totals.TotalVAT.StringFixed(2))
	assert.Equal(t, "1230.00", totals.TotalGross.StringFixed(2))
}

func TestNextNumber(t *testing.T) {
	invoices, _, svc := setupInvoice()

	now := time.Date(2024, 7, 20, 0, 0, 0, 0, time.UTC)
	invoices.On("MaxNumberWithPrefix", mock.Anything, "2024/07/").Return("2024/07/0041", nil)

	number, err := svc.NextNumber(context.Background(), now)
	require.NoError(t, err)
	assert.Equal(t, "2024/07/0042", number)
}

func TestNextNumber_FirstOfMonth(t *testing.T) {
	invoices, _, svc := setupInvoice()

	now := time.Date(2024, 8, 1, 0, 0, 0, 0, time.UTC)
	invoices.On("MaxNumberWithPrefix", mock.Anything, "2024/08/").Return("", nil)

	number, err := svc.NextNumber(context.Background(), now)
	require.NoError(t, err)
	assert.Equal(t, "2024/08/0001", number)
}

func TestUpdateStatus_Invalid(t *testing.T) {
	invoices, _, svc := setupInvoice()

	err := svc.UpdateStatus(context.Background(), 1, domain.InvoiceStatus("Archived"))
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))

	invoices.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestListByPeriod_InvalidPeriod(t *testing.T) {
	invoices, _, svc := setupInvoice()

	_, err := svc.ListByPeriod(context.Background(), domain.Period{Month: 0, Year: 2024})
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))

	invoices.AssertNotCalled(t, "ListByRange", mock.Anything, mock.Anything, mock.Anything)
}
