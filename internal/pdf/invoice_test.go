package pdf_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fakturo/internal/domain"
	"fakturo/internal/pdf"
)

func TestRenderInvoice(t *testing.T) {
	due := time.Date(2024, 8, 14, 0, 0, 0, 0, time.UTC)
	inv := &domain.Invoice{
		InvoiceNumber: "2024/07/0001",
		IssueDate:     time.Date(2024, 7, 15, 0, 0, 0, 0, time.UTC),
		DueDate:       &due,
		PaymentTerms:  "30 days",
		TotalNet:      decimal.RequireFromString("1000.00"),
		TotalVAT:      decimal.RequireFromString("230.00"),
		TotalGross:    decimal.RequireFromString("1230.00"),
		Status:        domain.StatusIssued,
	}
	items := []domain.InvoiceItem{
		{
			Description:  "consulting services",
			Quantity:     decimal.RequireFromString("10"),
			UnitPriceNet: decimal.RequireFromString("100"),
			VATRate:      decimal.RequireFromString("23"),
			TotalGross:   decimal.RequireFromString("1230"),
		},
	}
	seller := &domain.CompanyProfile{
		CompanyName:       "Moja Firma",
		NIP:               "1234563218",
		StreetAddress:     "ul. Prosta 1",
		City:              "Warszawa",
		PostalCode:        "00-001",
		BankAccountNumber: "PL61109010140000071219812874",
	}
	buyer := &domain.Client{
		ClientName:    "ACME Sp. z o.o.",
		NIP:           "5213017228",
		StreetAddress: "ul. Emilii Plater 53",
		City:          "Warszawa",
		PostalCode:    "00-113",
	}

	got, err := pdf.NewRenderer().RenderInvoice(context.Background(), inv, items, seller, buyer)
	require.NoError(t, err)
	require.NotEmpty(t, got)
	assert.Equal(t, "%PDF", string(got[:4]))
}
