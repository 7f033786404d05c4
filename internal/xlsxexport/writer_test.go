package xlsxexport_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"fakturo/internal/domain"
	"fakturo/internal/xlsxexport"
)

func TestWriteInvoiceRegister(t *testing.T) {
	invoices := []domain.Invoice{
		{
			InvoiceNumber: "2024/07/0001",
			ClientName:    "ACME Sp. z o.o.",
			IssueDate:     time.Date(2024, 7, 3, 0, 0, 0, 0, time.UTC),
			TotalNet:      decimal.RequireFromString("1000.00"),
			TotalVAT:      decimal.RequireFromString("230.00"),
			TotalGross:    decimal.RequireFromString("1230.00"),
			Status:        domain.StatusIssued,
		},
		{
			InvoiceNumber: "2024/07/0002",
			ClientName:    "Beta S.A.",
			IssueDate:     time.Date(2024, 7, 18, 0, 0, 0, 0, time.UTC),
			TotalNet:      decimal.RequireFromString("500.00"),
			TotalVAT:      decimal.RequireFromString("40.00"),
			TotalGross:    decimal.RequireFromString("540.00"),
			Status:        domain.StatusPaid,
		},
	}

	var buf bytes.Buffer
	err := xlsxexport.WriteInvoiceRegister(&buf, domain.Period{Month: 7, Year: 2024}, invoices)
	require.NoError(t, err)

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Invoice Register"}, f.GetSheetList())

	title, err := f.GetCellValue("Invoice Register", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Invoice register 2024-07", title)

	header, err := f.GetCellValue("Invoice Register", "A3")
	require.NoError(t, err)
	assert.Equal(t, "Invoice Number", header)

	number, err := f.GetCellValue("Invoice Register", "A4")
	require.NoError(t, err)
	assert.Equal(t, "2024/07/0001", number)

	client, err := f.GetCellValue("Invoice Register", "C5")
	require.NoError(t, err)
	assert.Equal(t, "Beta S.A.", client)

	status, err := f.GetCellValue("Invoice Register", "G5")
	require.NoError(t, err)
	assert.Equal(t, "Paid", status)
}

func TestWriteInvoiceRegister_Empty(t *testing.T) {
	var buf bytes.Buffer
	err := xlsxexport.WriteInvoiceRegister(&buf, domain.Period{Month: 1, Year: 2024}, nil)
	require.NoError(t, err)
	assert.NotZero(t, buf.Len())
}
