// Package xlsxexport builds spreadsheet exports of ledger data.
package xlsxexport

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"fakturo/internal/domain"
)

const registerSheet = "Invoice Register"

var registerColumns = []string{
	"Invoice Number",
	"Issue Date",
	"Client",
	"Total Net",
	"Total VAT",
	"Total Gross",
	"Status",
}

// WriteInvoiceRegister writes one row per invoice for the given period into
// an XLSX workbook.
func WriteInvoiceRegister(w io.Writer, period domain.Period, invoices []domain.Invoice) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(registerSheet)
	if err != nil {
		return fmt.Errorf("xlsxexport: creating sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("xlsxexport: removing default sheet: %w", err)
	}

	if err := f.SetCellValue(registerSheet, "A1",
		fmt.Sprintf("Invoice register %s", period)); err != nil {
		return fmt.Errorf("xlsxexport: writing title: %w", err)
	}

	for i, name := range registerColumns {
		cell, err := excelize.CoordinatesToCellName(i+1, 3)
		if err != nil {
			return fmt.Errorf("xlsxexport: header cell: %w", err)
		}
		if err := f.SetCellValue(registerSheet, cell, name); err != nil {
			return fmt.Errorf("xlsxexport: writing header: %w", err)
		}
	}

	for i, inv := range invoices {
		row := i + 4
		values := []interface{}{
			inv.InvoiceNumber,
			inv.IssueDate.Format("2006-01-02"),
			inv.ClientName,
			inv.TotalNet.InexactFloat64(),
			inv.TotalVAT.InexactFloat64(),
			inv.TotalGross.InexactFloat64(),
			string(inv.Status),
		}
		for j, v := range values {
			cell, err := excelize.CoordinatesToCellName(j+1, row)
			if err != nil {
				return fmt.Errorf("xlsxexport: row cell: %w", err)
			}
			if err := f.SetCellValue(registerSheet, cell, v); err != nil {
				return fmt.Errorf("xlsxexport: writing row %d: %w", row, err)
			}
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("xlsxexport: writing workbook: %w", err)
	}
	return nil
}
