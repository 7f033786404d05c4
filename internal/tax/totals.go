package tax

import (
	"github.com/shopspring/decimal"

	"fakturo/internal/domain"
)

var oneHundred = decimal.NewFromInt(100)

// LineInput is a raw invoice line as supplied by the caller.
type LineInput struct {
	Description  string
	Quantity     decimal.Decimal
	UnitPriceNet decimal.Decimal
	VATRate      decimal.Decimal
}

// LineTotals carries the derived per-line amounts at full precision.
type LineTotals struct {
	Description  string
	Quantity     decimal.Decimal
	UnitPriceNet decimal.Decimal
	VATRate      decimal.Decimal
	Net          decimal.Decimal
	VAT          decimal.Decimal
	Gross        decimal.Decimal
}

// InvoiceTotals is the result of totalling an invoice. The three invoice
// totals are rounded to 2 decimal places; the per-line values are not.
type InvoiceTotals struct {
	Lines      []LineTotals
	TotalNet   decimal.Decimal
	TotalVAT   decimal.Decimal
	TotalGross decimal.Decimal
}

// ComputeInvoiceTotals derives per-line and invoice-level net/VAT/gross
// amounts. Per-line values keep full precision; the invoice-level sums are
// the single rounding point, rounded half-away-from-zero to 2 decimals.
// An empty line list is a validation error. Negative VAT rates are the
// caller's responsibility and are not rejected.
func ComputeInvoiceTotals(lines []LineInput) (*InvoiceTotals, error) {
	if len(lines) == 0 {
		return nil, domain.NewValidationError("items", "at least one line item is required")
	}

	result := &InvoiceTotals{Lines: make([]LineTotals, 0, len(lines))}
	totalNet := decimal.Zero
	totalVAT := decimal.Zero
	totalGross := decimal.Zero

	for _, line := range lines {
		net := line.Quantity.Mul(line.UnitPriceNet)
		vat := net.Mul(line.VATRate).Div(oneHundred)
		gross := net.Add(vat)

		totalNet = totalNet.Add(net)
		totalVAT = totalVAT.Add(vat)
		totalGross = totalGross.Add(gross)

		result.Lines = append(result.Lines, LineTotals{
			Description:  line.Description,
			Quantity:     line.Quantity,
			UnitPriceNet: line.UnitPriceNet,
			VATRate:      line.VATRate,
			Net:          net,
			VAT:          vat,
			Gross:        gross,
		})
	}

	// decimal.Round is round-half-away-from-zero, the mandated rule.
	result.TotalNet = totalNet.Round(2)
	result.TotalVAT = totalVAT.Round(2)
	result.TotalGross = totalGross.Round(2)
	return result, nil
}
