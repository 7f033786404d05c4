package tax

import (
	"fmt"

	"github.com/shopspring/decimal"

	"fakturo/internal/domain"
)

// CalculatePIT computes income tax for already-aggregated period numbers.
// Under lump-sum the tax base is gross income (expenses are informational
// only); under linear it is income minus expenses. Negative taxable income
// yields zero tax, never a negative one.
func CalculatePIT(income, expenses decimal.Decimal, taxType domain.TaxType, ratePercent float64) (domain.PITBreakdown, error) {
	var taxable decimal.Decimal
	switch taxType {
	case domain.TaxTypeLumpSum:
		taxable = income
	case domain.TaxTypeLinear:
		taxable = income.Sub(expenses)
	default:
		return domain.PITBreakdown{}, domain.NewValidationError("tax_type",
			fmt.Sprintf("unrecognized tax type %q", taxType))
	}

	tax := decimal.Zero
	if taxable.IsPositive() {
		tax = taxable.Mul(decimal.NewFromFloat(ratePercent)).Div(oneHundred)
	}

	return domain.PITBreakdown{
		Income:        income,
		Expenses:      expenses,
		TaxableIncome: taxable,
		TaxType:       taxType,
		IncomeTaxRate: ratePercent,
		IncomeTax:     tax,
	}, nil
}
