package tax

import (
	"github.com/shopspring/decimal"

	"fakturo/internal/domain"
)

// CalculateVAT nets VAT collected on sales against VAT paid on purchases.
// A negative VATDue is a refund position, not an error.
func CalculateVAT(collected, paid decimal.Decimal) domain.VATBreakdown {
	return domain.VATBreakdown{
		VATCollected: collected,
		VATPaid:      paid,
		VATDue:       collected.Sub(paid),
	}
}
