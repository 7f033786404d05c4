package port

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// LedgerRepository provides period-bounded aggregate queries over invoices
// and expenses. Ranges are inclusive on both ends; an empty range sums to
// zero, never an error.
type LedgerRepository interface {
	SumInvoiceVAT(ctx context.Context, start, end time.Time) (decimal.Decimal, error)
	SumExpenseVATPaid(ctx context.Context, start, end time.Time) (decimal.Decimal, error)
	SumInvoiceNet(ctx context.Context, start, end time.Time) (decimal.Decimal, error)
	SumExpenseNet(ctx context.Context, start, end time.Time) (decimal.Decimal, error)
}
