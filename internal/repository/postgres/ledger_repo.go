package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"fakturo/internal/port"
)

type ledgerRepo struct {
	db *sqlx.DB
}

// NewLedgerRepo creates a new PostgreSQL-backed LedgerRepository.
func NewLedgerRepo(db *sqlx.DB) port.LedgerRepository {
	return &ledgerRepo{db: db}
}

func (r *ledgerRepo) SumInvoiceVAT(ctx context.Context, start, end time.Time) (decimal.Decimal, error) {
	return r.sum(ctx,
		"SELECT COALESCE(SUM(total_vat), 0) FROM invoices WHERE issue_date BETWEEN $1 AND $2",
		"SumInvoiceVAT", start, end)
}

func (r *ledgerRepo) SumExpenseVATPaid(ctx context.Context, start, end time.Time) (decimal.Decimal, error) {
	return r.sum(ctx,
		"SELECT COALESCE(SUM(vat_amount_paid), 0) FROM expenses WHERE expense_date BETWEEN $1 AND $2",
		"SumExpenseVATPaid", start, end)
}

func (r *ledgerRepo) SumInvoiceNet(ctx context.Context, start, end time.Time) (decimal.Decimal, error) {
	return r.sum(ctx,
		"SELECT COALESCE(SUM(total_net), 0) FROM invoices WHERE issue_date BETWEEN $1 AND $2",
		"SumInvoiceNet", start, end)
}

func (r *ledgerRepo) SumExpenseNet(ctx context.Context, start, end time.Time) (decimal.Decimal, error) {
	return r.sum(ctx,
		"SELECT COALESCE(SUM(amount_net), 0) FROM expenses WHERE expense_date BETWEEN $1 AND $2",
		"SumExpenseNet", start, end)
}

func (r *ledgerRepo) sum(ctx context.Context, query, name string, start, end time.Time) (decimal.Decimal, error) {
	var total decimal.Decimal
	if err := r.db.GetContext(ctx, &total, query, start, end); err != nil {
		return decimal.Zero, fmt.Errorf("ledgerRepo.%s: %w", name, err)
	}
	return total, nil
}
