package port

import (
	"context"
	"time"

	"fakturo/internal/domain"
)

// InvoiceRepository persists invoices and their line items.
type InvoiceRepository interface {
	// Create inserts the invoice and all its items atomically, allocating
	// the invoice number inside the same transaction. The allocation is
	// serialized per calendar month so concurrent creations cannot be
	// assigned the same number. The assigned ID and number are written
	// back into inv.
	Create(ctx context.Context, inv *domain.Invoice, items []domain.InvoiceItem) error

	// MaxNumberWithPrefix returns the lexicographically greatest invoice
	// number starting with prefix, or "" when none exists.
	MaxNumberWithPrefix(ctx context.Context, prefix string) (string, error)

	GetByID(ctx context.Context, id int64) (*domain.Invoice, []domain.InvoiceItem, error)
	List(ctx context.Context) ([]domain.Invoice, error)
	ListByRange(ctx context.Context, start, end time.Time) ([]domain.Invoice, error)
	UpdateStatus(ctx context.Context, id int64, status domain.InvoiceStatus) error
	Delete(ctx context.Context, id int64) error
}
