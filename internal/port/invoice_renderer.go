package port

import (
	"context"

	"fakturo/internal/domain"
)

// InvoiceRenderer turns a finalized invoice into a printable document.
type InvoiceRenderer interface {
	RenderInvoice(ctx context.Context, inv *domain.Invoice, items []domain.InvoiceItem,
		seller *domain.CompanyProfile, buyer *domain.Client) ([]byte, error)
}
