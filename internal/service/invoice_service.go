package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"fakturo/internal/domain"
	"fakturo/internal/numbering"
	"fakturo/internal/port"
	"fakturo/internal/tax"
)

// InvoiceItemInput is a raw line item from the caller. Pointer fields are
// required; nil means the field was missing from the request.
type InvoiceItemInput struct {
	Description  string           `json:"description"`
	Quantity     *decimal.Decimal `json:"quantity"`
	UnitPriceNet *decimal.Decimal `json:"unit_price_net"`
	VATRate      *decimal.Decimal `json:"vat_rate"`
}

// CreateInvoiceRequest carries the input for invoice creation.
type CreateInvoiceRequest struct {
	ClientID     int64                `json:"client_id"`
	IssueDate    time.Time            `json:"issue_date"`
	DueDate      *time.Time           `json:"due_date"`
	PaymentTerms string               `json:"payment_terms"`
	Status       domain.InvoiceStatus `json:"status"`
	Items        []InvoiceItemInput   `json:"items"`
}

// InvoiceService creates and manages invoices.
type InvoiceService interface {
	Create(ctx context.Context, req *CreateInvoiceRequest) (*domain.Invoice, []domain.InvoiceItem, error)
	// PreviewTotals computes invoice totals without persisting anything.
	PreviewTotals(items []InvoiceItemInput) (*tax.InvoiceTotals, error)
	// NextNumber previews the number the next invoice would receive. The
	// authoritative allocation happens inside Create's transaction.
	NextNumber(ctx context.Context, now time.Time) (string, error)
	GetByID(ctx context.Context, id int64) (*domain.Invoice, []domain.InvoiceItem, error)
	List(ctx context.Context) ([]domain.Invoice, error)
	ListByPeriod(ctx context.Context, period domain.Period) ([]domain.Invoice, error)
	UpdateStatus(ctx context.Context, id int64, status domain.InvoiceStatus) error
	Delete(ctx context.Context, id int64) error
}

type invoiceService struct {
	invoices port.InvoiceRepository
	clients  port.ClientRepository
}

// NewInvoiceService creates a new InvoiceService implementation.
func NewInvoiceService(invoices port.InvoiceRepository, clients port.ClientRepository) InvoiceService {
	return &invoiceService{invoices: invoices, clients: clients}
}

func (s *invoiceService) Create(ctx context.Context, req *CreateInvoiceRequest) (*domain.Invoice, []domain.InvoiceItem, error) {
	if err := validateCreateInvoice(req); err != nil {
		return nil, nil, err
	}

	if _, err := s.clients.GetByID(ctx, req.ClientID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil, domain.NewValidationError("client_id",
				fmt.Sprintf("client %d does not exist", req.ClientID))
		}
		return nil, nil, err
	}

	totals, err := tax.ComputeInvoiceTotals(lineInputs(req.Items))
	if err != nil {
		return nil, nil, err
	}

	status := req.Status
	if status == "" {
		status = domain.StatusDraft
	}
	if !domain.ValidInvoiceStatus(status) {
		return nil, nil, domain.NewValidationError("status",
			fmt.Sprintf("must be one of Draft, Issued, Paid; got %q", status))
	}

	inv := &domain.Invoice{
		ClientID:     req.ClientID,
		IssueDate:    req.IssueDate,
		DueDate:      req.DueDate,
		PaymentTerms: req.PaymentTerms,
		TotalNet:     totals.TotalNet,
		TotalVAT:     totals.TotalVAT,
		TotalGross:   totals.TotalGross,
		Status:       status,
	}

	items := make([]domain.InvoiceItem, 0, len(totals.Lines))
	for _, line := range totals.Lines {
		items = append(items, domain.InvoiceItem{
			Description:  line.Description,
			Quantity:     line.Quantity,
			UnitPriceNet: line.UnitPriceNet,
			VATRate:      line.VATRate,
			TotalNet:     line.Net,
			TotalVAT:     line.VAT,
			TotalGross:   line.Gross,
		})
	}

	if err := s.invoices.Create(ctx, inv, items); err != nil {
		return nil, nil, err
	}
	return inv, items, nil
}

func (s *invoiceService) PreviewTotals(items []InvoiceItemInput) (*tax.InvoiceTotals, error) {
	if err := validateItems(items); err != nil {
		return nil, err
	}
	return tax.ComputeInvoiceTotals(lineInputs(items))
}

func (s *invoiceService) NextNumber(ctx context.Context, now time.Time) (string, error) {
	last, err := s.invoices.MaxNumberWithPrefix(ctx, numbering.Prefix(now))
	if err != nil {
		return "", err
	}
	return numbering.Format(now, numbering.NextSequence(last)), nil
}

func (s *invoiceService) GetByID(ctx context.Context, id int64) (*domain.Invoice, []domain.InvoiceItem, error) {
	return s.invoices.GetByID(ctx, id)
}

func (s *invoiceService) List(ctx context.Context) ([]domain.Invoice, error) {
	return s.invoices.List(ctx)
}

func (s *invoiceService) ListByPeriod(ctx context.Context, period domain.Period) ([]domain.Invoice, error) {
	if err := period.Validate(); err != nil {
		return nil, err
	}
	start, end := period.Range()
	return s.invoices.ListByRange(ctx, start, end)
}

func (s *invoiceService) UpdateStatus(ctx context.Context, id int64, status domain.InvoiceStatus) error {
	if !domain.ValidInvoiceStatus(status) {
		return domain.NewValidationError("status",
			fmt.Sprintf("must be one of Draft, Issued, Paid; got %q", status))
	}
	return s.invoices.UpdateStatus(ctx, id, status)
}

func (s *invoiceService) Delete(ctx context.Context, id int64) error {
	return s.invoices.Delete(ctx, id)
}

func validateCreateInvoice(req *CreateInvoiceRequest) error {
	if req.ClientID == 0 {
		return domain.NewValidationError("client_id", "is required")
	}
	if req.IssueDate.IsZero() {
		return domain.NewValidationError("issue_date", "is required")
	}
	return validateItems(req.Items)
}

func validateItems(items []InvoiceItemInput) error {
	if len(items) == 0 {
		return domain.NewValidationError("items", "at least one line item is required")
	}
	for i, item := range items {
		switch {
		case item.Quantity == nil:
			return domain.NewValidationError(fmt.Sprintf("items[%d].quantity", i), "is required")
		case item.UnitPriceNet == nil:
			return domain.NewValidationError(fmt.Sprintf("items[%d].unit_price_net", i), "is required")
		case item.VATRate == nil:
			return domain.NewValidationError(fmt.Sprintf("items[%d].vat_rate", i), "is required")
		}
	}
	return nil
}

func lineInputs(items []InvoiceItemInput) []tax.LineInput {
	lines := make([]tax.LineInput, 0, len(items))
	for _, item := range items {
		lines = append(lines, tax.LineInput{
			Description:  item.Description,
			Quantity:     *item.Quantity,
			UnitPriceNet: *item.UnitPriceNet,
			VATRate:      *item.VATRate,
		})
	}
	return lines
}
