// Package pdf renders invoices as printable PDF documents.
package pdf

import (
	"context"
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"fakturo/internal/domain"
	"fakturo/internal/port"
)

const dateLayout = "2006-01-02"

// Renderer implements port.InvoiceRenderer with maroto.
type Renderer struct{}

// NewRenderer creates a PDF invoice renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

func (r *Renderer) RenderInvoice(_ context.Context, inv *domain.Invoice, items []domain.InvoiceItem,
	seller *domain.CompanyProfile, buyer *domain.Client) ([]byte, error) {

	cfg := config.NewBuilder().
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
		}).
		Build()

	m := maroto.New(cfg)

	m.AddRow(12,
		text.NewCol(12, "Faktura VAT "+inv.InvoiceNumber, props.Text{
			Size:  18,
			Style: fontstyle.Bold,
			Align: align.Left,
		}),
	)

	issued := inv.IssueDate.Format(dateLayout)
	due := ""
	if inv.DueDate != nil {
		due = inv.DueDate.Format(dateLayout)
	}
	m.AddRow(16,
		col.New(6).Add(
			text.New("Date of issue: "+issued, props.Text{Top: 0}),
			text.New("Due date: "+due, props.Text{Top: 4}),
			text.New("Payment terms: "+inv.PaymentTerms, props.Text{Top: 8}),
		),
		col.New(6),
	)

	m.AddRow(36,
		col.New(6).Add(
			text.New("Seller", props.Text{Style: fontstyle.Bold}),
			text.New(seller.CompanyName, props.Text{Top: 5}),
			text.New(seller.StreetAddress, props.Text{Top: 9}),
			text.New(seller.PostalCode+" "+seller.City, props.Text{Top: 13}),
			text.New("NIP: "+seller.NIP, props.Text{Top: 17}),
			text.New("Account: "+seller.BankAccountNumber, props.Text{Top: 21}),
		),
		col.New(6).Add(
			text.New("Buyer", props.Text{Style: fontstyle.Bold}),
			text.New(buyer.ClientName, props.Text{Top: 5}),
			text.New(buyer.StreetAddress, props.Text{Top: 9}),
			text.New(buyer.PostalCode+" "+buyer.City, props.Text{Top: 13}),
			text.New("NIP: "+buyer.NIP, props.Text{Top: 17}),
		),
	)

	m.AddRow(10,
		text.NewCol(5, "Description", props.Text{Style: fontstyle.Bold, Size: 9}),
		text.NewCol(1, "Qty", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
		text.NewCol(2, "Unit net", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
		text.NewCol(1, "VAT %", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
		text.NewCol(3, "Gross", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
	)

	for _, item := range items {
		m.AddRow(8,
			text.NewCol(5, item.Description, props.Text{Size: 9}),
			text.NewCol(1, item.Quantity.String(), props.Text{Size: 9, Align: align.Right}),
			text.NewCol(2, money(item.UnitPriceNet), props.Text{Size: 9, Align: align.Right}),
			text.NewCol(1, item.VATRate.String(), props.Text{Size: 9, Align: align.Right}),
			text.NewCol(3, money(item.TotalGross), props.Text{Size: 9, Align: align.Right}),
		)
	}

	m.AddRow(10,
		col.New(7),
		text.NewCol(2, "Total net", props.Text{Size: 9}),
		text.NewCol(3, money(inv.TotalNet), props.Text{Size: 9, Align: align.Right}),
	)
	m.AddRow(10,
		col.New(7),
		text.NewCol(2, "Total VAT", props.Text{Size: 9}),
		text.NewCol(3, money(inv.TotalVAT), props.Text{Size: 9, Align: align.Right}),
	)
	m.AddRow(10,
		col.New(7),
		text.NewCol(2, "Total gross", props.Text{Style: fontstyle.Bold, Size: 9}),
		text.NewCol(3, money(inv.TotalGross), props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
	)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generating invoice %s: %w", inv.InvoiceNumber, err)
	}
	return doc.GetBytes(), nil
}

func money(d decimal.Decimal) string {
	return d.StringFixed(2) + " PLN"
}

var _ port.InvoiceRenderer = (*Renderer)(nil)
