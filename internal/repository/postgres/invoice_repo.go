package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"fakturo/internal/domain"
	"fakturo/internal/numbering"
	"fakturo/internal/port"
)

// allocationRetries bounds how often Create retries after losing a
// duplicate-number race to a writer outside the advisory lock (e.g. a
// manually inserted row).
const allocationRetries = 3

type invoiceRepo struct {
	db *sqlx.DB
}

// NewInvoiceRepo creates a new PostgreSQL-backed InvoiceRepository.
func NewInvoiceRepo(db *sqlx.DB) port.InvoiceRepository {
	return &invoiceRepo{db: db}
}

func (r *invoiceRepo) Create(ctx context.Context, inv *domain.Invoice, items []domain.InvoiceItem) error {
	var lastErr error
	for attempt := 0; attempt < allocationRetries; attempt++ {
		err := r.createOnce(ctx, inv, items)
		if err == nil {
			return nil
		}
		if !errors.Is(err, domain.ErrDuplicateInvoiceNumber) {
			return err
		}
		lastErr = err
	}
	return lastErr
}

// createOnce runs one allocation attempt: a transaction that takes a
// per-month advisory lock, reads the highest existing number for the month,
// and inserts the invoice with the next one. The UNIQUE constraint on
// invoice_number backstops the lock.
func (r *invoiceRepo) createOnce(ctx context.Context, inv *domain.Invoice, items []domain.InvoiceItem) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("invoiceRepo.Create begin: %w", err)
	}
	defer tx.Rollback()

	prefix := numbering.Prefix(time.Now().UTC())
	if _, err := tx.ExecContext(ctx,
		"SELECT pg_advisory_xact_lock(hashtext($1))", prefix); err != nil {
		return fmt.Errorf("invoiceRepo.Create lock: %w", err)
	}

	var last sql.NullString
	err = tx.GetContext(ctx, &last,
		"SELECT MAX(invoice_number) FROM invoices WHERE invoice_number LIKE $1",
		prefix+"%")
	if err != nil {
		return fmt.Errorf("invoiceRepo.Create max number: %w", err)
	}

	now := time.Now().UTC()
	inv.InvoiceNumber = numbering.Format(now, numbering.NextSequence(last.String))
	inv.CreatedAt = now
	inv.UpdatedAt = now
	if inv.Status == "" {
		inv.Status = domain.StatusDraft
	}

	err = tx.QueryRowxContext(ctx,
		`INSERT INTO invoices (invoice_number, client_id, issue_date, due_date,
			payment_terms, total_net, total_vat, total_gross, status,
			created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $10) RETURNING id`,
		inv.InvoiceNumber, inv.ClientID, inv.IssueDate, inv.DueDate,
		inv.PaymentTerms, inv.TotalNet, inv.TotalVAT, inv.TotalGross,
		inv.Status, now).Scan(&inv.ID)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return domain.ErrDuplicateInvoiceNumber
		}
		return fmt.Errorf("invoiceRepo.Create invoice: %w", err)
	}

	for i := range items {
		items[i].InvoiceID = inv.ID
		err = tx.QueryRowxContext(ctx,
			`INSERT INTO invoice_items (invoice_id, description, quantity,
				unit_price_net, vat_rate, total_net, total_vat, total_gross)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`,
			items[i].InvoiceID, items[i].Description, items[i].Quantity,
			items[i].UnitPriceNet, items[i].VATRate, items[i].TotalNet,
			items[i].TotalVAT, items[i].TotalGross).Scan(&items[i].ID)
		if err != nil {
			return fmt.Errorf("invoiceRepo.Create item %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("invoiceRepo.Create commit: %w", err)
	}
	return nil
}

func (r *invoiceRepo) MaxNumberWithPrefix(ctx context.Context, prefix string) (string, error) {
	var last sql.NullString
	err := r.db.GetContext(ctx, &last,
		"SELECT MAX(invoice_number) FROM invoices WHERE invoice_number LIKE $1",
		prefix+"%")
	if err != nil {
		return "", fmt.Errorf("invoiceRepo.MaxNumberWithPrefix: %w", err)
	}
	return last.String, nil
}

const invoiceSelect = `SELECT i.id, i.invoice_number, i.client_id,
	c.client_name, i.issue_date, i.due_date, i.payment_terms, i.total_net,
	i.total_vat, i.total_gross, i.status, i.created_at, i.updated_at
	FROM invoices i JOIN clients c ON c.id = i.client_id`

func (r *invoiceRepo) GetByID(ctx context.Context, id int64) (*domain.Invoice, []domain.InvoiceItem, error) {
	var inv domain.Invoice
	err := r.db.GetContext(ctx, &inv, invoiceSelect+" WHERE i.id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil, domain.ErrNotFound
		}
		return nil, nil, fmt.Errorf("invoiceRepo.GetByID: %w", err)
	}

	items := []domain.InvoiceItem{}
	err = r.db.SelectContext(ctx, &items,
		"SELECT * FROM invoice_items WHERE invoice_id = $1 ORDER BY id", id)
	if err != nil {
		return nil, nil, fmt.Errorf("invoiceRepo.GetByID items: %w", err)
	}
	return &inv, items, nil
}

func (r *invoiceRepo) List(ctx context.Context) ([]domain.Invoice, error) {
	invoices := []domain.Invoice{}
	err := r.db.SelectContext(ctx, &invoices,
		invoiceSelect+" ORDER BY i.issue_date DESC, i.id DESC")
	if err != nil {
		return nil, fmt.Errorf("invoiceRepo.List: %w", err)
	}
	return invoices, nil
}

func (r *invoiceRepo) ListByRange(ctx context.Context, start, end time.Time) ([]domain.Invoice, error) {
	invoices := []domain.Invoice{}
	err := r.db.SelectContext(ctx, &invoices,
		invoiceSelect+" WHERE i.issue_date BETWEEN $1 AND $2 ORDER BY i.invoice_number",
		start, end)
	if err != nil {
		return nil, fmt.Errorf("invoiceRepo.ListByRange: %w", err)
	}
	return invoices, nil
}

func (r *invoiceRepo) UpdateStatus(ctx context.Context, id int64, status domain.InvoiceStatus) error {
	res, err := r.db.ExecContext(ctx,
		"UPDATE invoices SET status = $1, updated_at = $2 WHERE id = $3",
		status, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("invoiceRepo.UpdateStatus: %w", err)
	}
	rows, _ := res.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *invoiceRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM invoices WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("invoiceRepo.Delete: %w", err)
	}
	rows, _ := res.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
