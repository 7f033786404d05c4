package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"fakturo/internal/domain"
	"fakturo/internal/port"
)

type expenseRepo struct {
	db *sqlx.DB
}

// NewExpenseRepo creates a new PostgreSQL-backed ExpenseRepository.
func NewExpenseRepo(db *sqlx.DB) port.ExpenseRepository {
	return &expenseRepo{db: db}
}

func (r *expenseRepo) Create(ctx context.Context, expense *domain.Expense) error {
	now := time.Now().UTC()
	expense.CreatedAt = now
	expense.UpdatedAt = now

	err := r.db.QueryRowxContext(ctx,
		`INSERT INTO expenses (expense_date, vendor_name, description, amount_net,
			vat_amount_paid, amount_gross, category, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8) RETURNING id`,
		expense.ExpenseDate, expense.VendorName, expense.Description,
		expense.AmountNet, expense.VATAmountPaid, expense.AmountGross,
		expense.Category, now).Scan(&expense.ID)
	if err != nil {
		return fmt.Errorf("expenseRepo.Create: %w", err)
	}
	return nil
}

func (r *expenseRepo) GetByID(ctx context.Context, id int64) (*domain.Expense, error) {
	var expense domain.Expense
	err := r.db.GetContext(ctx, &expense, "SELECT * FROM expenses WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("expenseRepo.GetByID: %w", err)
	}
	return &expense, nil
}

func (r *expenseRepo) List(ctx context.Context) ([]domain.Expense, error) {
	expenses := []domain.Expense{}
	err := r.db.SelectContext(ctx, &expenses,
		"SELECT * FROM expenses ORDER BY expense_date DESC, id DESC")
	if err != nil {
		return nil, fmt.Errorf("expenseRepo.List: %w", err)
	}
	return expenses, nil
}

func (r *expenseRepo) Update(ctx context.Context, expense *domain.Expense) error {
	expense.UpdatedAt = time.Now().UTC()
	res, err := r.db.ExecContext(ctx,
		`UPDATE expenses SET expense_date = $1, vendor_name = $2, description = $3,
			amount_net = $4, vat_amount_paid = $5, amount_gross = $6,
			category = $7, updated_at = $8
		WHERE id = $9`,
		expense.ExpenseDate, expense.VendorName, expense.Description,
		expense.AmountNet, expense.VATAmountPaid, expense.AmountGross,
		expense.Category, expense.UpdatedAt, expense.ID)
	if err != nil {
		return fmt.Errorf("expenseRepo.Update: %w", err)
	}
	rows, _ := res.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *expenseRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM expenses WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("expenseRepo.Delete: %w", err)
	}
	rows, _ := res.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
