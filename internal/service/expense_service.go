package service

import (
	"context"

	"fakturo/internal/domain"
	"fakturo/internal/port"
)

// ExpenseService manages purchase entries.
type ExpenseService interface {
	Create(ctx context.Context, expense *domain.Expense) error
	GetByID(ctx context.Context, id int64) (*domain.Expense, error)
	List(ctx context.Context) ([]domain.Expense, error)
	Update(ctx context.Context, expense *domain.Expense) error
	Delete(ctx context.Context, id int64) error
}

type expenseService struct {
	expenses port.ExpenseRepository
}

// NewExpenseService creates a new ExpenseService implementation.
func NewExpenseService(expenses port.ExpenseRepository) ExpenseService {
	return &expenseService{expenses: expenses}
}

func validateExpense(expense *domain.Expense) error {
	if expense.ExpenseDate.IsZero() {
		return domain.NewValidationError("expense_date", "is required")
	}
	if expense.Description == "" {
		return domain.NewValidationError("description", "is required")
	}
	if expense.AmountNet.IsNegative() || expense.VATAmountPaid.IsNegative() {
		return domain.NewValidationError("amount", "must not be negative")
	}
	return nil
}

func (s *expenseService) Create(ctx context.Context, expense *domain.Expense) error {
	if err := validateExpense(expense); err != nil {
		return err
	}
	if expense.AmountGross.IsZero() {
		expense.AmountGross = expense.AmountNet.Add(expense.VATAmountPaid)
	}
	return s.expenses.Create(ctx, expense)
}

func (s *expenseService) GetByID(ctx context.Context, id int64) (*domain.Expense, error) {
	return s.expenses.GetByID(ctx, id)
}

func (s *expenseService) List(ctx context.Context) ([]domain.Expense, error) {
	return s.expenses.List(ctx)
}

func (s *expenseService) Update(ctx context.Context, expense *domain.Expense) error {
	if err := validateExpense(expense); err != nil {
		return err
	}
	return s.expenses.Update(ctx, expense)
}

func (s *expenseService) Delete(ctx context.Context, id int64) error {
	return s.expenses.Delete(ctx, id)
}
