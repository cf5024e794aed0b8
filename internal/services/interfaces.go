package services

import (
	"context"

	"github.com/shopspring/decimal"

	"expensetracker/internal/models"
	"expensetracker/internal/pagination"
	"expensetracker/internal/report"
)

// ExpenseServicer defines the contract for expense-related business logic.
type ExpenseServicer interface {
	CreateExpense(ctx context.Context, amount decimal.Decimal, currency, category, description string, spentAt models.Date, convertToBase bool) (*models.Expense, error)
	UpdateExpense(ctx context.Context, id uint, amount decimal.Decimal, currency, category, description string, spentAt models.Date, convertToBase bool) (*models.Expense, error)
	DeleteExpense(id uint) error
	GetExpenseByID(id uint) (*models.Expense, error)
	ListExpenses(category string, page pagination.PageRequest) (*pagination.PageResponse[models.Expense], error)
	Summarize(mode report.Mode) ([]report.SummaryItem, error)
	BaseCurrency() string
}
