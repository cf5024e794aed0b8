// Package services provides business logic for the ExpenseTracker API.
package services

import (
	"context"
	"errors"
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "expensetracker/internal/errors"
	"expensetracker/internal/fx"
	"expensetracker/internal/models"
	"expensetracker/internal/pagination"
	"expensetracker/internal/report"
)

// expenseService owns the expense collection and handles currency
// normalization on every write.
type expenseService struct {
	db           *gorm.DB
	rates        fx.RateSource
	baseCurrency string
}

// NewExpenseService creates a new ExpenseServicer. The base currency is
// explicit configuration, not ambient state, so independent instances can run
// with different base currencies.
func NewExpenseService(db *gorm.DB, rates fx.RateSource, baseCurrency string) ExpenseServicer {
	return &expenseService{db: db, rates: rates, baseCurrency: strings.ToUpper(baseCurrency)}
}

// BaseCurrency returns the currency expenses are normalized into.
func (s *expenseService) BaseCurrency() string {
	return s.baseCurrency
}

// validateExpenseInput checks the required-field rules shared by create and
// update. spent_at may be any valid calendar date, including future ones.
func validateExpenseInput(amount decimal.Decimal, currency, category string, spentAt models.Date) error {
	if !amount.IsPositive() {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be greater than zero")
	}
	if currency == "" {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "currency is required")
	}
	if category == "" {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "category is required")
	}
	if spentAt.IsZero() {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "spent_at is required")
	}
	return nil
}

// normalize computes the base-currency amount for a write. With convert
// disabled the entered amount is stored as-is (still rounded), matching the
// convert_to_base=false escape hatch.
func (s *expenseService) normalize(ctx context.Context, amount decimal.Decimal, currency string, convert bool) (decimal.Decimal, error) {
	if !convert {
		return amount.Round(2), nil
	}
	return fx.Convert(ctx, s.rates, amount, currency, s.baseCurrency)
}

// CreateExpense validates the input, converts the amount into the base
// currency at the current rate, and persists the new record. A failed rate
// lookup aborts the whole operation; nothing is written.
func (s *expenseService) CreateExpense(
	ctx context.Context,
	amount decimal.Decimal,
	currency, category, description string,
	spentAt models.Date,
	convertToBase bool,
) (*models.Expense, error) {
	currency = strings.ToUpper(currency)

	if err := validateExpenseInput(amount, currency, category, spentAt); err != nil {
		return nil, err
	}

	amountBase, err := s.normalize(ctx, amount, currency, convertToBase)
	if err != nil {
		return nil, err
	}

	expense := &models.Expense{
		Amount:       amount.Round(2),
		Currency:     currency,
		AmountBase:   amountBase,
		BaseCurrency: s.baseCurrency,
		Category:     category,
		Description:  description,
		SpentAt:      spentAt,
	}

	if err := s.db.Create(expense).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return expense, nil
}

// UpdateExpense replaces the mutable fields of an existing expense.
// amount_base is recomputed from the new amount/currency at the rate current
// now; the old amount_base is discarded. ID and created_at are preserved.
func (s *expenseService) UpdateExpense(
	ctx context.Context,
	id uint,
	amount decimal.Decimal,
	currency, category, description string,
	spentAt models.Date,
	convertToBase bool,
) (*models.Expense, error) {
	currency = strings.ToUpper(currency)

	if err := validateExpenseInput(amount, currency, category, spentAt); err != nil {
		return nil, err
	}

	// The rate lookup can block on the network, so it happens before the
	// database transaction opens.
	amountBase, err := s.normalize(ctx, amount, currency, convertToBase)
	if err != nil {
		return nil, err
	}

	var expense models.Expense
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&expense, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrExpenseNotFound
			}
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		updates := map[string]interface{}{
			"amount":        amount.Round(2),
			"currency":      currency,
			"amount_base":   amountBase,
			"base_currency": s.baseCurrency,
			"category":      category,
			"description":   description,
			"spent_at":      spentAt,
		}
		if err := tx.Model(&expense).Updates(updates).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &expense, nil
}

// DeleteExpense removes an expense permanently. Deleting an id that does not
// exist, including an already-deleted one, fails with EXPENSE_NOT_FOUND.
func (s *expenseService) DeleteExpense(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var expense models.Expense
		if err := tx.First(&expense, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrExpenseNotFound
			}
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if err := tx.Delete(&expense).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
}

// GetExpenseByID retrieves a single expense.
func (s *expenseService) GetExpenseByID(id uint) (*models.Expense, error) {
	var expense models.Expense
	if err := s.db.First(&expense, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrExpenseNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &expense, nil
}

// ListExpenses retrieves a paginated list of expenses, optionally filtered by
// category, newest spending date first. The ordering is a deterministic
// default; clients may re-sort for display.
func (s *expenseService) ListExpenses(category string, page pagination.PageRequest) (*pagination.PageResponse[models.Expense], error) {
	page.Defaults()

	base := s.db.Model(&models.Expense{})
	if category != "" {
		base = base.Where("category = ?", category)
	}

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var expenses []models.Expense
	if err := base.Order("spent_at DESC, id DESC").Scopes(pagination.Paginate(page)).Find(&expenses).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(expenses, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// Summarize computes grouped totals over the current expense collection.
// Expenses are fed to the aggregator in chronological order so group keys
// appear oldest-first.
func (s *expenseService) Summarize(mode report.Mode) ([]report.SummaryItem, error) {
	var expenses []models.Expense
	if err := s.db.Order("spent_at ASC, id ASC").Find(&expenses).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return report.Summarize(expenses, mode)
}
