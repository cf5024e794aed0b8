package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"expensetracker/internal/models"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestExpense creates an expense already normalized into CAD with the
// given base amount.
func CreateTestExpense(t *testing.T, db *gorm.DB, category string, amountBase decimal.Decimal) *models.Expense {
	t.Helper()
	return CreateTestExpenseOn(t, db, category, amountBase, models.NewDate(2024, time.January, 15))
}

// CreateTestExpenseOn creates an expense with the given category, base amount,
// and spending date. Amount and AmountBase are equal, as for a record entered
// directly in the base currency.
func CreateTestExpenseOn(t *testing.T, db *gorm.DB, category string, amountBase decimal.Decimal, spentAt models.Date) *models.Expense {
	t.Helper()

	expense := &models.Expense{
		Amount:       amountBase,
		Currency:     "CAD",
		AmountBase:   amountBase,
		BaseCurrency: "CAD",
		Category:     category,
		Description:  fmt.Sprintf("test expense %d", nextID()),
		SpentAt:      spentAt,
	}
	if err := db.Create(expense).Error; err != nil {
		t.Fatalf("failed to create test expense: %v", err)
	}
	return expense
}
