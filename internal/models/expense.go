// Package models defines the persistent entities of the ExpenseTracker API.
package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense represents a single recorded expense.
//
// Amount is the value as entered by the user, in Currency. AmountBase is
// Amount converted into BaseCurrency with the FX rate current at write time;
// it is stored and never recomputed on read, so a later rate change cannot
// retroactively alter past records. BaseCurrency is pinned per record because
// the system-wide base currency may change over time.
type Expense struct {
	ID           uint            `gorm:"primaryKey" json:"id"`
	Amount       decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"amount"`
	Currency     string          `gorm:"size:8;not null" json:"currency"`
	AmountBase   decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"amount_base"`
	BaseCurrency string          `gorm:"size:8;not null" json:"base_currency"`
	Category     string          `gorm:"size:64;not null;index" json:"category"`
	Description  string          `gorm:"type:text" json:"description"`
	SpentAt      Date            `gorm:"not null;index" json:"spent_at"`
	CreatedAt    time.Time       `json:"created_at"`
}
