package integration

import (
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
)

func TestExpenseCRUDFlow(t *testing.T) {
	app := setupApp(t)

	// Create: 100 USD at 1.35 becomes 135.00 CAD.
	created := app.createExpense(t,
		`{"amount": 100, "currency": "USD", "category": "Food", "description": "groceries", "spent_at": "2024-01-01"}`)

	if !created.Expense.AmountBase.Equal(decimal.RequireFromString("135.00")) {
		t.Errorf("expected amount_base 135.00, got %s", created.Expense.AmountBase)
	}
	if created.Expense.BaseCurrency != "CAD" {
		t.Errorf("expected base_currency CAD, got %s", created.Expense.BaseCurrency)
	}
	if created.Expense.SpentAt != "2024-01-01" {
		t.Errorf("expected spent_at 2024-01-01, got %s", created.Expense.SpentAt)
	}

	// Get returns the stored record.
	w := app.request(t, http.MethodGet, "/api/v1/expenses/1", "")
	if w.Code != http.StatusOK {
		t.Fatalf("get failed with %d: %s", w.Code, w.Body.String())
	}
	var fetched expenseEnvelope
	decode(t, w, &fetched)
	if fetched.Expense.ID != created.Expense.ID {
		t.Errorf("expected id %d, got %d", created.Expense.ID, fetched.Expense.ID)
	}

	// Update: switching to 50 CAD discards the old amount_base.
	w = app.request(t, http.MethodPut, "/api/v1/expenses/1",
		`{"amount": 50, "currency": "CAD", "category": "Food", "spent_at": "2024-01-01"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("update failed with %d: %s", w.Code, w.Body.String())
	}
	var updated expenseEnvelope
	decode(t, w, &updated)
	if !updated.Expense.AmountBase.Equal(decimal.RequireFromString("50.00")) {
		t.Errorf("expected recomputed amount_base 50.00, got %s", updated.Expense.AmountBase)
	}
	if updated.Expense.CreatedAt != created.Expense.CreatedAt {
		t.Errorf("expected created_at preserved, got %s != %s", updated.Expense.CreatedAt, created.Expense.CreatedAt)
	}

	// Delete, then both get and a second delete report 404.
	w = app.request(t, http.MethodDelete, "/api/v1/expenses/1", "")
	if w.Code != http.StatusNoContent {
		t.Fatalf("delete failed with %d: %s", w.Code, w.Body.String())
	}
	w = app.request(t, http.MethodGet, "/api/v1/expenses/1", "")
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 after delete, got %d", w.Code)
	}
	w = app.request(t, http.MethodDelete, "/api/v1/expenses/1", "")
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 for double delete, got %d", w.Code)
	}
}

func TestRateUnavailableAbortsCreate(t *testing.T) {
	app := setupApp(t)

	// GBP has no configured rate in the test FX source.
	w := app.request(t, http.MethodPost, "/api/v1/expenses",
		`{"amount": 5, "currency": "GBP", "category": "Food", "spent_at": "2024-01-01"}`)
	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d: %s", w.Code, w.Body.String())
	}

	// The store is unchanged: nothing to list.
	w = app.request(t, http.MethodGet, "/api/v1/expenses", "")
	if w.Code != http.StatusOK {
		t.Fatalf("list failed with %d", w.Code)
	}
	var page struct {
		TotalItems int64 `json:"total_items"`
	}
	decode(t, w, &page)
	if page.TotalItems != 0 {
		t.Errorf("expected empty store after aborted create, got %d items", page.TotalItems)
	}
}

func TestListWithCategoryFilter(t *testing.T) {
	app := setupApp(t)

	app.createExpense(t, `{"amount": 10, "currency": "CAD", "category": "Food", "spent_at": "2024-01-01"}`)
	app.createExpense(t, `{"amount": 20, "currency": "CAD", "category": "Rent", "spent_at": "2024-01-02"}`)
	app.createExpense(t, `{"amount": 30, "currency": "CAD", "category": "Food", "spent_at": "2024-01-03"}`)

	w := app.request(t, http.MethodGet, "/api/v1/expenses?category=Food", "")
	if w.Code != http.StatusOK {
		t.Fatalf("list failed with %d", w.Code)
	}
	var page struct {
		Data []struct {
			Category string `json:"category"`
			SpentAt  string `json:"spent_at"`
		} `json:"data"`
		TotalItems int64 `json:"total_items"`
	}
	decode(t, w, &page)

	if page.TotalItems != 2 {
		t.Fatalf("expected 2 Food expenses, got %d", page.TotalItems)
	}
	// Newest spending date first.
	if page.Data[0].SpentAt != "2024-01-03" || page.Data[1].SpentAt != "2024-01-01" {
		t.Errorf("unexpected order: %s, %s", page.Data[0].SpentAt, page.Data[1].SpentAt)
	}
}

func TestConvertToBaseFlagSkipsConversion(t *testing.T) {
	app := setupApp(t)

	w := app.request(t, http.MethodPost, "/api/v1/expenses?convert_to_base=false",
		`{"amount": 100, "currency": "USD", "category": "Food", "spent_at": "2024-01-01"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("create failed with %d: %s", w.Code, w.Body.String())
	}
	var env expenseEnvelope
	decode(t, w, &env)

	if !env.Expense.AmountBase.Equal(decimal.RequireFromString("100.00")) {
		t.Errorf("expected amount_base 100.00, got %s", env.Expense.AmountBase)
	}
	if env.Expense.BaseCurrency != "CAD" {
		t.Errorf("expected base_currency still CAD, got %s", env.Expense.BaseCurrency)
	}
}

func TestValidationOverHTTP(t *testing.T) {
	app := setupApp(t)

	cases := map[string]string{
		"missing_amount":   `{"currency": "CAD", "category": "Food", "spent_at": "2024-01-01"}`,
		"missing_currency": `{"amount": 10, "category": "Food", "spent_at": "2024-01-01"}`,
		"missing_category": `{"amount": 10, "currency": "CAD", "spent_at": "2024-01-01"}`,
		"missing_date":     `{"amount": 10, "currency": "CAD", "category": "Food"}`,
		"bad_date":         `{"amount": 10, "currency": "CAD", "category": "Food", "spent_at": "2024-02-30"}`,
		"bad_currency":     `{"amount": 10, "currency": "C", "category": "Food", "spent_at": "2024-01-01"}`,
	}

	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			w := app.request(t, http.MethodPost, "/api/v1/expenses", body)
			if w.Code != http.StatusBadRequest {
				t.Errorf("expected 400, got %d: %s", w.Code, w.Body.String())
			}
		})
	}
}
