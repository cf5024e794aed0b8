package report

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"expensetracker/internal/models"
)

func expense(category, spentAt, amountBase string) models.Expense {
	d, err := models.ParseDate(spentAt)
	if err != nil {
		panic(err)
	}
	total, err := decimal.NewFromString(amountBase)
	if err != nil {
		panic(err)
	}
	return models.Expense{
		Category:     category,
		SpentAt:      d,
		Amount:       total,
		AmountBase:   total,
		Currency:     "CAD",
		BaseCurrency: "CAD",
	}
}

func TestSummarizeByCategory(t *testing.T) {
	expenses := []models.Expense{
		expense("Food", "2024-01-01", "10.00"),
		expense("Rent", "2024-01-01", "850.00"),
		expense("Food", "2024-01-02", "15.00"),
	}

	items, err := Summarize(expenses, ModeCategory)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(items) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(items))
	}
	// First-seen order of keys.
	if items[0].Key != "Food" || items[1].Key != "Rent" {
		t.Errorf("unexpected group order: %s, %s", items[0].Key, items[1].Key)
	}
	if !items[0].Total.Equal(decimal.RequireFromString("25.00")) {
		t.Errorf("expected Food total 25.00, got %s", items[0].Total)
	}
	if !items[1].Total.Equal(decimal.RequireFromString("850.00")) {
		t.Errorf("expected Rent total 850.00, got %s", items[1].Total)
	}
}

func TestSummarizeByDate(t *testing.T) {
	expenses := []models.Expense{
		expense("Food", "2024-01-01", "10.00"),
		expense("Rent", "2024-01-01", "20.00"),
		expense("Food", "2024-01-02", "5.50"),
	}

	items, err := Summarize(expenses, ModeDate)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(items) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(items))
	}
	if items[0].Key != "2024-01-01" {
		t.Errorf("expected key 2024-01-01, got %s", items[0].Key)
	}
	if !items[0].Total.Equal(decimal.RequireFromString("30.00")) {
		t.Errorf("expected 2024-01-01 total 30.00, got %s", items[0].Total)
	}
	if items[1].Key != "2024-01-02" {
		t.Errorf("expected key 2024-01-02, got %s", items[1].Key)
	}
}

func TestSummarizeEmptyInput(t *testing.T) {
	items, err := Summarize(nil, ModeCategory)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("expected no groups for empty input, got %d", len(items))
	}
}

func TestSummarizeUnsupportedMode(t *testing.T) {
	_, err := Summarize([]models.Expense{expense("Food", "2024-01-01", "1.00")}, Mode("month"))
	if err == nil {
		t.Fatal("expected error for unsupported mode")
	}
}

func TestSummarizeModesPartitionSameTotal(t *testing.T) {
	expenses := []models.Expense{
		expense("Food", "2024-01-01", "10.00"),
		expense("Rent", "2024-01-01", "850.00"),
		expense("Food", "2024-01-02", "22.35"),
		expense("Travel", "2024-02-15", "301.99"),
	}

	sum := func(mode Mode) decimal.Decimal {
		items, err := Summarize(expenses, mode)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		total := decimal.Zero
		for _, item := range items {
			total = total.Add(item.Total)
		}
		return total
	}

	if !sum(ModeCategory).Equal(sum(ModeDate)) {
		t.Errorf("grand totals differ: %s vs %s", sum(ModeCategory), sum(ModeDate))
	}
}

func TestRegisterCustomMode(t *testing.T) {
	Register(Mode("currency"), func(e models.Expense) string { return e.Currency })
	defer delete(modes, Mode("currency"))

	e := expense("Food", "2024-01-01", "10.00")
	e.Currency = "USD"

	items, err := Summarize([]models.Expense{e}, Mode("currency"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 1 || items[0].Key != "USD" {
		t.Errorf("expected single USD group, got %+v", items)
	}
}

func TestSummarizeDeterministicForFixedInput(t *testing.T) {
	expenses := []models.Expense{
		expense("Zoo", "2024-01-03", "1.00"),
		expense("Aquarium", "2024-01-01", "2.00"),
		expense("Zoo", "2024-01-02", "3.00"),
	}

	first, err := Summarize(expenses, ModeCategory)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 0; i < 10; i++ {
		again, err := Summarize(expenses, ModeCategory)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for j := range first {
			if first[j].Key != again[j].Key || !first[j].Total.Equal(again[j].Total) {
				t.Fatalf("iteration %d: output differs at %d: %+v vs %+v", i, j, first[j], again[j])
			}
		}
	}
}

// Dates with identical keys on different models.Date instances must group together.
func TestSummarizeGroupsEqualDates(t *testing.T) {
	a := expense("Food", "2024-06-01", "1.00")
	b := expense("Rent", "2024-06-01", "2.00")
	b.SpentAt = models.NewDate(2024, time.June, 1)

	items, err := Summarize([]models.Expense{a, b}, ModeDate)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 group, got %d", len(items))
	}
	if !items[0].Total.Equal(decimal.RequireFromString("3.00")) {
		t.Errorf("expected total 3.00, got %s", items[0].Total)
	}
}
