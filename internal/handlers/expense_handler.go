// Package handlers exposes the HTTP surface of the ExpenseTracker API.
package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "expensetracker/internal/errors"
	"expensetracker/internal/models"
	"expensetracker/internal/pagination"
	"expensetracker/internal/report"
	"expensetracker/internal/services"
)

// ExpenseHandler handles expense-related requests.
type ExpenseHandler struct {
	expenseService services.ExpenseServicer
}

// NewExpenseHandler creates a new ExpenseHandler.
func NewExpenseHandler(expenseService services.ExpenseServicer) *ExpenseHandler {
	return &ExpenseHandler{expenseService: expenseService}
}

// ExpenseRequest represents the request payload for creating or updating an expense.
type ExpenseRequest struct {
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Currency    string          `json:"currency" binding:"required,currency_code"`
	Category    string          `json:"category" binding:"required,max=64"`
	Description string          `json:"description" binding:"max=500"`
	SpentAt     string          `json:"spent_at" binding:"required,calendar_date"`
}

// ExpenseResponse represents an expense in the response.
type ExpenseResponse struct {
	ID           uint            `json:"id"`
	Amount       decimal.Decimal `json:"amount"`
	Currency     string          `json:"currency"`
	AmountBase   decimal.Decimal `json:"amount_base"`
	BaseCurrency string          `json:"base_currency"`
	Category     string          `json:"category"`
	Description  string          `json:"description"`
	SpentAt      string          `json:"spent_at"`
	CreatedAt    time.Time       `json:"created_at"`
}

// SummaryResponse represents a grouped expense summary.
type SummaryResponse struct {
	GroupBy      string               `json:"group_by"`
	BaseCurrency string               `json:"base_currency"`
	Summary      []report.SummaryItem `json:"summary"`
}

// CreateExpense handles the creation of a new expense
// @Summary     Create an expense
// @Description Record a new expense, converting its amount into the base currency at the current rate
// @Tags        expenses
// @Accept      json
// @Produce     json
// @Param       request         body  ExpenseRequest true "Expense details"
// @Param       convert_to_base query bool           false "Convert to the base currency using the FX API (default true)"
// @Success     201 {object} ExpenseResponse "Expense created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     503 {object} ErrorResponse "Exchange rate unavailable"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /expenses [post]
func (h *ExpenseHandler) CreateExpense(c *gin.Context) {
	var req ExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	spentAt, err := models.ParseDate(req.SpentAt)
	if err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	convertToBase, err := parseBoolQuery(c, "convert_to_base", true)
	if err != nil {
		respondWithError(c, err)
		return
	}

	expense, err := h.expenseService.CreateExpense(
		c.Request.Context(),
		req.Amount,
		req.Currency,
		req.Category,
		req.Description,
		spentAt,
		convertToBase,
	)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"expense": expense})
}

// ListExpenses handles the retrieval of expenses
// @Summary     List expenses
// @Description Get a paginated list of expenses, newest spending date first, optionally filtered by category
// @Tags        expenses
// @Accept      json
// @Produce     json
// @Param       category  query string false "Filter by category"
// @Param       page      query int    false "Page number (default 1)"
// @Param       page_size query int    false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[ExpenseResponse] "Page of expenses"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /expenses [get]
func (h *ExpenseHandler) ListExpenses(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	result, err := h.expenseService.ListExpenses(c.Query("category"), page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetSummary handles the retrieval of grouped expense totals
// @Summary     Summarize expenses
// @Description Get expense totals grouped by category or by date, in the base currency
// @Tags        expenses
// @Accept      json
// @Produce     json
// @Param       group_by query string false "Group by 'category' or 'date' (default category)"
// @Success     200 {object} SummaryResponse "Grouped totals"
// @Failure     400 {object} ErrorResponse "Unsupported group_by value"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /expenses/summary [get]
func (h *ExpenseHandler) GetSummary(c *gin.Context) {
	mode := report.Mode(c.DefaultQuery("group_by", string(report.ModeCategory)))

	items, err := h.expenseService.Summarize(mode)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, SummaryResponse{
		GroupBy:      string(mode),
		BaseCurrency: h.expenseService.BaseCurrency(),
		Summary:      items,
	})
}

// GetExpenseByID handles the retrieval of a single expense
// @Summary     Get expense by ID
// @Description Get a specific expense by ID
// @Tags        expenses
// @Accept      json
// @Produce     json
// @Param       id path int true "Expense ID"
// @Success     200 {object} ExpenseResponse "Expense details"
// @Failure     400 {object} ErrorResponse "Invalid expense ID"
// @Failure     404 {object} ErrorResponse "Expense not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /expenses/{id} [get]
func (h *ExpenseHandler) GetExpenseByID(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	expense, err := h.expenseService.GetExpenseByID(id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"expense": expense})
}

// UpdateExpense handles updating an expense
// @Summary     Update an expense
// @Description Replace an expense's fields; amount_base is recomputed at the current rate
// @Tags        expenses
// @Accept      json
// @Produce     json
// @Param       id              path  int            true  "Expense ID"
// @Param       request         body  ExpenseRequest true  "Updated expense details"
// @Param       convert_to_base query bool           false "Convert to the base currency using the FX API (default true)"
// @Success     200 {object} ExpenseResponse "Updated expense"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Expense not found"
// @Failure     503 {object} ErrorResponse "Exchange rate unavailable"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /expenses/{id} [put]
func (h *ExpenseHandler) UpdateExpense(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req ExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	spentAt, err := models.ParseDate(req.SpentAt)
	if err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	convertToBase, err := parseBoolQuery(c, "convert_to_base", true)
	if err != nil {
		respondWithError(c, err)
		return
	}

	expense, err := h.expenseService.UpdateExpense(
		c.Request.Context(),
		id,
		req.Amount,
		req.Currency,
		req.Category,
		req.Description,
		spentAt,
		convertToBase,
	)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"expense": expense})
}

// DeleteExpense handles deleting an expense
// @Summary     Delete an expense
// @Description Permanently delete an expense by ID
// @Tags        expenses
// @Accept      json
// @Produce     json
// @Param       id path int true "Expense ID"
// @Success     204 "Expense deleted"
// @Failure     400 {object} ErrorResponse "Invalid expense ID"
// @Failure     404 {object} ErrorResponse "Expense not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /expenses/{id} [delete]
func (h *ExpenseHandler) DeleteExpense(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.expenseService.DeleteExpense(id); err != nil {
		respondWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
