package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"expensetracker/internal/fx"
	"expensetracker/internal/handlers"
	"expensetracker/internal/logger"
	"expensetracker/internal/middleware"
	"expensetracker/internal/models"
	"expensetracker/internal/services"
	"expensetracker/internal/validator"
)

// testApp holds the full application stack for integration tests.
type testApp struct {
	DB     *gorm.DB
	Router *gin.Engine
}

// dbCounter ensures each test gets a unique in-memory database.
var dbCounter atomic.Int64

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	validator.Register()
}

// setupIsolatedDB creates an isolated in-memory SQLite database for a single test.
func setupIsolatedDB(t *testing.T) *gorm.DB {
	t.Helper()

	n := dbCounter.Add(1)
	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", n)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(&models.Expense{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

// setupApp creates a full application stack backed by an isolated in-memory
// SQLite database and a fixed-rate FX source (USD->CAD 1.35, EUR->CAD 1.47).
func setupApp(t *testing.T) *testApp {
	t.Helper()

	db := setupIsolatedDB(t)

	rates := fx.Static{Rates: map[string]decimal.Decimal{
		"USD/CAD": decimal.RequireFromString("1.35"),
		"EUR/CAD": decimal.RequireFromString("1.47"),
	}}
	expenseService := services.NewExpenseService(db, rates, "CAD")
	expenseHandler := handlers.NewExpenseHandler(expenseService)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.ErrorHandler())

	v1 := router.Group("/api/v1")
	expenses := v1.Group("/expenses")
	expenses.POST("", expenseHandler.CreateExpense)
	expenses.GET("", expenseHandler.ListExpenses)
	expenses.GET("/summary", expenseHandler.GetSummary)
	expenses.GET("/:id", expenseHandler.GetExpenseByID)
	expenses.PUT("/:id", expenseHandler.UpdateExpense)
	expenses.DELETE("/:id", expenseHandler.DeleteExpense)

	return &testApp{DB: db, Router: router}
}

// request performs an HTTP request against the test router and returns the recorder.
func (app *testApp) request(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	app.Router.ServeHTTP(w, req)
	return w
}

// decode unmarshals a response body into the given value.
func decode(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()

	if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
		t.Fatalf("failed to decode response: %v (body: %s)", err, w.Body.String())
	}
}

// expenseEnvelope matches the {"expense": {...}} response shape.
type expenseEnvelope struct {
	Expense struct {
		ID           uint            `json:"id"`
		Amount       decimal.Decimal `json:"amount"`
		Currency     string          `json:"currency"`
		AmountBase   decimal.Decimal `json:"amount_base"`
		BaseCurrency string          `json:"base_currency"`
		Category     string          `json:"category"`
		Description  string          `json:"description"`
		SpentAt      string          `json:"spent_at"`
		CreatedAt    string          `json:"created_at"`
	} `json:"expense"`
}

// createExpense is a helper that creates an expense over HTTP and fails the
// test if the API rejects it.
func (app *testApp) createExpense(t *testing.T, body string) expenseEnvelope {
	t.Helper()

	w := app.request(t, http.MethodPost, "/api/v1/expenses", body)
	if w.Code != http.StatusCreated {
		t.Fatalf("create failed with %d: %s", w.Code, w.Body.String())
	}
	var env expenseEnvelope
	decode(t, w, &env)
	return env
}
