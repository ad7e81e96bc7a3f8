package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/personal_os/internal/core/domain"
	"github.com/SscSPs/personal_os/internal/core/services"
	"github.com/SscSPs/personal_os/internal/handlers"
	"github.com/SscSPs/personal_os/internal/middleware"
	"github.com/SscSPs/personal_os/internal/platform/config"
	"github.com/SscSPs/personal_os/internal/repositories/memory"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
)

var fixedNow = time.Date(2024, time.June, 15, 10, 30, 0, 0, time.UTC)

type HandlersTestSuite struct {
	suite.Suite
	router *gin.Engine
}

func (s *HandlersTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
	s.Require().NoError(handlers.RegisterValidators())
}

func (s *HandlersTestSuite) SetupTest() {
	cfg := &config.Config{DefaultCurrency: domain.DefaultCurrency, IsProduction: true}
	container := services.NewServiceContainer(cfg, memory.New().NewRepositoryProvider(),
		services.WithClock(func() time.Time { return fixedNow }))

	s.router = gin.New()
	s.router.Use(middleware.StructuredLoggingMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil))))
	handlers.RegisterRoutes(s.router, cfg, container, nil)
}

func (s *HandlersTestSuite) do(method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		s.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *HandlersTestSuite) decode(w *httptest.ResponseRecorder, into any) {
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), into), w.Body.String())
}

func (s *HandlersTestSuite) createAsset(name, balance string) int64 {
	w := s.do(http.MethodPost, "/api/expense/assets", gin.H{"name": name, "asset_type": "bank", "balance": balance})
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	var got struct {
		ID int64 `json:"id"`
	}
	s.decode(w, &got)
	return got.ID
}

func (s *HandlersTestSuite) TestHealth() {
	w := s.do(http.MethodGet, "/api/health", nil)
	s.Equal(http.StatusOK, w.Code)
	s.JSONEq(`{"status":"ok"}`, w.Body.String())
}

func (s *HandlersTestSuite) TestCreateAssetDefaults() {
	w := s.do(http.MethodPost, "/api/expense/assets", gin.H{"name": "Savings", "asset_type": "bank", "balance": "5000"})
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())

	var got map[string]any
	s.decode(w, &got)
	s.Equal("Savings", got["name"])
	s.Equal(domain.DefaultCurrency, got["currency"])
	s.Equal("5000", got["balance"])
	s.Equal(false, got["is_primary"])
}

func (s *HandlersTestSuite) TestCreateAssetMissingName() {
	w := s.do(http.MethodPost, "/api/expense/assets", gin.H{"asset_type": "bank"})
	s.Equal(http.StatusBadRequest, w.Code)
	s.Contains(w.Body.String(), "Invalid request format")
}

func (s *HandlersTestSuite) TestGetAssetNotFound() {
	w := s.do(http.MethodGet, "/api/expense/assets/999", nil)
	s.Equal(http.StatusNotFound, w.Code)

	var got map[string]string
	s.decode(w, &got)
	s.NotEmpty(got["error"])
}

func (s *HandlersTestSuite) TestMalformedID() {
	for _, path := range []string{"/api/expense/assets/abc", "/api/expense/assets/0", "/api/expense/transactions/-4"} {
		w := s.do(http.MethodGet, path, nil)
		s.Equalf(http.StatusBadRequest, w.Code, "GET %s", path)
	}
}

func (s *HandlersTestSuite) TestTransactionLifecycle() {
	assetID := s.createAsset("Wallet", "1000")

	w := s.do(http.MethodPost, "/api/expense/transactions", gin.H{
		"txn_type":      "expense",
		"amount":        "250",
		"category":      "Food",
		"transacted_at": "2024-06-10T12:00:00Z",
		"from_asset_id": assetID,
	})
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	var txn struct {
		ID int64 `json:"id"`
	}
	s.decode(w, &txn)

	w = s.do(http.MethodGet, fmt.Sprintf("/api/expense/assets/%d", assetID), nil)
	s.Require().Equal(http.StatusOK, w.Code)
	var asset map[string]any
	s.decode(w, &asset)
	s.Equal("750", asset["balance"])

	w = s.do(http.MethodDelete, fmt.Sprintf("/api/expense/transactions/%d", txn.ID), nil)
	s.Equal(http.StatusNoContent, w.Code)
	s.Empty(w.Body.String())

	w = s.do(http.MethodGet, fmt.Sprintf("/api/expense/assets/%d", assetID), nil)
	s.decode(w, &asset)
	s.Equal("1000", asset["balance"])

	w = s.do(http.MethodDelete, fmt.Sprintf("/api/expense/transactions/%d", txn.ID), nil)
	s.Equal(http.StatusNotFound, w.Code)
}

func (s *HandlersTestSuite) TestCreateTransactionValidation() {
	assetID := s.createAsset("Wallet", "100")

	tests := []struct {
		name string
		body gin.H
	}{
		{"unknown type", gin.H{"txn_type": "gift", "amount": "10", "category": "x", "transacted_at": "2024-06-10T12:00:00Z", "from_asset_id": assetID}},
		{"zero amount", gin.H{"txn_type": "expense", "amount": "0", "category": "x", "transacted_at": "2024-06-10T12:00:00Z", "from_asset_id": assetID}},
		{"negative amount", gin.H{"txn_type": "expense", "amount": "-5", "category": "x", "transacted_at": "2024-06-10T12:00:00Z", "from_asset_id": assetID}},
		{"missing category", gin.H{"txn_type": "expense", "amount": "5", "transacted_at": "2024-06-10T12:00:00Z", "from_asset_id": assetID}},
		{"missing date", gin.H{"txn_type": "expense", "amount": "5", "category": "x", "from_asset_id": assetID}},
		{"zero account id", gin.H{"txn_type": "expense", "amount": "5", "category": "x", "transacted_at": "2024-06-10T12:00:00Z", "from_asset_id": 0}},
		{"sub-cent amount", gin.H{"txn_type": "expense", "amount": "10.005", "category": "x", "transacted_at": "2024-06-10T12:00:00Z", "from_asset_id": assetID}},
		{"transfer to itself", gin.H{"txn_type": "transfer", "amount": "5", "category": "x", "transacted_at": "2024-06-10T12:00:00Z", "from_asset_id": assetID, "to_asset_id": assetID}},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			w := s.do(http.MethodPost, "/api/expense/transactions", tt.body)
			s.Equal(http.StatusBadRequest, w.Code, w.Body.String())
		})
	}
}

func (s *HandlersTestSuite) TestTransactionReferencingMissingAsset() {
	w := s.do(http.MethodPost, "/api/expense/transactions", gin.H{
		"txn_type":      "expense",
		"amount":        "5",
		"category":      "x",
		"transacted_at": "2024-06-10T12:00:00Z",
		"from_asset_id": 42,
	})
	s.Equal(http.StatusBadRequest, w.Code, w.Body.String())
}

func (s *HandlersTestSuite) TestExpenseFallsBackToPrimaryAsset() {
	w := s.do(http.MethodPost, "/api/expense/transactions", gin.H{
		"txn_type":      "expense",
		"amount":        "40",
		"category":      "Snacks",
		"transacted_at": "2024-06-10T12:00:00Z",
	})
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())

	w = s.do(http.MethodGet, "/api/expense/assets/primary", nil)
	s.Require().Equal(http.StatusOK, w.Code)
	var primary map[string]any
	s.decode(w, &primary)
	s.Equal(true, primary["is_primary"])
	s.Equal("-40", primary["balance"])
}

func (s *HandlersTestSuite) TestListTransactionsBadDate() {
	w := s.do(http.MethodGet, "/api/expense/transactions?start_date=june", nil)
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *HandlersTestSuite) TestCashflowEmpty() {
	w := s.do(http.MethodGet, "/api/expense/analytics/cashflow", nil)
	s.Require().Equal(http.StatusOK, w.Code)
	s.JSONEq(`[]`, w.Body.String())
}

func (s *HandlersTestSuite) TestCategorySpendRejectsMonth() {
	w := s.do(http.MethodGet, "/api/expense/analytics/category-spend?year=2024&month=13", nil)
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *HandlersTestSuite) TestMonthlyBudgetUpsertAlwaysCreated() {
	body := gin.H{"year": 2024, "month": 6, "total_budget": "20000"}
	s.Equal(http.StatusCreated, s.do(http.MethodPost, "/api/expense/budgets/monthly", body).Code)

	body["total_budget"] = "25000"
	w := s.do(http.MethodPost, "/api/expense/budgets/monthly", body)
	s.Require().Equal(http.StatusCreated, w.Code)

	w = s.do(http.MethodGet, "/api/expense/budgets/monthly", nil)
	var list []map[string]any
	s.decode(w, &list)
	s.Require().Len(list, 1)
	s.Equal("25000", list[0]["total_budget"])
}

func (s *HandlersTestSuite) TestGoalsActiveOnlyParsing() {
	w := s.do(http.MethodGet, "/api/expense/goals?active_only=maybe", nil)
	s.Equal(http.StatusBadRequest, w.Code)

	w = s.do(http.MethodGet, "/api/expense/goals?active_only=true", nil)
	s.Equal(http.StatusOK, w.Code)
	s.JSONEq(`[]`, w.Body.String())
}

func (s *HandlersTestSuite) TestRecurringRejectsUnknownSchedule() {
	w := s.do(http.MethodPost, "/api/expense/recurring", gin.H{
		"name":          "Rent",
		"txn_type":      "expense",
		"amount":        "100",
		"category":      "Housing",
		"schedule":      "fortnightly",
		"next_due_date": "2024-07-01",
	})
	s.Equal(http.StatusBadRequest, w.Code, w.Body.String())
}

func (s *HandlersTestSuite) TestTaskCreateUpdateDelete() {
	w := s.do(http.MethodPost, "/api/tasks", gin.H{"title": "Pay rent", "due_date": "2024-06-15"})
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	var task map[string]any
	s.decode(w, &task)
	s.Equal("2024-06-15", task["due_date"])
	s.EqualValues(2, task["priority"])
	s.Equal("todo", task["status"])
	id := int64(task["id"].(float64))

	w = s.do(http.MethodPatch, fmt.Sprintf("/api/tasks/%d", id), gin.H{"due_date": nil, "completed": true})
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	s.decode(w, &task)
	s.Nil(task["due_date"])
	s.Equal("done", task["status"])

	s.Equal(http.StatusNoContent, s.do(http.MethodDelete, fmt.Sprintf("/api/tasks/%d", id), nil).Code)
	s.Equal(http.StatusNotFound, s.do(http.MethodPatch, fmt.Sprintf("/api/tasks/%d", id), gin.H{"title": "x"}).Code)

	w = s.do(http.MethodGet, "/api/task-history", nil)
	s.Require().Equal(http.StatusOK, w.Code)
	var history []map[string]any
	s.decode(w, &history)
	s.Require().Len(history, 3)
	s.Equal("deleted", history[0]["action"])
}

func (s *HandlersTestSuite) TestTaskRejectsPriority() {
	w := s.do(http.MethodPost, "/api/tasks", gin.H{"title": "x", "priority": 7})
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *HandlersTestSuite) TestSwaggerDisabledInProduction() {
	w := s.do(http.MethodGet, "/swagger/index.html", nil)
	s.Equal(http.StatusNotFound, w.Code)
}

func (s *HandlersTestSuite) TestRequestIDEchoed() {
	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set(middleware.RequestIDHeader, "7d444840-9dc0-11d1-b245-5ffdce74fad2")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	s.Equal("7d444840-9dc0-11d1-b245-5ffdce74fad2", w.Header().Get(middleware.RequestIDHeader))
}

func TestHandlersTestSuite(t *testing.T) {
	suite.Run(t, new(HandlersTestSuite))
}
