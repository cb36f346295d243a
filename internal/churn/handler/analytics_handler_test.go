package handler

import (
	"net/http"
	"testing"

	"github.com/KAVITHAPANDIAN2504/Customer-Churn-Prediction-Revenue-Analytics/internal/churn/generator"
	"github.com/KAVITHAPANDIAN2504/Customer-Churn-Prediction-Revenue-Analytics/internal/churn/repository"
	"github.com/KAVITHAPANDIAN2504/Customer-Churn-Prediction-Revenue-Analytics/internal/churn/service"
	"github.com/KAVITHAPANDIAN2504/Customer-Churn-Prediction-Revenue-Analytics/internal/churn/testutil"
)

func setupAnalyticsTest(t *testing.T) *testutil.TestEnv {
	t.Helper()
	db := testutil.SetupTestDB(t)

	repos := repository.NewRepositories(db)
	analyticsSvc := service.NewAnalyticsService(repos.Analytics)
	exportSvc := service.NewExportService(repos.Analytics, nil, "")
	h := NewAnalyticsHandler(analyticsSvc, exportSvc)

	router := testutil.SetupRouter()
	api := testutil.AuthGroup(router, "/api/v1")
	api.GET("/analytics/ltv", h.ListLTV)
	api.GET("/analytics/churn", h.ChurnSummary)
	api.GET("/analytics/risk-features", h.ListRiskFeatures)
	api.GET("/analytics/risk-features/export", h.ExportRiskFeatures)
	api.GET("/analytics/risk-features/:customerId", h.GetRiskFeatures)

	// a small but real dataset behind the views
	if err := repos.Dataset.InsertDataset(generator.New(42).Generate(60)); err != nil {
		t.Fatalf("Failed to seed dataset: %v", err)
	}

	return &testutil.TestEnv{DB: db, Router: router, T: t}
}

func TestAnalyticsRequiresAuth(t *testing.T) {
	env := setupAnalyticsTest(t)

	w := testutil.DoRequest(env.Router, http.MethodGet, "/api/v1/analytics/churn", nil, "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", w.Code)
	}
}

func TestChurnSummaryEndpoint(t *testing.T) {
	env := setupAnalyticsTest(t)
	token := testutil.DefaultTestToken()

	w := testutil.DoRequest(env.Router, http.MethodGet, "/api/v1/analytics/churn", nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	resp := testutil.ParseResponse(w)
	if resp["code"].(float64) != 0 {
		t.Fatalf("unexpected response code: %v", resp["code"])
	}
	rows := resp["data"].([]interface{})
	if len(rows) == 0 {
		t.Fatal("expected at least one segment row")
	}
	for _, raw := range rows {
		row := raw.(map[string]interface{})
		rate := row["churn_rate_pct"].(float64)
		if rate < 0 || rate > 100 {
			t.Fatalf("churn_rate_pct out of range: %v", rate)
		}
	}
}

func TestRiskFeatureEndpoints(t *testing.T) {
	env := setupAnalyticsTest(t)
	token := testutil.DefaultTestToken()

	w := testutil.DoRequest(env.Router, http.MethodGet, "/api/v1/analytics/risk-features?size=10", nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	resp := testutil.ParseResponse(w)
	data := resp["data"].(map[string]interface{})
	if data["total"].(float64) != 60 {
		t.Fatalf("expected 60 feature rows, got %v", data["total"])
	}

	items := data["items"].([]interface{})
	if len(items) != 10 {
		t.Fatalf("expected a page of 10, got %d", len(items))
	}

	first := items[0].(map[string]interface{})
	switch first["risk_category"].(string) {
	case "High Risk", "Medium Risk", "Low Risk":
	default:
		t.Fatalf("unexpected risk_category: %v", first["risk_category"])
	}

	// per-customer lookup round-trips
	customerID := first["customer_id"].(string)
	w = testutil.DoRequest(env.Router, http.MethodGet, "/api/v1/analytics/risk-features/"+customerID, nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 for %s, got %d", customerID, w.Code)
	}
}

func TestRiskFeatureExportDownload(t *testing.T) {
	env := setupAnalyticsTest(t)
	token := testutil.DefaultTestToken()

	w := testutil.DoRequest(env.Router, http.MethodGet, "/api/v1/analytics/risk-features/export", nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet" {
		t.Fatalf("unexpected content type: %s", ct)
	}
	if w.Body.Len() == 0 {
		t.Fatal("expected a non-empty workbook")
	}
}
