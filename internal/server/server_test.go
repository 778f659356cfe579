package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/iwvelando/travel-optimizer/internal/config"
	"github.com/iwvelando/travel-optimizer/internal/optimizer"
	"go.uber.org/zap"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	conf := &config.Configuration{}
	conf.Normalize()

	opt, err := optimizer.NewOptimizer(zap.NewNop(), conf)
	if err != nil {
		t.Fatalf("failed to create optimizer: %v", err)
	}

	return NewRouter(zap.NewNop(), conf, opt, "test")
}

func postJSON(t *testing.T, router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

const optimizeBody = `{
	"total_budget": 3000,
	"duration_days": 5,
	"preferences": {"comfort_level": "standard"},
	"flights": [
		{"airline": "TAP", "price": 450, "outbound": {"stops": 0}},
		{"airline": "Iberia", "price": 480, "outbound": {"stops": 1}}
	],
	"hotels": [
		{"name": "Riverside", "rating": 4.5, "price": {"per_night": 150, "total": 750}},
		{"name": "Old Town", "rating": 4.2, "price": {"per_night": 120, "total": 600}}
	],
	"activities": [
		{"name": "Tram Tour", "price": 40, "personalization_score": 0.9},
		{"name": "Food Market", "price": 35, "personalization_score": 0.8}
	]
}`

func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusOK {
		t.Fatalf("health status = %d, want 200", recorder.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(recorder.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode health response: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("health status field = %q, want ok", body["status"])
	}
	if body["version"] != "test" {
		t.Errorf("health version field = %q, want test", body["version"])
	}
}

func TestOptimizeEndpoint(t *testing.T) {
	router := newTestRouter(t)

	recorder := postJSON(t, router, "/api/optimize", optimizeBody)
	if recorder.Code != http.StatusOK {
		t.Fatalf("optimize status = %d, want 200, body %s", recorder.Code, recorder.Body.String())
	}

	var body struct {
		RequestID string          `json:"request_id"`
		Plan      *optimizer.Plan `json:"plan"`
	}
	if err := json.Unmarshal(recorder.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode optimize response: %v", err)
	}
	if body.RequestID == "" {
		t.Errorf("expected a request id")
	}
	if body.Plan == nil {
		t.Fatalf("expected a plan in the response")
	}
	if body.Plan.Selected.Flight == nil || body.Plan.Selected.Flight.Price != 450 {
		t.Errorf("expected the $450 nonstop selected, got %+v", body.Plan.Selected.Flight)
	}
	if body.Plan.Balance != body.Plan.TotalBudget-body.Plan.TotalCost {
		t.Errorf("balance inconsistent with budget and cost")
	}
}

func TestOptimizeEndpointRejectsMalformedBody(t *testing.T) {
	router := newTestRouter(t)

	recorder := postJSON(t, router, "/api/optimize", `{"total_budget": "lots"}`)
	if recorder.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", recorder.Code)
	}
}

func TestOptimizeEndpointRejectsInvalidRequest(t *testing.T) {
	router := newTestRouter(t)

	recorder := postJSON(t, router, "/api/optimize", `{"total_budget": -100, "duration_days": 5}`)
	if recorder.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", recorder.Code)
	}
}

func TestOptimizeEndpointUnknownComfortLevel(t *testing.T) {
	router := newTestRouter(t)

	recorder := postJSON(t, router, "/api/optimize",
		`{"total_budget": 1000, "duration_days": 3, "preferences": {"comfort_level": "platinum"}}`)
	if recorder.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400, body %s", recorder.Code, recorder.Body.String())
	}
}

func TestAlternativesEndpoint(t *testing.T) {
	router := newTestRouter(t)

	recorder := postJSON(t, router, "/api/alternatives", optimizeBody)
	if recorder.Code != http.StatusOK {
		t.Fatalf("alternatives status = %d, want 200, body %s", recorder.Code, recorder.Body.String())
	}

	var body struct {
		RequestID    string                  `json:"request_id"`
		Alternatives []optimizer.Alternative `json:"alternatives"`
	}
	if err := json.Unmarshal(recorder.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode alternatives response: %v", err)
	}
	if len(body.Alternatives) != 3 {
		t.Fatalf("expected 3 alternatives, got %d", len(body.Alternatives))
	}
	for i := 1; i < len(body.Alternatives); i++ {
		if body.Alternatives[i].ValueScore > body.Alternatives[i-1].ValueScore {
			t.Errorf("alternatives not sorted by value score")
		}
	}
}

func TestFeasibilityEndpoint(t *testing.T) {
	router := newTestRouter(t)

	recorder := postJSON(t, router, "/api/feasibility",
		`{"total_budget": 500, "destination": "Lisbon", "duration_days": 10, "group_size": 4}`)
	if recorder.Code != http.StatusOK {
		t.Fatalf("feasibility status = %d, want 200, body %s", recorder.Code, recorder.Body.String())
	}

	var body struct {
		RequestID   string                      `json:"request_id"`
		Feasibility optimizer.FeasibilityReport `json:"feasibility"`
	}
	if err := json.Unmarshal(recorder.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode feasibility response: %v", err)
	}
	if body.Feasibility.Feasible {
		t.Errorf("expected infeasible budget")
	}
	if body.Feasibility.MinRequired != 3300 {
		t.Errorf("min required = %v, want 3300", body.Feasibility.MinRequired)
	}
}

func TestFeasibilityEndpointRejectsNegativeBudget(t *testing.T) {
	router := newTestRouter(t)

	recorder := postJSON(t, router, "/api/feasibility", `{"total_budget": -1, "duration_days": 3, "group_size": 1}`)
	if recorder.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", recorder.Code)
	}
}
