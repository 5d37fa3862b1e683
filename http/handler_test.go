package http

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"personal-site/domain"
	"personal-site/repository"
	"personal-site/service"
)

type testServer struct {
	handler http.Handler
	limiter *RateLimiter
	history *repository.CalculationRepositoryMemory
}

func newTestServer(t *testing.T, capacity int) *testServer {
	t.Helper()

	history := repository.NewCalculationRepositoryMemory()
	projections := service.NewProjectionService(history, repository.NewMemoryCache())
	goals := service.NewGoalService(history)

	limiter := NewRateLimiter(capacity, time.Minute)
	t.Cleanup(limiter.Stop)

	handler := NewRouter(Handlers{
		Projection: NewProjectionHandler(projections),
		Goal:       NewGoalHandler(goals, service.NewGoalPlanService(goals)),
		History:    NewHistoryHandler(service.NewHistoryService(history)),
	}, limiter, slog.New(slog.NewTextHandler(io.Discard, nil)))

	return &testServer{handler: handler, limiter: limiter, history: history}
}

func (s *testServer) do(method, target, body string) *httptest.ResponseRecorder {
	var r io.Reader
	if body != "" {
		r = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, target, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	s.handler.ServeHTTP(w, req)
	return w
}

func TestProjectHandler_OK(t *testing.T) {

	srv := newTestServer(t, 100)

	w := srv.do(http.MethodPost, "/finance/sip", `{
		"monthlyContribution": 5000,
		"annualRatePercent": 12,
		"years": 5
	}`)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected application/json, got %q", ct)
	}

	var result domain.ProjectionResult
	if err := json.NewDecoder(w.Body).Decode(&result); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if result.FutureValue != 412431.83 {
		t.Errorf("expected 412431.83, got %.2f", result.FutureValue)
	}
}

func TestProjectHandler_MethodNotAllowed(t *testing.T) {

	srv := newTestServer(t, 100)

	for _, path := range []string{"/finance/project", "/finance/sip", "/finance/lumpsum", "/finance/inflation", "/finance/goal", "/finance/goal/plan"} {
		w := srv.do(http.MethodGet, path, "")
		if w.Code != http.StatusMethodNotAllowed {
			t.Errorf("%s: expected 405, got %d", path, w.Code)
		}
	}

	w := srv.do(http.MethodPost, "/finance/double?rate=12", `{}`)
	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected 405 for POST /finance/double, got %d", w.Code)
	}
}

func TestProjectHandler_BadRequest(t *testing.T) {

	srv := newTestServer(t, 100)

	cases := []struct {
		name string
		path string
		body string
	}{
		{"malformed json", "/finance/project", `{invalid-json}`},
		{"unknown field", "/finance/sip", `{"monthly": 5000}`},
		{"nothing invested", "/finance/project", `{"annualRatePercent": 12, "years": 5}`},
		{"negative principal", "/finance/lumpsum", `{"principal": -1, "annualRatePercent": 12, "years": 5}`},
		{"zero inflation", "/finance/inflation", `{"currentValue": 100, "inflationRatePercent": 0, "years": 5}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := srv.do(http.MethodPost, tc.path, tc.body)
			if w.Code != http.StatusBadRequest {
				t.Errorf("expected 400, got %d", w.Code)
			}
		})
	}
}

func TestProjectHandler_UnsupportedMediaType(t *testing.T) {

	srv := newTestServer(t, 100)

	req := httptest.NewRequest(http.MethodPost, "/finance/sip", bytes.NewBufferString(`{}`))
	req.Header.Set("Content-Type", "text/plain")
	w := httptest.NewRecorder()
	srv.handler.ServeHTTP(w, req)

	if w.Code != http.StatusUnsupportedMediaType {
		t.Errorf("expected 415, got %d", w.Code)
	}
}

func TestDoubleHandler(t *testing.T) {

	srv := newTestServer(t, 100)

	w := srv.do(http.MethodGet, "/finance/double?rate=100", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var result domain.DoublingResult
	json.NewDecoder(w.Body).Decode(&result)
	if result.YearsToDouble != 1 {
		t.Errorf("expected 1, got %v", result.YearsToDouble)
	}

	for _, target := range []string{"/finance/double", "/finance/double?rate=abc", "/finance/double?rate=0"} {
		if w := srv.do(http.MethodGet, target, ""); w.Code != http.StatusBadRequest {
			t.Errorf("%s: expected 400, got %d", target, w.Code)
		}
	}
}

func TestWordsHandler(t *testing.T) {

	srv := newTestServer(t, 100)

	w := srv.do(http.MethodGet, "/finance/words?amount=12345678", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var result domain.WordsResult
	json.NewDecoder(w.Body).Decode(&result)
	if result.Words != "1 Crore, 23 Lakh, 45 Thousand" {
		t.Errorf("unexpected words: %q", result.Words)
	}
}

func TestGoalHandler(t *testing.T) {

	srv := newTestServer(t, 100)

	w := srv.do(http.MethodPost, "/finance/goal", `{"goalAmount": 1000000, "annualRatePercent": 12, "years": 10, "timing": "ordinary"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var result domain.GoalResult
	json.NewDecoder(w.Body).Decode(&result)
	if !result.Available || result.MonthlyContribution != 4347.09 {
		t.Errorf("unexpected goal result: %+v", result)
	}

	// unreachable goals are not request errors
	w = srv.do(http.MethodPost, "/finance/goal", `{"goalAmount": 1000000, "annualRatePercent": 0, "years": 10}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	result = domain.GoalResult{}
	json.NewDecoder(w.Body).Decode(&result)
	if result.Available || result.Reason == "" {
		t.Errorf("expected unavailable result with a reason, got %+v", result)
	}

	w = srv.do(http.MethodPost, "/finance/goal", `{"goalAmount": 1000000, "annualRatePercent": 12, "years": 10, "timing": "weekly"}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for unknown timing, got %d", w.Code)
	}
}

func TestGoalPlanHandler(t *testing.T) {

	srv := newTestServer(t, 100)

	w := srv.do(http.MethodPost, "/finance/goal/plan", `{
		"goalAmount": 1000000, "annualRatePercent": 12,
		"minYears": 5, "maxYears": 15, "maxMonthlyContribution": 5000, "timing": "ordinary"
	}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var result domain.GoalPlanResult
	json.NewDecoder(w.Body).Decode(&result)
	if result.RecommendedYears != 10 {
		t.Errorf("expected 10 years, got %d", result.RecommendedYears)
	}

	w = srv.do(http.MethodPost, "/finance/goal/plan", `{
		"goalAmount": 10000000, "annualRatePercent": 10,
		"minYears": 1, "maxYears": 5, "maxMonthlyContribution": 1000
	}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 when nothing fits, got %d", w.Code)
	}
}

func TestHistoryHandler(t *testing.T) {

	srv := newTestServer(t, 100)

	w := srv.do(http.MethodGet, "/finance/history", "")
	if w.Code != http.StatusOK || w.Body.String() != "[]\n" {
		t.Fatalf("expected empty list, got %d %q", w.Code, w.Body.String())
	}

	srv.do(http.MethodPost, "/finance/sip", `{"monthlyContribution": 100, "annualRatePercent": 8, "years": 1}`)
	srv.do(http.MethodPost, "/finance/inflation", `{"currentValue": 100, "inflationRatePercent": 6, "years": 1}`)

	w = srv.do(http.MethodGet, "/finance/history?limit=1", "")
	var records []domain.CalculationRecord
	json.NewDecoder(w.Body).Decode(&records)
	if len(records) != 1 || records[0].Kind != domain.KindInflation {
		t.Errorf("expected latest inflation record, got %+v", records)
	}

	if w := srv.do(http.MethodGet, "/finance/history?limit=x", ""); w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestRouter_RateLimited(t *testing.T) {

	srv := newTestServer(t, 2)

	for i := 0; i < 2; i++ {
		if w := srv.do(http.MethodGet, "/finance/double?rate=12", ""); w.Code != http.StatusOK {
			t.Fatalf("request %d: expected 200, got %d", i, w.Code)
		}
	}

	w := srv.do(http.MethodGet, "/finance/double?rate=12", "")
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", w.Code)
	}
	if w.Header().Get("Retry-After") == "" {
		t.Errorf("expected Retry-After header")
	}

	if w := srv.do(http.MethodGet, "/healthz", ""); w.Code != http.StatusOK || w.Body.String() != "ok" {
		t.Errorf("expected healthz to bypass the limiter, got %d %q", w.Code, w.Body.String())
	}
}
