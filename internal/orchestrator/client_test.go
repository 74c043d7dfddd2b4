// ABOUTME: Tests for the AI backend client.
// ABOUTME: Uses a chi-routed httptest server as the fake backend.
package orchestrator

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/harperreed/healthflow/internal/logger"
	"github.com/harperreed/healthflow/internal/models"
)

type roundTripperFunc func(req *http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) { return f(req) }

// fakeBackend serves the four analysis endpoints. Paths listed in failing
// answer 500.
type fakeBackend struct {
	mu      sync.Mutex
	failing map[string]bool

	hrvReqs       []HRVRequest
	medicalReqs   []MedicalRequest
	workoutReqs   []WorkoutRequest
	nutritionReqs []NutritionRequest
	calls         []string
}

func newFakeBackend(t *testing.T, failing ...string) (*fakeBackend, *httptest.Server) {
	t.Helper()
	fb := &fakeBackend{failing: map[string]bool{}}
	for _, p := range failing {
		fb.failing[p] = true
	}

	r := chi.NewRouter()
	r.Route("/api", func(r chi.Router) {
		r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(w, map[string]string{"status": "healthy"})
		})
		r.Post("/hrv/analyze", func(w http.ResponseWriter, req *http.Request) {
			var in HRVRequest
			if !fb.accept(w, req, pathHRVAnalyze, &in) {
				return
			}
			fb.mu.Lock()
			fb.hrvReqs = append(fb.hrvReqs, in)
			fb.mu.Unlock()
			score := models.Classify(models.Deviation(in.HRVMs, in.BaselineHRV))
			writeJSON(w, HRVAnalysis{
				Result:        Result{Success: true, Response: "REASONING: HRV is " + string(score)},
				RecoveryScore: score,
			})
		})
		r.Post("/medical/parse", func(w http.ResponseWriter, req *http.Request) {
			var in MedicalRequest
			if !fb.accept(w, req, pathMedicalParse, &in) {
				return
			}
			fb.mu.Lock()
			fb.medicalReqs = append(fb.medicalReqs, in)
			fb.mu.Unlock()
			writeJSON(w, map[string]any{
				"success":            true,
				"response":           "CONCERNS: no deep flexion",
				"parsed_constraints": map[string]any{"avoid": []string{"deep squats"}},
			})
		})
		r.Post("/workout/generate", func(w http.ResponseWriter, req *http.Request) {
			var in WorkoutRequest
			if !fb.accept(w, req, pathWorkoutGenerate, &in) {
				return
			}
			fb.mu.Lock()
			fb.workoutReqs = append(fb.workoutReqs, in)
			fb.mu.Unlock()
			writeJSON(w, map[string]any{
				"success":  true,
				"response": "WORKOUT PLAN: 20 min walk",
			})
		})
		r.Post("/nutrition/check", func(w http.ResponseWriter, req *http.Request) {
			var in NutritionRequest
			if !fb.accept(w, req, pathNutritionCheck, &in) {
				return
			}
			fb.mu.Lock()
			fb.nutritionReqs = append(fb.nutritionReqs, in)
			fb.mu.Unlock()
			writeJSON(w, map[string]any{
				"success":      true,
				"response":     "Spinach contains vitamin K",
				"interactions": []map[string]string{{"food": "spinach"}},
			})
		})
	})

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return fb, srv
}

func (fb *fakeBackend) accept(w http.ResponseWriter, req *http.Request, path string, in any) bool {
	fb.mu.Lock()
	fb.calls = append(fb.calls, path)
	failing := fb.failing[path]
	fb.mu.Unlock()

	if failing {
		http.Error(w, "upstream exploded", http.StatusInternalServerError)
		return false
	}
	if req.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "bad content type", http.StatusUnsupportedMediaType)
		return false
	}
	if err := json.NewDecoder(req.Body).Decode(in); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return false
	}
	return true
}

func (fb *fakeBackend) snapshot() (calls []string, workouts []WorkoutRequest, nutrition []NutritionRequest) {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	return append([]string(nil), fb.calls...),
		append([]WorkoutRequest(nil), fb.workoutReqs...),
		append([]NutritionRequest(nil), fb.nutritionReqs...)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func newTestClient(srv *httptest.Server) *Client {
	return New(Options{BaseURL: srv.URL + "/api", Timeout: 2 * time.Second})
}

func TestNewDefaults(t *testing.T) {
	c := New(Options{})
	if c.BaseURL() != DefaultBaseURL {
		t.Errorf("BaseURL = %q, want %q", c.BaseURL(), DefaultBaseURL)
	}
	if c.httpClient.Timeout != DefaultTimeout {
		t.Errorf("Timeout = %v, want %v", c.httpClient.Timeout, DefaultTimeout)
	}

	c = New(Options{BaseURL: "http://example.test/api/"})
	if c.BaseURL() != "http://example.test/api" {
		t.Errorf("expected trailing slash trimmed, got %q", c.BaseURL())
	}
}

func TestCallsSucceed(t *testing.T) {
	fb, srv := newFakeBackend(t)
	c := newTestClient(srv)
	ctx := context.Background()

	hrv := c.AnalyzeHRV(ctx, HRVRequest{HRVMs: 50, BaselineHRV: 65})
	if !hrv.Success || hrv.RecoveryScore != models.RecoveryModerate {
		t.Errorf("AnalyzeHRV = %+v", hrv)
	}

	med := c.ParseMedicalProfile(ctx, MedicalRequest{Surgery: "ACL", Restrictions: []string{}, Medications: []string{}})
	if !med.Success || len(med.ParsedConstraints) == 0 {
		t.Errorf("ParseMedicalProfile = %+v", med)
	}

	nut := c.CheckNutrition(ctx, NutritionRequest{Medications: []string{"warfarin"}, RecentMeals: []string{"spinach"}})
	if !nut.Success || len(nut.Interactions) == 0 {
		t.Errorf("CheckNutrition = %+v", nut)
	}
	_, _, nutReqs := fb.snapshot()
	if len(nutReqs) != 1 || nutReqs[0].RecentMeals[0] != "spinach" {
		t.Errorf("nutrition request not received: %+v", nutReqs)
	}

	if err := c.Health(ctx); err != nil {
		t.Errorf("Health failed: %v", err)
	}
}

func TestOptionalPayloadMayBeAbsent(t *testing.T) {
	_, srv := newFakeBackend(t)
	c := newTestClient(srv)

	w := c.GenerateWorkout(context.Background(), WorkoutRequest{HRVAnalysis: "x", MedicalConstraints: "y"})
	if !w.Success {
		t.Fatalf("GenerateWorkout failed: %+v", w)
	}
	if w.WorkoutPlan != nil {
		t.Errorf("expected no workout plan payload, got %s", w.WorkoutPlan)
	}
}

func TestFallbackOnServerError(t *testing.T) {
	_, srv := newFakeBackend(t, pathHRVAnalyze, pathMedicalParse, pathWorkoutGenerate, pathNutritionCheck)
	c := newTestClient(srv)
	ctx := context.Background()

	tests := []struct {
		name string
		got  Result
		want string
	}{
		{"hrv", c.AnalyzeHRV(ctx, HRVRequest{}).Result, FallbackHRV},
		{"medical", c.ParseMedicalProfile(ctx, MedicalRequest{}).Result, FallbackMedical},
		{"workout", c.GenerateWorkout(ctx, WorkoutRequest{}).Result, FallbackWorkout},
		{"nutrition", c.CheckNutrition(ctx, NutritionRequest{}).Result, FallbackNutrition},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got.Success {
				t.Error("expected Success=false")
			}
			if tt.got.Response != tt.want {
				t.Errorf("Response = %q, want %q", tt.got.Response, tt.want)
			}
		})
	}
}

func TestFallbackOnTransportError(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	c := New(Options{
		BaseURL: "http://backend.invalid/api",
		HTTPClient: &http.Client{
			Transport: roundTripperFunc(func(*http.Request) (*http.Response, error) {
				return nil, errors.New("connection refused")
			}),
		},
		Logger: &logger.Logger{SugaredLogger: zap.New(core).Sugar()},
	})

	got := c.CheckNutrition(context.Background(), NutritionRequest{})
	if got.Success || got.Response != FallbackNutrition {
		t.Errorf("CheckNutrition = %+v", got)
	}

	entries := logs.FilterMessage("backend call failed, using fallback").All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 warn entry, got %d", len(entries))
	}
	if op := entries[0].ContextMap()["operation"]; op != "check_nutrition" {
		t.Errorf("operation = %v, want check_nutrition", op)
	}

	if err := c.Health(context.Background()); err == nil {
		t.Error("expected Health to report transport failure")
	}
}

func TestFallbackOnInvalidJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte("<html>not json</html>"))
	}))
	defer srv.Close()

	c := New(Options{BaseURL: srv.URL})
	got := c.ParseMedicalProfile(context.Background(), MedicalRequest{})
	if got.Success || got.Response != FallbackMedical {
		t.Errorf("ParseMedicalProfile = %+v", got)
	}
}

func TestFallbackOnTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer srv.Close()

	c := New(Options{BaseURL: srv.URL, Timeout: 50 * time.Millisecond})

	start := time.Now()
	got := c.AnalyzeHRV(context.Background(), HRVRequest{})
	if got.Success || got.Response != FallbackHRV {
		t.Errorf("AnalyzeHRV = %+v", got)
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Errorf("timeout not enforced, call took %v", elapsed)
	}
}

func TestHealthNon2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	err := New(Options{BaseURL: srv.URL}).Health(context.Background())
	var httpErr *HTTPError
	if !errors.As(err, &httpErr) || httpErr.StatusCode != http.StatusServiceUnavailable {
		t.Errorf("Health error = %v, want HTTPError 503", err)
	}
}
