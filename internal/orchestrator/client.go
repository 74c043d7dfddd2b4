// ABOUTME: HTTP client for the healthflow AI backend.
// ABOUTME: Calls never return errors; failures become fallback results and a warn log.
package orchestrator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/harperreed/healthflow/internal/logger"
)

// Defaults for Options.
const (
	DefaultBaseURL = "http://localhost:5001/api"
	DefaultTimeout = 60 * time.Second
)

const (
	pathHealth          = "/health"
	pathHRVAnalyze      = "/hrv/analyze"
	pathMedicalParse    = "/medical/parse"
	pathWorkoutGenerate = "/workout/generate"
	pathNutritionCheck  = "/nutrition/check"

	maxBodyBytes = 4 << 20
)

// Options configures a Client. Zero values pick the defaults.
type Options struct {
	BaseURL string
	// Timeout applies to every call. Ignored when HTTPClient is set.
	Timeout    time.Duration
	HTTPClient *http.Client
	Logger     *logger.Logger
}

// Client talks to the AI backend.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *logger.Logger
}

// HTTPError reports a non-2xx backend response.
type HTTPError struct {
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("backend http error: status=%d", e.StatusCode)
	}
	return fmt.Sprintf("backend http error: status=%d body=%s", e.StatusCode, e.Body)
}

// New builds a Client from opts.
func New(opts Options) *Client {
	baseURL := strings.TrimRight(strings.TrimSpace(opts.BaseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		httpClient = &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				Proxy: http.ProxyFromEnvironment,
				DialContext: (&net.Dialer{
					Timeout:   10 * time.Second,
					KeepAlive: 30 * time.Second,
				}).DialContext,
				MaxIdleConns:        10,
				IdleConnTimeout:     90 * time.Second,
				TLSHandshakeTimeout: 10 * time.Second,
			},
		}
	}

	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
		log:        log.With("component", "orchestrator"),
	}
}

// BaseURL returns the backend root the client posts to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// AnalyzeHRV asks the backend to interpret today's recovery figures.
func (c *Client) AnalyzeHRV(ctx context.Context, req HRVRequest) HRVAnalysis {
	var out HRVAnalysis
	if err := c.post(ctx, pathHRVAnalyze, req, &out); err != nil {
		c.warnFailed("analyze_hrv", err)
		return HRVAnalysis{Result: Failed(FallbackHRV)}
	}
	return out
}

// ParseMedicalProfile turns surgery, restrictions and medications into
// training constraints.
func (c *Client) ParseMedicalProfile(ctx context.Context, req MedicalRequest) MedicalProfile {
	req.Restrictions = nonNil(req.Restrictions)
	req.Medications = nonNil(req.Medications)
	var out MedicalProfile
	if err := c.post(ctx, pathMedicalParse, req, &out); err != nil {
		c.warnFailed("parse_medical_profile", err)
		return MedicalProfile{Result: Failed(FallbackMedical)}
	}
	return out
}

// GenerateWorkout requests a plan built from the analysis texts.
func (c *Client) GenerateWorkout(ctx context.Context, req WorkoutRequest) Workout {
	var out Workout
	if err := c.post(ctx, pathWorkoutGenerate, req, &out); err != nil {
		c.warnFailed("generate_workout", err)
		return Workout{Result: Failed(FallbackWorkout)}
	}
	return out
}

// CheckNutrition checks recent meals against the user's medications.
func (c *Client) CheckNutrition(ctx context.Context, req NutritionRequest) Nutrition {
	req.Medications = nonNil(req.Medications)
	req.RecentMeals = nonNil(req.RecentMeals)
	var out Nutrition
	if err := c.post(ctx, pathNutritionCheck, req, &out); err != nil {
		c.warnFailed("check_nutrition", err)
		return Nutrition{Result: Failed(FallbackNutrition)}
	}
	return out
}

// Health pings the backend. Unlike the analysis calls it returns an error.
func (c *Client) Health(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+pathHealth, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("health check: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &HTTPError{StatusCode: resp.StatusCode}
	}
	return nil
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(body); err != nil {
		return fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, &buf)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	c.log.Debug("backend call", "path", path, "status", resp.StatusCode, "elapsed", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<10))
		return &HTTPError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(raw))}
	}

	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (c *Client) warnFailed(op string, err error) {
	c.log.Warn("backend call failed, using fallback", "operation", op, "error", err)
}
