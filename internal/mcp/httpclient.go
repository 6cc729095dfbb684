package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/claude/timesplit/internal/planner"
)

// HTTPClient implements Planner by calling the timesplit REST API.
// Used for remote MCP mode where the binary runs locally (stdio) but
// the planner is served elsewhere (for example over Tailscale).
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
}

// Compile-time check: HTTPClient satisfies Planner.
var _ Planner = (*HTTPClient)(nil)

// NewHTTPClient creates an HTTPClient targeting the given base URL.
func NewHTTPClient(baseURL string) *HTTPClient {
	return &HTTPClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

type planBody struct {
	TotalMinutes float64 `json:"total_minutes"`
	MuscleGroup  string  `json:"muscle_group,omitempty"`
	FitnessLevel string  `json:"fitness_level,omitempty"`
}

func (c *HTTPClient) Plan(ctx context.Context, req planner.Request) (*planner.Plan, error) {
	// NaN and Inf are not representable in JSON; reject them here the way the server would.
	if math.IsNaN(req.TotalMinutes) || math.IsInf(req.TotalMinutes, 0) || req.TotalMinutes <= 0 {
		return nil, &planner.ValidationError{Field: "total_minutes", Value: req.TotalMinutes}
	}
	payload, err := json.Marshal(planBody{
		TotalMinutes: req.TotalMinutes,
		MuscleGroup:  req.MuscleGroup,
		FitnessLevel: req.FitnessLevel,
	})
	if err != nil {
		return nil, fmt.Errorf("httpclient: encode plan request: %w", err)
	}

	status, body, err := c.do(ctx, http.MethodPost, "/api/plan-time-split", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	if status == http.StatusBadRequest {
		return nil, &planner.ValidationError{Field: "total_minutes", Value: req.TotalMinutes}
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("httpclient: /api/plan-time-split returned %d: %s", status, body)
	}

	var plan planner.Plan
	if err := json.Unmarshal(body, &plan); err != nil {
		return nil, fmt.Errorf("httpclient: decode plan: %w", err)
	}
	return &plan, nil
}

func (c *HTTPClient) Rules(ctx context.Context) (*planner.RuleTable, error) {
	status, body, err := c.do(ctx, http.MethodGet, "/api/rules", nil)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("httpclient: /api/rules returned %d: %s", status, body)
	}

	var rules planner.RuleTable
	if err := json.Unmarshal(body, &rules); err != nil {
		return nil, fmt.Errorf("httpclient: decode rules: %w", err)
	}
	return &rules, nil
}

func (c *HTTPClient) do(ctx context.Context, method, path string, payload io.Reader) (int, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, payload)
	if err != nil {
		return 0, nil, fmt.Errorf("httpclient: create request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("httpclient: %s: %w", path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("httpclient: read body: %w", err)
	}
	return resp.StatusCode, body, nil
}
