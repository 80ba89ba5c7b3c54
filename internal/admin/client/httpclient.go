package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/popcue/admin-console/internal/admin/models"
	"github.com/popcue/admin-console/internal/common"
)

const maxErrorBody = 1 << 20

const (
	loginPath     = "/api/v1/auth/login"
	tenantsPath   = "/api/v1/auth/tenants"
	surveysPath   = "/api/v1/surveys"
	generatePath  = "/api/v1/surveys/generate-ai"
	publishPath   = "/api/v1/surveys/%s/publish"
	unpublishPath = "/api/v1/surveys/%s/unpublish"
)

type HTTPClient struct {
	baseURL string
	http    *http.Client
}

type Option func(*HTTPClient)

// WithHTTPClient replaces the underlying *http.Client (tests, proxies).
func WithHTTPClient(c *http.Client) Option {
	return func(h *HTTPClient) { h.http = c }
}

// WithTimeout bounds every request. Zero keeps the transport default of no
// client-side timeout.
func WithTimeout(d time.Duration) Option {
	return func(h *HTTPClient) {
		if d > 0 {
			h.http.Timeout = d
		}
	}
}

func NewHTTPClient(baseURL string, opts ...Option) *HTTPClient {
	c := &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	body := map[string]string{"email": email, "password": password}

	var resp LoginResponse
	if err := c.do(ctx, http.MethodPost, loginPath, "", body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ListTenants accepts both {"tenants":[...]} and a bare array.
func (c *HTTPClient) ListTenants(ctx context.Context, token string) ([]models.Tenant, error) {
	var raw json.RawMessage
	if err := c.do(ctx, http.MethodGet, tenantsPath, token, nil, &raw); err != nil {
		return nil, err
	}
	return decodeTenants(raw)
}

func decodeTenants(raw json.RawMessage) ([]models.Tenant, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, nil
	}

	var tenants []models.Tenant
	if trimmed[0] == '[' {
		if err := json.Unmarshal(trimmed, &tenants); err != nil {
			return nil, fmt.Errorf("decode tenants: %w", err)
		}
		return tenants, nil
	}

	var wrapped struct {
		Tenants []models.Tenant `json:"tenants"`
	}
	if err := json.Unmarshal(trimmed, &wrapped); err != nil {
		return nil, fmt.Errorf("decode tenants: %w", err)
	}
	return wrapped.Tenants, nil
}

func (c *HTTPClient) ListSurveys(ctx context.Context, token string) ([]models.SurveySummary, error) {
	var surveys []models.SurveySummary
	if err := c.do(ctx, http.MethodGet, surveysPath, token, nil, &surveys); err != nil {
		return nil, err
	}
	return surveys, nil
}

func (c *HTTPClient) GenerateSurvey(ctx context.Context, token string, req models.SurveyRequest) (*models.SurveyResult, error) {
	var res models.SurveyResult
	if err := c.do(ctx, http.MethodPost, generatePath, token, req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *HTTPClient) PublishSurvey(ctx context.Context, token, surveyID string) (*models.PublishResult, error) {
	var res models.PublishResult
	path := fmt.Sprintf(publishPath, url.PathEscape(surveyID))
	if err := c.do(ctx, http.MethodPost, path, token, nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *HTTPClient) UnpublishSurvey(ctx context.Context, token, surveyID string) (*models.PublishResult, error) {
	var res models.PublishResult
	path := fmt.Sprintf(unpublishPath, url.PathEscape(surveyID))
	if err := c.do(ctx, http.MethodPost, path, token, nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *HTTPClient) do(ctx context.Context, method, path, token string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode %s request: %w", path, err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set(common.ContentTypeHeader, common.ContentTypeJSON)
	req.Header.Set(common.RequestIDHeader, uuid.NewString())
	if token != "" {
		req.Header.Set(common.AuthorizationHeader, common.BearerToken(token))
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w: %w", method, path, ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newAPIError(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}

// newAPIError reads the optional "detail" field. FastAPI-style validation
// errors send detail as a list; only string details are surfaced.
func newAPIError(resp *http.Response) *APIError {
	apiErr := &APIError{StatusCode: resp.StatusCode}

	b, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil {
		return apiErr
	}

	var payload struct {
		Detail any `json:"detail"`
	}
	if json.Unmarshal(b, &payload) == nil {
		if s, ok := payload.Detail.(string); ok {
			apiErr.Detail = s
		}
	}
	return apiErr
}
