// Package octo implements the Octo Browser automation API client used
// to create profiles. Fingerprint generation, retries and everything
// else behind the API stay on the remote side.
package octo

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/octobatch/octobatch/internal/batch"
	"github.com/octobatch/octobatch/internal/proxy"
	"github.com/octobatch/octobatch/pkg/logger"
)

const (
	// DefaultBaseURL is the public Octo automation API endpoint.
	DefaultBaseURL = "https://app.octobrowser.net/api/v2/automation"
	// DefaultTitlePrefix names created profiles <prefix>_<n>.
	DefaultTitlePrefix = "BatchProfile"

	tokenHeader    = "X-Octo-Api-Token"
	defaultTimeout = 30 * time.Second

	// Octo publishes remaining request quotas on every response.
	remainingMinuteHeader = "X-Ratelimit-Remaining"
	remainingHourHeader   = "X-Ratelimit-Remaining-Hour"
	// Below this remaining-quota floor the client pauses before the
	// next request instead of burning the last slots.
	rateLimitFloor = 10
)

// Fingerprint is the template the API uses to generate browser
// identification data during profile creation.
type Fingerprint struct {
	OS     string `json:"os"`
	Screen string `json:"screen"`
}

// DefaultFingerprint matches the Octo default template.
var DefaultFingerprint = Fingerprint{OS: "win", Screen: "1920x1080"}

// Options configures a Client.
type Options struct {
	// BaseURL overrides DefaultBaseURL when non-empty.
	BaseURL string
	// Token is the API token. Required.
	Token string
	// Timeout bounds each request. Defaults to 30s.
	Timeout time.Duration
	// TitlePrefix overrides DefaultTitlePrefix when non-empty.
	TitlePrefix string
	// Fingerprint overrides DefaultFingerprint when non-zero.
	Fingerprint Fingerprint
	// Logger receives rate-limit diagnostics. Defaults to a nop logger.
	Logger logger.Logger
	// Sleep replaces time.Sleep for rate-limit pauses. Test hook.
	Sleep func(time.Duration)
}

// Client wraps the Octo profile creation endpoint.
type Client struct {
	baseURL     *url.URL
	httpClient  *http.Client
	token       string
	titlePrefix string
	fingerprint Fingerprint
	log         logger.Logger
	sleep       func(time.Duration)
}

// NewClient constructs an API client from options.
func NewClient(opts Options) (*Client, error) {
	token := strings.TrimSpace(opts.Token)
	if token == "" {
		return nil, fmt.Errorf("octo: API token is required")
	}
	raw := opts.BaseURL
	if raw == "" {
		raw = DefaultBaseURL
	}
	parsed, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("octo: parsing base URL: %w", err)
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	prefix := opts.TitlePrefix
	if prefix == "" {
		prefix = DefaultTitlePrefix
	}
	fp := opts.Fingerprint
	if fp == (Fingerprint{}) {
		fp = DefaultFingerprint
	}
	log := opts.Logger
	if log == nil {
		log = logger.NewNopLogger()
	}
	sleep := opts.Sleep
	if sleep == nil {
		sleep = time.Sleep
	}
	return &Client{
		baseURL:     parsed,
		httpClient:  &http.Client{Timeout: timeout},
		token:       token,
		titlePrefix: prefix,
		fingerprint: fp,
		log:         log,
		sleep:       sleep,
	}, nil
}

// SetHTTPClient sets the HTTP client for testing.
func (c *Client) SetHTTPClient(client *http.Client) {
	c.httpClient = client
}

// proxyPayload mirrors the proxy object of the Octo profile schema.
// The API expects the port as a string.
type proxyPayload struct {
	Type     string `json:"type"`
	Host     string `json:"host"`
	Port     string `json:"port"`
	Login    string `json:"login,omitempty"`
	Password string `json:"password,omitempty"`
}

func toProxyPayload(r proxy.Record) proxyPayload {
	return proxyPayload{
		Type:     r.Type,
		Host:     r.Host,
		Port:     strconv.Itoa(r.Port),
		Login:    r.Login,
		Password: r.Password,
	}
}

// createRequest mirrors the POST /profiles schema.
type createRequest struct {
	Title       string          `json:"title"`
	Proxy       proxyPayload    `json:"proxy"`
	Fingerprint Fingerprint     `json:"fingerprint"`
	Cookies     json.RawMessage `json:"cookies,omitempty"`
}

// Profile is the subset of the created-profile response we consume.
type Profile struct {
	UUID string `json:"uuid"`
}

// envelope is the Octo response wrapper: payloads live under "data".
type envelope struct {
	Data Profile `json:"data"`
}

// CreateProfile creates one remote profile for the given spec and
// returns its UUID. Titles are 1-based (<prefix>_1 for index 0) while
// the cookie payload was already resolved by index during Build.
func (c *Client) CreateProfile(ctx context.Context, spec batch.ProfileSpec) (string, error) {
	payload := createRequest{
		Title:       fmt.Sprintf("%s_%d", c.titlePrefix, spec.Index+1),
		Proxy:       toProxyPayload(spec.Proxy),
		Fingerprint: c.fingerprint,
		Cookies:     json.RawMessage(spec.Cookies),
	}

	var env envelope
	if err := c.postJSON(ctx, "/profiles", payload, &env); err != nil {
		return "", err
	}
	if env.Data.UUID == "" {
		return "", &APIError{Kind: KindValidation, Status: http.StatusOK, Body: "response contains no profile uuid"}
	}
	return env.Data.UUID, nil
}

func (c *Client) postJSON(ctx context.Context, path string, payload, out interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("octo: encoding request: %w", err)
	}

	endpoint := strings.TrimRight(c.baseURL.String(), "/") + path
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("octo: building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(tokenHeader, c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &APIError{Kind: KindNetwork, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return &APIError{Kind: KindNetwork, Err: err}
	}

	if resp.StatusCode >= 400 {
		return &APIError{
			Kind:   classifyStatus(resp.StatusCode),
			Status: resp.StatusCode,
			Body:   truncate(strings.TrimSpace(string(raw)), 512),
		}
	}

	c.checkLimits(resp.Header)

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return &APIError{Kind: KindValidation, Status: resp.StatusCode, Body: fmt.Sprintf("decoding response: %v", err)}
		}
	}
	return nil
}

// checkLimits inspects the remaining-quota headers and pauses when the
// next requests would exhaust them: one minute for the per-minute quota,
// one hour for the hourly quota. Absent headers are ignored.
func (c *Client) checkLimits(h http.Header) {
	if rpm, ok := remaining(h, remainingMinuteHeader); ok {
		c.log.Debug("rate limit: %d requests left this minute", rpm)
		if rpm < rateLimitFloor {
			c.log.Warning("approaching per-minute rate limit, pausing for 1 minute")
			c.sleep(time.Minute)
		}
	}
	if rph, ok := remaining(h, remainingHourHeader); ok {
		c.log.Debug("rate limit: %d requests left this hour", rph)
		if rph < rateLimitFloor {
			c.log.Warning("approaching hourly rate limit, pausing for 1 hour")
			c.sleep(time.Hour)
		}
	}
}

func remaining(h http.Header, name string) (int, bool) {
	v := h.Get(name)
	if v == "" {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, false
	}
	return n, true
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

// Ensure Client satisfies the driver's creation interface.
var _ batch.Creator = (*Client)(nil)
