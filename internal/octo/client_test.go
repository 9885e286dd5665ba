package octo

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/octobatch/octobatch/internal/batch"
	"github.com/octobatch/octobatch/internal/cookies"
	"github.com/octobatch/octobatch/internal/proxy"
	"github.com/octobatch/octobatch/pkg/logger"
)

func testSpec(index int) batch.ProfileSpec {
	return batch.ProfileSpec{
		Index: index,
		Proxy: proxy.Record{Type: "http", Host: "1.2.3.4", Port: 8080, Login: "u", Password: "p"},
	}
}

func newTestClient(t *testing.T, url string) *Client {
	t.Helper()
	c, err := NewClient(Options{
		BaseURL: url,
		Token:   "test-token",
		Sleep:   func(time.Duration) {},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return c
}

func TestNewClient_RequiresToken(t *testing.T) {
	_, err := NewClient(Options{})
	if err == nil {
		t.Fatal("expected error for missing token")
	}
}

func TestNewClient_Defaults(t *testing.T) {
	c, err := NewClient(Options{Token: "t"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.baseURL.String() != DefaultBaseURL {
		t.Errorf("unexpected base URL: %s", c.baseURL)
	}
	if c.titlePrefix != DefaultTitlePrefix {
		t.Errorf("unexpected title prefix: %s", c.titlePrefix)
	}
	if c.fingerprint != DefaultFingerprint {
		t.Errorf("unexpected fingerprint: %+v", c.fingerprint)
	}
}

func TestCreateProfile_Success(t *testing.T) {
	var gotToken string
	var gotBody map[string]json.RawMessage
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotToken = r.Header.Get("X-Octo-Api-Token")
		if r.URL.Path != "/profiles" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decoding request: %v", err)
		}
		w.Header().Set("X-Ratelimit-Remaining", "50")
		w.Header().Set("X-Ratelimit-Remaining-Hour", "500")
		w.Write([]byte(`{"data": {"uuid": "abc-123"}}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	uuid, err := c.CreateProfile(context.Background(), testSpec(0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if uuid != "abc-123" {
		t.Errorf("expected uuid abc-123, got %s", uuid)
	}
	if gotToken != "test-token" {
		t.Errorf("expected token header, got %q", gotToken)
	}
	if string(gotBody["title"]) != `"BatchProfile_1"` {
		t.Errorf("expected 1-based title, got %s", gotBody["title"])
	}

	var p proxyPayload
	if err := json.Unmarshal(gotBody["proxy"], &p); err != nil {
		t.Fatalf("decoding proxy payload: %v", err)
	}
	if p.Port != "8080" {
		t.Errorf("expected port as string, got %q", p.Port)
	}
	if _, ok := gotBody["cookies"]; ok {
		t.Error("expected cookies omitted for cookie-less spec")
	}
}

func TestCreateProfile_SendsCookiesWhenPresent(t *testing.T) {
	var gotBody map[string]json.RawMessage
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.Write([]byte(`{"data": {"uuid": "abc-123"}}`))
	}))
	defer srv.Close()

	spec := testSpec(2)
	spec.Cookies = cookies.Set(`[{"name":"sid","value":"xyz"}]`)

	c := newTestClient(t, srv.URL)
	if _, err := c.CreateProfile(context.Background(), spec); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(gotBody["cookies"]) != `[{"name":"sid","value":"xyz"}]` {
		t.Errorf("unexpected cookies payload: %s", gotBody["cookies"])
	}
	if string(gotBody["title"]) != `"BatchProfile_3"` {
		t.Errorf("unexpected title: %s", gotBody["title"])
	}
}

func TestCreateProfile_OmitsEmptyCredentials(t *testing.T) {
	var gotBody map[string]json.RawMessage
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.Write([]byte(`{"data": {"uuid": "abc-123"}}`))
	}))
	defer srv.Close()

	spec := testSpec(0)
	spec.Proxy.Login = ""
	spec.Proxy.Password = ""

	c := newTestClient(t, srv.URL)
	if _, err := c.CreateProfile(context.Background(), spec); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(gotBody["proxy"], &raw); err != nil {
		t.Fatalf("decoding proxy payload: %v", err)
	}
	if _, ok := raw["login"]; ok {
		t.Error("expected login omitted when empty")
	}
	if _, ok := raw["password"]; ok {
		t.Error("expected password omitted when empty")
	}
}

func TestCreateProfile_ErrorKinds(t *testing.T) {
	cases := []struct {
		status int
		kind   FailureKind
	}{
		{http.StatusUnauthorized, KindAuth},
		{http.StatusForbidden, KindAuth},
		{http.StatusTooManyRequests, KindRateLimit},
		{http.StatusBadRequest, KindValidation},
		{http.StatusUnprocessableEntity, KindValidation},
		{http.StatusInternalServerError, KindServer},
		{http.StatusBadGateway, KindServer},
	}
	for _, tc := range cases {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(tc.status)
			w.Write([]byte(`{"error": "nope"}`))
		}))

		c := newTestClient(t, srv.URL)
		_, err := c.CreateProfile(context.Background(), testSpec(0))
		srv.Close()

		var apiErr *APIError
		if !errors.As(err, &apiErr) {
			t.Fatalf("status %d: expected APIError, got %v", tc.status, err)
		}
		if apiErr.Kind != tc.kind {
			t.Errorf("status %d: expected kind %s, got %s", tc.status, tc.kind, apiErr.Kind)
		}
		if apiErr.Status != tc.status {
			t.Errorf("expected status %d recorded, got %d", tc.status, apiErr.Status)
		}
	}
}

func TestCreateProfile_NetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse connections

	c := newTestClient(t, srv.URL)
	_, err := c.CreateProfile(context.Background(), testSpec(0))

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.Kind != KindNetwork {
		t.Errorf("expected network kind, got %s", apiErr.Kind)
	}
}

func TestCreateProfile_MissingUUID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data": {}}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	_, err := c.CreateProfile(context.Background(), testSpec(0))
	if err == nil {
		t.Fatal("expected error for response without uuid")
	}
}

func TestCheckLimits_PausesNearFloor(t *testing.T) {
	var slept []time.Duration
	log := logger.NewRecorder()
	c, err := NewClient(Options{
		Token:  "t",
		Logger: log,
		Sleep:  func(d time.Duration) { slept = append(slept, d) },
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	h := http.Header{}
	h.Set("X-Ratelimit-Remaining", "5")
	h.Set("X-Ratelimit-Remaining-Hour", "3")
	c.checkLimits(h)

	if len(slept) != 2 || slept[0] != time.Minute || slept[1] != time.Hour {
		t.Errorf("expected minute and hour pauses, got %v", slept)
	}
	if len(log.WarningCalls) != 2 {
		t.Errorf("expected 2 warnings, got %v", log.WarningCalls)
	}
}

func TestCheckLimits_NoPauseWithHealthyQuota(t *testing.T) {
	var slept []time.Duration
	c, err := NewClient(Options{
		Token: "t",
		Sleep: func(d time.Duration) { slept = append(slept, d) },
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	h := http.Header{}
	h.Set("X-Ratelimit-Remaining", "50")
	h.Set("X-Ratelimit-Remaining-Hour", "900")
	c.checkLimits(h)

	if len(slept) != 0 {
		t.Errorf("expected no pause, got %v", slept)
	}
}

func TestCheckLimits_IgnoresAbsentHeaders(t *testing.T) {
	var slept []time.Duration
	c, err := NewClient(Options{
		Token: "t",
		Sleep: func(d time.Duration) { slept = append(slept, d) },
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	c.checkLimits(http.Header{})
	if len(slept) != 0 {
		t.Errorf("expected no pause without headers, got %v", slept)
	}
}
