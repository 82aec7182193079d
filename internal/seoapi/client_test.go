package seoapi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/benmurrell/scout/internal/common"
	"github.com/benmurrell/scout/internal/interfaces"
	"github.com/benmurrell/scout/internal/upstream"
)

func testClient(baseURL string) *Client {
	return NewClient(common.DataForSEOConfig{
		BaseURL:  baseURL,
		Login:    "login",
		Password: "password",
		Timeout:  "5s",
	}, common.NewSilentLogger())
}

// captureTask decodes the single-task array body and returns the task.
func captureTask(t *testing.T, r *http.Request) map[string]any {
	t.Helper()
	body, err := io.ReadAll(r.Body)
	if err != nil {
		t.Fatalf("Failed to read request body: %v", err)
	}
	var tasks []map[string]any
	if err := json.Unmarshal(body, &tasks); err != nil {
		t.Fatalf("Request body is not a JSON array: %v", err)
	}
	if len(tasks) != 1 {
		t.Fatalf("Expected exactly one task, got %d", len(tasks))
	}
	return tasks[0]
}

func TestBasicAuth(t *testing.T) {
	// base64("a:b") = "YTpi"
	if got := BasicAuth("a", "b"); got != "Basic YTpi" {
		t.Errorf("Expected 'Basic YTpi', got %q", got)
	}
	if got := BasicAuth("login", "password"); got != "Basic bG9naW46cGFzc3dvcmQ=" {
		t.Errorf("Expected 'Basic bG9naW46cGFzc3dvcmQ=', got %q", got)
	}
}

func TestSERPResults_RequestShape(t *testing.T) {
	var task map[string]any
	var authHeader string
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("Expected POST, got %s", r.Method)
		}
		if r.URL.Path != "/serp/google/organic/live/advanced" {
			t.Errorf("Expected SERP path, got %s", r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("Expected Content-Type application/json, got %s", ct)
		}
		authHeader = r.Header.Get("Authorization")
		task = captureTask(t, r)
		w.Write([]byte(`{"status_code":20000}`))
	}))
	defer mockServer.Close()

	_, err := testClient(mockServer.URL).SERPResults(context.Background(), interfaces.SERPParams{
		Keyword:      "seo tools",
		LocationCode: 2840,
		LanguageCode: "en",
		Depth:        10,
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if authHeader != BasicAuth("login", "password") {
		t.Errorf("Expected Basic auth header, got %q", authHeader)
	}
	if task["keyword"] != "seo tools" {
		t.Errorf("Expected keyword='seo tools', got %v", task["keyword"])
	}
	if task["location_code"] != float64(2840) {
		t.Errorf("Expected location_code=2840, got %v", task["location_code"])
	}
	if task["depth"] != float64(10) {
		t.Errorf("Expected depth=10, got %v", task["depth"])
	}
}

func TestSERPResults_OptionalFieldsOmitted(t *testing.T) {
	var task map[string]any
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		task = captureTask(t, r)
		w.Write([]byte(`{}`))
	}))
	defer mockServer.Close()

	_, err := testClient(mockServer.URL).SERPResults(context.Background(), interfaces.SERPParams{
		Keyword:      "seo tools",
		LocationCode: 2840,
		LanguageCode: "en",
		Depth:        10,
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if _, ok := task["device"]; ok {
		t.Error("Optional 'device' should be omitted entirely when not provided")
	}
	if _, ok := task["se_domain"]; ok {
		t.Error("Optional 'se_domain' should be omitted entirely when not provided")
	}
}

func TestSERPResults_OptionalFieldsIncluded(t *testing.T) {
	var task map[string]any
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		task = captureTask(t, r)
		w.Write([]byte(`{}`))
	}))
	defer mockServer.Close()

	_, err := testClient(mockServer.URL).SERPResults(context.Background(), interfaces.SERPParams{
		Keyword:      "seo tools",
		LocationCode: 2036,
		LanguageCode: "en",
		Depth:        10,
		Device:       "mobile",
		SEDomain:     "google.com.au",
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if task["device"] != "mobile" {
		t.Errorf("Expected device=mobile, got %v", task["device"])
	}
	if task["se_domain"] != "google.com.au" {
		t.Errorf("Expected se_domain=google.com.au, got %v", task["se_domain"])
	}
}

func TestSERPResults_DepthClamp(t *testing.T) {
	tests := []struct {
		name  string
		depth int
		want  float64
	}{
		{"above ceiling", 700, 100},
		{"at ceiling", 100, 100},
		{"below ceiling", 30, 30},
		{"zero passes through", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var task map[string]any
			mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				task = captureTask(t, r)
				w.Write([]byte(`{}`))
			}))
			defer mockServer.Close()

			_, err := testClient(mockServer.URL).SERPResults(context.Background(), interfaces.SERPParams{
				Keyword:      "seo tools",
				LocationCode: 2840,
				LanguageCode: "en",
				Depth:        tt.depth,
			})
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if task["depth"] != tt.want {
				t.Errorf("Expected depth=%v, got %v", tt.want, task["depth"])
			}
		})
	}
}

func TestDomainOverview_VerbatimBody(t *testing.T) {
	const fixed = `{"status_code":20000,"tasks":[{"result":[{"target":"example.com"}]}]}`
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/dataforseo_labs/google/domain_rank_overview/live" {
			t.Errorf("Expected domain overview path, got %s", r.URL.Path)
		}
		w.Write([]byte(fixed))
	}))
	defer mockServer.Close()

	body, err := testClient(mockServer.URL).DomainOverview(context.Background(), interfaces.DomainOverviewParams{
		Target:       "example.com",
		LocationCode: 2840,
		LanguageCode: "en",
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if string(body) != fixed {
		t.Errorf("Expected body to pass through verbatim, got %q", string(body))
	}
}

func TestKeywordSuggestions_LimitClamp(t *testing.T) {
	var task map[string]any
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		task = captureTask(t, r)
		w.Write([]byte(`{}`))
	}))
	defer mockServer.Close()

	_, err := testClient(mockServer.URL).KeywordSuggestions(context.Background(), interfaces.KeywordSuggestionsParams{
		Keyword:      "seo",
		LocationCode: 2840,
		LanguageCode: "en",
		Limit:        500,
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if task["limit"] != float64(100) {
		t.Errorf("Expected limit clamped to 100, got %v", task["limit"])
	}
}

func TestBacklinksSummary_IncludeSubdomains(t *testing.T) {
	var task map[string]any
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/backlinks/summary/live" {
			t.Errorf("Expected backlinks path, got %s", r.URL.Path)
		}
		task = captureTask(t, r)
		w.Write([]byte(`{}`))
	}))
	defer mockServer.Close()

	_, err := testClient(mockServer.URL).BacklinksSummary(context.Background(), interfaces.BacklinksSummaryParams{
		Target:            "example.com",
		IncludeSubdomains: true,
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if task["include_subdomains"] != true {
		t.Errorf("Expected include_subdomains=true, got %v", task["include_subdomains"])
	}
}

func TestPost_UpstreamStatusError(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"status_code":50000,"status_message":"Internal Error"}`))
	}))
	defer mockServer.Close()

	_, err := testClient(mockServer.URL).DomainOverview(context.Background(), interfaces.DomainOverviewParams{
		Target:       "example.com",
		LocationCode: 2840,
		LanguageCode: "en",
	})
	if err == nil {
		t.Fatal("Expected error for 500 response")
	}

	var ue *upstream.Error
	if !errors.As(err, &ue) {
		t.Fatalf("Expected *upstream.Error, got %T", err)
	}
	if ue.Kind != upstream.KindStatus {
		t.Errorf("Expected kind %q, got %q", upstream.KindStatus, ue.Kind)
	}
	if ue.Status != http.StatusInternalServerError {
		t.Errorf("Expected status 500, got %d", ue.Status)
	}
}

func TestPost_TransportError(t *testing.T) {
	_, err := testClient("http://localhost:1").BacklinksSummary(context.Background(), interfaces.BacklinksSummaryParams{
		Target: "example.com",
	})
	if err == nil {
		t.Fatal("Expected error when upstream is unreachable")
	}
	if upstream.KindOf(err) != upstream.KindTransport {
		t.Errorf("Expected transport classification, got %q", upstream.KindOf(err))
	}
}
