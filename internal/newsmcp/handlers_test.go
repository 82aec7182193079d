package newsmcp

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/benmurrell/scout/internal/common"
	"github.com/benmurrell/scout/internal/interfaces"
	"github.com/benmurrell/scout/internal/upstream"
)

// fakeNewsClient records the last params it was called with and returns a
// canned body or error.
type fakeNewsClient struct {
	body []byte
	err  error

	searchParams    *interfaces.NewsSearchParams
	topParams       *interfaces.TopNewsParams
	headlinesParams *interfaces.HeadlinesParams
	similarParams   *interfaces.SimilarNewsParams
	sourcesParams   *interfaces.SourcesParams
}

func (f *fakeNewsClient) SearchNews(ctx context.Context, p interfaces.NewsSearchParams) ([]byte, error) {
	f.searchParams = &p
	return f.body, f.err
}

func (f *fakeNewsClient) TopNews(ctx context.Context, p interfaces.TopNewsParams) ([]byte, error) {
	f.topParams = &p
	return f.body, f.err
}

func (f *fakeNewsClient) LatestHeadlines(ctx context.Context, p interfaces.HeadlinesParams) ([]byte, error) {
	f.headlinesParams = &p
	return f.body, f.err
}

func (f *fakeNewsClient) SimilarNews(ctx context.Context, p interfaces.SimilarNewsParams) ([]byte, error) {
	f.similarParams = &p
	return f.body, f.err
}

func (f *fakeNewsClient) Sources(ctx context.Context, p interfaces.SourcesParams) ([]byte, error) {
	f.sourcesParams = &p
	return f.body, f.err
}

func newRequest(args map[string]interface{}) mcp.CallToolRequest {
	request := mcp.CallToolRequest{}
	request.Params.Arguments = args
	return request
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	if len(result.Content) == 0 {
		t.Fatal("Expected result content")
	}
	return result.Content[0].(mcp.TextContent).Text
}

func TestHandleSearchNews_Success(t *testing.T) {
	const fixed = `{"meta":{"found":3},"data":[{"uuid":"abc"}]}`
	fake := &fakeNewsClient{body: []byte(fixed)}
	handler := handleSearchNews(fake, common.NewSilentLogger())

	result, err := handler(context.Background(), newRequest(map[string]interface{}{
		"query": "golang",
	}))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if result.IsError {
		t.Fatalf("Expected success, got error: %v", result.Content)
	}

	// Raw upstream body passes through verbatim
	if got := resultText(t, result); got != fixed {
		t.Errorf("Expected verbatim body, got %q", got)
	}

	if fake.searchParams.Query != "golang" {
		t.Errorf("Expected query=golang, got %q", fake.searchParams.Query)
	}
	if fake.searchParams.Page != 1 {
		t.Errorf("Expected default page=1, got %d", fake.searchParams.Page)
	}
	if fake.searchParams.Limit != 5 {
		t.Errorf("Expected default limit=5, got %d", fake.searchParams.Limit)
	}
	if fake.searchParams.Locale != "" {
		t.Errorf("Expected empty locale when not provided, got %q", fake.searchParams.Locale)
	}
}

func TestHandleSearchNews_MissingQuery(t *testing.T) {
	fake := &fakeNewsClient{body: []byte(`{}`)}
	handler := handleSearchNews(fake, common.NewSilentLogger())

	result, err := handler(context.Background(), newRequest(map[string]interface{}{}))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !result.IsError {
		t.Fatal("Expected error result for missing query")
	}
	if fake.searchParams != nil {
		t.Error("Client should not be called when query is missing")
	}
}

func TestHandleSearchNews_UpstreamError(t *testing.T) {
	fake := &fakeNewsClient{err: upstream.StatusError(http.StatusInternalServerError, []byte(`{"error":"boom"}`))}
	handler := handleSearchNews(fake, common.NewSilentLogger())

	result, err := handler(context.Background(), newRequest(map[string]interface{}{
		"query": "golang",
	}))
	if err != nil {
		t.Fatalf("Upstream failures must surface as error results, not handler errors: %v", err)
	}
	if !result.IsError {
		t.Fatal("Expected error result for upstream 500")
	}
	if !strings.Contains(resultText(t, result), "upstream returned 500") {
		t.Errorf("Expected classified upstream error, got %q", resultText(t, result))
	}
}

func TestHandleTopNews_DefaultLocale(t *testing.T) {
	fake := &fakeNewsClient{body: []byte(`{}`)}
	handler := handleTopNews(fake, common.NewSilentLogger())

	_, err := handler(context.Background(), newRequest(map[string]interface{}{}))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if fake.topParams.Locale != "us" {
		t.Errorf("Expected default locale=us, got %q", fake.topParams.Locale)
	}
	if fake.topParams.Limit != 5 {
		t.Errorf("Expected default limit=5, got %d", fake.topParams.Limit)
	}
}

func TestHandleLatestHeadlines_Defaults(t *testing.T) {
	fake := &fakeNewsClient{body: []byte(`{}`)}
	handler := handleLatestHeadlines(fake, common.NewSilentLogger())

	_, err := handler(context.Background(), newRequest(map[string]interface{}{}))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if fake.headlinesParams.PerCategory != 6 {
		t.Errorf("Expected default headlines_per_category=6, got %d", fake.headlinesParams.PerCategory)
	}
}

func TestHandleSimilarNews_MissingUUID(t *testing.T) {
	fake := &fakeNewsClient{body: []byte(`{}`)}
	handler := handleSimilarNews(fake, common.NewSilentLogger())

	result, err := handler(context.Background(), newRequest(map[string]interface{}{}))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !result.IsError {
		t.Fatal("Expected error result for missing article_uuid")
	}
}

func TestHandleListCategories_Constant(t *testing.T) {
	handler := handleListCategories()

	result, err := handler(context.Background(), newRequest(map[string]interface{}{}))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if result.IsError {
		t.Fatalf("Expected success, got error: %v", result.Content)
	}

	want := `{"categories":["general","business","tech","science","sports","health","entertainment"]}`
	if got := resultText(t, result); got != want {
		t.Errorf("Expected %s, got %s", want, got)
	}

	// Request-independent: a second call with different args yields the same list
	again, _ := handler(context.Background(), newRequest(map[string]interface{}{"unused": "x"}))
	if resultText(t, again) != want {
		t.Error("Enumeration should be request-independent")
	}
}

func TestHandleListLocalesAndLanguages(t *testing.T) {
	locales, err := handleListLocales()(context.Background(), newRequest(nil))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !strings.Contains(resultText(t, locales), `"us"`) {
		t.Error("Locales should contain us")
	}

	languages, err := handleListLanguages()(context.Background(), newRequest(nil))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !strings.Contains(resultText(t, languages), `"en"`) {
		t.Error("Languages should contain en")
	}
}

func TestRegisterTools(t *testing.T) {
	s := server.NewMCPServer("test", "0.0.0")
	RegisterTools(s, &fakeNewsClient{body: []byte(`{}`)}, common.NewSilentLogger())
}
