package llm

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/anthropics/anthropic-sdk-go/option"
)

// MockProvider records calls and returns a canned response.
type MockProvider struct {
	mu       sync.Mutex
	Calls    []CompletionRequest
	Response *CompletionResponse
	Err      error
	ProvName string
}

func NewMockProvider(name string) *MockProvider {
	return &MockProvider{
		ProvName: name,
		Response: &CompletionResponse{
			Content:      "mock response",
			InputTokens:  10,
			OutputTokens: 20,
			Model:        "mock-model",
			FinishReason: "stop",
		},
	}
}

func (m *MockProvider) Name() string {
	return m.ProvName
}

func (m *MockProvider) Complete(ctx context.Context, req CompletionRequest) (*CompletionResponse, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls = append(m.Calls, req)
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Response, nil
}

func (m *MockProvider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}

func userRequest(content string) CompletionRequest {
	return CompletionRequest{
		Messages: []Message{
			{Role: RoleSystem, Content: "You are a brand strategist."},
			{Role: RoleUser, Content: content},
		},
		MaxTokens:   512,
		Temperature: 0.7,
		JSONMode:    true,
	}
}

func TestFactoryReturnsErrorForMissingAPIKey(t *testing.T) {
	for _, env := range []string{"ANTHROPIC_API_KEY", "OPENAI_API_KEY", "GOOGLE_API_KEY", "HUGGINGFACE_API_KEY", "OPENROUTER_API_KEY"} {
		t.Setenv(env, "")
	}

	for _, p := range []string{"anthropic", "openai", "google", "huggingface", "openrouter"} {
		if _, err := NewProvider(p, "some-model"); err == nil {
			t.Errorf("expected error for provider %q with missing API key", p)
		}
	}
}

func TestFactoryReturnsErrorForUnknownProvider(t *testing.T) {
	if _, err := NewProvider("unknown", "some-model"); err == nil {
		t.Error("expected error for unknown provider")
	}
}

func TestFactoryCreatesProviders(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "test-key")
	t.Setenv("OPENAI_API_KEY", "test-key")
	t.Setenv("GOOGLE_API_KEY", "test-key")
	t.Setenv("HUGGINGFACE_API_KEY", "test-key")
	t.Setenv("OPENROUTER_API_KEY", "test-key")

	for _, name := range []string{"anthropic", "openai", "google", "huggingface", "openrouter", "ollama"} {
		provider, err := NewProvider(name, "")
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", name, err)
		}
		if provider.Name() != name {
			t.Errorf("expected name %q, got %q", name, provider.Name())
		}
	}
}

func TestFactoryOllamaDefaultHost(t *testing.T) {
	t.Setenv("OLLAMA_HOST", "")
	provider, err := NewProvider("ollama", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	p, ok := provider.(*OllamaProvider)
	if !ok {
		t.Fatal("expected *OllamaProvider")
	}
	if p.baseURL != "http://localhost:11434" || p.model != "llama3" {
		t.Errorf("unexpected ollama provider %q %q", p.baseURL, p.model)
	}
}

func TestRateLimiterPassesThrough(t *testing.T) {
	mock := NewMockProvider("test")
	rl := NewRateLimitedProvider(mock, 60)

	resp, err := rl.Complete(context.Background(), userRequest("hello"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Content != "mock response" {
		t.Errorf("expected 'mock response', got %q", resp.Content)
	}
	if rl.Name() != "test" {
		t.Errorf("expected name 'test', got %q", rl.Name())
	}
}

func TestRateLimiterDisabled(t *testing.T) {
	mock := NewMockProvider("test")
	if NewRateLimitedProvider(mock, 0) != Provider(mock) {
		t.Error("rpm 0 should return the provider unchanged")
	}
}

func TestRateLimiterLimitsRequests(t *testing.T) {
	mock := NewMockProvider("test")
	rl := NewRateLimitedProvider(mock, 2)

	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()

	for i := 0; i < 2; i++ {
		if _, err := rl.Complete(ctx, userRequest("hello")); err != nil {
			t.Fatalf("request %d: unexpected error: %v", i, err)
		}
	}

	if _, err := rl.Complete(ctx, userRequest("hello")); err == nil {
		t.Error("expected error due to rate limiting + context timeout")
	}
	if mock.CallCount() != 2 {
		t.Errorf("expected 2 calls to reach the provider, got %d", mock.CallCount())
	}
}

func TestEstimateCost(t *testing.T) {
	cost := EstimateCost("claude-sonnet-4-5-20250929", 1_000_000, 1_000_000)
	if cost < 17.99 || cost > 18.01 {
		t.Errorf("expected cost ~$18.00, got $%.2f", cost)
	}
	if EstimateCost("gpt-4o-mini", 1000, 500) <= 0 {
		t.Error("expected positive cost for priced model")
	}
	if EstimateCost("unknown-model", 1000, 500) != 0 {
		t.Error("expected 0 for unknown model")
	}
}

func TestEstimateTokens(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"", 0},
		{"hi", 1},
		{"hello world!!", 3},
		{"a longer piece of text that has more characters", 11},
	}
	for _, tt := range tests {
		if got := EstimateTokens(tt.text); got != tt.want {
			t.Errorf("EstimateTokens(%q) = %d, want %d", tt.text, got, tt.want)
		}
	}
}

func TestSplitSystem(t *testing.T) {
	system, turns := splitSystem([]Message{
		{Role: RoleSystem, Content: "a"},
		{Role: RoleUser, Content: "u"},
		{Role: RoleSystem, Content: "b"},
	})
	if system != "a\n\nb" {
		t.Errorf("system = %q", system)
	}
	if len(turns) != 1 || turns[0].Content != "u" {
		t.Errorf("turns = %+v", turns)
	}
}

func TestHuggingFaceProvider(t *testing.T) {
	var got hfRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/org/model" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if r.Header.Get("Authorization") != "Bearer hf-key" {
			t.Errorf("missing bearer token")
		}
		json.NewDecoder(r.Body).Decode(&got)
		w.Write([]byte(`[{"generated_text":"{\"tagline\":\"x\"}"}]`))
	}))
	defer srv.Close()

	p := NewHuggingFaceProvider("hf-key", "org/model")
	p.baseURL = srv.URL

	resp, err := p.Complete(context.Background(), userRequest("coffee"))
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if resp.Content != `{"tagline":"x"}` {
		t.Errorf("content = %q", resp.Content)
	}
	if got.Parameters.MaxNewTokens != 512 || got.Parameters.ReturnFullText {
		t.Errorf("parameters = %+v", got.Parameters)
	}
	if !strings.Contains(got.Inputs, "brand strategist") || !strings.Contains(got.Inputs, "coffee") {
		t.Errorf("inputs = %q", got.Inputs)
	}
}

func TestHuggingFaceProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte(`{"error":"Model is currently loading"}`))
	}))
	defer srv.Close()

	p := NewHuggingFaceProvider("", "m")
	p.baseURL = srv.URL
	_, err := p.Complete(context.Background(), userRequest("x"))
	if err == nil || !strings.Contains(err.Error(), "currently loading") {
		t.Errorf("expected loading error, got %v", err)
	}
}

func TestOllamaProvider(t *testing.T) {
	var got ollamaChatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/chat" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		json.NewDecoder(r.Body).Decode(&got)
		w.Write([]byte(`{"model":"llama3","message":{"role":"assistant","content":"{}"},"done_reason":"stop","prompt_eval_count":7,"eval_count":3}`))
	}))
	defer srv.Close()

	resp, err := NewOllamaProvider(srv.URL+"/", "llama3").Complete(context.Background(), userRequest("x"))
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if got.Format != "json" || got.Stream || len(got.Messages) != 2 {
		t.Errorf("unexpected request %+v", got)
	}
	if resp.Content != "{}" || resp.InputTokens != 7 || resp.OutputTokens != 3 || resp.FinishReason != "stop" {
		t.Errorf("unexpected response %+v", resp)
	}
}

func TestCompatibleProvider(t *testing.T) {
	var body map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/chat/completions") {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		data, _ := io.ReadAll(r.Body)
		json.Unmarshal(data, &body)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"1","object":"chat.completion","model":"gpt-4o-mini","choices":[{"index":0,"message":{"role":"assistant","content":"{\"a\":1}"},"finish_reason":"stop"}],"usage":{"prompt_tokens":11,"completion_tokens":4,"total_tokens":15}}`))
	}))
	defer srv.Close()

	p := NewCompatibleProvider("openrouter", "key", srv.URL+"/v1", "gpt-4o-mini")
	resp, err := p.Complete(context.Background(), userRequest("x"))
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if resp.Content != `{"a":1}` || resp.InputTokens != 11 || resp.OutputTokens != 4 {
		t.Errorf("unexpected response %+v", resp)
	}
	format, _ := body["response_format"].(map[string]any)
	if format["type"] != "json_object" {
		t.Errorf("expected json_object response format, got %v", body["response_format"])
	}
	if p.Name() != "openrouter" {
		t.Errorf("name = %q", p.Name())
	}
}

func TestAnthropicProvider(t *testing.T) {
	var body map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/v1/messages") {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		data, _ := io.ReadAll(r.Body)
		json.Unmarshal(data, &body)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"msg_1","type":"message","role":"assistant","model":"claude-haiku-4-5-20251001","content":[{"type":"text","text":"{\"a\":1}"}],"stop_reason":"end_turn","usage":{"input_tokens":9,"output_tokens":2}}`))
	}))
	defer srv.Close()

	p := NewAnthropicProvider("key", "claude-haiku-4-5-20251001", option.WithBaseURL(srv.URL+"/"))
	resp, err := p.Complete(context.Background(), userRequest("x"))
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if resp.Content != `{"a":1}` || resp.InputTokens != 9 || resp.OutputTokens != 2 || resp.FinishReason != "end_turn" {
		t.Errorf("unexpected response %+v", resp)
	}
	system, _ := body["system"].([]any)
	if len(system) != 1 {
		t.Errorf("expected system prompt block, got %v", body["system"])
	}
}
