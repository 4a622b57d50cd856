package metadata_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/PRagan/gleaner/internal/config"
	"github.com/PRagan/gleaner/internal/metadata"
)

// fakeExtractor serves the chat completion endpoint the client calls and
// returns a config pointed at it.
func fakeExtractor(t *testing.T, handler http.HandlerFunc) config.ExtractorConfig {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1/chat/completions", handler)

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	return config.ExtractorConfig{
		APIKey:          "test-key",
		BaseURL:         srv.URL + "/v1",
		Model:           "gpt-4o-mini",
		Timeout:         "5s",
		MaxRetries:      1,
		MaxInputTokens:  2048,
		MaxOutputTokens: 500,
		Temperature:     0.2,
	}
}

func respondCompletion(w http.ResponseWriter, content string) {
	body, _ := json.Marshal(map[string]any{
		"id":      "chatcmpl-test",
		"object":  "chat.completion",
		"created": 1700000000,
		"model":   "gpt-4o-mini",
		"choices": []map[string]any{
			{
				"index":         0,
				"finish_reason": "stop",
				"message": map[string]any{
					"role":    "assistant",
					"content": content,
				},
			},
		},
	})

	w.Header().Set("Content-Type", "application/json")
	w.Write(body)
}

func TestSummarizeAuthoritative(t *testing.T) {
	cfg := fakeExtractor(t, func(w http.ResponseWriter, r *http.Request) {
		respondCompletion(w, `{"summary":"A walkthrough of the storage engine.","title":"Storage Engine","topics":["Storage","Postgres","Go","Extra"],"sentiment":"POSITIVE"}`)
	})

	sys := metadata.New(cfg, testLogger())
	got := sys.Summarize(context.Background(), "The storage engine flushes pages to disk.")

	if got.Quality != metadata.QualityAuthoritative {
		t.Fatalf("quality = %q, want authoritative", got.Quality)
	}
	if got.Summary != "A walkthrough of the storage engine." {
		t.Errorf("summary = %q", got.Summary)
	}
	if got.Title == nil || *got.Title != "Storage Engine" {
		t.Errorf("title = %v, want Storage Engine", got.Title)
	}
	if got.Sentiment != metadata.SentimentPositive {
		t.Errorf("sentiment = %q, want positive", got.Sentiment)
	}
	if len(got.Topics) != 3 {
		t.Fatalf("topics = %v, want clamped to 3", got.Topics)
	}
	if got.Topics[0] != "Storage" || got.Topics[2] != "Go" {
		t.Errorf("topics = %v, want [Storage Postgres Go]", got.Topics)
	}
}

func TestSummarizeRequestShape(t *testing.T) {
	var captured []byte
	cfg := fakeExtractor(t, func(w http.ResponseWriter, r *http.Request) {
		captured, _ = io.ReadAll(r.Body)
		respondCompletion(w, `{"summary":"ok","sentiment":"neutral"}`)
	})

	text := "Short input text."
	metadata.New(cfg, testLogger()).Summarize(context.Background(), text)

	var req map[string]any
	if err := json.Unmarshal(captured, &req); err != nil {
		t.Fatalf("decode request: %v", err)
	}

	if req["model"] != "gpt-4o-mini" {
		t.Errorf("model = %v, want gpt-4o-mini", req["model"])
	}

	format, ok := req["response_format"].(map[string]any)
	if !ok || format["type"] != "json_object" {
		t.Errorf("response_format = %v, want json_object", req["response_format"])
	}

	messages, ok := req["messages"].([]any)
	if !ok || len(messages) != 2 {
		t.Fatalf("messages = %v, want system and user", req["messages"])
	}

	system := messages[0].(map[string]any)
	if system["role"] != "system" {
		t.Errorf("messages[0] role = %v, want system", system["role"])
	}
	prompt, _ := system["content"].(string)
	if !strings.Contains(prompt, "positive, negative, neutral") {
		t.Errorf("system prompt lacks the sentiment contract: %q", prompt)
	}

	user := messages[1].(map[string]any)
	if user["role"] != "user" || user["content"] != text {
		t.Errorf("messages[1] = %v, want user message with the text", user)
	}

	if _, ok := req["max_tokens"]; !ok {
		t.Error("max_tokens missing for a conventional model")
	}
	if _, ok := req["temperature"]; !ok {
		t.Error("temperature missing for a conventional model")
	}
	if _, ok := req["max_completion_tokens"]; ok {
		t.Error("max_completion_tokens should not be set for a conventional model")
	}
}

func TestSummarizeReasoningModelRequest(t *testing.T) {
	var captured []byte
	cfg := fakeExtractor(t, func(w http.ResponseWriter, r *http.Request) {
		captured, _ = io.ReadAll(r.Body)
		respondCompletion(w, `{"summary":"ok","sentiment":"neutral"}`)
	})
	cfg.Model = "gpt-5"

	metadata.New(cfg, testLogger()).Summarize(context.Background(), "Short input text.")

	var req map[string]any
	if err := json.Unmarshal(captured, &req); err != nil {
		t.Fatalf("decode request: %v", err)
	}

	if _, ok := req["max_completion_tokens"]; !ok {
		t.Error("max_completion_tokens missing for a reasoning model")
	}
	if _, ok := req["max_tokens"]; ok {
		t.Error("max_tokens should not be set for a reasoning model")
	}
	if _, ok := req["temperature"]; ok {
		t.Error("temperature should not be set for a reasoning model")
	}
}

func TestSummarizeFencedContent(t *testing.T) {
	cfg := fakeExtractor(t, func(w http.ResponseWriter, r *http.Request) {
		respondCompletion(w, "```json\n{\"summary\":\"Fenced but valid.\",\"sentiment\":\"negative\"}\n```")
	})

	got := metadata.New(cfg, testLogger()).Summarize(context.Background(), "Some text.")

	if got.Quality != metadata.QualityAuthoritative {
		t.Fatalf("quality = %q, want authoritative", got.Quality)
	}
	if got.Summary != "Fenced but valid." {
		t.Errorf("summary = %q", got.Summary)
	}
	if got.Sentiment != metadata.SentimentNegative {
		t.Errorf("sentiment = %q, want negative", got.Sentiment)
	}
}

func TestSummarizeMalformedContentFallsBack(t *testing.T) {
	cfg := fakeExtractor(t, func(w http.ResponseWriter, r *http.Request) {
		respondCompletion(w, "I am sorry, I cannot produce JSON today.")
	})

	text := "A perfectly ordinary text."
	got := metadata.New(cfg, testLogger()).Summarize(context.Background(), text)

	if got.Quality != metadata.QualityDegraded {
		t.Fatalf("quality = %q, want degraded fallback", got.Quality)
	}
	if got.Summary != text {
		t.Errorf("summary = %q, want verbatim fallback", got.Summary)
	}
	if got.Sentiment != metadata.SentimentNeutral {
		t.Errorf("sentiment = %q, want neutral", got.Sentiment)
	}
}

func TestSummarizeBlankSummaryFallsBack(t *testing.T) {
	cfg := fakeExtractor(t, func(w http.ResponseWriter, r *http.Request) {
		respondCompletion(w, `{"summary":"   ","sentiment":"positive"}`)
	})

	got := metadata.New(cfg, testLogger()).Summarize(context.Background(), "Some text.")

	if got.Quality != metadata.QualityDegraded {
		t.Errorf("quality = %q, want degraded for a blank summary", got.Quality)
	}
}

func TestSummarizeNoChoicesFallsBack(t *testing.T) {
	cfg := fakeExtractor(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"chatcmpl-test","object":"chat.completion","choices":[]}`))
	})

	got := metadata.New(cfg, testLogger()).Summarize(context.Background(), "Some text.")

	if got.Quality != metadata.QualityDegraded {
		t.Errorf("quality = %q, want degraded for an empty completion", got.Quality)
	}
}

func TestSummarizeServerErrorFallsBack(t *testing.T) {
	cfg := fakeExtractor(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"boom"}}`, http.StatusInternalServerError)
	})

	got := metadata.New(cfg, testLogger()).Summarize(context.Background(), "Some text.")

	if got.Quality != metadata.QualityDegraded {
		t.Errorf("quality = %q, want degraded when the service errors", got.Quality)
	}
}

func TestSummarizeRetriesTransientFailure(t *testing.T) {
	var calls atomic.Int32
	cfg := fakeExtractor(t, func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			http.Error(w, `{"error":{"message":"try again"}}`, http.StatusInternalServerError)
			return
		}
		respondCompletion(w, `{"summary":"Recovered on retry.","sentiment":"neutral"}`)
	})
	cfg.MaxRetries = 3

	got := metadata.New(cfg, testLogger()).Summarize(context.Background(), "Some text.")

	if got.Quality != metadata.QualityAuthoritative {
		t.Fatalf("quality = %q, want authoritative after retry", got.Quality)
	}
	if got.Summary != "Recovered on retry." {
		t.Errorf("summary = %q", got.Summary)
	}
	if n := calls.Load(); n != 2 {
		t.Errorf("calls = %d, want 2", n)
	}
}
