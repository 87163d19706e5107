package ai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func completionBody(content string) string {
	b, _ := json.Marshal(map[string]any{
		"choices": []map[string]any{
			{"message": map[string]string{"content": content}},
		},
	})
	return string(b)
}

func TestAnalyzeTranscriptParsesUpstream(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("missing bearer token, got %q", got)
		}
		fmt.Fprint(w, completionBody(`{"keyPoints":["kp1"],"concerns":["c1"],"smallThings":["s1"]}`))
	}))
	defer srv.Close()

	client := OpenAICompatClient{BaseURL: srv.URL, Model: "gpt-test", APIKey: "test-key"}
	a, err := client.AnalyzeTranscript(context.Background(), "transcript one", SessionContext{FirstName: "A"})
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if a.KeyPoints[0] != "kp1" || a.Concerns[0] != "c1" || a.SmallThings[0] != "s1" {
		t.Fatalf("unexpected analysis %+v", a)
	}
	if a.Provider != "openai" || a.Model != "gpt-test" {
		t.Fatalf("provider metadata wrong: %+v", a)
	}
}

func TestAnalyzeTranscriptMalformedResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, completionBody("this is not json"))
	}))
	defer srv.Close()

	client := OpenAICompatClient{BaseURL: srv.URL, Model: "gpt-test"}
	_, err := client.AnalyzeTranscript(context.Background(), "transcript malformed", SessionContext{})
	if err == nil || !strings.Contains(err.Error(), "malformed analysis response") {
		t.Fatalf("expected malformed response error, got %v", err)
	}
}

func TestCompleteRateLimited(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		fmt.Fprint(w, `{"error":{"details":[{"@type":"type.googleapis.com/google.rpc.RetryInfo","retryDelay":"7s"}]}}`)
	}))
	defer srv.Close()

	client := OpenAICompatClient{BaseURL: srv.URL, Model: "gpt-test"}
	_, err := client.FormatNote(context.Background(), "note rate limited")
	var rle RateLimitError
	if !errors.As(err, &rle) {
		t.Fatalf("expected RateLimitError, got %v", err)
	}
	if rle.RetryAfter.Seconds() != 7 {
		t.Fatalf("expected 7s retry delay, got %s", rle.RetryAfter)
	}
}

func TestCompleteCachesRepeatCalls(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		fmt.Fprint(w, completionBody(`{"type":"call","title":"Cached title","description":"d"}`))
	}))
	defer srv.Close()

	client := OpenAICompatClient{BaseURL: srv.URL, Model: "gpt-test"}
	raw := "unique note for cache test"
	if _, err := client.FormatNote(context.Background(), raw); err != nil {
		t.Fatalf("first call: %v", err)
	}
	if _, err := client.FormatNote(context.Background(), raw); err != nil {
		t.Fatalf("second call: %v", err)
	}
	if calls != 1 {
		t.Fatalf("expected one upstream call, got %d", calls)
	}
}

func TestChatStreamsDeltas(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var payload completionPayload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Errorf("decode payload: %v", err)
		}
		if !payload.Stream {
			t.Errorf("expected streaming request")
		}
		w.Header().Set("Content-Type", "text/event-stream")
		fmt.Fprint(w, "data: {\"choices\":[{\"delta\":{\"content\":\"Hello \"}}]}\n\n")
		fmt.Fprint(w, "data: {\"choices\":[{\"delta\":{\"content\":\"world\"}}]}\n\n")
		fmt.Fprint(w, "data: [DONE]\n\n")
	}))
	defer srv.Close()

	client := OpenAICompatClient{BaseURL: srv.URL, Model: "gpt-test"}
	var got strings.Builder
	err := client.Chat(context.Background(), "system", []ChatMessage{{Role: "user", Content: "hi"}}, func(chunk string) error {
		got.WriteString(chunk)
		return nil
	})
	if err != nil {
		t.Fatalf("chat: %v", err)
	}
	if got.String() != "Hello world" {
		t.Fatalf("unexpected stream %q", got.String())
	}
}

func TestCheckRequiresConfig(t *testing.T) {
	client := OpenAICompatClient{Model: "gpt-test"}
	if _, err := client.FormatNote(context.Background(), "x"); err == nil || !strings.Contains(err.Error(), "AI_BASE_URL") {
		t.Fatalf("expected base url error, got %v", err)
	}
	client = OpenAICompatClient{BaseURL: "http://localhost"}
	if _, err := client.FormatNote(context.Background(), "x"); err == nil || !strings.Contains(err.Error(), "AI_MODEL") {
		t.Fatalf("expected model error, got %v", err)
	}
}
