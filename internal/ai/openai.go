package ai

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"
)

// OpenAICompatClient talks to any OpenAI-compatible chat-completions API.
type OpenAICompatClient struct {
	BaseURL   string
	Model     string
	APIKey    string
	MaxTokens int
}

var (
	cacheMu    sync.Mutex
	cacheStore = map[string]cacheEntry{}
	cacheTTL   = 60 * time.Second
)

type cacheEntry struct {
	value string
	exp   time.Time
}

type RateLimitError struct {
	RetryAfter time.Duration
}

func (r RateLimitError) Error() string {
	if r.RetryAfter > 0 {
		return fmt.Sprintf("rate limited, retry after %s", r.RetryAfter)
	}
	return "rate limited"
}

type wireMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type completionPayload struct {
	Model          string        `json:"model"`
	Temperature    float64       `json:"temperature,omitempty"`
	MaxTokens      int           `json:"max_tokens,omitempty"`
	Stream         bool          `json:"stream,omitempty"`
	ResponseFormat *respFormat   `json:"response_format,omitempty"`
	Messages       []wireMessage `json:"messages"`
}

type respFormat struct {
	Type string `json:"type"`
}

func (a OpenAICompatClient) AnalyzeTranscript(ctx context.Context, transcription string, sc SessionContext) (Analysis, error) {
	prompt := fmt.Sprintf(`Analyze the following conversation transcript and extract:

1. Key Points: the most important takeaways or key information mentioned (3-5 items).
2. Concerns: worries, questions, objections, or issues raised (2-4 items).
3. Small Things: minor details or personal preferences useful for personalization (2-4 items).

Even for a brief conversation, extract at least 2-3 items per category from what was actually said.

Context:
- Person: %s %s
- Situation: %s
- Email: %s
- Phone: %s

Transcript:
%s

Return ONLY a valid JSON object with this exact structure (no markdown, no code blocks):
{"keyPoints": ["..."], "concerns": ["..."], "smallThings": ["..."]}`,
		sc.FirstName, sc.LastName, sc.Situation, sc.Email, sc.Phone, transcription)

	raw, err := a.complete(ctx, []wireMessage{
		{Role: "system", Content: "You are an AI assistant that analyzes senior living tour conversations and extracts structured insights. Always respond with valid JSON only."},
		{Role: "user", Content: prompt},
	}, 0.7, true)
	if err != nil {
		return Analysis{}, err
	}

	var parsed struct {
		KeyPoints   []string `json:"keyPoints"`
		Concerns    []string `json:"concerns"`
		SmallThings []string `json:"smallThings"`
	}
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return Analysis{}, fmt.Errorf("malformed analysis response: %w", err)
	}
	return Analysis{
		KeyPoints:   parsed.KeyPoints,
		Concerns:    parsed.Concerns,
		SmallThings: parsed.SmallThings,
		Provider:    "openai",
		Model:       a.Model,
	}, nil
}

func (a OpenAICompatClient) FormatNote(ctx context.Context, rawNote string) (NoteEntry, error) {
	prompt := fmt.Sprintf(`Format this into a CRM activity log entry. Return JSON with:
- "type": one of "call", "email", "tour", "meeting", or "note" (pick the best fit)
- "title": short, 3-8 words (e.g. "Follow-up call with daughter")
- "description": 1-2 sentences summarizing the key details

Raw note:
%s`, rawNote)

	raw, err := a.complete(ctx, []wireMessage{
		{Role: "system", Content: "You format raw notes into concise CRM activity log entries for a senior living community. Always respond with valid JSON only."},
		{Role: "user", Content: prompt},
	}, 0.5, true)
	if err != nil {
		return NoteEntry{}, err
	}

	var parsed NoteEntry
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return NoteEntry{}, fmt.Errorf("malformed note response: %w", err)
	}
	if parsed.Title == "" {
		parsed.Title = "Note added"
	}
	if parsed.Description == "" {
		parsed.Description = rawNote
	}
	parsed.Type = ClampNoteType(parsed.Type)
	return parsed, nil
}

func (a OpenAICompatClient) complete(ctx context.Context, messages []wireMessage, temperature float64, jsonMode bool) (string, error) {
	if err := a.check(); err != nil {
		return "", err
	}

	cacheKey := fmt.Sprint(messages)
	if v, ok := cacheGet(cacheKey); ok {
		return v, nil
	}

	payload := completionPayload{
		Model:       a.Model,
		Temperature: temperature,
		MaxTokens:   a.MaxTokens,
		Messages:    messages,
	}
	if jsonMode {
		payload.ResponseFormat = &respFormat{Type: "json_object"}
	}

	resp, err := a.do(ctx, payload)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return "", err
	}

	var res struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return "", err
	}
	if len(res.Choices) == 0 {
		return "", fmt.Errorf("empty completion response")
	}
	answer := res.Choices[0].Message.Content
	cacheSet(cacheKey, answer)
	return answer, nil
}

func (a OpenAICompatClient) Chat(ctx context.Context, system string, messages []ChatMessage, emit func(chunk string) error) error {
	if err := a.check(); err != nil {
		return err
	}

	payload := completionPayload{
		Model:       a.Model,
		Temperature: 0.7,
		MaxTokens:   a.MaxTokens,
		Stream:      true,
		Messages:    []wireMessage{{Role: "system", Content: system}},
	}
	for _, m := range messages {
		payload.Messages = append(payload.Messages, wireMessage{Role: m.Role, Content: m.Content})
	}

	resp, err := a.do(ctx, payload)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return err
	}

	// Upstream streams SSE frames: "data: {json}" lines ending with [DONE].
	scanner := bufio.NewScanner(resp.Body)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if !strings.HasPrefix(line, "data:") {
			continue
		}
		data := strings.TrimSpace(strings.TrimPrefix(line, "data:"))
		if data == "" || data == "[DONE]" {
			continue
		}
		var frame struct {
			Choices []struct {
				Delta struct {
					Content string `json:"content"`
				} `json:"delta"`
			} `json:"choices"`
		}
		if err := json.Unmarshal([]byte(data), &frame); err != nil {
			continue
		}
		if len(frame.Choices) == 0 || frame.Choices[0].Delta.Content == "" {
			continue
		}
		if err := emit(frame.Choices[0].Delta.Content); err != nil {
			return err
		}
	}
	return scanner.Err()
}

func (a OpenAICompatClient) check() error {
	if strings.TrimSpace(a.BaseURL) == "" {
		return fmt.Errorf("AI_BASE_URL is not set")
	}
	if strings.TrimSpace(a.Model) == "" {
		return fmt.Errorf("AI_MODEL is not set")
	}
	return nil
}

func (a OpenAICompatClient) do(ctx context.Context, payload completionPayload) (*http.Response, error) {
	b, _ := json.Marshal(payload)
	url := strings.TrimRight(a.BaseURL, "/") + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if strings.TrimSpace(a.APIKey) != "" {
		req.Header.Set("Authorization", "Bearer "+a.APIKey)
	}

	timeout := 45 * time.Second
	if deadline, ok := ctx.Deadline(); ok {
		if remaining := time.Until(deadline); remaining > 0 && remaining < timeout {
			timeout = remaining
		}
	}
	client := &http.Client{Timeout: timeout}
	resp, err := client.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("model request timed out")
		}
		var netErr net.Error
		if errors.As(err, &netErr) && netErr.Timeout() {
			return nil, fmt.Errorf("model request timed out")
		}
		return nil, fmt.Errorf("model request failed")
	}
	return resp, nil
}

func checkStatus(resp *http.Response) error {
	if resp.StatusCode < 400 {
		return nil
	}
	var errBody map[string]any
	_ = json.NewDecoder(resp.Body).Decode(&errBody)
	if resp.StatusCode == http.StatusTooManyRequests {
		if d := extractRetryAfter(errBody); d > 0 {
			return RateLimitError{RetryAfter: d}
		}
		return RateLimitError{}
	}
	return fmt.Errorf("model http error: %s: %v", resp.Status, errBody)
}

func cacheGet(key string) (string, bool) {
	cacheMu.Lock()
	defer cacheMu.Unlock()
	if e, ok := cacheStore[key]; ok {
		if time.Now().Before(e.exp) {
			return e.value, true
		}
		delete(cacheStore, key)
	}
	return "", false
}

func cacheSet(key, value string) {
	cacheMu.Lock()
	defer cacheMu.Unlock()
	cacheStore[key] = cacheEntry{
		value: value,
		exp:   time.Now().Add(cacheTTL),
	}
}

func extractRetryAfter(errBody map[string]any) time.Duration {
	errObj, ok := errBody["error"].(map[string]any)
	if !ok {
		return 0
	}
	details, ok := errObj["details"].([]any)
	if !ok {
		return 0
	}
	for _, d := range details {
		m, ok := d.(map[string]any)
		if !ok {
			continue
		}
		if t, ok := m["@type"].(string); ok && strings.Contains(t, "RetryInfo") {
			if s, ok := m["retryDelay"].(string); ok {
				if dur, err := time.ParseDuration(s); err == nil {
					return dur
				}
			}
		}
	}
	return 0
}
