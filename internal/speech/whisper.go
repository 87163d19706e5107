package speech

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"
)

// WhisperTranscriber posts audio to an OpenAI-compatible transcription
// endpoint.
type WhisperTranscriber struct {
	BaseURL string
	APIKey  string
	Model   string
	Client  *http.Client
}

func (w WhisperTranscriber) Transcribe(ctx context.Context, audio io.Reader, filename string) (Result, error) {
	if w.Client == nil {
		w.Client = &http.Client{Timeout: 60 * time.Second}
	}
	if w.BaseURL == "" {
		w.BaseURL = "https://api.openai.com/v1"
	}
	if w.Model == "" {
		w.Model = "whisper-1"
	}
	if filename == "" {
		filename = "recording.wav"
	}

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return Result{}, err
	}
	if _, err := io.Copy(part, audio); err != nil {
		return Result{}, err
	}
	if err := writer.WriteField("model", w.Model); err != nil {
		return Result{}, err
	}
	if err := writer.WriteField("language", "en"); err != nil {
		return Result{}, err
	}
	if err := writer.Close(); err != nil {
		return Result{}, err
	}

	url := strings.TrimRight(w.BaseURL, "/") + "/audio/transcriptions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &buf)
	if err != nil {
		return Result{}, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if w.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+w.APIKey)
	}

	resp, err := w.Client.Do(req)
	if err != nil {
		return Result{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return Result{}, fmt.Errorf("transcription error: %s: %s", resp.Status, string(body))
	}

	var r struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&r); err != nil {
		return Result{}, err
	}
	if r.Text == "" {
		return Result{}, errors.New("empty transcription")
	}

	return Result{
		Transcription: r.Text,
		Confidence:    1.0, // whisper does not report confidence
		Provider:      "whisper",
	}, nil
}
