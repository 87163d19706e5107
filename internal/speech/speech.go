package speech

import (
	"context"
	"io"
)

// Result is the provider-independent transcription output.
type Result struct {
	Transcription string  `json:"transcription"`
	Confidence    float64 `json:"confidence"`
	Provider      string  `json:"provider"`
}

// Transcriber converts an audio recording to text.
type Transcriber interface {
	Transcribe(ctx context.Context, audio io.Reader, filename string) (Result, error)
}
