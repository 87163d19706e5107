package speech

import (
	"context"
	"io"
)

// MockTranscriber returns a canned intake transcript so the recording flow
// works end to end without a hosted provider.
type MockTranscriber struct{}

const mockTranscript = "Hi, I'm calling about my mother. She's 82 and has been " +
	"living alone since my father passed last year. Lately she's been " +
	"forgetting to take her medications and we're worried about her being on " +
	"her own. We'd love to find a community close to us where she could stay " +
	"active. She loves gardening and used to host a book club."

func (MockTranscriber) Transcribe(ctx context.Context, audio io.Reader, filename string) (Result, error) {
	if audio != nil {
		// Drain so multipart uploads complete cleanly.
		_, _ = io.Copy(io.Discard, audio)
	}
	return Result{
		Transcription: mockTranscript,
		Confidence:    0.95,
		Provider:      "mock",
	}, nil
}
