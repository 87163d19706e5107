package ai

import "context"

type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Analysis is the structured extraction from a call transcript.
type Analysis struct {
	KeyPoints   []string `json:"key_points"`
	Concerns    []string `json:"concerns"`
	SmallThings []string `json:"small_things"`
	Provider    string   `json:"provider"`
	Model       string   `json:"model"`
}

// SessionContext accompanies a transcript so the analyzer can anchor the
// extraction to the person being discussed.
type SessionContext struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Situation string `json:"situation"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

// NoteEntry is a raw note classified into a CRM activity log entry.
type NoteEntry struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Type        string `json:"type"`
}

// Client is the boundary to the hosted LLM. The mock implementation keeps the
// whole service runnable without credentials.
type Client interface {
	AnalyzeTranscript(ctx context.Context, transcription string, sc SessionContext) (Analysis, error)
	FormatNote(ctx context.Context, raw string) (NoteEntry, error)
	Chat(ctx context.Context, system string, messages []ChatMessage, emit func(chunk string) error) error
}

var noteTypes = map[string]struct{}{
	"call": {}, "email": {}, "tour": {}, "meeting": {}, "note": {},
}

// ClampNoteType forces the classified type into the allowed set, falling
// back to "note" the way the upstream prompt contract does.
func ClampNoteType(t string) string {
	if _, ok := noteTypes[t]; ok {
		return t
	}
	return "note"
}
