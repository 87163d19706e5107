package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/trilio-crm/backend/internal/utils"
)

// MockClient produces deterministic output derived from the input hash, so
// demo flows behave the same on every run.
type MockClient struct {
	ModelVersion string
}

func (m MockClient) AnalyzeTranscript(ctx context.Context, transcription string, sc SessionContext) (Analysis, error) {
	h := utils.HashStringToUint64(transcription)

	keyPools := [][]string{
		{"Looking for a community with social activities", "Wants to stay close to family"},
		{"Currently managing care at home", "Exploring options for the first time"},
		{"Has toured other communities recently", "Needs help with daily living tasks"},
	}
	concernPools := [][]string{
		{"Worried about monthly cost", "Unsure about the transition period"},
		{"Concerned about medication management", "Questions about staffing levels"},
		{"Anxious about leaving the family home"},
	}
	smallPools := [][]string{
		{"Enjoys gardening", "Has a small dog named Max"},
		{"Former schoolteacher", "Prefers a ground-floor room"},
		{"Loves crossword puzzles", "Plays piano"},
	}

	name := strings.TrimSpace(sc.FirstName + " " + sc.LastName)
	a := Analysis{
		KeyPoints:   append([]string{fmt.Sprintf("Intake conversation with %s", name)}, keyPools[int(h)%len(keyPools)]...),
		Concerns:    concernPools[int(h/7)%len(concernPools)],
		SmallThings: smallPools[int(h/13)%len(smallPools)],
		Provider:    "mock",
		Model:       m.ModelVersion,
	}
	return a, nil
}

func (m MockClient) FormatNote(ctx context.Context, raw string) (NoteEntry, error) {
	h := utils.HashStringToUint64(raw)
	types := []string{"call", "note", "meeting", "email", "tour"}

	title := raw
	if len(title) > 48 {
		title = strings.TrimSpace(title[:48]) + "..."
	}
	if title == "" {
		title = "Note added"
	}
	return NoteEntry{
		Title:       title,
		Description: raw,
		Type:        types[int(h)%len(types)],
	}, nil
}

func (m MockClient) Chat(ctx context.Context, system string, messages []ChatMessage, emit func(chunk string) error) error {
	last := ""
	for i := len(messages) - 1; i >= 0; i-- {
		if messages[i].Role == "user" {
			last = messages[i].Content
			break
		}
	}
	chunks := []string{
		"Here's what I can tell from the current pipeline: ",
		"the funnel is healthiest at the inquiry and connection stages, ",
		"and a handful of post-tour leads are ready for a deposit conversation. ",
		fmt.Sprintf("(You asked: %q. Connect a live model for a real answer.)", last),
	}
	for _, c := range chunks {
		if err := emit(c); err != nil {
			return err
		}
	}
	return nil
}
