package pipeline

import (
	"fmt"
	"sort"

	"github.com/trilio-crm/backend/internal/models"
)

// PrependEntry adds an entry to the front of a journal without mutating the
// input slice. Journals are append-only; nothing edits or removes entries.
func PrependEntry(entries []models.InteractionEntry, e models.InteractionEntry) []models.InteractionEntry {
	out := make([]models.InteractionEntry, 0, len(entries)+1)
	out = append(out, e)
	out = append(out, entries...)
	return out
}

// SortNewestFirst orders a copy of the journal by date descending. Display
// order is derived at query time, not maintained internally.
func SortNewestFirst(entries []models.InteractionEntry) []models.InteractionEntry {
	out := make([]models.InteractionEntry, len(entries))
	copy(out, entries)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})
	return out
}

// ValidateEntry checks the fields the journal itself cares about.
func ValidateEntry(e models.InteractionEntry) error {
	if !ValidInteractionType(e.Type) {
		return fmt.Errorf("unknown interaction type %q", e.Type)
	}
	if e.ID == "" {
		return fmt.Errorf("interaction id is required")
	}
	return nil
}
