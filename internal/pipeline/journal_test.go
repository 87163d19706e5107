package pipeline

import (
	"testing"
	"time"

	"github.com/trilio-crm/backend/internal/models"
)

func TestPrependEntryDoesNotMutateInput(t *testing.T) {
	orig := []models.InteractionEntry{{ID: "a"}, {ID: "b"}}
	out := PrependEntry(orig, models.InteractionEntry{ID: "c"})
	if len(out) != 3 || out[0].ID != "c" {
		t.Fatalf("expected c prepended, got %+v", out)
	}
	if len(orig) != 2 || orig[0].ID != "a" {
		t.Fatalf("input slice was mutated: %+v", orig)
	}
}

func TestSortNewestFirst(t *testing.T) {
	base := time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)
	entries := []models.InteractionEntry{
		{ID: "old", Date: base},
		{ID: "new", Date: base.Add(48 * time.Hour)},
		{ID: "mid", Date: base.Add(24 * time.Hour)},
	}
	sorted := SortNewestFirst(entries)
	if sorted[0].ID != "new" || sorted[1].ID != "mid" || sorted[2].ID != "old" {
		t.Fatalf("wrong order: %+v", sorted)
	}
	if entries[0].ID != "old" {
		t.Fatalf("input slice was reordered")
	}
}

func TestValidateEntry(t *testing.T) {
	if err := ValidateEntry(models.InteractionEntry{ID: "e1", Type: models.InteractionCall}); err != nil {
		t.Fatalf("valid entry rejected: %v", err)
	}
	if err := ValidateEntry(models.InteractionEntry{ID: "e1", Type: "fax"}); err == nil {
		t.Fatalf("expected error for unknown type")
	}
	if err := ValidateEntry(models.InteractionEntry{Type: models.InteractionCall}); err == nil {
		t.Fatalf("expected error for missing id")
	}
}
