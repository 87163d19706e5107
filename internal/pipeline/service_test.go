package pipeline

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/trilio-crm/backend/internal/models"
	"github.com/trilio-crm/backend/internal/store"
)

func newTestService(t *testing.T, leads ...models.Lead) (*Service, *store.MemoryStore) {
	t.Helper()
	st := store.NewMemoryStore(false)
	for _, l := range leads {
		if err := st.InsertLead(context.Background(), l); err != nil {
			t.Fatalf("seed lead: %v", err)
		}
	}
	now := time.Date(2026, 2, 12, 15, 30, 0, 0, time.UTC)
	return &Service{Store: st, Logger: zerolog.Nop(), Now: func() time.Time { return now }}, st
}

func TestMoveLeadLogsStageChange(t *testing.T) {
	svc, st := newTestService(t, models.Lead{ID: "p1", Stage: models.StageInquiry, SalesRep: "Sarah Johnson"})

	lead, err := svc.MoveLead(context.Background(), "p1", models.StageDeposit, "")
	if err != nil {
		t.Fatalf("move: %v", err)
	}
	if lead.Stage != models.StageDeposit {
		t.Fatalf("expected deposit, got %q", lead.Stage)
	}
	if len(lead.Interactions) != 1 {
		t.Fatalf("expected one journal entry, got %d", len(lead.Interactions))
	}
	e := lead.Interactions[0]
	if e.Type != models.InteractionStageChange || e.Title != "Moved to Deposit" {
		t.Fatalf("unexpected entry %+v", e)
	}
	if e.By != "Sarah Johnson" {
		t.Fatalf("empty actor should fall back to the sales rep, got %q", e.By)
	}
	if lead.LastContactDate != "2026-02-12" {
		t.Fatalf("last contact not advanced: %q", lead.LastContactDate)
	}

	stored, err := st.GetLead(context.Background(), "p1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if stored.Stage != models.StageDeposit || len(stored.Interactions) != 1 {
		t.Fatalf("move not persisted: %+v", stored)
	}
}

func TestMoveLeadSameStageIsNoOp(t *testing.T) {
	svc, st := newTestService(t, models.Lead{ID: "p1", Stage: models.StageConnection})

	lead, err := svc.MoveLead(context.Background(), "p1", models.StageConnection, "Mike Peters")
	if err != nil {
		t.Fatalf("move: %v", err)
	}
	if len(lead.Interactions) != 0 {
		t.Fatalf("same-stage move must not log: %+v", lead.Interactions)
	}
	stored, _ := st.GetLead(context.Background(), "p1")
	if len(stored.Interactions) != 0 {
		t.Fatalf("same-stage move wrote to the store")
	}
}

func TestMoveLeadUnknownStage(t *testing.T) {
	svc, _ := newTestService(t, models.Lead{ID: "p1", Stage: models.StageInquiry})
	if _, err := svc.MoveLead(context.Background(), "p1", "archived", "x"); err == nil {
		t.Fatalf("expected error for unknown stage")
	}
}

func TestMoveLeadBackward(t *testing.T) {
	svc, _ := newTestService(t, models.Lead{ID: "p1", Stage: models.StageDeposit})
	lead, err := svc.MoveLead(context.Background(), "p1", models.StageInquiry, "admin")
	if err != nil {
		t.Fatalf("backward move should be allowed: %v", err)
	}
	if lead.Stage != models.StageInquiry {
		t.Fatalf("expected inquiry, got %q", lead.Stage)
	}
}

func TestAppendInteraction(t *testing.T) {
	svc, _ := newTestService(t, models.Lead{ID: "p1", Stage: models.StageInquiry, LastContactDate: "2026-01-01"})

	lead, err := svc.AppendInteraction(context.Background(), "p1", models.InteractionEntry{
		Type:  models.InteractionCall,
		Title: "Intro call",
		By:    "Sarah Johnson",
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}
	if len(lead.Interactions) != 1 {
		t.Fatalf("expected one entry, got %d", len(lead.Interactions))
	}
	e := lead.Interactions[0]
	if e.ID == "" || e.Date.IsZero() {
		t.Fatalf("id and date should be assigned: %+v", e)
	}
	if lead.LastContactDate != "2026-02-12" {
		t.Fatalf("last contact not advanced: %q", lead.LastContactDate)
	}

	if _, err := svc.AppendInteraction(context.Background(), "p1", models.InteractionEntry{Type: "fax", Title: "x"}); err == nil {
		t.Fatalf("expected error for unknown type")
	}
	if _, err := svc.AppendInteraction(context.Background(), "missing", models.InteractionEntry{Type: models.InteractionNote, Title: "x"}); err != store.ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
