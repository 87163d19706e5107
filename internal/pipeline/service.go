package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/trilio-crm/backend/internal/models"
	"github.com/trilio-crm/backend/internal/store"
)

// Service mediates stage transitions and journal writes over the store.
type Service struct {
	Store  store.Store
	Logger zerolog.Logger
	Now    func() time.Time
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now().UTC()
}

// MoveLead updates a lead's stage and records a stage_change journal entry.
// Any stage is reachable from any other; moving to the current stage is a
// no-op that writes nothing.
func (s *Service) MoveLead(ctx context.Context, leadID string, target models.Stage, by string) (models.Lead, error) {
	if !ValidStage(target) {
		return models.Lead{}, fmt.Errorf("unknown stage %q", target)
	}

	lead, err := s.Store.GetLead(ctx, leadID)
	if err != nil {
		return models.Lead{}, err
	}
	if lead.Stage == target {
		return lead, nil
	}

	now := s.now()
	if by == "" {
		by = lead.SalesRep
	}
	entry := StageChangeEntry(uuid.NewString(), lead.Stage, target, by, now)

	from := lead.Stage
	lead.Stage = target
	lead.LastContactDate = now.Format("2006-01-02")
	lead.Interactions = PrependEntry(lead.Interactions, entry)

	if err := s.Store.UpdateLead(ctx, lead); err != nil {
		return models.Lead{}, err
	}
	s.Logger.Info().
		Str("lead_id", leadID).
		Str("from", string(from)).
		Str("to", string(target)).
		Msg("lead moved")
	return lead, nil
}

// ReorderWithinStage changes display order inside one kanban column. It never
// touches the stage field and never writes a journal entry.
func (s *Service) ReorderWithinStage(ctx context.Context, leadID string, stage models.Stage, newIndex int) error {
	if !ValidStage(stage) {
		return fmt.Errorf("unknown stage %q", stage)
	}
	return s.Store.ReorderLead(ctx, leadID, stage, newIndex)
}

// AppendInteraction prepends an entry to a lead's journal and advances the
// last-contact date. The entry's id and date are assigned here if the caller
// left them empty.
func (s *Service) AppendInteraction(ctx context.Context, leadID string, entry models.InteractionEntry) (models.Lead, error) {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.Date.IsZero() {
		entry.Date = s.now()
	}
	if err := ValidateEntry(entry); err != nil {
		return models.Lead{}, err
	}

	lead, err := s.Store.GetLead(ctx, leadID)
	if err != nil {
		return models.Lead{}, err
	}
	lead.Interactions = PrependEntry(lead.Interactions, entry)
	lead.LastContactDate = entry.Date.Format("2006-01-02")

	if err := s.Store.UpdateLead(ctx, lead); err != nil {
		return models.Lead{}, err
	}
	return lead, nil
}
