package store

import (
	"context"
	"sync"

	"github.com/trilio-crm/backend/internal/models"
)

// MemoryStore keeps the whole dataset in process memory. Reads hand out
// copies so callers can never mutate shared state in place.
type MemoryStore struct {
	mu        sync.RWMutex
	leads     []models.Lead
	templates []models.Template
	campaigns []models.Campaign
}

func NewMemoryStore(seed bool) *MemoryStore {
	s := &MemoryStore{}
	if seed {
		s.leads = FixtureLeads()
		s.templates = FixtureTemplates()
		s.campaigns = FixtureCampaigns()
	}
	return s
}

func (s *MemoryStore) Ping(ctx context.Context) error { return nil }
func (s *MemoryStore) Close()                         {}

func (s *MemoryStore) ListLeads(ctx context.Context) ([]models.Lead, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Lead, 0, len(s.leads))
	for _, l := range s.leads {
		out = append(out, cloneLead(l))
	}
	return out, nil
}

func (s *MemoryStore) GetLead(ctx context.Context, id string) (models.Lead, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, l := range s.leads {
		if l.ID == id {
			return cloneLead(l), nil
		}
	}
	return models.Lead{}, ErrNotFound
}

func (s *MemoryStore) InsertLead(ctx context.Context, lead models.Lead) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.leads = append(s.leads, cloneLead(lead))
	return nil
}

func (s *MemoryStore) UpdateLead(ctx context.Context, lead models.Lead) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, l := range s.leads {
		if l.ID == lead.ID {
			s.leads[i] = cloneLead(lead)
			return nil
		}
	}
	return ErrNotFound
}

// ReorderLead moves a lead to newIndex among the leads sharing its stage,
// leaving leads in other stages where they are. An out-of-range index is
// clamped, so a drop past the end of a column is a harmless no-op.
func (s *MemoryStore) ReorderLead(ctx context.Context, id string, stage models.Stage, newIndex int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var stagePositions []int
	current := -1
	for i, l := range s.leads {
		if l.Stage == stage {
			if l.ID == id {
				current = len(stagePositions)
			}
			stagePositions = append(stagePositions, i)
		}
	}
	if current == -1 {
		return ErrNotFound
	}
	if newIndex < 0 {
		newIndex = 0
	}
	if newIndex >= len(stagePositions) {
		newIndex = len(stagePositions) - 1
	}
	if newIndex == current {
		return nil
	}

	ordered := make([]models.Lead, 0, len(stagePositions))
	for _, pos := range stagePositions {
		ordered = append(ordered, s.leads[pos])
	}
	moved := ordered[current]
	ordered = append(ordered[:current], ordered[current+1:]...)
	ordered = append(ordered[:newIndex], append([]models.Lead{moved}, ordered[newIndex:]...)...)
	for i, pos := range stagePositions {
		s.leads[pos] = ordered[i]
	}
	return nil
}

func (s *MemoryStore) ListTemplates(ctx context.Context) ([]models.Template, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Template, len(s.templates))
	copy(out, s.templates)
	return out, nil
}

func (s *MemoryStore) GetTemplate(ctx context.Context, id string) (models.Template, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, t := range s.templates {
		if t.ID == id {
			return t, nil
		}
	}
	return models.Template{}, ErrNotFound
}

func (s *MemoryStore) InsertTemplate(ctx context.Context, t models.Template) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.templates = append(s.templates, t)
	return nil
}

func (s *MemoryStore) ListCampaigns(ctx context.Context) ([]models.Campaign, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Campaign, 0, len(s.campaigns))
	for _, c := range s.campaigns {
		out = append(out, cloneCampaign(c))
	}
	return out, nil
}

func (s *MemoryStore) GetCampaign(ctx context.Context, id string) (models.Campaign, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.campaigns {
		if c.ID == id {
			return cloneCampaign(c), nil
		}
	}
	return models.Campaign{}, ErrNotFound
}

func (s *MemoryStore) InsertCampaign(ctx context.Context, c models.Campaign) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.campaigns = append(s.campaigns, cloneCampaign(c))
	return nil
}

func (s *MemoryStore) UpdateCampaign(ctx context.Context, c models.Campaign) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.campaigns {
		if existing.ID == c.ID {
			s.campaigns[i] = cloneCampaign(c)
			return nil
		}
	}
	return ErrNotFound
}

func (s *MemoryStore) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.leads = FixtureLeads()
	s.templates = FixtureTemplates()
	s.campaigns = FixtureCampaigns()
	return nil
}

func cloneLead(l models.Lead) models.Lead {
	out := l
	out.Interactions = append([]models.InteractionEntry(nil), l.Interactions...)
	if l.CallTranscripts != nil {
		out.CallTranscripts = make([]models.CallTranscript, len(l.CallTranscripts))
		for i, tr := range l.CallTranscripts {
			out.CallTranscripts[i] = tr
			out.CallTranscripts[i].Messages = append([]models.TranscriptMessage(nil), tr.Messages...)
		}
	}
	out.IntakeNote = cloneIntakeNote(l.IntakeNote)
	if l.PostTourNote != nil {
		note := clonePostTourNote(*l.PostTourNote)
		out.PostTourNote = &note
	}
	return out
}

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	return append([]string(nil), s...)
}

func cloneIntakeNote(n models.IntakeNote) models.IntakeNote {
	n.SituationSummary = cloneStrings(n.SituationSummary)
	n.CareNeeds = cloneStrings(n.CareNeeds)
	n.BudgetFinancial = cloneStrings(n.BudgetFinancial)
	n.DecisionMakers = cloneStrings(n.DecisionMakers)
	n.Preferences = cloneStrings(n.Preferences)
	n.Objections = cloneStrings(n.Objections)
	n.SalesRepAssessment = cloneStrings(n.SalesRepAssessment)
	n.NextStep = cloneStrings(n.NextStep)
	return n
}

func clonePostTourNote(n models.PostTourNote) models.PostTourNote {
	n.FirstImpressions = cloneStrings(n.FirstImpressions)
	n.EmotionalSignals = cloneStrings(n.EmotionalSignals)
	n.Likes = cloneStrings(n.Likes)
	n.ConcernsRaised = cloneStrings(n.ConcernsRaised)
	n.PricingReaction = cloneStrings(n.PricingReaction)
	n.BuyingSignals = cloneStrings(n.BuyingSignals)
	n.RiskSignals = cloneStrings(n.RiskSignals)
	n.SalesRepAssessment = cloneStrings(n.SalesRepAssessment)
	n.FollowUpActions = cloneStrings(n.FollowUpActions)
	return n
}

func cloneCampaign(c models.Campaign) models.Campaign {
	out := c
	out.Recipients = append([]string(nil), c.Recipients...)
	return out
}
