package store

import (
	"context"
	"errors"

	"github.com/trilio-crm/backend/internal/models"
)

var ErrNotFound = errors.New("not found")

// Store is the persistence port for the lead pipeline. MemoryStore serves
// tests and the zero-config demo; PostgresStore is the durable adapter.
type Store interface {
	Ping(ctx context.Context) error
	Close()

	ListLeads(ctx context.Context) ([]models.Lead, error)
	GetLead(ctx context.Context, id string) (models.Lead, error)
	InsertLead(ctx context.Context, lead models.Lead) error
	UpdateLead(ctx context.Context, lead models.Lead) error
	ReorderLead(ctx context.Context, id string, stage models.Stage, newIndex int) error

	ListTemplates(ctx context.Context) ([]models.Template, error)
	GetTemplate(ctx context.Context, id string) (models.Template, error)
	InsertTemplate(ctx context.Context, t models.Template) error

	ListCampaigns(ctx context.Context) ([]models.Campaign, error)
	GetCampaign(ctx context.Context, id string) (models.Campaign, error)
	InsertCampaign(ctx context.Context, c models.Campaign) error
	UpdateCampaign(ctx context.Context, c models.Campaign) error

	// Reset drops everything and re-seeds the fixture dataset.
	Reset(ctx context.Context) error
}
