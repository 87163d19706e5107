package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/trilio-crm/backend/internal/models"
)

// PostgresStore is the durable adapter. Nested records (intake note,
// post-tour note, journal, transcripts) are stored as JSONB; kanban display
// order is a per-lead position column.
type PostgresStore struct {
	Pool *pgxpool.Pool
}

func NewPostgresStore(ctx context.Context, databaseURL string) (*PostgresStore, error) {
	cfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, err
	}
	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return &PostgresStore{Pool: pool}, nil
}

func (s *PostgresStore) Close() {
	s.Pool.Close()
}

func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.Pool.Ping(ctx)
}

func (s *PostgresStore) WithTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := s.Pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()
	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

const leadColumns = `id, name, contact_person, contact_relation, contact_phone, contact_email,
	care_level, source, stage, facility, sales_rep, inquiry_date, initial_contact,
	last_contact_date, next_activity, intake_note, post_tour_note, interactions, call_transcripts`

func (s *PostgresStore) ListLeads(ctx context.Context) ([]models.Lead, error) {
	rows, err := s.Pool.Query(ctx, `SELECT `+leadColumns+` FROM leads ORDER BY position ASC, id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Lead
	for rows.Next() {
		l, err := scanLead(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

func (s *PostgresStore) GetLead(ctx context.Context, id string) (models.Lead, error) {
	rows, err := s.Pool.Query(ctx, `SELECT `+leadColumns+` FROM leads WHERE id = $1`, id)
	if err != nil {
		return models.Lead{}, err
	}
	defer rows.Close()
	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return models.Lead{}, err
		}
		return models.Lead{}, ErrNotFound
	}
	return scanLead(rows)
}

func scanLead(row pgx.Row) (models.Lead, error) {
	var (
		l            models.Lead
		intake       []byte
		postTour     []byte
		interactions []byte
		transcripts  []byte
	)
	if err := row.Scan(
		&l.ID, &l.Name, &l.ContactPerson, &l.ContactRelation, &l.ContactPhone, &l.ContactEmail,
		&l.CareLevel, &l.Source, &l.Stage, &l.Facility, &l.SalesRep, &l.InquiryDate, &l.InitialContact,
		&l.LastContactDate, &l.NextActivity, &intake, &postTour, &interactions, &transcripts,
	); err != nil {
		return models.Lead{}, err
	}
	if len(intake) > 0 {
		if err := json.Unmarshal(intake, &l.IntakeNote); err != nil {
			return models.Lead{}, fmt.Errorf("decode intake note for %s: %w", l.ID, err)
		}
	}
	if len(postTour) > 0 {
		var note models.PostTourNote
		if err := json.Unmarshal(postTour, &note); err != nil {
			return models.Lead{}, fmt.Errorf("decode post-tour note for %s: %w", l.ID, err)
		}
		l.PostTourNote = &note
	}
	if len(interactions) > 0 {
		if err := json.Unmarshal(interactions, &l.Interactions); err != nil {
			return models.Lead{}, fmt.Errorf("decode interactions for %s: %w", l.ID, err)
		}
	}
	if len(transcripts) > 0 {
		if err := json.Unmarshal(transcripts, &l.CallTranscripts); err != nil {
			return models.Lead{}, fmt.Errorf("decode transcripts for %s: %w", l.ID, err)
		}
	}
	return l, nil
}

func leadRowValues(l models.Lead, position int) ([]any, error) {
	intake, err := json.Marshal(l.IntakeNote)
	if err != nil {
		return nil, err
	}
	var postTour []byte
	if l.PostTourNote != nil {
		if postTour, err = json.Marshal(l.PostTourNote); err != nil {
			return nil, err
		}
	}
	interactions, err := json.Marshal(l.Interactions)
	if err != nil {
		return nil, err
	}
	var transcripts []byte
	if l.CallTranscripts != nil {
		if transcripts, err = json.Marshal(l.CallTranscripts); err != nil {
			return nil, err
		}
	}
	return []any{
		l.ID, l.Name, l.ContactPerson, l.ContactRelation, l.ContactPhone, l.ContactEmail,
		string(l.CareLevel), string(l.Source), string(l.Stage), l.Facility, l.SalesRep,
		l.InquiryDate, l.InitialContact, l.LastContactDate, l.NextActivity,
		intake, postTour, interactions, transcripts, position,
	}, nil
}

var leadInsertColumns = []string{
	"id", "name", "contact_person", "contact_relation", "contact_phone", "contact_email",
	"care_level", "source", "stage", "facility", "sales_rep", "inquiry_date", "initial_contact",
	"last_contact_date", "next_activity", "intake_note", "post_tour_note", "interactions",
	"call_transcripts", "position",
}

func (s *PostgresStore) InsertLead(ctx context.Context, lead models.Lead) error {
	return s.WithTx(ctx, func(tx pgx.Tx) error {
		var position int
		if err := tx.QueryRow(ctx, `SELECT COALESCE(MAX(position), 0) + 1 FROM leads`).Scan(&position); err != nil {
			return err
		}
		values, err := leadRowValues(lead, position)
		if err != nil {
			return err
		}
		placeholders := make([]string, len(values))
		for i := range values {
			placeholders[i] = fmt.Sprintf("$%d", i+1)
		}
		query := fmt.Sprintf(`INSERT INTO leads (%s) VALUES (%s)`,
			strings.Join(leadInsertColumns, ", "), strings.Join(placeholders, ", "))
		_, err = tx.Exec(ctx, query, values...)
		return err
	})
}

func (s *PostgresStore) UpdateLead(ctx context.Context, lead models.Lead) error {
	values, err := leadRowValues(lead, 0)
	if err != nil {
		return err
	}
	// position (last value) is managed by ReorderLead, not here.
	values = values[:len(values)-1]
	tag, err := s.Pool.Exec(ctx, `
		UPDATE leads SET
			name = $2, contact_person = $3, contact_relation = $4, contact_phone = $5,
			contact_email = $6, care_level = $7, source = $8, stage = $9, facility = $10,
			sales_rep = $11, inquiry_date = $12, initial_contact = $13, last_contact_date = $14,
			next_activity = $15, intake_note = $16, post_tour_note = $17, interactions = $18,
			call_transcripts = $19
		WHERE id = $1
	`, values...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *PostgresStore) ReorderLead(ctx context.Context, id string, stage models.Stage, newIndex int) error {
	return s.WithTx(ctx, func(tx pgx.Tx) error {
		rows, err := tx.Query(ctx, `SELECT id FROM leads WHERE stage = $1 ORDER BY position ASC, id ASC FOR UPDATE`, string(stage))
		if err != nil {
			return err
		}
		var ids []string
		for rows.Next() {
			var leadID string
			if err := rows.Scan(&leadID); err != nil {
				rows.Close()
				return err
			}
			ids = append(ids, leadID)
		}
		rows.Close()
		if err := rows.Err(); err != nil {
			return err
		}

		current := -1
		for i, leadID := range ids {
			if leadID == id {
				current = i
				break
			}
		}
		if current == -1 {
			return ErrNotFound
		}
		if newIndex < 0 {
			newIndex = 0
		}
		if newIndex >= len(ids) {
			newIndex = len(ids) - 1
		}
		if newIndex == current {
			return nil
		}

		ids = append(ids[:current], ids[current+1:]...)
		ids = append(ids[:newIndex], append([]string{id}, ids[newIndex:]...)...)
		for i, leadID := range ids {
			if _, err := tx.Exec(ctx, `UPDATE leads SET position = $1 WHERE id = $2`, i, leadID); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *PostgresStore) ListTemplates(ctx context.Context) ([]models.Template, error) {
	rows, err := s.Pool.Query(ctx, `SELECT id, name, subject, body, created_at FROM templates ORDER BY created_at ASC, id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Template
	for rows.Next() {
		var t models.Template
		if err := rows.Scan(&t.ID, &t.Name, &t.Subject, &t.Body, &t.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (s *PostgresStore) GetTemplate(ctx context.Context, id string) (models.Template, error) {
	var t models.Template
	err := s.Pool.QueryRow(ctx, `SELECT id, name, subject, body, created_at FROM templates WHERE id = $1`, id).
		Scan(&t.ID, &t.Name, &t.Subject, &t.Body, &t.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.Template{}, ErrNotFound
	}
	return t, err
}

func (s *PostgresStore) InsertTemplate(ctx context.Context, t models.Template) error {
	_, err := s.Pool.Exec(ctx, `INSERT INTO templates (id, name, subject, body, created_at) VALUES ($1,$2,$3,$4,$5)`,
		t.ID, t.Name, t.Subject, t.Body, t.CreatedAt)
	return err
}

func (s *PostgresStore) ListCampaigns(ctx context.Context) ([]models.Campaign, error) {
	rows, err := s.Pool.Query(ctx, `SELECT id, name, template_id, recipients, status, scheduled_at, sent_at, open_rate, click_rate FROM campaigns ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Campaign
	for rows.Next() {
		c, err := scanCampaign(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (s *PostgresStore) GetCampaign(ctx context.Context, id string) (models.Campaign, error) {
	rows, err := s.Pool.Query(ctx, `SELECT id, name, template_id, recipients, status, scheduled_at, sent_at, open_rate, click_rate FROM campaigns WHERE id = $1`, id)
	if err != nil {
		return models.Campaign{}, err
	}
	defer rows.Close()
	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return models.Campaign{}, err
		}
		return models.Campaign{}, ErrNotFound
	}
	return scanCampaign(rows)
}

func scanCampaign(row pgx.Row) (models.Campaign, error) {
	var (
		c          models.Campaign
		recipients []byte
	)
	if err := row.Scan(&c.ID, &c.Name, &c.TemplateID, &recipients, &c.Status, &c.ScheduledAt, &c.SentAt, &c.OpenRate, &c.ClickRate); err != nil {
		return models.Campaign{}, err
	}
	if len(recipients) > 0 {
		if err := json.Unmarshal(recipients, &c.Recipients); err != nil {
			return models.Campaign{}, fmt.Errorf("decode recipients for %s: %w", c.ID, err)
		}
	}
	return c, nil
}

func (s *PostgresStore) InsertCampaign(ctx context.Context, c models.Campaign) error {
	recipients, err := json.Marshal(c.Recipients)
	if err != nil {
		return err
	}
	_, err = s.Pool.Exec(ctx, `
		INSERT INTO campaigns (id, name, template_id, recipients, status, scheduled_at, sent_at, open_rate, click_rate)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
	`, c.ID, c.Name, c.TemplateID, recipients, string(c.Status), c.ScheduledAt, c.SentAt, c.OpenRate, c.ClickRate)
	return err
}

func (s *PostgresStore) UpdateCampaign(ctx context.Context, c models.Campaign) error {
	recipients, err := json.Marshal(c.Recipients)
	if err != nil {
		return err
	}
	tag, err := s.Pool.Exec(ctx, `
		UPDATE campaigns SET name = $2, template_id = $3, recipients = $4, status = $5,
			scheduled_at = $6, sent_at = $7, open_rate = $8, click_rate = $9
		WHERE id = $1
	`, c.ID, c.Name, c.TemplateID, recipients, string(c.Status), c.ScheduledAt, c.SentAt, c.OpenRate, c.ClickRate)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Reset truncates everything and bulk-loads the fixture dataset.
func (s *PostgresStore) Reset(ctx context.Context) error {
	return s.WithTx(ctx, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `TRUNCATE leads, templates, campaigns`); err != nil {
			return err
		}

		leads := FixtureLeads()
		leadRows := make([][]any, 0, len(leads))
		for i, l := range leads {
			values, err := leadRowValues(l, i)
			if err != nil {
				return err
			}
			leadRows = append(leadRows, values)
		}
		if _, err := tx.CopyFrom(ctx, pgx.Identifier{"leads"}, leadInsertColumns, pgx.CopyFromRows(leadRows)); err != nil {
			return err
		}

		templates := FixtureTemplates()
		templateRows := make([][]any, 0, len(templates))
		for _, t := range templates {
			templateRows = append(templateRows, []any{t.ID, t.Name, t.Subject, t.Body, t.CreatedAt})
		}
		if _, err := tx.CopyFrom(ctx, pgx.Identifier{"templates"}, []string{"id", "name", "subject", "body", "created_at"}, pgx.CopyFromRows(templateRows)); err != nil {
			return err
		}

		campaigns := FixtureCampaigns()
		campaignRows := make([][]any, 0, len(campaigns))
		for _, c := range campaigns {
			recipients, err := json.Marshal(c.Recipients)
			if err != nil {
				return err
			}
			campaignRows = append(campaignRows, []any{c.ID, c.Name, c.TemplateID, recipients, string(c.Status), c.ScheduledAt, c.SentAt, c.OpenRate, c.ClickRate})
		}
		_, err := tx.CopyFrom(ctx, pgx.Identifier{"campaigns"},
			[]string{"id", "name", "template_id", "recipients", "status", "scheduled_at", "sent_at", "open_rate", "click_rate"},
			pgx.CopyFromRows(campaignRows))
		return err
	})
}
