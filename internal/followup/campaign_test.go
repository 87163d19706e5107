package followup

import (
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/trilio-crm/backend/internal/models"
)

type recordingSender struct {
	sent []string
	fail bool
}

func (r *recordingSender) Send(to, subject, body string) error {
	if r.fail {
		return errors.New("smtp down")
	}
	r.sent = append(r.sent, to)
	return nil
}

var sendNow = time.Date(2026, 2, 14, 9, 0, 0, 0, time.UTC)

func TestCampaignSendSkipsMissingEmails(t *testing.T) {
	sender := &recordingSender{}
	svc := CampaignService{Sender: sender, Logger: zerolog.Nop()}

	c := models.Campaign{ID: "c1", Status: models.CampaignDraft}
	tmpl := models.Template{Subject: "Hi {{name}}", Body: "Body"}
	recipients := []models.Lead{
		{ID: "l1", Name: "A", ContactEmail: "a@example.com"},
		{ID: "l2", Name: "B"},
		{ID: "l3", Name: "C", ContactEmail: "c@example.com"},
	}

	res, err := svc.Send(&c, tmpl, recipients, sendNow)
	if err != nil {
		t.Fatalf("send: %v", err)
	}
	if res.Delivered != 2 || res.Skipped != 1 {
		t.Fatalf("unexpected result %+v", res)
	}
	if len(sender.sent) != 2 || sender.sent[0] != "a@example.com" {
		t.Fatalf("unexpected deliveries %v", sender.sent)
	}
	if c.Status != models.CampaignSent || c.SentAt != "2026-02-14" {
		t.Fatalf("campaign not marked sent: %+v", c)
	}
	if c.OpenRate < 60 || c.OpenRate > 89 || c.ClickRate < 25 || c.ClickRate > 44 {
		t.Fatalf("rates outside expected ranges: open=%d click=%d", c.OpenRate, c.ClickRate)
	}
}

func TestCampaignSendAlreadySent(t *testing.T) {
	svc := CampaignService{Sender: &recordingSender{}, Logger: zerolog.Nop()}
	c := models.Campaign{ID: "c1", Status: models.CampaignSent}
	if _, err := svc.Send(&c, models.Template{}, nil, sendNow); err == nil {
		t.Fatalf("expected error for already-sent campaign")
	}
}

func TestCampaignSendDeliveryFailureLeavesStatus(t *testing.T) {
	svc := CampaignService{Sender: &recordingSender{fail: true}, Logger: zerolog.Nop()}
	c := models.Campaign{ID: "c1", Status: models.CampaignDraft}
	recipients := []models.Lead{{ID: "l1", ContactEmail: "a@example.com"}}

	if _, err := svc.Send(&c, models.Template{}, recipients, sendNow); err == nil {
		t.Fatalf("expected delivery error")
	}
	if c.Status != models.CampaignDraft || c.SentAt != "" {
		t.Fatalf("failed send must not mark campaign sent: %+v", c)
	}
}

func TestSynthesizeRatesDeterministic(t *testing.T) {
	o1, c1 := SynthesizeRates("c1")
	o2, c2 := SynthesizeRates("c1")
	if o1 != o2 || c1 != c2 {
		t.Fatalf("rates must be stable per campaign id")
	}
	for _, id := range []string{"c1", "c2", "campaign-xyz", ""} {
		open, click := SynthesizeRates(id)
		if open < 60 || open > 89 {
			t.Fatalf("open rate out of range for %q: %d", id, open)
		}
		if click < 25 || click > 44 {
			t.Fatalf("click rate out of range for %q: %d", id, click)
		}
	}
}
