package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/trilio-crm/backend/internal/ai"
	"github.com/trilio-crm/backend/internal/followup"
	"github.com/trilio-crm/backend/internal/models"
	"github.com/trilio-crm/backend/internal/pipeline"
	"github.com/trilio-crm/backend/internal/speech"
	"github.com/trilio-crm/backend/internal/store"
)

func newTestRouter(t *testing.T) (*gin.Engine, *store.MemoryStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	st := store.NewMemoryStore(true)
	h := &Handler{
		Store:     st,
		Pipeline:  &pipeline.Service{Store: st, Logger: zerolog.Nop(), Now: func() time.Time { return time.Date(2026, 2, 12, 10, 0, 0, 0, time.UTC) }},
		AI:        ai.MockClient{ModelVersion: "mock-v1"},
		Speech:    speech.MockTranscriber{},
		Campaigns: followup.CampaignService{Sender: followup.LogSender{Logger: zerolog.Nop()}, Logger: zerolog.Nop()},
		Validator: validator.New(),
		Logger:    zerolog.Nop(),
	}

	r := gin.New()
	r.GET("/healthz", h.Healthz)
	r.GET("/api/leads", h.LeadsList)
	r.GET("/api/leads/:id", h.LeadDetails)
	r.POST("/api/leads", h.LeadCreate)
	r.POST("/api/leads/:id/stage", h.LeadMove)
	r.POST("/api/leads/:id/reorder", h.LeadReorder)
	r.POST("/api/leads/:id/interactions", h.InteractionAppend)
	r.POST("/api/leads/from-session", h.LeadFromSession)
	r.GET("/api/board", h.Board)
	r.GET("/api/dashboard", h.Dashboard)
	r.POST("/api/templates/:id/preview", h.TemplatePreview)
	r.POST("/api/campaigns/:id/send", h.CampaignSend)
	r.POST("/api/chat", h.Chat)
	r.POST("/api/analyze", h.Analyze)
	r.POST("/api/analyze-note", h.AnalyzeNote)
	r.POST("/api/transcribe", h.Transcribe)
	return r, st
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	var body *bytes.Buffer
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
		body = bytes.NewBuffer(b)
	} else {
		body = bytes.NewBuffer(nil)
	}
	req, _ := http.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHealthz(t *testing.T) {
	r, _ := newTestRouter(t)
	w := doJSON(t, r, http.MethodGet, "/healthz", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestBoardColumns(t *testing.T) {
	r, _ := newTestRouter(t)
	w := doJSON(t, r, http.MethodGet, "/api/board", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var res struct {
		Columns []struct {
			Stage    string        `json:"stage"`
			Progress int           `json:"progress"`
			Count    int           `json:"count"`
			Leads    []models.Lead `json:"leads"`
		} `json:"columns"`
		Total int `json:"total"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(res.Columns) != 6 {
		t.Fatalf("expected 6 columns, got %d", len(res.Columns))
	}
	if res.Columns[0].Stage != "inquiry" || res.Columns[5].Stage != "move_in" {
		t.Fatalf("columns out of order: %s .. %s", res.Columns[0].Stage, res.Columns[5].Stage)
	}
	sum := 0
	for _, col := range res.Columns {
		if col.Count != len(col.Leads) {
			t.Fatalf("count mismatch in %s", col.Stage)
		}
		sum += col.Count
	}
	if sum != res.Total {
		t.Fatalf("columns are not a partition: %d != %d", sum, res.Total)
	}
}

func TestLeadsListFilters(t *testing.T) {
	r, _ := newTestRouter(t)
	w := doJSON(t, r, http.MethodGet, "/api/leads?stage=inquiry&sales_rep=Sarah+Johnson", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var res struct {
		Items []models.Lead `json:"items"`
		Total int           `json:"total"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if res.Total == 0 {
		t.Fatalf("expected at least one match")
	}
	for _, l := range res.Items {
		if l.Stage != models.StageInquiry || l.SalesRep != "Sarah Johnson" {
			t.Fatalf("filter leaked lead %+v", l)
		}
	}

	w = doJSON(t, r, http.MethodGet, "/api/leads?q=nakamura", nil)
	_ = json.Unmarshal(w.Body.Bytes(), &res)
	if res.Total != 1 || !strings.Contains(res.Items[0].Name, "Nakamura") {
		t.Fatalf("search failed: %+v", res)
	}
}

func TestLeadMoveEndpoint(t *testing.T) {
	r, st := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/leads/p1/stage", gin.H{"stage": "deposit", "by": "Sarah Johnson"})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var lead models.Lead
	if err := json.Unmarshal(w.Body.Bytes(), &lead); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if lead.Stage != models.StageDeposit {
		t.Fatalf("expected deposit, got %q", lead.Stage)
	}
	if lead.Interactions[0].Type != models.InteractionStageChange {
		t.Fatalf("move did not log a stage change: %+v", lead.Interactions[0])
	}

	stored, _ := st.GetLead(context.Background(), "p1")
	if stored.Stage != models.StageDeposit {
		t.Fatalf("move not persisted")
	}

	w = doJSON(t, r, http.MethodPost, "/api/leads/p1/stage", gin.H{"stage": "archived"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("unknown stage should be 400, got %d", w.Code)
	}
	w = doJSON(t, r, http.MethodPost, "/api/leads/nope/stage", gin.H{"stage": "deposit"})
	if w.Code != http.StatusNotFound {
		t.Fatalf("missing lead should be 404, got %d", w.Code)
	}
}

func TestLeadReorderEndpoint(t *testing.T) {
	r, _ := newTestRouter(t)
	w := doJSON(t, r, http.MethodPost, "/api/leads/p2/reorder", gin.H{"stage": "inquiry", "new_index": 0})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	list := doJSON(t, r, http.MethodGet, "/api/leads?stage=inquiry", nil)
	var res struct {
		Items []models.Lead `json:"items"`
	}
	_ = json.Unmarshal(list.Body.Bytes(), &res)
	if res.Items[0].ID != "p2" {
		t.Fatalf("expected p2 first in inquiry, got %s", res.Items[0].ID)
	}
}

func TestInteractionAppendEndpoint(t *testing.T) {
	r, _ := newTestRouter(t)
	w := doJSON(t, r, http.MethodPost, "/api/leads/p1/interactions", gin.H{
		"type": "call", "title": "Pricing call", "by": "Sarah Johnson",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	var lead models.Lead
	_ = json.Unmarshal(w.Body.Bytes(), &lead)
	if lead.Interactions[0].Title != "Pricing call" {
		t.Fatalf("entry not prepended: %+v", lead.Interactions[0])
	}

	w = doJSON(t, r, http.MethodPost, "/api/leads/p1/interactions", gin.H{"type": "fax", "title": "x"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("unknown type should be 400, got %d", w.Code)
	}
}

func TestLeadFromSessionEndpoint(t *testing.T) {
	r, st := newTestRouter(t)
	w := doJSON(t, r, http.MethodPost, "/api/leads/from-session", gin.H{
		"form": gin.H{
			"first_name": "Rose",
			"last_name":  "Whitfield",
			"situation":  "Memory problems getting worse",
		},
		"recording": gin.H{"transcription": "Calling about my mother's memory."},
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	var lead models.Lead
	if err := json.Unmarshal(w.Body.Bytes(), &lead); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if lead.Stage != models.StageInquiry || lead.CareLevel != models.CareMemoryCare {
		t.Fatalf("session mapping wrong: stage=%q care=%q", lead.Stage, lead.CareLevel)
	}
	if len(lead.IntakeNote.SituationSummary) == 0 {
		t.Fatalf("analysis should fill the intake note")
	}
	if _, err := st.GetLead(context.Background(), lead.ID); err != nil {
		t.Fatalf("lead not persisted: %v", err)
	}

	w = doJSON(t, r, http.MethodPost, "/api/leads/from-session", gin.H{"form": gin.H{"first_name": "OnlyFirst"}})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("missing last name should be 400, got %d", w.Code)
	}
}

func TestTemplatePreviewEndpoint(t *testing.T) {
	r, _ := newTestRouter(t)
	w := doJSON(t, r, http.MethodPost, "/api/templates/t1/preview", gin.H{"lead_id": "p1"})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var res struct {
		Subject string `json:"subject"`
		Body    string `json:"body"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &res)
	if !strings.Contains(res.Subject, "Margaret Ellison") {
		t.Fatalf("subject not personalized: %q", res.Subject)
	}
	if strings.Contains(res.Body, "{{contact_person}}") {
		t.Fatalf("merge tags left in body")
	}
}

func TestCampaignSendEndpoint(t *testing.T) {
	r, st := newTestRouter(t)

	// c3 is a scheduled fixture campaign.
	w := doJSON(t, r, http.MethodPost, "/api/campaigns/c3/send", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var res struct {
		Campaign models.Campaign     `json:"campaign"`
		Result   followup.SendResult `json:"result"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if res.Campaign.Status != models.CampaignSent {
		t.Fatalf("campaign not marked sent: %+v", res.Campaign)
	}
	if res.Campaign.OpenRate < 60 || res.Campaign.OpenRate > 89 {
		t.Fatalf("open rate out of range: %d", res.Campaign.OpenRate)
	}
	stored, _ := st.GetCampaign(context.Background(), "c3")
	if stored.Status != models.CampaignSent {
		t.Fatalf("send not persisted")
	}

	w = doJSON(t, r, http.MethodPost, "/api/campaigns/c3/send", nil)
	if w.Code != http.StatusConflict {
		t.Fatalf("second send should be 409, got %d", w.Code)
	}
	w = doJSON(t, r, http.MethodPost, "/api/campaigns/c1/send", nil)
	if w.Code != http.StatusConflict {
		t.Fatalf("fixture sent campaign should be 409, got %d", w.Code)
	}
}

func TestChatStreamsSSE(t *testing.T) {
	r, _ := newTestRouter(t)
	w := doJSON(t, r, http.MethodPost, "/api/chat", gin.H{
		"messages": []gin.H{{"role": "user", "content": "who should I call today?"}},
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); ct != "text/event-stream" {
		t.Fatalf("expected event stream, got %q", ct)
	}
	body := w.Body.String()
	if !strings.Contains(body, "data: ") || !strings.Contains(body, "[DONE]") {
		t.Fatalf("not an SSE stream: %q", body)
	}
}

func TestAnalyzeEndpoint(t *testing.T) {
	r, _ := newTestRouter(t)
	w := doJSON(t, r, http.MethodPost, "/api/analyze", gin.H{
		"transcription": "We talked about pricing and mom's gardening.",
		"context":       gin.H{"first_name": "Karen", "last_name": "Ellison"},
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var a ai.Analysis
	_ = json.Unmarshal(w.Body.Bytes(), &a)
	if len(a.KeyPoints) == 0 || a.Provider != "mock" {
		t.Fatalf("unexpected analysis %+v", a)
	}

	w = doJSON(t, r, http.MethodPost, "/api/analyze", gin.H{})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("missing transcription should be 400, got %d", w.Code)
	}
}

func TestAnalyzeNoteEndpoint(t *testing.T) {
	r, _ := newTestRouter(t)
	w := doJSON(t, r, http.MethodPost, "/api/analyze-note", gin.H{
		"transcription": "Called Karen, she wants a second tour next week.",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var entry ai.NoteEntry
	_ = json.Unmarshal(w.Body.Bytes(), &entry)
	if entry.Title == "" || ai.ClampNoteType(entry.Type) != entry.Type {
		t.Fatalf("unexpected note entry %+v", entry)
	}
}

func TestTranscribeEndpoint(t *testing.T) {
	r, _ := newTestRouter(t)

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("audio", "clip.webm")
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := part.Write([]byte("fake audio bytes")); err != nil {
		t.Fatalf("write content: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	req, _ := http.NewRequest(http.MethodPost, "/api/transcribe", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var res speech.Result
	_ = json.Unmarshal(w.Body.Bytes(), &res)
	if res.Provider != "mock" || res.Transcription == "" {
		t.Fatalf("unexpected result %+v", res)
	}

	w = doJSON(t, r, http.MethodPost, "/api/transcribe", gin.H{"transcription": "already transcribed"})
	if w.Code != http.StatusOK {
		t.Fatalf("json passthrough should be 200, got %d", w.Code)
	}
	_ = json.Unmarshal(w.Body.Bytes(), &res)
	if res.Provider != "passthrough" || res.Transcription != "already transcribed" {
		t.Fatalf("unexpected passthrough result %+v", res)
	}

	w = doJSON(t, r, http.MethodPost, "/api/transcribe", nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("missing payload should be 400, got %d", w.Code)
	}
}
