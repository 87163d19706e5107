package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/trilio-crm/backend/internal/ai"
	"github.com/trilio-crm/backend/internal/models"
	"github.com/trilio-crm/backend/internal/pipeline"
	"github.com/trilio-crm/backend/internal/speech"
)

type ChatRequest struct {
	Messages     []ai.ChatMessage `json:"messages" validate:"required,min=1"`
	LeadsContext []models.Lead    `json:"leadsContext"`
}

// @Summary Pipeline assistant chat
// @Description Streams the assistant reply as SSE text chunks. The current
// @Description lead collection is flattened into the system prompt.
// @Tags ai
// @Accept json
// @Produce text/event-stream
// @Router /api/chat [post]
func (h *Handler) Chat(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid payload", err.Error())
		return
	}
	if err := h.Validator.Struct(req); err != nil {
		writeError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Validation failed", err.Error())
		return
	}

	leads := req.LeadsContext
	if len(leads) == 0 {
		var err error
		leads, err = h.Store.ListLeads(c.Request.Context())
		if err != nil {
			writeError(c, http.StatusInternalServerError, "STORE_ERROR", "Failed to load leads context", err.Error())
			return
		}
	}
	contextJSON, _ := json.MarshalIndent(leadsContext(leads), "", "  ")
	system := fmt.Sprintf(`You are a helpful AI assistant for a senior living CRM system. You have access to the following leads data:

%s

Help the user with questions about their leads pipeline, provide insights, and suggest next steps. Be concise and helpful. When discussing leads, use their names and provide specific details from the data.`, contextJSON)

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")
	c.Writer.WriteHeader(http.StatusOK)
	c.Writer.Flush()

	streamErr := h.AI.Chat(c.Request.Context(), system, req.Messages, func(chunk string) error {
		encoded, err := json.Marshal(chunk)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(c.Writer, "data: %s\n\n", encoded); err != nil {
			return err
		}
		c.Writer.Flush()
		return nil
	})
	if streamErr != nil {
		// Headers are gone; surface the failure inside the stream.
		h.Logger.Error().Err(streamErr).Msg("chat stream failed")
		fmt.Fprintf(c.Writer, "event: error\ndata: %q\n\n", "assistant unavailable")
		c.Writer.Flush()
		return
	}
	fmt.Fprint(c.Writer, "data: [DONE]\n\n")
	c.Writer.Flush()
}

// leadsContext is the flattened projection handed to the assistant.
func leadsContext(leads []models.Lead) []gin.H {
	out := make([]gin.H, 0, len(leads))
	for _, l := range leads {
		out = append(out, gin.H{
			"name":          l.Name,
			"stage":         pipeline.StageLabel(l.Stage),
			"care_level":    l.CareLevel,
			"contact":       l.ContactPerson,
			"sales_rep":     l.SalesRep,
			"next_activity": l.NextActivity,
			"source":        l.Source,
		})
	}
	return out
}

type AnalyzeRequest struct {
	Transcription string            `json:"transcription" validate:"required"`
	Context       ai.SessionContext `json:"context"`
}

// @Summary Analyze a call transcript
// @Tags ai
// @Accept json
// @Produce json
// @Success 200 {object} ai.Analysis
// @Failure 502 {object} map[string]any
// @Router /api/analyze [post]
func (h *Handler) Analyze(c *gin.Context) {
	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid payload", err.Error())
		return
	}
	if err := h.Validator.Struct(req); err != nil {
		writeError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Validation failed", err.Error())
		return
	}

	analysis, err := h.AI.AnalyzeTranscript(c.Request.Context(), req.Transcription, req.Context)
	if err != nil {
		writeUpstreamError(c, err, "Failed to analyze transcription")
		return
	}
	c.JSON(http.StatusOK, analysis)
}

type AnalyzeNoteRequest struct {
	Transcription string `json:"transcription" validate:"required"`
}

// @Summary Classify a raw note into an activity log entry
// @Tags ai
// @Accept json
// @Produce json
// @Success 200 {object} ai.NoteEntry
// @Failure 502 {object} map[string]any
// @Router /api/analyze-note [post]
func (h *Handler) AnalyzeNote(c *gin.Context) {
	var req AnalyzeNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid payload", err.Error())
		return
	}
	if err := h.Validator.Struct(req); err != nil {
		writeError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Validation failed", err.Error())
		return
	}

	entry, err := h.AI.FormatNote(c.Request.Context(), req.Transcription)
	if err != nil {
		writeUpstreamError(c, err, "Failed to analyze note")
		return
	}
	c.JSON(http.StatusOK, entry)
}

type RecordNoteRequest struct {
	Transcription string `json:"transcription" validate:"required"`
	By            string `json:"by"`
}

// @Summary Record a spoken note against a lead
// @Description Classifies the raw note, then appends it to the journal.
// @Tags leads
// @Accept json
// @Produce json
// @Success 201 {object} models.Lead
// @Router /api/leads/{id}/notes/record [post]
func (h *Handler) RecordNote(c *gin.Context) {
	var req RecordNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid payload", err.Error())
		return
	}
	if err := h.Validator.Struct(req); err != nil {
		writeError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Validation failed", err.Error())
		return
	}

	note, err := h.AI.FormatNote(c.Request.Context(), req.Transcription)
	if err != nil {
		writeUpstreamError(c, err, "Failed to analyze note")
		return
	}

	entry := models.InteractionEntry{
		Type:        models.InteractionType(ai.ClampNoteType(note.Type)),
		Title:       note.Title,
		Description: note.Description,
		By:          req.By,
	}
	lead, err := h.Pipeline.AppendInteraction(c.Request.Context(), c.Param("id"), entry)
	if err != nil {
		writeStoreError(c, err, "Lead")
		return
	}
	c.JSON(http.StatusCreated, lead)
}

// @Summary Transcribe an audio recording
// @Tags ai
// @Accept multipart/form-data
// @Produce json
// @Param audio formData file true "audio recording"
// @Success 200 {object} speech.Result
// @Failure 502 {object} map[string]any
// @Router /api/transcribe [post]
func (h *Handler) Transcribe(c *gin.Context) {
	// Browser clients that already transcribed locally post JSON instead of
	// an audio part; that text passes straight through.
	if strings.HasPrefix(c.ContentType(), "application/json") {
		var req struct {
			Transcription string `json:"transcription" validate:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			writeError(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid payload", err.Error())
			return
		}
		if err := h.Validator.Struct(req); err != nil {
			writeError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Validation failed", err.Error())
			return
		}
		c.JSON(http.StatusOK, speech.Result{Transcription: req.Transcription, Confidence: 1.0, Provider: "passthrough"})
		return
	}

	file, err := c.FormFile("audio")
	if err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_REQUEST", "audio file required", nil)
		return
	}
	f, err := file.Open()
	if err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_REQUEST", "cannot read audio file", err.Error())
		return
	}
	defer f.Close()

	result, err := h.Speech.Transcribe(c.Request.Context(), f, file.Filename)
	if err != nil {
		writeError(c, http.StatusBadGateway, "SPEECH_ERROR", "Transcription failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, result)
}

// writeUpstreamError maps model-boundary failures: rate limits become 429,
// everything else a 502. No retry happens server-side; callers retry manually.
func writeUpstreamError(c *gin.Context, err error, message string) {
	var rle ai.RateLimitError
	if errors.As(err, &rle) {
		writeError(c, http.StatusTooManyRequests, "RATE_LIMITED", rle.Error(), nil)
		return
	}
	writeError(c, http.StatusBadGateway, "AI_ERROR", message, err.Error())
}
