package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/trilio-crm/backend/internal/ai"
	"github.com/trilio-crm/backend/internal/intake"
	"github.com/trilio-crm/backend/internal/models"
	"github.com/trilio-crm/backend/internal/pipeline"
)

// @Summary List leads
// @Tags leads
// @Produce json
// @Param stage query string false "Pipeline stage"
// @Param source query string false "Lead source"
// @Param care_level query string false "Care level"
// @Param sales_rep query string false "Sales rep"
// @Param q query string false "Name/contact search"
// @Success 200 {object} map[string]any
// @Router /api/leads [get]
func (h *Handler) LeadsList(c *gin.Context) {
	leads, err := h.Store.ListLeads(c.Request.Context())
	if err != nil {
		writeError(c, http.StatusInternalServerError, "STORE_ERROR", "Failed to list leads", err.Error())
		return
	}

	filters := pipeline.Filters{
		Stage:     models.Stage(strings.TrimSpace(c.Query("stage"))),
		Source:    models.Source(strings.TrimSpace(c.Query("source"))),
		CareLevel: models.CareLevel(strings.TrimSpace(c.Query("care_level"))),
		SalesRep:  strings.TrimSpace(c.Query("sales_rep")),
	}
	leads = pipeline.FilterLeads(leads, filters)

	if q := strings.ToLower(strings.TrimSpace(c.Query("q"))); q != "" {
		matched := leads[:0]
		for _, l := range leads {
			if strings.Contains(strings.ToLower(l.Name), q) || strings.Contains(strings.ToLower(l.ContactPerson), q) {
				matched = append(matched, l)
			}
		}
		leads = matched
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	total := len(leads)
	if offset > total {
		offset = total
	}
	end := offset + limit
	if end > total {
		end = total
	}

	c.JSON(http.StatusOK, gin.H{"items": leads[offset:end], "total": total, "limit": limit, "offset": offset})
}

func (h *Handler) LeadDetails(c *gin.Context) {
	lead, err := h.Store.GetLead(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeStoreError(c, err, "Lead")
		return
	}
	lead.Interactions = pipeline.SortNewestFirst(lead.Interactions)
	c.JSON(http.StatusOK, gin.H{
		"lead":     lead,
		"progress": pipeline.StageProgress(lead.Stage),
	})
}

type CreateLeadRequest struct {
	Name            string            `json:"name" validate:"required"`
	ContactPerson   string            `json:"contact_person" validate:"required"`
	ContactRelation string            `json:"contact_relation"`
	ContactPhone    string            `json:"contact_phone"`
	ContactEmail    string            `json:"contact_email" validate:"omitempty,email"`
	CareLevel       models.CareLevel  `json:"care_level" validate:"required"`
	Source          models.Source     `json:"source" validate:"required"`
	Facility        string            `json:"facility"`
	SalesRep        string            `json:"sales_rep"`
	IntakeNote      models.IntakeNote `json:"intake_note"`
}

// @Summary Create a lead manually
// @Tags leads
// @Accept json
// @Produce json
// @Success 201 {object} models.Lead
// @Failure 400 {object} map[string]any
// @Router /api/leads [post]
func (h *Handler) LeadCreate(c *gin.Context) {
	var req CreateLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid payload", err.Error())
		return
	}
	if err := h.Validator.Struct(req); err != nil {
		writeError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Validation failed", err.Error())
		return
	}
	if !pipeline.ValidCareLevel(req.CareLevel) {
		writeError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Unknown care level", string(req.CareLevel))
		return
	}
	if !pipeline.ValidSource(req.Source) {
		writeError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Unknown source", string(req.Source))
		return
	}

	now := time.Now().UTC()
	dateStr := now.Format("2006-01-02")
	lead := models.Lead{
		ID:              uuid.NewString(),
		Name:            req.Name,
		ContactPerson:   req.ContactPerson,
		ContactRelation: req.ContactRelation,
		ContactPhone:    req.ContactPhone,
		ContactEmail:    req.ContactEmail,
		CareLevel:       req.CareLevel,
		Source:          req.Source,
		Stage:           models.StageInquiry,
		Facility:        req.Facility,
		SalesRep:        req.SalesRep,
		InquiryDate:     dateStr,
		InitialContact:  dateStr,
		LastContactDate: dateStr,
		IntakeNote:      req.IntakeNote,
		Interactions: []models.InteractionEntry{{
			ID:          uuid.NewString(),
			Date:        now,
			Type:        models.InteractionNote,
			Title:       "Inquiry received",
			Description: "New inquiry from " + req.ContactPerson + " via " + strings.ToLower(string(req.Source)) + ".",
			By:          "System",
		}},
	}

	if err := h.Store.InsertLead(c.Request.Context(), lead); err != nil {
		writeError(c, http.StatusInternalServerError, "STORE_ERROR", "Failed to create lead", err.Error())
		return
	}
	c.JSON(http.StatusCreated, lead)
}

type MoveLeadRequest struct {
	Stage string `json:"stage" validate:"required"`
	By    string `json:"by"`
}

// @Summary Move a lead to another stage
// @Tags leads
// @Accept json
// @Produce json
// @Success 200 {object} models.Lead
// @Failure 400 {object} map[string]any
// @Router /api/leads/{id}/stage [post]
func (h *Handler) LeadMove(c *gin.Context) {
	var req MoveLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid payload", err.Error())
		return
	}
	if err := h.Validator.Struct(req); err != nil {
		writeError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Validation failed", err.Error())
		return
	}
	target, err := pipeline.ParseStage(req.Stage)
	if err != nil {
		writeError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Unknown stage", req.Stage)
		return
	}

	lead, err := h.Pipeline.MoveLead(c.Request.Context(), c.Param("id"), target, req.By)
	if err != nil {
		writeStoreError(c, err, "Lead")
		return
	}
	c.JSON(http.StatusOK, lead)
}

type ReorderRequest struct {
	Stage    string `json:"stage" validate:"required"`
	NewIndex int    `json:"new_index"`
}

// @Summary Reorder a lead within its kanban column
// @Tags leads
// @Accept json
// @Produce json
// @Success 200 {object} map[string]any
// @Router /api/leads/{id}/reorder [post]
func (h *Handler) LeadReorder(c *gin.Context) {
	var req ReorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid payload", err.Error())
		return
	}
	stage, err := pipeline.ParseStage(req.Stage)
	if err != nil {
		writeError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Unknown stage", req.Stage)
		return
	}

	if err := h.Pipeline.ReorderWithinStage(c.Request.Context(), c.Param("id"), stage, req.NewIndex); err != nil {
		writeStoreError(c, err, "Lead")
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) InteractionsList(c *gin.Context) {
	lead, err := h.Store.GetLead(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeStoreError(c, err, "Lead")
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": pipeline.SortNewestFirst(lead.Interactions)})
}

type AppendInteractionRequest struct {
	Type        string `json:"type" validate:"required"`
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	By          string `json:"by"`
}

// @Summary Append an interaction to a lead's journal
// @Tags leads
// @Accept json
// @Produce json
// @Success 201 {object} models.Lead
// @Router /api/leads/{id}/interactions [post]
func (h *Handler) InteractionAppend(c *gin.Context) {
	var req AppendInteractionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid payload", err.Error())
		return
	}
	if err := h.Validator.Struct(req); err != nil {
		writeError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Validation failed", err.Error())
		return
	}

	entry := models.InteractionEntry{
		Type:        models.InteractionType(req.Type),
		Title:       req.Title,
		Description: req.Description,
		By:          req.By,
	}
	if !pipeline.ValidInteractionType(entry.Type) {
		writeError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Unknown interaction type", req.Type)
		return
	}

	lead, err := h.Pipeline.AppendInteraction(c.Request.Context(), c.Param("id"), entry)
	if err != nil {
		writeStoreError(c, err, "Lead")
		return
	}
	c.JSON(http.StatusCreated, lead)
}

type SessionRequest struct {
	Form      intake.SessionForm       `json:"form" validate:"required"`
	Recording *intake.SessionRecording `json:"recording"`
	Summary   *intake.SessionSummary   `json:"summary"`
}

// @Summary Create a lead from a completed intake session
// @Description Runs transcript analysis when no summary was supplied.
// @Tags leads
// @Accept json
// @Produce json
// @Success 201 {object} models.Lead
// @Router /api/leads/from-session [post]
func (h *Handler) LeadFromSession(c *gin.Context) {
	var req SessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid payload", err.Error())
		return
	}
	if err := h.Validator.Struct(req.Form); err != nil {
		writeError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Validation failed", err.Error())
		return
	}

	var summary intake.SessionSummary
	if req.Summary != nil {
		summary = *req.Summary
	} else if req.Recording != nil && req.Recording.Transcription != "" {
		analysis, err := h.AI.AnalyzeTranscript(c.Request.Context(), req.Recording.Transcription, ai.SessionContext{
			FirstName: req.Form.FirstName,
			LastName:  req.Form.LastName,
			Situation: req.Form.Situation,
			Email:     req.Form.Email,
			Phone:     req.Form.Phone,
		})
		if err != nil {
			// The adapter contract is to always produce a lead; a failed
			// analysis falls through to placeholder text.
			h.Logger.Warn().Err(err).Msg("transcript analysis failed, using placeholders")
		} else {
			summary = intake.SessionSummary{
				KeyPoints:   analysis.KeyPoints,
				Concerns:    analysis.Concerns,
				SmallThings: analysis.SmallThings,
			}
		}
	}

	lead := intake.CreateLeadFromSession(uuid.NewString(), req.Form, req.Recording, summary, time.Now().UTC())
	if err := h.Store.InsertLead(c.Request.Context(), lead); err != nil {
		writeError(c, http.StatusInternalServerError, "STORE_ERROR", "Failed to create lead", err.Error())
		return
	}
	c.JSON(http.StatusCreated, lead)
}
