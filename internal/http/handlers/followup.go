package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/trilio-crm/backend/internal/followup"
	"github.com/trilio-crm/backend/internal/models"
)

func (h *Handler) TemplatesList(c *gin.Context) {
	items, err := h.Store.ListTemplates(c.Request.Context())
	if err != nil {
		writeError(c, http.StatusInternalServerError, "STORE_ERROR", "Failed to list templates", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

type CreateTemplateRequest struct {
	Name    string `json:"name" validate:"required"`
	Subject string `json:"subject" validate:"required"`
	Body    string `json:"body" validate:"required"`
}

// @Summary Create a follow-up template
// @Tags followup
// @Accept json
// @Produce json
// @Success 201 {object} models.Template
// @Router /api/templates [post]
func (h *Handler) TemplateCreate(c *gin.Context) {
	var req CreateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid payload", err.Error())
		return
	}
	if err := h.Validator.Struct(req); err != nil {
		writeError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Validation failed", err.Error())
		return
	}

	t := models.Template{
		ID:        uuid.NewString(),
		Name:      req.Name,
		Subject:   req.Subject,
		Body:      req.Body,
		CreatedAt: time.Now().UTC(),
	}
	if err := h.Store.InsertTemplate(c.Request.Context(), t); err != nil {
		writeError(c, http.StatusInternalServerError, "STORE_ERROR", "Failed to create template", err.Error())
		return
	}
	c.JSON(http.StatusCreated, t)
}

type PreviewRequest struct {
	LeadID string `json:"lead_id" validate:"required"`
}

// @Summary Personalized template preview for one lead
// @Tags followup
// @Accept json
// @Produce json
// @Success 200 {object} map[string]any
// @Router /api/templates/{id}/preview [post]
func (h *Handler) TemplatePreview(c *gin.Context) {
	var req PreviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid payload", err.Error())
		return
	}
	if err := h.Validator.Struct(req); err != nil {
		writeError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Validation failed", err.Error())
		return
	}

	t, err := h.Store.GetTemplate(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeStoreError(c, err, "Template")
		return
	}
	lead, err := h.Store.GetLead(c.Request.Context(), req.LeadID)
	if err != nil {
		writeStoreError(c, err, "Lead")
		return
	}

	subject, body := followup.Render(t, lead)
	c.JSON(http.StatusOK, gin.H{"subject": subject, "body": body, "lead_id": lead.ID})
}

func (h *Handler) CampaignsList(c *gin.Context) {
	items, err := h.Store.ListCampaigns(c.Request.Context())
	if err != nil {
		writeError(c, http.StatusInternalServerError, "STORE_ERROR", "Failed to list campaigns", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

type CreateCampaignRequest struct {
	Name        string   `json:"name" validate:"required"`
	TemplateID  string   `json:"template_id" validate:"required"`
	Recipients  []string `json:"recipients" validate:"required,min=1"`
	ScheduledAt string   `json:"scheduled_at"`
}

// @Summary Create a campaign
// @Tags followup
// @Accept json
// @Produce json
// @Success 201 {object} models.Campaign
// @Router /api/campaigns [post]
func (h *Handler) CampaignCreate(c *gin.Context) {
	var req CreateCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid payload", err.Error())
		return
	}
	if err := h.Validator.Struct(req); err != nil {
		writeError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Validation failed", err.Error())
		return
	}
	if _, err := h.Store.GetTemplate(c.Request.Context(), req.TemplateID); err != nil {
		writeStoreError(c, err, "Template")
		return
	}
	for _, id := range req.Recipients {
		if _, err := h.Store.GetLead(c.Request.Context(), id); err != nil {
			writeStoreError(c, err, "Lead "+id)
			return
		}
	}

	campaign := models.Campaign{
		ID:         uuid.NewString(),
		Name:       req.Name,
		TemplateID: req.TemplateID,
		Recipients: req.Recipients,
		Status:     models.CampaignDraft,
	}
	if req.ScheduledAt != "" {
		campaign.Status = models.CampaignScheduled
		campaign.ScheduledAt = req.ScheduledAt
	}
	if err := h.Store.InsertCampaign(c.Request.Context(), campaign); err != nil {
		writeError(c, http.StatusInternalServerError, "STORE_ERROR", "Failed to create campaign", err.Error())
		return
	}
	c.JSON(http.StatusCreated, campaign)
}

// @Summary Send a campaign
// @Description Renders the template per recipient, delivers it, and stamps
// @Description synthesized open/click rates.
// @Tags followup
// @Produce json
// @Success 200 {object} map[string]any
// @Failure 409 {object} map[string]any
// @Router /api/campaigns/{id}/send [post]
func (h *Handler) CampaignSend(c *gin.Context) {
	ctx := c.Request.Context()
	campaign, err := h.Store.GetCampaign(ctx, c.Param("id"))
	if err != nil {
		writeStoreError(c, err, "Campaign")
		return
	}
	if campaign.Status == models.CampaignSent {
		writeError(c, http.StatusConflict, "ALREADY_SENT", "Campaign already sent", nil)
		return
	}
	template, err := h.Store.GetTemplate(ctx, campaign.TemplateID)
	if err != nil {
		writeStoreError(c, err, "Template")
		return
	}

	recipients := make([]models.Lead, 0, len(campaign.Recipients))
	for _, id := range campaign.Recipients {
		lead, err := h.Store.GetLead(ctx, id)
		if err != nil {
			writeStoreError(c, err, "Lead "+id)
			return
		}
		recipients = append(recipients, lead)
	}

	result, err := h.Campaigns.Send(&campaign, template, recipients, time.Now().UTC())
	if err != nil {
		writeError(c, http.StatusBadGateway, "SEND_ERROR", "Campaign delivery failed", err.Error())
		return
	}
	if err := h.Store.UpdateCampaign(ctx, campaign); err != nil {
		writeError(c, http.StatusInternalServerError, "STORE_ERROR", "Failed to persist campaign", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"campaign": campaign, "result": result})
}
