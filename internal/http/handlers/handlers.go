package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/trilio-crm/backend/internal/ai"
	"github.com/trilio-crm/backend/internal/followup"
	"github.com/trilio-crm/backend/internal/pipeline"
	"github.com/trilio-crm/backend/internal/speech"
	"github.com/trilio-crm/backend/internal/store"
)

type Handler struct {
	Store     store.Store
	Pipeline  *pipeline.Service
	AI        ai.Client
	Speech    speech.Transcriber
	Campaigns followup.CampaignService
	Validator *validator.Validate
	Logger    zerolog.Logger
	AdminKey  string
}

func (h *Handler) Healthz(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()
	if err := h.Store.Ping(ctx); err != nil {
		writeError(c, http.StatusServiceUnavailable, "STORE_UNAVAILABLE", "Store unavailable", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// @Summary Reset demo data
// @Tags admin
// @Produce json
// @Success 200 {object} map[string]any
// @Router /api/admin/reset [post]
func (h *Handler) Reset(c *gin.Context) {
	if err := h.Store.Reset(c.Request.Context()); err != nil {
		writeError(c, http.StatusInternalServerError, "STORE_ERROR", "Failed to reset fixtures", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func writeError(c *gin.Context, status int, code string, message string, details any) {
	c.JSON(status, gin.H{
		"error": gin.H{
			"code":    code,
			"message": message,
			"details": details,
		},
	})
}

// writeStoreError maps store errors onto the envelope, turning missing rows
// into 404s.
func writeStoreError(c *gin.Context, err error, entity string) {
	if errors.Is(err, store.ErrNotFound) {
		writeError(c, http.StatusNotFound, "NOT_FOUND", entity+" not found", nil)
		return
	}
	writeError(c, http.StatusInternalServerError, "STORE_ERROR", "Failed to load "+entity, err.Error())
}
