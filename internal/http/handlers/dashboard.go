package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/trilio-crm/backend/internal/pipeline"
)

// @Summary Kanban board
// @Description Leads partitioned into the six stage buckets in display order.
// @Tags dashboard
// @Produce json
// @Success 200 {object} map[string]any
// @Router /api/board [get]
func (h *Handler) Board(c *gin.Context) {
	leads, err := h.Store.ListLeads(c.Request.Context())
	if err != nil {
		writeError(c, http.StatusInternalServerError, "STORE_ERROR", "Failed to list leads", err.Error())
		return
	}

	buckets := pipeline.GroupByStage(leads)
	columns := make([]gin.H, 0, len(pipeline.StageOrder))
	for _, stage := range pipeline.StageOrder {
		columns = append(columns, gin.H{
			"stage":    stage,
			"label":    pipeline.StageLabel(stage),
			"progress": pipeline.StageProgress(stage),
			"count":    len(buckets[stage]),
			"leads":    buckets[stage],
		})
	}
	c.JSON(http.StatusOK, gin.H{"columns": columns, "total": len(leads)})
}

// @Summary Dashboard metrics
// @Description Funnel counts and source breakdown. Funnel counts are
// @Description stage-local snapshots, not cohort pass-through counts.
// @Tags dashboard
// @Produce json
// @Success 200 {object} map[string]any
// @Router /api/dashboard [get]
func (h *Handler) Dashboard(c *gin.Context) {
	leads, err := h.Store.ListLeads(c.Request.Context())
	if err != nil {
		writeError(c, http.StatusInternalServerError, "STORE_ERROR", "Failed to list leads", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"funnel":      pipeline.FunnelCounts(leads),
		"sources":     pipeline.SourceBreakdown(leads),
		"total_leads": len(leads),
	})
}
