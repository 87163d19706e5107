package httpapi

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/trilio-crm/backend/internal/ai"
	"github.com/trilio-crm/backend/internal/config"
	"github.com/trilio-crm/backend/internal/followup"
	"github.com/trilio-crm/backend/internal/http/handlers"
	"github.com/trilio-crm/backend/internal/http/middleware"
	"github.com/trilio-crm/backend/internal/pipeline"
	"github.com/trilio-crm/backend/internal/speech"
	"github.com/trilio-crm/backend/internal/store"

	_ "github.com/trilio-crm/backend/docs"
)

func Router(cfg config.Config, st store.Store, aiClient ai.Client, transcriber speech.Transcriber, sender followup.Sender, logger zerolog.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.MaxMultipartMemory = cfg.MaxUploadSizeMB << 20

	corsCfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Admin-Key", "X-Request-Id"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if cfg.CORSAllowed == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = []string{cfg.CORSAllowed}
	}
	r.Use(cors.New(corsCfg))

	h := &handlers.Handler{
		Store:     st,
		Pipeline:  &pipeline.Service{Store: st, Logger: logger, Now: time.Now},
		AI:        aiClient,
		Speech:    transcriber,
		Campaigns: followup.CampaignService{Sender: sender, Logger: logger},
		Validator: validator.New(),
		Logger:    logger,
		AdminKey:  cfg.AdminKey,
	}

	r.GET("/healthz", h.Healthz)

	api := r.Group("/api")
	{
		api.GET("/leads", h.LeadsList)
		api.POST("/leads", h.LeadCreate)
		api.GET("/leads/:id", h.LeadDetails)
		api.POST("/leads/:id/stage", h.LeadMove)
		api.POST("/leads/:id/reorder", h.LeadReorder)
		api.GET("/leads/:id/interactions", h.InteractionsList)
		api.POST("/leads/:id/interactions", h.InteractionAppend)
		api.POST("/leads/:id/notes/record", h.RecordNote)
		api.POST("/leads/from-session", h.LeadFromSession)

		api.GET("/board", h.Board)
		api.GET("/dashboard", h.Dashboard)

		api.GET("/templates", h.TemplatesList)
		api.POST("/templates", h.TemplateCreate)
		api.POST("/templates/:id/preview", h.TemplatePreview)
		api.GET("/campaigns", h.CampaignsList)
		api.POST("/campaigns", h.CampaignCreate)

		api.POST("/chat", h.Chat)
		api.POST("/analyze", h.Analyze)
		api.POST("/analyze-note", h.AnalyzeNote)
		api.POST("/transcribe", h.Transcribe)
	}

	admin := api.Group("")
	admin.Use(middleware.AdminKey(cfg.AdminKey))
	{
		admin.POST("/campaigns/:id/send", h.CampaignSend)
		admin.POST("/admin/reset", h.Reset)
	}

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}
