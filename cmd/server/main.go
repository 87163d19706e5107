package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/trilio-crm/backend/internal/ai"
	"github.com/trilio-crm/backend/internal/config"
	"github.com/trilio-crm/backend/internal/followup"
	httpapi "github.com/trilio-crm/backend/internal/http"
	"github.com/trilio-crm/backend/internal/speech"
	"github.com/trilio-crm/backend/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	zerolog.TimeFieldFormat = time.RFC3339
	level, _ := zerolog.ParseLevel(cfg.LogLevel)
	logger := log.Level(level).With().Str("service", "trilio-backend").Logger()

	ctx := context.Background()

	var st store.Store
	if cfg.DatabaseURL == "" {
		st = store.NewMemoryStore(true)
		logger.Info().Msg("using in-memory store with demo data")
	} else {
		pg, err := store.NewPostgresStore(ctx, cfg.DatabaseURL)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to connect db")
		}
		st = pg
	}
	defer st.Close()

	var aiClient ai.Client
	if cfg.AIProvider == "openai" {
		aiClient = ai.OpenAICompatClient{
			BaseURL:   cfg.AIBaseURL,
			Model:     cfg.AIModel,
			APIKey:    cfg.AIAPIKey,
			MaxTokens: cfg.AIMaxTokens,
		}
	} else {
		aiClient = ai.MockClient{ModelVersion: "mock-v1"}
		logger.Info().Msg("using mock AI client")
	}

	var transcriber speech.Transcriber
	if cfg.SpeechProvider == "whisper" {
		transcriber = speech.WhisperTranscriber{
			BaseURL: cfg.SpeechBaseURL,
			APIKey:  cfg.SpeechAPIKey,
			Model:   cfg.SpeechModel,
		}
	} else {
		transcriber = speech.MockTranscriber{}
		logger.Info().Msg("using mock transcriber")
	}

	var sender followup.Sender
	if cfg.SMTPHost == "" {
		sender = followup.LogSender{Logger: logger}
	} else {
		sender = followup.SMTPSender{
			Host: cfg.SMTPHost,
			Port: cfg.SMTPPort,
			User: cfg.SMTPUser,
			Pass: cfg.SMTPPass,
			From: cfg.SMTPFrom,
		}
	}

	router := httpapi.Router(cfg, st, aiClient, transcriber, sender, logger)

	// Bounds slow clients on the read side. Write timeouts stay off because
	// the chat endpoint streams server-sent events.
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadTimeout:       cfg.RequestTimeout,
		ReadHeaderTimeout: cfg.RequestTimeout,
	}

	go func() {
		logger.Info().Str("port", cfg.Port).Msg("server started")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctxShutdown)
	logger.Info().Msg("server stopped")
}
