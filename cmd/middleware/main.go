package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	log "github.com/sirupsen/logrus"

	"stoik.com/voicedesk/internal/audio"
	"stoik.com/voicedesk/internal/client"
	"stoik.com/voicedesk/internal/config"
	"stoik.com/voicedesk/internal/core/domain"
	"stoik.com/voicedesk/internal/core/port"
	"stoik.com/voicedesk/internal/core/service"
	"stoik.com/voicedesk/internal/handler"
	"stoik.com/voicedesk/internal/infrastructure/amqp"
	"stoik.com/voicedesk/internal/server"
	"stoik.com/voicedesk/internal/storage"
	"stoik.com/voicedesk/internal/transcribe"
)

func main() {
	// Initialize logger
	log.SetFormatter(&log.JSONFormatter{})
	log.SetLevel(log.InfoLevel)

	cfg := config.Load()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Deduplication store: Postgres when configured, in-memory otherwise
	var store port.DedupStore
	if cfg.Database.Host != "" {
		db, err := storage.NewPostgresDB(ctx, cfg.Database.Host, cfg.Database.Port,
			cfg.Database.User, cfg.Database.Password, cfg.Database.Name)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer db.Close()
		store = storage.NewDedupStore(db, cfg.Pipeline.ReprocessFailed)
	} else {
		log.Warn("No database configured, using in-memory deduplication store")
		store = storage.NewMemoryDedupStore(cfg.Pipeline.ReprocessFailed)
	}

	// External clients
	slackClient := client.NewSlackClient(cfg.Slack.Token, cfg.Slack.BaseURL)

	tokens := client.NewOAuthManager(client.OAuthConfig{
		TokenURL:     cfg.Zoho.TokenURL,
		RefreshToken: cfg.Zoho.RefreshToken,
		ClientID:     cfg.Zoho.ClientID,
		ClientSecret: cfg.Zoho.ClientSecret,
	})
	zohoClient := client.NewZohoClient(client.ZohoConfig{
		BaseURL:      cfg.Zoho.BaseURL,
		OrgID:        cfg.Zoho.OrgID,
		DepartmentID: cfg.Zoho.DepartmentID,
	}, tokens)

	transcriber, err := transcribe.New(transcribe.Config{
		Provider:        cfg.Transcription.Provider,
		APIKey:          cfg.Transcription.APIKey,
		BaseURL:         cfg.Transcription.BaseURL,
		PollInterval:    cfg.Transcription.PollInterval,
		MaxPollAttempts: cfg.Transcription.MaxPollAttempts,
	})
	if err != nil {
		log.Fatalf("Failed to configure transcription provider: %v", err)
	}

	// AMQP leg: broker-relayed file shares in, processing outcomes out
	amqpClient, err := amqp.NewClient(cfg.AMQPURL)
	if err != nil {
		log.Fatalf("Failed to create AMQP client: %v", err)
	}
	defer amqpClient.Close()

	topologyManager := amqp.NewTopologyManager(amqpClient)
	if err := topologyManager.Setup(); err != nil {
		log.Fatalf("Failed to setup AMQP topology: %v", err)
	}

	publisher := amqp.NewPublisher(amqpClient)
	notifier := client.NewAMQPNotifier(publisher)

	pipeline := service.NewPipelineService(service.PipelineDeps{
		Store:      store,
		Source:     slackClient,
		Normalizer: audio.NewConverter(),
		Transcribe: transcriber,
		Helpdesk:   zohoClient,
		Feedback:   slackClient,
		Events:     notifier,
	}, cfg.Pipeline.Workers, cfg.Pipeline.QueueSize, cfg.Pipeline.EventTimeout)

	pipeline.Start(ctx)

	validate := validator.New()

	messageHandler := handler.NewAMQPConsumer(pipeline, validate)
	consumer := amqp.NewConsumer(amqpClient, messageHandler)
	if err := consumer.Consume(ctx, domain.FileProcessQueue); err != nil {
		log.Fatalf("Failed to start consumer: %v", err)
	}

	httpServer := server.NewHTTPServer(pipeline, store, validate, map[string]bool{
		"slack":         cfg.Slack.Token != "",
		"zoho":          cfg.Zoho.RefreshToken != "" && cfg.Zoho.ClientID != "",
		"transcription": cfg.Transcription.APIKey != "",
		"database":      cfg.Database.Host != "",
	})
	go func() {
		if err := httpServer.Start(cfg.HTTPAddr); err != nil {
			log.WithError(err).Info("HTTP server stopped")
		}
	}()

	log.Info("Voice transcription middleware started successfully")

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	log.Info("Shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("HTTP server shutdown failed")
	}

	// Stop the consumer before draining the worker pool
	cancel()
	pipeline.Stop(shutdownCtx)
}
