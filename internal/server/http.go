package server

import (
	"context"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"

	"stoik.com/voicedesk/internal/core/domain"
	"stoik.com/voicedesk/internal/core/port"
	"stoik.com/voicedesk/internal/handler"
)

type HTTPServer struct {
	echo     *echo.Echo
	pipeline port.Pipeline
	store    port.DedupStore
	services map[string]bool
}

type FileStatusResponse struct {
	Fingerprint  domain.Fingerprint      `json:"fingerprint"`
	FileName     string                  `json:"file_name"`
	Status       domain.ProcessingStatus `json:"status"`
	TicketID     string                  `json:"ticket_id,omitempty"`
	ErrorSummary string                  `json:"error_summary,omitempty"`
}

// NewHTTPServer wires the API routes. The services map reports which external
// integrations are configured and is echoed back by the health endpoint.
func NewHTTPServer(
	pipeline port.Pipeline,
	store port.DedupStore,
	validate *validator.Validate,
	services map[string]bool,
) *HTTPServer {
	e := echo.New()
	e.HideBanner = true

	// Middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())

	server := &HTTPServer{
		echo:     e,
		pipeline: pipeline,
		store:    store,
		services: services,
	}

	// Initialize handlers
	webhookHandler := handler.NewWebhookHTTPHandler(pipeline, validate)

	// Routes
	e.GET("/health", server.healthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.POST("/api/v1/files/webhook", webhookHandler.Handle())
	e.GET("/api/v1/files/:fingerprint", server.fileStatus)

	return server
}

func (s *HTTPServer) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"status":   "ok",
		"service":  "voicedesk",
		"services": s.services,
	})
}

func (s *HTTPServer) fileStatus(c echo.Context) error {
	fp := domain.Fingerprint(c.Param("fingerprint"))

	record, err := s.store.GetRecord(c.Request().Context(), fp)
	if err != nil {
		log.WithError(err).WithField("fingerprint", fp).Error("Failed to look up processing record")
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "Failed to look up processing record",
		})
	}
	if record == nil {
		return c.JSON(http.StatusNotFound, map[string]string{
			"error": "No record for fingerprint",
		})
	}

	return c.JSON(http.StatusOK, FileStatusResponse{
		Fingerprint:  record.Fingerprint,
		FileName:     record.FileName,
		Status:       record.Status,
		TicketID:     record.TicketID,
		ErrorSummary: record.ErrorSummary,
	})
}

func (s *HTTPServer) Start(address string) error {
	log.Infof("Starting HTTP server on %s", address)
	return s.echo.Start(address)
}

func (s *HTTPServer) Shutdown(ctx context.Context) error {
	log.Info("Shutting down HTTP server")
	return s.echo.Shutdown(ctx)
}
