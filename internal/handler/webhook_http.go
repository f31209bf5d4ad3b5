package handler

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	log "github.com/sirupsen/logrus"

	"stoik.com/voicedesk/internal/core/domain"
	"stoik.com/voicedesk/internal/core/port"
)

type WebhookHTTPHandler struct {
	pipeline port.Pipeline
	validate *validator.Validate
}

type WebhookFileInfo struct {
	ID         string `json:"id"`
	URLPrivate string `json:"url_private" validate:"required"`
	Name       string `json:"name"`
	Filetype   string `json:"filetype"`
	Mimetype   string `json:"mimetype"`
}

type WebhookRequest struct {
	FileInfo  WebhookFileInfo `json:"file_info" validate:"required"`
	UserID    string          `json:"user_id" validate:"required"`
	ChannelID string          `json:"channel_id" validate:"required"`
	Timestamp string          `json:"timestamp"`
}

type WebhookResponse struct {
	Message     string                  `json:"message"`
	Fingerprint domain.Fingerprint      `json:"fingerprint"`
	Duplicate   bool                    `json:"duplicate,omitempty"`
	Status      domain.ProcessingStatus `json:"status,omitempty"`
	TicketID    string                  `json:"ticket_id,omitempty"`
}

func NewWebhookHTTPHandler(pipeline port.Pipeline, validate *validator.Validate) *WebhookHTTPHandler {
	return &WebhookHTTPHandler{
		pipeline: pipeline,
		validate: validate,
	}
}

func (h *WebhookHTTPHandler) Handle() echo.HandlerFunc {
	return func(c echo.Context) error {
		var req WebhookRequest

		if err := c.Bind(&req); err != nil {
			log.WithError(err).Error("Failed to bind webhook request")
			return c.JSON(http.StatusBadRequest, map[string]string{
				"error": "Invalid request payload",
			})
		}

		if err := h.validate.Struct(req); err != nil {
			log.WithError(err).Error("Webhook request validation failed")
			return c.JSON(http.StatusBadRequest, map[string]string{
				"error": err.Error(),
			})
		}

		event := domain.FileEvent{
			FileID:    req.FileInfo.ID,
			URL:       req.FileInfo.URLPrivate,
			Name:      req.FileInfo.Name,
			FileType:  req.FileInfo.Filetype,
			MimeType:  req.FileInfo.Mimetype,
			UserID:    req.UserID,
			ChannelID: req.ChannelID,
			Timestamp: req.Timestamp,
		}

		duplicate, existing, err := h.pipeline.Submit(c.Request().Context(), event)
		if err != nil {
			log.WithError(err).WithField("url", event.URL).Error("Failed to submit file event")
			return c.JSON(http.StatusInternalServerError, map[string]string{
				"error": "Failed to submit file for processing",
			})
		}

		if duplicate {
			return c.JSON(http.StatusOK, WebhookResponse{
				Message:     "File already processed",
				Fingerprint: existing.Fingerprint,
				Duplicate:   true,
				Status:      existing.Status,
				TicketID:    existing.TicketID,
			})
		}

		return c.JSON(http.StatusAccepted, WebhookResponse{
			Message:     "File accepted for processing",
			Fingerprint: event.Fingerprint(),
		})
	}
}
