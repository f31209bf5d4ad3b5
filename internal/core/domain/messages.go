package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	FilesExchange    = "files"
	FileProcessQueue = "files.process"

	RoutingKeyFileShared    = "file.shared"
	RoutingKeyFileProcessed = "file.processed"
)

// FileSharedMessage is the broker-relayed form of a file-share notification,
// published by the automation broker integration instead of the HTTP webhook.
type FileSharedMessage struct {
	FileID    string `json:"file_id"`
	URL       string `json:"url" validate:"required"`
	Name      string `json:"name"`
	FileType  string `json:"file_type"`
	MimeType  string `json:"mime_type"`
	UserID    string `json:"user_id" validate:"required"`
	ChannelID string `json:"channel_id" validate:"required"`
	Timestamp string `json:"timestamp"`
}

// Event converts the message into the immutable pipeline input.
func (m FileSharedMessage) Event() FileEvent {
	return FileEvent{
		FileID:    m.FileID,
		URL:       m.URL,
		Name:      m.Name,
		FileType:  m.FileType,
		MimeType:  m.MimeType,
		UserID:    m.UserID,
		ChannelID: m.ChannelID,
		Timestamp: m.Timestamp,
	}
}

// FileProcessedMessage announces a terminal pipeline outcome on the broker.
type FileProcessedMessage struct {
	EventID     uuid.UUID        `json:"event_id"`
	Fingerprint Fingerprint      `json:"fingerprint"`
	FileName    string           `json:"file_name"`
	Status      ProcessingStatus `json:"status"`
	TicketID    string           `json:"ticket_id,omitempty"`
	Error       string           `json:"error,omitempty"`
	ProcessedAt time.Time        `json:"processed_at"`
}
