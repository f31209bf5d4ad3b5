package port

import (
	"context"

	"stoik.com/voicedesk/internal/core/domain"
)

// FileSource is the chat-platform file API.
type FileSource interface {
	// FileInfo resolves a file id into its metadata, including the
	// authenticated download URL.
	FileInfo(ctx context.Context, fileID string) (*domain.RemoteFile, error)

	// Fetch downloads a remote payload and returns its bytes together with
	// the declared content type.
	Fetch(ctx context.Context, url string) ([]byte, string, error)

	// CanvasInfo retrieves the block document of a canvas file.
	CanvasInfo(ctx context.Context, canvasID string) (*domain.CanvasDocument, error)
}

// Transcriber turns an audio file on disk into text. The provider protocol
// (synchronous, upload-then-poll, multipart) is fixed at construction time.
type Transcriber interface {
	Transcribe(ctx context.Context, path string) (domain.TranscriptionResult, error)
}

// AudioNormalizer converts a payload into the container format the
// transcription provider expects. Implementations fall back to the original
// path when conversion is not possible.
type AudioNormalizer interface {
	Normalize(ctx context.Context, path string) (string, error)
}

// Helpdesk upserts tickets against the external helpdesk API.
type Helpdesk interface {
	Upsert(ctx context.Context, req domain.TicketRequest) (*domain.Ticket, error)
}

// FeedbackNotifier posts a confirmation back into the originating thread.
// Failures are logged by callers, never propagated as pipeline failures.
type FeedbackNotifier interface {
	PostFeedback(ctx context.Context, channelID, threadTS, text string) error
}

// EventNotifier publishes terminal pipeline outcomes to the broker.
type EventNotifier interface {
	FileProcessed(ctx context.Context, msg *domain.FileProcessedMessage) error
}
