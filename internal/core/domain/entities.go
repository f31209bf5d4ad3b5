package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"
)

// FileEvent is the immutable description of one shared file, built from the
// inbound webhook or broker payload and never mutated afterwards.
type FileEvent struct {
	FileID    string
	URL       string
	Name      string
	FileType  string
	MimeType  string
	UserID    string
	ChannelID string
	Timestamp string
}

// Fingerprint identifies a FileEvent for duplicate detection. It is computed
// from metadata only, so it is available before any download happens.
type Fingerprint string

// Fingerprint hashes (url, type, user, channel). Identical tuples always
// produce the same value.
func (e FileEvent) Fingerprint() Fingerprint {
	h := sha256.Sum256([]byte(e.URL + "|" + e.FileType + "|" + e.UserID + "|" + e.ChannelID))
	return Fingerprint(hex.EncodeToString(h[:]))
}

var canvasIndicators = []string{"canvas", "application/vnd.slack.canvas", "text/canvas"}

// IsCanvas reports whether the event refers to a canvas document rather than
// a plain audio file.
func (e FileEvent) IsCanvas() bool {
	if e.MimeType != "" {
		lower := strings.ToLower(e.MimeType)
		for _, indicator := range canvasIndicators {
			if strings.Contains(lower, indicator) {
				return true
			}
		}
		return false
	}
	return strings.EqualFold(e.FileType, "canvas")
}

type ProcessingStatus string

const (
	StatusProcessing ProcessingStatus = "processing"
	StatusCompleted  ProcessingStatus = "completed"
	StatusFailed     ProcessingStatus = "failed"
)

// ProcessingRecord is the persisted dedup entry for one fingerprint. Its
// creation with StatusProcessing is the linearization point that grants
// at-most-one ownership of the event; it transitions to a terminal status
// exactly once and is never deleted.
type ProcessingRecord struct {
	Fingerprint  Fingerprint
	FileName     string
	FileURL      string
	UserID       string
	ChannelID    string
	Status       ProcessingStatus
	TicketID     string
	ErrorSummary string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// RemoteFile is the metadata the chat platform reports for a file id.
type RemoteFile struct {
	ID          string
	Name        string
	MimeType    string
	DownloadURL string
	Size        int64
}

// CanvasDocument is the ordered block structure of a canvas file.
type CanvasDocument struct {
	CanvasID string
	Blocks   []CanvasBlock
}

type CanvasBlock struct {
	Type     string
	File     *CanvasFile
	Elements []CanvasElement
}

type CanvasFile struct {
	DownloadURL string
}

// CanvasElement is an inline element inside a rich_text block. Elements nest.
type CanvasElement struct {
	Type     string
	URL      string
	Elements []CanvasElement
}

// TranscriptionResult is the terminal outcome of transcribing one audio
// payload. Transcript is set iff Success; Err holds the provider detail
// otherwise.
type TranscriptionResult struct {
	Success    bool
	Transcript string
	Confidence float64
	Err        string
}

// ContactInfo carries whatever contact data was found in a transcript. Both
// fields may be empty.
type ContactInfo struct {
	Email string
	Phone string
}

// Ticket models only the helpdesk fields this service reads or writes.
type Ticket struct {
	ID           string
	Subject      string
	Status       string
	Priority     string
	ContactEmail string
	ContactPhone string
}

// TicketRequest is the input to the helpdesk upsert: the transcript to file,
// the contact data extracted from it, the originating event, and, for
// canvas-origin tickets, a bounded excerpt of the canvas body.
type TicketRequest struct {
	Transcript    string
	Contact       ContactInfo
	Event         FileEvent
	CanvasExcerpt string
	AudioSegments int
}
