package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFingerprint_Deterministic(t *testing.T) {
	event := FileEvent{
		URL:       "https://files.slack.com/files-pri/T123-F456/voice.mp3",
		FileType:  "mp3",
		UserID:    "U123",
		ChannelID: "C456",
	}

	first := event.Fingerprint()
	second := event.Fingerprint()

	assert.Equal(t, first, second)
	assert.Len(t, string(first), 64)
}

func TestFingerprint_SensitiveToIdentityFields(t *testing.T) {
	base := FileEvent{
		URL:       "https://files.slack.com/files-pri/T123-F456/voice.mp3",
		FileType:  "mp3",
		UserID:    "U123",
		ChannelID: "C456",
	}

	cases := []struct {
		name   string
		mutate func(e FileEvent) FileEvent
	}{
		{"url", func(e FileEvent) FileEvent { e.URL = "https://elsewhere/voice.mp3"; return e }},
		{"file type", func(e FileEvent) FileEvent { e.FileType = "wav"; return e }},
		{"user", func(e FileEvent) FileEvent { e.UserID = "U999"; return e }},
		{"channel", func(e FileEvent) FileEvent { e.ChannelID = "C999"; return e }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.NotEqual(t, base.Fingerprint(), tc.mutate(base).Fingerprint())
		})
	}
}

func TestFingerprint_IgnoresDisplayFields(t *testing.T) {
	base := FileEvent{
		URL:       "https://files.slack.com/files-pri/T123-F456/voice.mp3",
		FileType:  "mp3",
		UserID:    "U123",
		ChannelID: "C456",
		Name:      "voice.mp3",
	}
	renamed := base
	renamed.Name = "renamed.mp3"
	renamed.Timestamp = "1724680000.000100"

	assert.Equal(t, base.Fingerprint(), renamed.Fingerprint())
}

func TestIsCanvas(t *testing.T) {
	cases := []struct {
		name  string
		event FileEvent
		want  bool
	}{
		{"canvas mime type", FileEvent{MimeType: "application/vnd.slack.canvas"}, true},
		{"quip canvas mime type", FileEvent{MimeType: "text/canvas"}, true},
		{"mime type wins over file type", FileEvent{MimeType: "audio/mpeg", FileType: "canvas"}, false},
		{"file type fallback", FileEvent{FileType: "canvas"}, true},
		{"file type fallback case insensitive", FileEvent{FileType: "Canvas"}, true},
		{"plain audio", FileEvent{MimeType: "audio/mpeg", FileType: "mp3"}, false},
		{"empty", FileEvent{}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.event.IsCanvas())
		})
	}
}
