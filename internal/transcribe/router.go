// Package transcribe implements the transcription providers behind one
// interface. The provider and its protocol shape are fixed by configuration
// when the router is built, not inferred per call.
package transcribe

import (
	"fmt"
	"time"

	"stoik.com/voicedesk/internal/core/port"
)

const (
	ProviderDeepgram   = "deepgram"
	ProviderAssemblyAI = "assemblyai"
	ProviderWhisper    = "whisper"
)

type Config struct {
	Provider string
	APIKey   string
	// BaseURL overrides the provider endpoint, mainly for tests.
	BaseURL string
	// Poll settings apply to upload-then-poll providers only.
	PollInterval    time.Duration
	MaxPollAttempts int
}

// New selects the provider implementation for the configured protocol shape.
func New(cfg Config) (port.Transcriber, error) {
	switch cfg.Provider {
	case ProviderDeepgram:
		return NewDeepgram(cfg.APIKey, cfg.BaseURL), nil
	case ProviderAssemblyAI:
		return NewAssemblyAI(cfg.APIKey, cfg.BaseURL, cfg.PollInterval, cfg.MaxPollAttempts), nil
	case ProviderWhisper:
		return NewWhisper(cfg.APIKey, cfg.BaseURL), nil
	default:
		return nil, fmt.Errorf("unsupported transcription provider: %q", cfg.Provider)
	}
}
