package transcribe

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"time"

	"stoik.com/voicedesk/internal/core/domain"
)

const defaultWhisperBaseURL = "https://api.openai.com"

// Whisper implements the multipart protocol shape: one multipart POST
// carrying the file and a model selector, transcript inline in the response.
type Whisper struct {
	apiKey  string
	baseURL string
	model   string
	http    *http.Client
}

func NewWhisper(apiKey, baseURL string) *Whisper {
	if baseURL == "" {
		baseURL = defaultWhisperBaseURL
	}
	return &Whisper{
		apiKey:  apiKey,
		baseURL: baseURL,
		model:   "whisper-1",
		http:    &http.Client{Timeout: 60 * time.Second},
	}
}

func (w *Whisper) Transcribe(ctx context.Context, path string) (domain.TranscriptionResult, error) {
	audio, err := os.Open(path)
	if err != nil {
		return domain.TranscriptionResult{}, fmt.Errorf("open audio file: %w", err)
	}
	defer audio.Close()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("file", "audio.mp3")
	if err != nil {
		return domain.TranscriptionResult{}, err
	}
	if _, err := io.Copy(part, audio); err != nil {
		return domain.TranscriptionResult{}, fmt.Errorf("copy audio into form: %w", err)
	}
	if err := writer.WriteField("model", w.model); err != nil {
		return domain.TranscriptionResult{}, err
	}
	if err := writer.Close(); err != nil {
		return domain.TranscriptionResult{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.baseURL+"/v1/audio/transcriptions", &buf)
	if err != nil {
		return domain.TranscriptionResult{}, err
	}
	req.Header.Set("Authorization", "Bearer "+w.apiKey)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := w.http.Do(req)
	if err != nil {
		return domain.TranscriptionResult{}, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return domain.TranscriptionResult{}, err
	}
	if resp.StatusCode != http.StatusOK {
		return domain.TranscriptionResult{
			Err: fmt.Sprintf("whisper: status %d: %s", resp.StatusCode, body),
		}, nil
	}

	var result struct {
		Text string `json:"text"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return domain.TranscriptionResult{}, fmt.Errorf("decode whisper response: %w", err)
	}

	return domain.TranscriptionResult{
		Success:    true,
		Transcript: result.Text,
	}, nil
}
