package transcribe

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"stoik.com/voicedesk/internal/core/domain"
)

const defaultDeepgramBaseURL = "https://api.deepgram.com"

// Deepgram implements the synchronous protocol shape: one POST of the raw
// audio bytes, transcript inline in the 200 response.
type Deepgram struct {
	apiKey  string
	baseURL string
	http    *http.Client
}

func NewDeepgram(apiKey, baseURL string) *Deepgram {
	if baseURL == "" {
		baseURL = defaultDeepgramBaseURL
	}
	return &Deepgram{
		apiKey:  apiKey,
		baseURL: baseURL,
		http:    &http.Client{Timeout: 60 * time.Second},
	}
}

func (d *Deepgram) Transcribe(ctx context.Context, path string) (domain.TranscriptionResult, error) {
	audio, err := os.Open(path)
	if err != nil {
		return domain.TranscriptionResult{}, fmt.Errorf("open audio file: %w", err)
	}
	defer audio.Close()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.baseURL+"/v1/listen", audio)
	if err != nil {
		return domain.TranscriptionResult{}, err
	}
	req.Header.Set("Authorization", "Token "+d.apiKey)
	req.Header.Set("Content-Type", "audio/*")

	resp, err := d.http.Do(req)
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
			Err: fmt.Sprintf("deepgram: status %d: %s", resp.StatusCode, body),
		}, nil
	}

	var result struct {
		Results struct {
			Channels []struct {
				Alternatives []struct {
					Transcript string  `json:"transcript"`
					Confidence float64 `json:"confidence"`
				} `json:"alternatives"`
			} `json:"channels"`
		} `json:"results"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return domain.TranscriptionResult{}, fmt.Errorf("decode deepgram response: %w", err)
	}
	if len(result.Results.Channels) == 0 || len(result.Results.Channels[0].Alternatives) == 0 {
		return domain.TranscriptionResult{Err: "deepgram: empty response"}, nil
	}

	alt := result.Results.Channels[0].Alternatives[0]
	return domain.TranscriptionResult{
		Success:    true,
		Transcript: alt.Transcript,
		Confidence: alt.Confidence,
	}, nil
}
