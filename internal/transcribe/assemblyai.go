package transcribe

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"stoik.com/voicedesk/internal/core/domain"
)

const (
	defaultAssemblyAIBaseURL = "https://api.assemblyai.com"

	defaultPollInterval    = 2 * time.Second
	defaultMaxPollAttempts = 150
)

// AssemblyAI implements the upload-then-poll protocol shape: upload the
// payload, start a job against the returned reference, then poll at a fixed
// interval until the job is terminal. Polling is bounded; exceeding the
// attempt budget fails with TranscriptionTimeoutError.
type AssemblyAI struct {
	apiKey          string
	baseURL         string
	pollInterval    time.Duration
	maxPollAttempts int
	http            *http.Client
}

func NewAssemblyAI(apiKey, baseURL string, pollInterval time.Duration, maxPollAttempts int) *AssemblyAI {
	if baseURL == "" {
		baseURL = defaultAssemblyAIBaseURL
	}
	if pollInterval <= 0 {
		pollInterval = defaultPollInterval
	}
	if maxPollAttempts <= 0 {
		maxPollAttempts = defaultMaxPollAttempts
	}
	return &AssemblyAI{
		apiKey:          apiKey,
		baseURL:         baseURL,
		pollInterval:    pollInterval,
		maxPollAttempts: maxPollAttempts,
		http:            &http.Client{Timeout: 60 * time.Second},
	}
}

func (a *AssemblyAI) Transcribe(ctx context.Context, path string) (domain.TranscriptionResult, error) {
	audioURL, failure, err := a.upload(ctx, path)
	if err != nil || failure != nil {
		return deref(failure), err
	}

	jobID, failure, err := a.startJob(ctx, audioURL)
	if err != nil || failure != nil {
		return deref(failure), err
	}

	return a.poll(ctx, jobID)
}

func (a *AssemblyAI) upload(ctx context.Context, path string) (string, *domain.TranscriptionResult, error) {
	audio, err := os.Open(path)
	if err != nil {
		return "", nil, fmt.Errorf("open audio file: %w", err)
	}
	defer audio.Close()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.baseURL+"/v2/upload", audio)
	if err != nil {
		return "", nil, err
	}
	req.Header.Set("authorization", a.apiKey)

	status, body, err := a.send(req)
	if err != nil {
		return "", nil, err
	}
	if status != http.StatusOK {
		return "", &domain.TranscriptionResult{
			Err: fmt.Sprintf("assemblyai upload: status %d: %s", status, body),
		}, nil
	}

	var result struct {
		UploadURL string `json:"upload_url"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return "", nil, fmt.Errorf("decode upload response: %w", err)
	}
	return result.UploadURL, nil, nil
}

func (a *AssemblyAI) startJob(ctx context.Context, audioURL string) (string, *domain.TranscriptionResult, error) {
	payload, err := json.Marshal(map[string]string{"audio_url": audioURL})
	if err != nil {
		return "", nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.baseURL+"/v2/transcript", bytes.NewReader(payload))
	if err != nil {
		return "", nil, err
	}
	req.Header.Set("authorization", a.apiKey)
	req.Header.Set("Content-Type", "application/json")

	status, body, err := a.send(req)
	if err != nil {
		return "", nil, err
	}
	if status != http.StatusOK {
		return "", &domain.TranscriptionResult{
			Err: fmt.Sprintf("assemblyai start: status %d: %s", status, body),
		}, nil
	}

	var result struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return "", nil, fmt.Errorf("decode start response: %w", err)
	}
	return result.ID, nil, nil
}

func (a *AssemblyAI) poll(ctx context.Context, jobID string) (domain.TranscriptionResult, error) {
	for attempt := 0; attempt < a.maxPollAttempts; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.baseURL+"/v2/transcript/"+jobID, nil)
		if err != nil {
			return domain.TranscriptionResult{}, err
		}
		req.Header.Set("authorization", a.apiKey)

		status, body, err := a.send(req)
		if err != nil {
			return domain.TranscriptionResult{}, err
		}
		if status != http.StatusOK {
			return domain.TranscriptionResult{
				Err: fmt.Sprintf("assemblyai poll: status %d: %s", status, body),
			}, nil
		}

		var result struct {
			Status     string  `json:"status"`
			Text       string  `json:"text"`
			Confidence float64 `json:"confidence"`
			Error      string  `json:"error"`
		}
		if err := json.Unmarshal(body, &result); err != nil {
			return domain.TranscriptionResult{}, fmt.Errorf("decode poll response: %w", err)
		}

		switch result.Status {
		case "completed":
			return domain.TranscriptionResult{
				Success:    true,
				Transcript: result.Text,
				Confidence: result.Confidence,
			}, nil
		case "error":
			return domain.TranscriptionResult{
				Err: fmt.Sprintf("assemblyai job failed: %s", result.Error),
			}, nil
		}

		select {
		case <-ctx.Done():
			return domain.TranscriptionResult{}, ctx.Err()
		case <-time.After(a.pollInterval):
		}
	}

	return domain.TranscriptionResult{}, &domain.TranscriptionTimeoutError{
		Provider: ProviderAssemblyAI,
		Attempts: a.maxPollAttempts,
	}
}

func (a *AssemblyAI) send(req *http.Request) (int, []byte, error) {
	resp, err := a.http.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, err
	}
	return resp.StatusCode, body, nil
}

func deref(result *domain.TranscriptionResult) domain.TranscriptionResult {
	if result == nil {
		return domain.TranscriptionResult{}
	}
	return *result
}
