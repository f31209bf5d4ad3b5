package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"

	"stoik.com/voicedesk/internal/core/domain"
)

const DefaultSlackBaseURL = "https://slack.com"

// SlackClient covers the chat-platform collaborator surface: file metadata,
// authenticated downloads, canvas block documents, and thread feedback.
type SlackClient struct {
	token   string
	baseURL string

	// Metadata calls and payload downloads get separate timeout classes.
	api      *http.Client
	download *http.Client
}

func NewSlackClient(token, baseURL string) *SlackClient {
	if baseURL == "" {
		baseURL = DefaultSlackBaseURL
	}
	return &SlackClient{
		token:    token,
		baseURL:  baseURL,
		api:      &http.Client{Timeout: 30 * time.Second},
		download: &http.Client{Timeout: 60 * time.Second},
	}
}

type slackFileInfoResponse struct {
	OK    bool   `json:"ok"`
	Error string `json:"error"`
	File  struct {
		ID                 string `json:"id"`
		Name               string `json:"name"`
		Mimetype           string `json:"mimetype"`
		Size               int64  `json:"size"`
		URLPrivateDownload string `json:"url_private_download"`
	} `json:"file"`
}

// FileInfo resolves a file id into its metadata.
func (c *SlackClient) FileInfo(ctx context.Context, fileID string) (*domain.RemoteFile, error) {
	var result slackFileInfoResponse
	if err := c.apiGet(ctx, "/api/files.info?file="+fileID, &result); err != nil {
		return nil, err
	}
	if !result.OK {
		return nil, fmt.Errorf("files.info failed: %s", result.Error)
	}
	return &domain.RemoteFile{
		ID:          result.File.ID,
		Name:        result.File.Name,
		MimeType:    result.File.Mimetype,
		Size:        result.File.Size,
		DownloadURL: result.File.URLPrivateDownload,
	}, nil
}

// Fetch performs an authenticated GET of a payload URL and returns the bytes
// with the declared content type. Non-200 responses become a FetchError.
func (c *SlackClient) Fetch(ctx context.Context, url string) ([]byte, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, "", err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.download.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("fetch %s: read body: %w", url, err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, "", &domain.FetchError{URL: url, Status: resp.StatusCode, Snippet: snippet(body)}
	}
	return body, resp.Header.Get("Content-Type"), nil
}

type slackCanvasElement struct {
	Type     string               `json:"type"`
	URL      string               `json:"url"`
	Elements []slackCanvasElement `json:"elements"`
}

type slackCanvasResponse struct {
	OK     bool   `json:"ok"`
	Error  string `json:"error"`
	Canvas struct {
		Blocks []struct {
			Type string `json:"type"`
			File struct {
				URLPrivateDownload string `json:"url_private_download"`
			} `json:"file"`
			Elements []slackCanvasElement `json:"elements"`
		} `json:"blocks"`
	} `json:"canvas"`
}

// CanvasInfo retrieves the ordered block document of a canvas file.
func (c *SlackClient) CanvasInfo(ctx context.Context, canvasID string) (*domain.CanvasDocument, error) {
	var result slackCanvasResponse
	if err := c.apiGet(ctx, "/api/canvas.info?canvas_id="+canvasID, &result); err != nil {
		return nil, err
	}
	if !result.OK {
		return nil, fmt.Errorf("canvas.info failed: %s", result.Error)
	}

	doc := &domain.CanvasDocument{CanvasID: canvasID}
	for _, block := range result.Canvas.Blocks {
		converted := domain.CanvasBlock{
			Type:     block.Type,
			Elements: convertElements(block.Elements),
		}
		if block.File.URLPrivateDownload != "" {
			converted.File = &domain.CanvasFile{DownloadURL: block.File.URLPrivateDownload}
		}
		doc.Blocks = append(doc.Blocks, converted)
	}
	return doc, nil
}

func convertElements(elements []slackCanvasElement) []domain.CanvasElement {
	converted := make([]domain.CanvasElement, 0, len(elements))
	for _, el := range elements {
		converted = append(converted, domain.CanvasElement{
			Type:     el.Type,
			URL:      el.URL,
			Elements: convertElements(el.Elements),
		})
	}
	return converted
}

// PostFeedback posts a confirmation message into the originating thread.
func (c *SlackClient) PostFeedback(ctx context.Context, channelID, threadTS, text string) error {
	payload, err := json.Marshal(map[string]string{
		"channel":   channelID,
		"text":      text,
		"thread_ts": threadTS,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/chat.postMessage", bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.api.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var result struct {
		OK    bool   `json:"ok"`
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return err
	}
	if !result.OK {
		return fmt.Errorf("chat.postMessage failed: %s", result.Error)
	}

	log.WithField("channel", channelID).Debug("Posted feedback message")
	return nil
}

func (c *SlackClient) apiGet(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.api.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return &domain.FetchError{URL: path, Status: resp.StatusCode, Snippet: snippet(body)}
	}
	return json.Unmarshal(body, out)
}
