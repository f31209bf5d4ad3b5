package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	log "github.com/sirupsen/logrus"

	"stoik.com/voicedesk/internal/core/domain"
)

type ZohoConfig struct {
	BaseURL      string // e.g. https://desk.zoho.com
	OrgID        string
	DepartmentID string
}

// ZohoClient implements the helpdesk upsert against the Zoho Desk API. Every
// call authenticates through the OAuthManager; a 401 triggers exactly one
// forced refresh and one replay of the same call.
type ZohoClient struct {
	cfg    ZohoConfig
	tokens *OAuthManager
	http   *http.Client
}

func NewZohoClient(cfg ZohoConfig, tokens *OAuthManager) *ZohoClient {
	return &ZohoClient{
		cfg:    cfg,
		tokens: tokens,
		http:   &http.Client{Timeout: 30 * time.Second},
	}
}

// Upsert searches for an existing ticket by the extracted contact data (email
// first, then phone; first result of the first non-empty search wins). A
// match gets the transcript appended as a public comment; otherwise a new
// ticket is created.
func (c *ZohoClient) Upsert(ctx context.Context, req domain.TicketRequest) (*domain.Ticket, error) {
	if req.Contact.Email != "" {
		ticket, err := c.searchTicket(ctx, "email", req.Contact.Email)
		if err != nil {
			return nil, err
		}
		if ticket != nil {
			return ticket, c.addComment(ctx, ticket.ID, req.Transcript)
		}
	}

	if req.Contact.Phone != "" {
		ticket, err := c.searchTicket(ctx, "phone", req.Contact.Phone)
		if err != nil {
			return nil, err
		}
		if ticket != nil {
			return ticket, c.addComment(ctx, ticket.ID, req.Transcript)
		}
	}

	return c.createTicket(ctx, req)
}

type zohoTicket struct {
	ID       string `json:"id"`
	Subject  string `json:"subject"`
	Status   string `json:"status"`
	Priority string `json:"priority"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
}

func (t zohoTicket) toDomain() *domain.Ticket {
	return &domain.Ticket{
		ID:           t.ID,
		Subject:      t.Subject,
		Status:       t.Status,
		Priority:     t.Priority,
		ContactEmail: t.Email,
		ContactPhone: t.Phone,
	}
}

func (c *ZohoClient) searchTicket(ctx context.Context, field, value string) (*domain.Ticket, error) {
	query := url.Values{field: {value}, "limit": {"10"}}
	status, body, err := c.do(ctx, http.MethodGet, "/api/v1/tickets/search?"+query.Encode(), nil)
	if err != nil {
		return nil, err
	}
	if status == http.StatusNoContent {
		return nil, nil
	}
	if status != http.StatusOK {
		return nil, &domain.TicketUpsertError{Op: "search", Status: status, Body: snippet(body)}
	}

	var result struct {
		Data []zohoTicket `json:"data"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("decode ticket search response: %w", err)
	}
	if len(result.Data) == 0 {
		return nil, nil
	}
	return result.Data[0].toDomain(), nil
}

func (c *ZohoClient) addComment(ctx context.Context, ticketID, transcript string) error {
	payload := map[string]any{
		"content":  "New voice message transcription:\n\n" + transcript,
		"isPublic": true,
	}
	status, body, err := c.do(ctx, http.MethodPost, "/api/v1/tickets/"+ticketID+"/comments", payload)
	if err != nil {
		return err
	}
	if status != http.StatusOK && status != http.StatusCreated {
		return &domain.TicketUpsertError{Op: "comment", Status: status, Body: snippet(body)}
	}
	log.WithField("ticket_id", ticketID).Info("Appended transcript to existing ticket")
	return nil
}

func (c *ZohoClient) createTicket(ctx context.Context, req domain.TicketRequest) (*domain.Ticket, error) {
	subject := "Voice Message - " + req.Event.Name
	description := "Transcription from voice message:\n\n" + req.Transcript
	if req.Event.IsCanvas() {
		subject = "Canvas File with Audio - " + req.Event.Name
		description = canvasDescription(req)
	}

	payload := map[string]any{
		"subject":     subject,
		"description": description,
		"status":      "Open",
		"priority":    "Medium",
		"channel":     "Slack",
	}
	if c.cfg.DepartmentID != "" {
		payload["departmentId"] = c.cfg.DepartmentID
	}
	if req.Contact.Email != "" {
		payload["email"] = req.Contact.Email
	}
	if req.Contact.Phone != "" {
		payload["phone"] = req.Contact.Phone
	}

	status, body, err := c.do(ctx, http.MethodPost, "/api/v1/tickets", payload)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK && status != http.StatusCreated {
		return nil, &domain.TicketUpsertError{Op: "create", Status: status, Body: snippet(body)}
	}

	var result struct {
		Data zohoTicket `json:"data"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("decode ticket create response: %w", err)
	}

	ticket := result.Data.toDomain()
	ticket.Subject = subject
	if ticket.Status == "" {
		ticket.Status = "Open"
	}
	if ticket.Priority == "" {
		ticket.Priority = "Medium"
	}
	ticket.ContactEmail = req.Contact.Email
	ticket.ContactPhone = req.Contact.Phone

	log.WithField("ticket_id", ticket.ID).Info("Created helpdesk ticket")
	return ticket, nil
}

func canvasDescription(req domain.TicketRequest) string {
	return fmt.Sprintf(
		"Canvas File: %s\n\nCanvas Content:\n%s\n\nAudio Transcripts (%d audio files):\n%s\n\nChannel: %s\nUser: %s\nTimestamp: %s\n",
		req.Event.Name,
		req.CanvasExcerpt,
		req.AudioSegments,
		req.Transcript,
		req.Event.ChannelID,
		req.Event.UserID,
		req.Event.Timestamp,
	)
}

// do performs one authenticated call. On 401 it forces a single token
// refresh and replays the request once before surfacing the error.
func (c *ZohoClient) do(ctx context.Context, method, path string, payload any) (int, []byte, error) {
	var reqBody []byte
	if payload != nil {
		var err error
		reqBody, err = json.Marshal(payload)
		if err != nil {
			return 0, nil, err
		}
	}

	status, body, err := c.doOnce(ctx, method, path, reqBody)
	if err != nil {
		return 0, nil, err
	}
	if status != http.StatusUnauthorized {
		return status, body, nil
	}

	if _, err := c.tokens.ForceRefresh(ctx); err != nil {
		return 0, nil, err
	}
	return c.doOnce(ctx, method, path, reqBody)
}

func (c *ZohoClient) doOnce(ctx context.Context, method, path string, reqBody []byte) (int, []byte, error) {
	token, err := c.tokens.Token(ctx)
	if err != nil {
		return 0, nil, err
	}

	var reader io.Reader
	if reqBody != nil {
		reader = bytes.NewReader(reqBody)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.cfg.BaseURL+path, reader)
	if err != nil {
		return 0, nil, err
	}
	req.Header.Set("Authorization", "Zoho-oauthtoken "+token)
	req.Header.Set("orgId", c.cfg.OrgID)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
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
