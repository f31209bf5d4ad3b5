package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"stoik.com/voicedesk/internal/core/domain"
)

type OAuthConfig struct {
	TokenURL     string
	RefreshToken string
	ClientID     string
	ClientSecret string
}

// OAuthManager is the single owner of the helpdesk OAuth session. The mutex
// makes refresh single-flight: callers arriving during an in-flight refresh
// wait for its result instead of starting their own.
type OAuthManager struct {
	cfg  OAuthConfig
	http *http.Client

	mu          sync.Mutex
	accessToken string
	expiresAt   time.Time
}

func NewOAuthManager(cfg OAuthConfig) *OAuthManager {
	return &OAuthManager{
		cfg:  cfg,
		http: &http.Client{Timeout: 30 * time.Second},
	}
}

// Token returns the current access token, refreshing it first when expired.
func (m *OAuthManager) Token(ctx context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.accessToken != "" && time.Now().Before(m.expiresAt) {
		return m.accessToken, nil
	}
	return m.refreshLocked(ctx)
}

// ForceRefresh discards the cached token and performs a refresh regardless of
// expiry. Used after a 401 from the helpdesk.
func (m *OAuthManager) ForceRefresh(ctx context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.refreshLocked(ctx)
}

// refreshLocked must be called with the mutex held. On any non-200 response
// the session state is left unchanged.
func (m *OAuthManager) refreshLocked(ctx context.Context) (string, error) {
	form := url.Values{
		"refresh_token": {m.cfg.RefreshToken},
		"client_id":     {m.cfg.ClientID},
		"client_secret": {m.cfg.ClientSecret},
		"grant_type":    {"refresh_token"},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.cfg.TokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := m.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	if resp.StatusCode != http.StatusOK {
		return "", &domain.AuthRefreshError{Status: resp.StatusCode, Body: snippet(body)}
	}

	var result struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int    `json:"expires_in"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return "", err
	}

	m.accessToken = result.AccessToken
	m.expiresAt = time.Now().Add(time.Duration(result.ExpiresIn) * time.Second)

	log.Info("Helpdesk access token refreshed")
	return m.accessToken, nil
}

func snippet(body []byte) string {
	const max = 200
	if len(body) > max {
		return string(body[:max])
	}
	return string(body)
}
