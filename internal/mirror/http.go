package mirror

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"
)

// Config holds account-sync configuration.
type Config struct {
	// URL is the account endpoint receiving state snapshots.
	URL string

	// Token authenticates the device with the account service.
	Token string

	// Timeout bounds one delivery attempt. Default: 10s.
	Timeout time.Duration
}

// ConfigFromEnv reads sync settings from the environment. ok is false
// when no sync endpoint is configured (the common signed-out case).
func ConfigFromEnv() (Config, bool) {
	url := os.Getenv("LINGLOG_SYNC_URL")
	if url == "" {
		return Config{}, false
	}
	return Config{
		URL:     url,
		Token:   os.Getenv("LINGLOG_SYNC_TOKEN"),
		Timeout: 10 * time.Second,
	}, true
}

// HTTPSyncer delivers payloads as JSON POSTs to the account service.
type HTTPSyncer struct {
	cfg    Config
	client *http.Client
}

// NewHTTPSyncer creates a syncer for the given endpoint.
func NewHTTPSyncer(cfg Config) *HTTPSyncer {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &HTTPSyncer{
		cfg:    cfg,
		client: &http.Client{Timeout: timeout},
	}
}

func (s *HTTPSyncer) Sync(ctx context.Context, p Payload) error {
	body, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.URL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if s.cfg.Token != "" {
		req.Header.Set("Authorization", "Bearer "+s.cfg.Token)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("post snapshot: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("account service returned HTTP %d", resp.StatusCode)
	}
	return nil
}
