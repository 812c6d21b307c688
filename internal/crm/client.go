// Package crm sends leads to a remote CRM over HTTP.
package crm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"github.com/akyairhashvil/leadenricher/internal/config"
	"github.com/akyairhashvil/leadenricher/internal/models"
)

const (
	defaultPath  = "/leads"
	maxErrorBody = 512
)

// Client is an HTTP lead service.
type Client struct {
	baseURL string
	path    string
	token   string
	http    *http.Client
	log     zerolog.Logger
}

type Option func(*Client)

func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) {
		if c != nil {
			cl.http = c
		}
	}
}

// WithPath overrides the endpoint path appended to the base URL.
func WithPath(path string) Option {
	return func(cl *Client) {
		if path != "" && !strings.HasPrefix(path, "/") {
			path = "/" + path
		}
		cl.path = path
	}
}

func WithLogger(log zerolog.Logger) Option {
	return func(cl *Client) { cl.log = log }
}

func NewClient(baseURL, token string, opts ...Option) (*Client, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, errors.New("crm base url is required")
	}
	c := &Client{
		baseURL: baseURL,
		path:    defaultPath,
		token:   strings.TrimSpace(token),
		http:    &http.Client{Timeout: config.CRMTimeout},
		log:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

type createLeadRequest struct {
	LeadData models.LeadData `json:"leadData"`
}

type errorResponse struct {
	Body    *models.ErrorBody `json:"body"`
	Message string            `json:"message"`
}

// CreateLead posts the lead. Any non-2xx reply becomes a *models.RemoteError.
func (c *Client) CreateLead(ctx context.Context, lead models.LeadData) error {
	payload, err := json.Marshal(createLeadRequest{LeadData: lead})
	if err != nil {
		return fmt.Errorf("encode lead: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+c.path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("create lead: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		_, _ = io.Copy(io.Discard, resp.Body)
		c.log.Info().Str("company", lead.Company).Str("source_url", lead.SourceURL).Msg("lead created")
		return nil
	}

	data, _ := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	remote := decodeError(resp.StatusCode, data)
	c.log.Warn().Int("status", resp.StatusCode).Str("message", remote.Error()).Msg("crm rejected lead")
	return remote
}

func decodeError(status int, data []byte) *models.RemoteError {
	remote := &models.RemoteError{Status: status}
	var parsed errorResponse
	if err := json.Unmarshal(data, &parsed); err == nil {
		remote.Message = parsed.Message
		if parsed.Body != nil && parsed.Body.Message != "" {
			remote.Body = parsed.Body
		}
		return remote
	}
	remote.Message = truncateBytes(strings.TrimSpace(string(data)), maxErrorBody)
	return remote
}

// truncateBytes cuts s to at most n bytes without splitting a rune.
func truncateBytes(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
