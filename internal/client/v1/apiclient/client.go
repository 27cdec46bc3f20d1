// Package apiclient implements an HTTP client for the session-management API.

package apiclient

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"voice-api-smoke/internal/client/errors"
	"voice-api-smoke/internal/client/v1/modeldto"
	"voice-api-smoke/internal/config"
	"voice-api-smoke/internal/constants"

	"github.com/rs/zerolog"
)

// StatusError is returned when the API answers with a 4xx or 5xx status.
type StatusError struct {
	StatusCode int
	Status     string
	URL        string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s for url: %s", e.Status, e.URL)
}

// Response holds a fully read API response.
type Response struct {
	StatusCode int
	Body       []byte
}

// DecodeJSON unmarshalls the response body into v.
func (r *Response) DecodeJSON(v interface{}) error {
	return json.Unmarshal(r.Body, v)
}

// Client defines an API client object and sets its attributes.
type Client struct {
	log     *zerolog.Logger
	cfg     *config.Config
	baseURL *url.URL
	baseErr error
	http    *http.Client
}

// NewClient initializes a Client from API configuration. An unusable base URL
// does not fail construction: it is kept and returned by Validate and by
// every request, so commands that never call the API still start.
func NewClient(logger *zerolog.Logger, cfg *config.Config) *Client {
	logger.Debug().Msg("calling initializer of API client")
	base, err := parseBaseURL(cfg.API.BaseURL)
	if err != nil {
		logger.Debug().Err(err).Str("base_url", cfg.API.BaseURL).Msg(errors.BaseURLParsingError)
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	if cfg.API.InsecureSkipVerify {
		logger.Warn().Str("base_url", cfg.API.BaseURL).Msg("TLS certificate verification is disabled")
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true} //nolint:gosec
	}

	return &Client{
		log:     logger,
		cfg:     cfg,
		baseURL: base,
		baseErr: err,
		http: &http.Client{
			Transport: transport,
			Timeout:   cfg.API.Timeout,
		},
	}
}

func parseBaseURL(raw string) (*url.URL, error) {
	base, err := url.Parse(strings.TrimRight(raw, "/"))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errors.BaseURLParsingError, err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("%s: %q is not absolute", errors.BaseURLParsingError, raw)
	}
	return base, nil
}

// Validate reports whether the configured base URL can be used.
func (c *Client) Validate() error {
	return c.baseErr
}

// URL resolves an API path against the configured base address.
func (c *Client) URL(path string) string {
	if c.baseURL == nil {
		return strings.TrimRight(c.cfg.API.BaseURL, "/") + path
	}
	return c.baseURL.String() + path
}

// Root issues an unauthenticated GET /.
func (c *Client) Root(ctx context.Context) (*Response, error) {
	return c.do(ctx, http.MethodGet, constants.PathRoot, nil, false)
}

// CreateSession issues an authenticated POST /api/v1/sessions.
func (c *Client) CreateSession(ctx context.Context, req modeldto.SessionRequest) (*Response, error) {
	body, err := json.Marshal(req)
	if err != nil {
		c.log.Error().Err(err).Msg(errors.MarshallingError)
		return nil, err
	}
	return c.do(ctx, http.MethodPost, constants.PathSessions, body, true)
}

// GetSession issues an authenticated GET /api/v1/sessions/{id}.
func (c *Client) GetSession(ctx context.Context, id modeldto.SessionID) (*Response, error) {
	return c.do(ctx, http.MethodGet, constants.PathSessions+"/"+url.PathEscape(id.String()), nil, true)
}

// GetPhrases issues an authenticated GET /api/v1/phrases/{dataset}.
func (c *Client) GetPhrases(ctx context.Context, dataset string) (*Response, error) {
	return c.do(ctx, http.MethodGet, constants.PathPhrases+"/"+url.PathEscape(dataset), nil, true)
}

func (c *Client) do(ctx context.Context, method, path string, body []byte, auth bool) (*Response, error) {
	if c.baseErr != nil {
		return nil, c.baseErr
	}
	target := c.URL(path)
	c.log.Debug().Str("method", method).Str("url", target).Bool("auth", auth).Msg("sending API request")

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		c.log.Error().Err(err).Str("url", target).Msg(errors.RequestBuildingError)
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	if auth {
		req.SetBasicAuth(c.cfg.API.Username, c.cfg.API.Password)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Debug().Err(err).Str("url", target).Msg(errors.RequestSendingError)
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		c.log.Debug().Err(err).Str("url", target).Msg(errors.ResponseReadingError)
		return nil, fmt.Errorf("%s: %w", errors.ResponseReadingError, err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		c.log.Debug().Int("status", resp.StatusCode).Str("url", target).Msg(errors.UnexpectedStatus)
		return nil, &StatusError{StatusCode: resp.StatusCode, Status: resp.Status, URL: target}
	}

	return &Response{StatusCode: resp.StatusCode, Body: data}, nil
}
