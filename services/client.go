// Package services provides clients for the partner services a skill calls
// during an invoke: geolocation and push notifications. All clients share a
// retrying base client that forwards the tracing headers and the service
// token of the current invoke.
package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	retry "github.com/avast/retry-go/v4"
	jsoniter "github.com/json-iterator/go"
	"github.com/rs/zerolog/log"

	"github.com/telekom/voice-skill-sdk/config"
	"github.com/telekom/voice-skill-sdk/intents"
	"github.com/telekom/voice-skill-sdk/internal/common/apperrors"
	"github.com/telekom/voice-skill-sdk/internal/common/logtrace"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	defaultTimeout  = 10 * time.Second
	defaultAttempts = 3

	// Name of the service token forwarded as bearer auth on internal calls.
	authTokenName = "cvi"
)

var (
	// ErrNotConfigured is returned when the skill configuration has no
	// endpoint for the requested service.
	ErrNotConfigured = apperrors.New("service not configured")

	// ErrRequestFailed is returned when a service call fails after all
	// retries. An intent handler propagating it gets a canned localized
	// error response.
	ErrRequestFailed = apperrors.New("service request failed")

	// ErrNotFound is returned when the service answers 404.
	ErrNotFound = apperrors.New("not found")
)

// Client is the retrying HTTP client the service clients are built on.
type Client struct {
	Name string

	base     string
	http     *http.Client
	attempts uint
}

// NewClient creates a client for a named service configured in skill.conf.
// The base URL is {url}/v{version}/{name}.
func NewClient(name string) (*Client, error) {
	svc, ok := config.Config().Service(name)
	if !ok || svc.URL == "" {
		return nil, ErrNotConfigured.Msg(name)
	}
	return &Client{
		Name:     name,
		base:     fmt.Sprintf("%s/v%d/%s", strings.TrimSuffix(svc.URL, "/"), svc.Version, name),
		http:     &http.Client{Timeout: defaultTimeout},
		attempts: defaultAttempts,
	}, nil
}

// URL returns the full URL for a path below the service base.
func (c *Client) URL(path string) string {
	return c.base + path
}

// Get performs a GET request against the service.
func (c *Client) Get(ctx context.Context, path string, query url.Values) ([]byte, error) {
	return c.Do(ctx, http.MethodGet, path, query, nil)
}

// Post performs a POST request with a JSON body against the service.
func (c *Client) Post(ctx context.Context, path string, body []byte) ([]byte, error) {
	return c.Do(ctx, http.MethodPost, path, nil, body)
}

// Delete performs a DELETE request against the service.
func (c *Client) Delete(ctx context.Context, path string) ([]byte, error) {
	return c.Do(ctx, http.MethodDelete, path, nil, nil)
}

// Do executes a request with retries. Transport errors and 5xx responses
// are retried, 4xx responses are not. Returns ErrNotFound on 404 and
// ErrRequestFailed when all attempts are exhausted.
func (c *Client) Do(ctx context.Context, method, path string, query url.Values, body []byte) ([]byte, error) {
	var rspBody []byte
	err := retry.Do(
		func() error {
			req, err := http.NewRequestWithContext(ctx, method, c.URL(path), bytes.NewReader(body))
			if err != nil {
				return retry.Unrecoverable(err)
			}
			if query != nil {
				req.URL.RawQuery = query.Encode()
			}
			c.setHeaders(ctx, req.Header)

			rsp, err := c.http.Do(req)
			if err != nil {
				return err
			}
			defer rsp.Body.Close()

			data, err := io.ReadAll(rsp.Body)
			if err != nil {
				return err
			}
			switch {
			case rsp.StatusCode == http.StatusNotFound:
				return retry.Unrecoverable(ErrNotFound)
			case rsp.StatusCode >= http.StatusInternalServerError:
				return fmt.Errorf("%s returned %s", c.Name, rsp.Status)
			case rsp.StatusCode >= http.StatusBadRequest:
				return retry.Unrecoverable(fmt.Errorf("%s returned %s", c.Name, rsp.Status))
			}
			rspBody = data
			return nil
		},
		retry.Attempts(c.attempts),
		retry.Context(ctx),
		retry.LastErrorOnly(true),
	)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		log.Ctx(ctx).Error().Err(err).Str("service", c.Name).Str("path", path).Msg("service request failed")
		return nil, ErrRequestFailed.Err(err)
	}
	return rspBody, nil
}

// setHeaders sets the default headers on an outbound request: content
// negotiation, the locale and service token of the current invoke and the
// tracing headers.
func (c *Client) setHeaders(ctx context.Context, h http.Header) {
	h.Set("Accept", "application/json")
	h.Set("Content-Type", "application/json")

	if req := intents.FromContext(ctx); req != nil {
		if req.Locale != "" {
			h.Set("Content-Language", req.Locale)
		}
		if token, ok := req.Token(authTokenName); ok {
			h.Set("Authorization", "Bearer "+token)
		}
	}
	logtrace.HeadersFromContext(ctx).Apply(h)
}
