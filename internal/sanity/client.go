// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package sanity is a read-only client for the Sanity HTTP query API.
// A Client is configured once at startup and is safe for concurrent use.
package sanity

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"sitefront/internal/groq"
)

const (
	// DefaultDataset is used when no dataset is configured.
	DefaultDataset = "production"
	// DefaultAPIVersion pins the query API behaviour.
	DefaultAPIVersion = "2025-02-19"
	// DefaultTimeout bounds a single query round trip.
	DefaultTimeout = 10 * time.Second

	// maxGetURL is the longest request URL sent as GET; longer queries are POSTed.
	maxGetURL = 11 * 1024
	// maxResponse caps the response body read into memory.
	maxResponse = 32 << 20
)

// ErrNoProjectID is returned by New when the project id is missing.
var ErrNoProjectID = errors.New("sanity: project id is required")

// Config holds the connection settings for one project and dataset.
type Config struct {
	ProjectID  string
	Dataset    string
	APIVersion string
	// UseCDN routes reads through the cached API edge. Ignored when Token is set.
	UseCDN bool
	// Token is an optional read token for private datasets.
	Token string
	// BaseURL overrides the derived API host, e.g. for tests.
	BaseURL string
	Timeout time.Duration
}

// Client executes GROQ queries.
type Client struct {
	cfg      Config
	endpoint string
	http     *http.Client
}

// New validates cfg, applies defaults and returns a client.
func New(cfg Config) (*Client, error) {
	if cfg.ProjectID == "" {
		return nil, ErrNoProjectID
	}
	if cfg.Dataset == "" {
		cfg.Dataset = DefaultDataset
	}
	if cfg.APIVersion == "" {
		cfg.APIVersion = DefaultAPIVersion
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}

	base := strings.TrimRight(cfg.BaseURL, "/")
	if base == "" {
		host := "api.sanity.io"
		if cfg.UseCDN && cfg.Token == "" {
			host = "apicdn.sanity.io"
		}
		base = "https://" + cfg.ProjectID + "." + host
	}

	return &Client{
		cfg:      cfg,
		endpoint: base + "/v" + strings.TrimPrefix(cfg.APIVersion, "v") + "/data/query/" + url.PathEscape(cfg.Dataset),
		http:     &http.Client{Timeout: cfg.Timeout},
	}, nil
}

// Config returns the effective configuration.
func (c *Client) Config() Config { return c.cfg }

// Endpoint returns the query endpoint URL.
func (c *Client) Endpoint() string { return c.endpoint }

// response is the query API envelope.
type response struct {
	Ms     int             `json:"ms"`
	Query  string          `json:"query"`
	Result json.RawMessage `json:"result"`
}

// Fetch runs q and decodes its result into out. A null result leaves out
// untouched, so callers decoding into a pointer see nil for "no match".
func (c *Client) Fetch(ctx context.Context, q groq.Query, out any) error {
	req, err := c.newRequest(ctx, q)
	if err != nil {
		return fmt.Errorf("sanity request %s: %w", q.Name, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("sanity http %s: %w", q.Name, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponse))
	if err != nil {
		return fmt.Errorf("sanity read body %s: %w", q.Name, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return parseAPIError(resp.StatusCode, body)
	}

	var env response
	if err := json.Unmarshal(body, &env); err != nil {
		return fmt.Errorf("sanity unmarshal %s: %w", q.Name, err)
	}
	if len(env.Result) == 0 || bytes.Equal(env.Result, []byte("null")) {
		return nil
	}
	if err := json.Unmarshal(env.Result, out); err != nil {
		return fmt.Errorf("sanity decode %s: %w", q.Name, err)
	}
	return nil
}

func (c *Client) newRequest(ctx context.Context, q groq.Query) (*http.Request, error) {
	values := url.Values{}
	values.Set("query", q.Text)
	for name, v := range q.Params {
		enc, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("encode param %q: %w", name, err)
		}
		values.Set("$"+name, string(enc))
	}

	getURL := c.endpoint + "?" + values.Encode()
	var req *http.Request
	var err error
	if len(getURL) <= maxGetURL {
		req, err = http.NewRequestWithContext(ctx, http.MethodGet, getURL, nil)
	} else {
		payload, merr := json.Marshal(struct {
			Query  string         `json:"query"`
			Params map[string]any `json:"params,omitempty"`
		}{q.Text, q.Params})
		if merr != nil {
			return nil, merr
		}
		req, err = http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
		if req != nil {
			req.Header.Set("Content-Type", "application/json")
		}
	}
	if err != nil {
		return nil, err
	}

	req.Header.Set("Accept", "application/json")
	if c.cfg.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.Token)
	}
	return req, nil
}
