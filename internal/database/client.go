// Package database provides Supabase database integration.
//
// All persistence goes through the Supabase PostgREST API; the service
// holds no authoritative in-memory state and never talks SQL directly.
package database

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	neturl "net/url"
	"strings"
	"time"
)

// Client wraps the Supabase REST API client.
type Client struct {
	url        string
	serviceKey string
	httpClient *http.Client
}

// Config holds database configuration.
type Config struct {
	URL        string
	ServiceKey string
	Timeout    time.Duration
}

// NewClient creates a new Supabase client.
func NewClient(cfg Config) (*Client, error) {
	if cfg.URL == "" {
		return nil, fmt.Errorf("supabase URL is required")
	}
	if cfg.ServiceKey == "" {
		return nil, fmt.Errorf("supabase service key is required")
	}

	parsed, err := neturl.Parse(cfg.URL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, fmt.Errorf("supabase URL must be a valid URL")
	}
	if parsed.User != nil {
		return nil, fmt.Errorf("supabase URL must not include user info")
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	transport := http.DefaultTransport
	if base, ok := http.DefaultTransport.(*http.Transport); ok {
		cloned := base.Clone()
		if cloned.TLSClientConfig != nil {
			cloned.TLSClientConfig = cloned.TLSClientConfig.Clone()
			if cloned.TLSClientConfig.MinVersion < tls.VersionTLS12 {
				cloned.TLSClientConfig.MinVersion = tls.VersionTLS12
			}
		} else {
			cloned.TLSClientConfig = &tls.Config{MinVersion: tls.VersionTLS12}
		}
		transport = cloned
	}

	return &Client{
		url:        strings.TrimSuffix(cfg.URL, "/"),
		serviceKey: cfg.ServiceKey,
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: transport,
		},
	}, nil
}

const (
	maxResponseBytes  = 8 << 20  // 8 MiB
	maxErrorBodyBytes = 32 << 10 // 32 KiB
)

// request makes an HTTP request to the Supabase REST API.
func (c *Client) request(ctx context.Context, method, table string, body interface{}, query string) ([]byte, error) {
	url := fmt.Sprintf("%s/rest/v1/%s", c.url, table)
	if query != "" {
		url += "?" + query
	}

	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal body: %w", err)
		}
		reqBody = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("apikey", c.serviceKey)
	req.Header.Set("Authorization", "Bearer "+c.serviceKey)
	req.Header.Set("Prefer", "return=representation")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		respBody, readErr := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		if readErr != nil {
			return nil, fmt.Errorf("read error response: %w", readErr)
		}
		return nil, fmt.Errorf("supabase API error %d: %s", resp.StatusCode, strings.TrimSpace(string(respBody)))
	}

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	return respBody, nil
}
