package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"odontoagenda/config"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Client is a thin JSON-over-HTTP client for the clinic's REST backend. It
// never caches: every call issues a fresh request.
type Client struct {
	baseURL string
	http    *http.Client
	log     *logrus.Logger
}

func NewClient(cfg config.APIConfig, log *logrus.Logger) *Client {
	return &Client{
		baseURL: cfg.BaseURL,
		http:    &http.Client{Timeout: cfg.Timeout},
		log:     log,
	}
}

func (c *Client) Get(ctx context.Context, path string, out interface{}) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) Post(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

func (c *Client) Put(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPut, path, body, out)
}

func (c *Client) Delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	url := c.baseURL + path

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warnf("Request %s %s failed: %v", method, path, err)
		return &ConnectionError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		c.log.Warnf("Request %s %s failed reading response: %v", method, path, err)
		return &ConnectionError{URL: url, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		reqErr := &RequestError{Status: resp.StatusCode, Message: extractMessage(resp.StatusCode, respBody)}
		c.log.WithFields(logrus.Fields{
			"method":     method,
			"path":       path,
			"status":     resp.StatusCode,
			"request_id": requestID,
		}).Warn("Backend returned error status")
		return reqErr
	}

	if out != nil {
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("failed to decode response from %s %s: %w", method, path, err)
		}
	}

	return nil
}
