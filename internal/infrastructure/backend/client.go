package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/billerone/billerone-web/internal/config"
	"github.com/billerone/billerone-web/pkg/apperror"
	"go.uber.org/zap"
)

// maxErrorBody caps how much of a failed response is read for its message.
const maxErrorBody = 64 << 10

// Client talks JSON to the remote billing API
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a billing API client
func NewClient(cfg *config.BackendConfig, logger *zap.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// URL resolves path against the base URL.
func (c *Client) URL(path string) string {
	return c.baseURL + "/" + strings.TrimLeft(path, "/")
}

// Do sends body (when non-nil) as JSON and decodes a successful response
// into out (when non-nil). Transport failures become ErrBackendUnavailable and
// non-2xx statuses become an AppError carrying the API's message.
func (c *Client) Do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.URL(path), reader)
	if err != nil {
		return fmt.Errorf("build %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("billing api unreachable",
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err),
		)
		if errors.Is(ctx.Err(), context.Canceled) {
			return ctx.Err()
		}
		return apperror.ErrBackendUnavailable
	}
	defer resp.Body.Close()

	c.logger.Debug("billing api call",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("latency", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := errorMessage(io.LimitReader(resp.Body, maxErrorBody))
		c.logger.Warn("billing api rejected request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", resp.StatusCode),
			zap.String("message", msg),
		)
		return apperror.NewBackendError(resp.StatusCode, msg)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		c.logger.Warn("billing api returned malformed body",
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err),
		)
		return apperror.NewBackendError(http.StatusBadGateway, "Malformed response from billing service")
	}
	return nil
}

// errorMessage pulls a human readable message out of an error body. The API
// uses "detail", "error" or "message" depending on the endpoint.
func errorMessage(r io.Reader) string {
	raw, err := io.ReadAll(r)
	if err != nil || len(raw) == 0 {
		return ""
	}

	var body struct {
		Detail  any    `json:"detail"`
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return strings.TrimSpace(string(raw))
	}

	switch {
	case body.Detail != nil:
		if s, ok := body.Detail.(string); ok {
			return s
		}
		encoded, _ := json.Marshal(body.Detail)
		return string(encoded)
	case body.Error != "":
		return body.Error
	default:
		return body.Message
	}
}
