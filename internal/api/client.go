package api

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/mmcdole/jobboard/internal/domain"
)

const defaultTimeout = 30 * time.Second

// Client is a thin JSON client for one API base URL.
// Requests are attempted once; failures are reported, never retried.
type Client struct {
	http   *resty.Client
	logger *slog.Logger
}

// NewClient creates a client rooted at baseURL
func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	httpClient := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json").
		SetRetryCount(0)

	return &Client{http: httpClient, logger: logger}
}

// doRequest performs a request and returns the body of a 2xx response.
// Transport failures become *domain.NetworkError, other statuses *domain.ServerError.
func (c *Client) doRequest(ctx context.Context, method, path string, body any) ([]byte, error) {
	req := c.http.R().SetContext(ctx)
	if body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}

	c.logger.Debug("api request", "method", method, "path", path)

	resp, err := req.Execute(method, path)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		c.logger.Error("api request failed", "method", method, "path", path, "error", err)
		return nil, &domain.NetworkError{Err: err}
	}

	if !resp.IsSuccess() {
		c.logger.Error("api request error",
			"method", method,
			"path", path,
			"status", resp.StatusCode(),
			"body", truncate(resp.String(), 512),
		)
		return nil, &domain.ServerError{
			Status:  resp.StatusCode(),
			Message: errorMessage(resp.Body()),
		}
	}

	return resp.Body(), nil
}

func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	return c.doRequest(ctx, http.MethodGet, path, nil)
}

func (c *Client) post(ctx context.Context, path string, body any) ([]byte, error) {
	return c.doRequest(ctx, http.MethodPost, path, body)
}

// errorMessage extracts a server-supplied message from an error body
func errorMessage(body []byte) string {
	var payload errorResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	switch {
	case payload.Message != "":
		return payload.Message
	case payload.Detail != "":
		return payload.Detail
	default:
		return payload.Error
	}
}

// itemPath joins a collection path and an identifier: "/jobs/" + "3" -> "/jobs/3"
func itemPath(collection string, id domain.ID) string {
	return fmt.Sprintf("%s/%s", strings.TrimRight(collection, "/"), escapeID(id))
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
