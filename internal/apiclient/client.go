package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"warehouse-dashboard/internal/models"
	"warehouse-dashboard/internal/util"

	"go.uber.org/zap"
)

// Client talks to the inventory backend.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a new backend client
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		logger:     util.Component("apiclient"),
	}
}

// NewClientWithHTTP creates a client around an existing http.Client.
func NewClientWithHTTP(baseURL string, httpClient *http.Client) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		logger:     util.Component("apiclient"),
	}
}

// BaseURL returns the backend root every path is appended to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Request describes one backend call.
type Request struct {
	Method  string
	Path    string
	Token   string
	Headers map[string]string
	Body    any
	Query   url.Values
	// Resource labels metrics and spans.
	Resource string
}

// Fetch performs req and normalizes whatever comes back into an envelope.
// Transport failures, non-JSON responses and undecodable bodies all become
// the generic 500 envelope. Nothing is retried.
func Fetch[T any](ctx context.Context, c *Client, req Request) *models.APIResponse[T] {
	ctx, span := util.StartSpan(ctx, "apiclient.Fetch "+req.Method+" "+req.Path)
	defer span.End()

	start := time.Now()
	resp := doFetch[T](ctx, c, req)

	status := string(resp.Status)
	util.BackendRequestDuration.WithLabelValues(req.Resource, req.Method, status).Observe(time.Since(start).Seconds())
	util.BackendRequestsTotal.WithLabelValues(req.Resource, req.Method, status).Inc()
	util.RecordEnvelope(span, status, resp.StatusCode, resp.Message)

	return resp
}

func doFetch[T any](ctx context.Context, c *Client, req Request) *models.APIResponse[T] {
	target := c.baseURL + req.Path
	if len(req.Query) > 0 {
		target += "?" + req.Query.Encode()
	}

	var body io.Reader
	if req.Body != nil {
		raw, err := json.Marshal(req.Body)
		if err != nil {
			c.logger.Error("Failed to encode request body",
				zap.String("path", req.Path),
				zap.Error(err))
			return models.Unexpected[T]()
		}
		body = bytes.NewReader(raw)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, target, body)
	if err != nil {
		c.logger.Error("Failed to build request", zap.String("url", target), zap.Error(err))
		return models.Unexpected[T]()
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	if req.Token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+req.Token)
	}
	for k, v := range req.Headers {
		httpReq.Header.Set(k, v)
	}

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.logger.Error("Backend request failed",
			zap.String("method", req.Method),
			zap.String("url", target),
			zap.Error(err))
		return models.Unexpected[T]()
	}
	defer httpResp.Body.Close()

	if ct := httpResp.Header.Get("Content-Type"); !strings.Contains(ct, "application/json") {
		c.logger.Error("Non-JSON response received",
			zap.String("url", target),
			zap.Int("http_status", httpResp.StatusCode),
			zap.String("content_type", ct))
		_, _ = io.Copy(io.Discard, httpResp.Body)
		return models.Unexpected[T]()
	}

	var envelope models.APIResponse[T]
	if err := json.NewDecoder(httpResp.Body).Decode(&envelope); err != nil {
		c.logger.Error("Failed to decode backend response",
			zap.String("url", target),
			zap.Error(err))
		return models.Unexpected[T]()
	}
	if envelope.StatusCode == 0 {
		envelope.StatusCode = httpResp.StatusCode
	}

	c.logger.Debug("Backend response",
		zap.String("method", req.Method),
		zap.String("path", req.Path),
		zap.String("status", string(envelope.Status)),
		zap.Int("status_code", envelope.StatusCode))

	return envelope.Normalize()
}

// PageQuery builds the page/limit query every list endpoint accepts.
func PageQuery(page, limit int) url.Values {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("limit", strconv.Itoa(limit))
	return q
}

// ResourcePath joins a collection path and an id.
func ResourcePath(collection, id string) string {
	return fmt.Sprintf("%s/%s", collection, url.PathEscape(id))
}
