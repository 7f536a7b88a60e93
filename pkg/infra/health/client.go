package health

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/statusboard/pkg/domain/contract"
	"github.com/m-mizutani/statusboard/pkg/domain/model"
)

// ErrHealthCheckFailed covers every way a health check can fail: transport
// errors, non-2xx responses and bodies that are not a valid HealthStatus.
var ErrHealthCheckFailed = goerr.New("health check failed")

// maxBodySize bounds how much of a response is read
const maxBodySize = 64 * 1024

// Client checks the health route of one service
type Client struct {
	baseURL    string
	httpClient *http.Client
	validator  *contract.Validator
}

// Option is a functional option for Client configuration
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithTimeout bounds the whole request. Zero means no timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient = &http.Client{
			Transport: c.httpClient.Transport,
			Timeout:   timeout,
		}
	}
}

// NewClient creates a client checking the service at baseURL
func NewClient(ctx context.Context, baseURL string, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, goerr.New("base URL is required")
	}

	validator, err := contract.NewValidator(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to build health status validator")
	}

	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
		validator:  validator,
	}
	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// Fetch issues exactly one GET to the health route
func (c *Client) Fetch(ctx context.Context) (*model.HealthStatus, error) {
	url := c.baseURL + contract.HealthPath
	requestID := uuid.NewString()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, goerr.Wrap(ErrHealthCheckFailed, "failed to create request",
			goerr.V("url", url),
			goerr.V("cause", err.Error()),
		)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", requestID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, goerr.Wrap(ErrHealthCheckFailed, "failed to send request",
			goerr.V("url", url),
			goerr.V("request_id", requestID),
			goerr.V("cause", err.Error()),
		)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, goerr.Wrap(ErrHealthCheckFailed, "unexpected status code",
			goerr.V("url", url),
			goerr.V("request_id", requestID),
			goerr.V("status_code", resp.StatusCode),
		)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, goerr.Wrap(ErrHealthCheckFailed, "failed to read response body",
			goerr.V("url", url),
			goerr.V("request_id", requestID),
			goerr.V("cause", err.Error()),
		)
	}

	status, err := c.validator.Validate(body)
	if err != nil {
		return nil, goerr.Wrap(ErrHealthCheckFailed, "invalid response body",
			goerr.V("url", url),
			goerr.V("request_id", requestID),
			goerr.V("cause", err.Error()),
		)
	}

	return status, nil
}
