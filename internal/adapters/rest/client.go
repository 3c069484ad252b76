package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/libra-community/libra-cli/internal/domain"
	"github.com/libra-community/libra-cli/internal/usecase"
)

const defaultTimeout = 30 * time.Second

// ErrNoNodeURL is returned by calls made without a node URL
var ErrNoNodeURL = errors.New("no node URL configured: set NODE_URL or profile.upstream_nodes in 0L.toml")

// NodeError is returned when the node answers a request with a non-2xx status
type NodeError struct {
	StatusCode int
	Message    string
	ErrorCode  string
}

func (e *NodeError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = http.StatusText(e.StatusCode)
	}
	if e.ErrorCode != "" {
		return fmt.Sprintf("node returned %d (%s): %s", e.StatusCode, e.ErrorCode, msg)
	}
	return fmt.Sprintf("node returned %d: %s", e.StatusCode, msg)
}

type errorBody struct {
	Message   string `json:"message"`
	ErrorCode string `json:"error_code"`
}

// Client talks to the node REST API
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *slog.Logger
}

// NewClient creates a client for the node at baseURL.
// The URL is only checked when a request is made.
func NewClient(baseURL string, log *slog.Logger) *Client {
	if log == nil {
		log = slog.Default()
	}

	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
		log: log,
	}
}

// BaseURL returns the node URL requests are sent to
func (c *Client) BaseURL() string {
	return c.baseURL
}

// View calls a read-only function and returns the raw JSON values it produced
func (c *Client) View(ctx context.Context, req domain.ViewRequest) ([]json.RawMessage, error) {
	if strings.TrimSpace(c.baseURL) == "" {
		return nil, ErrNoNodeURL
	}

	endpoint, err := url.JoinPath(c.baseURL, "v1", "view")
	if err != nil {
		return nil, fmt.Errorf("invalid node URL %q: %w", c.baseURL, err)
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal view request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	c.log.Debug("calling view function", "function", req.Function)

	respBody, err := c.do(httpReq)
	if err != nil {
		return nil, err
	}

	var values []json.RawMessage
	if err := json.Unmarshal(respBody, &values); err != nil {
		return nil, fmt.Errorf("%w: view response is not a JSON array: %v", domain.ErrSerialization, err)
	}
	if values == nil {
		values = []json.RawMessage{}
	}

	return values, nil
}

// LedgerInfo fetches GET <node>/v1, which any live node answers
func (c *Client) LedgerInfo(ctx context.Context) (*domain.LedgerInfo, error) {
	if strings.TrimSpace(c.baseURL) == "" {
		return nil, ErrNoNodeURL
	}

	endpoint, err := url.JoinPath(c.baseURL, "v1")
	if err != nil {
		return nil, fmt.Errorf("invalid node URL %q: %w", c.baseURL, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Accept", "application/json")

	respBody, err := c.do(httpReq)
	if err != nil {
		return nil, err
	}

	var info domain.LedgerInfo
	if err := json.Unmarshal(respBody, &info); err != nil {
		return nil, fmt.Errorf("%w: ledger info: %v", domain.ErrSerialization, err)
	}
	return &info, nil
}

// do sends req and returns the body of a 2xx response
func (c *Client) do(req *http.Request) ([]byte, error) {
	c.log.Debug("calling node", "method", req.Method, "endpoint", req.URL.String())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call %s: %w", req.URL, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		nodeErr := &NodeError{StatusCode: resp.StatusCode}
		var eb errorBody
		if json.Unmarshal(respBody, &eb) == nil && eb.Message != "" {
			nodeErr.Message = eb.Message
			nodeErr.ErrorCode = eb.ErrorCode
		} else {
			nodeErr.Message = strings.TrimSpace(string(respBody))
		}
		return nil, nodeErr
	}

	return respBody, nil
}

var (
	_ usecase.ViewClient  = (*Client)(nil)
	_ usecase.NodeChecker = (*Client)(nil)
)
