package llmclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/martinemde/aifallback/schema"
)

// Middleware wraps a completion call. It receives the request and a next
// function that calls the downstream handler, and returns the response.
type Middleware func(ctx context.Context, req Request, next func(context.Context, Request) (*ChatResponse, error)) (*ChatResponse, error)

// Client issues chat-completion requests to an OpenAI-compatible endpoint.
// It performs exactly one outbound request per call and is safe for
// concurrent use; the only shared resource is the underlying transport.
type Client struct {
	httpClient *http.Client
	baseURL    string
	creds      CredentialSource
	model      string
	middleware []Middleware
	logger     *slog.Logger
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient sets the HTTP client used for outbound requests. Timeouts
// are the transport's responsibility; the client imposes none of its own.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) { c.httpClient = hc }
}

// WithBaseURL sets the completion service base URL.
func WithBaseURL(url string) ClientOption {
	return func(c *Client) { c.baseURL = url }
}

// WithCredentials sets the API key source.
func WithCredentials(creds CredentialSource) ClientOption {
	return func(c *Client) { c.creds = creds }
}

// WithDefaultModel sets the model used when a request does not name one.
func WithDefaultModel(model string) ClientOption {
	return func(c *Client) { c.model = model }
}

// WithClientMiddleware adds middleware to the client.
func WithClientMiddleware(mw ...Middleware) ClientOption {
	return func(c *Client) { c.middleware = append(c.middleware, mw...) }
}

// WithLogger sets the structured logger used for request diagnostics.
func WithLogger(logger *slog.Logger) ClientOption {
	return func(c *Client) { c.logger = logger }
}

// NewClient creates a Client with the given options.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		httpClient: &http.Client{
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		baseURL: DefaultBaseURL,
		creds:   EnvCredentials{},
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NewClientFromEnv creates a Client configured from the environment.
func NewClientFromEnv(opts ...ClientOption) (*Client, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, &ConfigurationError{SDKError: SDKError{
			Message: "cannot read environment configuration",
			Cause:   err,
		}}
	}

	base := []ClientOption{
		WithBaseURL(cfg.BaseURL),
		WithCredentials(EnvCredentials{}),
	}
	if cfg.Model != "" {
		base = append(base, WithDefaultModel(cfg.Model))
	}
	return NewClient(append(base, opts...)...), nil
}

// Do routes a request through the middleware chain to the transport and
// returns the parsed response envelope.
func (c *Client) Do(ctx context.Context, req Request) (*ChatResponse, error) {
	if req.Model == "" {
		req.Model = c.model
	}
	if req.Model == "" {
		if info := DefaultStructuredModel(); info != nil {
			req.Model = info.ID
		}
	}

	handler := c.send

	// Apply middleware in reverse order so first registered runs first.
	for i := len(c.middleware) - 1; i >= 0; i-- {
		mw := c.middleware[i]
		next := handler
		handler = func(ctx context.Context, r Request) (*ChatResponse, error) {
			return mw(ctx, r, next)
		}
	}

	return handler(ctx, req)
}

// Complete sends a plain-text request and returns the first choice's
// content.
func (c *Client) Complete(ctx context.Context, req Request) (string, error) {
	req.Schema = nil
	resp, err := c.Do(ctx, req)
	if err != nil {
		return "", err
	}
	return resp.Text(), nil
}

// CompleteStructured sends a structured-output request and returns the
// first choice's content after validating it against the request schema.
// The backend is trusted to emit schema-conformant JSON; validation guards
// against silent drift rather than coercing.
func (c *Client) CompleteStructured(ctx context.Context, req Request) ([]byte, error) {
	if req.Schema == nil {
		return nil, &ConfigurationError{SDKError: SDKError{
			Message: "structured completion requires a target schema",
		}}
	}

	resp, err := c.Do(ctx, req)
	if err != nil {
		return nil, err
	}

	content := []byte(resp.Text())
	if err := req.Schema.Validate(content); err != nil {
		return nil, &DecodeError{SDKError: SDKError{
			Message: fmt.Sprintf("model output does not conform to schema %q", req.Schema.Name),
			Cause:   err,
		}}
	}
	return content, nil
}

// CompleteTyped derives the schema for T, performs a structured completion,
// and strictly deserializes the content into T. Unknown fields are
// rejected rather than silently dropped.
func CompleteTyped[T any](ctx context.Context, c *Client, req Request) (T, error) {
	var out T

	if req.Schema == nil {
		def := schema.Derive[T]()
		req.Schema = &def
	}

	content, err := c.CompleteStructured(ctx, req)
	if err != nil {
		return out, err
	}

	dec := json.NewDecoder(bytes.NewReader(content))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&out); err != nil {
		return out, &DecodeError{SDKError: SDKError{
			Message: fmt.Sprintf("cannot deserialize model output as %q", req.Schema.Name),
			Cause:   err,
		}}
	}
	return out, nil
}

// send performs the single outbound HTTP request. The credential check runs
// before anything touches the network so a missing key fails fast as a
// ConfigurationError.
func (c *Client) send(ctx context.Context, req Request) (*ChatResponse, error) {
	apiKey, err := c.creds.APIKey()
	if err != nil {
		return nil, err
	}

	messages := make([]ChatMessage, 0, 2)
	if req.System != "" {
		messages = append(messages, ChatMessage{Role: RoleSystem, Content: req.System})
	}
	messages = append(messages, ChatMessage{Role: RoleUser, Content: req.Prompt})

	body := chatRequest{
		Model:    req.Model,
		Messages: messages,
	}
	if req.Schema != nil {
		body.ResponseFormat = &ResponseFormat{
			Type: "json_schema",
			JSONSchema: &JSONSchemaSpec{
				Name:   req.Schema.Name,
				Schema: req.Schema.Schema,
			},
		}
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, &NetworkError{SDKError: SDKError{
			Message: "cannot marshal request body",
			Cause:   err,
		}}
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return nil, &NetworkError{SDKError: SDKError{
			Message: "cannot create request",
			Cause:   err,
		}}
	}
	httpReq.Header.Set("Authorization", "Bearer "+apiKey)
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("X-Request-ID", uuid.NewString())

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, &NetworkError{SDKError: SDKError{
			Message: "completion request failed",
			Cause:   err,
		}}
	}
	defer httpResp.Body.Close()

	raw, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, &NetworkError{SDKError: SDKError{
			Message: "cannot read response body",
			Cause:   err,
		}}
	}

	if httpResp.StatusCode < 200 || httpResp.StatusCode >= 300 {
		return nil, &BackendError{
			SDKError:   SDKError{Message: string(raw)},
			StatusCode: httpResp.StatusCode,
		}
	}

	var resp ChatResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, &DecodeError{SDKError: SDKError{
			Message: "cannot parse response envelope",
			Cause:   err,
		}}
	}
	if len(resp.Choices) == 0 {
		return nil, &EmptyResponseError{SDKError: SDKError{
			Message: "no choices in response",
		}}
	}

	c.logger.Debug("completion finished",
		"model", req.Model,
		"finish_reason", resp.Choices[0].FinishReason,
		"total_tokens", resp.Usage.TotalTokens,
	)
	return &resp, nil
}
