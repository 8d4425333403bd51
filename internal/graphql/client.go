package graphql

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	json "github.com/goccy/go-json"
	retryablehttp "github.com/hashicorp/go-retryablehttp"
	"github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"
)

// QueryFunc issues a single GraphQL request and returns the raw JSON of the
// response's data member. Cancelling ctx abandons the request.
type QueryFunc func(ctx context.Context, req Request) ([]byte, error)

// Request is a GraphQL document plus its variables.
type Request struct {
	Query         string
	Variables     map[string]any
	OperationName string
}

// Key identifies the request for memoization. Variables are encoded with
// sorted map keys so equal requests always produce equal keys.
func (r Request) Key() string {
	if len(r.Variables) == 0 {
		return r.OperationName + "\x00" + r.Query
	}
	vars, err := json.Marshal(r.Variables)
	if err != nil {
		vars = []byte(fmt.Sprintf("%v", r.Variables))
	}
	return r.OperationName + "\x00" + r.Query + "\x00" + string(vars)
}

// Config holds per-endpoint client settings.
type Config struct {
	Headers   map[string]string
	Timeout   time.Duration
	RetryMax  int
	UserAgent string
	Logger    logrus.FieldLogger
}

// Client posts GraphQL documents to a single endpoint.
type Client struct {
	endpoint  *url.URL
	http      *retryablehttp.Client
	headers   map[string]string
	userAgent string
}

const (
	defaultUserAgent = "liftoff/0.1"
	defaultTimeout   = 10 * time.Second
	maxResponseBytes = 16 << 20
)

// New returns the query function of a freshly constructed client.
func New(endpoint string, cfg Config) (QueryFunc, error) {
	c, err := NewClient(endpoint, cfg)
	if err != nil {
		return nil, err
	}
	return c.Query, nil
}

// NewClient builds a Client bound to endpoint.
func NewClient(endpoint string, cfg Config) (*Client, error) {
	base, err := parseEndpoint(endpoint)
	if err != nil {
		return nil, err
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	retryMax := cfg.RetryMax
	if retryMax < 0 {
		retryMax = 0
	}
	userAgent := strings.TrimSpace(cfg.UserAgent)
	if userAgent == "" {
		userAgent = defaultUserAgent
	}
	logger := cfg.Logger
	if logger == nil {
		logger = discardLogger()
	}

	rc := retryablehttp.NewClient()
	rc.RetryMax = retryMax
	rc.RetryWaitMin = 250 * time.Millisecond
	rc.RetryWaitMax = 2 * time.Second
	rc.HTTPClient.Timeout = timeout
	rc.Logger = leveledLogger{log: logger.WithField("endpoint", base.String())}
	rc.ErrorHandler = retryablehttp.PassthroughErrorHandler

	headers := make(map[string]string, len(cfg.Headers))
	for k, v := range cfg.Headers {
		if name := strings.TrimSpace(k); name != "" {
			headers[name] = v
		}
	}

	return &Client{
		endpoint:  base,
		http:      rc,
		headers:   headers,
		userAgent: userAgent,
	}, nil
}

// Endpoint returns the URL requests are posted to.
func (c *Client) Endpoint() string {
	if c == nil || c.endpoint == nil {
		return ""
	}
	return c.endpoint.String()
}

// Query posts req and returns the data member of the response.
func (c *Client) Query(ctx context.Context, req Request) ([]byte, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	if strings.TrimSpace(req.Query) == "" {
		return nil, fmt.Errorf("query document is empty")
	}

	body, err := json.Marshal(requestBody{
		Query:         req.Query,
		Variables:     req.Variables,
		OperationName: req.OperationName,
	})
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	endpoint := c.endpoint.String()
	httpReq, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", c.userAgent)
	for k, v := range c.headers {
		httpReq.Header.Set(k, v)
	}

	// The passthrough handler hands back the last response together with the
	// retry policy's error once retries run out; a response wins.
	resp, err := c.http.Do(httpReq)
	if resp == nil {
		if err == nil {
			err = fmt.Errorf("no response")
		}
		return nil, &TransportError{Endpoint: endpoint, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, &TransportError{Endpoint: endpoint, Err: fmt.Errorf("read response: %w", err)}
	}

	if resp.StatusCode >= 400 {
		return nil, &ResponseError{
			Endpoint: endpoint,
			Status:   resp.StatusCode,
			Messages: errorMessages(raw),
		}
	}
	return extractData(endpoint, resp.StatusCode, raw)
}

type requestBody struct {
	Query         string         `json:"query"`
	Variables     map[string]any `json:"variables,omitempty"`
	OperationName string         `json:"operationName,omitempty"`
}

func extractData(endpoint string, status int, raw []byte) ([]byte, error) {
	if !gjson.ValidBytes(bytes.TrimSpace(raw)) {
		return nil, &ResponseError{Endpoint: endpoint, Status: status, Messages: []string{"malformed JSON body"}}
	}
	if msgs := errorMessages(raw); len(msgs) > 0 {
		return nil, &ResponseError{Endpoint: endpoint, Status: status, Messages: msgs}
	}
	data := gjson.GetBytes(raw, "data")
	if !data.Exists() || data.Type == gjson.Null {
		return nil, &ResponseError{Endpoint: endpoint, Status: status, Messages: []string{"response has no data"}}
	}
	return []byte(data.Raw), nil
}

// errorMessages collects errors[].message from a GraphQL envelope.
func errorMessages(raw []byte) []string {
	if !gjson.ValidBytes(raw) {
		return nil
	}
	errs := gjson.GetBytes(raw, "errors")
	if !errs.IsArray() {
		return nil
	}
	var msgs []string
	errs.ForEach(func(_, value gjson.Result) bool {
		msg := strings.TrimSpace(value.Get("message").String())
		if msg == "" {
			msg = value.Raw
		}
		msgs = append(msgs, msg)
		return true
	})
	return msgs
}

func parseEndpoint(endpoint string) (*url.URL, error) {
	trimmed := strings.TrimSpace(endpoint)
	if trimmed == "" {
		return nil, fmt.Errorf("endpoint is empty")
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "https://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse endpoint %q: %w", endpoint, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("parse endpoint %q: unsupported scheme %q", endpoint, u.Scheme)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("parse endpoint %q: missing host", endpoint)
	}
	u.Fragment = ""
	return u, nil
}

// leveledLogger adapts a logrus logger to retryablehttp.LeveledLogger.
type leveledLogger struct {
	log logrus.FieldLogger
}

func (l leveledLogger) Error(msg string, kv ...interface{}) { l.with(kv).Error(msg) }
func (l leveledLogger) Info(msg string, kv ...interface{})  { l.with(kv).Debug(msg) }
func (l leveledLogger) Debug(msg string, kv ...interface{}) { l.with(kv).Debug(msg) }
func (l leveledLogger) Warn(msg string, kv ...interface{})  { l.with(kv).Warn(msg) }

func (l leveledLogger) with(kv []interface{}) logrus.FieldLogger {
	fields := make(logrus.Fields, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			key = fmt.Sprint(kv[i])
		}
		fields[key] = kv[i+1]
	}
	return l.log.WithFields(fields)
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
