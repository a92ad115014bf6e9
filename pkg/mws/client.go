// Package mws is a client for the Amazon Marketplace Web Service API:
// order retrieval, product and pricing lookups, inventory and price feeds,
// and report generation. Every call signs its query string with the
// Signature Version 2 scheme and normalizes the XML response shapes the
// service returns.
package mws

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/merchantcs/mws-go/internal/metrics"
)

const (
	defaultAppName    = "merchantcs/mws-go"
	defaultAppVersion = "0.0.*"
)

// Config holds the credentials and identity for one seller account. All
// fields except AuthToken, AppName and AppVersion are required.
type Config struct {
	SellerID      string
	MarketplaceID string
	AccessKeyID   string
	SecretKey     string

	// AuthToken is the MWS auth token a developer uses when calling on
	// behalf of another seller.
	AuthToken string

	AppName    string
	AppVersion string
}

func (c *Config) validate() error {
	required := []struct {
		name, value string
	}{
		{"MarketplaceID", c.MarketplaceID},
		{"SellerID", c.SellerID},
		{"AccessKeyID", c.AccessKeyID},
		{"SecretKey", c.SecretKey},
	}
	for _, f := range required {
		if f.value == "" {
			return &ConfigError{Field: f.name, Reason: "required field is not set"}
		}
	}
	if _, ok := MarketplaceHost(c.MarketplaceID); !ok {
		return &ConfigError{Field: "MarketplaceID", Reason: "unknown marketplace id " + c.MarketplaceID}
	}
	return nil
}

// Client is an MWS API client. It is safe to share between calls; the
// configuration is write-once at construction and every call builds its own
// parameter set.
type Client struct {
	cfg     Config
	host    string
	baseURL string

	httpClient *http.Client
	limiter    *RateLimiter
	logger     *log.Logger
	quotaHook  func(operation string, q Quota)
	nowFunc    func() time.Time

	debugNextFeed bool
}

// Option configures the Client.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client. Timeouts belong on the
// transport; the client adds none of its own.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithBaseURL overrides the regional endpoint, for tests and proxies. The
// URL's host replaces the regional host in the signed canonical string.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(u, "/")
		if parsed, err := url.Parse(u); err == nil && parsed.Host != "" {
			c.host = parsed.Host
		}
	}
}

// WithRateLimiter injects a throttle applied before every request.
func WithRateLimiter(r *RateLimiter) Option {
	return func(c *Client) {
		c.limiter = r
	}
}

// WithLogger sets a structured logger. Without one the client is silent.
func WithLogger(l *log.Logger) Option {
	return func(c *Client) {
		c.logger = l
	}
}

// WithQuotaHook registers a callback invoked with the quota headers of each
// response that carries them.
func WithQuotaHook(f func(operation string, q Quota)) Option {
	return func(c *Client) {
		c.quotaHook = f
	}
}

// WithNowFunc overrides the time function for testing, freezing the
// Timestamp parameter.
func WithNowFunc(f func() time.Time) Option {
	return func(c *Client) {
		c.nowFunc = f
	}
}

// New validates the configuration and creates a Client bound to the
// marketplace's regional host.
func New(cfg Config, opts ...Option) (*Client, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if cfg.AppName == "" {
		cfg.AppName = defaultAppName
	}
	if cfg.AppVersion == "" {
		cfg.AppVersion = defaultAppVersion
	}

	host, _ := MarketplaceHost(cfg.MarketplaceID)
	c := &Client{
		cfg:        cfg,
		host:       host,
		baseURL:    "https://" + host,
		httpClient: &http.Client{},
		nowFunc:    time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// DebugNextFeed makes the next feed submission return its generated body
// instead of transmitting it. The flag clears after one use.
func (c *Client) DebugNextFeed() {
	c.debugNextFeed = true
}

// do performs one signed call: merge the standard parameter block with the
// operation query, sort, sign, send, and surface transport errors. body is
// non-nil only for feed submissions.
func (c *Client) do(ctx context.Context, operation string, query map[string]string, body []byte) (*rawResponse, error) {
	ep, err := resolveEndpoint(operation)
	if err != nil {
		return nil, err
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limit: %w", err)
		}
	}

	params := map[string]string{
		"Timestamp":        c.nowFunc().UTC().Format(timestampFormat),
		"AWSAccessKeyId":   c.cfg.AccessKeyID,
		"Action":           ep.Action,
		"SellerId":         c.cfg.SellerID,
		"SignatureMethod":  signatureMethod,
		"SignatureVersion": signatureVersion,
		"Version":          ep.Version,
	}
	for k, v := range query {
		params[k] = v
	}

	// The default marketplace applies unless the operation set its own
	// marketplace parameter under any spelling.
	if !hasMarketplaceParam(params) {
		params["MarketplaceId.Id.1"] = c.cfg.MarketplaceID
	}

	if c.cfg.AuthToken != "" {
		params["MWSAuthToken"] = c.cfg.AuthToken
	}

	requestID := uuid.NewString()
	headers := http.Header{}
	headers.Set("Accept", "application/xml")
	headers.Set("x-amazon-user-agent", c.cfg.AppName+"/"+c.cfg.AppVersion)
	headers.Set("X-Request-Id", requestID)

	if ep.Action == "SubmitFeed" {
		// The server verifies the SubmitFeed signature over a reduced
		// parameter subset; the body is authenticated separately via
		// Content-MD5.
		delete(params, "MarketplaceId.Id.1")
		delete(params, "SellerId")

		headers.Set("Content-MD5", contentMD5(body))
		headers.Set("Content-Type", "text/xml; charset=iso-8859-1")
		headers.Set("Host", c.host)
	}

	// Signature is appended after sorting and signing, never part of the
	// signed set.
	params["Signature"] = signCanonical(
		c.cfg.SecretKey,
		canonicalString(ep.Method, c.host, ep.Path, params),
	)

	reqURL := c.baseURL + ep.Path + "?" + canonicalQuery(params)

	var reqBody io.Reader
	if body != nil {
		reqBody = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, ep.Method, reqURL, reqBody)
	if err != nil {
		return nil, fmt.Errorf("creating %s request: %w", operation, err)
	}
	req.Header = headers

	start := c.nowFunc()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.APIErrorsTotal.WithLabelValues(ep.Action).Inc()
		return nil, fmt.Errorf("executing %s request: %w", operation, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading %s response: %w", operation, err)
	}

	metrics.APICallsTotal.WithLabelValues(ep.Action).Inc()
	metrics.RequestDuration.WithLabelValues(ep.Action).
		Observe(time.Since(start).Seconds())

	if q, ok := parseQuota(resp.Header); ok {
		metrics.QuotaMax.WithLabelValues(ep.Action).Set(float64(q.Max))
		metrics.QuotaRemaining.WithLabelValues(ep.Action).Set(float64(q.Remaining))
		if c.quotaHook != nil {
			c.quotaHook(operation, q)
		}
	}

	if c.logger != nil {
		c.logger.Debug(
			"mws request",
			"action", ep.Action,
			"status", resp.StatusCode,
			"duration", time.Since(start),
			"request_id", requestID,
		)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		metrics.APIErrorsTotal.WithLabelValues(ep.Action).Inc()
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Message:    extractErrorMessage(respBody),
		}
	}

	return &rawResponse{body: respBody, header: resp.Header}, nil
}

func hasMarketplaceParam(params map[string]string) bool {
	for _, key := range []string{"MarketplaceId", "MarketplaceId.Id.1", "MarketplaceIdList.Id.1"} {
		if _, ok := params[key]; ok {
			return true
		}
	}
	return false
}

// doXML performs a call and decodes the XML body.
func (c *Client) doXML(ctx context.Context, operation string, query map[string]string) (Node, error) {
	resp, err := c.do(ctx, operation, query, nil)
	if err != nil {
		return nil, err
	}
	return resp.decode()
}

// extractErrorMessage pulls the human-readable message out of an MWS
// ErrorResponse envelope, falling back to the raw body.
func extractErrorMessage(body []byte) string {
	if !bytes.Contains(body, []byte("<ErrorResponse")) {
		if len(body) == 0 {
			return "an error occurred"
		}
		return strings.TrimSpace(string(body))
	}
	n, err := decodeXML(body)
	if err != nil {
		return strings.TrimSpace(string(body))
	}
	if msg := digString(n, "Error", "Message"); msg != "" {
		return msg
	}
	return strings.TrimSpace(string(body))
}
