// Package directory wraps the upstream events REST API. It is a pure
// transport-shaped boundary: no client-side filtering happens here, and every
// call is at-most-once with no retries. Combining server and client filters
// is the reconciler's job in internal/service.
package directory

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	apperrors "github.com/eventdesk/eventdesk/internal/errors"
	"github.com/eventdesk/eventdesk/internal/session"
)

// DefaultLoginPath is the upstream login endpoint.
const DefaultLoginPath = "/auth/login"

// DefaultRegisterPath is where registration is posted. It currently equals
// the login path: the upstream has always been called this way and the
// mismatch is a known discrepancy awaiting a product decision. Correcting it
// is a one-line default change here or an env override.
const DefaultRegisterPath = DefaultLoginPath

const defaultTimeout = 10 * time.Second

// ClientOptions configures a directory client. The client is constructed
// once and passed by reference to whatever composes the application; there is
// no hidden package-level instance.
type ClientOptions struct {
	// BaseURL is the upstream API root, e.g. "https://api.example.com".
	BaseURL string
	// HTTPClient is optional; a client with a 10s timeout is used by default.
	HTTPClient *http.Client
	// Tokens supplies the bearer token for outgoing requests and is cleared
	// when the upstream answers 401/403.
	Tokens *session.TokenStore
	Logger *slog.Logger
	// LoginPath and RegisterPath override the endpoint defaults.
	LoginPath    string
	RegisterPath string
}

// Client talks to the upstream events API.
type Client struct {
	baseURL      string
	httpClient   *http.Client
	tokens       *session.TokenStore
	logger       *slog.Logger
	loginPath    string
	registerPath string
}

// NewClient creates a directory client.
func NewClient(opts ClientOptions) (*Client, error) {
	base := strings.TrimRight(strings.TrimSpace(opts.BaseURL), "/")
	if base == "" {
		return nil, apperrors.Validation("directory base URL is required")
	}
	if _, err := url.Parse(base); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeValidation, "parse directory base URL")
	}
	if opts.Tokens == nil {
		return nil, apperrors.Validation("token store is required")
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	loginPath := opts.LoginPath
	if loginPath == "" {
		loginPath = DefaultLoginPath
	}
	registerPath := opts.RegisterPath
	if registerPath == "" {
		registerPath = DefaultRegisterPath
	}

	return &Client{
		baseURL:      base,
		httpClient:   httpClient,
		tokens:       opts.Tokens,
		logger:       logger,
		loginPath:    loginPath,
		registerPath: registerPath,
	}, nil
}

// request groups the pieces of one upstream call.
type request struct {
	method      string
	path        string
	query       url.Values
	body        io.Reader
	contentType string
}

// do performs one upstream call and decodes a JSON response into out (out may
// be nil for calls whose body is irrelevant). It injects the bearer token
// when one is present, and clears the token store as a side effect of any
// 401/403 answer before returning an unauthorized error.
func (c *Client) do(ctx context.Context, req request, out any) error {
	target := c.baseURL + req.path
	if len(req.query) > 0 {
		target += "?" + req.query.Encode()
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method, target, req.body)
	if err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeInternal, "build upstream request")
	}
	if req.contentType != "" {
		httpReq.Header.Set("Content-Type", req.contentType)
	}
	if token := c.tokens.Token(ctx); token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return apperrors.Wrapf(err, apperrors.ErrCodeUpstream, "%s %s", req.method, req.path)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if err := c.checkStatus(ctx, req, resp); err != nil {
		return err
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return apperrors.Wrapf(err, apperrors.ErrCodeUpstream, "decode %s %s response", req.method, req.path)
	}
	return nil
}

func (c *Client) checkStatus(ctx context.Context, req request, resp *http.Response) error {
	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return nil
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		// Invalidate the session before surfacing the failure, mirroring the
		// transport contract: any 401/403 ends the current session.
		if res := c.tokens.Clear(ctx); res.Err != nil {
			c.logger.WarnContext(ctx, "clear session after auth failure", "error", res.Err)
		}
		return apperrors.Unauthorized(upstreamMessage(resp, "authorization rejected"))
	case resp.StatusCode == http.StatusNotFound:
		return apperrors.NotFound(upstreamMessage(resp, "resource not found"))
	default:
		return apperrors.Upstreamf("%s %s: upstream status %d", req.method, req.path, resp.StatusCode)
	}
}

// upstreamMessage pulls a human-readable message out of an error body when
// the upstream provides one, falling back to a fixed message.
func upstreamMessage(resp *http.Response, fallback string) string {
	var body struct {
		Message string `json:"message"`
		Msg     string `json:"msg"`
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, 4096)).Decode(&body); err == nil {
		if body.Message != "" {
			return body.Message
		}
		if body.Msg != "" {
			return body.Msg
		}
	}
	return fallback
}

// jsonBody encodes v for use as a request body.
func jsonBody(v any) (io.Reader, string, error) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		return nil, "", apperrors.Wrap(err, apperrors.ErrCodeInternal, "encode request body")
	}
	return &buf, "application/json", nil
}

func eventPath(id int64) string {
	return fmt.Sprintf("/events/%d", id)
}
