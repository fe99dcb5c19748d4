// Package backend is the outbound HTTP adapter for the Startova backend
// API. Every resource module routes its calls through Client, which owns
// the base URL, bearer-token attachment, error-envelope decoding, and the
// session-invalidated signal raised on authentication failures.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/Bhuvansai22/Statrtova-Frontend/internal/api/metrics"
	"github.com/Bhuvansai22/Statrtova-Frontend/internal/core/domain"
	"github.com/Bhuvansai22/Statrtova-Frontend/internal/core/ports"
)

const defaultTimeout = 15 * time.Second

// profilePath is special-cased: a 404 here means the account behind the
// token no longer exists, which the backend reports instead of a 401.
const profilePath = "/auth/profile"

// Client issues requests against the backend API.
type Client struct {
	baseURL     string
	http        *http.Client
	log         zerolog.Logger
	invalidated func(ctx context.Context, sid string)
}

// NewClient builds a Client for the given base URL (no trailing slash).
// A default timeout is applied when none is provided.
func NewClient(baseURL string, timeout time.Duration, log zerolog.Logger) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		log:     log,
	}
}

// OnSessionInvalid registers the subscriber notified when the backend
// rejects a session's token. The transport layer only emits the signal;
// clearing state and redirecting are the subscriber's concern.
func (c *Client) OnSessionInvalid(fn func(ctx context.Context, sid string)) {
	c.invalidated = fn
}

// Ping reports whether the backend answers at all. Any HTTP response
// counts as reachable; only transport failures are errors.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL, nil)
	if err != nil {
		return fmt.Errorf("build backend request: %w", err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("backend unreachable: %w", err)
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
	return nil
}

// errorEnvelope is the backend's error body: either a single message or a
// field-validation list.
type errorEnvelope struct {
	Error  string `json:"error"`
	Errors []struct {
		Msg string `json:"msg"`
	} `json:"errors"`
}

// do sends one JSON request. A nil session (or empty token) sends the
// request unauthenticated. out may be nil when the response body is not
// needed.
func (c *Client) do(ctx context.Context, sess *domain.Session, method, path string, query url.Values, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reqBody = bytes.NewReader(raw)
	}

	req, err := c.newRequest(ctx, sess, method, path, query, reqBody)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.send(ctx, sess, req, path, out)
}

// upload sends one multipart request carrying a single file part.
func (c *Client) upload(ctx context.Context, sess *domain.Session, path string, input ports.UploadInput, out any) error {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	hdr := make(textproto.MIMEHeader)
	hdr.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, input.FileName))
	if input.ContentType != "" {
		hdr.Set("Content-Type", input.ContentType)
	}
	part, err := mw.CreatePart(hdr)
	if err != nil {
		return fmt.Errorf("create multipart: %w", err)
	}
	if _, err := io.Copy(part, input.Content); err != nil {
		return fmt.Errorf("read upload content: %w", err)
	}
	if err := mw.Close(); err != nil {
		return fmt.Errorf("finalize multipart: %w", err)
	}

	req, err := c.newRequest(ctx, sess, http.MethodPost, path, nil, &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	return c.send(ctx, sess, req, path, out)
}

func (c *Client) newRequest(ctx context.Context, sess *domain.Session, method, path string, query url.Values, body io.Reader) (*http.Request, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, fmt.Errorf("build backend request: %w", err)
	}
	if sess != nil && sess.Token != "" {
		req.Header.Set("Authorization", "Bearer "+sess.Token)
	}
	return req, nil
}

func (c *Client) send(ctx context.Context, sess *domain.Session, req *http.Request, path string, out any) error {
	start := time.Now()
	resp, err := c.http.Do(req)
	metrics.BackendRequestDuration.WithLabelValues(req.Method).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.BackendRequestsTotal.WithLabelValues(req.Method, "error").Inc()
		return fmt.Errorf("backend request %s %s: %w", req.Method, path, err)
	}
	defer resp.Body.Close()

	metrics.BackendRequestsTotal.WithLabelValues(req.Method, strconv.Itoa(resp.StatusCode)).Inc()

	if resp.StatusCode >= http.StatusBadRequest {
		return c.fail(ctx, sess, path, resp)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode backend response for %s: %w", path, err)
	}
	return nil
}

// fail turns an error response into a domain error. 401 anywhere, or 404
// on the profile endpoint, invalidates the calling session; everything
// else is passed to the caller as a BackendError.
func (c *Client) fail(ctx context.Context, sess *domain.Session, path string, resp *http.Response) error {
	var env errorEnvelope
	_ = json.NewDecoder(resp.Body).Decode(&env) // body may be empty or non-JSON

	if resp.StatusCode == http.StatusUnauthorized ||
		(resp.StatusCode == http.StatusNotFound && path == profilePath) {
		if sess != nil && sess.ID != "" && c.invalidated != nil {
			c.log.Warn().Str("path", path).Int("status", resp.StatusCode).Msg("backend rejected session token")
			c.invalidated(ctx, sess.ID)
		}
		return domain.ErrSessionExpired
	}

	fields := make([]string, 0, len(env.Errors))
	for _, fe := range env.Errors {
		fields = append(fields, fe.Msg)
	}

	msg := env.Error
	if msg == "" && len(fields) == 0 {
		msg = http.StatusText(resp.StatusCode)
	}
	return domain.NewBackendError(resp.StatusCode, msg, fields)
}
