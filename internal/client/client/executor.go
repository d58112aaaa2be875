package client

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrijs2005/rfidcredits/internal/common"
	"github.com/dmitrijs2005/rfidcredits/internal/logging"
	"github.com/dmitrijs2005/rfidcredits/internal/netx"
	"github.com/google/uuid"
)

// Executor is the request primitive the services are written against.
type Executor interface {
	PostForm(ctx context.Context, path string, fields url.Values, followRedirects bool) (int, error)
}

// FormExecutor posts URL-encoded forms to one server through the cookie jar
// of a SessionContext.
type FormExecutor struct {
	baseURL  *url.URL
	follow   *http.Client
	noFollow *http.Client
	logger   logging.Logger
}

// newRequestID is a test seam.
var newRequestID = uuid.NewString

// NewFormExecutor builds an executor for baseURL. A zero timeout leaves the
// transport defaults in place.
func NewFormExecutor(baseURL string, session *SessionContext, timeout time.Duration, logger logging.Logger) (*FormExecutor, error) {
	base, err := netx.ParseBaseURL(baseURL)
	if err != nil {
		return nil, err
	}

	follow := &http.Client{Jar: session.Jar(), Timeout: timeout}
	noFollow := &http.Client{
		Jar:     session.Jar(),
		Timeout: timeout,
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}

	return &FormExecutor{baseURL: base, follow: follow, noFollow: noFollow, logger: logger}, nil
}

// BaseURL returns a copy of the server base.
func (e *FormExecutor) BaseURL() *url.URL {
	u := *e.baseURL
	return &u
}

// PostForm sends fields as a form body to path and returns the status code of
// the first response (followRedirects=false) or of the last hop of the
// redirect chain (followRedirects=true). The response body is discarded.
func (e *FormExecutor) PostForm(ctx context.Context, path string, fields url.Values, followRedirects bool) (int, error) {
	target := netx.ResolvePath(e.baseURL, path)
	requestID := newRequestID()
	log := e.logger.With("request_id", requestID, "url", target)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, target, strings.NewReader(fields.Encode()))
	if err != nil {
		return 0, &TransportError{Op: "build request", URL: target, Err: err}
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set(common.RequestIDHeaderName, requestID)

	c := e.noFollow
	if followRedirects {
		c = e.follow
	}

	log.Debug(ctx, "sending form", "follow_redirects", followRedirects)

	resp, err := c.Do(req)
	if err != nil {
		log.Warn(ctx, "request failed", "error", err)
		return 0, &TransportError{Op: http.MethodPost, URL: target, Err: err}
	}
	defer resp.Body.Close()

	// the status line is all we need; drain so the connection can be reused
	_, _ = io.Copy(io.Discard, resp.Body)

	log.Debug(ctx, "response received", "status", resp.StatusCode)
	return resp.StatusCode, nil
}
