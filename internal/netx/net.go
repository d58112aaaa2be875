// Package netx holds URL helpers shared by the HTTP client code.
package netx

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

var ErrInvalidBaseURL = errors.New("invalid base url")

// ParseBaseURL parses an absolute http or https server base such as
// "http://10.0.0.5:8000". A trailing slash is dropped; query and fragment are
// rejected.
func ParseBaseURL(raw string) (*url.URL, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBaseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("%w: scheme must be http or https, got %q", ErrInvalidBaseURL, u.Scheme)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("%w: missing host", ErrInvalidBaseURL)
	}
	if u.RawQuery != "" || u.Fragment != "" {
		return nil, fmt.Errorf("%w: query and fragment are not allowed", ErrInvalidBaseURL)
	}
	u.Path = strings.TrimRight(u.Path, "/")
	u.RawPath = ""
	return u, nil
}

// ResolvePath appends an endpoint path to base, keeping any base path prefix.
func ResolvePath(base *url.URL, path string) string {
	u := *base
	u.Path = base.Path + "/" + strings.TrimLeft(path, "/")
	return u.String()
}
