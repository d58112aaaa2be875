package client

import (
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/url"

	"golang.org/x/net/publicsuffix"
)

// SessionContext holds the cookie jar shared by all requests of one client
// process. The jar lives until the process exits.
type SessionContext struct {
	jar *cookiejar.Jar
}

func NewSessionContext() (*SessionContext, error) {
	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		return nil, fmt.Errorf("cookie jar: %w", err)
	}
	return &SessionContext{jar: jar}, nil
}

// Jar exposes the jar for http.Client wiring.
func (s *SessionContext) Jar() http.CookieJar {
	return s.jar
}

// HasCookie reports whether a cookie called name would be sent to u.
func (s *SessionContext) HasCookie(u *url.URL, name string) bool {
	for _, c := range s.jar.Cookies(u) {
		if c.Name == name {
			return true
		}
	}
	return false
}
