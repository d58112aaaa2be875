package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/dmitrijs2005/rfidcredits/internal/common"
	"github.com/dmitrijs2005/rfidcredits/internal/server/auth"
	"github.com/google/uuid"
)

type ctxKey string

const claimsKey ctxKey = "claims"

var newRequestID = uuid.NewString

// requireSession rejects requests without a valid session cookie and puts
// the session claims into the request context.
func (s *HTTPServer) requireSession(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := r.Cookie(common.SessionCookieName)
		if err != nil || c.Value == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		claims, err := s.users.Authenticate(c.Value)
		if err != nil {
			s.logger.Debug(r.Context(), "session rejected", "error", err)
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		next(w, r.WithContext(context.WithValue(r.Context(), claimsKey, claims)))
	}
}

func claimsFrom(ctx context.Context) *auth.Claims {
	c, _ := ctx.Value(claimsKey).(*auth.Claims)
	return c
}

// requireAdmin reports whether the session in ctx may change balances.
func requireAdmin(ctx context.Context) error {
	c := claimsFrom(ctx)
	switch {
	case c == nil:
		return common.ErrorUnauthorized
	case !c.Admin:
		return common.ErrorForbidden
	}
	return nil
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// logging records one line per request and echoes the request id, minting
// one when the caller did not send it.
func (s *HTTPServer) logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(common.RequestIDHeaderName)
		if id == "" {
			id = newRequestID()
		}
		w.Header().Set(common.RequestIDHeaderName, id)

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		next.ServeHTTP(rec, r)

		s.logger.Info(r.Context(), "request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start),
			"request_id", id,
		)
	})
}
