// Package httpapi serves the admin web pages and the gateway JSON endpoints
// of the development server.
package httpapi

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/dmitrijs2005/rfidcredits/internal/common"
	"github.com/dmitrijs2005/rfidcredits/internal/logging"
	"github.com/dmitrijs2005/rfidcredits/internal/server/auth"
	"github.com/dmitrijs2005/rfidcredits/internal/server/models"
	"github.com/dmitrijs2005/rfidcredits/internal/server/services"
)

const shutdownTimeout = 5 * time.Second

// Authenticator is implemented by services.UserService.
type Authenticator interface {
	Login(ctx context.Context, userName string, password []byte) (*services.Session, error)
	Authenticate(token string) (*auth.Claims, error)
}

// CreditKeeper is implemented by services.CreditService.
type CreditKeeper interface {
	AddCredits(ctx context.Context, rfidID string, amount int64) (int64, error)
	Deduct(ctx context.Context, rfidID string) (int64, error)
	Cards(ctx context.Context) ([]models.Card, error)
}

type HTTPServer struct {
	address string
	users   Authenticator
	credits CreditKeeper
	logger  logging.Logger
}

func NewHTTPServer(address string, l logging.Logger, us Authenticator, cs CreditKeeper) *HTTPServer {
	return &HTTPServer{
		address: address,
		logger:  l.With("module", "http_server"),
		users:   us,
		credits: cs,
	}
}

// Handler returns the routed handler wrapped in request logging.
func (s *HTTPServer) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc(http.MethodGet+" "+common.LoginPath, s.loginPage)
	mux.HandleFunc(http.MethodPost+" "+common.LoginPath, s.login)
	mux.HandleFunc(http.MethodGet+" "+common.AdminPath, s.requireSession(s.adminPage))
	mux.HandleFunc(http.MethodPost+" "+common.AddCreditPath, s.requireSession(s.adminAdd))
	mux.HandleFunc(http.MethodPost+" "+common.DeductPath, s.rfidDeduct)
	mux.HandleFunc(http.MethodPost+" "+common.PayoutPath, s.rfidAdd)

	return s.logging(mux)
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *HTTPServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	stopped := make(chan error, 1)
	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		stopped <- srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", listen.Addr().String())

	if err := srv.Serve(listen); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return <-stopped
}
