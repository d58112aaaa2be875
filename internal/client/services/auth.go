// Package services contains the request flows of the rfidcredits client:
// logging in (AuthService) and topping up a tag (CreditService). Both run
// on one client.Executor, and through it on one shared cookie jar.
package services

import (
	"context"
	"net/http"
	"net/url"

	"github.com/dmitrijs2005/rfidcredits/internal/client/client"
	"github.com/dmitrijs2005/rfidcredits/internal/client/models"
	"github.com/dmitrijs2005/rfidcredits/internal/common"
	"github.com/dmitrijs2005/rfidcredits/internal/logging"
)

// AuthService establishes the server session.
//
// Login posts the credentials with redirects disabled. The server signals
// success with 303 See Other, having set the session cookie; every other
// status, 200 included, is a failure reported as
// client.ErrAuthenticationFailed. Transport failures come back as
// *client.TransportError. Nothing is retried.
type AuthService interface {
	Login(ctx context.Context, username string, password []byte) (models.Outcome, error)
}

type authService struct {
	exec   client.Executor
	logger logging.Logger
}

// NewAuthService binds an AuthService to the shared executor.
func NewAuthService(exec client.Executor, logger logging.Logger) AuthService {
	return &authService{exec: exec, logger: logger}
}

func (a *authService) Login(ctx context.Context, username string, password []byte) (models.Outcome, error) {
	fields := url.Values{}
	fields.Set(common.FieldUsername, username)
	fields.Set(common.FieldPassword, string(password))

	status, err := a.exec.PostForm(ctx, common.LoginPath, fields, false)
	if err != nil {
		return models.Outcome{Result: models.Failure}, err
	}

	if status != http.StatusSeeOther {
		a.logger.Info(ctx, "login rejected", "user", username, "status", status)
		return models.Outcome{StatusCode: status, Result: models.Failure}, client.ErrAuthenticationFailed
	}

	a.logger.Info(ctx, "login accepted", "user", username)
	return models.Outcome{StatusCode: status, Result: models.Success}, nil
}
