package httpapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/rfidcredits/internal/common"
	"github.com/dmitrijs2005/rfidcredits/internal/logging"
	"github.com/dmitrijs2005/rfidcredits/internal/server/auth"
	"github.com/dmitrijs2005/rfidcredits/internal/server/models"
	"github.com/dmitrijs2005/rfidcredits/internal/server/services"
)

const (
	adminToken = "admin-token"
	userToken  = "user-token"
)

type fakeUsers struct {
	loginErr error
	logins   []string
}

func (f *fakeUsers) Login(_ context.Context, userName string, password []byte) (*services.Session, error) {
	f.logins = append(f.logins, userName+":"+string(password))
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	return &services.Session{
		Token:   adminToken,
		User:    &models.User{ID: 1, UserName: userName, IsAdmin: true},
		Expires: time.Now().Add(time.Hour),
	}, nil
}

func (f *fakeUsers) Authenticate(token string) (*auth.Claims, error) {
	switch token {
	case adminToken:
		return &auth.Claims{UserID: 1, Admin: true}, nil
	case userToken:
		return &auth.Claims{UserID: 2}, nil
	default:
		return nil, common.ErrInvalidToken
	}
}

type addCall struct {
	rfidID string
	amount int64
}

type fakeCredits struct {
	adds []addCall

	addOut int64
	addErr error

	deductOut int64
	deductErr error

	cards    []models.Card
	cardsErr error
}

func (f *fakeCredits) AddCredits(_ context.Context, rfidID string, amount int64) (int64, error) {
	f.adds = append(f.adds, addCall{rfidID, amount})
	return f.addOut, f.addErr
}

func (f *fakeCredits) Deduct(_ context.Context, _ string) (int64, error) {
	return f.deductOut, f.deductErr
}

func (f *fakeCredits) Cards(context.Context) ([]models.Card, error) {
	return f.cards, f.cardsErr
}

func newTestServer(t *testing.T, us *fakeUsers, cs *fakeCredits) http.Handler {
	t.Helper()
	return NewHTTPServer("127.0.0.1:0", logging.NewNopLogger(), us, cs).Handler()
}

func formRequest(path string, fields url.Values, token string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(fields.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if token != "" {
		req.AddCookie(&http.Cookie{Name: common.SessionCookieName, Value: token})
	}
	return req
}

func jsonRequest(path, body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func serve(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}
