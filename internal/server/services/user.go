// Package services contains server-side business logic. This file implements
// UserService, which verifies credentials, seeds accounts and issues the
// session JWTs carried in the session cookie.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/rfidcredits/internal/common"
	"github.com/dmitrijs2005/rfidcredits/internal/cryptox"
	"github.com/dmitrijs2005/rfidcredits/internal/server/auth"
	"github.com/dmitrijs2005/rfidcredits/internal/server/config"
	"github.com/dmitrijs2005/rfidcredits/internal/server/models"
	"github.com/dmitrijs2005/rfidcredits/internal/server/repositories/repomanager"
)

// Session is the result of a successful login.
type Session struct {
	Token   string
	User    *models.User
	Expires time.Time
}

type UserService struct {
	db              *sql.DB
	repomanager     repomanager.RepositoryManager
	jwtSecret       []byte
	sessionValidity time.Duration
}

// NewUserService constructs a UserService using repositories and server config.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		db:              db,
		repomanager:     m,
		jwtSecret:       []byte(cfg.SecretKey),
		sessionValidity: cfg.SessionValidityDuration,
	}
}

// Login checks the password and mints a session token. Unknown users and
// wrong passwords both yield common.ErrorUnauthorized.
func (s *UserService) Login(ctx context.Context, userName string, password []byte) (*Session, error) {
	repo := s.repomanager.Users(s.db)
	user, err := repo.GetUserByLogin(ctx, userName)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			// same work as a real check, so timing does not reveal the user
			cryptox.VerifyPassword(password, cryptox.NewSalt(), nil)
			return nil, common.ErrorUnauthorized
		}
		return nil, common.ErrorInternal
	}

	if !cryptox.VerifyPassword(password, user.Salt, user.PasswordHash) {
		return nil, common.ErrorUnauthorized
	}

	token, err := auth.GenerateToken(user.ID, user.IsAdmin, s.jwtSecret, s.sessionValidity)
	if err != nil {
		return nil, common.ErrorInternal
	}

	return &Session{Token: token, User: user, Expires: time.Now().Add(s.sessionValidity)}, nil
}

// Authenticate validates a session token.
func (s *UserService) Authenticate(token string) (*auth.Claims, error) {
	return auth.ParseToken(token, s.jwtSecret)
}

// EnsureUser creates the account unless a user with that name already
// exists, and reports whether it was created. Existing passwords are kept.
func (s *UserService) EnsureUser(ctx context.Context, userName string, password []byte, admin bool) (bool, error) {
	if userName == "" {
		return false, fmt.Errorf("%w: empty username", common.ErrorValidation)
	}

	repo := s.repomanager.Users(s.db)

	_, err := repo.GetUserByLogin(ctx, userName)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, common.ErrorNotFound) {
		return false, fmt.Errorf("error looking up user: %w", err)
	}

	salt := cryptox.NewSalt()
	user := &models.User{
		UserName:     userName,
		PasswordHash: cryptox.HashPassword(password, salt),
		Salt:         salt,
		IsAdmin:      admin,
	}

	if _, err := repo.Create(ctx, user); err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return false, nil
		}
		return false, fmt.Errorf("error creating user: %w", err)
	}
	return true, nil
}
