// Package services contains server-side business logic. This file implements
// UserService, which handles registration, credential verification, and
// issuing the signed session token plus its cookie directive.
package services

import (
	"context"
	"errors"
	"time"

	"github.com/vkazmin/accountd/internal/common"
	"github.com/vkazmin/accountd/internal/dbx"
	"github.com/vkazmin/accountd/internal/server/auth"
	"github.com/vkazmin/accountd/internal/server/config"
	"github.com/vkazmin/accountd/internal/server/models"
	"github.com/vkazmin/accountd/internal/server/repositories/repomanager"
)

// RegisterParams carries the shape-validated registration payload. Password
// is plaintext here; hashing happens inside Register and the plaintext is not
// retained anywhere.
type RegisterParams struct {
	Email     string
	FirstName string
	LastName  string
	Password  string
}

// UserService provides the authentication use cases:
// - Register: hash the password and create the user
// - Authenticate: verify credentials and return the user
// - IssueToken / CookieDirective: mint the session credential
// - GetByID: direct lookup for authenticated profile access
type UserService struct {
	db          dbx.DB
	repomanager repomanager.RepositoryManager
	jwtSecret   []byte
	tokenTTL    time.Duration
}

// NewUserService constructs a UserService using repositories and server config.
func NewUserService(db dbx.DB, m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		db:          db,
		repomanager: m,
		jwtSecret:   []byte(cfg.SecretKey),
		tokenTTL:    cfg.TokenTTL,
	}
}

// Register hashes the plaintext password and creates the user inside one
// transaction. A uniqueness conflict surfaces as common.ErrEmailAlreadyExists
// so the caller can present it as client-correctable; any other store failure
// is flattened into common.ErrRegistrationFailed. Uniqueness is not
// pre-checked: concurrent registrations for one email are decided by the
// store constraint.
func (s *UserService) Register(ctx context.Context, params RegisterParams) (*models.User, error) {
	hash, err := auth.HashPassword(params.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:        params.Email,
		FirstName:    params.FirstName,
		LastName:     params.LastName,
		PasswordHash: hash,
	}

	var created *models.User
	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		u, err := s.repomanager.Users(tx).Create(ctx, user)
		if err != nil {
			return err
		}
		created = u
		return nil
	})
	if err != nil {
		if errors.Is(err, common.ErrEmailAlreadyExists) {
			return nil, common.ErrEmailAlreadyExists
		}
		return nil, common.ErrRegistrationFailed
	}
	return created, nil
}

// Authenticate verifies email+password and returns the matching user.
// An unknown email and a wrong password collapse into the same
// common.ErrInvalidCredentials so the response does not reveal which one
// occurred. Unexpected repository failures stay internal.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	repo := s.repomanager.Users(s.db)
	user, err := repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrUserNotFound) {
			return nil, common.ErrInvalidCredentials
		}
		return nil, common.ErrInternal
	}

	if !auth.VerifyPassword(password, user.PasswordHash) {
		return nil, common.ErrInvalidCredentials
	}

	return user, nil
}

// GetByID loads a user by id. This is the one path where a lookup miss is
// surfaced as common.ErrUserNotFound rather than a credential error.
func (s *UserService) GetByID(ctx context.Context, id string) (*models.User, error) {
	repo := s.repomanager.Users(s.db)
	return repo.GetByID(ctx, id)
}

// IssueToken mints a signed session token for userID. It performs no lookups
// and has no side effects.
func (s *UserService) IssueToken(userID string) (string, error) {
	return auth.GenerateToken(userID, s.jwtSecret, s.tokenTTL)
}

// CookieDirective returns the policy for the cookie that carries the session
// token; its MaxAge equals the token TTL.
func (s *UserService) CookieDirective() auth.CookieDirective {
	return auth.NewCookieDirective(s.tokenTTL)
}
