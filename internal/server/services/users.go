// Package services contains the application services composed by the web
// layer: the credential store / session gate (UserService) and the task
// workflow (TaskService).
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/psustentables/taskboard/internal/common"
	"github.com/psustentables/taskboard/internal/dbx"
	"github.com/psustentables/taskboard/internal/server/auth"
	"github.com/psustentables/taskboard/internal/server/config"
	"github.com/psustentables/taskboard/internal/server/models"
	"github.com/psustentables/taskboard/internal/server/repositories/repomanager"
)

type UserService struct {
	db                      *sql.DB
	repomanager             repomanager.RepositoryManager
	jwtSecret               []byte
	sessionValidityDuration time.Duration
}

func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		db:                      db,
		repomanager:             m,
		jwtSecret:               []byte(cfg.SecretKey),
		sessionValidityDuration: cfg.SessionValidityDuration,
	}
}

// Register creates a new account. Only the username is pre-checked for
// uniqueness; the check and the insert run inside one transaction.
func (s *UserService) Register(ctx context.Context, username, email, rawPassword string) (*models.User, error) {

	passwordHash, err := auth.HashPassword(rawPassword)
	if err != nil {
		return nil, common.ErrorInternal
	}

	var user *models.User

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Users(tx)

		_, err := repo.GetByUsername(ctx, username)
		if err == nil {
			return common.ErrorDuplicateUsername
		}
		if !errors.Is(err, common.ErrorNotFound) {
			return fmt.Errorf("error checking username: %w", err)
		}

		user, err = repo.Create(ctx, &models.User{
			UserName:     username,
			Email:        email,
			PasswordHash: passwordHash,
		})
		if err != nil {
			return fmt.Errorf("error creating user: %w", err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return user, nil
}

// Authenticate returns the user when the password matches the stored hash.
// Unknown usernames and wrong passwords fail identically so usernames
// cannot be enumerated.
func (s *UserService) Authenticate(ctx context.Context, username, rawPassword string) (*models.User, error) {

	repo := s.repomanager.Users(s.db)

	user, err := repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorInvalidCredentials
		}
		return nil, common.ErrorInternal
	}

	if !auth.VerifyPassword(user.PasswordHash, rawPassword) {
		return nil, common.ErrorInvalidCredentials
	}

	return user, nil
}

// Login authenticates and binds a new server-side session, returning the
// signed cookie value the browser should carry.
func (s *UserService) Login(ctx context.Context, username, rawPassword string) (string, error) {

	user, err := s.Authenticate(ctx, username, rawPassword)
	if err != nil {
		return "", err
	}

	sessionToken := uuid.NewString()

	if err := s.repomanager.Sessions(s.db).Create(ctx, user.ID, sessionToken, s.sessionValidityDuration); err != nil {
		return "", common.ErrorInternal
	}

	signed, err := auth.GenerateToken(sessionToken, s.jwtSecret, s.sessionValidityDuration)
	if err != nil {
		return "", common.ErrorInternal
	}

	return signed, nil
}

// ResolveSession maps a cookie value back to the user it is bound to.
// Expired sessions are deleted and reported as ErrorSessionExpired.
func (s *UserService) ResolveSession(ctx context.Context, cookieValue string) (*models.User, error) {

	sessionToken, err := auth.GetSessionTokenFromToken(cookieValue, s.jwtSecret)
	if err != nil {
		return nil, err
	}

	sessionRepo := s.repomanager.Sessions(s.db)

	session, err := sessionRepo.Find(ctx, sessionToken)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrInvalidToken
		}
		return nil, common.ErrorInternal
	}

	if session.Expires.Before(time.Now()) {
		_ = sessionRepo.Delete(ctx, sessionToken)
		return nil, common.ErrorSessionExpired
	}

	user, err := s.repomanager.Users(s.db).GetByID(ctx, session.UserID)
	if err != nil {
		return nil, common.ErrorInternal
	}

	return user, nil
}

// Logout unbinds the session referenced by the cookie value. An invalid or
// expired cookie has no session to unbind and is not an error.
func (s *UserService) Logout(ctx context.Context, cookieValue string) error {

	sessionToken, err := auth.GetSessionTokenFromToken(cookieValue, s.jwtSecret)
	if err != nil {
		return nil
	}

	if err := s.repomanager.Sessions(s.db).Delete(ctx, sessionToken); err != nil {
		return common.ErrorInternal
	}

	return nil
}

// UpdatePassword replaces the stored hash. The logged-in session is the only
// guard; the old password is not re-verified.
func (s *UserService) UpdatePassword(ctx context.Context, userID int64, newRawPassword string) error {

	passwordHash, err := auth.HashPassword(newRawPassword)
	if err != nil {
		return common.ErrorInternal
	}

	if err := s.repomanager.Users(s.db).UpdatePasswordHash(ctx, userID, passwordHash); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrorNotFound
		}
		return common.ErrorInternal
	}

	return nil
}

// PurgeExpiredSessions removes session rows whose expiry has passed. Expired
// sessions are already rejected on resolve; this only reclaims the rows.
func (s *UserService) PurgeExpiredSessions(ctx context.Context) error {
	if err := s.repomanager.Sessions(s.db).DeleteExpired(ctx); err != nil {
		return common.ErrorInternal
	}
	return nil
}

func (s *UserService) GetByID(ctx context.Context, id int64) (*models.User, error) {
	return s.repomanager.Users(s.db).GetByID(ctx, id)
}

// List returns all users, for the assignee dropdown.
func (s *UserService) List(ctx context.Context) ([]*models.User, error) {
	return s.repomanager.Users(s.db).List(ctx)
}
