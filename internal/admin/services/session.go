package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/popcue/admin-console/internal/admin/client"
	"github.com/popcue/admin-console/internal/admin/models"
	"github.com/popcue/admin-console/internal/admin/repositories/sessionstate"
	"github.com/popcue/admin-console/internal/dbx"
	"github.com/popcue/admin-console/internal/logging"
)

// SessionService owns the authenticated session and its persisted copy.
//
//   - Login: authenticate and persist token + user.
//   - Logout: remove every persisted session key; idempotent.
//   - Restore: read the persisted session at startup; nil when absent.
//   - SelectTenant: persist the tenant chosen for generation.
type SessionService interface {
	Login(ctx context.Context, email, password string) (*models.Session, error)
	Logout(ctx context.Context) error
	Restore(ctx context.Context) (*models.Session, error)
	SelectTenant(ctx context.Context, tenantID string) error
}

type sessionService struct {
	client client.Client
	db     *sql.DB
	repo   sessionstate.Repository
	log    logging.Logger
	now    func() time.Time
}

func NewSessionService(c client.Client, db *sql.DB, log logging.Logger) SessionService {
	return &sessionService{
		client: c,
		db:     db,
		repo:   sessionstate.NewSQLiteRepository(db),
		log:    log.With("service", "session"),
		now:    time.Now,
	}
}

// Login rejects empty credentials without calling the backend. Any non-2xx
// answer is reported as ErrInvalidCredentials; transport failures keep
// client.ErrUnavailable in the chain.
func (s *sessionService) Login(ctx context.Context, email, password string) (*models.Session, error) {
	if email == "" || password == "" {
		return nil, ErrMissingCredentials
	}

	resp, err := s.client.Login(ctx, email, password)
	if err != nil {
		var apiErr *client.APIError
		if errors.As(err, &apiErr) {
			return nil, fmt.Errorf("%w: %w", ErrInvalidCredentials, err)
		}
		return nil, fmt.Errorf("login error: %w", err)
	}
	if resp.AccessToken == "" {
		return nil, fmt.Errorf("%w: login response carries no access token", ErrInvalidCredentials)
	}

	user, err := json.Marshal(resp.User)
	if err != nil {
		return nil, fmt.Errorf("encode user: %w", err)
	}

	err = dbx.WithTx(ctx, s.db, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repo.WithDB(tx)
		if err := repo.Set(ctx, sessionstate.KeyToken, resp.AccessToken); err != nil {
			return err
		}
		return repo.Set(ctx, sessionstate.KeyUser, string(user))
	})
	if err != nil {
		return nil, fmt.Errorf("session saving error: %w", err)
	}

	s.log.Info(ctx, "logged in", "user_id", resp.User.ID)
	return &models.Session{Token: resp.AccessToken, User: resp.User}, nil
}

func (s *sessionService) Logout(ctx context.Context) error {
	err := dbx.WithTx(ctx, s.db, func(ctx context.Context, tx dbx.DBTX) error {
		return s.repo.WithDB(tx).Delete(ctx, sessionstate.SessionKeys...)
	})
	if err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

// Restore returns nil, nil when no complete session is stored. A stored
// JWT whose exp has passed, or an unreadable user profile, is cleared and
// treated as absent. Opaque tokens are accepted as they are.
func (s *sessionService) Restore(ctx context.Context) (*models.Session, error) {
	stored, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("read session: %w", err)
	}
	token, rawUser := stored[sessionstate.KeyToken], stored[sessionstate.KeyUser]
	if token == "" || rawUser == "" {
		return nil, nil
	}

	if tokenExpired(token, s.now()) {
		s.log.Warn(ctx, "stored token has expired, discarding session")
		return nil, s.Logout(ctx)
	}

	var user models.User
	if err := json.Unmarshal([]byte(rawUser), &user); err != nil {
		s.log.Warn(ctx, "stored user profile is unreadable, discarding session", "error", err)
		return nil, s.Logout(ctx)
	}

	return &models.Session{Token: token, User: user, TenantID: stored[sessionstate.KeyTenantID]}, nil
}

func (s *sessionService) SelectTenant(ctx context.Context, tenantID string) error {
	if err := s.repo.Set(ctx, sessionstate.KeyTenantID, tenantID); err != nil {
		return fmt.Errorf("save tenant: %w", err)
	}
	return nil
}

// tokenExpired reads exp from a JWT without verifying the signature; the
// backend still verifies every call. Non-JWT tokens never expire here.
func tokenExpired(token string, now time.Time) bool {
	var claims jwt.RegisteredClaims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return false
	}
	if claims.ExpiresAt == nil {
		return false
	}
	return !claims.ExpiresAt.After(now)
}
