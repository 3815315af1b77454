package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/dailytracker/internal/auth"
	"github.com/dmitrijs2005/dailytracker/internal/common"
	"github.com/dmitrijs2005/dailytracker/internal/config"
	"github.com/dmitrijs2005/dailytracker/internal/dbx"
	"github.com/dmitrijs2005/dailytracker/internal/logging"
	"github.com/dmitrijs2005/dailytracker/internal/repositories/repomanager"
)

const (
	metaSessionToken = "session_token"
	metaLastLogin    = "last_login"
)

// Session identifies the logged-in user of the CLI.
type Session struct {
	UserID    string
	Username  string
	ExpiresAt time.Time
}

// SessionService keeps a signed session token in the metadata table so a
// login survives between CLI runs.
type SessionService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	log         logging.Logger

	secretKey []byte
	validity  time.Duration
	now       func() time.Time
}

func NewSessionService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config, log logging.Logger) *SessionService {
	return &SessionService{
		db:          db,
		repomanager: m,
		log:         log.With("module", "session"),
		secretKey:   []byte(cfg.SecretKey),
		validity:    cfg.SessionValidityDuration,
		now:         time.Now,
	}
}

// Save issues a token for the user and stores it together with the login
// time in one transaction.
func (s *SessionService) Save(ctx context.Context, userID, username string) (*Session, error) {
	token, err := auth.GenerateToken(userID, username, s.secretKey, s.validity)
	if err != nil {
		return nil, fmt.Errorf("error generating token: %w", err)
	}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Metadata(tx)
		if err := repo.Set(ctx, metaSessionToken, []byte(token)); err != nil {
			return err
		}
		return repo.Set(ctx, metaLastLogin, []byte(s.now().UTC().Format(time.RFC3339)))
	})
	if err != nil {
		return nil, fmt.Errorf("session saving error: %w", err)
	}

	s.log.Debug(ctx, "session saved", "user_id", userID)
	return &Session{UserID: userID, Username: username, ExpiresAt: s.now().Add(s.validity)}, nil
}

// Resume loads and validates the saved session. It returns
// common.ErrNoSession when nothing is saved. An expired or tampered token is
// removed and reported as common.ErrTokenExpired / common.ErrInvalidToken.
func (s *SessionService) Resume(ctx context.Context) (*Session, error) {
	raw, err := s.repomanager.Metadata(s.db).Get(ctx, metaSessionToken)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrNoSession
		}
		return nil, fmt.Errorf("session loading error: %w", err)
	}

	claims, err := auth.ParseToken(string(raw), s.secretKey)
	if err != nil {
		s.log.Info(ctx, "discarding saved session", "reason", err)
		if clearErr := s.Clear(ctx); clearErr != nil {
			return nil, clearErr
		}
		return nil, err
	}

	sess := &Session{UserID: claims.UserID, Username: claims.Username}
	if claims.ExpiresAt != nil {
		sess.ExpiresAt = claims.ExpiresAt.Time
	}
	return sess, nil
}

// Clear forgets the saved session. Clearing when nothing is saved is fine.
func (s *SessionService) Clear(ctx context.Context) error {
	if err := s.repomanager.Metadata(s.db).Delete(ctx, metaSessionToken, metaLastLogin); err != nil {
		return fmt.Errorf("session clearing error: %w", err)
	}
	return nil
}
