// Package services contains the tracker's business logic on top of the
// repositories: account registration and authentication, saved sessions and
// item management.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/dmitrijs2005/dailytracker/internal/common"
	"github.com/dmitrijs2005/dailytracker/internal/cryptox"
	"github.com/dmitrijs2005/dailytracker/internal/logging"
	"github.com/dmitrijs2005/dailytracker/internal/models"
	"github.com/dmitrijs2005/dailytracker/internal/repositories/repomanager"
	"github.com/google/uuid"
)

// UserService registers accounts and checks credentials.
type UserService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	log         logging.Logger

	hashParams cryptox.Params

	dummyOnce sync.Once
	dummyHash string
}

// NewUserService constructs a UserService over db.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, log logging.Logger) *UserService {
	return &UserService{
		db:          db,
		repomanager: m,
		log:         log.With("module", "users"),
		hashParams:  cryptox.DefaultParams,
	}
}

// CreateUser stores a new account with an argon2id hash of password.
// It returns false, nil when the username is already taken; an existing
// account is never overwritten.
func (s *UserService) CreateUser(ctx context.Context, username, password string) (bool, error) {
	if strings.TrimSpace(username) == "" {
		return false, fmt.Errorf("%w: username is empty", common.ErrorValidation)
	}
	if password == "" {
		return false, fmt.Errorf("%w: password is empty", common.ErrorValidation)
	}

	user := &models.User{
		ID:           uuid.NewString(),
		UserName:     username,
		PasswordHash: cryptox.HashPassword(password, s.hashParams),
	}

	if err := s.repomanager.Users(s.db).Create(ctx, user); err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			s.log.Info(ctx, "username already taken", "username", username)
			return false, nil
		}
		return false, fmt.Errorf("error creating user: %w", err)
	}

	s.log.Info(ctx, "user registered", "user_id", user.ID)
	return true, nil
}

// Authenticate returns the user's id and true when password matches.
// An unknown username and a wrong password both yield "", false, nil; a hash
// is derived in either case so the two are not told apart by timing.
func (s *UserService) Authenticate(ctx context.Context, username, password string) (string, bool, error) {
	user, err := s.repomanager.Users(s.db).GetUserByLogin(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			_, _ = cryptox.VerifyPassword(password, s.getDummyHash())
			return "", false, nil
		}
		return "", false, fmt.Errorf("error loading user: %w", err)
	}

	ok, err := cryptox.VerifyPassword(password, user.PasswordHash)
	if err != nil {
		s.log.Error(ctx, "stored password hash is unreadable", "user_id", user.ID, "error", err)
		return "", false, common.ErrorInternal
	}
	if !ok {
		return "", false, nil
	}
	return user.ID, true, nil
}

func (s *UserService) getDummyHash() string {
	s.dummyOnce.Do(func() {
		pw, _ := common.MakeRandHexString(16)
		s.dummyHash = cryptox.HashPassword(pw, s.hashParams)
	})
	return s.dummyHash
}
