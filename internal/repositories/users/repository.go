// Package users persists tracker accounts.
package users

import (
	"context"

	"github.com/dmitrijs2005/dailytracker/internal/models"
)

// Repository stores and looks up users.
type Repository interface {
	// Create inserts user. A taken username yields common.ErrorAlreadyExists.
	Create(ctx context.Context, user *models.User) error
	// GetUserByLogin returns the user with exactly this username or
	// common.ErrorNotFound.
	GetUserByLogin(ctx context.Context, userName string) (*models.User, error)
}
