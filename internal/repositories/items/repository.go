// Package items persists tasks and appointments.
//
// Every query is scoped by owner: rows belonging to another user are neither
// returned nor modified. Update and delete report how many rows they touched
// so callers can decide whether a miss matters.
package items

import (
	"context"

	"github.com/dmitrijs2005/dailytracker/internal/models"
)

type Repository interface {
	// Create inserts a Pending item for userID and returns its id.
	Create(ctx context.Context, userID string, item models.NewItem) (int64, error)

	// ListByUser returns all items of userID ordered by due date, then id.
	ListByUser(ctx context.Context, userID string) ([]models.Item, error)

	// GetByID returns one owned item or common.ErrorNotFound.
	GetByID(ctx context.Context, userID string, id int64) (*models.Item, error)

	UpdateStatus(ctx context.Context, userID string, id int64, status models.Status) (int64, error)

	Delete(ctx context.Context, userID string, id int64) (int64, error)
}
