package services

import (
	"context"
	"database/sql"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/dmitrijs2005/dailytracker/internal/common"
	"github.com/dmitrijs2005/dailytracker/internal/config"
	"github.com/dmitrijs2005/dailytracker/internal/logging"
	"github.com/dmitrijs2005/dailytracker/internal/models"
	"github.com/dmitrijs2005/dailytracker/internal/repositories/repomanager"
)

// ItemService validates and stores a user's tasks and appointments.
//
// Update and delete are scoped to the owner; touching an id that does not
// exist (or belongs to someone else) is a silent no-op.
type ItemService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	log         logging.Logger

	categories []string
	timeout    time.Duration
}

func NewItemService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config, log logging.Logger) *ItemService {
	return &ItemService{
		db:          db,
		repomanager: m,
		log:         log.With("module", "items"),
		categories:  cfg.Categories,
		timeout:     cfg.QueryTimeout,
	}
}

// Categories returns the configured category set in display order.
func (s *ItemService) Categories() []string {
	return slices.Clone(s.categories)
}

func (s *ItemService) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.timeout)
}

// Validate normalizes item in place and reports the first problem found,
// wrapped in common.ErrorValidation.
func (s *ItemService) Validate(item *models.NewItem) error {
	item.Title = strings.TrimSpace(item.Title)
	if item.Title == "" {
		return fmt.Errorf("%w: title is empty", common.ErrorValidation)
	}

	if !slices.Contains(s.categories, item.Category) {
		return fmt.Errorf("%w: unknown category %q", common.ErrorValidation, item.Category)
	}

	if item.DueDate.IsZero() {
		return fmt.Errorf("%w: due date is missing", common.ErrorValidation)
	}
	item.DueDate = models.Date(item.DueDate)

	t, err := models.ParseItemType(string(item.Type))
	if err != nil {
		return err
	}
	item.Type = t

	switch item.Type {
	case models.TypeAppointment:
		if item.Time == nil || strings.TrimSpace(*item.Time) == "" {
			return fmt.Errorf("%w: appointment needs a time", common.ErrorValidation)
		}
		clock, err := models.ParseClock(*item.Time)
		if err != nil {
			return err
		}
		item.Time = &clock
	default:
		if item.Time != nil {
			return fmt.Errorf("%w: only appointments carry a time", common.ErrorValidation)
		}
	}
	return nil
}

// Add stores a new Pending item for ownerID and returns its id.
func (s *ItemService) Add(ctx context.Context, ownerID string, item models.NewItem) (int64, error) {
	if ownerID == "" {
		return 0, fmt.Errorf("%w: owner is missing", common.ErrorValidation)
	}
	if err := s.Validate(&item); err != nil {
		return 0, err
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	id, err := s.repomanager.Items(s.db).Create(ctx, ownerID, item)
	if err != nil {
		return 0, fmt.Errorf("error adding item: %w", err)
	}

	s.log.Info(ctx, "item added", "item_id", id, "user_id", ownerID, "type", item.Type)
	return id, nil
}

// List returns every item of ownerID ordered by due date, then id.
func (s *ItemService) List(ctx context.Context, ownerID string) ([]models.Item, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	items, err := s.repomanager.Items(s.db).ListByUser(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("error listing items: %w", err)
	}
	return items, nil
}

// SetStatus moves an owned item to status.
func (s *ItemService) SetStatus(ctx context.Context, ownerID string, itemID int64, status models.Status) error {
	if _, err := models.ParseStatus(string(status)); err != nil {
		return err
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	n, err := s.repomanager.Items(s.db).UpdateStatus(ctx, ownerID, itemID, status)
	if err != nil {
		return fmt.Errorf("error updating item: %w", err)
	}
	if n == 0 {
		s.log.Debug(ctx, "status update matched no item", "item_id", itemID, "user_id", ownerID)
	}
	return nil
}

// Toggle flips an owned item between Pending and Completed. Unlike SetStatus
// it has to read the item first, so an unknown id is common.ErrorNotFound.
func (s *ItemService) Toggle(ctx context.Context, ownerID string, itemID int64) (models.Status, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	repo := s.repomanager.Items(s.db)
	item, err := repo.GetByID(ctx, ownerID, itemID)
	if err != nil {
		return "", err
	}

	next := item.Status.Toggle()
	if _, err := repo.UpdateStatus(ctx, ownerID, itemID, next); err != nil {
		return "", fmt.Errorf("error updating item: %w", err)
	}
	return next, nil
}

// Delete removes an owned item permanently.
func (s *ItemService) Delete(ctx context.Context, ownerID string, itemID int64) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	n, err := s.repomanager.Items(s.db).Delete(ctx, ownerID, itemID)
	if err != nil {
		return fmt.Errorf("error deleting item: %w", err)
	}
	if n == 0 {
		s.log.Debug(ctx, "delete matched no item", "item_id", itemID, "user_id", ownerID)
	} else {
		s.log.Info(ctx, "item deleted", "item_id", itemID, "user_id", ownerID)
	}
	return nil
}
