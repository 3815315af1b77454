package items

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/dailytracker/internal/common"
	"github.com/dmitrijs2005/dailytracker/internal/dbx"
	"github.com/dmitrijs2005/dailytracker/internal/models"
)

const selectColumns = `id, user_id, task, category, status, due_date, item_type, item_time, created_at`

// SQLiteRepository implements Repository over the tasks table.
type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Create(ctx context.Context, userID string, item models.NewItem) (int64, error) {
	query := `INSERT INTO tasks (user_id, task, category, status, due_date, item_type, item_time) VALUES (?, ?, ?, ?, ?, ?, ?)`

	var itemTime sql.NullString
	if item.Time != nil {
		itemTime = sql.NullString{String: *item.Time, Valid: true}
	}

	res, err := r.db.ExecContext(ctx, query,
		userID, item.Title, item.Category, string(models.StatusPending),
		item.DueDate.Format(models.DateLayout), string(item.Type), itemTime)
	if err != nil {
		return 0, fmt.Errorf("failed to insert item: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get inserted id: %w", err)
	}
	return id, nil
}

func (r *SQLiteRepository) ListByUser(ctx context.Context, userID string) ([]models.Item, error) {
	query := `SELECT ` + selectColumns + ` FROM tasks WHERE user_id = ? ORDER BY due_date, id`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to select items: %w", err)
	}
	defer rows.Close()

	result := make([]models.Item, 0)
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate items: %w", err)
	}
	return result, nil
}

func (r *SQLiteRepository) GetByID(ctx context.Context, userID string, id int64) (*models.Item, error) {
	query := `SELECT ` + selectColumns + ` FROM tasks WHERE id = ? AND user_id = ?`

	item, err := scanItem(r.db.QueryRowContext(ctx, query, id, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, err
	}
	return item, nil
}

func (r *SQLiteRepository) UpdateStatus(ctx context.Context, userID string, id int64, status models.Status) (int64, error) {
	n, err := dbx.ExecAffected(ctx, r.db, `UPDATE tasks SET status = ? WHERE id = ? AND user_id = ?`, string(status), id, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to update item status: %w", err)
	}
	return n, nil
}

func (r *SQLiteRepository) Delete(ctx context.Context, userID string, id int64) (int64, error) {
	n, err := dbx.ExecAffected(ctx, r.db, `DELETE FROM tasks WHERE id = ? AND user_id = ?`, id, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete item: %w", err)
	}
	return n, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanItem(s scanner) (*models.Item, error) {
	var (
		item      models.Item
		status    string
		itemType  string
		dueDate   string
		itemTime  sql.NullString
		createdAt any
	)
	err := s.Scan(&item.ID, &item.UserID, &item.Title, &item.Category,
		&status, &dueDate, &itemType, &itemTime, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan item: %w", err)
	}

	item.Status = models.Status(status)
	item.Type = models.ItemType(itemType)
	if itemTime.Valid {
		t := itemTime.String
		item.Time = &t
	}

	item.DueDate, err = models.ParseDate(dueDate)
	if err != nil {
		return nil, fmt.Errorf("item %d: %w", item.ID, err)
	}
	item.CreatedAt, err = parseTimestamp(createdAt)
	if err != nil {
		return nil, fmt.Errorf("item %d: %w", item.ID, err)
	}
	return &item, nil
}

var timestampLayouts = []string{
	"2006-01-02 15:04:05",
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02T15:04:05",
}

// parseTimestamp accepts what the SQLite driver hands back for a TIMESTAMP
// column: a time.Time when it could parse the value itself, text otherwise.
func parseTimestamp(v any) (time.Time, error) {
	var s string
	switch value := v.(type) {
	case nil:
		return time.Time{}, nil
	case time.Time:
		return value.UTC(), nil
	case string:
		s = value
	case []byte:
		s = string(value)
	default:
		return time.Time{}, fmt.Errorf("unexpected timestamp type %T", v)
	}

	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable timestamp %q", s)
}
