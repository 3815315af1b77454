package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/dailytracker/internal/common"
	"github.com/dmitrijs2005/dailytracker/internal/models"
)

var (
	errEmptyTitle = errors.New("title must not be empty")
	errNoDueDate  = errors.New("due date is required (YYYY-MM-DD)")
)

// Add asks for the fields of a new item. Title and due date are checked
// here before anything reaches the store.
func (a *App) Add(ctx context.Context) error {
	title, err := getSimpleText(a.reader, "Title", a.out)
	if err != nil {
		return err
	}
	if title == "" {
		return errEmptyTitle
	}

	categories := a.items.Categories()
	var b strings.Builder
	b.WriteString("Category")
	for i, c := range categories {
		fmt.Fprintf(&b, "\n  %d) %s", i+1, c)
	}
	rawCategory, err := getSimpleText(a.reader, b.String(), a.out)
	if err != nil {
		return err
	}
	category := pickCategory(rawCategory, categories)

	rawDue, err := getSimpleText(a.reader, "Due date (YYYY-MM-DD, empty for today)", a.out)
	if err != nil {
		return err
	}
	due := a.today()
	if rawDue != "" {
		if due, err = models.ParseDate(rawDue); err != nil {
			return errNoDueDate
		}
	}

	rawType, err := getSimpleText(a.reader, "Type: task or appointment (empty for task)", a.out)
	if err != nil {
		return err
	}
	itemType, err := parseTypeInput(rawType)
	if err != nil {
		return err
	}

	item := models.NewItem{Title: title, Category: category, DueDate: due, Type: itemType}
	if itemType == models.TypeAppointment {
		at, err := getSimpleText(a.reader, "Time (HH:MM)", a.out)
		if err != nil {
			return err
		}
		item.Time = &at
	}

	id, err := a.items.Add(ctx, a.session.UserID, item)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Added item %d\n", id)
	return nil
}

// pickCategory accepts a 1-based index into categories or a name in any
// letter case. Anything else is passed through for the service to reject.
func pickCategory(raw string, categories []string) string {
	if n, err := strconv.Atoi(raw); err == nil && n >= 1 && n <= len(categories) {
		return categories[n-1]
	}
	for _, c := range categories {
		if strings.EqualFold(c, raw) {
			return c
		}
	}
	return raw
}

func parseTypeInput(raw string) (models.ItemType, error) {
	switch strings.ToLower(raw) {
	case "t":
		return models.TypeTask, nil
	case "a", "appt":
		return models.TypeAppointment, nil
	}
	return models.ParseItemType(raw)
}

func parseID(args []string, cmd string) (int64, error) {
	if len(args) == 0 {
		return 0, fmt.Errorf("usage: %s <id>", cmd)
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: bad item id %q", common.ErrorValidation, args[0])
	}
	return id, nil
}

// Done marks an item Completed. Unknown ids are silently ignored.
func (a *App) Done(ctx context.Context, args []string) error {
	id, err := parseID(args, "done")
	if err != nil {
		return err
	}
	if err := a.items.SetStatus(ctx, a.session.UserID, id, models.StatusCompleted); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Item %d: %s\n", id, models.StatusCompleted)
	return nil
}

func (a *App) Toggle(ctx context.Context, args []string) error {
	id, err := parseID(args, "toggle")
	if err != nil {
		return err
	}
	status, err := a.items.Toggle(ctx, a.session.UserID, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return fmt.Errorf("item %d not found", id)
		}
		return err
	}
	fmt.Fprintf(a.out, "Item %d: %s\n", id, status)
	return nil
}

func (a *App) Delete(ctx context.Context, args []string) error {
	id, err := parseID(args, "delete")
	if err != nil {
		return err
	}
	if err := a.items.Delete(ctx, a.session.UserID, id); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Item %d deleted\n", id)
	return nil
}
