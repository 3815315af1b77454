package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/dailytracker/internal/backup"
	"github.com/dmitrijs2005/dailytracker/internal/models"
	"github.com/dmitrijs2005/dailytracker/internal/views"
)

func (a *App) loadItems(ctx context.Context) ([]models.Item, error) {
	return a.items.List(ctx, a.session.UserID)
}

// Dashboard shows progress, category columns and upcoming deadlines for the
// range given as zero, one or two YYYY-MM-DD arguments.
func (a *App) Dashboard(ctx context.Context, args []string) error {
	bounds := make([]time.Time, 0, 2)
	for _, arg := range args {
		d, err := models.ParseDate(arg)
		if err != nil {
			return err
		}
		bounds = append(bounds, d)
	}
	if len(bounds) > 2 {
		return fmt.Errorf("usage: dashboard [start] [end]")
	}

	items, err := a.loadItems(ctx)
	if err != nil {
		return err
	}

	today := a.today()
	d := views.BuildDashboard(items, today, views.NewDateRange(today, bounds...), a.items.Categories(), a.config.UpcomingDays)
	renderDashboard(a.out, d)
	return nil
}

func (a *App) Upcoming(ctx context.Context) error {
	items, err := a.loadItems(ctx)
	if err != nil {
		return err
	}
	days := a.config.UpcomingDays
	if days <= 0 {
		days = views.DefaultUpcomingDays
	}
	renderUpcoming(a.out, views.Upcoming(items, a.today(), days), days)
	return nil
}

// Calendar lists the events of one month, the current one by default.
func (a *App) Calendar(ctx context.Context, args []string) error {
	month := a.today()
	if len(args) > 0 {
		m, err := time.Parse("2006-01", args[0])
		if err != nil {
			return fmt.Errorf("usage: calendar [YYYY-MM]")
		}
		month = m
	}

	items, err := a.loadItems(ctx)
	if err != nil {
		return err
	}

	first := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, time.UTC)
	inMonth := views.FilterByRange(items, views.NewDateRange(first, first, first.AddDate(0, 1, -1)))
	renderCalendar(a.out, first, views.CalendarEvents(inMonth, a.config.HighlightCategory))
	return nil
}

func (a *App) Analytics(ctx context.Context) error {
	items, err := a.loadItems(ctx)
	if err != nil {
		return err
	}
	renderAnalytics(a.out, views.BuildAnalytics(items, a.today()))
	return nil
}

func (a *App) Export(ctx context.Context) error {
	items, err := a.loadItems(ctx)
	if err != nil {
		return err
	}

	res, err := a.exporter.Export(ctx, a.session.Username, items)
	if err != nil {
		if errors.Is(err, backup.ErrExportDisabled) {
			fmt.Fprintln(a.out, "Export is disabled: set an S3 bucket in the configuration")
			return nil
		}
		return err
	}

	fmt.Fprintf(a.out, "Exported %d items to s3://%s/%s\n", res.Items, res.Bucket, res.Key)
	if res.URL != "" {
		fmt.Fprintf(a.out, "Download link (valid %s): %s\n", backup.LinkValidity, res.URL)
	}
	return nil
}
