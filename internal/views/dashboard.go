package views

import (
	"time"

	"github.com/dmitrijs2005/dailytracker/internal/models"
)

// Dashboard is everything the main screen shows for one range.
type Dashboard struct {
	Range    DateRange
	Filtered []models.Item
	Progress Progress
	Columns  []CategoryGroup
	Upcoming []UpcomingItem
}

// BuildDashboard derives the dashboard from the user's full item set.
// upcomingDays <= 0 falls back to DefaultUpcomingDays.
func BuildDashboard(items []models.Item, today time.Time, r DateRange, categories []string, upcomingDays int) Dashboard {
	if upcomingDays <= 0 {
		upcomingDays = DefaultUpcomingDays
	}
	filtered := FilterByRange(items, r)
	return Dashboard{
		Range:    r,
		Filtered: filtered,
		Progress: BuildProgress(items, filtered),
		Columns:  GroupByCategory(filtered, categories),
		Upcoming: Upcoming(items, today, upcomingDays),
	}
}

// Analytics bundles the chart data.
type Analytics struct {
	Weekly       []TrendPoint
	Monthly      []TrendPoint
	Distribution []CategoryCount
	Total        int
}

func BuildAnalytics(items []models.Item, today time.Time) Analytics {
	return Analytics{
		Weekly:       WeeklyTrend(items, today),
		Monthly:      MonthlyTrend(items, today),
		Distribution: CategoryDistribution(items),
		Total:        len(items),
	}
}
