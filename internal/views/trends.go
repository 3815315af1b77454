package views

import (
	"sort"
	"time"

	"github.com/dmitrijs2005/dailytracker/internal/models"
)

const (
	WeeklyWindow  = 7
	MonthlyWindow = 30
)

// TrendPoint is the completion rate, in percent, of the items due on Date.
type TrendPoint struct {
	Date time.Time
	Rate float64
}

// CompletionTrend covers the trailing window of days ending today. Every day
// with at least one item due yields one point; empty days yield none.
func CompletionTrend(items []models.Item, today time.Time, days int) []TrendPoint {
	if days <= 0 {
		return []TrendPoint{}
	}
	today = models.Date(today)
	window := NewDateRange(today, today.AddDate(0, 0, -(days-1)), today)

	type tally struct{ total, done int }
	byDay := make(map[time.Time]*tally)
	for _, it := range items {
		if !window.Contains(it.DueDate) {
			continue
		}
		d := models.Date(it.DueDate)
		t, ok := byDay[d]
		if !ok {
			t = &tally{}
			byDay[d] = t
		}
		t.total++
		if it.Completed() {
			t.done++
		}
	}

	points := make([]TrendPoint, 0, len(byDay))
	for d, t := range byDay {
		points = append(points, TrendPoint{Date: d, Rate: float64(t.done) / float64(t.total) * 100})
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Date.Before(points[j].Date) })
	return points
}

func WeeklyTrend(items []models.Item, today time.Time) []TrendPoint {
	return CompletionTrend(items, today, WeeklyWindow)
}

func MonthlyTrend(items []models.Item, today time.Time) []TrendPoint {
	return CompletionTrend(items, today, MonthlyWindow)
}
