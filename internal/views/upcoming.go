package views

import (
	"sort"
	"time"

	"github.com/dmitrijs2005/dailytracker/internal/models"
)

// DefaultUpcomingDays is the deadline horizon of the dashboard.
const DefaultUpcomingDays = 7

type Urgency string

const (
	UrgencyHigh   Urgency = "high"
	UrgencyMedium Urgency = "medium"
	UrgencyLow    Urgency = "low"
)

// UrgencyFor buckets the days remaining until a deadline.
func UrgencyFor(daysLeft int) Urgency {
	switch {
	case daysLeft <= 1:
		return UrgencyHigh
	case daysLeft <= 3:
		return UrgencyMedium
	default:
		return UrgencyLow
	}
}

type UpcomingItem struct {
	Item     models.Item
	DaysLeft int
	Urgency  Urgency
}

// Upcoming lists unfinished items due between today and today+days
// inclusive, soonest first.
func Upcoming(items []models.Item, today time.Time, days int) []UpcomingItem {
	today = models.Date(today)
	horizon := NewDateRange(today, today, today.AddDate(0, 0, days))

	out := make([]UpcomingItem, 0)
	for _, it := range items {
		if it.Completed() || !horizon.Contains(it.DueDate) {
			continue
		}
		left := daysBetween(today, it.DueDate)
		out = append(out, UpcomingItem{Item: it, DaysLeft: left, Urgency: UrgencyFor(left)})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].DaysLeft != out[j].DaysLeft {
			return out[i].DaysLeft < out[j].DaysLeft
		}
		return out[i].Item.ID < out[j].Item.ID
	})
	return out
}
