package views

import (
	"time"

	"github.com/dmitrijs2005/dailytracker/internal/models"
)

// DateRange is an inclusive span of calendar days.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// NewDateRange builds the dashboard range. With no bounds the range is today
// alone; one bound collapses the range to that day; two bounds are ordered so
// Start <= End. Extra bounds are ignored.
func NewDateRange(today time.Time, bounds ...time.Time) DateRange {
	switch len(bounds) {
	case 0:
		d := models.Date(today)
		return DateRange{Start: d, End: d}
	case 1:
		d := models.Date(bounds[0])
		return DateRange{Start: d, End: d}
	}

	start, end := models.Date(bounds[0]), models.Date(bounds[1])
	if end.Before(start) {
		start, end = end, start
	}
	return DateRange{Start: start, End: end}
}

func (r DateRange) Contains(d time.Time) bool {
	d = models.Date(d)
	return !d.Before(r.Start) && !d.After(r.End)
}

// Days is the number of calendar days covered.
func (r DateRange) Days() int {
	return daysBetween(r.Start, r.End) + 1
}

// FilterByRange keeps the items due within r, preserving order.
func FilterByRange(items []models.Item, r DateRange) []models.Item {
	out := make([]models.Item, 0, len(items))
	for _, it := range items {
		if r.Contains(it.DueDate) {
			out = append(out, it)
		}
	}
	return out
}

func daysBetween(from, to time.Time) int {
	return int(models.Date(to).Sub(models.Date(from)).Hours() / 24)
}
