package views

import "github.com/dmitrijs2005/dailytracker/internal/models"

const (
	ColorHighlight = "#ff4b4b"
	ColorDefault   = "#3788d8"
)

// CalendarEvent is one item placed on the calendar. Start is YYYY-MM-DD for
// tasks and YYYY-MM-DDTHH:MM for appointments.
type CalendarEvent struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Start     string `json:"start"`
	Color     string `json:"color"`
	Completed bool   `json:"completed"`
}

// CalendarEvents maps every item to an event, in input order. Items in the
// highlight category get ColorHighlight.
func CalendarEvents(items []models.Item, highlight string) []CalendarEvent {
	out := make([]CalendarEvent, 0, len(items))
	for _, it := range items {
		start := it.DueDate.Format(models.DateLayout)
		if it.Time != nil && *it.Time != "" {
			start += "T" + *it.Time
		}
		color := ColorDefault
		if it.Category == highlight {
			color = ColorHighlight
		}
		out = append(out, CalendarEvent{
			ID:        it.ID,
			Title:     it.Title,
			Start:     start,
			Color:     color,
			Completed: it.Completed(),
		})
	}
	return out
}
