package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/dmitrijs2005/dailytracker/internal/models"
	"github.com/dmitrijs2005/dailytracker/internal/views"
)

const barWidth = 20

func progressBar(ratio float64) string {
	filled := int(ratio*barWidth + 0.5)
	filled = max(0, min(barWidth, filled))
	return "[" + strings.Repeat("#", filled) + strings.Repeat(".", barWidth-filled) + "]"
}

func percent(ratio float64) int {
	return int(ratio * 100)
}

func itemLine(it models.Item) string {
	box := "[ ]"
	if it.Completed() {
		box = "[x]"
	}
	line := fmt.Sprintf("%s #%d %s", box, it.ID, it.Title)
	if it.Type == models.TypeAppointment && it.Time != nil {
		line += " at " + *it.Time
	}
	return line
}

func renderDashboard(w io.Writer, d views.Dashboard) {
	start, end := d.Range.Start.Format(models.DateLayout), d.Range.End.Format(models.DateLayout)

	fmt.Fprintf(w, "Overall progress (all time): %s %d%%\n", progressBar(d.Progress.Overall), percent(d.Progress.Overall))
	fmt.Fprintf(w, "Period progress (%s - %s): %s %d%%\n", start, end, progressBar(d.Progress.Period), percent(d.Progress.Period))

	if len(d.Filtered) == 0 {
		fmt.Fprintln(w, "\nNo items found.")
	}
	for _, col := range d.Columns {
		if len(col.Items) == 0 {
			continue
		}
		fmt.Fprintf(w, "\n== %s ==\n", col.Category)
		for _, it := range col.Items {
			fmt.Fprintf(w, "  %s  (%s)\n", itemLine(it), it.DueDate.Format(models.DateLayout))
		}
	}

	fmt.Fprintln(w)
	renderUpcoming(w, d.Upcoming, 0)
}

var urgencyMark = map[views.Urgency]string{
	views.UrgencyHigh:   "!!!",
	views.UrgencyMedium: "!! ",
	views.UrgencyLow:    "!  ",
}

// renderUpcoming prints approaching deadlines; days > 0 is shown in the title.
func renderUpcoming(w io.Writer, list []views.UpcomingItem, days int) {
	title := "Approaching deadlines"
	if days > 0 {
		title = fmt.Sprintf("%s (next %d days)", title, days)
	}
	fmt.Fprintln(w, title)

	if len(list) == 0 {
		fmt.Fprintln(w, "  No upcoming deadlines!")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, u := range list {
		fmt.Fprintf(tw, "  %s\t#%d\t%s\tdue %s\t%d days left\n",
			urgencyMark[u.Urgency], u.Item.ID, u.Item.Title, u.Item.DueDate.Format(models.DateLayout), u.DaysLeft)
	}
	_ = tw.Flush()
}

func renderCalendar(w io.Writer, month time.Time, events []views.CalendarEvent) {
	fmt.Fprintf(w, "Calendar %s\n", month.Format("January 2006"))
	if len(events) == 0 {
		fmt.Fprintln(w, "  Nothing scheduled.")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, e := range events {
		mark := " "
		if e.Color == views.ColorHighlight {
			mark = "*"
		}
		done := ""
		if e.Completed {
			done = "(done)"
		}
		fmt.Fprintf(tw, "  %s\t%s\t%s\t%s\n", mark, e.Start, e.Title, done)
	}
	_ = tw.Flush()
}

func renderTrend(w io.Writer, title string, points []views.TrendPoint, emptyMsg string) {
	fmt.Fprintln(w, title)
	if len(points) == 0 {
		fmt.Fprintf(w, "  %s\n", emptyMsg)
		return
	}
	for _, p := range points {
		fmt.Fprintf(w, "  %s %s %5.1f%%\n", p.Date.Format(models.DateLayout), progressBar(p.Rate/100), p.Rate)
	}
}

func renderAnalytics(w io.Writer, a views.Analytics) {
	if a.Total == 0 {
		fmt.Fprintln(w, "No data available for analytics.")
		return
	}

	renderTrend(w, "Weekly progress (last 7 days)", a.Weekly, "No tasks found for the last 7 days.")
	fmt.Fprintln(w)
	renderTrend(w, "Monthly progress (last 30 days)", a.Monthly, "No tasks found for the last 30 days.")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Category distribution")
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, c := range a.Distribution {
		fmt.Fprintf(tw, "  %s\t%d\t%d%%\n", c.Category, c.Count, percent(c.Share(a.Total)))
	}
	_ = tw.Flush()
}
