package views

import "github.com/dmitrijs2005/dailytracker/internal/models"

// ProgressRatio is completed/total over the Task items of items.
// Appointments are not counted. An empty set yields 0.
func ProgressRatio(items []models.Item) float64 {
	var total, done int
	for _, it := range items {
		if it.Type != models.TypeTask {
			continue
		}
		total++
		if it.Completed() {
			done++
		}
	}
	if total == 0 {
		return 0
	}
	return float64(done) / float64(total)
}

type Progress struct {
	Overall float64 // all-time
	Period  float64 // selected range
}

func BuildProgress(all, filtered []models.Item) Progress {
	return Progress{Overall: ProgressRatio(all), Period: ProgressRatio(filtered)}
}
