package views

import (
	"sort"

	"github.com/dmitrijs2005/dailytracker/internal/models"
)

type CategoryCount struct {
	Category string
	Count    int
}

// CategoryDistribution counts items per category over the whole set,
// largest first, ties by name.
func CategoryDistribution(items []models.Item) []CategoryCount {
	counts := make(map[string]int)
	for _, it := range items {
		counts[it.Category]++
	}

	out := make([]CategoryCount, 0, len(counts))
	for c, n := range counts {
		out = append(out, CategoryCount{Category: c, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Category < out[j].Category
	})
	return out
}

// Share is the fraction of total items in c, 0 when total is 0.
func (c CategoryCount) Share(total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(c.Count) / float64(total)
}
