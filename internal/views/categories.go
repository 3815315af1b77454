package views

import "github.com/dmitrijs2005/dailytracker/internal/models"

type CategoryGroup struct {
	Category string
	Items    []models.Item
}

// GroupByCategory returns one group per category, in the given order.
// Items whose category is not listed land in no group.
func GroupByCategory(items []models.Item, categories []string) []CategoryGroup {
	groups := make([]CategoryGroup, len(categories))
	index := make(map[string]int, len(categories))
	for i, c := range categories {
		groups[i] = CategoryGroup{Category: c, Items: []models.Item{}}
		index[c] = i
	}

	for _, it := range items {
		if i, ok := index[it.Category]; ok {
			groups[i].Items = append(groups[i].Items, it)
		}
	}
	return groups
}
