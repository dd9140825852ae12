package packing

import (
	"slices"

	"github.com/FACorreiaa/loci-travelkit/internal/app/models"
)

// Grouped holds one bucket per category, each sorted by priority.
type Grouped struct {
	buckets map[models.PackingCategory][]models.PackingItem
}

// Group partitions items into the fixed categories and stable-sorts each bucket by priority,
// keeping insertion order among equal priorities. Items whose category is not one of the
// fixed categories are not bucketed.
func Group(items []models.PackingItem) Grouped {
	g := Grouped{buckets: make(map[models.PackingCategory][]models.PackingItem, len(categoryOrder))}
	for _, c := range categoryOrder {
		g.buckets[c] = []models.PackingItem{}
	}

	for _, it := range items {
		bucket, ok := g.buckets[it.Category]
		if !ok {
			continue
		}
		g.buckets[it.Category] = append(bucket, it)
	}

	for c, bucket := range g.buckets {
		slices.SortStableFunc(bucket, func(a, b models.PackingItem) int {
			return rank(a.Priority) - rank(b.Priority)
		})
		g.buckets[c] = bucket
	}

	return g
}

// Items returns the sorted bucket for a category. Every fixed category has a bucket.
func (g Grouped) Items(c models.PackingCategory) []models.PackingItem {
	return g.buckets[c]
}

// ActiveCategories lists categories with at least one item in presentation order.
func (g Grouped) ActiveCategories() []models.PackingCategory {
	active := make([]models.PackingCategory, 0, len(categoryOrder))
	for _, c := range categoryOrder {
		if len(g.buckets[c]) > 0 {
			active = append(active, c)
		}
	}
	return active
}

// Groups returns the non-empty buckets with their labels and icons.
func (g Grouped) Groups() []models.PackingGroup {
	active := g.ActiveCategories()
	groups := make([]models.PackingGroup, 0, len(active))
	for _, c := range active {
		groups = append(groups, models.PackingGroup{
			Category: c,
			Label:    CategoryLabel(c),
			Icon:     CategoryIcon(c),
			Items:    g.buckets[c],
		})
	}
	return groups
}
