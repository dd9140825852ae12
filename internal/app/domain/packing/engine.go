// Package packing builds weather and activity aware packing lists.
package packing

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/FACorreiaa/loci-travelkit/internal/app/models"
)

// Identity returns the dedup key of an item: its category plus the case-folded name.
func Identity(it models.PackingItem) string {
	return string(it.Category) + "|" + cases.Fold().String(strings.TrimSpace(it.Name))
}

// collector appends items in order and drops any whose identity was already seen.
type collector struct {
	items []models.PackingItem
	seen  map[string]struct{}
}

func newCollector(capacity int) *collector {
	return &collector{
		items: make([]models.PackingItem, 0, capacity),
		seen:  make(map[string]struct{}, capacity),
	}
}

func (c *collector) add(items ...models.PackingItem) {
	for _, it := range items {
		id := Identity(it)
		if _, dup := c.seen[id]; dup {
			continue
		}
		c.seen[id] = struct{}{}
		c.items = append(c.items, it)
	}
}

// Generate builds the flat, deduplicated packing list.
//
// Essentials come first, then weather rules in table order (skipped when summary is nil),
// then activity rules, then the extended stay item. An activity matches a rule when its
// lower-cased type equals the key, contains the key, or is contained in the key, so one
// signal may pull in several rules.
func Generate(summary *models.WeatherSummary, activities []models.ActivitySignal, durationDays int) []models.PackingItem {
	c := newCollector(len(essentialItems) + 16)
	c.add(essentialItems...)

	if summary != nil {
		for _, rule := range weatherRules {
			if rule.Applies(*summary) {
				c.add(rule.Items...)
			}
		}
	}

	for _, activity := range activities {
		activityType := strings.ToLower(activity.Type)
		if activityType == "" {
			continue
		}
		if i, ok := activityIndex[activityType]; ok {
			c.add(activityRules[i].Items...)
		}
		for _, rule := range activityRules {
			if strings.Contains(activityType, rule.Key) || strings.Contains(rule.Key, activityType) {
				c.add(rule.Items...)
			}
		}
	}

	if durationDays > extendedStayDays {
		c.add(extendedStayItem(durationDays))
	}

	return c.items
}
