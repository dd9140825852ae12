package packing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FACorreiaa/loci-travelkit/internal/app/models"
)

func names(items []models.PackingItem) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Name
	}
	return out
}

func find(items []models.PackingItem, name string) (models.PackingItem, bool) {
	for _, it := range items {
		if it.Name == name {
			return it, true
		}
	}
	return models.PackingItem{}, false
}

var essentialNames = []string{"Passport / ID", "Phone charger", "Toothbrush & toothpaste", "Personal medications"}

func TestGenerateRainAndCool(t *testing.T) {
	summary := &models.WeatherSummary{MinTemp: 5, MaxTemp: 12, HasRain: true, Humidity: 50}

	items := Generate(summary, nil, 3)

	assert.Equal(t, []string{
		"Passport / ID", "Phone charger", "Toothbrush & toothpaste", "Personal medications",
		"Umbrella", "Rain jacket", "Waterproof bag",
		"Warm jacket", "Layers / sweaters", "Long pants",
	}, names(items))

	for _, sun := range []string{"Sunscreen", "Sunglasses", "Sun hat"} {
		_, ok := find(items, sun)
		assert.False(t, ok, "unexpected %s", sun)
	}
	_, ok := find(items, "Laundry bag")
	assert.False(t, ok)
}

func TestGenerateBeachLongStay(t *testing.T) {
	items := Generate(nil, []models.ActivitySignal{{Type: "beach", Count: 2}}, 10)

	assert.Equal(t, []string{
		"Passport / ID", "Phone charger", "Toothbrush & toothpaste", "Personal medications",
		"Swimwear", "Beach towel", "Sandals", "Beach bag", "Sunscreen",
		"Laundry bag",
	}, names(items))

	laundry, ok := find(items, "Laundry bag")
	require.True(t, ok)
	assert.Equal(t, "Trip lasts 10 days", laundry.Reason)
	assert.Equal(t, models.CategoryAccessories, laundry.Category)

	for _, w := range []string{"Umbrella", "Warm jacket", "Windbreaker"} {
		_, ok := find(items, w)
		assert.False(t, ok, "unexpected weather item %s", w)
	}
}

func TestGenerateEmptyInputsReturnEssentials(t *testing.T) {
	items := Generate(nil, nil, 0)
	assert.Equal(t, essentialNames, names(items))

	items = Generate(nil, []models.ActivitySignal{}, 5)
	assert.Equal(t, essentialNames, names(items), "five days is not an extended stay")
}

func TestGenerateIsIdempotent(t *testing.T) {
	summary := &models.WeatherSummary{MinTemp: -3, MaxTemp: 28, HasRain: true, HasSnow: true, IsWindy: true, Humidity: 80}
	activities := []models.ActivitySignal{{Type: "Hiking"}, {Type: "beach"}, {Type: "museum"}}

	first := Generate(summary, activities, 7)
	second := Generate(summary, activities, 7)

	assert.Equal(t, first, second)
}

func TestGenerateUniqueIdentities(t *testing.T) {
	summary := &models.WeatherSummary{MinTemp: -3, MaxTemp: 28, HasRain: true, HasSnow: true, IsWindy: true, Humidity: 80}
	var activities []models.ActivitySignal
	for _, r := range activityRules {
		activities = append(activities, models.ActivitySignal{Type: r.Key, Count: 1})
	}
	activities = append(activities, models.ActivitySignal{Type: "BEACH"}, models.ActivitySignal{Type: "swim"})

	items := Generate(summary, activities, 12)

	seen := map[string]bool{}
	for _, it := range items {
		id := Identity(it)
		assert.False(t, seen[id], "duplicate identity %s", id)
		seen[id] = true
	}
	assert.Len(t, items, maxItems(), "every table item is reachable with all rules firing")
}

func TestGenerateFirstRuleWins(t *testing.T) {
	t.Run("snow rule owns gloves over freezing rule", func(t *testing.T) {
		summary := &models.WeatherSummary{MinTemp: -5, MaxTemp: 0, HasSnow: true}
		items := Generate(summary, nil, 2)

		gloves, ok := find(items, "Gloves")
		require.True(t, ok)
		assert.Equal(t, "Snow is expected", gloves.Reason)

		count := 0
		for _, it := range items {
			if it.Name == "Gloves" {
				count++
			}
		}
		assert.Equal(t, 1, count)
	})

	t.Run("weather rules precede activity rules", func(t *testing.T) {
		summary := &models.WeatherSummary{MinTemp: 20, MaxTemp: 31}
		items := Generate(summary, []models.ActivitySignal{{Type: "beach"}}, 2)

		sunscreen, ok := find(items, "Sunscreen")
		require.True(t, ok)
		assert.Equal(t, "Temperatures above 25°C", sunscreen.Reason)
	})

	t.Run("identity ignores case of the name", func(t *testing.T) {
		c := newCollector(2)
		c.add(
			models.PackingItem{Name: "Umbrella", Category: models.CategoryAccessories, Reason: "first"},
			models.PackingItem{Name: "UMBRELLA ", Category: models.CategoryAccessories, Reason: "second"},
			models.PackingItem{Name: "umbrella", Category: models.CategoryGear, Reason: "other bucket"},
		)
		require.Len(t, c.items, 2)
		assert.Equal(t, "first", c.items[0].Reason)
		assert.Equal(t, models.CategoryGear, c.items[1].Category)
	})
}

func TestGenerateActivityMatching(t *testing.T) {
	tests := []struct {
		name     string
		activity string
		want     []string
		notWant  []string
	}{
		{
			name:     "exact key ignoring case",
			activity: "Hiking",
			want:     []string{"Hiking boots", "Daypack", "First aid kit"},
		},
		{
			name:     "activity contained in key",
			activity: "swim",
			want:     []string{"Swimwear", "Goggles", "Flip-flops"},
		},
		{
			name:     "key contained in activity",
			activity: "theme park",
			want:     []string{"Picnic blanket"},
		},
		{
			name:     "one signal triggers several rules",
			activity: "beach hiking",
			want:     []string{"Swimwear", "Beach towel", "Hiking boots", "Daypack"},
		},
		{
			name:     "near miss is accepted",
			activity: "parking garage",
			want:     []string{"Picnic blanket"},
		},
		{
			name:     "unknown activity adds nothing",
			activity: "opera",
			notWant:  []string{"Picnic blanket", "Swimwear", "Laptop"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := Generate(nil, []models.ActivitySignal{{Type: tt.activity, Count: 1}}, 1)
			got := names(items)
			for _, w := range tt.want {
				assert.Contains(t, got, w)
			}
			for _, nw := range tt.notWant {
				assert.NotContains(t, got, nw)
			}
		})
	}
}

func TestGenerateSkipsEmptyActivityType(t *testing.T) {
	items := Generate(nil, []models.ActivitySignal{{Type: ""}}, 1)
	assert.Equal(t, essentialNames, names(items))
}

func TestGenerateActivityOrder(t *testing.T) {
	items := Generate(nil, []models.ActivitySignal{{Type: "beach"}, {Type: "hiking"}}, 1)
	got := names(items)[len(essentialNames):]

	require.NotEmpty(t, got)
	assert.Equal(t, "Swimwear", got[0])
	assert.Less(t, indexOf(got, "Sunscreen"), indexOf(got, "Hiking boots"))
}

func indexOf(list []string, v string) int {
	for i, s := range list {
		if s == v {
			return i
		}
	}
	return -1
}

// maxItems is the number of distinct items all tables can contribute.
func maxItems() int {
	c := newCollector(64)
	c.add(essentialItems...)
	for _, r := range weatherRules {
		c.add(r.Items...)
	}
	for _, r := range activityRules {
		c.add(r.Items...)
	}
	c.add(extendedStayItem(extendedStayDays + 1))
	return len(c.items)
}
