package packing

import "github.com/FACorreiaa/loci-travelkit/internal/app/models"

// categoryOrder is the presentation order of the packing buckets.
var categoryOrder = []models.PackingCategory{
	models.CategoryClothing,
	models.CategoryFootwear,
	models.CategoryToiletries,
	models.CategoryElectronics,
	models.CategoryDocuments,
	models.CategoryHealth,
	models.CategoryAccessories,
	models.CategoryGear,
}

var categoryLabels = map[models.PackingCategory]string{
	models.CategoryClothing:    "Clothing",
	models.CategoryFootwear:    "Footwear",
	models.CategoryToiletries:  "Toiletries",
	models.CategoryElectronics: "Electronics",
	models.CategoryDocuments:   "Documents",
	models.CategoryHealth:      "Health & Safety",
	models.CategoryAccessories: "Accessories",
	models.CategoryGear:        "Gear",
}

var categoryIcons = map[models.PackingCategory]string{
	models.CategoryClothing:    "shirt",
	models.CategoryFootwear:    "footprints",
	models.CategoryToiletries:  "droplets",
	models.CategoryElectronics: "plug",
	models.CategoryDocuments:   "file-text",
	models.CategoryHealth:      "heart-pulse",
	models.CategoryAccessories: "glasses",
	models.CategoryGear:        "backpack",
}

var priorityRank = map[models.PackingPriority]int{
	models.PriorityEssential:   0,
	models.PriorityRecommended: 1,
	models.PriorityOptional:    2,
}

// Categories returns the fixed category list in presentation order.
func Categories() []models.PackingCategory {
	out := make([]models.PackingCategory, len(categoryOrder))
	copy(out, categoryOrder)
	return out
}

// CategoryLabel returns the display label of a category, or the raw value when unknown.
func CategoryLabel(c models.PackingCategory) string {
	if label, ok := categoryLabels[c]; ok {
		return label
	}
	return string(c)
}

// CategoryIcon returns the icon key of a category.
func CategoryIcon(c models.PackingCategory) string {
	return categoryIcons[c]
}

// rank orders priorities; unknown priorities sort after optional.
func rank(p models.PackingPriority) int {
	if r, ok := priorityRank[p]; ok {
		return r
	}
	return len(priorityRank)
}
