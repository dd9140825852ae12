package models

// PackingCategory is one of the fixed packing list buckets.
type PackingCategory string

const (
	CategoryClothing    PackingCategory = "clothing"
	CategoryFootwear    PackingCategory = "footwear"
	CategoryToiletries  PackingCategory = "toiletries"
	CategoryElectronics PackingCategory = "electronics"
	CategoryDocuments   PackingCategory = "documents"
	CategoryHealth      PackingCategory = "health"
	CategoryAccessories PackingCategory = "accessories"
	CategoryGear        PackingCategory = "gear"
)

// PackingPriority ranks how important an item is for the trip.
type PackingPriority string

const (
	PriorityEssential   PackingPriority = "essential"
	PriorityRecommended PackingPriority = "recommended"
	PriorityOptional    PackingPriority = "optional"
)

// ActivitySignal is a planned activity type and how many times it appears in the itinerary.
type ActivitySignal struct {
	Type  string `json:"type"`
	Count int    `json:"count"`
}

// PackingItem is a single recommended item.
type PackingItem struct {
	Name     string          `json:"name"`
	Category PackingCategory `json:"category"`
	Reason   string          `json:"reason"`
	Priority PackingPriority `json:"priority"`
	Icon     string          `json:"icon,omitempty"`
}

// PackingListRequest is the input of the packing list endpoint.
// Weather takes precedence over Forecast when both are present.
type PackingListRequest struct {
	Weather      *WeatherSummary  `json:"weather,omitempty"`
	Forecast     []ForecastDay    `json:"forecast,omitempty"`
	Activities   []ActivitySignal `json:"activities"`
	DurationDays int              `json:"durationDays"`
}

// PackingGroup is a non-empty category bucket ready for display.
type PackingGroup struct {
	Category PackingCategory `json:"category"`
	Label    string          `json:"label"`
	Icon     string          `json:"icon"`
	Items    []PackingItem   `json:"items"`
}

// PackingListResponse is the computed list, flat and grouped.
type PackingListResponse struct {
	Items            []PackingItem     `json:"items"`
	Groups           []PackingGroup    `json:"groups"`
	ActiveCategories []PackingCategory `json:"activeCategories"`
	Weather          *WeatherSummary   `json:"weather,omitempty"`
}
