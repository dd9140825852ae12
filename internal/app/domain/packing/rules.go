package packing

import (
	"fmt"

	"github.com/FACorreiaa/loci-travelkit/internal/app/models"
)

// extendedStayDays is the trip length above which laundry gear is suggested.
const extendedStayDays = 5

// WeatherRule adds its items when Applies holds for the forecast summary.
type WeatherRule struct {
	Name    string
	Applies func(s models.WeatherSummary) bool
	Items   []models.PackingItem
}

// ActivityRule adds its items when an activity signal matches Key.
type ActivityRule struct {
	Key   string
	Items []models.PackingItem
}

func item(name string, category models.PackingCategory, priority models.PackingPriority, icon, reason string) models.PackingItem {
	return models.PackingItem{
		Name:     name,
		Category: category,
		Reason:   reason,
		Priority: priority,
		Icon:     icon,
	}
}

var essentialItems = []models.PackingItem{
	item("Passport / ID", models.CategoryDocuments, models.PriorityEssential, "id-card", "Required for travel"),
	item("Phone charger", models.CategoryElectronics, models.PriorityEssential, "battery-charging", "Keep your phone powered"),
	item("Toothbrush & toothpaste", models.CategoryToiletries, models.PriorityEssential, "smile", "Daily hygiene"),
	item("Personal medications", models.CategoryHealth, models.PriorityEssential, "pill", "Bring enough for the whole trip"),
}

// Table order matters: the first rule to propose an item owns its reason and icon.
var weatherRules = []WeatherRule{
	{
		Name:    "rain",
		Applies: func(s models.WeatherSummary) bool { return s.HasRain },
		Items: []models.PackingItem{
			item("Umbrella", models.CategoryAccessories, models.PriorityEssential, "umbrella", "Rain is expected"),
			item("Rain jacket", models.CategoryClothing, models.PriorityEssential, "cloud-rain", "Rain is expected"),
			item("Waterproof bag", models.CategoryAccessories, models.PriorityRecommended, "shield", "Keep electronics and documents dry"),
		},
	},
	{
		Name:    "snow",
		Applies: func(s models.WeatherSummary) bool { return s.HasSnow },
		Items: []models.PackingItem{
			item("Snow boots", models.CategoryFootwear, models.PriorityEssential, "snowflake", "Snow is expected"),
			item("Thermal underwear", models.CategoryClothing, models.PriorityEssential, "thermometer-snowflake", "Snow is expected"),
			item("Gloves", models.CategoryAccessories, models.PriorityEssential, "hand", "Snow is expected"),
			item("Winter hat", models.CategoryAccessories, models.PriorityRecommended, "snowflake", "Snow is expected"),
		},
	},
	{
		Name:    "cool",
		Applies: func(s models.WeatherSummary) bool { return s.MinTemp < 10 },
		Items: []models.PackingItem{
			item("Warm jacket", models.CategoryClothing, models.PriorityEssential, "thermometer", "Temperatures drop below 10°C"),
			item("Layers / sweaters", models.CategoryClothing, models.PriorityRecommended, "layers", "Temperatures drop below 10°C"),
			item("Long pants", models.CategoryClothing, models.PriorityRecommended, "shirt", "Temperatures drop below 10°C"),
		},
	},
	{
		Name:    "freezing",
		Applies: func(s models.WeatherSummary) bool { return s.MinTemp < 0 },
		Items: []models.PackingItem{
			item("Gloves", models.CategoryAccessories, models.PriorityEssential, "hand", "Freezing temperatures expected"),
			item("Scarf", models.CategoryAccessories, models.PriorityRecommended, "wind", "Freezing temperatures expected"),
			item("Lip balm", models.CategoryToiletries, models.PriorityOptional, "droplet", "Cold air dries skin"),
		},
	},
	{
		Name:    "hot",
		Applies: func(s models.WeatherSummary) bool { return s.MaxTemp > 25 },
		Items: []models.PackingItem{
			item("Sunscreen", models.CategoryToiletries, models.PriorityEssential, "sun", "Temperatures above 25°C"),
			item("Sunglasses", models.CategoryAccessories, models.PriorityRecommended, "glasses", "Temperatures above 25°C"),
			item("Sun hat", models.CategoryAccessories, models.PriorityRecommended, "sun", "Temperatures above 25°C"),
			item("Reusable water bottle", models.CategoryGear, models.PriorityRecommended, "glass-water", "Stay hydrated in the heat"),
			item("Light breathable clothing", models.CategoryClothing, models.PriorityRecommended, "shirt", "Temperatures above 25°C"),
		},
	},
	{
		Name:    "windy",
		Applies: func(s models.WeatherSummary) bool { return s.IsWindy },
		Items: []models.PackingItem{
			item("Windbreaker", models.CategoryClothing, models.PriorityRecommended, "wind", "Strong winds expected"),
		},
	},
	{
		Name:    "humid",
		Applies: func(s models.WeatherSummary) bool { return s.Humidity > 70 },
		Items: []models.PackingItem{
			item("Quick-dry clothing", models.CategoryClothing, models.PriorityOptional, "shirt", "High humidity"),
			item("Insect repellent", models.CategoryHealth, models.PriorityRecommended, "bug", "Humid weather brings mosquitoes"),
		},
	},
}

// Keys are lower case. Slice order is the evaluation order for substring matches.
var activityRules = []ActivityRule{
	{
		Key: "beach",
		Items: []models.PackingItem{
			item("Swimwear", models.CategoryClothing, models.PriorityEssential, "waves", "Beach days planned"),
			item("Beach towel", models.CategoryGear, models.PriorityEssential, "layers", "Beach days planned"),
			item("Sandals", models.CategoryFootwear, models.PriorityRecommended, "footprints", "Beach days planned"),
			item("Beach bag", models.CategoryAccessories, models.PriorityOptional, "shopping-bag", "Beach days planned"),
			item("Sunscreen", models.CategoryToiletries, models.PriorityEssential, "sun", "Sun exposure at the beach"),
		},
	},
	{
		Key: "hiking",
		Items: []models.PackingItem{
			item("Hiking boots", models.CategoryFootwear, models.PriorityEssential, "mountain", "Hikes planned"),
			item("Daypack", models.CategoryGear, models.PriorityEssential, "backpack", "Hikes planned"),
			item("Reusable water bottle", models.CategoryGear, models.PriorityRecommended, "glass-water", "Stay hydrated on the trail"),
			item("First aid kit", models.CategoryHealth, models.PriorityRecommended, "cross", "Hikes planned"),
		},
	},
	{
		Key: "swimming",
		Items: []models.PackingItem{
			item("Swimwear", models.CategoryClothing, models.PriorityEssential, "waves", "Swimming planned"),
			item("Goggles", models.CategoryGear, models.PriorityOptional, "glasses", "Swimming planned"),
			item("Flip-flops", models.CategoryFootwear, models.PriorityRecommended, "footprints", "Pool and changing rooms"),
		},
	},
	{
		Key: "skiing",
		Items: []models.PackingItem{
			item("Ski jacket", models.CategoryClothing, models.PriorityEssential, "mountain-snow", "Skiing planned"),
			item("Ski goggles", models.CategoryGear, models.PriorityEssential, "glasses", "Skiing planned"),
			item("Thermal underwear", models.CategoryClothing, models.PriorityRecommended, "thermometer-snowflake", "Skiing planned"),
		},
	},
	{
		Key: "camping",
		Items: []models.PackingItem{
			item("Headlamp", models.CategoryGear, models.PriorityEssential, "flashlight", "Camping planned"),
			item("Sleeping bag", models.CategoryGear, models.PriorityEssential, "tent", "Camping planned"),
			item("Insect repellent", models.CategoryHealth, models.PriorityRecommended, "bug", "Camping planned"),
		},
	},
	{
		Key: "cycling",
		Items: []models.PackingItem{
			item("Helmet", models.CategoryGear, models.PriorityEssential, "bike", "Cycling planned"),
			item("Padded shorts", models.CategoryClothing, models.PriorityOptional, "bike", "Cycling planned"),
		},
	},
	{
		Key: "museum",
		Items: []models.PackingItem{
			item("Comfortable walking shoes", models.CategoryFootwear, models.PriorityRecommended, "footprints", "Long visits on foot"),
			item("Small crossbody bag", models.CategoryAccessories, models.PriorityOptional, "shopping-bag", "Many museums restrict large bags"),
		},
	},
	{
		Key: "sightseeing",
		Items: []models.PackingItem{
			item("Comfortable walking shoes", models.CategoryFootwear, models.PriorityRecommended, "footprints", "Lots of walking planned"),
			item("Portable power bank", models.CategoryElectronics, models.PriorityRecommended, "battery", "Maps and photos drain the battery"),
		},
	},
	{
		Key: "park",
		Items: []models.PackingItem{
			item("Picnic blanket", models.CategoryGear, models.PriorityOptional, "trees", "Park visits planned"),
		},
	},
	{
		Key: "photography",
		Items: []models.PackingItem{
			item("Camera", models.CategoryElectronics, models.PriorityRecommended, "camera", "Photography planned"),
			item("Spare memory cards", models.CategoryElectronics, models.PriorityOptional, "hard-drive", "Photography planned"),
		},
	},
	{
		Key: "restaurant",
		Items: []models.PackingItem{
			item("Smart casual outfit", models.CategoryClothing, models.PriorityOptional, "utensils", "Dining out planned"),
		},
	},
	{
		Key: "nightlife",
		Items: []models.PackingItem{
			item("Evening outfit", models.CategoryClothing, models.PriorityOptional, "moon", "Nights out planned"),
			item("Earplugs", models.CategoryHealth, models.PriorityOptional, "ear", "Late nights and noisy streets"),
		},
	},
	{
		Key: "business",
		Items: []models.PackingItem{
			item("Laptop", models.CategoryElectronics, models.PriorityEssential, "laptop", "Work meetings planned"),
			item("Business attire", models.CategoryClothing, models.PriorityEssential, "briefcase", "Work meetings planned"),
		},
	},
	{
		Key: "shopping",
		Items: []models.PackingItem{
			item("Foldable tote bag", models.CategoryAccessories, models.PriorityOptional, "shopping-bag", "Shopping planned"),
		},
	},
}

var activityIndex = func() map[string]int {
	idx := make(map[string]int, len(activityRules))
	for i, r := range activityRules {
		idx[r.Key] = i
	}
	return idx
}()

func extendedStayItem(durationDays int) models.PackingItem {
	return item("Laundry bag", models.CategoryAccessories, models.PriorityRecommended, "shirt",
		fmt.Sprintf("Trip lasts %d days", durationDays))
}
