package models

// OpeningHoursRecord is a venue's weekly hours as sourced from a places provider.
// WeekdayText holds seven "Day: hours" entries ordered Monday first.
type OpeningHoursRecord struct {
	WeekdayText      []string `json:"weekday_text"`
	TimeZoneID       string   `json:"time_zone_id,omitempty"`
	UTCOffsetMinutes *int     `json:"utc_offset_minutes,omitempty"`
	City             string   `json:"city,omitempty"`
}

// OpenStatus is the open/closed determination for "today" at the venue.
type OpenStatus struct {
	IsOpen         bool   `json:"isOpen"`
	CurrentDay     string `json:"currentDay,omitempty"`
	TodayHours     string `json:"todayHours,omitempty"`
	TimeZoneSource string `json:"timeZoneSource,omitempty"`
}
