package venuehours

import (
	"time"
	_ "time/tzdata" // zone database for containers without /usr/share/zoneinfo

	"github.com/jonboulle/clockwork"
	"golang.org/x/text/cases"

	"github.com/FACorreiaa/loci-travelkit/internal/app/models"
)

// Source names the hint that supplied the venue-local clock.
type Source string

const (
	SourceTimeZoneID Source = "time_zone_id"
	SourceCity       Source = "city"
	SourceUTCOffset  Source = "utc_offset"
	SourceLocalClock Source = "local_clock"
)

// Hints are the optional timezone clues known about a venue.
type Hints struct {
	TimeZoneID       string
	City             string
	UTCOffsetMinutes *int
}

// HintsFrom extracts the timezone hints of an opening hours record.
func HintsFrom(rec models.OpeningHoursRecord) Hints {
	return Hints{
		TimeZoneID:       rec.TimeZoneID,
		City:             rec.City,
		UTCOffsetMinutes: rec.UTCOffsetMinutes,
	}
}

var cityTimeZones = foldKeys(map[string]string{
	"Lisbon":      "Europe/Lisbon",
	"Porto":       "Europe/Lisbon",
	"London":      "Europe/London",
	"Paris":       "Europe/Paris",
	"Madrid":      "Europe/Madrid",
	"Barcelona":   "Europe/Madrid",
	"Berlin":      "Europe/Berlin",
	"Rome":        "Europe/Rome",
	"Amsterdam":   "Europe/Amsterdam",
	"New York":    "America/New_York",
	"Los Angeles": "America/Los_Angeles",
	"Chicago":     "America/Chicago",
	"São Paulo":   "America/Sao_Paulo",
	"Tokyo":       "Asia/Tokyo",
	"Singapore":   "Asia/Singapore",
	"Dubai":       "Asia/Dubai",
	"Sydney":      "Australia/Sydney",
})

func foldKeys(m map[string]string) map[string]string {
	fold := cases.Fold()
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[fold.String(k)] = v
	}
	return out
}

// attempt tries to derive a location from the hints.
type attempt struct {
	source  Source
	resolve func(h Hints) (*time.Location, bool)
}

// byTimeZoneID loads an IANA id. "Local" names the host zone, not the venue's, and is refused.
func byTimeZoneID(h Hints) (*time.Location, bool) {
	if h.TimeZoneID == "" || h.TimeZoneID == "Local" {
		return nil, false
	}
	loc, err := time.LoadLocation(h.TimeZoneID)
	if err != nil {
		return nil, false
	}
	return loc, true
}

func byCity(h Hints) (*time.Location, bool) {
	if h.City == "" {
		return nil, false
	}
	id, ok := cityTimeZones[cases.Fold().String(h.City)]
	if !ok {
		return nil, false
	}
	return byTimeZoneID(Hints{TimeZoneID: id})
}

// byUTCOffset uses a fixed offset, which ignores daylight saving transitions.
func byUTCOffset(h Hints) (*time.Location, bool) {
	if h.UTCOffsetMinutes == nil {
		return nil, false
	}
	return time.FixedZone("", *h.UTCOffsetMinutes*60), true
}

// Resolver computes "now" in venue-local wall clock terms. The first hint that yields a
// location wins; with no usable hint the clock's own reading is returned as is.
type Resolver struct {
	clock    clockwork.Clock
	attempts []attempt
}

// NewResolver builds the fallback chain. A nil clock uses real time.
func NewResolver(clock clockwork.Clock) *Resolver {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Resolver{
		clock: clock,
		attempts: []attempt{
			{source: SourceTimeZoneID, resolve: byTimeZoneID},
			{source: SourceCity, resolve: byCity},
			{source: SourceUTCOffset, resolve: byUTCOffset},
		},
	}
}

// Now returns the venue-local time and which hint produced it.
func (r *Resolver) Now(h Hints) (time.Time, Source) {
	now := r.clock.Now()
	for _, a := range r.attempts {
		if loc, ok := a.resolve(h); ok {
			return now.In(loc), a.source
		}
	}
	return now, SourceLocalClock
}
