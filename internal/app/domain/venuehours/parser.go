package venuehours

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	ErrHoursUnavailable = errors.New("opening hours unavailable")
	ErrMalformedHours   = errors.New("malformed opening hours")
)

// Kind classifies a day's hours description.
type Kind int

const (
	KindUnknown Kind = iota
	KindClosed
	KindOpen24Hours
	KindRanges
)

// clockToken matches "9:00 AM", "9:00AM" and the no-break space variants places APIs emit.
var clockToken = regexp.MustCompile(`(?i)(\d{1,2}):(\d{2})[\s\x{00A0}\x{202F}]*([AP]M)`)

// TimeRange is a half-open [Open, Close) interval in minutes since midnight.
// Ranges that cross midnight have Close < Open and contain no minute.
type TimeRange struct {
	Open  int
	Close int
}

// Contains reports whether minute falls inside the range.
func (r TimeRange) Contains(minute int) bool {
	return minute >= r.Open && minute < r.Close
}

// DayHours is one parsed "Day: hours" entry.
type DayHours struct {
	Day         string
	Description string
	Kind        Kind
	Ranges      []TimeRange
}

// OpenAt reports whether the venue is open at the given minute of the day.
func (d DayHours) OpenAt(minute int) bool {
	switch d.Kind {
	case KindOpen24Hours:
		return true
	case KindRanges:
		for _, r := range d.Ranges {
			if r.Contains(minute) {
				return true
			}
		}
	}
	return false
}

// DayIndex maps a weekday onto the Monday-first weekday text index.
func DayIndex(w time.Weekday) int {
	if w == time.Sunday {
		return 6
	}
	return int(w) - 1
}

// ParseDay selects and parses the entry for weekday w.
func ParseDay(weekdayText []string, w time.Weekday) (DayHours, error) {
	if len(weekdayText) != 7 {
		return DayHours{}, fmt.Errorf("%w: expected 7 weekday entries, got %d", ErrHoursUnavailable, len(weekdayText))
	}
	return ParseEntry(weekdayText[DayIndex(w)])
}

// ParseEntry parses a single "Day: hours" entry.
func ParseEntry(entry string) (DayHours, error) {
	day, description, _ := strings.Cut(entry, ":")
	d := DayHours{
		Day:         strings.TrimSpace(day),
		Description: strings.TrimSpace(description),
	}

	lower := strings.ToLower(d.Description)
	switch {
	case d.Description == "":
		d.Kind = KindUnknown
	case strings.Contains(lower, "closed"):
		d.Kind = KindClosed
	case strings.Contains(lower, "24 hours"):
		d.Kind = KindOpen24Hours
	default:
		ranges, err := parseRanges(d.Description)
		if err != nil {
			return DayHours{}, err
		}
		d.Kind = KindRanges
		d.Ranges = ranges
	}

	return d, nil
}

// parseRanges reads comma separated ranges. Segments with fewer than two clock tokens are
// not ranges and are skipped.
func parseRanges(description string) ([]TimeRange, error) {
	var ranges []TimeRange
	for _, segment := range strings.Split(description, ",") {
		tokens := clockToken.FindAllStringSubmatch(segment, -1)
		if len(tokens) < 2 {
			continue
		}
		open, err := tokenMinutes(tokens[0])
		if err != nil {
			return nil, err
		}
		closing, err := tokenMinutes(tokens[1])
		if err != nil {
			return nil, err
		}
		ranges = append(ranges, TimeRange{Open: open, Close: closing})
	}
	return ranges, nil
}

func tokenMinutes(m []string) (int, error) {
	hour, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])
	return ClockMinutes(hour, minute, m[3])
}

// ClockMinutes converts a 12-hour clock reading to minutes since midnight.
// 12 AM is midnight and 12 PM is noon.
func ClockMinutes(hour, minute int, meridiem string) (int, error) {
	if hour < 1 || hour > 12 || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("%w: invalid clock time %d:%02d", ErrMalformedHours, hour, minute)
	}

	switch strings.ToUpper(meridiem) {
	case "AM":
		if hour == 12 {
			hour = 0
		}
	case "PM":
		if hour != 12 {
			hour += 12
		}
	default:
		return 0, fmt.Errorf("%w: invalid meridiem %q", ErrMalformedHours, meridiem)
	}

	return hour*60 + minute, nil
}

// MinuteOfDay returns the minutes elapsed since midnight in t's location.
func MinuteOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}
