package venuehours

import (
	"time"

	"github.com/FACorreiaa/loci-travelkit/internal/app/models"
)

const open24HoursText = "Open 24 hours"

// Evaluator decides whether a venue is open right now.
type Evaluator struct {
	resolver *Resolver
}

func NewEvaluator(resolver *Resolver) *Evaluator {
	if resolver == nil {
		resolver = NewResolver(nil)
	}
	return &Evaluator{resolver: resolver}
}

// Evaluate resolves the venue-local time and evaluates today's hours. Errors are returned as
// is so the caller chooses how to degrade.
func (e *Evaluator) Evaluate(rec models.OpeningHoursRecord) (models.OpenStatus, error) {
	now, source := e.resolver.Now(HintsFrom(rec))
	status, err := EvaluateAt(rec.WeekdayText, now)
	if err != nil {
		return models.OpenStatus{}, err
	}
	status.TimeZoneSource = string(source)
	return status, nil
}

// EvaluateAt evaluates the weekday text against a venue-local time.
func EvaluateAt(weekdayText []string, now time.Time) (models.OpenStatus, error) {
	day, err := ParseDay(weekdayText, now.Weekday())
	if err != nil {
		return models.OpenStatus{}, err
	}

	status := models.OpenStatus{
		IsOpen:     day.OpenAt(MinuteOfDay(now)),
		CurrentDay: day.Day,
	}
	switch day.Kind {
	case KindUnknown:
	case KindOpen24Hours:
		status.TodayHours = open24HoursText
	default:
		status.TodayHours = day.Description
	}
	return status, nil
}

// Degrade maps a failed evaluation to closed with nothing else populated.
func Degrade(status models.OpenStatus, err error) models.OpenStatus {
	if err != nil {
		return models.OpenStatus{IsOpen: false}
	}
	return status
}
