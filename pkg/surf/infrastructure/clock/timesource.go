package clock

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/DanielSiepmann/Surf/pkg/surf/application/model"
	"github.com/DanielSiepmann/Surf/pkg/surf/application/service"
)

// ReleaseIdentifierLayout is the timestamp encoding of release directory
// names, e.g. 20230104153000.
const ReleaseIdentifierLayout = "20060102150405"

var relativeExpression = regexp.MustCompile(`^(\d+)\s+(second|minute|hour|day|week|month|year)s?\s+ago$`)

var unitDurations = map[string]time.Duration{
	"second": time.Second,
	"minute": time.Minute,
	"hour":   time.Hour,
	"day":    24 * time.Hour,
	"week":   7 * 24 * time.Hour,
	"month":  30 * 24 * time.Hour,
	"year":   365 * 24 * time.Hour,
}

func NewSystemTimeSource() service.TimeSource {
	return NewTimeSource(time.Now)
}

// NewTimeSource builds a TimeSource on an injectable wall clock.
func NewTimeSource(now func() time.Time) service.TimeSource {
	return &timeSource{now: now}
}

type timeSource struct {
	now func() time.Time
}

func (source timeSource) CurrentTime() time.Time {
	return source.now()
}

func (source timeSource) StringToTime(spec string) (time.Time, error) {
	duration, err := parseRelativeExpression(spec)
	if err != nil {
		return time.Time{}, err
	}
	return source.now().Add(-duration), nil
}

func (source timeSource) ParseReleaseTime(identifier string) (time.Time, error) {
	createdAt, err := time.Parse(ReleaseIdentifierLayout, identifier)
	if err != nil {
		return time.Time{}, model.ParseError{
			Value:  identifier,
			Reason: "release identifier does not encode a timestamp",
		}
	}
	return createdAt, nil
}

func parseRelativeExpression(spec string) (time.Duration, error) {
	match := relativeExpression.FindStringSubmatch(strings.TrimSpace(spec))
	if match == nil {
		return 0, model.ParseError{Value: spec, Reason: `expected "<amount> <unit> ago"`}
	}
	amount, err := strconv.Atoi(match[1])
	if err != nil {
		return 0, model.ParseError{Value: spec, Reason: "amount out of range"}
	}
	return time.Duration(amount) * unitDurations[match[2]], nil
}
