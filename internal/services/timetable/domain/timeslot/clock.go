package timeslot

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	platformerrors "github.com/louisbranch/timetable/internal/platform/errors"
)

// Clock is a time of day in minutes since midnight.
type Clock int

// ParseClock parses an "HH:MM" (or "H:MM") time of day.
// Anything else fails with a TIME_FORMAT_INVALID domain error.
func ParseClock(value string) (Clock, error) {
	trimmed := strings.TrimSpace(value)
	hh, mm, ok := strings.Cut(trimmed, ":")
	if !ok || len(hh) < 1 || len(hh) > 2 || len(mm) != 2 {
		return 0, formatError(value)
	}
	hour, err := strconv.Atoi(hh)
	if err != nil || hour < 0 || hour > 23 {
		return 0, formatError(value)
	}
	minute, err := strconv.Atoi(mm)
	if err != nil || minute < 0 || minute > 59 {
		return 0, formatError(value)
	}
	return Clock(hour*60 + minute), nil
}

// At builds a clock from an hour and minute.
func At(hour, minute int) Clock {
	return Clock(hour*60 + minute)
}

// Hour returns the hour bucket the clock falls in.
func (c Clock) Hour() int {
	return int(c) / 60
}

// Minute returns the minute within the hour.
func (c Clock) Minute() int {
	return int(c) % 60
}

// String formats the clock as "HH:MM".
func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour(), c.Minute())
}

func formatError(value string) error {
	return platformerrors.WithMetadata(
		platformerrors.CodeTimeFormatInvalid,
		fmt.Sprintf("invalid time %q, want HH:MM", value),
		map[string]string{"Value": value},
	)
}

// Interval is a half-open [Start, End) span within one day.
type Interval struct {
	Start Clock
	End   Clock
}

// ParseInterval parses both ends of a session time range.
func ParseInterval(start, end string) (Interval, error) {
	s, err := ParseClock(start)
	if err != nil {
		return Interval{}, err
	}
	e, err := ParseClock(end)
	if err != nil {
		return Interval{}, err
	}
	return Interval{Start: s, End: e}, nil
}

// Overlaps reports whether the two intervals share any instant.
func Overlaps(a, b Interval) bool {
	return max(a.Start, b.Start) < min(a.End, b.End)
}

// Overlaps reports whether i and other share any instant.
func (i Interval) Overlaps(other Interval) bool {
	return Overlaps(i, other)
}

// Duration returns the interval length; empty or inverted intervals are zero.
func (i Interval) Duration() time.Duration {
	if i.End <= i.Start {
		return 0
	}
	return time.Duration(i.End-i.Start) * time.Minute
}

// String formats the interval as "HH:MM-HH:MM".
func (i Interval) String() string {
	return i.Start.String() + "-" + i.End.String()
}
