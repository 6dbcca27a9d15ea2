// Package timeslot maps session time ranges onto the hourly grid.
//
// A session claims every whole-hour bucket it touches: from the bucket its
// start falls in through the bucket just before its end. 08:30-10:00 claims
// 08:00 and 09:00; 08:00-09:30 claims 08:00 and 09:00.
package timeslot

import (
	"fmt"
	"sort"
)

// Key identifies one hourly bucket on one day.
type Key struct {
	Day  Day
	Hour int
}

// NewKey builds the key for the bucket containing label ("08:00", "08:45").
func NewKey(day Day, label string) (Key, error) {
	clock, err := ParseClock(label)
	if err != nil {
		return Key{}, err
	}
	return Key{Day: day, Hour: clock.Hour()}, nil
}

// Label returns the bucket start as "HH:00".
func (k Key) Label() string {
	return At(k.Hour, 0).String()
}

// String formats the key as "Mon 08:00".
func (k Key) String() string {
	return fmt.Sprintf("%s %s", k.Day, k.Label())
}

// Less orders keys by day, then hour.
func (k Key) Less(other Key) bool {
	if k.Day != other.Day {
		return k.Day < other.Day
	}
	return k.Hour < other.Hour
}

// Slots returns the buckets occupied by iv on day in chronological order.
// Empty or inverted intervals occupy nothing.
func Slots(day Day, iv Interval) []Key {
	if iv.End <= iv.Start {
		return nil
	}
	first := iv.Start.Hour()
	last := (iv.End - 1).Hour()
	keys := make([]Key, 0, last-first+1)
	for hour := first; hour <= last; hour++ {
		keys = append(keys, Key{Day: day, Hour: hour})
	}
	return keys
}

// SlotsOf parses a raw time range and returns its buckets.
func SlotsOf(day Day, start, end string) ([]Key, error) {
	iv, err := ParseInterval(start, end)
	if err != nil {
		return nil, err
	}
	return Slots(day, iv), nil
}

// SortKeys orders keys chronologically in place.
func SortKeys(keys []Key) {
	sort.Slice(keys, func(i, j int) bool { return keys[i].Less(keys[j]) })
}
