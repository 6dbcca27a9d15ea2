package timeslot

import "fmt"

// Grid is the displayed range of hourly buckets, First through Last inclusive.
// The default 7..19 shows 07:00 through 19:00 and spans 07:00-20:00.
type Grid struct {
	First int
	Last  int
}

// DefaultGrid is the weekday grid used when none is configured.
func DefaultGrid() Grid {
	return Grid{First: 7, Last: 19}
}

// Validate checks the bucket range fits in one day.
func (g Grid) Validate() error {
	if g.First < 0 || g.Last > 23 || g.First > g.Last {
		return fmt.Errorf("grid hours must satisfy 0 <= first <= last <= 23, got %d..%d", g.First, g.Last)
	}
	return nil
}

// Hours lists the bucket hours.
func (g Grid) Hours() []int {
	hours := make([]int, 0, g.Last-g.First+1)
	for h := g.First; h <= g.Last; h++ {
		hours = append(hours, h)
	}
	return hours
}

// Contains reports whether hour is a displayed bucket.
func (g Grid) Contains(hour int) bool {
	return hour >= g.First && hour <= g.Last
}

// Span returns the full interval covered by the grid.
func (g Grid) Span() Interval {
	return Interval{Start: At(g.First, 0), End: At(g.Last+1, 0)}
}

// FreeWindows returns the gaps of the grid span not covered by busy hours,
// keeping only gaps at least minMinutes long, in chronological order.
func (g Grid) FreeWindows(busyHours map[int]bool, minMinutes int) []Interval {
	var windows []Interval
	start := -1
	flush := func(endHour int) {
		if start < 0 {
			return
		}
		iv := Interval{Start: At(start, 0), End: At(endHour, 0)}
		if int(iv.End-iv.Start) >= minMinutes {
			windows = append(windows, iv)
		}
		start = -1
	}
	for hour := g.First; hour <= g.Last; hour++ {
		if busyHours[hour] {
			flush(hour)
			continue
		}
		if start < 0 {
			start = hour
		}
	}
	flush(g.Last + 1)
	return windows
}
