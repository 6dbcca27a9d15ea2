package timeslot

import (
	"fmt"
	"strings"

	platformerrors "github.com/louisbranch/timetable/internal/platform/errors"
)

// Day is a teaching day of the week.
type Day int

const (
	// DayUnspecified is the zero value and never valid in a session.
	DayUnspecified Day = iota
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
)

// Weekdays lists the teaching days in calendar order.
var Weekdays = []Day{Monday, Tuesday, Wednesday, Thursday, Friday}

var dayLabels = map[Day]string{
	Monday:    "Mon",
	Tuesday:   "Tue",
	Wednesday: "Wed",
	Thursday:  "Thu",
	Friday:    "Fri",
}

// dayAliases maps lowercase English and Spanish names to days.
var dayAliases = map[string]Day{
	"mon": Monday, "monday": Monday, "lunes": Monday,
	"tue": Tuesday, "tuesday": Tuesday, "martes": Tuesday,
	"wed": Wednesday, "wednesday": Wednesday, "miércoles": Wednesday, "miercoles": Wednesday,
	"thu": Thursday, "thursday": Thursday, "jueves": Thursday,
	"fri": Friday, "friday": Friday, "viernes": Friday,
}

// ParseDay accepts short or full English names and Spanish names, in any case.
func ParseDay(value string) (Day, error) {
	day, ok := dayAliases[strings.ToLower(strings.TrimSpace(value))]
	if !ok {
		return DayUnspecified, platformerrors.WithMetadata(
			platformerrors.CodeDayInvalid,
			fmt.Sprintf("invalid day %q", value),
			map[string]string{"Value": value},
		)
	}
	return day, nil
}

// IsValid reports whether d is one of the teaching days.
func (d Day) IsValid() bool {
	_, ok := dayLabels[d]
	return ok
}

// String returns the short English label ("Mon").
func (d Day) String() string {
	if label, ok := dayLabels[d]; ok {
		return label
	}
	return fmt.Sprintf("Day(%d)", int(d))
}

// MarshalText implements encoding.TextMarshaler.
func (d Day) MarshalText() ([]byte, error) {
	if !d.IsValid() {
		return nil, fmt.Errorf("cannot marshal %s", d)
	}
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Day) UnmarshalText(text []byte) error {
	parsed, err := ParseDay(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
