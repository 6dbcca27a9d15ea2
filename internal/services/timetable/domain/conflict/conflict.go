// Package conflict detects candidate sessions that collide with slots
// already occupied in a schedule. Detection never mutates anything.
package conflict

import (
	"github.com/louisbranch/timetable/internal/services/timetable/domain/catalog"
	"github.com/louisbranch/timetable/internal/services/timetable/domain/timeslot"
)

// Occupant describes who holds a slot.
type Occupant struct {
	SubjectCode string
	SubjectName string
	GroupName   string
}

// Occupancy answers whether a slot is taken.
type Occupancy interface {
	OccupantAt(key timeslot.Key) (Occupant, bool)
}

// Conflict is one candidate slot that is already occupied.
type Conflict struct {
	Key      timeslot.Key
	Occupant Occupant
}

// Day returns the conflicting day.
func (c Conflict) Day() timeslot.Day { return c.Key.Day }

// Slot returns the conflicting bucket label, e.g. "08:00".
func (c Conflict) Slot() string { return c.Key.Label() }

// Find returns the occupied slots the candidate sessions would claim, in
// session order and chronologically within each session. A slot claimed by
// more than one candidate session is reported once, at its first occurrence.
// A malformed session time aborts the check with its format error.
func Find(sessions []catalog.Session, occupancy Occupancy) ([]Conflict, error) {
	var conflicts []Conflict
	seen := make(map[timeslot.Key]struct{})
	for _, session := range sessions {
		keys, err := session.Slots()
		if err != nil {
			return nil, err
		}
		for _, key := range keys {
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			occupant, taken := occupancy.OccupantAt(key)
			if !taken {
				continue
			}
			conflicts = append(conflicts, Conflict{Key: key, Occupant: occupant})
		}
	}
	return conflicts, nil
}
