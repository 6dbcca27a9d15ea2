package schedule

import (
	"github.com/louisbranch/timetable/internal/services/timetable/domain/catalog"
	"github.com/louisbranch/timetable/internal/services/timetable/domain/timeslot"
	"github.com/louisbranch/timetable/internal/services/timetable/i18n"
	"github.com/shopspring/decimal"
)

// Statistics summarizes the current schedule. Session counts are per
// occupied hourly slot, so a two-hour class counts twice.
type Statistics struct {
	SubjectCount   int                         `json:"subject_count"`
	TotalCredits   int                         `json:"total_credits"`
	TotalSessions  int                         `json:"total_sessions"`
	SessionsByDay  map[timeslot.Day]int        `json:"sessions_by_day"`
	SessionsByKind map[catalog.SessionKind]int `json:"sessions_by_kind"`
	// AverageCredits is credits per distinct subject, rounded to two places.
	AverageCredits decimal.Decimal `json:"average_credits"`
}

// Statistics computes the schedule summary. Every weekday appears in
// SessionsByDay, even with a zero count.
func (s *Schedule) Statistics() Statistics {
	stats := Statistics{
		SubjectCount:   s.store.SubjectCount(),
		TotalCredits:   s.store.TotalCredits(),
		TotalSessions:  s.store.Len(),
		SessionsByDay:  make(map[timeslot.Day]int, len(timeslot.Weekdays)),
		SessionsByKind: make(map[catalog.SessionKind]int),
		AverageCredits: decimal.Zero,
	}
	for _, day := range timeslot.Weekdays {
		stats.SessionsByDay[day] = 0
	}
	for _, a := range s.store.Assignments() {
		stats.SessionsByDay[a.Key.Day]++
		stats.SessionsByKind[a.Session.Kind]++
	}
	if stats.SubjectCount > 0 {
		stats.AverageCredits = decimal.NewFromInt(int64(stats.TotalCredits)).
			Div(decimal.NewFromInt(int64(stats.SubjectCount))).
			Round(2)
	}
	return stats
}

// LoadLevel classifies a credit total.
type LoadLevel string

const (
	LoadLow       LoadLevel = "LOW"
	LoadNormal    LoadLevel = "NORMAL"
	LoadHigh      LoadLevel = "HIGH"
	LoadExcessive LoadLevel = "EXCESSIVE"
)

// CreditLoad is the assessment of the current credit total.
type CreditLoad struct {
	Credits int       `json:"credits"`
	Level   LoadLevel `json:"level"`
	// Valid is false only for EXCESSIVE loads.
	Valid          bool   `json:"valid"`
	Recommendation string `json:"recommendation"`
}

// CreditLoad assesses the total against the configured thresholds.
func (s *Schedule) CreditLoad() CreditLoad {
	credits := s.store.TotalCredits()
	p := i18n.Printer(s.locale)
	load := CreditLoad{Credits: credits, Valid: true}
	switch {
	case credits < s.load.Min:
		load.Level = LoadLow
		load.Recommendation = p.Sprintf(i18n.CreditLoadLowKey, credits)
	case credits <= s.load.NormalMax:
		load.Level = LoadNormal
		load.Recommendation = p.Sprintf(i18n.CreditLoadNormalKey, credits)
	case credits <= s.load.HighMax:
		load.Level = LoadHigh
		load.Recommendation = p.Sprintf(i18n.CreditLoadHighKey, credits)
	default:
		load.Level = LoadExcessive
		load.Valid = false
		load.Recommendation = p.Sprintf(i18n.CreditLoadExcessiveKey, credits, s.load.HighMax)
	}
	return load
}

// FreeWindows lists the free gaps of at least minMinutes on day within the
// grid, in chronological order. A non-positive minimum means one hour.
func (s *Schedule) FreeWindows(day timeslot.Day, minMinutes int) []timeslot.Interval {
	if minMinutes <= 0 {
		minMinutes = 60
	}
	busy := make(map[int]bool)
	for key := range s.store.Snapshot() {
		if key.Day == day {
			busy[key.Hour] = true
		}
	}
	return s.grid.FreeWindows(busy, minMinutes)
}
