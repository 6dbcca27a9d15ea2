// Package schedule is the public entry point of the assignment engine.
//
// A Schedule owns one in-memory timetable: the slot map, the credit ledger
// and the undo/redo history. Every operation runs to completion before it
// returns and none starts goroutines. A Schedule is not safe for concurrent
// use; callers serving several requests must serialize access per instance.
package schedule

import (
	"errors"
	"fmt"
	"time"

	"github.com/louisbranch/timetable/internal/platform/id"
	"github.com/louisbranch/timetable/internal/platform/logging"
	"github.com/louisbranch/timetable/internal/services/timetable/domain/assignment"
	"github.com/louisbranch/timetable/internal/services/timetable/domain/catalog"
	"github.com/louisbranch/timetable/internal/services/timetable/domain/command"
	"github.com/louisbranch/timetable/internal/services/timetable/domain/timeslot"
	"go.uber.org/zap"
)

// ErrCatalogRequired indicates a missing catalog reader.
var ErrCatalogRequired = errors.New("catalog reader is required")

// LoadThresholds bound the credit load levels.
type LoadThresholds struct {
	// Min is the lowest normal load; anything below is LOW.
	Min int
	// NormalMax is the highest NORMAL load.
	NormalMax int
	// HighMax is the highest allowed load; anything above is EXCESSIVE.
	HighMax int
}

// DefaultLoadThresholds returns 12 / 18 / 22.
func DefaultLoadThresholds() LoadThresholds {
	return LoadThresholds{Min: 12, NormalMax: 18, HighMax: 22}
}

func (l LoadThresholds) validate() error {
	if l.Min < 0 || l.Min > l.NormalMax || l.NormalMax > l.HighMax {
		return fmt.Errorf("credit thresholds must satisfy 0 <= min <= normal max <= high max, got %d/%d/%d",
			l.Min, l.NormalMax, l.HighMax)
	}
	return nil
}

// Config tunes a Schedule. Zero fields take defaults.
type Config struct {
	Grid   timeslot.Grid
	Load   LoadThresholds
	Locale string
	Logger *zap.Logger
	Now    func() time.Time
	NewID  func() (string, error)
}

// Schedule is the assignment engine facade.
type Schedule struct {
	executor command.Executor
	store    *assignment.Store
	history  command.History

	grid   timeslot.Grid
	load   LoadThresholds
	locale string
	logger *zap.Logger
	now    func() time.Time
	newID  func() (string, error)

	listeners    []listener
	nextListener int
}

// New builds an empty schedule reading groups from reader.
func New(reader catalog.Reader, cfg Config) (*Schedule, error) {
	if reader == nil {
		return nil, ErrCatalogRequired
	}
	if cfg.Grid == (timeslot.Grid{}) {
		cfg.Grid = timeslot.DefaultGrid()
	}
	if err := cfg.Grid.Validate(); err != nil {
		return nil, err
	}
	if cfg.Load == (LoadThresholds{}) {
		cfg.Load = DefaultLoadThresholds()
	}
	if err := cfg.Load.validate(); err != nil {
		return nil, err
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.NewID == nil {
		cfg.NewID = id.NewID
	}

	store := assignment.NewStore()
	return &Schedule{
		executor: command.Executor{Catalog: reader, Store: store, Locale: cfg.Locale},
		store:    store,
		grid:     cfg.Grid,
		load:     cfg.Load,
		locale:   cfg.Locale,
		logger:   logging.OrNop(cfg.Logger),
		now:      cfg.Now,
		newID:    cfg.NewID,
	}, nil
}

// Snapshot returns a copy of the occupied slots.
func (s *Schedule) Snapshot() map[timeslot.Key]assignment.Assignment {
	return s.store.Snapshot()
}

// Assignments lists the occupied slots in chronological order.
func (s *Schedule) Assignments() []assignment.Assignment {
	return s.store.Assignments()
}

// TotalCredits is the credit sum over distinct scheduled subjects.
func (s *Schedule) TotalCredits() int {
	return s.store.TotalCredits()
}

// Grid returns the configured hour range.
func (s *Schedule) Grid() timeslot.Grid {
	return s.grid
}

// HistoryView is a diagnostic copy of the command stacks, oldest first.
type HistoryView struct {
	Undo []command.Command `json:"undo"`
	Redo []command.Command `json:"redo"`
}

// History returns copies of the undo and redo stacks.
func (s *Schedule) History() HistoryView {
	return HistoryView{Undo: s.history.UndoStack(), Redo: s.history.RedoStack()}
}

// CanUndo reports whether Undo has a command to revert.
func (s *Schedule) CanUndo() bool {
	return s.history.CanUndo()
}

// CanRedo reports whether Redo has a command to re-apply.
func (s *Schedule) CanRedo() bool {
	return s.history.CanRedo()
}

func (s *Schedule) command(kind command.Kind, subjectCode, groupName string) (command.Command, error) {
	cmdID, err := s.newID()
	if err != nil {
		return command.Command{}, fmt.Errorf("generate command id: %w", err)
	}
	return command.New(cmdID, kind, subjectCode, groupName), nil
}
