package domain

import (
	"context"
	"errors"
	"strings"
	"sync"

	platformerrors "github.com/louisbranch/timetable/internal/platform/errors"
	"github.com/louisbranch/timetable/internal/platform/logging"
	"github.com/louisbranch/timetable/internal/services/timetable/schedule"
	"go.uber.org/zap"
)

// ErrScheduleRequired indicates a workspace built without a schedule.
var ErrScheduleRequired = errors.New("schedule is required")

// ResourceUpdateNotifier publishes a resource update for a URI.
type ResourceUpdateNotifier func(ctx context.Context, uri string)

// Workspace owns the schedule served by one MCP process. The schedule is not
// safe for concurrent use, so every handler goes through with.
type Workspace struct {
	mu       sync.Mutex
	schedule *schedule.Schedule
	locale   string
	logger   *zap.Logger
}

// NewWorkspace wraps s. An empty locale renders messages in en-US.
func NewWorkspace(s *schedule.Schedule, locale string, logger *zap.Logger) (*Workspace, error) {
	if s == nil {
		return nil, ErrScheduleRequired
	}
	locale = strings.TrimSpace(locale)
	if locale == "" {
		locale = platformerrors.DefaultLocale
	}
	return &Workspace{schedule: s, locale: locale, logger: logging.OrNop(logger)}, nil
}

// Locale returns the locale used for tool messages.
func (w *Workspace) Locale() string {
	return w.locale
}

// Watch forwards schedule changes to notify as updates of the schedule
// resource. The returned function stops forwarding.
func (w *Workspace) Watch(ctx context.Context, notify ResourceUpdateNotifier) (stop func()) {
	if notify == nil {
		return func() {}
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.schedule.Subscribe(func(schedule.Change) {
		notify(ctx, ScheduleResourceURI)
	})
}

func (w *Workspace) with(fn func(*schedule.Schedule) error) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return fn(w.schedule)
}

// toolError converts an engine error into the error returned to the client.
// Domain errors keep their code and localized message; anything else is
// logged and reported as an internal error.
func (w *Workspace) toolError(tool string, err error) error {
	if platformerrors.GetCode(err) == platformerrors.CodeUnknown {
		w.logger.Error("tool failed", zap.String("tool", tool), zap.Error(err))
	}
	return platformerrors.HandleError(err, w.locale)
}
