package schedule

import (
	"context"
	"errors"
	"fmt"

	platformerrors "github.com/louisbranch/timetable/internal/platform/errors"
	"github.com/louisbranch/timetable/internal/services/timetable/domain/command"
	"github.com/louisbranch/timetable/internal/services/timetable/domain/timeslot"
	"github.com/louisbranch/timetable/internal/services/timetable/i18n"
	"go.uber.org/zap"
)

// AddGroup places every session of the group. It fails without mutating
// anything when the subject or group is unknown, the group has no sessions,
// a session time is malformed, or any slot is already taken.
func (s *Schedule) AddGroup(ctx context.Context, subjectCode, groupName string) (command.Result, error) {
	return s.run(ctx, command.KindAdd, subjectCode, groupName)
}

// RemoveGroup removes every slot held by the group.
func (s *Schedule) RemoveGroup(ctx context.Context, subjectCode, groupName string) (command.Result, error) {
	return s.run(ctx, command.KindRemove, subjectCode, groupName)
}

// RemoveAt removes the group occupying the slot containing time on day.
func (s *Schedule) RemoveAt(ctx context.Context, day timeslot.Day, slot string) (command.Result, error) {
	key, err := timeslot.NewKey(day, slot)
	if err != nil {
		return s.reject(err), nil
	}
	occupant, ok := s.store.OccupantAt(key)
	if !ok {
		return command.RejectError(platformerrors.WithMetadata(
			platformerrors.CodeScheduleSlotEmpty,
			fmt.Sprintf("slot %s is empty", key),
			map[string]string{"Day": key.Day.String(), "Slot": key.Label()},
		), s.locale), nil
	}
	return s.run(ctx, command.KindRemove, occupant.SubjectCode, occupant.GroupName)
}

// CheckGroup reports whether AddGroup would succeed, without mutating state.
func (s *Schedule) CheckGroup(ctx context.Context, subjectCode, groupName string) (command.Result, error) {
	return s.executor.Check(ctx, subjectCode, groupName)
}

// Undo reverses the most recent command. If reversal finds the store
// inconsistent the command stays on the undo stack and the error is returned.
func (s *Schedule) Undo(ctx context.Context) (command.Result, error) {
	cmd, ok := s.history.PopUndo()
	if !ok {
		return command.RejectError(platformerrors.New(platformerrors.CodeScheduleNothingToUndo, "undo stack is empty"), s.locale), nil
	}
	res, err := s.executor.Undo(ctx, cmd)
	if err != nil {
		s.history.RestoreUndo(cmd)
		s.logger.Error("undo failed", zap.Stringer("command", cmd), zap.Error(err))
		return command.Result{}, err
	}
	s.history.PushRedo(res.Success.Command)
	s.logger.Info("command undone",
		zap.Stringer("command", cmd),
		zap.Int("total_credits", res.Success.TotalCredits),
	)
	s.notify(ChangeUndone, cmd.SubjectCode, cmd.GroupName)
	return res, nil
}

// Redo re-applies the most recently undone command as a fresh command.
// A redo that cannot be applied leaves both stacks as they were.
func (s *Schedule) Redo(ctx context.Context) (command.Result, error) {
	undone, ok := s.history.PopRedo()
	if !ok {
		return command.RejectError(platformerrors.New(platformerrors.CodeScheduleNothingToRedo, "redo stack is empty"), s.locale), nil
	}
	cmd, err := s.command(undone.Kind, undone.SubjectCode, undone.GroupName)
	if err != nil {
		s.history.PushRedo(undone)
		return command.Result{}, err
	}
	res, err := s.executor.Execute(ctx, cmd)
	if err != nil || !res.OK() {
		s.history.PushRedo(undone)
		return res, err
	}
	s.history.RestoreUndo(res.Success.Command)
	res.Success.Message = i18n.Printer(s.locale).Sprintf(i18n.ActionRedoneKey, res.Success.Message)
	s.logger.Info("command redone",
		zap.Stringer("command", cmd),
		zap.Int("total_credits", res.Success.TotalCredits),
	)
	s.notify(ChangeRedone, cmd.SubjectCode, cmd.GroupName)
	return res, nil
}

// Clear drops every assignment and both history stacks. It cannot be undone.
func (s *Schedule) Clear() command.Result {
	s.store.Clear()
	s.history.Reset()
	s.logger.Info("schedule cleared")
	s.notify(ChangeCleared, "", "")
	return command.Accept(command.Success{
		Message: i18n.Printer(s.locale).Sprintf(i18n.ScheduleClearedKey),
	})
}

func (s *Schedule) run(ctx context.Context, kind command.Kind, subjectCode, groupName string) (command.Result, error) {
	cmd, err := s.command(kind, subjectCode, groupName)
	if err != nil {
		return command.Result{}, err
	}
	res, err := s.executor.Execute(ctx, cmd)
	if err != nil {
		s.logger.Error("command failed", zap.Stringer("command", cmd), zap.Error(err))
		return command.Result{}, err
	}
	if !res.OK() {
		s.logger.Debug("command rejected",
			zap.Stringer("command", cmd),
			zap.String("code", string(res.Failure.Code)),
		)
		return res, nil
	}

	s.history.Record(res.Success.Command)
	s.logger.Info("command executed",
		zap.Stringer("command", cmd),
		zap.Int("total_credits", res.Success.TotalCredits),
	)
	change := ChangeAdded
	if kind == command.KindRemove {
		change = ChangeRemoved
	}
	s.notify(change, subjectCode, groupName)
	return res, nil
}

func (s *Schedule) reject(err error) command.Result {
	var domainErr *platformerrors.Error
	if !errors.As(err, &domainErr) {
		domainErr = platformerrors.Wrap(platformerrors.CodeUnknown, err.Error(), err)
	}
	return command.RejectError(domainErr, s.locale)
}
