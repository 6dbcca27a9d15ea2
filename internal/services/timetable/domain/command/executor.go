package command

import (
	"context"
	"errors"
	"fmt"

	platformerrors "github.com/louisbranch/timetable/internal/platform/errors"
	"github.com/louisbranch/timetable/internal/services/timetable/domain/assignment"
	"github.com/louisbranch/timetable/internal/services/timetable/domain/catalog"
	"github.com/louisbranch/timetable/internal/services/timetable/domain/conflict"
	"github.com/louisbranch/timetable/internal/services/timetable/i18n"
	"golang.org/x/text/message"
)

var (
	// ErrCatalogRequired indicates a missing catalog reader.
	ErrCatalogRequired = errors.New("catalog reader is required")
	// ErrStoreRequired indicates a missing assignment store.
	ErrStoreRequired = errors.New("assignment store is required")
	// ErrKindUnknown indicates a command kind the executor cannot interpret.
	ErrKindUnknown = errors.New("command kind is unknown")
	// ErrInvalidState indicates a command in the wrong lifecycle state.
	ErrInvalidState = errors.New("command state does not allow this transition")
)

// Executor interprets commands against a store.
type Executor struct {
	Catalog catalog.Reader
	Store   *assignment.Store
	// Locale selects the language of result messages. Empty means en-US.
	Locale string
}

// Execute applies a CREATED command. On success the returned command is
// EXECUTED; on failure nothing was mutated.
func (e Executor) Execute(ctx context.Context, cmd Command) (Result, error) {
	if err := e.validate(); err != nil {
		return Result{}, err
	}
	if cmd.State != StateCreated {
		return Result{}, fmt.Errorf("execute %s in state %s: %w", cmd, cmd.State, ErrInvalidState)
	}

	if !cmd.Kind.known() {
		return Result{}, fmt.Errorf("execute %s: %w", cmd, ErrKindUnknown)
	}

	result, err := e.apply(ctx, cmd.Kind, cmd.SubjectCode, cmd.GroupName)
	if err != nil || !result.OK() {
		return result, err
	}
	cmd.State = StateExecuted
	result.Success.Command = cmd
	return result, nil
}

// Undo reverses an EXECUTED command and returns it in the UNDONE state.
// Reversal cannot be rejected: any failure means the store no longer
// matches the command and is reported as SCHEDULE_INCONSISTENT.
func (e Executor) Undo(ctx context.Context, cmd Command) (Result, error) {
	if err := e.validate(); err != nil {
		return Result{}, err
	}
	if cmd.State != StateExecuted {
		return Result{}, fmt.Errorf("undo %s in state %s: %w", cmd, cmd.State, ErrInvalidState)
	}

	if !cmd.Kind.known() {
		return Result{}, fmt.Errorf("undo %s: %w", cmd, ErrKindUnknown)
	}

	result, err := e.apply(ctx, cmd.Kind.Inverse(), cmd.SubjectCode, cmd.GroupName)
	if err != nil {
		var domainErr *platformerrors.Error
		if !errors.As(err, &domainErr) {
			return Result{}, err
		}
		return Result{}, inconsistent(cmd, err)
	}
	if !result.OK() {
		return Result{}, inconsistent(cmd, result.Err())
	}

	cmd.State = StateUndone
	result.Success.Command = cmd
	result.Success.Message = e.printer().Sprintf(i18n.ActionUndoneKey, result.Success.Message)
	return result, nil
}

// Check resolves a group and reports whether adding it would succeed,
// without mutating the store.
func (e Executor) Check(ctx context.Context, subjectCode, groupName string) (Result, error) {
	if err := e.validate(); err != nil {
		return Result{}, err
	}
	subject, _, failure, err := e.resolve(ctx, subjectCode, groupName)
	if err != nil {
		return Result{}, err
	}
	if failure != nil {
		return Reject(*failure), nil
	}
	return Accept(Success{
		Command:      New("", KindAdd, subjectCode, groupName),
		Subject:      subject,
		Message:      e.printer().Sprintf(i18n.GroupAvailableKey, groupName, subject.Name),
		TotalCredits: e.Store.TotalCredits(),
	}), nil
}

func (e Executor) apply(ctx context.Context, kind Kind, subjectCode, groupName string) (Result, error) {
	if kind == KindRemove {
		return e.removeGroup(subjectCode, groupName)
	}
	return e.addGroup(ctx, subjectCode, groupName)
}

func (e Executor) addGroup(ctx context.Context, subjectCode, groupName string) (Result, error) {
	subject, sessions, failure, err := e.resolve(ctx, subjectCode, groupName)
	if err != nil {
		return Result{}, err
	}
	if failure != nil {
		return Reject(*failure), nil
	}

	before := e.Store.TotalCredits()
	placed, err := e.Store.Place(subject, groupName, sessions)
	if err != nil {
		return Result{}, err
	}
	if err := e.Store.CreditDelta(subject, assignment.Increment); err != nil {
		return Result{}, err
	}
	total := e.Store.TotalCredits()
	return Accept(Success{
		Subject:      subject,
		Message:      e.printer().Sprintf(i18n.GroupAddedKey, groupName, subject.Name),
		Assignments:  placed,
		CreditsDelta: total - before,
		TotalCredits: total,
	}), nil
}

func (e Executor) removeGroup(subjectCode, groupName string) (Result, error) {
	group := catalog.GroupKey{SubjectCode: subjectCode, GroupName: groupName}
	if !e.Store.HasGroup(group) {
		return Reject(e.failure(catalog.NotFoundError(subjectCode, groupName))), nil
	}

	before := e.Store.TotalCredits()
	removed := e.Store.Remove(subjectCode, groupName)
	subject := catalog.Subject{Code: subjectCode, Name: subjectCode}
	if len(removed) > 0 {
		subject = removed[0].Subject
	}
	if err := e.Store.CreditDelta(subject, assignment.Decrement); err != nil {
		return Result{}, err
	}
	total := e.Store.TotalCredits()
	return Accept(Success{
		Subject:      subject,
		Message:      e.printer().Sprintf(i18n.GroupRemovedKey, groupName, subject.Name),
		Assignments:  removed,
		CreditsDelta: total - before,
		TotalCredits: total,
	}), nil
}

// resolve runs every add precondition in order: subject exists, group
// exists, group is not placed yet, group has sessions, session times
// parse, no slot is taken.
func (e Executor) resolve(ctx context.Context, subjectCode, groupName string) (catalog.Subject, []catalog.Session, *Failure, error) {
	subject, err := e.Catalog.GetSubject(ctx, subjectCode)
	if errors.Is(err, catalog.ErrNotFound) {
		f := e.failure(catalog.NotFoundError(subjectCode, ""))
		return catalog.Subject{}, nil, &f, nil
	}
	if err != nil {
		return catalog.Subject{}, nil, nil, fmt.Errorf("get subject %s: %w", subjectCode, err)
	}

	sessions, err := e.Catalog.GetGroupSessions(ctx, subjectCode, groupName)
	if errors.Is(err, catalog.ErrNotFound) {
		f := e.failure(catalog.NotFoundError(subjectCode, groupName))
		return subject, nil, &f, nil
	}
	if err != nil {
		return subject, nil, nil, fmt.Errorf("get sessions %s/%s: %w", subjectCode, groupName, err)
	}

	meta := map[string]string{"Subject": subjectCode, "Group": groupName}
	// A group whose sessions occupy no slot would pass the conflict scan
	// and count twice in the credit ledger.
	if e.Store.HasGroup(catalog.GroupKey{SubjectCode: subjectCode, GroupName: groupName}) {
		f := e.failure(platformerrors.WithMetadata(platformerrors.CodeGroupAlreadyPlaced,
			fmt.Sprintf("group %s/%s is already placed", subjectCode, groupName), meta))
		return subject, nil, &f, nil
	}
	if len(sessions) == 0 {
		f := e.failure(platformerrors.WithMetadata(platformerrors.CodeGroupEmpty,
			fmt.Sprintf("group %s/%s has no sessions", subjectCode, groupName), meta))
		return subject, nil, &f, nil
	}

	conflicts, err := conflict.Find(sessions, e.Store)
	if err != nil {
		var domainErr *platformerrors.Error
		if errors.As(err, &domainErr) {
			f := e.failure(domainErr)
			return subject, nil, &f, nil
		}
		return subject, nil, nil, err
	}
	if len(conflicts) > 0 {
		f := e.failure(platformerrors.WithMetadata(platformerrors.CodeScheduleConflict,
			fmt.Sprintf("group %s/%s conflicts in %d slots", subjectCode, groupName, len(conflicts)), meta))
		f.Conflicts = conflicts
		return subject, nil, &f, nil
	}
	return subject, sessions, nil, nil
}

func (e Executor) failure(err *platformerrors.Error) Failure {
	return *RejectError(err, e.locale()).Failure
}

func (e Executor) printer() *message.Printer {
	return i18n.Printer(e.locale())
}

func (e Executor) locale() string {
	if e.Locale == "" {
		return platformerrors.DefaultLocale
	}
	return e.Locale
}

func (e Executor) validate() error {
	if e.Catalog == nil {
		return ErrCatalogRequired
	}
	if e.Store == nil {
		return ErrStoreRequired
	}
	return nil
}

func inconsistent(cmd Command, cause error) error {
	return platformerrors.WrapWithMetadata(
		platformerrors.CodeScheduleInconsistent,
		fmt.Sprintf("undo %s", cmd),
		map[string]string{"Subject": cmd.SubjectCode, "Group": cmd.GroupName},
		cause,
	)
}
