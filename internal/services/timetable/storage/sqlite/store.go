package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	sqlitemigrate "github.com/louisbranch/timetable/internal/platform/storage/sqlitemigrate"
	"github.com/louisbranch/timetable/internal/services/timetable/domain/catalog"
	"github.com/louisbranch/timetable/internal/services/timetable/storage/sqlite/migrations"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	_ "modernc.org/sqlite"
)

const tracerName = "github.com/louisbranch/timetable/internal/services/timetable/storage/sqlite"

var (
	_ catalog.Reader  = (*Store)(nil)
	_ catalog.Browser = (*Store)(nil)
)

// Store persists the catalog in SQLite.
type Store struct {
	sqlDB  *sql.DB
	tracer trace.Tracer
}

// Open opens a SQLite catalog store and applies embedded migrations.
// Use ":memory:" for a private in-memory database.
func Open(ctx context.Context, path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	dsn := ":memory:"
	if path != ":memory:" {
		dsn = filepath.Clean(path) + "?_journal_mode=WAL&_busy_timeout=5000&_synchronous=NORMAL&_pragma=foreign_keys(ON)"
	}
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if path == ":memory:" {
		// Each pooled connection would otherwise see its own empty database.
		sqlDB.SetMaxOpenConns(1)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := sqlDB.ExecContext(ctx, "PRAGMA foreign_keys = ON"); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}
	if _, err := sqlitemigrate.ApplyMigrations(ctx, sqlDB, migrations.FS, ""); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB, tracer: otel.Tracer(tracerName)}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

func (s *Store) ready(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	return nil
}

func (s *Store) startSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return s.tracer.Start(ctx, "catalog."+name, trace.WithAttributes(attrs...))
}

// endSpan records err on span, ignoring not-found lookups, and ends it.
func endSpan(span trace.Span, err error) {
	if err != nil && !errors.Is(err, catalog.ErrNotFound) {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

// PutSubject inserts or updates a subject.
func (s *Store) PutSubject(ctx context.Context, subject catalog.Subject) (err error) {
	if err := s.ready(ctx); err != nil {
		return err
	}
	code := strings.TrimSpace(subject.Code)
	if code == "" {
		return fmt.Errorf("subject code is required")
	}
	if subject.Credits < 0 {
		return fmt.Errorf("credits must not be negative")
	}
	ctx, span := s.startSpan(ctx, "PutSubject", attribute.String("subject.code", code))
	defer func() { endSpan(span, err) }()

	_, err = s.sqlDB.ExecContext(ctx,
		`INSERT INTO subjects (code, name, credits) VALUES (?, ?, ?)
		 ON CONFLICT (code) DO UPDATE SET name = excluded.name, credits = excluded.credits`,
		code, strings.TrimSpace(subject.Name), subject.Credits,
	)
	if err != nil {
		return fmt.Errorf("put subject: %w", err)
	}
	return nil
}

// PutGroup inserts or replaces a group and its sessions in one transaction.
// The subject must already exist.
func (s *Store) PutGroup(ctx context.Context, group catalog.Group) (err error) {
	if err := s.ready(ctx); err != nil {
		return err
	}
	name := strings.TrimSpace(group.Name)
	if name == "" {
		return fmt.Errorf("group name is required")
	}
	ctx, span := s.startSpan(ctx, "PutGroup",
		attribute.String("subject.code", group.SubjectCode),
		attribute.String("group.name", name),
		attribute.Int("group.sessions", len(group.Sessions)),
	)
	defer func() { endSpan(span, err) }()

	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin put group: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	var exists int
	err = tx.QueryRowContext(ctx, `SELECT 1 FROM subjects WHERE code = ?`, group.SubjectCode).Scan(&exists)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("put group %s: %w", group.Key(), catalog.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("put group: %w", err)
	}

	var groupID int64
	err = tx.QueryRowContext(ctx,
		`INSERT INTO class_groups (subject_code, name, capacity) VALUES (?, ?, ?)
		 ON CONFLICT (subject_code, name) DO UPDATE SET capacity = excluded.capacity
		 RETURNING id`,
		group.SubjectCode, name, group.Capacity,
	).Scan(&groupID)
	if err != nil {
		return fmt.Errorf("put group: %w", err)
	}
	if _, err = tx.ExecContext(ctx, `DELETE FROM class_sessions WHERE group_id = ?`, groupID); err != nil {
		return fmt.Errorf("put group sessions: %w", err)
	}
	for i, session := range group.Sessions {
		day, dayErr := session.Day.MarshalText()
		if dayErr != nil {
			err = fmt.Errorf("put group session %d: %w", i, dayErr)
			return err
		}
		_, err = tx.ExecContext(ctx,
			`INSERT INTO class_sessions (group_id, position, day, start_time, end_time, kind, instructor, room)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			groupID, i, string(day), session.Start, session.End, string(session.Kind), session.Instructor, session.Room,
		)
		if err != nil {
			return fmt.Errorf("put group session %d: %w", i, err)
		}
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit put group: %w", err)
	}
	return nil
}

// GetSubject implements catalog.Reader.
func (s *Store) GetSubject(ctx context.Context, code string) (subject catalog.Subject, err error) {
	if err := s.ready(ctx); err != nil {
		return catalog.Subject{}, err
	}
	ctx, span := s.startSpan(ctx, "GetSubject", attribute.String("subject.code", code))
	defer func() { endSpan(span, err) }()

	err = s.sqlDB.QueryRowContext(ctx,
		`SELECT code, name, credits FROM subjects WHERE code = ?`, code,
	).Scan(&subject.Code, &subject.Name, &subject.Credits)
	if errors.Is(err, sql.ErrNoRows) {
		return catalog.Subject{}, catalog.ErrNotFound
	}
	if err != nil {
		return catalog.Subject{}, fmt.Errorf("get subject: %w", err)
	}
	return subject, nil
}

// GetGroupSessions implements catalog.Reader. Sessions come back in the
// order they were stored.
func (s *Store) GetGroupSessions(ctx context.Context, subjectCode, groupName string) (sessions []catalog.Session, err error) {
	if err := s.ready(ctx); err != nil {
		return nil, err
	}
	ctx, span := s.startSpan(ctx, "GetGroupSessions",
		attribute.String("subject.code", subjectCode),
		attribute.String("group.name", groupName),
	)
	defer func() { endSpan(span, err) }()

	var groupID int64
	err = s.sqlDB.QueryRowContext(ctx,
		`SELECT id FROM class_groups WHERE subject_code = ? AND name = ?`, subjectCode, groupName,
	).Scan(&groupID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, catalog.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get group: %w", err)
	}

	byGroup, err := s.sessionsFor(ctx, []int64{groupID})
	if err != nil {
		return nil, err
	}
	return byGroup[groupID], nil
}

// ListGroups implements catalog.GroupLister. Groups are ordered by name.
func (s *Store) ListGroups(ctx context.Context, subjectCode string) (groups []catalog.Group, err error) {
	if err := s.ready(ctx); err != nil {
		return nil, err
	}
	ctx, span := s.startSpan(ctx, "ListGroups", attribute.String("subject.code", subjectCode))
	defer func() { endSpan(span, err) }()

	if _, err = s.GetSubject(ctx, subjectCode); err != nil {
		return nil, err
	}

	rows, err := s.sqlDB.QueryContext(ctx,
		`SELECT id, name, capacity FROM class_groups WHERE subject_code = ? ORDER BY name ASC`, subjectCode,
	)
	if err != nil {
		return nil, fmt.Errorf("list groups: %w", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var (
			groupID int64
			group   = catalog.Group{SubjectCode: subjectCode}
		)
		if err = rows.Scan(&groupID, &group.Name, &group.Capacity); err != nil {
			return nil, fmt.Errorf("list groups: %w", err)
		}
		ids = append(ids, groupID)
		groups = append(groups, group)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("list groups: %w", err)
	}

	byGroup, err := s.sessionsFor(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i, groupID := range ids {
		groups[i].Sessions = byGroup[groupID]
	}
	return groups, nil
}

func (s *Store) sessionsFor(ctx context.Context, groupIDs []int64) (map[int64][]catalog.Session, error) {
	out := make(map[int64][]catalog.Session, len(groupIDs))
	if len(groupIDs) == 0 {
		return out, nil
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(groupIDs)), ",")
	args := make([]any, len(groupIDs))
	for i, groupID := range groupIDs {
		args[i] = groupID
		out[groupID] = []catalog.Session{}
	}

	rows, err := s.sqlDB.QueryContext(ctx,
		`SELECT group_id, day, start_time, end_time, kind, instructor, room
		   FROM class_sessions
		  WHERE group_id IN (`+placeholders+`)
		  ORDER BY group_id, position`,
		args...,
	)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			groupID int64
			day     string
			kind    string
			session catalog.Session
		)
		if err := rows.Scan(&groupID, &day, &session.Start, &session.End, &kind, &session.Instructor, &session.Room); err != nil {
			return nil, fmt.Errorf("list sessions: %w", err)
		}
		if err := session.Day.UnmarshalText([]byte(day)); err != nil {
			return nil, fmt.Errorf("list sessions: %w", err)
		}
		session.Kind = catalog.SessionKind(kind)
		out[groupID] = append(out[groupID], session)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	return out, nil
}

var (
	_ catalog.Reader      = (*Store)(nil)
	_ catalog.GroupLister = (*Store)(nil)
)
