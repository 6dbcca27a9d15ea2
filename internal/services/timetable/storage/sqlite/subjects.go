package sqlite

import (
	"context"
	"fmt"
	"strings"

	"github.com/louisbranch/timetable/internal/services/timetable/core/filter"
	"github.com/louisbranch/timetable/internal/services/timetable/domain/catalog"
	"go.opentelemetry.io/otel/attribute"
)

// ListSubjects returns one page of subjects matching an AIP-160 filter over
// code, name and credits. The page token is the last code of the previous
// page.
func (s *Store) ListSubjects(ctx context.Context, filterStr string, pageSize int, pageToken string) (page catalog.SubjectPage, err error) {
	if err := s.ready(ctx); err != nil {
		return catalog.SubjectPage{}, err
	}
	if pageSize <= 0 {
		return catalog.SubjectPage{}, fmt.Errorf("page size must be greater than zero")
	}
	ctx, span := s.startSpan(ctx, "ListSubjects",
		attribute.String("filter", filterStr),
		attribute.Int("page.size", pageSize),
	)
	defer func() { endSpan(span, err) }()

	cond, err := filter.ParseSubjectFilter(filterStr)
	if err != nil {
		return catalog.SubjectPage{}, fmt.Errorf("invalid filter: %w", err)
	}

	var (
		clauses []string
		args    []any
	)
	if !cond.Empty() {
		clauses = append(clauses, cond.Clause)
		args = append(args, cond.Params...)
	}
	if token := strings.TrimSpace(pageToken); token != "" {
		clauses = append(clauses, "code > ?")
		args = append(args, token)
	}
	query := `SELECT code, name, credits FROM subjects`
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}
	query += " ORDER BY code ASC LIMIT ?"
	args = append(args, pageSize+1)

	rows, err := s.sqlDB.QueryContext(ctx, query, args...)
	if err != nil {
		return catalog.SubjectPage{}, fmt.Errorf("list subjects: %w", err)
	}
	defer rows.Close()

	page.Subjects = make([]catalog.Subject, 0, pageSize)
	for rows.Next() {
		var subject catalog.Subject
		if err = rows.Scan(&subject.Code, &subject.Name, &subject.Credits); err != nil {
			return catalog.SubjectPage{}, fmt.Errorf("list subjects: %w", err)
		}
		page.Subjects = append(page.Subjects, subject)
	}
	if err = rows.Err(); err != nil {
		return catalog.SubjectPage{}, fmt.Errorf("list subjects: %w", err)
	}
	if len(page.Subjects) > pageSize {
		page.NextPageToken = page.Subjects[pageSize-1].Code
		page.Subjects = page.Subjects[:pageSize]
	}
	return page, nil
}
