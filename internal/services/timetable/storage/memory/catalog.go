// Package memory provides an in-memory catalog for tests, imports and
// single-process use.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/louisbranch/timetable/internal/services/timetable/domain/catalog"
)

// Catalog is a concurrency-safe catalog.Reader backed by maps.
type Catalog struct {
	mu       sync.RWMutex
	subjects map[string]catalog.Subject
	groups   map[string][]catalog.Group
}

// NewCatalog returns an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{
		subjects: make(map[string]catalog.Subject),
		groups:   make(map[string][]catalog.Group),
	}
}

// PutSubject inserts or replaces a subject.
func (c *Catalog) PutSubject(ctx context.Context, subject catalog.Subject) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if subject.Code == "" {
		return fmt.Errorf("subject code is required")
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.subjects[subject.Code] = subject
	return nil
}

// PutGroup inserts or replaces a group of an existing subject. Groups keep
// their first insertion order.
func (c *Catalog) PutGroup(ctx context.Context, group catalog.Group) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if group.Name == "" {
		return fmt.Errorf("group name is required")
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.subjects[group.SubjectCode]; !ok {
		return fmt.Errorf("put group %s: %w", group.Key(), catalog.ErrNotFound)
	}
	group.Sessions = append([]catalog.Session(nil), group.Sessions...)
	list := c.groups[group.SubjectCode]
	for i, existing := range list {
		if existing.Name == group.Name {
			list[i] = group
			return nil
		}
	}
	c.groups[group.SubjectCode] = append(list, group)
	return nil
}

// GetSubject implements catalog.Reader.
func (c *Catalog) GetSubject(ctx context.Context, code string) (catalog.Subject, error) {
	if err := ctx.Err(); err != nil {
		return catalog.Subject{}, err
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	subject, ok := c.subjects[code]
	if !ok {
		return catalog.Subject{}, catalog.ErrNotFound
	}
	return subject, nil
}

// GetGroupSessions implements catalog.Reader.
func (c *Catalog) GetGroupSessions(ctx context.Context, subjectCode, groupName string) ([]catalog.Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, g := range c.groups[subjectCode] {
		if g.Name == groupName {
			return append([]catalog.Session(nil), g.Sessions...), nil
		}
	}
	return nil, catalog.ErrNotFound
}

// ListGroups implements catalog.GroupLister.
func (c *Catalog) ListGroups(ctx context.Context, subjectCode string) ([]catalog.Group, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	if _, ok := c.subjects[subjectCode]; !ok {
		return nil, catalog.ErrNotFound
	}
	list := c.groups[subjectCode]
	out := make([]catalog.Group, len(list))
	for i, g := range list {
		g.Sessions = append([]catalog.Session(nil), g.Sessions...)
		out[i] = g
	}
	return out, nil
}

// Subjects returns every subject ordered by code.
func (c *Catalog) Subjects(ctx context.Context) ([]catalog.Subject, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]catalog.Subject, 0, len(c.subjects))
	for _, s := range c.subjects {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out, nil
}
