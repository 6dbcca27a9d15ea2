package catalogimporter

import (
	"fmt"
	"strings"

	"github.com/louisbranch/timetable/internal/services/timetable/domain/catalog"
	"github.com/louisbranch/timetable/internal/services/timetable/domain/timeslot"
)

// catalogPayload is the JSON file layout: subjects with their groups, and
// groups with their weekly sessions.
type catalogPayload struct {
	Subjects []subjectRecord `json:"subjects"`
}

type subjectRecord struct {
	Code    string        `json:"code"`
	Name    string        `json:"name"`
	Credits int           `json:"credits"`
	Groups  []groupRecord `json:"groups"`
}

// groupRecord carries the defaults applied to sessions that omit a kind or
// an instructor.
type groupRecord struct {
	Name       string          `json:"name"`
	Capacity   int             `json:"capacity"`
	Kind       string          `json:"kind"`
	Instructor string          `json:"instructor"`
	Sessions   []sessionRecord `json:"sessions"`
}

type sessionRecord struct {
	Day        string `json:"day"`
	Start      string `json:"start"`
	End        string `json:"end"`
	Kind       string `json:"kind"`
	Instructor string `json:"instructor"`
	Room       string `json:"room"`
}

// entries is the validated form of a payload, ready to upsert.
type entries struct {
	Subjects []catalog.Subject
	Groups   []catalog.Group
}

func (p catalogPayload) entries() (entries, error) {
	var out entries
	seenSubjects := make(map[string]bool, len(p.Subjects))
	for i, item := range p.Subjects {
		code := strings.TrimSpace(item.Code)
		if code == "" {
			return entries{}, fmt.Errorf("subject %d: code is required", i)
		}
		if seenSubjects[code] {
			return entries{}, fmt.Errorf("subject %s: duplicate code", code)
		}
		seenSubjects[code] = true
		if strings.TrimSpace(item.Name) == "" {
			return entries{}, fmt.Errorf("subject %s: name is required", code)
		}
		if item.Credits < 0 {
			return entries{}, fmt.Errorf("subject %s: credits must not be negative", code)
		}
		out.Subjects = append(out.Subjects, catalog.Subject{
			Code:    code,
			Name:    strings.TrimSpace(item.Name),
			Credits: item.Credits,
		})

		seenGroups := make(map[string]bool, len(item.Groups))
		for _, g := range item.Groups {
			group, err := g.group(code)
			if err != nil {
				return entries{}, err
			}
			if seenGroups[group.Name] {
				return entries{}, fmt.Errorf("subject %s group %s: duplicate name", code, group.Name)
			}
			seenGroups[group.Name] = true
			out.Groups = append(out.Groups, group)
		}
	}
	return out, nil
}

func (g groupRecord) group(subjectCode string) (catalog.Group, error) {
	name := strings.TrimSpace(g.Name)
	if name == "" {
		return catalog.Group{}, fmt.Errorf("subject %s: group name is required", subjectCode)
	}
	if g.Capacity < 0 {
		return catalog.Group{}, fmt.Errorf("subject %s group %s: capacity must not be negative", subjectCode, name)
	}

	group := catalog.Group{SubjectCode: subjectCode, Name: name, Capacity: g.Capacity}
	for i, s := range g.Sessions {
		session, err := s.session(g.Kind, g.Instructor)
		if err != nil {
			return catalog.Group{}, fmt.Errorf("subject %s group %s session %d: %w", subjectCode, name, i, err)
		}
		group.Sessions = append(group.Sessions, session)
	}
	return group, nil
}

func (s sessionRecord) session(defaultKind, defaultInstructor string) (catalog.Session, error) {
	day, err := timeslot.ParseDay(s.Day)
	if err != nil {
		return catalog.Session{}, err
	}

	kindValue := strings.TrimSpace(s.Kind)
	if kindValue == "" {
		kindValue = strings.TrimSpace(defaultKind)
	}
	kind := catalog.KindTheory
	if kindValue != "" {
		if kind, err = catalog.ParseSessionKind(kindValue); err != nil {
			return catalog.Session{}, err
		}
	}

	instructor := strings.TrimSpace(s.Instructor)
	if instructor == "" {
		instructor = strings.TrimSpace(defaultInstructor)
	}

	session := catalog.Session{
		Day:        day,
		Start:      strings.TrimSpace(s.Start),
		End:        strings.TrimSpace(s.End),
		Kind:       kind,
		Instructor: instructor,
		Room:       strings.TrimSpace(s.Room),
	}
	if err := session.Validate(); err != nil {
		return catalog.Session{}, err
	}
	return session, nil
}
