package schedule

// ChangeKind names a state change.
type ChangeKind string

const (
	ChangeAdded    ChangeKind = "ADDED"
	ChangeRemoved  ChangeKind = "REMOVED"
	ChangeUndone   ChangeKind = "UNDONE"
	ChangeRedone   ChangeKind = "REDONE"
	ChangeCleared  ChangeKind = "CLEARED"
	ChangeImported ChangeKind = "IMPORTED"
)

// Change is delivered to subscribers after a mutation completes.
// SubjectCode and GroupName are empty for CLEARED and IMPORTED.
type Change struct {
	Kind         ChangeKind
	SubjectCode  string
	GroupName    string
	TotalCredits int
}

type listener struct {
	id int
	fn func(Change)
}

// Subscribe registers fn for every change and returns a function that
// removes it. Listeners run synchronously, in subscription order.
func (s *Schedule) Subscribe(fn func(Change)) (unsubscribe func()) {
	s.nextListener++
	lid := s.nextListener
	s.listeners = append(s.listeners, listener{id: lid, fn: fn})
	return func() {
		for i, l := range s.listeners {
			if l.id == lid {
				s.listeners = append(s.listeners[:i], s.listeners[i+1:]...)
				return
			}
		}
	}
}

func (s *Schedule) notify(kind ChangeKind, subjectCode, groupName string) {
	if len(s.listeners) == 0 {
		return
	}
	change := Change{
		Kind:         kind,
		SubjectCode:  subjectCode,
		GroupName:    groupName,
		TotalCredits: s.store.TotalCredits(),
	}
	for _, l := range append([]listener(nil), s.listeners...) {
		l.fn(change)
	}
}
