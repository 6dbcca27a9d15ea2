package command

import "fmt"

// Kind identifies the mutation a command performs.
type Kind string

const (
	KindAdd    Kind = "ADD"
	KindRemove Kind = "REMOVE"
)

func (k Kind) known() bool {
	return k == KindAdd || k == KindRemove
}

// Inverse returns the kind that reverses k.
func (k Kind) Inverse() Kind {
	if k == KindAdd {
		return KindRemove
	}
	return KindAdd
}

// State tracks a command instance. The only transitions are
// CREATED -> EXECUTED and EXECUTED -> UNDONE.
type State string

const (
	StateCreated  State = "CREATED"
	StateExecuted State = "EXECUTED"
	StateUndone   State = "UNDONE"
)

// Command is a serializable schedule mutation.
type Command struct {
	ID          string `json:"id"`
	Kind        Kind   `json:"kind"`
	SubjectCode string `json:"subject_code"`
	GroupName   string `json:"group_name"`
	State       State  `json:"state"`
}

// New builds a command in the CREATED state.
func New(id string, kind Kind, subjectCode, groupName string) Command {
	return Command{ID: id, Kind: kind, SubjectCode: subjectCode, GroupName: groupName, State: StateCreated}
}

// String formats the command for logs, e.g. "ADD CS101/A".
func (c Command) String() string {
	return fmt.Sprintf("%s %s/%s", c.Kind, c.SubjectCode, c.GroupName)
}
