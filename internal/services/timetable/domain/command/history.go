package command

// History holds the undo and redo stacks. Branching is not supported:
// recording a new command drops everything that could be redone.
type History struct {
	undo []Command
	redo []Command
}

// Record pushes an executed command and clears the redo stack.
func (h *History) Record(cmd Command) {
	h.undo = append(h.undo, cmd)
	h.redo = nil
}

// PopUndo removes the most recent undoable command.
func (h *History) PopUndo() (Command, bool) {
	return pop(&h.undo)
}

// RestoreUndo puts a command back on the undo stack without touching redo.
func (h *History) RestoreUndo(cmd Command) {
	h.undo = append(h.undo, cmd)
}

// PushRedo records an undone command.
func (h *History) PushRedo(cmd Command) {
	h.redo = append(h.redo, cmd)
}

// PopRedo removes the most recently undone command.
func (h *History) PopRedo() (Command, bool) {
	return pop(&h.redo)
}

// Reset empties both stacks.
func (h *History) Reset() {
	h.undo = nil
	h.redo = nil
}

// CanUndo reports whether there is anything to undo.
func (h *History) CanUndo() bool { return len(h.undo) > 0 }

// CanRedo reports whether there is anything to redo.
func (h *History) CanRedo() bool { return len(h.redo) > 0 }

// UndoStack returns a copy of the undo stack, oldest first.
func (h *History) UndoStack() []Command {
	return append([]Command(nil), h.undo...)
}

// RedoStack returns a copy of the redo stack, oldest first.
func (h *History) RedoStack() []Command {
	return append([]Command(nil), h.redo...)
}

func pop(stack *[]Command) (Command, bool) {
	n := len(*stack)
	if n == 0 {
		return Command{}, false
	}
	cmd := (*stack)[n-1]
	*stack = (*stack)[:n-1]
	return cmd, true
}
