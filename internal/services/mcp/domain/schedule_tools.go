package domain

import (
	"context"
	"errors"

	platformerrors "github.com/louisbranch/timetable/internal/platform/errors"
	"github.com/louisbranch/timetable/internal/platform/timeouts"
	"github.com/louisbranch/timetable/internal/services/timetable/domain/command"
	"github.com/louisbranch/timetable/internal/services/timetable/domain/timeslot"
	"github.com/louisbranch/timetable/internal/services/timetable/schedule"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// GroupInput identifies a group of a subject.
type GroupInput struct {
	SubjectCode string `json:"subject_code" jsonschema:"subject code, e.g. CS101"`
	GroupName   string `json:"group_name" jsonschema:"group name within the subject"`
}

// SlotInput identifies one hour slot of the week.
type SlotInput struct {
	Day  string `json:"day" jsonschema:"weekday in English or Spanish (Mon, Monday, Lunes)"`
	Slot string `json:"slot" jsonschema:"hour slot label (HH:00)"`
}

// EmptyInput is the input of tools that take no arguments.
type EmptyInput struct{}

// AddGroupTool defines the MCP tool schema for adding a group.
func AddGroupTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "schedule_add_group",
		Description: "Adds every session of a subject group to the schedule. Fails without changes when any slot is already taken.",
	}
}

// AddGroupHandler executes an add-group request.
func AddGroupHandler(ws *Workspace) mcp.ToolHandlerFor[GroupInput, CommandResult] {
	return commandHandler(ws, "schedule_add_group", func(ctx context.Context, s *schedule.Schedule, input GroupInput) (command.Result, error) {
		return s.AddGroup(ctx, input.SubjectCode, input.GroupName)
	})
}

// RemoveGroupTool defines the MCP tool schema for removing a group.
func RemoveGroupTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "schedule_remove_group",
		Description: "Removes every slot held by a subject group.",
	}
}

// RemoveGroupHandler executes a remove-group request.
func RemoveGroupHandler(ws *Workspace) mcp.ToolHandlerFor[GroupInput, CommandResult] {
	return commandHandler(ws, "schedule_remove_group", func(ctx context.Context, s *schedule.Schedule, input GroupInput) (command.Result, error) {
		return s.RemoveGroup(ctx, input.SubjectCode, input.GroupName)
	})
}

// CheckGroupTool defines the MCP tool schema for a speculative add.
func CheckGroupTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "schedule_check_group",
		Description: "Reports whether a group could be added and which slots conflict, without changing the schedule.",
	}
}

// CheckGroupHandler executes a check-group request.
func CheckGroupHandler(ws *Workspace) mcp.ToolHandlerFor[GroupInput, CommandResult] {
	return commandHandler(ws, "schedule_check_group", func(ctx context.Context, s *schedule.Schedule, input GroupInput) (command.Result, error) {
		return s.CheckGroup(ctx, input.SubjectCode, input.GroupName)
	})
}

// RemoveAtTool defines the MCP tool schema for removing the group at a slot.
func RemoveAtTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "schedule_remove_at",
		Description: "Removes the whole group occupying the given day and hour slot.",
	}
}

// RemoveAtHandler executes a remove-at request.
func RemoveAtHandler(ws *Workspace) mcp.ToolHandlerFor[SlotInput, CommandResult] {
	return commandHandler(ws, "schedule_remove_at", func(ctx context.Context, s *schedule.Schedule, input SlotInput) (command.Result, error) {
		day, err := timeslot.ParseDay(input.Day)
		if err != nil {
			var domainErr *platformerrors.Error
			if errors.As(err, &domainErr) {
				return command.RejectError(domainErr, ws.locale), nil
			}
			return command.Result{}, err
		}
		return s.RemoveAt(ctx, day, input.Slot)
	})
}

// UndoTool defines the MCP tool schema for undo.
func UndoTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "schedule_undo",
		Description: "Reverts the most recent add or remove.",
	}
}

// UndoHandler executes an undo request.
func UndoHandler(ws *Workspace) mcp.ToolHandlerFor[EmptyInput, CommandResult] {
	return commandHandler(ws, "schedule_undo", func(ctx context.Context, s *schedule.Schedule, _ EmptyInput) (command.Result, error) {
		return s.Undo(ctx)
	})
}

// RedoTool defines the MCP tool schema for redo.
func RedoTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "schedule_redo",
		Description: "Re-applies the most recently undone command. Any new add or remove discards the redo history.",
	}
}

// RedoHandler executes a redo request.
func RedoHandler(ws *Workspace) mcp.ToolHandlerFor[EmptyInput, CommandResult] {
	return commandHandler(ws, "schedule_redo", func(ctx context.Context, s *schedule.Schedule, _ EmptyInput) (command.Result, error) {
		return s.Redo(ctx)
	})
}

// ClearTool defines the MCP tool schema for clearing the schedule.
func ClearTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "schedule_clear",
		Description: "Removes every group and discards undo and redo history.",
	}
}

// ClearHandler executes a clear request.
func ClearHandler(ws *Workspace) mcp.ToolHandlerFor[EmptyInput, CommandResult] {
	return commandHandler(ws, "schedule_clear", func(_ context.Context, s *schedule.Schedule, _ EmptyInput) (command.Result, error) {
		return s.Clear(), nil
	})
}

func commandHandler[In any](
	ws *Workspace,
	tool string,
	run func(context.Context, *schedule.Schedule, In) (command.Result, error),
) mcp.ToolHandlerFor[In, CommandResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input In) (*mcp.CallToolResult, CommandResult, error) {
		runCtx, cancel := context.WithTimeout(ctx, timeouts.CatalogQuery)
		defer cancel()

		var out CommandResult
		err := ws.with(func(s *schedule.Schedule) error {
			result, err := run(runCtx, s, input)
			if err != nil {
				return err
			}
			out = commandResult(result, s.TotalCredits())
			out.CanUndo = s.CanUndo()
			out.CanRedo = s.CanRedo()
			return nil
		})
		if err != nil {
			return nil, CommandResult{}, ws.toolError(tool, err)
		}
		return nil, out, nil
	}
}
