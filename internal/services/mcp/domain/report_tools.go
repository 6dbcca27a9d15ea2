package domain

import (
	"context"

	"github.com/louisbranch/timetable/internal/services/timetable/domain/timeslot"
	"github.com/louisbranch/timetable/internal/services/timetable/schedule"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// StatisticsResult summarizes the schedule and its credit load.
type StatisticsResult struct {
	SubjectCount   int              `json:"subject_count" jsonschema:"distinct subjects in the schedule"`
	TotalCredits   int              `json:"total_credits" jsonschema:"sum of credits of distinct subjects"`
	TotalSessions  int              `json:"total_sessions" jsonschema:"occupied hour slots"`
	SessionsByDay  map[string]int   `json:"sessions_by_day" jsonschema:"occupied hour slots per weekday"`
	SessionsByKind map[string]int   `json:"sessions_by_kind" jsonschema:"occupied hour slots per session kind"`
	AverageCredits string           `json:"average_credits" jsonschema:"credits per subject rounded to two decimals"`
	CreditLoad     CreditLoadResult `json:"credit_load" jsonschema:"assessment of the credit total"`
}

// CreditLoadResult is the credit load assessment.
type CreditLoadResult struct {
	Level          string `json:"level" jsonschema:"LOW, NORMAL, HIGH or EXCESSIVE"`
	Valid          bool   `json:"valid" jsonschema:"false when the load exceeds the allowed maximum"`
	Recommendation string `json:"recommendation" jsonschema:"localized advice for the load"`
}

// StatisticsTool defines the MCP tool schema for schedule statistics.
func StatisticsTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "schedule_statistics",
		Description: "Returns subject, credit and session counts for the schedule along with a credit load assessment.",
	}
}

// StatisticsHandler executes a statistics request.
func StatisticsHandler(ws *Workspace) mcp.ToolHandlerFor[EmptyInput, StatisticsResult] {
	return func(_ context.Context, _ *mcp.CallToolRequest, _ EmptyInput) (*mcp.CallToolResult, StatisticsResult, error) {
		var (
			stats schedule.Statistics
			load  schedule.CreditLoad
		)
		_ = ws.with(func(s *schedule.Schedule) error {
			stats = s.Statistics()
			load = s.CreditLoad()
			return nil
		})

		result := StatisticsResult{
			SubjectCount:   stats.SubjectCount,
			TotalCredits:   stats.TotalCredits,
			TotalSessions:  stats.TotalSessions,
			SessionsByDay:  make(map[string]int, len(stats.SessionsByDay)),
			SessionsByKind: make(map[string]int, len(stats.SessionsByKind)),
			AverageCredits: stats.AverageCredits.StringFixed(2),
			CreditLoad: CreditLoadResult{
				Level:          string(load.Level),
				Valid:          load.Valid,
				Recommendation: load.Recommendation,
			},
		}
		for day, n := range stats.SessionsByDay {
			result.SessionsByDay[day.String()] = n
		}
		for kind, n := range stats.SessionsByKind {
			result.SessionsByKind[string(kind)] = n
		}
		return nil, result, nil
	}
}

// FreeWindowsInput selects the day and minimum gap length.
type FreeWindowsInput struct {
	Day        string `json:"day" jsonschema:"weekday in English or Spanish"`
	MinMinutes int    `json:"min_minutes,omitempty" jsonschema:"minimum window length in minutes (default 60)"`
}

// FreeWindowsResult lists free windows of a day.
type FreeWindowsResult struct {
	Day     string        `json:"day" jsonschema:"weekday (Mon..Fri)"`
	Windows []WindowEntry `json:"windows" jsonschema:"free windows in chronological order"`
}

// WindowEntry is one free window.
type WindowEntry struct {
	Start   string `json:"start" jsonschema:"window start (HH:MM)"`
	End     string `json:"end" jsonschema:"window end (HH:MM)"`
	Minutes int    `json:"minutes" jsonschema:"window length in minutes"`
}

// FreeWindowsTool defines the MCP tool schema for free window search.
func FreeWindowsTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "schedule_free_windows",
		Description: "Lists the free gaps of a weekday inside the schedule grid that are at least min_minutes long.",
	}
}

// FreeWindowsHandler executes a free window search.
func FreeWindowsHandler(ws *Workspace) mcp.ToolHandlerFor[FreeWindowsInput, FreeWindowsResult] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input FreeWindowsInput) (*mcp.CallToolResult, FreeWindowsResult, error) {
		day, err := timeslot.ParseDay(input.Day)
		if err != nil {
			return nil, FreeWindowsResult{}, ws.toolError("schedule_free_windows", err)
		}

		var windows []timeslot.Interval
		_ = ws.with(func(s *schedule.Schedule) error {
			windows = s.FreeWindows(day, input.MinMinutes)
			return nil
		})

		result := FreeWindowsResult{Day: day.String(), Windows: make([]WindowEntry, 0, len(windows))}
		for _, w := range windows {
			result.Windows = append(result.Windows, WindowEntry{
				Start:   w.Start.String(),
				End:     w.End.String(),
				Minutes: int(w.Duration().Minutes()),
			})
		}
		return nil, result, nil
	}
}
