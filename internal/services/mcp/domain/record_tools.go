package domain

import (
	"bytes"
	"context"
	"errors"
	"strings"

	platformerrors "github.com/louisbranch/timetable/internal/platform/errors"
	"github.com/louisbranch/timetable/internal/services/timetable/schedule"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// ExportResult carries a schedule record as a JSON document.
type ExportResult struct {
	ID           string `json:"id" jsonschema:"record identifier"`
	SubjectCount int    `json:"subject_count" jsonschema:"distinct subjects in the record"`
	TotalCredits int    `json:"total_credits" jsonschema:"total credits in the record"`
	Record       string `json:"record" jsonschema:"JSON document accepted by schedule_import"`
}

// ExportTool defines the MCP tool schema for exporting the schedule.
func ExportTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "schedule_export",
		Description: "Exports the schedule as a JSON record listing each placed group with its subject and sessions.",
	}
}

// ExportHandler executes an export request.
func ExportHandler(ws *Workspace) mcp.ToolHandlerFor[EmptyInput, ExportResult] {
	return func(_ context.Context, _ *mcp.CallToolRequest, _ EmptyInput) (*mcp.CallToolResult, ExportResult, error) {
		var rec schedule.Record
		err := ws.with(func(s *schedule.Schedule) error {
			var err error
			rec, err = s.Export()
			return err
		})
		if err != nil {
			return nil, ExportResult{}, ws.toolError("schedule_export", err)
		}

		var buf bytes.Buffer
		if err := schedule.EncodeRecord(&buf, rec); err != nil {
			return nil, ExportResult{}, ws.toolError("schedule_export", err)
		}
		return nil, ExportResult{
			ID:           rec.Metadata.ID,
			SubjectCount: rec.Metadata.SubjectCount,
			TotalCredits: rec.Metadata.TotalCredits,
			Record:       buf.String(),
		}, nil
	}
}

// ImportInput carries a record produced by schedule_export.
type ImportInput struct {
	Record string `json:"record" jsonschema:"JSON document produced by schedule_export"`
}

// ImportResult reports which entries were placed.
type ImportResult struct {
	OK           bool          `json:"ok" jsonschema:"true when at least one entry was placed"`
	Code         string        `json:"code,omitempty" jsonschema:"failure code when the record could not be read"`
	Message      string        `json:"message" jsonschema:"localized summary"`
	Imported     int           `json:"imported" jsonschema:"entries placed"`
	Errors       []ImportError `json:"errors,omitempty" jsonschema:"entries that could not be placed"`
	TotalCredits int           `json:"total_credits" jsonschema:"total credits after the import"`
}

// ImportError is one entry that could not be placed.
type ImportError struct {
	SubjectCode string `json:"subject_code" jsonschema:"subject code of the entry"`
	GroupName   string `json:"group_name" jsonschema:"group name of the entry"`
	Code        string `json:"code" jsonschema:"failure code"`
	Message     string `json:"message" jsonschema:"localized failure message"`
}

// ImportTool defines the MCP tool schema for importing a schedule.
func ImportTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "schedule_import",
		Description: "Replaces the schedule with an exported record. Sessions are re-read from the catalog; entries that conflict or no longer exist are reported and skipped.",
	}
}

// ImportHandler executes an import request.
func ImportHandler(ws *Workspace) mcp.ToolHandlerFor[ImportInput, ImportResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input ImportInput) (*mcp.CallToolResult, ImportResult, error) {
		rec, err := schedule.DecodeRecord(strings.NewReader(input.Record))
		if err != nil {
			var domainErr *platformerrors.Error
			if !errors.As(err, &domainErr) {
				return nil, ImportResult{}, ws.toolError("schedule_import", err)
			}
			var total int
			_ = ws.with(func(s *schedule.Schedule) error {
				total = s.TotalCredits()
				return nil
			})
			return nil, ImportResult{
				Code:         string(domainErr.Code),
				Message:      platformerrors.UserMessage(domainErr, ws.locale),
				TotalCredits: total,
			}, nil
		}

		var summary schedule.ImportSummary
		err = ws.with(func(s *schedule.Schedule) error {
			var err error
			summary, err = s.Import(ctx, rec)
			return err
		})
		if err != nil {
			return nil, ImportResult{}, ws.toolError("schedule_import", err)
		}

		result := ImportResult{
			OK:           summary.OK(),
			Message:      summary.Message,
			Imported:     summary.Imported,
			TotalCredits: summary.TotalCredits,
		}
		for _, e := range summary.Errors {
			result.Errors = append(result.Errors, ImportError{
				SubjectCode: e.SubjectCode,
				GroupName:   e.GroupName,
				Code:        string(e.Code),
				Message:     e.Message,
			})
		}
		return nil, result, nil
	}
}
