package domain

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/louisbranch/timetable/internal/platform/pagination"
	"github.com/louisbranch/timetable/internal/platform/timeouts"
	"github.com/louisbranch/timetable/internal/services/timetable/domain/catalog"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

var subjectPageSize = pagination.PageSizeConfig{Default: 20, Max: 100}

// SubjectListInput selects a page of subjects.
type SubjectListInput struct {
	Filter    string `json:"filter,omitempty" jsonschema:"AIP-160 filter over code, name and credits, e.g. credits >= 4 AND name = \"Cal*\""`
	PageSize  int    `json:"page_size,omitempty" jsonschema:"maximum subjects to return (default 20, max 100)"`
	PageToken string `json:"page_token,omitempty" jsonschema:"token from a previous page"`
}

// SubjectListResult is one page of subjects.
type SubjectListResult struct {
	Subjects      []SubjectEntry `json:"subjects" jsonschema:"subjects ordered by code"`
	NextPageToken string         `json:"next_page_token,omitempty" jsonschema:"token for the next page, empty on the last page"`
}

// SubjectEntry is one catalog subject.
type SubjectEntry struct {
	Code    string `json:"code" jsonschema:"subject code"`
	Name    string `json:"name" jsonschema:"subject name"`
	Credits int    `json:"credits" jsonschema:"credits granted by the subject"`
}

// SubjectListTool defines the MCP tool schema for browsing subjects.
func SubjectListTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "catalog_list_subjects",
		Description: "Lists catalog subjects ordered by code, optionally filtered.",
	}
}

// SubjectListHandler executes a subject listing request.
func SubjectListHandler(browser catalog.Browser) mcp.ToolHandlerFor[SubjectListInput, SubjectListResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input SubjectListInput) (*mcp.CallToolResult, SubjectListResult, error) {
		if browser == nil {
			return nil, SubjectListResult{}, fmt.Errorf("catalog browser is not configured")
		}
		runCtx, cancel := context.WithTimeout(ctx, timeouts.CatalogQuery)
		defer cancel()

		page, err := browser.ListSubjects(runCtx,
			strings.TrimSpace(input.Filter),
			pagination.ClampPageSize(input.PageSize, subjectPageSize),
			strings.TrimSpace(input.PageToken),
		)
		if err != nil {
			return nil, SubjectListResult{}, fmt.Errorf("list subjects: %w", err)
		}

		result := SubjectListResult{
			Subjects:      make([]SubjectEntry, 0, len(page.Subjects)),
			NextPageToken: page.NextPageToken,
		}
		for _, subject := range page.Subjects {
			result.Subjects = append(result.Subjects, SubjectEntry{
				Code:    subject.Code,
				Name:    subject.Name,
				Credits: subject.Credits,
			})
		}
		return nil, result, nil
	}
}

// GroupListInput selects the subject whose groups are listed.
type GroupListInput struct {
	SubjectCode string `json:"subject_code" jsonschema:"subject code"`
}

// GroupListResult lists the groups of a subject.
type GroupListResult struct {
	SubjectCode string       `json:"subject_code" jsonschema:"subject code"`
	Groups      []GroupEntry `json:"groups" jsonschema:"groups ordered by name"`
}

// GroupEntry is one group and its sessions.
type GroupEntry struct {
	Name     string         `json:"name" jsonschema:"group name"`
	Capacity int            `json:"capacity" jsonschema:"seats offered"`
	Sessions []SessionEntry `json:"sessions" jsonschema:"weekly sessions"`
}

// SessionEntry is one weekly session.
type SessionEntry struct {
	Day        string `json:"day" jsonschema:"weekday (Mon..Fri)"`
	Start      string `json:"start" jsonschema:"start time (HH:MM)"`
	End        string `json:"end" jsonschema:"end time (HH:MM)"`
	Kind       string `json:"kind" jsonschema:"session kind"`
	Instructor string `json:"instructor,omitempty" jsonschema:"instructor"`
	Room       string `json:"room,omitempty" jsonschema:"room"`
}

// GroupListTool defines the MCP tool schema for listing groups.
func GroupListTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "catalog_list_groups",
		Description: "Lists the groups of a subject with their weekly sessions.",
	}
}

// GroupListHandler executes a group listing request.
func GroupListHandler(groups catalog.GroupLister) mcp.ToolHandlerFor[GroupListInput, GroupListResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input GroupListInput) (*mcp.CallToolResult, GroupListResult, error) {
		if groups == nil {
			return nil, GroupListResult{}, fmt.Errorf("catalog browser is not configured")
		}
		code := strings.TrimSpace(input.SubjectCode)
		if code == "" {
			return nil, GroupListResult{}, fmt.Errorf("subject_code is required")
		}
		runCtx, cancel := context.WithTimeout(ctx, timeouts.CatalogQuery)
		defer cancel()

		list, err := groups.ListGroups(runCtx, code)
		if errors.Is(err, catalog.ErrNotFound) {
			return nil, GroupListResult{}, fmt.Errorf("subject %s not found", code)
		}
		if err != nil {
			return nil, GroupListResult{}, fmt.Errorf("list groups: %w", err)
		}

		result := GroupListResult{SubjectCode: code, Groups: make([]GroupEntry, 0, len(list))}
		for _, group := range list {
			entry := GroupEntry{
				Name:     group.Name,
				Capacity: group.Capacity,
				Sessions: make([]SessionEntry, 0, len(group.Sessions)),
			}
			for _, session := range group.Sessions {
				entry.Sessions = append(entry.Sessions, SessionEntry{
					Day:        session.Day.String(),
					Start:      session.Start,
					End:        session.End,
					Kind:       string(session.Kind),
					Instructor: session.Instructor,
					Room:       session.Room,
				})
			}
			result.Groups = append(result.Groups, entry)
		}
		return nil, result, nil
	}
}
