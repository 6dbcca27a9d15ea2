package domain

import (
	"bytes"
	"context"
	"fmt"

	"github.com/louisbranch/timetable/internal/services/timetable/schedule"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// ScheduleResourceURI addresses the current schedule record.
const ScheduleResourceURI = "schedule://current"

// ScheduleResource defines the readable schedule resource.
func ScheduleResource() *mcp.Resource {
	return &mcp.Resource{
		Name:        "schedule",
		Description: "Current schedule as an export record. Updated after every change.",
		MIMEType:    "application/json",
		URI:         ScheduleResourceURI,
	}
}

// ScheduleResourceHandler renders the current schedule record.
func ScheduleResourceHandler(ws *Workspace) mcp.ResourceHandler {
	return func(_ context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		uri := ScheduleResourceURI
		if req != nil && req.Params != nil && req.Params.URI != "" {
			uri = req.Params.URI
		}
		if uri != ScheduleResourceURI {
			return nil, fmt.Errorf("resource %s is not available", uri)
		}

		var rec schedule.Record
		err := ws.with(func(s *schedule.Schedule) error {
			var err error
			rec, err = s.Export()
			return err
		})
		if err != nil {
			return nil, fmt.Errorf("export schedule: %w", err)
		}
		var buf bytes.Buffer
		if err := schedule.EncodeRecord(&buf, rec); err != nil {
			return nil, err
		}

		return &mcp.ReadResourceResult{
			Contents: []*mcp.ResourceContents{
				{
					URI:      uri,
					MIMEType: "application/json",
					Text:     buf.String(),
				},
			},
		}, nil
	}
}
