package service

import (
	"context"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/louisbranch/timetable/internal/services/mcp/domain"
	"github.com/louisbranch/timetable/internal/services/timetable/domain/catalog"
	"github.com/louisbranch/timetable/internal/services/timetable/domain/timeslot"
	"github.com/louisbranch/timetable/internal/services/timetable/schedule"
	"github.com/louisbranch/timetable/internal/services/timetable/storage/memory"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type fakeBrowser struct {
	*memory.Catalog
}

func (f fakeBrowser) ListSubjects(ctx context.Context, _ string, pageSize int, _ string) (catalog.SubjectPage, error) {
	subjects, err := f.Subjects(ctx)
	if err != nil {
		return catalog.SubjectPage{}, err
	}
	if len(subjects) > pageSize {
		return catalog.SubjectPage{Subjects: subjects[:pageSize], NextPageToken: subjects[pageSize-1].Code}, nil
	}
	return catalog.SubjectPage{Subjects: subjects}, nil
}

func newTestServer(t *testing.T, withCatalog bool) *Server {
	t.Helper()
	ctx := context.Background()
	c := memory.NewCatalog()
	if err := c.PutSubject(ctx, catalog.Subject{Code: "CS101", Name: "Programming I", Credits: 3}); err != nil {
		t.Fatalf("put subject: %v", err)
	}
	if err := c.PutGroup(ctx, catalog.Group{SubjectCode: "CS101", Name: "A", Sessions: []catalog.Session{
		{Day: timeslot.Monday, Start: "08:00", End: "10:00", Kind: catalog.KindTheory},
	}}); err != nil {
		t.Fatalf("put group: %v", err)
	}

	s, err := schedule.New(c, schedule.Config{})
	if err != nil {
		t.Fatalf("new schedule: %v", err)
	}
	ws, err := domain.NewWorkspace(s, "en-US", nil)
	if err != nil {
		t.Fatalf("new workspace: %v", err)
	}
	cfg := Config{Workspace: ws}
	if withCatalog {
		cfg.Catalog = fakeBrowser{Catalog: c}
	}
	server, err := New(cfg)
	if err != nil {
		t.Fatalf("new server: %v", err)
	}
	return server
}

func connect(t *testing.T, server *Server) (*mcp.ClientSession, func()) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	serverTransport, clientTransport := mcp.NewInMemoryTransports()

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- server.serveWithTransport(ctx, serverTransport)
	}()

	client := mcp.NewClient(&mcp.Implementation{Name: "client", Version: "v0.0.1"}, nil)
	connectCtx, connectCancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer connectCancel()
	session, err := client.Connect(connectCtx, clientTransport, nil)
	if err != nil {
		cancel()
		t.Fatalf("connect client: %v", err)
	}

	return session, func() {
		_ = session.Close()
		cancel()
		select {
		case err := <-serveErr:
			if err != nil {
				t.Errorf("serve returned error: %v", err)
			}
		case <-time.After(2 * time.Second):
			t.Error("serve did not stop after cancel")
		}
	}
}

func TestNewRequiresWorkspace(t *testing.T) {
	if _, err := New(Config{}); err == nil {
		t.Fatal("expected error for missing workspace")
	}
}

func TestServeWithoutServer(t *testing.T) {
	var server *Server
	if err := server.serveWithTransport(context.Background(), nil); err == nil {
		t.Fatal("expected error for nil server")
	}
}

func TestServerListsTools(t *testing.T) {
	tests := []struct {
		name        string
		withCatalog bool
		want        []string
	}{
		{
			name: "schedule only",
			want: []string{
				"schedule_add_group", "schedule_check_group", "schedule_clear", "schedule_export",
				"schedule_free_windows", "schedule_import", "schedule_redo", "schedule_remove_at",
				"schedule_remove_group", "schedule_statistics", "schedule_undo",
			},
		},
		{
			name:        "with catalog",
			withCatalog: true,
			want: []string{
				"catalog_list_groups", "catalog_list_subjects",
				"schedule_add_group", "schedule_check_group", "schedule_clear", "schedule_export",
				"schedule_free_windows", "schedule_import", "schedule_redo", "schedule_remove_at",
				"schedule_remove_group", "schedule_statistics", "schedule_undo",
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			session, done := connect(t, newTestServer(t, tt.withCatalog))
			defer done()

			result, err := session.ListTools(context.Background(), &mcp.ListToolsParams{})
			if err != nil {
				t.Fatalf("list tools: %v", err)
			}
			var got []string
			for _, tool := range result.Tools {
				got = append(got, tool.Name)
			}
			sort.Strings(got)
			if strings.Join(got, ",") != strings.Join(tt.want, ",") {
				t.Fatalf("tools = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestServerCallsToolsAndServesResource(t *testing.T) {
	session, done := connect(t, newTestServer(t, true))
	defer done()
	ctx := context.Background()

	add, err := session.CallTool(ctx, &mcp.CallToolParams{
		Name:      "schedule_add_group",
		Arguments: map[string]any{"subject_code": "CS101", "group_name": "A"},
	})
	if err != nil {
		t.Fatalf("call add: %v", err)
	}
	if add.IsError {
		t.Fatalf("add returned tool error: %+v", add.Content)
	}

	groups, err := session.CallTool(ctx, &mcp.CallToolParams{
		Name:      "catalog_list_groups",
		Arguments: map[string]any{"subject_code": "NOPE"},
	})
	if err != nil {
		t.Fatalf("call list groups: %v", err)
	}
	if !groups.IsError {
		t.Fatal("expected tool error for unknown subject")
	}

	res, err := session.ReadResource(ctx, &mcp.ReadResourceParams{URI: domain.ScheduleResourceURI})
	if err != nil {
		t.Fatalf("read resource: %v", err)
	}
	if len(res.Contents) != 1 || !strings.Contains(res.Contents[0].Text, `"CS101"`) {
		t.Fatalf("unexpected resource contents %+v", res.Contents)
	}
}
