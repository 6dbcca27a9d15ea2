package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/louisbranch/timetable/internal/platform/logging"
	"github.com/louisbranch/timetable/internal/services/mcp/domain"
	"github.com/louisbranch/timetable/internal/services/timetable/domain/catalog"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"
)

const (
	// serverName identifies the MCP server implementation.
	serverName = "timetable"
	// serverVersion identifies the MCP server version.
	serverVersion = "0.1.0"
)

const (
	scheduleToolsModuleName    = "schedule-tools"
	reportToolsModuleName      = "report-tools"
	recordToolsModuleName      = "record-tools"
	catalogToolsModuleName     = "catalog-tools"
	scheduleResourceModuleName = "schedule-resources"
)

// Config wires the engine served over MCP.
type Config struct {
	Workspace *domain.Workspace
	// Catalog backs the catalog browsing tools. Nil omits them.
	Catalog catalog.Browser
	Logger  *zap.Logger
}

// Server hosts the MCP tool surface for one workspace.
type Server struct {
	mcpServer *mcp.Server
	workspace *domain.Workspace
	logger    *zap.Logger
}

type registrationModule struct {
	name     string
	register func(*mcp.Server)
}

// New builds a server with every tool and resource registered.
func New(cfg Config) (*Server, error) {
	if cfg.Workspace == nil {
		return nil, fmt.Errorf("workspace is required")
	}
	mcpServer := mcp.NewServer(&mcp.Implementation{Name: serverName, Version: serverVersion}, &mcp.ServerOptions{
		SubscribeHandler:   resourceSubscribeHandler,
		UnsubscribeHandler: resourceUnsubscribeHandler,
	})
	server := &Server{
		mcpServer: mcpServer,
		workspace: cfg.Workspace,
		logger:    logging.OrNop(cfg.Logger),
	}
	for _, module := range registrationModules(cfg.Workspace, cfg.Catalog) {
		module.register(mcpServer)
		server.logger.Debug("mcp module registered", zap.String("module", module.name))
	}
	return server, nil
}

func registrationModules(ws *domain.Workspace, browser catalog.Browser) []registrationModule {
	modules := []registrationModule{
		{
			name: scheduleToolsModuleName,
			register: func(s *mcp.Server) {
				mcp.AddTool(s, domain.AddGroupTool(), domain.AddGroupHandler(ws))
				mcp.AddTool(s, domain.CheckGroupTool(), domain.CheckGroupHandler(ws))
				mcp.AddTool(s, domain.RemoveGroupTool(), domain.RemoveGroupHandler(ws))
				mcp.AddTool(s, domain.RemoveAtTool(), domain.RemoveAtHandler(ws))
				mcp.AddTool(s, domain.UndoTool(), domain.UndoHandler(ws))
				mcp.AddTool(s, domain.RedoTool(), domain.RedoHandler(ws))
				mcp.AddTool(s, domain.ClearTool(), domain.ClearHandler(ws))
			},
		},
		{
			name: reportToolsModuleName,
			register: func(s *mcp.Server) {
				mcp.AddTool(s, domain.StatisticsTool(), domain.StatisticsHandler(ws))
				mcp.AddTool(s, domain.FreeWindowsTool(), domain.FreeWindowsHandler(ws))
			},
		},
		{
			name: recordToolsModuleName,
			register: func(s *mcp.Server) {
				mcp.AddTool(s, domain.ExportTool(), domain.ExportHandler(ws))
				mcp.AddTool(s, domain.ImportTool(), domain.ImportHandler(ws))
			},
		},
		{
			name: scheduleResourceModuleName,
			register: func(s *mcp.Server) {
				s.AddResource(domain.ScheduleResource(), domain.ScheduleResourceHandler(ws))
			},
		},
	}
	if browser != nil {
		modules = append(modules, registrationModule{
			name: catalogToolsModuleName,
			register: func(s *mcp.Server) {
				mcp.AddTool(s, domain.SubjectListTool(), domain.SubjectListHandler(browser))
				mcp.AddTool(s, domain.GroupListTool(), domain.GroupListHandler(browser))
			},
		})
	}
	return modules
}

// Serve runs the server over stdio until ctx is cancelled.
func (s *Server) Serve(ctx context.Context) error {
	return s.serveWithTransport(ctx, &mcp.StdioTransport{})
}

func (s *Server) serveWithTransport(ctx context.Context, transport mcp.Transport) error {
	if s == nil || s.mcpServer == nil {
		return fmt.Errorf("MCP server is not configured")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	stop := s.workspace.Watch(ctx, s.notifyResourceUpdated)
	defer stop()

	err := s.mcpServer.Run(ctx, transport)
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("serve MCP: %w", err)
	}
	return nil
}

func (s *Server) notifyResourceUpdated(ctx context.Context, uri string) {
	if strings.TrimSpace(uri) == "" {
		return
	}
	if err := s.mcpServer.ResourceUpdated(ctx, &mcp.ResourceUpdatedNotificationParams{URI: uri}); err != nil {
		s.logger.Warn("mcp resource updated notify failed", zap.String("uri", uri), zap.Error(err))
	}
}

// resourceSubscribeHandler accepts subscriptions to any addressed resource.
func resourceSubscribeHandler(_ context.Context, req *mcp.SubscribeRequest) error {
	if req == nil || req.Params == nil || strings.TrimSpace(req.Params.URI) == "" {
		return fmt.Errorf("resource uri is required")
	}
	return nil
}

func resourceUnsubscribeHandler(_ context.Context, req *mcp.UnsubscribeRequest) error {
	if req == nil || req.Params == nil || strings.TrimSpace(req.Params.URI) == "" {
		return fmt.Errorf("resource uri is required")
	}
	return nil
}
