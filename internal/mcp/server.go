package mcp

import (
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// New creates an MCP server with all tools and resources registered.
func New(p Planner, version string, log *slog.Logger) *server.MCPServer {
	s := server.NewMCPServer("timesplit", version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithInstructions("Workout time-split planner. Give it the minutes available, an optional muscle group and a fitness level; it returns warmup, main and cooldown blocks that add up to exactly that time."),
	)

	h := &handlers{planner: p, log: log}

	s.AddTools(
		server.ServerTool{Tool: toolPlanTimeSplit, Handler: h.planTimeSplit},
	)

	s.AddResources(
		server.ServerResource{Resource: resRules, Handler: h.rules},
	)

	return s
}

// handlers holds dependencies for MCP tool/resource handlers.
type handlers struct {
	planner Planner
	log     *slog.Logger
}

var resRules = mcp.NewResource(
	"timesplit://rules",
	"Planning Rules",
	mcp.WithResourceDescription("Fixed thresholds used to size warmup, cooldown and main blocks"),
	mcp.WithMIMEType("application/json"),
)
