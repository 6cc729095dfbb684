package mcp

import (
	"context"

	"github.com/claude/timesplit/internal/planner"
)

// Planner abstracts plan computation for MCP tools. Both Local (in-process) and
// HTTPClient (remote via REST API) satisfy this interface.
type Planner interface {
	Plan(ctx context.Context, req planner.Request) (*planner.Plan, error)
	Rules(ctx context.Context) (*planner.RuleTable, error)
}

// Local runs the builder in-process.
type Local struct {
	Builder *planner.Builder
}

// Compile-time check: Local satisfies Planner.
var _ Planner = Local{}

func (l Local) Plan(_ context.Context, req planner.Request) (*planner.Plan, error) {
	return l.Builder.Build(req)
}

func (l Local) Rules(context.Context) (*planner.RuleTable, error) {
	r := planner.Rules()
	return &r, nil
}
