package mcp

import (
	"context"
	"errors"

	"github.com/claude/timesplit/internal/planner"
	"github.com/mark3labs/mcp-go/mcp"
)

var toolPlanTimeSplit = mcp.NewTool("plan_time_split",
	mcp.WithDescription("Split a workout session into warmup, main and cooldown blocks. Durations always add up to total_minutes; at most 4 blocks are returned."),
	mcp.WithNumber("total_minutes", mcp.Required(), mcp.Description("Minutes available for the session. Must be greater than zero.")),
	mcp.WithString("muscle_group", mcp.Description("Optional muscle group to target (e.g. 'legs', 'core'). Omit for a balanced session.")),
	mcp.WithString("fitness_level", mcp.Description("Fitness level, e.g. 'Beginner' or 'Intermediate'. Defaults to Intermediate. Other values are planned as Intermediate and echoed back in meta.fitness_level.")),
)

func (h *handlers) planTimeSplit(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	total, err := req.RequireFloat("total_minutes")
	if err != nil {
		return mcp.NewToolResultError("total_minutes parameter is required"), nil
	}

	plan, err := h.planner.Plan(ctx, planner.Request{
		TotalMinutes: total,
		MuscleGroup:  req.GetString("muscle_group", ""),
		FitnessLevel: req.GetString("fitness_level", ""),
	})
	var verr *planner.ValidationError
	if errors.As(err, &verr) {
		return mcp.NewToolResultError(verr.Error()), nil
	}
	if err != nil {
		h.log.Error("mcp plan_time_split", "error", err)
		return mcp.NewToolResultError("planning failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(plan)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}
