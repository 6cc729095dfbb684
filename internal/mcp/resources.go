package mcp

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"
)

func (h *handlers) rules(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	rules, err := h.planner.Rules(ctx)
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(rules)
	if err != nil {
		return nil, err
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
