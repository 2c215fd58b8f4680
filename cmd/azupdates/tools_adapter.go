package main

import (
	"context"
	"encoding/json"

	"github.com/umputun/azupdates/pkg/mcp"
	"github.com/umputun/azupdates/pkg/tools"
)

// ToolsAdapter exposes tools service to the mcp server
type ToolsAdapter struct {
	svc *tools.Service
}

// NewToolsAdapter creates a new tools adapter
func NewToolsAdapter(svc *tools.Service) *ToolsAdapter {
	return &ToolsAdapter{svc: svc}
}

// ListTools implements the mcp.ToolProvider interface
func (a *ToolsAdapter) ListTools() []mcp.ToolInfo {
	list := a.svc.Tools()
	res := make([]mcp.ToolInfo, 0, len(list))
	for _, t := range list {
		res = append(res, mcp.ToolInfo{Name: t.Name, Description: t.Description, InputSchema: t.InputSchema})
	}
	return res
}

// CallTool implements the mcp.ToolProvider interface
func (a *ToolsAdapter) CallTool(ctx context.Context, name string, args json.RawMessage) (any, error) {
	return a.svc.Call(ctx, name, args)
}
