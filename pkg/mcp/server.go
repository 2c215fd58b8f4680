// Package mcp exposes tools over the Model Context Protocol, stdio and streamable http transports.
// Only the tools capability is provided.
package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"

	mcpgo "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

//go:generate moq -out mocks/tool_provider.go -pkg mocks -skip-ensure -fmt goimports . ToolProvider

// ToolInfo describes a tool in tools/list
type ToolInfo struct {
	Name        string
	Description string
	InputSchema any
}

// ToolProvider lists and calls tools. Call errors are reported to the client
// as tool results with isError set.
type ToolProvider interface {
	ListTools() []ToolInfo
	CallTool(ctx context.Context, name string, args json.RawMessage) (any, error)
}

// ServerInfo identifies the server in initialize response
type ServerInfo struct {
	Name    string
	Version string
}

// Server is mcp server with all provider tools registered
type Server struct {
	provider ToolProvider
	srv      *server.MCPServer
	httpSrv  *server.StreamableHTTPServer
}

// NewServer registers provider tools and makes the server
func NewServer(provider ToolProvider, info ServerInfo, instructions string) (*Server, error) {
	hooks := &server.Hooks{}
	hooks.AddAfterInitialize(func(_ context.Context, _ any, req *mcpgo.InitializeRequest, res *mcpgo.InitializeResult) {
		log.Printf("[INFO] client connected, %s %s, protocol %s", req.Params.ClientInfo.Name,
			req.Params.ClientInfo.Version, res.ProtocolVersion)
	})

	s := &Server{provider: provider}
	s.srv = server.NewMCPServer(info.Name, info.Version,
		server.WithToolCapabilities(false),
		server.WithInstructions(instructions),
		server.WithHooks(hooks),
		server.WithRecovery(),
	)

	list := provider.ListTools()
	tools := make([]server.ServerTool, 0, len(list))
	for _, t := range list {
		schema, err := json.Marshal(t.InputSchema)
		if err != nil {
			return nil, fmt.Errorf("can't marshal input schema of %s: %w", t.Name, err)
		}
		tools = append(tools, server.ServerTool{
			Tool:    mcpgo.NewToolWithRawSchema(t.Name, t.Description, schema),
			Handler: s.callTool,
		})
	}
	s.srv.AddTools(tools...)
	s.httpSrv = server.NewStreamableHTTPServer(s.srv, server.WithStateLess(true))
	log.Printf("[DEBUG] registered %d mcp tools", len(tools))
	return s, nil
}

// HTTPHandler returns stateless streamable http transport, each POST carries one message
func (s *Server) HTTPHandler() http.Handler {
	return s.httpSrv
}

// ServeStdio reads newline-delimited messages from r and writes responses to w.
// Returns nil on EOF or context cancellation.
func (s *Server) ServeStdio(ctx context.Context, r io.Reader, w io.Writer) error {
	stdio := server.NewStdioServer(s.srv)
	stdio.SetErrorLogger(log.Default())

	log.Printf("[INFO] serving mcp on stdio")
	err := stdio.Listen(ctx, r, w)
	switch {
	case err == nil, errors.Is(err, io.EOF):
		log.Printf("[INFO] stdin closed")
		return nil
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		log.Printf("[INFO] stdio transport stopped, %v", err)
		return nil
	default:
		return fmt.Errorf("stdio transport: %w", err)
	}
}

func (s *Server) callTool(ctx context.Context, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
	name := req.Params.Name
	var args json.RawMessage
	if raw := req.GetRawArguments(); raw != nil {
		data, err := json.Marshal(raw)
		if err != nil {
			return mcpgo.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}
		args = data
	}

	log.Printf("[DEBUG] call tool %s, args %s", name, string(args))
	res, err := s.provider.CallTool(ctx, name, args)
	if err != nil {
		log.Printf("[WARN] tool %s failed, %v", name, err)
		return mcpgo.NewToolResultError(err.Error()), nil
	}

	data, err := json.Marshal(res)
	if err != nil {
		return nil, fmt.Errorf("can't marshal result of %s: %w", name, err)
	}
	return &mcpgo.CallToolResult{
		Content:           []mcpgo.Content{mcpgo.NewTextContent(string(data))},
		StructuredContent: structured(data),
	}, nil
}

// structured returns the result as JSON object, non-object values wrapped as {"result": value}
func structured(data json.RawMessage) any {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err == nil && obj != nil {
		return data
	}
	return map[string]json.RawMessage{"result": data}
}
