package biz

import (
	"context"
	"encoding/json"
	"slices"

	"github.com/odit-bit/bizclock/biz/tool"
	mcp "trpc.group/trpc-go/trpc-mcp-go"
)

// mcpTool translates a tool's reflected argument schema into the SDK's
// tool declaration. All bizclock tool arguments are strings.
func mcpTool(t *tool.Tool) *mcp.Tool {
	opts := []mcp.ToolOption{mcp.WithDescription(t.Description)}

	var schema struct {
		Properties map[string]struct {
			Description string `json:"description"`
			Default     any    `json:"default"`
		} `json:"properties"`
		Required []string `json:"required"`
	}
	_ = json.Unmarshal(t.Schema(), &schema)

	names := make([]string, 0, len(schema.Properties))
	for name := range schema.Properties {
		names = append(names, name)
	}
	slices.Sort(names)

	for _, name := range names {
		p := schema.Properties[name]
		po := []mcp.PropertyOption{}
		if p.Description != "" {
			po = append(po, mcp.Description(p.Description))
		}
		if slices.Contains(schema.Required, name) {
			po = append(po, mcp.Required())
		}
		if d, ok := p.Default.(string); ok && d != "" {
			po = append(po, mcp.Default(d))
		}
		opts = append(opts, mcp.WithString(name, po...))
	}
	return mcp.NewTool(t.Name, opts...)
}

// mcpHandler adapts a tool call to the SDK result shape. A failed call
// is an in-band error result, never a protocol fault.
func mcpHandler(t *tool.Tool) func(context.Context, *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		res := t.Call(ctx, req.Params.Arguments)
		if res.IsError {
			return mcp.NewErrorResult(res.Text), nil
		}

		content := []mcp.Content{mcp.NewTextContent(res.Text)}
		if res.Data != nil {
			if payload, err := json.Marshal(res.Data); err == nil {
				content = append(content, mcp.NewTextContent(string(payload)))
			}
		}
		return &mcp.CallToolResult{Content: content}, nil
	}
}

// ServeStdio speaks MCP on stdin/stdout until the client disconnects.
func ServeStdio(svc *Service) error {
	s := mcp.NewStdioServer(serviceName, version)
	for _, t := range svc.Tools() {
		s.RegisterTool(mcpTool(t), mcpHandler(t))
	}
	return s.Start()
}
