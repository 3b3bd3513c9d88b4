package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/aretw0/typecheck"
	"github.com/aretw0/typecheck/internal/document"
	"github.com/aretw0/typecheck/internal/service"
	"github.com/aretw0/typecheck/pkg/registry"
)

// CheckResponse aligns with the HTTP verdict and provides a unified structure across adapters.
type CheckResponse struct {
	Shape  string `json:"shape" jsonschema_description:"Name of the shape the document was checked against"`
	Valid  bool   `json:"valid" jsonschema_description:"Whether the document conforms to the shape"`
	Cached bool   `json:"cached" jsonschema_description:"Whether the verdict came from the cache"`
}

// ShapeInfo describes one registered shape.
type ShapeInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Type        string `json:"type"`
}

// Validator defines what the MCP server needs from the validation service.
type Validator interface {
	Shapes() []registry.Entry
	Validate(ctx context.Context, shape string, payload []byte, format document.Format) (service.Verdict, error)
}

// Server wraps the validation service and exposes it as an MCP Server.
type Server struct {
	validator Validator
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP Server instance.
func NewServer(v Validator) *Server {
	s := &Server{
		validator: v,
		mcpServer: server.NewMCPServer("typecheck-mcp", strings.TrimSpace(typecheck.Version)),
	}
	s.registerTools()
	s.registerResources()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

func (s *Server) registerTools() {
	// TOOL: check_document
	checkTool := mcp.NewTool("check_document",
		mcp.WithDescription("Check whether a JSON or YAML document conforms to a registered shape."),
		mcp.WithString("shape", mcp.Required(), mcp.Description("Name of the shape (see list_shapes)")),
		mcp.WithString("document", mcp.Required(), mcp.Description("The document to check, as JSON or YAML text")),
		mcp.WithString("format", mcp.Description("json, yaml or auto (default)")),
		mcp.WithOutputSchema[CheckResponse](),
	)
	s.mcpServer.AddTool(checkTool, mcp.NewStructuredToolHandler(s.handleCheck))

	// TOOL: list_shapes
	s.mcpServer.AddTool(mcp.NewTool("list_shapes",
		mcp.WithDescription("List the registered shapes and the type each one accepts."),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		jsonBytes, err := json.Marshal(s.shapeInfos())
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("list failed: %v", err)), nil
		}
		return mcp.NewToolResultText(string(jsonBytes)), nil
	})
}

func (s *Server) handleCheck(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (CheckResponse, error) {
	shape, _ := args["shape"].(string)
	doc, _ := args["document"].(string)
	formatName, _ := args["format"].(string)

	if shape == "" {
		return CheckResponse{}, fmt.Errorf("shape is required")
	}
	format, err := document.ParseFormat(formatName)
	if err != nil {
		return CheckResponse{}, err
	}

	verdict, err := s.validator.Validate(ctx, shape, []byte(doc), format)
	if err != nil {
		return CheckResponse{}, fmt.Errorf("check failed: %w", err)
	}
	return CheckResponse{Shape: verdict.Shape, Valid: verdict.Valid, Cached: verdict.Cached}, nil
}

func (s *Server) shapeInfos() []ShapeInfo {
	entries := s.validator.Shapes()
	infos := make([]ShapeInfo, 0, len(entries))
	for _, e := range entries {
		infos = append(infos, ShapeInfo{Name: e.Name, Description: e.Description, Type: e.Checker.String()})
	}
	return infos
}

func (s *Server) registerResources() {
	// EXPOSE: typecheck://shapes
	s.mcpServer.AddResource(mcp.NewResource("typecheck://shapes", "Registered Shapes",
		mcp.WithMIMEType("application/json"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		jsonBytes, err := json.Marshal(s.shapeInfos())
		if err != nil {
			return nil, fmt.Errorf("failed to list shapes: %w", err)
		}

		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      "typecheck://shapes",
				MIMEType: "application/json",
				Text:     string(jsonBytes),
			},
		}, nil
	})
}
