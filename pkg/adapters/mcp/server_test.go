package mcp

import (
	"context"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/typecheck/internal/service"
	"github.com/aretw0/typecheck/pkg/registry"
)

func TestHandleCheck(t *testing.T) {
	s := NewServer(service.New(registry.Builtin()))
	ctx := context.Background()

	resp, err := s.handleCheck(ctx, mcp.CallToolRequest{}, map[string]interface{}{
		"shape":    "choices",
		"document": `["literal1", 17, true]`,
	})
	require.NoError(t, err)
	assert.Equal(t, CheckResponse{Shape: "choices", Valid: true}, resp)

	resp, err = s.handleCheck(ctx, mcp.CallToolRequest{}, map[string]interface{}{
		"shape":    "labels",
		"document": "env: 3\n",
		"format":   "yaml",
	})
	require.NoError(t, err)
	assert.False(t, resp.Valid)
}

func TestHandleCheck_Errors(t *testing.T) {
	s := NewServer(service.New(registry.Builtin()))
	ctx := context.Background()

	_, err := s.handleCheck(ctx, mcp.CallToolRequest{}, map[string]interface{}{"document": "{}"})
	assert.Error(t, err)

	_, err = s.handleCheck(ctx, mcp.CallToolRequest{}, map[string]interface{}{"shape": "missing", "document": "{}"})
	assert.ErrorIs(t, err, registry.ErrShapeNotFound)

	_, err = s.handleCheck(ctx, mcp.CallToolRequest{}, map[string]interface{}{"shape": "labels", "document": "{}", "format": "xml"})
	assert.Error(t, err)
}

func TestShapeInfos(t *testing.T) {
	s := NewServer(service.New(registry.Builtin()))
	infos := s.shapeInfos()
	require.Len(t, infos, 5)
	assert.Equal(t, "choices", infos[1].Name)
	assert.Equal(t, `("literal1" | 17 | true)[]`, infos[1].Type)
}
