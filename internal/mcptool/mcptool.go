// Package mcptool публикует генератор UPI ID как инструмент Model Context Protocol.
package mcptool

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"github.com/sol1corejz/go-upi-generator/internal/logger"
	"github.com/sol1corejz/go-upi-generator/internal/upi"
)

// Имена инструментов.
const (
	GenerateToolName = "generate_upi_id"
	PingToolName     = "ping"
)

// NewServer создаёт MCP-сервер с инструментами generate_upi_id и ping.
func NewServer(g *upi.Generator, version string) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "FamPay UPI API",
		Version: version,
	}, nil)

	server.AddTool(&mcp.Tool{
		Name:        GenerateToolName,
		Description: "Generate a UPI ID and a upi://pay link for an Indian mobile number.",
		InputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"phone": map[string]any{
					"type":        "string",
					"description": "10-digit mobile number, optionally prefixed with 91",
				},
			},
			"required": []string{"phone"},
		},
	}, GenerateHandler(g))

	server.AddTool(&mcp.Tool{
		Name:        PingToolName,
		Description: "Health check",
		InputSchema: map[string]any{
			"type":       "object",
			"properties": map[string]any{},
		},
	}, func(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return textResult("pong", false), nil
	})

	return server
}

// NewHandler возвращает HTTP-обработчик транспорта SSE для сервера.
func NewHandler(server *mcp.Server) http.Handler {
	return mcp.NewSSEHandler(func(*http.Request) *mcp.Server {
		return server
	}, nil)
}

// GenerateHandler возвращает обработчик инструмента generate_upi_id.
// Ошибка валидации номера возвращается как результат с IsError.
func GenerateHandler(g *upi.Generator) mcp.ToolHandler {
	return func(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			Phone string `json:"phone"`
		}
		if req.Params != nil && len(req.Params.Arguments) > 0 {
			if err := json.Unmarshal(req.Params.Arguments, &args); err != nil {
				return nil, fmt.Errorf("invalid arguments: %w", err)
			}
		}

		res := g.Generate(args.Phone)

		var body bytes.Buffer
		enc := json.NewEncoder(&body)
		enc.SetEscapeHTML(false)
		if err := enc.Encode(res); err != nil {
			return nil, err
		}

		logger.Log.Debug("mcp tool call", zap.String("tool", GenerateToolName), zap.Bool("ok", res.OK()))
		return textResult(strings.TrimSpace(body.String()), !res.OK()), nil
	}
}

func textResult(text string, isError bool) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
		IsError: isError,
	}
}
