// Package mcp exposes the tracker operations as MCP tools over stdio.
// It is the composition boundary between the transport framework and
// the jira service; no tracker logic lives here, only argument
// extraction and text rendering.
package mcp

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/SunWooBang/jira-mcp-server/internal/config"
	"github.com/SunWooBang/jira-mcp-server/internal/jira"
)

// NewServer creates the MCP server with all nine tools registered.
func NewServer(
	svc *jira.Service,
	cfg *config.Config,
	log *slog.Logger,
	version string,
) *server.MCPServer {
	s := server.NewMCPServer(
		"jira-mcp-server",
		version,
		server.WithToolCapabilities(false),
		server.WithRecovery(),
		server.WithToolHandlerMiddleware(loggingMiddleware(log)),
	)

	h := &toolHandlers{svc: svc, defaultProject: cfg.DefaultProject}
	h.register(s)

	return s
}

// Serve runs the server on stdin/stdout until the client disconnects.
func Serve(s *server.MCPServer) error {
	return server.ServeStdio(s)
}

// loggingMiddleware tags every tool invocation with a request ID and
// logs its outcome and duration to stderr.
func loggingMiddleware(log *slog.Logger) server.ToolHandlerMiddleware {
	return func(next server.ToolHandlerFunc) server.ToolHandlerFunc {
		return func(
			ctx context.Context,
			req mcp.CallToolRequest,
		) (*mcp.CallToolResult, error) {
			requestID := uuid.NewString()
			start := time.Now()

			log.Info("tool call started",
				"tool", req.Params.Name,
				"request_id", requestID,
			)

			result, err := next(ctx, req)

			attrs := []any{
				"tool", req.Params.Name,
				"request_id", requestID,
				"duration", time.Since(start),
			}
			switch {
			case err != nil:
				log.Error("tool call failed",
					append(attrs, "error", err)...)
			case result != nil && result.IsError:
				log.Warn("tool call rejected", attrs...)
			default:
				log.Info("tool call finished", attrs...)
			}

			return result, err
		}
	}
}
