// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/huangsam/qams/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewMCPServer initializes and configures the QAMS MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, mgr contract.StoreManager) *server.MCPServer {
	s := server.NewMCPServer(
		"QA Scorecard Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		mgr:     mgr,
	}

	// --- 1. Tool: inspect_scorecard ---
	s.AddTool(mcp.NewTool("inspect_scorecard",
		mcp.WithDescription("Parse a QA scorecard template and describe its criteria, options and attainable points."),
		mcp.WithString("csv", mcp.Description("Scorecard template in CSV grid format (criteria as columns, options as rows)."), mcp.Required()),
		mcp.WithString("scorecard", mcp.Description("Display name for the scorecard. Defaults to 'scorecard'.")),
	), h.handleInspectScorecard)

	// --- 2. Tool: score_review ---
	s.AddTool(mcp.NewTool("score_review",
		mcp.WithDescription("Score a QA review by applying answers to a scorecard template."),
		mcp.WithString("csv", mcp.Description("Scorecard template in CSV grid format."), mcp.Required()),
		mcp.WithString("selections", mcp.Description("Comma-separated answer tokens, one per criterion. Each token is an option label (case-insensitive) or a zero-based option index; '-' leaves a criterion unanswered."), mcp.Required()),
		mcp.WithString("comments", mcp.Description("Semicolon-separated comment entries in 'N:text' format, where N is a 1-based criterion position.")),
		mcp.WithString("scorecard", mcp.Description("Display name for the scorecard.")),
	), h.handleScoreReview)

	// --- 3. Tool: check_review ---
	s.AddTool(mcp.NewTool("check_review",
		mcp.WithDescription("Run a review quality gate: fails on any fatal selection or a percent score below the threshold."),
		mcp.WithString("csv", mcp.Description("Scorecard template in CSV grid format."), mcp.Required()),
		mcp.WithString("selections", mcp.Description("Comma-separated answer tokens, one per criterion."), mcp.Required()),
		mcp.WithNumber("threshold", mcp.Description("Minimum acceptable percent score (0-100). Defaults to 80.")),
		mcp.WithString("scorecard", mcp.Description("Display name for the scorecard.")),
	), h.handleCheckReview)

	return s
}

// StartMCPServer starts the QAMS MCP server.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, mgr contract.StoreManager) error {
	s := NewMCPServer(baseCfg, mgr)
	return server.ServeStdio(s)
}
