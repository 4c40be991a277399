package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/huangsam/qams/core"
	"github.com/huangsam/qams/internal/contract"
	"github.com/huangsam/qams/schema"
	"github.com/mark3labs/mcp-go/mcp"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	mgr     contract.StoreManager
}

// buildReview parses the scorecard CSV from a tool request and applies any
// answer tokens. A nil error means the review is ready for scoring.
func (h *toolHandler) buildReview(request mcp.CallToolRequest, cfg *contract.Config) (*schema.Review, error) {
	csvText := request.GetString("csv", "")
	if csvText == "" {
		return nil, fmt.Errorf("csv is required")
	}

	review, err := schema.ParseReviewCSV(csvText)
	if err != nil {
		return nil, err
	}

	cfg.Scorecard = request.GetString("scorecard", "scorecard")
	cfg.Selections = contract.ParseSelections(request.GetString("selections", ""))

	if c := request.GetString("comments", ""); c != "" {
		comments, err := contract.ParseComments(strings.Split(c, ";"))
		if err != nil {
			return nil, err
		}
		cfg.Comments = comments
	}

	if err := core.ApplyAnswers(review, cfg); err != nil {
		return nil, err
	}
	return review, nil
}

func (h *toolHandler) handleInspectScorecard(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()

	review, err := h.buildReview(request, cfg)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid scorecard: %v", err)), nil
	}

	result := core.BuildInspectResult(review, cfg.Scorecard)
	jsonData, _ := json.MarshalIndent(result, "", "  ")

	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleScoreReview(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()

	review, err := h.buildReview(request, cfg)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("scoring failed: %v", err)), nil
	}

	result := core.BuildReviewResult(review, cfg.Scorecard)

	// History recording is best effort, same as the CLI path.
	if err := core.RecordRun(result, cfg, h.mgr); err != nil {
		contract.LogWarn("could not record review run", err)
	}

	jsonData, _ := json.MarshalIndent(result, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleCheckReview(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()

	if t := request.GetFloat("threshold", 0); t > 0 {
		cfg.Threshold = t
	}
	if cfg.Threshold < 0 || cfg.Threshold > 100 {
		return mcp.NewToolResultError(fmt.Sprintf("invalid threshold %v: must be between 0 and 100", cfg.Threshold)), nil
	}

	review, err := h.buildReview(request, cfg)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("check failed: %v", err)), nil
	}

	result := core.BuildCheckResult(review, cfg.Scorecard, cfg.Threshold)
	jsonData, _ := json.MarshalIndent(result, "", "  ")

	return mcp.NewToolResultText(string(jsonData)), nil
}
