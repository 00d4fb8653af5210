package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/snally-dev/camp-milestones/core"
	"github.com/snally-dev/camp-milestones/core/calendar"
	"github.com/snally-dev/camp-milestones/internal/contract"
	"github.com/snally-dev/camp-milestones/internal/outwriter"
	"github.com/snally-dev/camp-milestones/schema"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
}

// formattedDate is the payload of the format_date tool.
type formattedDate struct {
	Date      calendar.Date `json:"date"`
	Locale    string        `json:"locale"`
	Formatted string        `json:"formatted"`
}

// rawInput seeds a raw input from the server config. Tool results are always JSON.
func (h *toolHandler) rawInput(request mcp.CallToolRequest) *contract.ConfigRawInput {
	precision := h.baseCfg.Precision
	if precision == 0 {
		precision = contract.DefaultPrecision
	}
	locale := h.baseCfg.Locale
	if l := request.GetString("locale", ""); l != "" {
		locale = l
	}
	return &contract.ConfigRawInput{
		Output:      string(schema.JSONOut),
		Precision:   precision,
		Locale:      locale,
		Placeholder: h.baseCfg.Placeholder,
		Color:       "no",
		Emoji:       "no",
		Today:       request.GetString("today", ""),
	}
}

func (h *toolHandler) handleCalculateMilestones(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	input := h.rawInput(request)
	input.Count = request.GetInt("count", -1)
	input.Start = request.GetString("start", "")
	input.Thresholds = request.GetString("thresholds", "")

	if err := contract.ProcessAndValidate(ctx, cfg, input); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid milestone parameters: %v", err)), nil
	}

	result := core.CalculateMilestones(cfg.CurrentCount, cfg.StartDate, cfg.Today, cfg.Thresholds...)

	var buf bytes.Buffer
	if err := outwriter.WriteMilestoneResults(&buf, result, cfg, 0); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("calculation failed: %v", err)), nil
	}
	return mcp.NewToolResultText(buf.String()), nil
}

func (h *toolHandler) handleDaysInYear(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	input := h.rawInput(request)
	input.Year = request.GetInt("year", 0)

	if err := contract.ProcessAndValidate(ctx, cfg, input); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid year parameters: %v", err)), nil
	}

	info := core.YearInfoFor(cfg.Year, cfg.Today)
	return jsonToolResult(info)
}

func (h *toolHandler) handleFormatDate(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	raw := request.GetString("date", "")
	if raw == "" {
		return mcp.NewToolResultError("date is required"), nil
	}
	d, err := calendar.Parse(raw)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid date: %v", err)), nil
	}

	locale := request.GetString("locale", h.baseCfg.Locale)
	out := formattedDate{
		Date:      d,
		Locale:    calendar.MatchLocale(locale).String(),
		Formatted: calendar.FormatLong(d, locale),
	}
	return jsonToolResult(out)
}

// jsonToolResult encodes v as indented JSON text, reporting encoding failures as tool errors.
func jsonToolResult(v any) (*mcp.CallToolResult, error) {
	jsonData, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to encode result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(jsonData)), nil
}
