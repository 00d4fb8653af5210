// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/snally-dev/camp-milestones/internal/contract"
)

// NewMCPServer initializes and configures the milestones MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config) *server.MCPServer {
	s := server.NewMCPServer(
		"Milestones Pacing Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
	}

	// --- 1. Tool: calculate_milestones ---
	s.AddTool(mcp.NewTool("calculate_milestones",
		mcp.WithDescription("Estimate when cumulative-count milestones were or will be reached within a calendar year."),
		mcp.WithNumber("count", mcp.Description("Number of qualifying days counted so far."), mcp.Required()),
		mcp.WithString("start", mcp.Description("Start date as YYYY-MM-DD (defaults to January 1 of today's year).")),
		mcp.WithString("today", mcp.Description("Observation date as YYYY-MM-DD (defaults to the local date).")),
		mcp.WithString("thresholds", mcp.Description("Comma-separated ascending thresholds (defaults to 50,100,150,200,250).")),
		mcp.WithString("locale", mcp.Description("BCP 47 locale for formatted dates (e.g. 'en-US', 'de').")),
	), h.handleCalculateMilestones)

	// --- 2. Tool: days_in_year ---
	s.AddTool(mcp.NewTool("days_in_year",
		mcp.WithDescription("Describe a calendar year: length, leap status and days remaining."),
		mcp.WithNumber("year", mcp.Description("Gregorian year between 1 and 9999 (defaults to the current year).")),
		mcp.WithString("today", mcp.Description("Observation date as YYYY-MM-DD (defaults to the local date).")),
	), h.handleDaysInYear)

	// --- 3. Tool: format_date ---
	s.AddTool(mcp.NewTool("format_date",
		mcp.WithDescription("Render a date in long human-readable form for a locale."),
		mcp.WithString("date", mcp.Description("Date as YYYY-MM-DD."), mcp.Required()),
		mcp.WithString("locale", mcp.Description("BCP 47 locale (defaults to 'en-US').")),
	), h.handleFormatDate)

	return s
}

// StartMCPServer starts the milestones MCP server on stdio.
func StartMCPServer(_ context.Context, baseCfg *contract.Config) error {
	s := NewMCPServer(baseCfg)
	return server.ServeStdio(s)
}
