package cmd

import (
	"github.com/snally-dev/camp-milestones/internal/mcp"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the milestones MCP server",
	Long:  `Launch an MCP server that allows AI agents to pace milestones via standard tools.`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		// Emojis and colors never reach the protocol; stdio carries JSON only.
		if err := sharedSetup(rootCtx, cmd, args); err != nil {
			return err
		}
		cfg.UseEmojis, cfg.UseColors = false, false
		return nil
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		return mcp.StartMCPServer(rootCtx, cfg)
	},
}
