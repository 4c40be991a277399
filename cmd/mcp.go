package cmd

import (
	"fmt"

	"github.com/huangsam/qams/internal/contract"
	"github.com/huangsam/qams/internal/histstore"
	"github.com/huangsam/qams/internal/mcp"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// mcpSetup loads minimal configuration for MCP mode. Scorecard templates
// arrive as tool arguments, so no positional argument is required.
func mcpSetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	if err := viper.Unmarshal(input); err != nil {
		return fmt.Errorf("unable to unmarshal config: %w", err)
	}

	// MCP tools carry their own CSV payload instead of a template path
	input.TemplatePathStr = ""
	if err := contract.ProcessAndValidate(cfg, input); err != nil {
		return err
	}

	if err := histstore.InitStore(cfg.HistoryBackend, cfg.HistoryDBConnect); err != nil {
		return fmt.Errorf("failed to initialize history store: %w", err)
	}
	return nil
}

// mcpCmd represents the mcp command.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the QAMS MCP server",
	Long:  `Launch an MCP server that allows AI agents to inspect scorecards and score reviews via standard tools.`,
	PreRunE: func(_ *cobra.Command, _ []string) error {
		// Avoid polluting stdio which is used for the protocol.
		return mcpSetup()
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		return mcp.StartMCPServer(rootCtx, cfg, storeManager)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
