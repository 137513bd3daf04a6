package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	inframcp "prosefix/internal/mcp"
)

var (
	mcpTransport string
	mcpAddr      string
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the prosefix MCP server",
	Long: `Serve the editing operations (edit_document, analyze_structure,
check_clarity_metrics, optimize_section) to MCP clients.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		proc, err := buildProcessor()
		if err != nil {
			return err
		}
		server := inframcp.NewServer(proc)

		switch strings.ToLower(mcpTransport) {
		case "stdio", "":
			return server.StartStdio()
		case "http":
			return server.StartHTTP(mcpAddr)
		default:
			return fmt.Errorf("unsupported transport: %s", mcpTransport)
		}
	},
	SilenceUsage: true,
}

func init() {
	mcpCmd.Flags().StringVar(&mcpTransport, "transport", "stdio", "Transport to use (stdio, http)")
	mcpCmd.Flags().StringVar(&mcpAddr, "addr", ":8080", "Address for the http transport")
	RootCmd.AddCommand(mcpCmd)
}
