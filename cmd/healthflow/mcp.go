// ABOUTME: CLI command for starting MCP server.
// ABOUTME: Runs stdio-based MCP server for Claude integration.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/harperreed/healthflow/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server",
	Long: `Start the Model Context Protocol (MCP) server for AI assistant integration.

The server communicates via stdin/stdout. Logs go to stderr.

CLAUDE DESKTOP CONFIGURATION:

  {
    "mcpServers": {
      "healthflow": {
        "command": "healthflow",
        "args": ["mcp"]
      }
    }
  }

AVAILABLE TOOLS:

  get_profile              The stored user profile
  log_workout              Record a workout and update the streak
  list_workouts            Recent workouts, newest first
  get_today_hrv            Today's HRV reading (optionally simulated)
  list_hrv                 HRV history or trend
  get_streak               Current workout streak
  generate_daily_workout   Run the three-step AI workout pipeline
  check_nutrition          Check a meal against medications

AVAILABLE RESOURCES:

  healthflow://today       Today's recovery and intensity
  healthflow://summary     Streak, averages and recent activity`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		server, err := mcp.NewServer(repo, orch, appLog)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()

		// Handle shutdown signals
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(sigChan)
		go func() {
			select {
			case <-sigChan:
				cancel()
			case <-ctx.Done():
			}
		}()

		return server.Serve(ctx)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
