// ABOUTME: Root Cobra command for healthflow CLI.
// ABOUTME: Handles config, logger, storage and backend client lifecycle via PersistentPre/PostRunE.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harperreed/healthflow/internal/config"
	"github.com/harperreed/healthflow/internal/logger"
	"github.com/harperreed/healthflow/internal/orchestrator"
	"github.com/harperreed/healthflow/internal/storage"
)

var version = "dev"

var (
	cfg    *config.Config
	appLog *logger.Logger
	repo   storage.Repository
	orch   *orchestrator.Client

	backendFlag string
	dataDirFlag string
	apiFlag     string
)

var rootCmd = &cobra.Command{
	Use:     "healthflow",
	Short:   "Recovery-aware workout planning for post-surgery training",
	Version: version,
	Long: `HealthFlow plans each day's training around your recovery.

It reads today's heart-rate variability (HRV), compares it to your baseline,
and asks an AI backend for a workout that respects your surgery, restrictions
and medications.

QUICK START:

  $ healthflow onboard --name Sam --surgery "ACL reconstruction" \
      --surgery-date 2025-01-10 --restriction "no jumping" --equipment bands
  $ healthflow hrv today                # Today's recovery (simulated if missing)
  $ healthflow plan                     # Generate today's workout
  $ healthflow plan --log               # ...and record it as done
  $ healthflow workout log walk -d 30   # Log a workout yourself
  $ healthflow streak                   # Consecutive training days

HRV:

  $ healthflow hrv log 58 --rhr 61 --sleep 7.2   # Record a wearable reading
  $ healthflow hrv trend --days 14               # Recent trend chart

NUTRITION:

  $ healthflow nutrition "grapefruit juice, toast"   # Check against medications

AI BACKEND:

  Workout plans, HRV analysis and nutrition advice come from the HealthFlow
  backend (default http://localhost:5001/api). When it is unreachable each
  step falls back to a fixed message; nothing is cached.

  $ healthflow status                   # Backend and storage health

MCP INTEGRATION:

  Run 'healthflow mcp' to start the Model Context Protocol server:

  {
    "mcpServers": {
      "healthflow": { "command": "healthflow", "args": ["mcp"] }
    }
  }

DATA STORAGE:

  Data lives in ~/.local/share/healthflow/healthflow.db (SQLite) by default.
  Set "backend" in ~/.config/healthflow/config.json, HEALTHFLOW_BACKEND or
  --backend to use badger, redis or memory instead.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if !needsStorage(cmd) {
			return nil
		}
		closeStorage()

		if err := config.LoadEnv(); err != nil {
			return err
		}
		loaded, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if backendFlag != "" {
			loaded.Backend = backendFlag
		}
		if dataDirFlag != "" {
			loaded.DataDir = dataDirFlag
		}
		if apiFlag != "" {
			loaded.APIBaseURL = apiFlag
		}

		log, err := logger.New(loaded.GetLogMode())
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		r, err := loaded.OpenStorage(log)
		if err != nil {
			log.Sync()
			return fmt.Errorf("failed to open storage: %w", err)
		}

		cfg = loaded
		appLog = log
		repo = r
		orch = orchestrator.New(orchestrator.Options{
			BaseURL: cfg.GetAPIBaseURL(),
			Timeout: cfg.GetTimeout(),
			Logger:  appLog,
		})
		appLog.Debug("storage opened", "backend", cfg.GetBackend(), "data_dir", cfg.GetDataDir())
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return closeStorage()
	},
}

// Execute runs the root command and releases storage even when a
// subcommand fails before PersistentPostRunE.
func Execute() error {
	defer closeStorage()
	return rootCmd.Execute()
}

func needsStorage(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		switch c.Name() {
		case "help", "version", "install-skill", "completion":
			return false
		}
	}
	return true
}

func closeStorage() error {
	var err error
	if repo != nil {
		err = repo.Close()
		repo = nil
	}
	if appLog != nil {
		appLog.Sync()
		appLog = nil
	}
	orch = nil
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&backendFlag, "backend", "", "storage backend: sqlite, badger, redis or memory")
	rootCmd.PersistentFlags().StringVar(&dataDirFlag, "data-dir", "", "data directory (default ~/.local/share/healthflow)")
	rootCmd.PersistentFlags().StringVar(&apiFlag, "api", "", "AI backend base URL (default http://localhost:5001/api)")
}
