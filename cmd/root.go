package cmd

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/enpeak/linglog/internal/history"
	"github.com/enpeak/linglog/internal/mirror"
	"github.com/enpeak/linglog/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "linglog",
	Short: "Local-first English learning log",
	Long:  "Linglog — tracks your English study sessions locally and turns them into streaks, charts, and insights.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runStats(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Optional .env for API keys and sync settings.
	_ = godotenv.Load()

	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides LINGLOG_DB env var)")

	rootCmd.AddCommand(logCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(weekCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(achievementsCmd)
	rootCmd.AddCommand(insightCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then LINGLOG_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// openService opens the store and wires the history service, attaching
// the account mirror when a sync endpoint is configured. The returned
// cleanup drains the mirror and closes the store.
func openService(cmd *cobra.Command) (*history.Service, func(), error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open store: %w", err)
	}

	var opts []history.Option
	var dispatcher *mirror.Dispatcher
	if cfg, ok := mirror.ConfigFromEnv(); ok {
		dispatcher = mirror.NewDispatcher(mirror.NewHTTPSyncer(cfg), 0)
		opts = append(opts, history.WithNotifier(dispatcher))
	}

	svc := history.NewService(st.HistoryRepo(), st.StatsRepo(), opts...)
	cleanup := func() {
		if dispatcher != nil {
			dispatcher.Close()
		}
		_ = st.Close()
	}
	return svc, cleanup, nil
}
