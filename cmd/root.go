package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/numberrush/internal/config"
	"github.com/abhisek/numberrush/internal/logger"
	"github.com/abhisek/numberrush/internal/problemgen"
	"github.com/abhisek/numberrush/internal/session"
	"github.com/abhisek/numberrush/internal/stats"
	"github.com/abhisek/numberrush/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "numberrush",
	Short: "Mental arithmetic against the clock",
	Long: "Number Rush flashes numbers one at a time. Add, subtract or multiply them in your head " +
		"and pick the right answer before the clock runs out.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, false)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides NUMBERRUSH_DB env var)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file (default $XDG_CONFIG_HOME/numberrush/config.toml)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then NUMBERRUSH_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

func resolveConfigPath(cmd *cobra.Command) string {
	if p, _ := cmd.Flags().GetString("config"); p != "" {
		return p
	}
	return config.DefaultConfigPath()
}

// deps bundles what every command needs: the open store, the stats slot,
// a logger and the configured default settings.
type deps struct {
	store    *store.Store
	stats    *stats.Repo
	log      *zap.Logger
	defaults problemgen.Settings
}

func openDeps(cmd *cobra.Command) (*deps, error) {
	cfg, err := config.LoadConfig(resolveConfigPath(cmd))
	if err != nil {
		return nil, err
	}
	defaults, err := cfg.Game.Apply(problemgen.DefaultSettings())
	if err != nil {
		return nil, err
	}

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	log := logger.NewOrNop(config.DefaultLogPath())
	log.Debug("store opened", zap.String("path", dbPath))

	return &deps{
		store:    st,
		stats:    stats.NewRepo(st.KV()),
		log:      log,
		defaults: defaults,
	}, nil
}

func (d *deps) engine(ctx context.Context) *session.Engine {
	return session.NewEngine(ctx, session.Options{
		Generator: problemgen.NewRandom(),
		Stats:     d.stats,
		History:   d.store.Games(),
		Logger:    d.log,
	})
}

func (d *deps) Close() error {
	_ = d.log.Sync()
	return d.store.Close()
}
