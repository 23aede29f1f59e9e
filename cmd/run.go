package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathdrill/internal/app"
	"github.com/abhisek/mathdrill/internal/catalog"
	"github.com/abhisek/mathdrill/internal/config"
	"github.com/abhisek/mathdrill/internal/logging"
	"github.com/abhisek/mathdrill/internal/screen"
	"github.com/abhisek/mathdrill/internal/screens/home"
	sessionscreen "github.com/abhisek/mathdrill/internal/screens/session"
	"github.com/abhisek/mathdrill/internal/store"
)

// runtime holds what every subcommand opens: settings, logger, catalog
// and store.
type runtime struct {
	cfg     *config.Config
	logger  *slog.Logger
	catalog *catalog.Catalog
	store   *store.Store
	logFile *os.File
}

// configPath returns the file named by --config, or the default location.
func configPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("config"); p != "" {
		return p, nil
	}
	p, err := config.Path()
	if err != nil {
		return "", fmt.Errorf("resolve config path: %w", err)
	}
	return p, nil
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, err := configPath(cmd)
	if err != nil {
		return nil, err
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// loadCatalog returns the built-in catalog with the config's category
// overrides applied.
func loadCatalog(cfg *config.Config) (*catalog.Catalog, error) {
	overrides, err := cfg.Overrides()
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	cat, err := catalog.Builtin().WithOverrides(overrides)
	if err != nil {
		return nil, fmt.Errorf("apply category overrides: %w", err)
	}
	return cat, nil
}

// setup loads the config, installs logging, applies the category
// overrides and opens the store. stderrLogs mirrors records to stderr;
// the TUI leaves it off because it owns the terminal.
func setup(cmd *cobra.Command, stderrLogs bool) (*runtime, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	logger, logFile, err := logging.Setup(logging.Options{
		Level:  cfg.Log.Level,
		File:   cfg.Log.File,
		Stderr: stderrLogs,
	})
	if err != nil {
		return nil, fmt.Errorf("setup logging: %w", err)
	}
	rt := &runtime{cfg: cfg, logger: logger, logFile: logFile}

	if rt.catalog, err = loadCatalog(cfg); err != nil {
		rt.Close()
		return nil, err
	}

	dbPath, err := resolveDBPath(cmd, cfg.DBPath)
	if err != nil {
		rt.Close()
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	rt.store, err = store.Open(dbPath)
	if err != nil {
		rt.Close()
		return nil, fmt.Errorf("open store: %w", err)
	}
	logger.Debug("runtime ready", "db", dbPath, "categories", len(rt.catalog.All()))
	return rt, nil
}

// Close releases the store and the log file.
func (rt *runtime) Close() {
	if rt.store != nil {
		if err := rt.store.Close(); err != nil {
			rt.logger.Warn("close store", "error", err)
		}
	}
	if rt.logFile != nil {
		rt.logFile.Close()
	}
}

// env builds the collaborators shared by the drill screens.
func (rt *runtime) env() sessionscreen.Env {
	return sessionscreen.Env{
		Catalog: rt.catalog,
		Scores:  store.NewBestScores(rt.store.KV(), rt.logger),
		Rounds:  rt.store.Rounds(),
		Logger:  rt.logger,
		Tick:    rt.cfg.TickInterval(),
	}
}

// runApp launches the TUI on the home menu. A non-empty categoryID opens
// that drill directly, with home underneath it.
func runApp(cmd *cobra.Command, categoryID string) error {
	rt, err := setup(cmd, false)
	if err != nil {
		return err
	}
	defer rt.Close()

	env := rt.env()
	root := home.New(env)
	var stack []screen.Screen
	if categoryID != "" {
		cat, err := rt.catalog.Lookup(categoryID)
		if err != nil {
			return err
		}
		stack = append(stack, sessionscreen.New(env, cat))
	}

	rt.logger.Info("tui start", "category", categoryID)
	return app.Run(root, stack...)
}

func envSet(key string) bool {
	return os.Getenv(key) != ""
}
