package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"jobscout/internal/config"
	"jobscout/internal/logger"
	"jobscout/internal/store"
)

const app = "jobscout"

var (
	cfgFile     string
	profileFile string
	debug       bool
	jsonLog     bool

	log *zap.Logger

	rootCmd = &cobra.Command{
		Use:           app,
		Short:         "jobscout aggregates postings from job boards, ranks them against your profile, and tracks applications",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			var err error
			log, err = logger.New(jsonLog, debug)
			return err
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", app+".yaml", "run config file")
	rootCmd.PersistentFlags().StringVar(&profileFile, "profile", "", "candidate profile JSON (overrides config)")
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolVarP(&jsonLog, "json", "j", false, "json format for logging")
}

func loadConfig() (config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return cfg, fmt.Errorf("load config %s: %w", cfgFile, err)
	}
	if err := config.Validate(cfg); err != nil {
		return cfg, err
	}
	if profileFile != "" {
		cfg.Profile = profileFile
	}
	return cfg, nil
}

// openStore opens (creating the data dir if needed) and migrates the
// database. Store failures are fatal to the run.
func openStore(cfg config.Config) (*store.DB, string, error) {
	if err := os.MkdirAll(cfg.App.DataDir, 0o755); err != nil {
		return nil, "", err
	}
	path := filepath.Join(cfg.App.DataDir, cfg.App.DB)

	db, err := store.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("open database %s: %w", path, err)
	}
	if err := db.Migrate(); err != nil {
		_ = db.Close()
		return nil, "", fmt.Errorf("migrate database: %w", err)
	}
	return db, path, nil
}
