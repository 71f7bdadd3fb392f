package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"jobscout/internal/kit"
	"jobscout/internal/profile"
	"jobscout/internal/store"
)

var (
	kitJobURL        string
	kitOut           string
	kitResumeVersion string
	kitNoLog         bool
)

var kitCmd = &cobra.Command{
	Use:   "kit",
	Short: "Generate an application kit for a job URL already in the database",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return buildKit(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(kitCmd)

	kitCmd.Flags().StringVar(&kitJobURL, "job-url", "", "posting URL (must exist in the database)")
	kitCmd.Flags().StringVar(&kitOut, "out", "application_kit.json", "output file")
	kitCmd.Flags().StringVar(&kitResumeVersion, "resume-version", "", "resume version label for the application log")
	kitCmd.Flags().BoolVar(&kitNoLog, "no-log", false, "do not append a draft event to the application log")
	_ = kitCmd.MarkFlagRequired("job-url")
}

func buildKit(ctx context.Context) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	prof, err := profile.Load(cfg.Profile)
	if err != nil {
		return err
	}

	db, _, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	job, err := db.GetJob(ctx, kitJobURL)
	if errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("job URL not found in the database; run discover first or insert the job manually")
	}
	if err != nil {
		return err
	}

	k := kit.Build(prof, job)

	b, err := json.MarshalIndent(k, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(kitOut, b, 0o644); err != nil {
		return fmt.Errorf("write kit: %w", err)
	}

	if !kitNoLog {
		if err := db.LogApplication(ctx, job.URL, "draft", kitResumeVersion, "application kit generated"); err != nil {
			return err
		}
	}

	fmt.Printf("Wrote %s\n\nCover letter draft:\n\n%s\n", kitOut, k.CoverLetter)
	return nil
}
