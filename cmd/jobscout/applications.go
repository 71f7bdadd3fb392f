package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var applicationsStatus string

var applicationsCmd = &cobra.Command{
	Use:   "applications",
	Short: "List logged application events, newest first",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return listApplications(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(applicationsCmd)

	applicationsCmd.Flags().StringVar(&applicationsStatus, "status", "", "filter by status label")
}

func listApplications(ctx context.Context) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	db, _, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	apps, err := db.ListApplications(ctx, applicationsStatus)
	if err != nil {
		return err
	}
	if len(apps) == 0 {
		fmt.Println("No applications logged.")
		return nil
	}

	for _, a := range apps {
		fmt.Printf("%s  [%s]  %s\n", a.AppliedAt.Format("2006-01-02 15:04"), a.Status, a.JobURL)
		if a.ResumeVersion != "" {
			fmt.Printf("    Resume: %s\n", a.ResumeVersion)
		}
		if a.Notes != "" {
			fmt.Printf("    Notes: %s\n", a.Notes)
		}
	}
	return nil
}
