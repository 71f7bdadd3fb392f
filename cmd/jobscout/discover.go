package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/gofrs/flock"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"jobscout/internal/aggregate"
	"jobscout/internal/config"
	"jobscout/internal/profile"
	"jobscout/internal/rank"
	"jobscout/internal/source"
	"jobscout/internal/source/greenhouse"
	"jobscout/internal/source/lever"
)

var (
	discoverLimit            int
	discoverLeverOrgs        string
	discoverGreenhouseBoards string
)

var discoverCmd = &cobra.Command{
	Use:   "discover",
	Short: "Fetch postings from all configured boards, store them, and print the ranked shortlist",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return discover(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(discoverCmd)

	discoverCmd.Flags().IntVar(&discoverLimit, "limit", -1, "shortlist size (overrides config)")
	discoverCmd.Flags().StringVar(&discoverLeverOrgs, "lever-orgs", "",
		"lever org slugs, comma-separated or file:<path> (overrides config)")
	discoverCmd.Flags().StringVar(&discoverGreenhouseBoards, "greenhouse-boards", "",
		"greenhouse board tokens or URLs, comma-separated or file:<path> (overrides config)")
}

func discover(ctx context.Context) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if discoverLeverOrgs != "" {
		ids, err := config.ExpandList(discoverLeverOrgs)
		if err != nil {
			return err
		}
		cfg.Sources.Lever = config.SourceConfig{Enabled: len(ids) > 0, Boards: config.BoardsFromIDs(ids)}
	}
	if discoverGreenhouseBoards != "" {
		ids, err := config.ExpandList(discoverGreenhouseBoards)
		if err != nil {
			return err
		}
		cfg.Sources.Greenhouse = config.SourceConfig{Enabled: len(ids) > 0, Boards: config.BoardsFromIDs(ids)}
	}
	prof, err := profile.Load(cfg.Profile)
	if err != nil {
		return err
	}

	db, dbPath, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	// One discover run at a time per database: sqlite has a single writer
	// and two interleaved runs would just fight over it.
	lock := flock.New(dbPath + ".lock")
	locked, err := lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire run lock: %w", err)
	}
	if !locked {
		return fmt.Errorf("another discover run holds %s", dbPath+".lock")
	}
	defer lock.Unlock()

	limiter := source.NewHostLimiter(cfg.Limits.RequestsPerSecond, cfg.Limits.Burst)
	agg := aggregate.New(log, lever.New(limiter), greenhouse.New(limiter))

	instances := cfg.Instances()
	if len(instances) == 0 {
		return fmt.Errorf("no sources enabled in %s", cfgFile)
	}

	postings, failures := agg.Run(ctx, instances)
	log.Info("aggregation finished",
		zap.Int("postings", len(postings)),
		zap.Int("failed_sources", len(failures)))

	added := 0
	for _, p := range postings {
		ok, err := db.UpsertJob(ctx, p)
		if err != nil {
			return fmt.Errorf("store posting %s: %w", p.URL, err)
		}
		if ok {
			added++
		}
	}
	log.Info("postings stored", zap.Int("new", added), zap.Int("known", len(postings)-added))

	limit := *cfg.Discover.Limit
	if discoverLimit >= 0 {
		limit = discoverLimit
	}
	ranked := rank.Rank(postings, prof, limit)

	fmt.Printf("\nTop %d matches\n\n", len(ranked))
	for i, r := range ranked {
		fmt.Printf("[%d] %s — %s (%s)\n", i+1, r.Posting.Title, r.Posting.Company, r.Posting.Source)
		fmt.Printf("    %s\n", r.Posting.URL)
		if r.Posting.Location != "" {
			fmt.Printf("    Location: %s\n", r.Posting.Location)
		}
		if len(r.Reasons) > 0 {
			reasons := r.Reasons
			if len(reasons) > 5 {
				reasons = reasons[:5]
			}
			fmt.Printf("    Reasons: %s\n", strings.Join(reasons, ", "))
		}
		fmt.Printf("    Score: %.2f\n\n", r.Score)
	}
	return nil
}
