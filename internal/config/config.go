package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"jobscout/internal/domain"
	"jobscout/internal/source"
)

// Board is one queryable source instance: a Lever org slug, or a
// Greenhouse board URL/token.
type Board struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"` // optional display name
}

type SourceConfig struct {
	Enabled bool    `yaml:"enabled"`
	Boards  []Board `yaml:"boards"`
}

type Config struct {
	App struct {
		DataDir string `yaml:"data_dir"`
		DB      string `yaml:"db"`
	} `yaml:"app"`

	Profile string `yaml:"profile"`

	Discover struct {
		// Limit is a pointer so an explicit `limit: 0` (empty shortlist)
		// survives defaulting.
		Limit *int `yaml:"limit"`
	} `yaml:"discover"`

	Sources struct {
		Lever      SourceConfig `yaml:"lever"`
		Greenhouse SourceConfig `yaml:"greenhouse"`
	} `yaml:"sources"`

	Limits struct {
		RequestsPerSecond float64 `yaml:"requests_per_second"`
		Burst             int     `yaml:"burst"`
	} `yaml:"limits"`
}

func Load(path string) (Config, error) {
	var cfg Config
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, err
	}
	applyDefaults(&cfg)
	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.App.DataDir == "" {
		cfg.App.DataDir = "."
	}
	if cfg.App.DB == "" {
		cfg.App.DB = "jobscout.db"
	}
	if cfg.Profile == "" {
		cfg.Profile = "configs/candidate_profile.json"
	}
	if cfg.Discover.Limit == nil {
		n := 25
		cfg.Discover.Limit = &n
	}
	if cfg.Limits.RequestsPerSecond == 0 {
		cfg.Limits.RequestsPerSecond = 2
	}
	if cfg.Limits.Burst == 0 {
		cfg.Limits.Burst = 4
	}
}

func Validate(cfg Config) error {
	var errs []string

	if cfg.Discover.Limit != nil && *cfg.Discover.Limit < 0 {
		errs = append(errs, "discover.limit must be >= 0")
	}
	if cfg.Limits.RequestsPerSecond <= 0 {
		errs = append(errs, "limits.requests_per_second must be > 0")
	}
	if cfg.Limits.Burst < 1 {
		errs = append(errs, "limits.burst must be >= 1")
	}

	checkBoards := func(name string, sc SourceConfig) {
		if !sc.Enabled {
			return
		}
		for i, b := range sc.Boards {
			if strings.TrimSpace(b.ID) == "" {
				errs = append(errs, fmt.Sprintf("sources.%s.boards[%d].id cannot be empty", name, i))
			}
		}
	}
	checkBoards("lever", cfg.Sources.Lever)
	checkBoards("greenhouse", cfg.Sources.Greenhouse)

	if len(errs) > 0 {
		return fmt.Errorf("invalid config:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}

// ExpandList resolves a board list argument. "file:<path>" reads one
// entry per line, skipping blank lines and lines starting with "#";
// anything else is split on commas.
func ExpandList(val string) ([]string, error) {
	val = strings.TrimSpace(val)
	if rest, ok := strings.CutPrefix(val, "file:"); ok {
		b, err := os.ReadFile(strings.TrimSpace(rest))
		if err != nil {
			return nil, fmt.Errorf("read board list: %w", err)
		}
		var out []string
		for _, line := range strings.Split(string(b), "\n") {
			line = strings.TrimSpace(line)
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}
			out = append(out, line)
		}
		return out, nil
	}
	var out []string
	for _, part := range strings.Split(val, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out, nil
}

// BoardsFromIDs wraps plain identifiers as boards with no display name.
func BoardsFromIDs(ids []string) []Board {
	boards := make([]Board, 0, len(ids))
	for _, id := range ids {
		boards = append(boards, Board{ID: id})
	}
	return boards
}

// Instances flattens the enabled sources into the ordered instance list
// handed to the aggregator.
func (c Config) Instances() []source.Instance {
	var out []source.Instance
	appendBoards := func(kind domain.Source, sc SourceConfig) {
		if !sc.Enabled {
			return
		}
		for _, b := range sc.Boards {
			id := strings.TrimSpace(b.ID)
			if id == "" {
				continue
			}
			out = append(out, source.Instance{
				Kind: kind,
				ID:   id,
				Name: strings.TrimSpace(b.Name),
			})
		}
	}
	appendBoards(domain.SourceLever, c.Sources.Lever)
	appendBoards(domain.SourceGreenhouse, c.Sources.Greenhouse)
	return out
}
