package cfg

import (
	"cmp"
	"fmt"
	"strings"
	"time"

	"github.com/jessevdk/go-flags"
)

// Version is set at build time via -ldflags
var Version = "dev"

func GetVersion() string {
	return cmp.Or(Version, "unknown")
}

type rawCfg struct {
	// Storage configuration
	DBPath string `long:"db-path" env:"DB_PATH" default:"./pp-api.db" description:"Path to the sqlite database file"`

	// Application configuration
	Port            string `long:"port" env:"PORT" default:"8080" description:"HTTP server port"`
	FeedURLTemplate string `long:"feed-url-template" env:"FEED_URL_TEMPLATE" default:"http://feeds.bbci.co.uk/news/%s/rss.xml" description:"BBC feed URL template with a %s placeholder for the category"`
	StoreRegions    string `long:"store-regions" env:"STORE_REGIONS" default:"england" description:"Comma-separated list of regions refreshed by the background scheduler"`
	WorkerCount     int    `long:"worker-count" env:"WORKER_COUNT" default:"4" description:"Number of workers for image resolution and background tasks"`
	RefreshInterval int    `long:"refresh-interval" env:"REFRESH_INTERVAL" default:"3600" description:"Background refresh interval in seconds"`
	FetchTimeout    int    `long:"fetch-timeout" env:"FETCH_TIMEOUT" default:"10" description:"Timeout in seconds for feed and article page fetches"`

	// Query defaults
	TopPositiveThreshold float64 `long:"top-positive-threshold" env:"TOP_POSITIVE_THRESHOLD" default:"0.75" description:"Summary compound score a story must exceed to rank as top positive"`
	StrongThreshold      float64 `long:"strong-threshold" env:"STRONG_THRESHOLD" default:"0.5" description:"Compound score both title and summary must reach in the all-stories query"`

	// Application metadata
	UserAgent string `long:"user-agent" env:"USER_AGENT" default:"Positive Press API/1.0" description:"User agent string for HTTP requests"`
	Timezone  string `long:"timezone" env:"TZ" default:"UTC" description:"Timezone for timestamps (e.g., UTC, Europe/London)"`
	Debug     bool   `long:"debug" env:"DEBUG" description:"Enable debug logging"`
}

var globalCfg *Cfg

func Load() (*Cfg, error) {
	var raw rawCfg

	parser := flags.NewParser(&raw, flags.Default)

	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok {
			if flagsErr.Type == flags.ErrHelp {
				return nil, nil
			}
		}
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	cfg := &Cfg{
		DBPath:               raw.DBPath,
		Port:                 raw.Port,
		FeedURLTemplate:      raw.FeedURLTemplate,
		StoreRegions:         splitRegions(raw.StoreRegions),
		WorkerCount:          raw.WorkerCount,
		RefreshInterval:      raw.RefreshInterval,
		FetchTimeout:         raw.FetchTimeout,
		TopPositiveThreshold: raw.TopPositiveThreshold,
		StrongThreshold:      raw.StrongThreshold,
		UserAgent:            raw.UserAgent,
		Timezone:             raw.Timezone,
		Debug:                raw.Debug,
		Version:              GetVersion(),
	}

	if err := applyTimezone(cfg.Timezone); err != nil {
		fmt.Printf("Warning: Invalid timezone '%s', using system default: %v\n", cfg.Timezone, err)
	}

	globalCfg = cfg

	return cfg, nil
}

func Get() *Cfg {
	if globalCfg == nil {
		panic("configuration not loaded - call cfg.Load() first")
	}
	return globalCfg
}

func splitRegions(raw string) []string {
	var regions []string
	for _, region := range strings.Split(raw, ",") {
		region = strings.TrimSpace(region)
		if region != "" {
			regions = append(regions, region)
		}
	}
	return regions
}

func applyTimezone(timezone string) error {
	if timezone != "" {
		if loc, err := time.LoadLocation(timezone); err != nil {
			return err
		} else {
			time.Local = loc
		}
	}
	return nil
}
