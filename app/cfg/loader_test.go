package cfg

import (
	"testing"
)

func TestGetVersion(t *testing.T) {
	if GetVersion() == "" {
		t.Error("GetVersion should never return empty string")
	}
}

func TestSplitRegions(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"england", []string{"england"}},
		{"england,technology", []string{"england", "technology"}},
		{" england , technology ", []string{"england", "technology"}},
		{"england,,technology,", []string{"england", "technology"}},
		{"", nil},
	}

	for _, tt := range tests {
		got := splitRegions(tt.input)
		if len(got) != len(tt.want) {
			t.Errorf("splitRegions(%q) = %v, want %v", tt.input, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("splitRegions(%q)[%d] = %q, want %q", tt.input, i, got[i], tt.want[i])
			}
		}
	}
}

func TestConfigFields(t *testing.T) {
	cfg := &Cfg{
		DBPath:               "./test.db",
		Port:                 "8080",
		FeedURLTemplate:      "http://feeds.bbci.co.uk/news/%s/rss.xml",
		StoreRegions:         []string{"england"},
		WorkerCount:          4,
		RefreshInterval:      3600,
		FetchTimeout:         10,
		TopPositiveThreshold: 0.75,
		StrongThreshold:      0.5,
		UserAgent:            "Test Agent",
		Timezone:             "UTC",
		Debug:                true,
		Version:              "test-version",
	}

	if cfg.DBPath != "./test.db" {
		t.Errorf("Expected db path './test.db', got '%s'", cfg.DBPath)
	}
	if cfg.Port != "8080" {
		t.Errorf("Expected port '8080', got '%s'", cfg.Port)
	}
	if cfg.FeedURLTemplate != "http://feeds.bbci.co.uk/news/%s/rss.xml" {
		t.Errorf("Unexpected feed URL template: '%s'", cfg.FeedURLTemplate)
	}
	if len(cfg.StoreRegions) != 1 || cfg.StoreRegions[0] != "england" {
		t.Errorf("Unexpected store regions: %v", cfg.StoreRegions)
	}
	if cfg.WorkerCount != 4 {
		t.Errorf("Expected worker count 4, got %d", cfg.WorkerCount)
	}
	if cfg.RefreshInterval != 3600 {
		t.Errorf("Expected refresh interval 3600, got %d", cfg.RefreshInterval)
	}
	if cfg.TopPositiveThreshold != 0.75 {
		t.Errorf("Expected top positive threshold 0.75, got %f", cfg.TopPositiveThreshold)
	}
	if cfg.StrongThreshold != 0.5 {
		t.Errorf("Expected strong threshold 0.5, got %f", cfg.StrongThreshold)
	}
	if !cfg.Debug {
		t.Error("Expected debug to be enabled")
	}
}
