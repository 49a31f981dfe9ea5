package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultValidates(t *testing.T) {
	cfg := Default()
	if err := cfg.normalize(); err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
}

func TestLoadParsesOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
[matching]
title_weight = 0.7
artist_weight = 0.3
top_k = 5

[spotify]
market = "jp"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !exists {
		t.Fatal("expected config file to exist")
	}
	if resolved != path {
		t.Fatalf("resolved = %q, want %q", resolved, path)
	}
	if cfg.Matching.TitleWeight != 0.7 || cfg.Matching.ArtistWeight != 0.3 {
		t.Fatalf("weights = %v/%v", cfg.Matching.TitleWeight, cfg.Matching.ArtistWeight)
	}
	if cfg.Matching.TopK != 5 {
		t.Fatalf("top_k = %d", cfg.Matching.TopK)
	}
	if cfg.Spotify.Market != "JP" {
		t.Fatalf("market = %q, want JP", cfg.Spotify.Market)
	}
	if cfg.Matching.Stage1Threshold != defaultStage1Threshold {
		t.Fatalf("stage1_threshold = %v, want default", cfg.Matching.Stage1Threshold)
	}
}

func TestLoadRejectsBadWeightSum(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
[matching]
title_weight = 0.7
artist_weight = 0.4
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	_, _, _, err := Load(path)
	if err == nil {
		t.Fatal("expected weight-sum validation error")
	}
	if !strings.Contains(err.Error(), "sum to 1.0") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "missing.toml")

	cfg, _, exists, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if exists {
		t.Fatal("expected exists=false for missing file")
	}
	if cfg.Matching.TitleWeight != defaultTitleWeight {
		t.Fatalf("title_weight = %v, want default", cfg.Matching.TitleWeight)
	}
}

func TestRequireSpotifyCredentials(t *testing.T) {
	cfg := Default()
	cfg.Spotify.ClientID = ""
	cfg.Spotify.ClientSecret = ""
	if err := cfg.RequireSpotifyCredentials(); err == nil {
		t.Fatal("expected error without credentials")
	}
	cfg.Spotify.ClientID = "id"
	cfg.Spotify.ClientSecret = "secret"
	if err := cfg.RequireSpotifyCredentials(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestWriteSampleRefusesOverwrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	written, err := WriteSample(path)
	if err != nil {
		t.Fatalf("write sample: %v", err)
	}
	if written != path {
		t.Fatalf("written = %q, want %q", written, path)
	}
	if _, err := WriteSample(path); err == nil {
		t.Fatal("expected error when file exists")
	}
}

func TestExpandPathHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home dir: %v", err)
	}
	got, err := ExpandPath("~/x/config.toml")
	if err != nil {
		t.Fatalf("expand: %v", err)
	}
	if got != filepath.Join(home, "x", "config.toml") {
		t.Fatalf("expand = %q", got)
	}
}
