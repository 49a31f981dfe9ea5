package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Spotify contains configuration for the Spotify Web API.
type Spotify struct {
	ClientID       string `toml:"client_id"`
	ClientSecret   string `toml:"client_secret"`
	BaseURL        string `toml:"base_url"`
	TokenURL       string `toml:"token_url"`
	Market         string `toml:"market"`
	SearchLimit    int    `toml:"search_limit"`
	RequestTimeout int    `toml:"request_timeout"`
}

// Matching contains the scoring weights and thresholds used by the
// two-stage matcher.
type Matching struct {
	TitleWeight      float64 `toml:"title_weight"`
	ArtistWeight     float64 `toml:"artist_weight"`
	BracketWeight    float64 `toml:"bracket_weight"`
	KeywordBonus     float64 `toml:"keyword_bonus"`
	Stage1Threshold  float64 `toml:"stage1_threshold"`
	Stage2Threshold  float64 `toml:"stage2_threshold"`
	TopK             int     `toml:"top_k"`
	FallbackToStage1 bool    `toml:"fallback_to_stage1"`
}

// SearchCache contains configuration for the on-disk search response cache.
type SearchCache struct {
	Enabled    bool   `toml:"enabled"`
	Path       string `toml:"path"`
	TTLMinutes int    `toml:"ttl_minutes"`
}

// Import contains configuration for batch playlist imports.
type Import struct {
	Workers int `toml:"workers"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string   `toml:"format"`
	Level  string   `toml:"level"`
	Paths  []string `toml:"paths"`
}

// Config encapsulates all configuration values for trackmatch.
type Config struct {
	Spotify     Spotify     `toml:"spotify"`
	Matching    Matching    `toml:"matching"`
	SearchCache SearchCache `toml:"search_cache"`
	Import      Import      `toml:"import"`
	Logging     Logging     `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/trackmatch/config.toml")
}

// Load locates, parses, and validates a configuration file. The returned
// config has all path fields expanded and normalized.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs("trackmatch.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

// WriteSample writes the embedded sample configuration to path, refusing
// to overwrite an existing file.
func WriteSample(path string) (string, error) {
	expanded, err := expandPath(path)
	if err != nil {
		return "", err
	}
	if _, err := os.Stat(expanded); err == nil {
		return "", fmt.Errorf("config file already exists at %s", expanded)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("stat config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(expanded), 0o755); err != nil {
		return "", fmt.Errorf("create config directory: %w", err)
	}
	if err := os.WriteFile(expanded, []byte(sampleConfig), 0o644); err != nil {
		return "", fmt.Errorf("write sample config: %w", err)
	}
	return expanded, nil
}

// EnsureDirectories creates the directories the cache and logs write into.
func (c *Config) EnsureDirectories() error {
	if c.SearchCache.Enabled && strings.TrimSpace(c.SearchCache.Path) != "" {
		if err := os.MkdirAll(filepath.Dir(c.SearchCache.Path), 0o755); err != nil {
			return fmt.Errorf("create cache directory: %w", err)
		}
	}
	for _, path := range c.Logging.Paths {
		trimmed := strings.TrimSpace(path)
		if trimmed == "" || trimmed == "stdout" || trimmed == "stderr" {
			continue
		}
		if err := os.MkdirAll(filepath.Dir(trimmed), 0o755); err != nil {
			return fmt.Errorf("create log directory: %w", err)
		}
	}
	return nil
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}
