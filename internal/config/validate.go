package config

import (
	"errors"
	"fmt"
	"math"
)

const weightSumTolerance = 0.001

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateMatching(); err != nil {
		return err
	}
	if err := c.validateSpotify(); err != nil {
		return err
	}
	if err := c.validateImport(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateMatching() error {
	sum := c.Matching.TitleWeight + c.Matching.ArtistWeight
	if math.Abs(sum-1.0) > weightSumTolerance {
		return fmt.Errorf("matching.title_weight + matching.artist_weight must sum to 1.0, got %.3f", sum)
	}
	if c.Matching.TitleWeight < 0 || c.Matching.ArtistWeight < 0 {
		return errors.New("matching weights must be non-negative")
	}
	if c.Matching.BracketWeight < 0 || c.Matching.BracketWeight > 1 {
		return errors.New("matching.bracket_weight must be between 0 and 1")
	}
	if c.Matching.Stage1Threshold < 0 || c.Matching.Stage1Threshold > 100 {
		return errors.New("matching.stage1_threshold must be between 0 and 100")
	}
	if c.Matching.Stage2Threshold < 0 || c.Matching.Stage2Threshold > 100 {
		return errors.New("matching.stage2_threshold must be between 0 and 100")
	}
	return nil
}

func (c *Config) validateSpotify() error {
	if c.Spotify.SearchLimit < 1 || c.Spotify.SearchLimit > 50 {
		return errors.New("spotify.search_limit must be between 1 and 50")
	}
	if c.Spotify.RequestTimeout <= 0 {
		return errors.New("spotify.request_timeout must be positive")
	}
	return nil
}

func (c *Config) validateImport() error {
	if c.Import.Workers <= 0 {
		return errors.New("import.workers must be positive")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "auto", "console", "json":
		return nil
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
}

// RequireSpotifyCredentials verifies that API credentials are present.
// Matching against explicit candidates does not need them, so this is
// enforced only by commands that talk to the catalog.
func (c *Config) RequireSpotifyCredentials() error {
	if c.Spotify.ClientID == "" || c.Spotify.ClientSecret == "" {
		defaultPath, err := DefaultConfigPath()
		if err != nil {
			defaultPath = "~/.config/trackmatch/config.toml"
		}
		return fmt.Errorf("spotify credentials are required. Set SPOTIFY_CLIENT_ID and SPOTIFY_CLIENT_SECRET env vars or edit %s (create with 'trackmatch config init')", defaultPath)
	}
	return nil
}
