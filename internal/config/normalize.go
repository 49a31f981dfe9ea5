package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizeSpotify(); err != nil {
		return err
	}
	c.normalizeMatching()
	if err := c.normalizeSearchCache(); err != nil {
		return err
	}
	c.normalizeImport()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizeSpotify() error {
	if c.Spotify.ClientID == "" {
		if value, ok := os.LookupEnv("SPOTIFY_CLIENT_ID"); ok {
			c.Spotify.ClientID = strings.TrimSpace(value)
		}
	}
	if c.Spotify.ClientSecret == "" {
		if value, ok := os.LookupEnv("SPOTIFY_CLIENT_SECRET"); ok {
			c.Spotify.ClientSecret = strings.TrimSpace(value)
		}
	}
	c.Spotify.BaseURL = strings.TrimSpace(c.Spotify.BaseURL)
	if c.Spotify.BaseURL == "" {
		c.Spotify.BaseURL = defaultSpotifyBaseURL
	}
	c.Spotify.TokenURL = strings.TrimSpace(c.Spotify.TokenURL)
	if c.Spotify.TokenURL == "" {
		c.Spotify.TokenURL = defaultSpotifyTokenURL
	}
	c.Spotify.Market = strings.ToUpper(strings.TrimSpace(c.Spotify.Market))
	if c.Spotify.Market == "" {
		c.Spotify.Market = defaultSpotifyMarket
	}
	if c.Spotify.SearchLimit <= 0 {
		c.Spotify.SearchLimit = defaultSearchLimit
	}
	if c.Spotify.RequestTimeout <= 0 {
		c.Spotify.RequestTimeout = defaultRequestTimeout
	}
	return nil
}

func (c *Config) normalizeMatching() {
	if c.Matching.TitleWeight == 0 && c.Matching.ArtistWeight == 0 {
		c.Matching.TitleWeight = defaultTitleWeight
		c.Matching.ArtistWeight = defaultArtistWeight
	}
	if c.Matching.BracketWeight == 0 {
		c.Matching.BracketWeight = defaultBracketWeight
	}
	if c.Matching.KeywordBonus == 0 {
		c.Matching.KeywordBonus = defaultKeywordBonus
	}
	if c.Matching.Stage1Threshold == 0 {
		c.Matching.Stage1Threshold = defaultStage1Threshold
	}
	if c.Matching.Stage2Threshold == 0 {
		c.Matching.Stage2Threshold = defaultStage2Threshold
	}
	if c.Matching.TopK <= 0 {
		c.Matching.TopK = defaultTopK
	}
}

func (c *Config) normalizeSearchCache() error {
	c.SearchCache.Path = strings.TrimSpace(c.SearchCache.Path)
	if c.SearchCache.Path == "" {
		c.SearchCache.Path = defaultCachePath
	}
	var err error
	if c.SearchCache.Path, err = expandPath(c.SearchCache.Path); err != nil {
		return fmt.Errorf("search_cache.path: %w", err)
	}
	if c.SearchCache.TTLMinutes <= 0 {
		c.SearchCache.TTLMinutes = defaultCacheTTL
	}
	return nil
}

func (c *Config) normalizeImport() {
	if c.Import.Workers <= 0 {
		c.Import.Workers = defaultWorkers
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
