package main

import (
	"log/slog"
	"strings"
	"sync"
	"time"

	"trackmatch/internal/config"
	"trackmatch/internal/logging"
	"trackmatch/internal/match"
	"trackmatch/internal/spotify"
	"trackmatch/internal/spotify/searchcache"
)

// commandContext lazily builds the shared pieces commands need. Config
// and logger are constructed once regardless of ordering.
type commandContext struct {
	configFlag   *string
	jsonFlag     *bool
	logLevelFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
	loggerErr  error

	// closers accumulates resources commands must release on exit, the
	// search cache store in particular.
	closers []func() error
}

func newCommandContext(configFlag *string, jsonFlag *bool, logLevelFlag *string) *commandContext {
	return &commandContext{
		configFlag:   configFlag,
		jsonFlag:     jsonFlag,
		logLevelFlag: logLevelFlag,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) jsonOutput() bool {
	return c.jsonFlag != nil && *c.jsonFlag
}

func (c *commandContext) ensureLogger() (*slog.Logger, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	c.loggerOnce.Do(func() {
		level := cfg.Logging.Level
		if c.logLevelFlag != nil && strings.TrimSpace(*c.logLevelFlag) != "" {
			level = strings.TrimSpace(*c.logLevelFlag)
		}
		c.logger, c.loggerErr = logging.New(logging.Options{
			Level:       level,
			Format:      cfg.Logging.Format,
			OutputPaths: cfg.Logging.Paths,
		})
	})
	return c.logger, c.loggerErr
}

func (c *commandContext) buildMatcher() (*match.Matcher, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	logger, err := c.ensureLogger()
	if err != nil {
		return nil, err
	}
	return match.New(match.FromConfig(cfg.Matching), logger)
}

// buildSearcher constructs the catalog client, wrapped in the on-disk
// cache when enabled.
func (c *commandContext) buildSearcher() (spotify.Searcher, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	if err := cfg.RequireSpotifyCredentials(); err != nil {
		return nil, err
	}
	logger, err := c.ensureLogger()
	if err != nil {
		return nil, err
	}

	client, err := spotify.New(
		cfg.Spotify.ClientID,
		cfg.Spotify.ClientSecret,
		cfg.Spotify.BaseURL,
		cfg.Spotify.TokenURL,
	)
	if err != nil {
		return nil, err
	}
	if !cfg.SearchCache.Enabled {
		return client, nil
	}

	store, err := searchcache.Open(cfg.SearchCache.Path, time.Duration(cfg.SearchCache.TTLMinutes)*time.Minute)
	if err != nil {
		// A broken cache should not block lookups.
		logger.Warn("search cache unavailable, continuing without it", logging.Error(err))
		return client, nil
	}
	c.closers = append(c.closers, store.Close)
	return searchcache.NewSearcher(client, store, logger), nil
}

func (c *commandContext) close() {
	for _, closer := range c.closers {
		_ = closer()
	}
	c.closers = nil
}

func (c *commandContext) searchOptions(cfg *config.Config) spotify.SearchOptions {
	return spotify.SearchOptions{
		Market: cfg.Spotify.Market,
		Limit:  cfg.Spotify.SearchLimit,
	}
}
