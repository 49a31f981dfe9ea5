package config

const (
	defaultSpotifyBaseURL  = "https://api.spotify.com/v1"
	defaultSpotifyTokenURL = "https://accounts.spotify.com/api/token"
	defaultSpotifyMarket   = "US"
	defaultSearchLimit     = 10
	defaultRequestTimeout  = 15

	defaultTitleWeight     = 0.6
	defaultArtistWeight    = 0.4
	defaultBracketWeight   = 0.3
	defaultKeywordBonus    = 5.0
	defaultStage1Threshold = 60.0
	defaultStage2Threshold = 70.0
	defaultTopK            = 3

	defaultCachePath = "~/.cache/trackmatch/search_cache.db"
	defaultCacheTTL  = 1440
	defaultWorkers   = 4
	defaultLogFormat = "auto"
	defaultLogLevel  = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Spotify: Spotify{
			BaseURL:        defaultSpotifyBaseURL,
			TokenURL:       defaultSpotifyTokenURL,
			Market:         defaultSpotifyMarket,
			SearchLimit:    defaultSearchLimit,
			RequestTimeout: defaultRequestTimeout,
		},
		Matching: Matching{
			TitleWeight:      defaultTitleWeight,
			ArtistWeight:     defaultArtistWeight,
			BracketWeight:    defaultBracketWeight,
			KeywordBonus:     defaultKeywordBonus,
			Stage1Threshold:  defaultStage1Threshold,
			Stage2Threshold:  defaultStage2Threshold,
			TopK:             defaultTopK,
			FallbackToStage1: true,
		},
		SearchCache: SearchCache{
			Enabled:    true,
			Path:       defaultCachePath,
			TTLMinutes: defaultCacheTTL,
		},
		Import: Import{
			Workers: defaultWorkers,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
