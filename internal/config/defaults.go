package config

const (
	defaultTMDBBaseURL      = "https://api.themoviedb.org/3"
	defaultTMDBLanguage     = "en-US"
	defaultTMDBRelatedLimit = 3
	defaultYouTubeBaseURL   = "https://www.youtube.com"
	defaultYouTubeUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) " +
		"AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"
	defaultDelaySeconds = 2.0
	defaultCacheTTLDays = 30
	defaultLogFormat    = "console"
	defaultLogLevel     = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		TMDB: TMDB{
			BaseURL:      defaultTMDBBaseURL,
			Language:     defaultTMDBLanguage,
			RelatedLimit: defaultTMDBRelatedLimit,
		},
		YouTube: YouTube{
			BaseURL:   defaultYouTubeBaseURL,
			UserAgent: defaultYouTubeUserAgent,
		},
		Enrich: Enrich{
			DelaySeconds: defaultDelaySeconds,
		},
		Cache: Cache{
			Enabled: true,
			Path:    defaultCachePath(),
			TTLDays: defaultCacheTTLDays,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
