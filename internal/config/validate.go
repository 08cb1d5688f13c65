package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateTMDB(); err != nil {
		return err
	}
	if err := c.validateYouTube(); err != nil {
		return err
	}
	if err := c.validateEnrich(); err != nil {
		return err
	}
	if err := c.validateCache(); err != nil {
		return err
	}
	return nil
}

// RequireTMDBKey reports an actionable error when no TMDB API key is
// configured. Callers invoke it only when related film lookups are wanted,
// so a keyless setup can still search trailers.
func (c *Config) RequireTMDBKey() error {
	if strings.TrimSpace(c.TMDB.APIKey) != "" {
		return nil
	}
	defaultPath, err := DefaultConfigPath()
	if err != nil {
		defaultPath = "~/.config/marquee/config.toml"
	}
	return fmt.Errorf("tmdb.api_key is required for related film lookups. Set TMDB_API_KEY env var, edit %s (create with 'marquee config init'), or rerun with --no-related", defaultPath)
}

func (c *Config) validateTMDB() error {
	if strings.TrimSpace(c.TMDB.BaseURL) == "" {
		return errors.New("tmdb.base_url must be set")
	}
	if c.TMDB.RelatedLimit < 1 || c.TMDB.RelatedLimit > 10 {
		return errors.New("tmdb.related_limit must be between 1 and 10")
	}
	return nil
}

func (c *Config) validateYouTube() error {
	if strings.TrimSpace(c.YouTube.BaseURL) == "" {
		return errors.New("youtube.base_url must be set")
	}
	return nil
}

func (c *Config) validateEnrich() error {
	if c.Enrich.DelaySeconds < 0 {
		return errors.New("enrich.delay_seconds must be >= 0")
	}
	return nil
}

func (c *Config) validateCache() error {
	if c.Cache.Enabled && strings.TrimSpace(c.Cache.Path) == "" {
		return errors.New("cache.path must be set when cache.enabled is true")
	}
	return nil
}
