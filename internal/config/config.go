package config

import (
	"embed"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

//go:embed default_config.yaml
var defaultConfigFS embed.FS

// Feed describes the remote source: either an explicit URL or a Hey
// World handle the URL is derived from. Mirrors are fallback endpoints
// (e.g. CORS proxies) tried in order when the primary fails.
type Feed struct {
	Handle  string   `yaml:"handle"`
	URL     string   `yaml:"url,omitempty"`
	Mirrors []string `yaml:"mirrors,omitempty"`
	Limit   int      `yaml:"limit,omitempty"`
}

type Config struct {
	Feed         Feed   `yaml:"feed"`
	FetchTimeout string `yaml:"fetch_timeout,omitempty"`
	FetchRetries int    `yaml:"fetch_retries,omitempty"`
	FetchBackoff string `yaml:"fetch_backoff,omitempty"`
	CacheTTL     string `yaml:"cache_ttl,omitempty"`
	ArtifactPath string `yaml:"artifact_path,omitempty"`
	Listen       string `yaml:"listen,omitempty"`
}

const feedURLTemplate = "https://world.hey.com/%s/feed.atom"

// FeedURL resolves the feed endpoint: an explicit url wins, otherwise
// the handle is substituted into the Hey World template.
func (c *Config) FeedURL() string {
	if c.Feed.URL != "" {
		return c.Feed.URL
	}
	return fmt.Sprintf(feedURLTemplate, c.Feed.Handle)
}

func (c *Config) FeedLimit() int {
	if c.Feed.Limit <= 0 {
		return 5
	}
	return c.Feed.Limit
}

func (c *Config) FetchTimeoutDuration() time.Duration {
	d, err := time.ParseDuration(c.FetchTimeout)
	if err != nil || d <= 0 {
		return 10 * time.Second
	}
	return d
}

func (c *Config) FetchBackoffDuration() time.Duration {
	d, err := time.ParseDuration(c.FetchBackoff)
	if err != nil || d <= 0 {
		return 800 * time.Millisecond
	}
	return d
}

func (c *Config) Retries() int {
	if c.FetchRetries < 0 {
		return 0
	}
	if c.FetchRetries == 0 {
		return 2
	}
	return c.FetchRetries
}

// CacheTTLDuration is the snapshot validity window.
func (c *Config) CacheTTLDuration() time.Duration {
	d, err := time.ParseDuration(c.CacheTTL)
	if err != nil || d <= 0 {
		return 15 * time.Minute
	}
	return d
}

func (c *Config) Artifact() string {
	if c.ArtifactPath == "" {
		return filepath.Join("public", "content-feed.json")
	}
	return c.ArtifactPath
}

func (c *Config) ListenAddr() string {
	if c.Listen == "" {
		return ":8090"
	}
	return c.Listen
}

func DefaultConfigPath() string {
	return filepath.Join(xdg.ConfigHome, "priyata-universe", "config.yaml")
}

func CachePath() string {
	return filepath.Join(xdg.CacheHome, "priyata-universe", "content.db")
}

func loadDefaults() (*Config, error) {
	data, err := defaultConfigFS.ReadFile("default_config.yaml")
	if err != nil {
		return nil, fmt.Errorf("reading embedded config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded config: %w", err)
	}
	return &cfg, nil
}

func Load(path string) (*Config, error) {
	defaults, err := loadDefaults()
	if err != nil {
		return nil, err
	}

	if path == "" {
		path = DefaultConfigPath()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Write defaults to config path on first run
			if err := writeDefaults(path); err != nil {
				// Non-fatal: just use embedded defaults
				return defaults, nil
			}
			return defaults, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func writeDefaults(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, _ := defaultConfigFS.ReadFile("default_config.yaml")
	return os.WriteFile(path, data, 0o644)
}

func validate(cfg *Config) error {
	if cfg.Feed.Handle == "" && cfg.Feed.URL == "" {
		return fmt.Errorf("feed: either handle or url is required")
	}
	endpoints := append([]string{cfg.FeedURL()}, cfg.Feed.Mirrors...)
	for _, e := range endpoints {
		u, err := url.Parse(e)
		if err != nil {
			return fmt.Errorf("feed: invalid url %q: %w", e, err)
		}
		if u.Scheme != "http" && u.Scheme != "https" {
			return fmt.Errorf("feed: url scheme must be http or https, got %q in %q", u.Scheme, e)
		}
	}
	return nil
}
