package config

import (
	"fmt"
	"os"
	"strconv"
	"sync"
	"time"

	"gopkg.in/yaml.v3"
)

type ServerConfig struct {
	Addr          string `yaml:"addr"`
	SigningSecret string `yaml:"signingSecret"` // base64
}

type StoreConfig struct {
	BaseURL string `yaml:"baseUrl"`
	Token   string `yaml:"token"`
}

type CacheConfig struct {
	TTLSeconds int `yaml:"ttlSeconds"`
}

type ReportConfig struct {
	Bucket       string `yaml:"bucket"`
	SlackChannel string `yaml:"slackChannel"`
}

type Config struct {
	Server ServerConfig `yaml:"server"`
	Store  StoreConfig  `yaml:"store"`
	Cache  CacheConfig  `yaml:"cache"`
	Report ReportConfig `yaml:"report"`
}

var (
	once    sync.Once
	cfg     *Config
	loadErr error
)

// Load reads the yaml config file once per process, then applies environment
// overrides so secrets never need to live on disk. Subsequent calls return
// the first result.
func Load(path string) (*Config, error) {
	once.Do(func() {
		cfg, loadErr = load(path)
	})
	return cfg, loadErr
}

func load(path string) (*Config, error) {
	parsed := defaults()

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(raw, parsed); err != nil {
			return nil, fmt.Errorf("unmarshal yaml: %w", err)
		}
	}

	applyEnv(parsed)
	return parsed, nil
}

func defaults() *Config {
	return &Config{
		Server: ServerConfig{Addr: "0.0.0.0:8090"},
		Cache:  CacheConfig{TTLSeconds: 300},
	}
}

func applyEnv(c *Config) {
	if v := os.Getenv("HR_SERVER_ADDR"); v != "" {
		c.Server.Addr = v
	}
	if v := os.Getenv("HR_SIGNING_SECRET"); v != "" {
		c.Server.SigningSecret = v
	}
	if v := os.Getenv("HR_STORE_BASE_URL"); v != "" {
		c.Store.BaseURL = v
	}
	if v := os.Getenv("HR_STORE_TOKEN"); v != "" {
		c.Store.Token = v
	}
	if v := os.Getenv("HR_CACHE_TTL_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Cache.TTLSeconds = n
		}
	}
	if v := os.Getenv("HR_REPORT_BUCKET"); v != "" {
		c.Report.Bucket = v
	}
	if v := os.Getenv("HR_REPORT_SLACK_CHANNEL"); v != "" {
		c.Report.SlackChannel = v
	}
}

func (c *Config) CacheTTL() time.Duration {
	return time.Duration(c.Cache.TTLSeconds) * time.Second
}
