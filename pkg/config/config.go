package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/umputun/viralscope/pkg/domain"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// Config holds the application configuration
type Config struct {
	Server struct {
		Listen  string        `yaml:"listen" json:"listen" jsonschema:"default=:8080,description=HTTP server listen address"`
		Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=3m,description=HTTP server timeout"`
		BaseURL string        `yaml:"base_url" json:"base_url" jsonschema:"default=http://localhost:8080,description=Public base URL used in RSS links"`

		RefreshInterval time.Duration `yaml:"refresh_interval" json:"refresh_interval" jsonschema:"default=1m,description=Minimum interval between forced refreshes of one language feed"`
	} `yaml:"server" json:"server" jsonschema:"description=Server configuration"`

	Cache CacheConfig `yaml:"cache" json:"cache" jsonschema:"description=News feed cache configuration"`

	News NewsConfig `yaml:"news" json:"news" jsonschema:"description=News providers configuration"`

	LLM LLMConfig `yaml:"llm" json:"llm" jsonschema:"description=Generative model configuration"`

	Extraction ExtractionConfig `yaml:"extraction" json:"extraction" jsonschema:"description=Article content extraction configuration"`
}

// CacheConfig holds feed cache settings
type CacheConfig struct {
	Backend         string        `yaml:"backend" json:"backend" jsonschema:"default=sqlite,enum=sqlite,enum=redis,enum=memory,description=Cache storage backend"`
	Version         string        `yaml:"version" json:"version" jsonschema:"default=v8,description=Cache key version, bump to orphan all previous entries"`
	TTL             time.Duration `yaml:"ttl" json:"ttl" jsonschema:"default=12h,description=How long a cached feed stays fresh"`
	DSN             string        `yaml:"dsn" json:"dsn" jsonschema:"default=file:viralscope.db?cache=shared&mode=rwc,description=SQLite connection string"`
	RedisURL        string        `yaml:"redis_url" json:"redis_url" jsonschema:"description=Redis URL for the redis backend"`
	Prewarm         bool          `yaml:"prewarm" json:"prewarm" jsonschema:"default=false,description=Keep feeds warm in background"`
	PrewarmInterval time.Duration `yaml:"prewarm_interval" json:"prewarm_interval" jsonschema:"default=30m,description=How often the background refresher checks feeds"`
	Languages       []string      `yaml:"languages" json:"languages" jsonschema:"description=Languages kept warm by the background refresher"`
}

// ProviderConfig holds a single news provider endpoint
type ProviderConfig struct {
	URL      string `yaml:"url" json:"url" jsonschema:"description=Provider endpoint URL"`
	APIKey   string `yaml:"api_key" json:"api_key" jsonschema:"description=Provider API key (can use environment variable)"`
	Country  string `yaml:"country" json:"country" jsonschema:"default=us,description=Country filter"`
	Language string `yaml:"language" json:"language" jsonschema:"default=en,description=Language filter"`
	Category string `yaml:"category" json:"category" jsonschema:"default=general,description=Category filter"`
	Max      int    `yaml:"max" json:"max" jsonschema:"description=Maximum articles requested"`
}

// NewsConfig holds news providers settings
type NewsConfig struct {
	GNews       ProviderConfig `yaml:"gnews" json:"gnews" jsonschema:"description=GNews provider"`
	NewsAPI     ProviderConfig `yaml:"newsapi" json:"newsapi" jsonschema:"description=NewsAPI provider"`
	RelayURL    string         `yaml:"relay_url" json:"relay_url" jsonschema:"default=https://api.allorigins.win/raw,description=Read-only relay used when NewsAPI direct call fails"`
	Timeout     time.Duration  `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=Per-request timeout"`
	MaxArticles int            `yaml:"max_articles" json:"max_articles" jsonschema:"default=30,description=Maximum articles passed to the model"`
	UserAgent   string         `yaml:"user_agent" json:"user_agent" jsonschema:"default=Viralscope/1.0,description=User agent for provider requests"`
}

// LLMConfig holds generative model configuration
type LLMConfig struct {
	Endpoint          string        `yaml:"endpoint" json:"endpoint" jsonschema:"required,description=OpenAI-compatible API endpoint"`
	APIKey            string        `yaml:"api_key" json:"api_key" jsonschema:"description=API key (can use environment variable)"`
	Model             string        `yaml:"model" json:"model" jsonschema:"required,description=Model name (e.g. gemini-2.5-flash)"`
	FeedTemperature   float64       `yaml:"feed_temperature" json:"feed_temperature" jsonschema:"default=0.8,description=Temperature for feed generation"`
	ScriptTemperature float64       `yaml:"script_temperature" json:"script_temperature" jsonschema:"default=0.7,description=Temperature for script generation"`
	Timeout           time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=2m,description=Request timeout"`
	StrictSchema      *bool         `yaml:"strict_schema" json:"strict_schema,omitempty" jsonschema:"default=true,description=Ask the model for strict JSON schema adherence"`
}

// ExtractionConfig holds content extraction settings
type ExtractionConfig struct {
	Enabled       bool          `yaml:"enabled" json:"enabled" jsonschema:"default=false,description=Extract text for articles without description"`
	Timeout       time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=15s,description=Extraction timeout per article"`
	MaxConcurrent int           `yaml:"max_concurrent" json:"max_concurrent" jsonschema:"default=5,description=Maximum concurrent extractions"`
	MaxLength     int           `yaml:"max_length" json:"max_length" jsonschema:"default=500,description=Maximum extracted characters kept per article"`
	UserAgent     string        `yaml:"user_agent" json:"user_agent" jsonschema:"default=Viralscope/1.0,description=User agent for HTTP requests"`
}

const (
	defaultGeminiEndpoint = "https://generativelanguage.googleapis.com/v1beta/openai"
	defaultModel          = "gemini-2.5-flash"
)

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// expand environment variables
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.setDefaults()

	// validate configuration
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	// verify against embedded schema
	if err := VerifyAgainstEmbeddedSchema(&cfg); err != nil {
		// log warning but don't fail - schema validation is supplementary
		fmt.Printf("warning: schema validation failed: %v\n", err)
	}

	return &cfg, nil
}

func (c *Config) setDefaults() {
	// server
	if c.Server.Listen == "" {
		c.Server.Listen = ":8080"
	}
	if c.Server.Timeout == 0 {
		c.Server.Timeout = 3 * time.Minute // script generation is slow
	}
	if c.Server.BaseURL == "" {
		c.Server.BaseURL = "http://localhost:8080"
	}
	if c.Server.RefreshInterval == 0 {
		c.Server.RefreshInterval = time.Minute
	}

	// cache
	if c.Cache.Backend == "" {
		c.Cache.Backend = "sqlite"
	}
	if c.Cache.Version == "" {
		c.Cache.Version = "v8"
	}
	if c.Cache.TTL == 0 {
		c.Cache.TTL = 12 * time.Hour
	}
	if c.Cache.DSN == "" {
		c.Cache.DSN = "file:viralscope.db?cache=shared&mode=rwc&_txlock=immediate"
	}
	if c.Cache.PrewarmInterval == 0 {
		c.Cache.PrewarmInterval = 30 * time.Minute
	}
	if len(c.Cache.Languages) == 0 {
		c.Cache.Languages = []string{string(domain.LangPT), string(domain.LangEN)}
	}

	// news providers
	if c.News.GNews.URL == "" {
		c.News.GNews.URL = "https://gnews.io/api/v4/top-headlines"
	}
	if c.News.GNews.Category == "" {
		c.News.GNews.Category = "general"
	}
	if c.News.GNews.Language == "" {
		c.News.GNews.Language = "en"
	}
	if c.News.GNews.Country == "" {
		c.News.GNews.Country = "us"
	}
	if c.News.GNews.Max == 0 {
		c.News.GNews.Max = 10
	}
	if c.News.NewsAPI.URL == "" {
		c.News.NewsAPI.URL = "https://newsapi.org/v2/top-headlines"
	}
	if c.News.NewsAPI.Country == "" {
		c.News.NewsAPI.Country = "us"
	}
	if c.News.NewsAPI.Max == 0 {
		c.News.NewsAPI.Max = 20
	}
	if c.News.RelayURL == "" {
		c.News.RelayURL = "https://api.allorigins.win/raw"
	}
	if c.News.Timeout == 0 {
		c.News.Timeout = 30 * time.Second
	}
	if c.News.MaxArticles == 0 {
		c.News.MaxArticles = 30
	}
	if c.News.UserAgent == "" {
		c.News.UserAgent = "Viralscope/1.0"
	}

	// llm
	if c.LLM.Endpoint == "" {
		c.LLM.Endpoint = defaultGeminiEndpoint
	}
	if c.LLM.Model == "" {
		c.LLM.Model = defaultModel
	}
	if c.LLM.FeedTemperature == 0 {
		c.LLM.FeedTemperature = 0.8
	}
	if c.LLM.ScriptTemperature == 0 {
		c.LLM.ScriptTemperature = 0.7
	}
	if c.LLM.Timeout == 0 {
		c.LLM.Timeout = 2 * time.Minute
	}
	if c.LLM.StrictSchema == nil {
		strict := true
		c.LLM.StrictSchema = &strict
	}

	// extraction
	if c.Extraction.Timeout == 0 {
		c.Extraction.Timeout = 15 * time.Second
	}
	if c.Extraction.MaxConcurrent == 0 {
		c.Extraction.MaxConcurrent = 5
	}
	if c.Extraction.MaxLength == 0 {
		c.Extraction.MaxLength = 500
	}
	if c.Extraction.UserAgent == "" {
		c.Extraction.UserAgent = "Viralscope/1.0"
	}
}

// validate checks configuration for correctness
func validate(cfg *Config) error {
	switch cfg.Cache.Backend {
	case "sqlite", "memory":
	case "redis":
		if cfg.Cache.RedisURL == "" {
			return fmt.Errorf("cache.redis_url is required for redis backend")
		}
	default:
		return fmt.Errorf("unknown cache.backend %q", cfg.Cache.Backend)
	}
	if cfg.Cache.TTL < time.Minute {
		return fmt.Errorf("cache.ttl must be at least 1 minute")
	}
	for _, lang := range cfg.Cache.Languages {
		if _, err := domain.ParseLanguage(lang); err != nil {
			return fmt.Errorf("cache.languages: %w", err)
		}
	}

	if cfg.LLM.FeedTemperature < 0 || cfg.LLM.FeedTemperature > 2 {
		return fmt.Errorf("llm.feed_temperature must be between 0 and 2")
	}
	if cfg.LLM.ScriptTemperature < 0 || cfg.LLM.ScriptTemperature > 2 {
		return fmt.Errorf("llm.script_temperature must be between 0 and 2")
	}

	if cfg.News.MaxArticles < 1 {
		return fmt.Errorf("news.max_articles must be at least 1")
	}

	if cfg.Extraction.Enabled {
		if cfg.Extraction.Timeout < time.Second {
			return fmt.Errorf("extraction timeout must be at least 1 second")
		}
		if cfg.Extraction.MaxLength < 0 {
			return fmt.Errorf("extraction max_length must be non-negative")
		}
	}

	if cfg.Server.Timeout < time.Second {
		return fmt.Errorf("server timeout must be at least 1 second")
	}

	return nil
}

// GetServerConfig returns server configuration
func (c *Config) GetServerConfig() (listen string, timeout time.Duration) {
	return c.Server.Listen, c.Server.Timeout
}

// GetBaseURL returns public base URL of the service
func (c *Config) GetBaseURL() string {
	return c.Server.BaseURL
}

// GetRefreshInterval returns minimal interval between forced refreshes of one feed
func (c *Config) GetRefreshInterval() time.Duration {
	return c.Server.RefreshInterval
}

// GetLLMConfig returns generative model configuration
func (c *Config) GetLLMConfig() LLMConfig {
	return c.LLM
}

// Secrets returns configured API keys, used to mask them in logs
func (c *Config) Secrets() []string {
	var res []string
	for _, s := range []string{c.LLM.APIKey, c.News.GNews.APIKey, c.News.NewsAPI.APIKey} {
		if s != "" {
			res = append(res, s)
		}
	}
	return res
}
