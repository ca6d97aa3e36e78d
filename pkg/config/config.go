package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// Config holds the application configuration
type Config struct {
	Server struct {
		Listen  string        `yaml:"listen" json:"listen" jsonschema:"default=:8080,description=HTTP server listen address"`
		Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP server timeout"`
	} `yaml:"server" json:"server" jsonschema:"description=Server configuration"`

	Providers ProvidersConfig `yaml:"providers" json:"providers" jsonschema:"description=Upstream provider endpoints"`

	Cache struct {
		TTL time.Duration `yaml:"ttl" json:"ttl" jsonschema:"default=15m,description=How long fetched payloads stay cached"`
	} `yaml:"cache" json:"cache" jsonschema:"description=Fetch cache configuration"`

	Report struct {
		MinScore   int `yaml:"min_score" json:"min_score" jsonschema:"default=20,minimum=0,maximum=100,description=Minimum score for items in the default report"`
		MaxItems   int `yaml:"max_items" json:"max_items" jsonschema:"default=50,minimum=1,description=Maximum items in the default report"`
		TopPreview int `yaml:"top_preview" json:"top_preview" jsonschema:"default=3,description=Number of items in the summary preview"`
	} `yaml:"report" json:"report" jsonschema:"description=Default report options"`

	Scoring ScoringConfig `yaml:"scoring" json:"scoring" jsonschema:"description=Scoring weight configuration"`

	History HistoryConfig `yaml:"history" json:"history" jsonschema:"description=Report history storage"`

	LLM LLMConfig `yaml:"llm" json:"llm" jsonschema:"description=LLM configuration for report briefings"`
}

// ProviderConfig describes one upstream HTTP endpoint
type ProviderConfig struct {
	URL     string        `yaml:"url" json:"url" jsonschema:"description=Base URL of the provider API"`
	Token   string        `yaml:"token" json:"token" jsonschema:"description=Bearer token (can use environment variable)"`
	Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=10s,description=Request timeout"`
}

// ProvidersConfig groups the three upstream providers
type ProvidersConfig struct {
	Tracker ProviderConfig `yaml:"tracker" json:"tracker" jsonschema:"description=Task tracker provider"`
	Wiki    struct {
		ProviderConfig `yaml:",inline"`
		FeedURL        string `yaml:"feed_url" json:"feed_url" jsonschema:"description=Recent-changes RSS/Atom feed URL, used instead of the JSON API when set"`
	} `yaml:"wiki" json:"wiki" jsonschema:"description=Knowledge-base provider"`
	Mail ProviderConfig `yaml:"mail" json:"mail" jsonschema:"description=Messaging provider"`
}

// ScoringConfig holds weight and keyword overrides for the scoring engine.
// Missing sources or factors keep the built-in defaults.
type ScoringConfig struct {
	Weights        map[string]map[string]float64 `yaml:"weights" json:"weights" jsonschema:"description=Per-source factor weights (task/document/message)"`
	InternalDomain string                        `yaml:"internal_domain" json:"internal_domain" jsonschema:"description=Organization mail domain, senders from other domains score as external"`
	Keywords struct {
		Critical []string `yaml:"critical" json:"critical" jsonschema:"description=Critical-tier keyword terms"`
		High     []string `yaml:"high" json:"high" jsonschema:"description=High-tier keyword terms"`
		Medium   []string `yaml:"medium" json:"medium" jsonschema:"description=Medium-tier keyword terms"`
		Low      []string `yaml:"low" json:"low" jsonschema:"description=Low-tier keyword terms"`
	} `yaml:"keywords" json:"keywords" jsonschema:"description=Keyword tier overrides for the urgency bonus"`
}

// HistoryConfig holds report history storage settings
type HistoryConfig struct {
	Enabled         bool   `yaml:"enabled" json:"enabled" jsonschema:"default=false,description=Enable report snapshot history"`
	DSN             string `yaml:"dsn" json:"dsn" jsonschema:"default=file:priofeed.db?cache=shared&mode=rwc,description=Database connection string"`
	MaxOpenConns    int    `yaml:"max_open_conns" json:"max_open_conns" jsonschema:"default=10,description=Maximum number of open connections"`
	MaxIdleConns    int    `yaml:"max_idle_conns" json:"max_idle_conns" jsonschema:"default=5,description=Maximum number of idle connections"`
	ConnMaxLifetime int    `yaml:"conn_max_lifetime" json:"conn_max_lifetime" jsonschema:"default=3600,description=Connection maximum lifetime in seconds"`
}

// LLMConfig holds LLM configuration for briefing generation
type LLMConfig struct {
	Enabled      bool          `yaml:"enabled" json:"enabled" jsonschema:"default=false,description=Enable LLM briefings"`
	Endpoint     string        `yaml:"endpoint" json:"endpoint" jsonschema:"description=OpenAI-compatible API endpoint"`
	APIKey       string        `yaml:"api_key" json:"api_key" jsonschema:"description=API key (can use environment variable)"`
	Model        string        `yaml:"model" json:"model" jsonschema:"description=Model name (e.g. gpt-4o-mini or llama3)"`
	Temperature  float64       `yaml:"temperature" json:"temperature" jsonschema:"default=0.3,description=Temperature for response generation"`
	MaxTokens    int           `yaml:"max_tokens" json:"max_tokens" jsonschema:"default=200,description=Maximum tokens in response"`
	Timeout      time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=Request timeout"`
	SystemPrompt string        `yaml:"system_prompt" json:"system_prompt" jsonschema:"description=System prompt for the LLM (optional)"`
}

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
	if c.Server.Listen == "" {
		c.Server.Listen = ":8080"
	}
	if c.Server.Timeout == 0 {
		c.Server.Timeout = 30 * time.Second
	}

	if c.Providers.Tracker.Timeout == 0 {
		c.Providers.Tracker.Timeout = 10 * time.Second
	}
	if c.Providers.Wiki.Timeout == 0 {
		c.Providers.Wiki.Timeout = 10 * time.Second
	}
	if c.Providers.Mail.Timeout == 0 {
		c.Providers.Mail.Timeout = 10 * time.Second
	}

	if c.Cache.TTL == 0 {
		c.Cache.TTL = 15 * time.Minute
	}

	if c.Report.MinScore == 0 {
		c.Report.MinScore = 20
	}
	if c.Report.MaxItems == 0 {
		c.Report.MaxItems = 50
	}
	if c.Report.TopPreview == 0 {
		c.Report.TopPreview = 3
	}

	if c.History.DSN == "" {
		c.History.DSN = "file:priofeed.db?cache=shared&mode=rwc&_txlock=immediate"
	}
	if c.History.MaxOpenConns == 0 {
		c.History.MaxOpenConns = 10
	}
	if c.History.MaxIdleConns == 0 {
		c.History.MaxIdleConns = 5
	}
	if c.History.ConnMaxLifetime == 0 {
		c.History.ConnMaxLifetime = 3600
	}

	if c.LLM.Temperature == 0 {
		c.LLM.Temperature = 0.3
	}
	if c.LLM.MaxTokens == 0 {
		c.LLM.MaxTokens = 200
	}
	if c.LLM.Timeout == 0 {
		c.LLM.Timeout = 30 * time.Second
	}
}

// validate checks configuration for correctness
func validate(cfg *Config) error {
	if cfg.Providers.Tracker.URL == "" {
		return fmt.Errorf("providers.tracker.url is required")
	}
	if cfg.Providers.Wiki.URL == "" && cfg.Providers.Wiki.FeedURL == "" {
		return fmt.Errorf("providers.wiki.url or providers.wiki.feed_url is required")
	}
	if cfg.Providers.Mail.URL == "" {
		return fmt.Errorf("providers.mail.url is required")
	}

	for source, factors := range cfg.Scoring.Weights {
		for name, v := range factors {
			if v < 0 || v > 1 {
				return fmt.Errorf("scoring.weights.%s.%s must be between 0 and 1", source, name)
			}
		}
	}

	if cfg.Report.MinScore < 0 || cfg.Report.MinScore > 100 {
		return fmt.Errorf("report.min_score must be between 0 and 100")
	}
	if cfg.Report.MaxItems < 1 {
		return fmt.Errorf("report.max_items must be at least 1")
	}

	if cfg.LLM.Enabled {
		if cfg.LLM.Endpoint == "" {
			return fmt.Errorf("llm.endpoint is required when llm is enabled")
		}
		if cfg.LLM.Model == "" {
			return fmt.Errorf("llm.model is required when llm is enabled")
		}
		if cfg.LLM.Temperature < 0 || cfg.LLM.Temperature > 2 {
			return fmt.Errorf("llm.temperature must be between 0 and 2")
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

// GetReportDefaults returns the default report options
func (c *Config) GetReportDefaults() (minScore, maxItems int) {
	return c.Report.MinScore, c.Report.MaxItems
}

// GetLLMConfig returns LLM configuration
func (c *Config) GetLLMConfig() LLMConfig {
	return c.LLM
}
