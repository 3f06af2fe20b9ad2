package config

import (
	"fmt"
	"strings"
	"time"

	internal "github.com/DhrubaAgarwalla/portfolio-chat/chatbot"

	"github.com/spf13/viper"
)

// Config stores all configuration of the application.
// The values are read by viper from a config file or environment variables.
type Config struct {
	Chatbot  ChatbotConfig  `mapstructure:"chatbot"`
	Provider ProviderConfig `mapstructure:"provider"`
	Session  SessionConfig  `mapstructure:"session"`
	Engine   EngineConfig   `mapstructure:"engine"`
}

// ChatbotConfig stores owner identity and knowledge base options.
type ChatbotConfig struct {
	OwnerName      string `mapstructure:"owner_name"`
	OwnerTitle     string `mapstructure:"owner_title"`
	KnowledgeFile  string `mapstructure:"knowledge_file"`  // optional JSON override of the built-in corpus
	WatchKnowledge bool   `mapstructure:"watch_knowledge"` // hot-reload the override file
}

// ProviderConfig stores remote completion API settings.
type ProviderConfig struct {
	APIKey      string  `mapstructure:"api_key"` // no default; absence surfaces on first call
	BaseURL     string  `mapstructure:"base_url"`
	Model       string  `mapstructure:"model"`
	Temperature float64 `mapstructure:"temperature"`
	TopP        float64 `mapstructure:"top_p"`
	MaxTokens   int     `mapstructure:"max_tokens"`
}

// SessionConfig stores persisted-session settings.
type SessionConfig struct {
	Persist      bool          `mapstructure:"persist"`       // use the libsql store instead of memory
	DatabasePath string        `mapstructure:"database_path"` // path to the libsql database file
	TTL          time.Duration `mapstructure:"ttl"`           // expiry window for persisted sessions
}

// EngineConfig stores orchestration settings.
type EngineConfig struct {
	// Response cache
	CacheEnabled    bool `mapstructure:"cache_enabled"`
	CacheCapacity   int  `mapstructure:"cache_capacity"`
	CacheTTLSeconds int  `mapstructure:"cache_ttl_seconds"`

	// Per-session request gate
	RateLimitEnabled    bool          `mapstructure:"rate_limit_enabled"`
	RateLimitCapacity   int           `mapstructure:"rate_limit_capacity"`
	RateLimitRefillRate time.Duration `mapstructure:"rate_limit_refill_rate"`

	// Telemetry
	EnableTracing bool `mapstructure:"enable_tracing"`

	// Conversation shaping
	SummaryInterval int `mapstructure:"summary_interval"` // messages before a summary is attempted
	ShallowWindow   int `mapstructure:"shallow_window"`   // history messages kept per request
	DetailedWindow  int `mapstructure:"detailed_window"`
	DeepWindow      int `mapstructure:"deep_window"`
}

var AppConfig Config

// LoadConfig reads configuration from file or environment variables.
func LoadConfig(configPath string) (*Config, error) {
	if configPath != "" {
		viper.SetConfigFile(configPath)
	} else {
		viper.AddConfigPath(".")
		viper.AddConfigPath(internal.DefaultConfigPath)
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	viper.SetDefault("chatbot.owner_name", internal.DefaultOwnerName)
	viper.SetDefault("chatbot.owner_title", internal.DefaultOwnerTitle)
	viper.SetDefault("chatbot.knowledge_file", "")
	viper.SetDefault("chatbot.watch_knowledge", false)

	viper.SetDefault("provider.base_url", internal.DefaultBaseURL)
	viper.SetDefault("provider.model", internal.DefaultModel)
	viper.SetDefault("provider.temperature", 0.7)
	viper.SetDefault("provider.top_p", 0.9)
	viper.SetDefault("provider.max_tokens", 1500)

	viper.SetDefault("session.persist", false)
	viper.SetDefault("session.database_path", internal.DefaultDatabasePath)
	viper.SetDefault("session.ttl", "24h")

	viper.SetDefault("engine.cache_enabled", false)
	viper.SetDefault("engine.cache_capacity", 256)
	viper.SetDefault("engine.cache_ttl_seconds", 3600)
	viper.SetDefault("engine.rate_limit_enabled", true)
	viper.SetDefault("engine.rate_limit_capacity", 1) // one outstanding request per session
	viper.SetDefault("engine.rate_limit_refill_rate", "1s")
	viper.SetDefault("engine.enable_tracing", true)
	viper.SetDefault("engine.summary_interval", 10)
	viper.SetDefault("engine.shallow_window", 10)
	viper.SetDefault("engine.detailed_window", 15)
	viper.SetDefault("engine.deep_window", 20)

	viper.AutomaticEnv()
	// Replace dots with underscores in env var names e.g. provider.api_key becomes PROVIDER_API_KEY
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Config file not found; defaults will be used.
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}

	return &AppConfig, nil
}
