package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig
	Log      LogConfig
	CORS     CORSConfig
	LLM      LLMConfig
	Analysis AnalysisConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// LLMProviderConfig holds settings for a single LLM provider.
type LLMProviderConfig struct {
	Provider     string `mapstructure:"provider"`
	APIKey       string `mapstructure:"api_key"`
	DefaultModel string `mapstructure:"default_model"`
	TimeoutSecs  int    `mapstructure:"timeout_secs"`
}

// LLMConfig holds LLM extractor settings with multi-provider support.
// Providers are tried in order primary, secondary, tertiary; an empty
// provider name means the slot is unused.
type LLMConfig struct {
	Enabled   bool              `mapstructure:"enabled"`
	Primary   LLMProviderConfig `mapstructure:"primary"`
	Secondary LLMProviderConfig `mapstructure:"secondary"`
	Tertiary  LLMProviderConfig `mapstructure:"tertiary"`
}

// Chain returns the configured provider slots in fallback order.
func (l *LLMConfig) Chain() []*LLMProviderConfig {
	var chain []*LLMProviderConfig
	for _, slot := range []*LLMProviderConfig{&l.Primary, &l.Secondary, &l.Tertiary} {
		if slot.Provider != "" {
			chain = append(chain, slot)
		}
	}
	return chain
}

// AnalysisConfig holds classification and extraction pipeline settings.
type AnalysisConfig struct {
	DefaultCategory string `mapstructure:"default_category"`
	LLMTimeoutSecs  int    `mapstructure:"llm_timeout_secs"`
	CacheSize       int    `mapstructure:"cache_size"`
	Diagnostics     bool   `mapstructure:"diagnostics"`
}

// Load reads configuration from environment variables with the DOCLENS_
// prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("DOCLENS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.environment", "development")

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	// LLM defaults
	v.SetDefault("llm.enabled", true)
	v.SetDefault("llm.primary.provider", "openai")
	v.SetDefault("llm.primary.api_key", "")
	v.SetDefault("llm.primary.default_model", "")
	v.SetDefault("llm.primary.timeout_secs", 60)
	v.SetDefault("llm.secondary.provider", "")
	v.SetDefault("llm.secondary.api_key", "")
	v.SetDefault("llm.secondary.default_model", "")
	v.SetDefault("llm.secondary.timeout_secs", 60)
	v.SetDefault("llm.tertiary.provider", "")
	v.SetDefault("llm.tertiary.api_key", "")
	v.SetDefault("llm.tertiary.default_model", "")
	v.SetDefault("llm.tertiary.timeout_secs", 60)

	// Analysis defaults
	v.SetDefault("analysis.default_category", "generic")
	v.SetDefault("analysis.llm_timeout_secs", 20)
	v.SetDefault("analysis.cache_size", 256)
	v.SetDefault("analysis.diagnostics", false)

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":                  "DOCLENS_SERVER_PORT",
		"server.read_timeout":          "DOCLENS_SERVER_READ_TIMEOUT",
		"server.write_timeout":         "DOCLENS_SERVER_WRITE_TIMEOUT",
		"server.environment":           "DOCLENS_SERVER_ENVIRONMENT",
		"log.level":                    "DOCLENS_LOG_LEVEL",
		"log.format":                   "DOCLENS_LOG_FORMAT",
		"cors.allowed_origins":         "DOCLENS_CORS_ALLOWED_ORIGINS",
		"llm.enabled":                  "DOCLENS_LLM_ENABLED",
		"llm.primary.provider":         "DOCLENS_LLM_PRIMARY_PROVIDER",
		"llm.primary.api_key":          "DOCLENS_LLM_PRIMARY_API_KEY",
		"llm.primary.default_model":    "DOCLENS_LLM_PRIMARY_DEFAULT_MODEL",
		"llm.primary.timeout_secs":     "DOCLENS_LLM_PRIMARY_TIMEOUT_SECS",
		"llm.secondary.provider":       "DOCLENS_LLM_SECONDARY_PROVIDER",
		"llm.secondary.api_key":        "DOCLENS_LLM_SECONDARY_API_KEY",
		"llm.secondary.default_model":  "DOCLENS_LLM_SECONDARY_DEFAULT_MODEL",
		"llm.secondary.timeout_secs":   "DOCLENS_LLM_SECONDARY_TIMEOUT_SECS",
		"llm.tertiary.provider":        "DOCLENS_LLM_TERTIARY_PROVIDER",
		"llm.tertiary.api_key":         "DOCLENS_LLM_TERTIARY_API_KEY",
		"llm.tertiary.default_model":   "DOCLENS_LLM_TERTIARY_DEFAULT_MODEL",
		"llm.tertiary.timeout_secs":    "DOCLENS_LLM_TERTIARY_TIMEOUT_SECS",
		"analysis.default_category":    "DOCLENS_ANALYSIS_DEFAULT_CATEGORY",
		"analysis.llm_timeout_secs":    "DOCLENS_ANALYSIS_LLM_TIMEOUT_SECS",
		"analysis.cache_size":          "DOCLENS_ANALYSIS_CACHE_SIZE",
		"analysis.diagnostics":         "DOCLENS_ANALYSIS_DIAGNOSTICS",
	}
	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	// Comma-separated origins from env
	if len(cfg.CORS.AllowedOrigins) == 1 && strings.Contains(cfg.CORS.AllowedOrigins[0], ",") {
		cfg.CORS.AllowedOrigins = strings.Split(cfg.CORS.AllowedOrigins[0], ",")
	}

	return &cfg, nil
}
