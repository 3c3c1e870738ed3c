package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the process-wide configuration. It is read once at startup
// and treated as read-only afterwards.
type Config struct {
	App      AppConfig    `mapstructure:"app"`
	Server   ServerConfig `mapstructure:"server"`
	Gemini   GeminiConfig `mapstructure:"gemini"`
	Image    ImageConfig  `mapstructure:"image"`
	LogLevel string       `mapstructure:"log_level"`
}

// AppConfig identifies the application.
type AppConfig struct {
	Env     string `mapstructure:"env"`
	Debug   bool   `mapstructure:"debug"`
	Version string `mapstructure:"version"`
	Name    string `mapstructure:"name"`
}

// ServerConfig configures the HTTP server.
type ServerConfig struct {
	Port         int           `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	IdleTimeout  time.Duration `mapstructure:"idle_timeout"`
	MaxBodySize  int64         `mapstructure:"max_body_size"`
}

// GeminiConfig configures the Gemini generateContent endpoint.
type GeminiConfig struct {
	APIKey  string        `mapstructure:"api_key"`
	BaseURL string        `mapstructure:"base_url"`
	Model   string        `mapstructure:"model"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// ImageConfig configures the two-tier image provider. PexelsAPIKey is
// optional; without it only the deterministic fallback is used.
type ImageConfig struct {
	PexelsAPIKey    string        `mapstructure:"pexels_api_key"`
	PexelsBaseURL   string        `mapstructure:"pexels_base_url"`
	FallbackBaseURL string        `mapstructure:"fallback_base_url"`
	Width           int           `mapstructure:"width"`
	Height          int           `mapstructure:"height"`
	QuerySuffix     string        `mapstructure:"query_suffix"`
	Timeout         time.Duration `mapstructure:"timeout"`
}

// LoadConfig reads .env and the environment into a validated Config.
func LoadConfig() (*Config, error) {
	// Missing .env is fine in production; the environment still applies.
	_ = godotenv.Load()

	setDefaults()

	viper.SetEnvPrefix("APP")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Public environment names.
	viper.BindEnv("gemini.api_key", "GOOGLE_API_KEY")
	viper.BindEnv("gemini.model", "GEMINI_MODEL")
	viper.BindEnv("image.pexels_api_key", "PEXELS_API_KEY")
	viper.BindEnv("server.port", "PORT")
	viper.BindEnv("log_level", "LOG_LEVEL")

	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

// MaskAPIKey hides the middle of a key, showing four characters each side.
func MaskAPIKey(key string) string {
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "..." + key[len(key)-4:]
}

func setDefaults() {
	viper.SetDefault("app.env", "development")
	viper.SetDefault("app.debug", true)
	viper.SetDefault("app.version", "1.0.0")
	viper.SetDefault("app.name", "recipe-finder")

	viper.SetDefault("server.port", 3000)
	viper.SetDefault("server.read_timeout", "30s")
	viper.SetDefault("server.write_timeout", "60s")
	viper.SetDefault("server.idle_timeout", "120s")
	viper.SetDefault("server.max_body_size", 1<<20) // 1MB

	viper.SetDefault("gemini.base_url", "https://generativelanguage.googleapis.com")
	viper.SetDefault("gemini.model", "gemini-1.5-flash")
	viper.SetDefault("gemini.timeout", "30s")

	viper.SetDefault("image.pexels_base_url", "https://api.pexels.com")
	viper.SetDefault("image.fallback_base_url", "https://loremflickr.com")
	viper.SetDefault("image.width", 640)
	viper.SetDefault("image.height", 420)
	viper.SetDefault("image.query_suffix", "indian paneer")
	viper.SetDefault("image.timeout", "10s")

	viper.SetDefault("log_level", "info")
}

func validateConfig(config *Config) error {
	if config.Gemini.APIKey == "" {
		return fmt.Errorf("GOOGLE_API_KEY is required")
	}
	if config.Server.Port <= 0 {
		return fmt.Errorf("server port is required")
	}
	if config.Server.MaxBodySize <= 0 {
		return fmt.Errorf("invalid max body size")
	}
	if config.Gemini.Timeout <= 0 || config.Image.Timeout <= 0 {
		return fmt.Errorf("invalid upstream timeout")
	}
	return nil
}
