package config

import (
	"fmt"
	"strings"

	"pagination-srv/pkg/paginator"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment Configuration
	Environment EnvironmentConfig

	// Server Configuration
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Paginator - page-range computation defaults
	Paginator PaginatorConfig

	// Monitoring & Notification Configuration
	Discord DiscordConfig
}

// EnvironmentConfig is the configuration for the deployment environment.
type EnvironmentConfig struct {
	Name string
}

// HTTPServerConfig is the configuration for the HTTP server
type HTTPServerConfig struct {
	Host string
	Port int
	Mode string
}

// LoggerConfig is the configuration for the logger
type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// PaginatorConfig is the configuration for page-range computation.
// DefaultPolicy selects the window policy applied when a request does not
// name one; MaxRadius bounds client-supplied radius values.
type PaginatorConfig struct {
	DefaultRadius   int
	MaxRadius       int
	DefaultPolicy   string
	DefaultPageSize int64
	MaxPageSize     int64
}

// DiscordConfig is the configuration for Discord webhook alerting (optional).
type DiscordConfig struct {
	WebhookID    string
	WebhookToken string
}

// Load loads configuration using Viper
func Load() (*Config, error) {
	// Set config file name and paths
	viper.SetConfigName("pagination-config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/pagination-srv/")

	// Enable environment variable override
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Set defaults
	setDefaults()

	// Read config file (optional - will use env vars if file not found)
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; using environment variables
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Host = viper.GetString("http_server.host")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Paginator
	cfg.Paginator.DefaultRadius = viper.GetInt("paginator.default_radius")
	cfg.Paginator.MaxRadius = viper.GetInt("paginator.max_radius")
	cfg.Paginator.DefaultPolicy = viper.GetString("paginator.default_policy")
	cfg.Paginator.DefaultPageSize = viper.GetInt64("paginator.default_page_size")
	cfg.Paginator.MaxPageSize = viper.GetInt64("paginator.max_page_size")

	// Discord
	cfg.Discord.WebhookID = viper.GetString("discord.webhook_id")
	cfg.Discord.WebhookToken = viper.GetString("discord.webhook_token")

	// Validate required fields
	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	// Environment
	viper.SetDefault("environment.name", "production")

	// HTTP Server
	viper.SetDefault("http_server.host", "")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")

	// Logger
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	// Paginator
	viper.SetDefault("paginator.default_radius", paginator.DefaultRadius)
	viper.SetDefault("paginator.max_radius", 10)
	viper.SetDefault("paginator.default_policy", string(paginator.DefaultPolicy))
	viper.SetDefault("paginator.default_page_size", paginator.DefaultLimit)
	viper.SetDefault("paginator.max_page_size", paginator.MaxLimit)
}

func validate(cfg *Config) error {
	// Validate Paginator fields
	if cfg.Paginator.DefaultRadius < 0 {
		return fmt.Errorf("paginator.default_radius must not be negative")
	}
	if cfg.Paginator.MaxRadius < cfg.Paginator.DefaultRadius {
		return fmt.Errorf("paginator.max_radius must be at least paginator.default_radius")
	}
	if !paginator.Policy(cfg.Paginator.DefaultPolicy).Valid() {
		return fmt.Errorf("paginator.default_policy must be %q or %q",
			paginator.PolicySymmetricUnion, paginator.PolicyClampedWindow)
	}
	if cfg.Paginator.DefaultPageSize < 1 {
		return fmt.Errorf("paginator.default_page_size must be greater than 0")
	}
	if cfg.Paginator.MaxPageSize < cfg.Paginator.DefaultPageSize {
		return fmt.Errorf("paginator.max_page_size must be at least paginator.default_page_size")
	}

	return nil
}
