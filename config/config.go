package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"taskboard/internal/model"
)

// Config holds all service configuration.
type Config struct {
	Environment EnvironmentConfig

	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	Supabase       SupabaseConfig
	Webhook        WebhookConfig
	GoogleCalendar GoogleCalendarConfig
}

type EnvironmentConfig struct {
	Name model.Environment
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// SupabaseConfig points at the hosted store and auth service.
type SupabaseConfig struct {
	URL       string
	AnonKey   string
	JWTSecret string // verifies session tokens locally
}

// WebhookConfig configures the enrichment webhook pipeline.
type WebhookConfig struct {
	URL             string
	GroqAPIKey      string // forwarded to the workflow's language model
	GroqModel       string
	SettleDelay     time.Duration // wait before refetch on an ambiguous reply
	RateLimitPerMin int           // submissions per user per minute, 0 disables
}

type GoogleCalendarConfig struct {
	CredentialsPath string
	CalendarID      string
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	cfg.Environment.Name = model.Environment(viper.GetString("environment.name"))
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	cfg.Supabase.URL = viper.GetString("supabase.url")
	cfg.Supabase.AnonKey = viper.GetString("supabase.anon_key")
	cfg.Supabase.JWTSecret = viper.GetString("supabase.jwt_secret")
	if url := viper.GetString("supabase_url"); url != "" {
		cfg.Supabase.URL = url
	}
	if key := viper.GetString("supabase_anon_key"); key != "" {
		cfg.Supabase.AnonKey = key
	}
	if secret := viper.GetString("supabase_jwt_secret"); secret != "" {
		cfg.Supabase.JWTSecret = secret
	}

	cfg.Webhook.URL = viper.GetString("webhook.url")
	cfg.Webhook.GroqAPIKey = viper.GetString("webhook.groq_api_key")
	cfg.Webhook.GroqModel = viper.GetString("webhook.groq_model")
	cfg.Webhook.SettleDelay = viper.GetDuration("webhook.settle_delay")
	cfg.Webhook.RateLimitPerMin = viper.GetInt("webhook.rate_limit_per_min")
	if url := viper.GetString("webhook_url"); url != "" {
		cfg.Webhook.URL = url
	}
	if key := viper.GetString("groq_api_key"); key != "" {
		cfg.Webhook.GroqAPIKey = key
	}

	cfg.GoogleCalendar.CredentialsPath = viper.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.CalendarID = viper.GetString("google_calendar.calendar_id")

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate fails fast on missing required settings so a misdeployed
// service dies at startup with an actionable message, not on first request.
func (cfg *Config) validate() error {
	if cfg.Supabase.URL == "" {
		return fmt.Errorf("supabase.url is required (or set SUPABASE_URL)")
	}
	if cfg.Supabase.AnonKey == "" {
		return fmt.Errorf("supabase.anon_key is required (or set SUPABASE_ANON_KEY)")
	}
	if cfg.Supabase.JWTSecret == "" {
		return fmt.Errorf("supabase.jwt_secret is required (or set SUPABASE_JWT_SECRET)")
	}
	if cfg.Webhook.URL == "" {
		return fmt.Errorf("webhook.url is required (or set WEBHOOK_URL)")
	}
	return nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("webhook.settle_delay", "2s")
	viper.SetDefault("webhook.rate_limit_per_min", 60)
	viper.SetDefault("webhook.groq_model", "llama-3.1-8b-instant")
	viper.SetDefault("google_calendar.calendar_id", "primary")
}
