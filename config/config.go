package config

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"
)

var (
	ErrMissingServiceRoleKey = errors.New("SUPABASE_SERVICE_ROLE_KEY is required")
	ErrMissingDatabaseURL    = errors.New("DATABASE_URL is required")
	ErrMissingSupabaseURL    = errors.New("SUPABASE_URL is required")
)

// Config holds all configuration for the application.
// Mapstructure tags are used to map environment variables and config file keys.
type Config struct {
	// Server
	Port      string `mapstructure:"PORT"`
	AppEnv    string `mapstructure:"APP_ENV"`
	PublicURL string `mapstructure:"PUBLIC_URL"`

	// Logging
	LogLevel    string `mapstructure:"LOG_LEVEL"`
	LogEncoding string `mapstructure:"LOG_ENCODING"`

	// Auth provider and database
	SupabaseURL            string `mapstructure:"SUPABASE_URL"`
	SupabaseServiceRoleKey string `mapstructure:"SUPABASE_SERVICE_ROLE_KEY"`
	SupabaseJWTSecret      string `mapstructure:"SUPABASE_JWT_SECRET"` // empty: tokens are checked remotely
	DatabaseURL            string `mapstructure:"DATABASE_URL"`
	RunMigrations          bool   `mapstructure:"RUN_MIGRATIONS"`

	// Access control
	AdminEmails        string `mapstructure:"ADMIN_EMAILS"`         // comma separated
	CORSAllowedOrigins string `mapstructure:"CORS_ALLOWED_ORIGINS"` // comma separated

	// Translation
	TranslationProvider    string `mapstructure:"TRANSLATION_PROVIDER"` // gemini or openai
	GeminiAPIKey           string `mapstructure:"GEMINI_API_KEY"`
	GeminiModel            string `mapstructure:"GEMINI_MODEL"`
	OpenAIKey              string `mapstructure:"OPENAI_API_KEY"`
	OpenAIModel            string `mapstructure:"OPENAI_MODEL"`
	TranslateRatePerMinute int    `mapstructure:"TRANSLATE_RATE_PER_MINUTE"`

	// Wizard
	WizardSessionTTL time.Duration `mapstructure:"WIZARD_SESSION_TTL"`
}

var defaults = map[string]any{
	"PORT":                      "3001",
	"APP_ENV":                   "development",
	"PUBLIC_URL":                "https://veo3.pt",
	"LOG_LEVEL":                 "info",
	"LOG_ENCODING":              "json",
	"SUPABASE_URL":              "",
	"SUPABASE_SERVICE_ROLE_KEY": "",
	"SUPABASE_JWT_SECRET":       "",
	"DATABASE_URL":              "",
	"RUN_MIGRATIONS":            true,
	"ADMIN_EMAILS":              "",
	"CORS_ALLOWED_ORIGINS":      "https://veo3.pt",
	"TRANSLATION_PROVIDER":      "gemini",
	"GEMINI_API_KEY":            "",
	"GEMINI_MODEL":              "gemini-1.5-pro",
	"OPENAI_API_KEY":            "",
	"OPENAI_MODEL":              "gpt-4o",
	"TRANSLATE_RATE_PER_MINUTE": 10,
	"WIZARD_SESSION_TTL":        "30m",
}

// LoadConfig reads configuration from config.yaml in path (optional) and
// environment variables. Environment variables win.
func LoadConfig(path string) (Config, error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	// Defaults also register every key so AutomaticEnv picks them up on Unmarshal.
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("error reading config file: %w", err)
		}
		log.Println("Config file ('config.yaml') not found, relying solely on environment variables.")
	} else {
		log.Printf("Using configuration file: %s", v.ConfigFileUsed())
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unable to decode config into struct: %w", err)
	}
	return cfg, nil
}

// Validate reports the settings without which the server must not start.
func (c Config) Validate() error {
	if strings.TrimSpace(c.SupabaseServiceRoleKey) == "" {
		return ErrMissingServiceRoleKey
	}
	if strings.TrimSpace(c.SupabaseURL) == "" {
		return ErrMissingSupabaseURL
	}
	if strings.TrimSpace(c.DatabaseURL) == "" {
		return ErrMissingDatabaseURL
	}
	return nil
}

// Addr is the listen address for Port.
func (c Config) Addr() string {
	if strings.HasPrefix(c.Port, ":") {
		return c.Port
	}
	return ":" + c.Port
}

func (c Config) IsProduction() bool {
	return strings.EqualFold(c.AppEnv, "production")
}

func (c Config) AdminEmailList() []string {
	return splitList(c.AdminEmails)
}

func (c Config) CORSOrigins() []string {
	return splitList(c.CORSAllowedOrigins)
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
