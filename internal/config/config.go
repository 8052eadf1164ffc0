// Package config loads server settings from an optional YAML file and the
// environment. A .env file in the working directory is loaded first.
package config

import (
	"fmt"
	"os"
	"strings"

	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config holds everything the server needs.
type Config struct {
	Port           string   `koanf:"port"`
	GinMode        string   `koanf:"gin_mode"`
	DBPath         string   `koanf:"db_path"`
	ContentFile    string   `koanf:"content_file"`
	AllowedOrigins []string `koanf:"allowed_origins"`

	SMTPHost string `koanf:"smtp_host"`
	SMTPPort string `koanf:"smtp_port"`
	SMTPUser string `koanf:"smtp_user"`
	SMTPPass string `koanf:"smtp_pass"`
	ToEmail  string `koanf:"to_email"`

	AdminUsername string `koanf:"admin_username"`
	AdminPassword string `koanf:"admin_password"`
}

// Default returns development defaults.
func Default() *Config {
	return &Config{
		Port:           "8080",
		GinMode:        "debug",
		DBPath:         "data/portfolio.db",
		AllowedOrigins: []string{"*"},
		SMTPHost:       "smtp.gmail.com",
		SMTPPort:       "587",
		AdminUsername:  "admin",
		AdminPassword:  "admin123",
	}
}

// envKeys maps accepted environment variables to config keys. EMAIL_USER
// and EMAIL_PASS are older names for the SMTP account.
var envKeys = map[string]string{
	"PORT":            "port",
	"GIN_MODE":        "gin_mode",
	"DB_PATH":         "db_path",
	"CONTENT_FILE":    "content_file",
	"ALLOWED_ORIGINS": "allowed_origins",
	"SMTP_HOST":       "smtp_host",
	"SMTP_PORT":       "smtp_port",
	"SMTP_USER":       "smtp_user",
	"SMTP_PASS":       "smtp_pass",
	"EMAIL_USER":      "smtp_user",
	"EMAIL_PASS":      "smtp_pass",
	"TO_EMAIL":        "to_email",
	"ADMIN_USERNAME":  "admin_username",
	"ADMIN_PASSWORD":  "admin_password",
}

// Load reads path (skipped when it does not exist) and overlays the
// environment.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	cfg := Default()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("reading config %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("accessing config %s: %w", path, err)
		}
	}

	// SMTP_* wins over EMAIL_* when both are set.
	if err := k.Load(env.Provider("EMAIL_", ".", func(s string) string {
		return envKeys[s]
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}
	if err := k.Load(env.Provider("", ".", mapEnv), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	if s, ok := k.Get("allowed_origins").(string); ok {
		cfg.AllowedOrigins = splitList(s)
	}
	return cfg, cfg.Validate()
}

// mapEnv turns a recognised variable into its key. Anything else, and the
// EMAIL_* aliases already loaded, map to "" and are dropped by the provider.
func mapEnv(s string) string {
	if strings.HasPrefix(s, "EMAIL_") {
		return ""
	}
	return envKeys[s]
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// Validate checks the values that would make the server fail later.
func (c *Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("port is required")
	}
	switch c.GinMode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("invalid gin_mode %q: must be debug, release or test", c.GinMode)
	}
	if c.DBPath == "" {
		return fmt.Errorf("db_path is required")
	}
	return nil
}

// SMTPConfigured reports whether outgoing mail can be authenticated.
func (c *Config) SMTPConfigured() bool {
	return c.SMTPUser != "" && c.SMTPPass != ""
}
