package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.SMTPHost != "smtp.gmail.com" || cfg.SMTPPort != "587" {
		t.Errorf("smtp defaults: got %s:%s", cfg.SMTPHost, cfg.SMTPPort)
	}
}

func TestLoad_FileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "portfolio.yml")
	data := "port: \"9000\"\nsmtp_user: file@example.com\nallowed_origins:\n  - https://a.example\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("SMTP_USER", "env@example.com")
	t.Setenv("SMTP_PASS", "secret")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "9000" {
		t.Errorf("Port: got %q, want 9000", cfg.Port)
	}
	if cfg.SMTPUser != "env@example.com" {
		t.Errorf("SMTPUser: got %q, env should win", cfg.SMTPUser)
	}
	if !cfg.SMTPConfigured() {
		t.Error("SMTPConfigured: got false")
	}
	if len(cfg.AllowedOrigins) != 1 || cfg.AllowedOrigins[0] != "https://a.example" {
		t.Errorf("AllowedOrigins: got %v", cfg.AllowedOrigins)
	}
}

func TestLoad_LegacyEmailVars(t *testing.T) {
	t.Setenv("EMAIL_USER", "legacy@example.com")
	t.Setenv("EMAIL_PASS", "pw")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.SMTPUser != "legacy@example.com" || cfg.SMTPPass != "pw" {
		t.Errorf("legacy vars not mapped: user=%q pass=%q", cfg.SMTPUser, cfg.SMTPPass)
	}
}

func TestLoad_OriginsFromEnvList(t *testing.T) {
	t.Setenv("ALLOWED_ORIGINS", "https://a.example, https://b.example")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(cfg.AllowedOrigins) != 2 || cfg.AllowedOrigins[1] != "https://b.example" {
		t.Errorf("AllowedOrigins: got %v", cfg.AllowedOrigins)
	}
}

func TestValidate_RejectsBadMode(t *testing.T) {
	cfg := Default()
	cfg.GinMode = "production"
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for invalid gin mode")
	}
}
