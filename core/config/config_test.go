package config

import (
	"strings"
	"testing"
)

func validConfig() *Config {
	return &Config{
		Telegram: TelegramConfig{
			Token:            "123:abc",
			ControlChannelID: -100123,
		},
	}
}

func TestNormalizeDefaults(t *testing.T) {
	cfg := validConfig()
	if err := Normalize(cfg); err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if cfg.Telegram.RunMode != RunModeLongpoll {
		t.Fatalf("run mode = %q", cfg.Telegram.RunMode)
	}
	if cfg.Catalog.Path != "catalog.json" {
		t.Fatalf("catalog path = %q", cfg.Catalog.Path)
	}
	if cfg.Invite.LinkTemplate != "https://t.me/%s?start=1" {
		t.Fatalf("invite template = %q", cfg.Invite.LinkTemplate)
	}
	if cfg.Invite.TTLSeconds != 120 {
		t.Fatalf("invite ttl = %d", cfg.Invite.TTLSeconds)
	}
}

func TestNormalizeRequiredFields(t *testing.T) {
	cfg := validConfig()
	cfg.Telegram.Token = ""
	if err := Normalize(cfg); err == nil {
		t.Fatal("expected error for missing token")
	}

	cfg = validConfig()
	cfg.Telegram.ControlChannelID = 0
	if err := Normalize(cfg); err == nil {
		t.Fatal("expected error for missing control channel")
	}
}

func TestNormalizeWebhookMode(t *testing.T) {
	cfg := validConfig()
	cfg.Telegram.RunMode = "webhook"
	if err := Normalize(cfg); err == nil {
		t.Fatal("expected error without webhook settings")
	}

	cfg = validConfig()
	cfg.Telegram.RunMode = "webhook"
	cfg.Webhook = WebhookConfig{URL: "https://bot.example.com", Listen: "0.0.0.0", Port: 8443}
	if err := Normalize(cfg); err != nil {
		t.Fatalf("normalize: %v", err)
	}
}

func TestNormalizeRejectsTemplateWithoutPlaceholder(t *testing.T) {
	cfg := validConfig()
	cfg.Invite.LinkTemplate = "https://t.me/fixed"
	err := Normalize(cfg)
	if err == nil || !strings.Contains(err.Error(), "link_template") {
		t.Fatalf("err = %v", err)
	}
}

func TestNormalizeDatabaseEnabled(t *testing.T) {
	cfg := validConfig()
	cfg.Database.Enabled = true
	if err := Normalize(cfg); err == nil {
		t.Fatal("expected error without database host")
	}

	cfg = validConfig()
	cfg.Database.Enabled = true
	cfg.Database.Host = "localhost"
	cfg.Database.Name = "catalogbot"
	if err := Normalize(cfg); err != nil {
		t.Fatalf("normalize: %v", err)
	}
}

func TestNormalizeRateLimitExclusions(t *testing.T) {
	cfg := validConfig()
	cfg.RateLimit.ExcludeUpdates = []string{"Callback", " message "}
	if err := Normalize(cfg); err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if cfg.RateLimit.ExcludeUpdates[0] != "callback" || cfg.RateLimit.ExcludeUpdates[1] != "message" {
		t.Fatalf("exclusions = %v", cfg.RateLimit.ExcludeUpdates)
	}

	cfg = validConfig()
	cfg.RateLimit.ExcludeUpdates = []string{"inline"}
	if err := Normalize(cfg); err == nil {
		t.Fatal("expected error for unknown exclusion")
	}
}
