package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaults(t *testing.T) {
	cfg := Default()
	if cfg.Server.Port != "4000" {
		t.Fatalf("default port: %q", cfg.Server.Port)
	}
	if cfg.Server.RequestTimeoutSec != 10 {
		t.Fatalf("default timeout: %d", cfg.Server.RequestTimeoutSec)
	}
	if cfg.GoldPrice.APIHeader != "X-API-KEY" {
		t.Fatalf("default auth header: %q", cfg.GoldPrice.APIHeader)
	}
	if cfg.GoldPrice.CacheTTLSeconds != 300 {
		t.Fatalf("default cache ttl: %d", cfg.GoldPrice.CacheTTLSeconds)
	}
	if cfg.Catalog.Path != "data/products.json" {
		t.Fatalf("default catalog path: %q", cfg.Catalog.Path)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9999")
	t.Setenv("GOLD_PRICE_API_URL", "https://gold.example.com/spot")
	t.Setenv("GOLD_PRICE_API_KEY", "sekret")
	t.Setenv("GOLD_PRICE_API_HEADER", "X-Access-Token")
	t.Setenv("GOLD_CACHE_TTL_SEC", "60")
	t.Setenv("PRODUCTS_FILE", "/tmp/other.json")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.Port != "9999" {
		t.Fatalf("port: %q", cfg.Server.Port)
	}
	if cfg.GoldPrice.Endpoint != "https://gold.example.com/spot" {
		t.Fatalf("endpoint: %q", cfg.GoldPrice.Endpoint)
	}
	if cfg.GoldPrice.APIKey != "sekret" || cfg.GoldPrice.APIHeader != "X-Access-Token" {
		t.Fatalf("auth: %+v", cfg.GoldPrice)
	}
	if cfg.GoldPrice.CacheTTLSeconds != 60 {
		t.Fatalf("ttl: %d", cfg.GoldPrice.CacheTTLSeconds)
	}
	if cfg.Catalog.Path != "/tmp/other.json" {
		t.Fatalf("catalog path: %q", cfg.Catalog.Path)
	}
}

func TestLoad_MockPricePrecedence(t *testing.T) {
	t.Setenv("GOLD_PRICE_FALLBACK", "60")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.GoldPrice.MockPrice != "60" {
		t.Fatalf("fallback alone: %q", cfg.GoldPrice.MockPrice)
	}

	// MOCK_GOLD_PRICE wins when both are set.
	t.Setenv("MOCK_GOLD_PRICE", "75")
	cfg, err = Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.GoldPrice.MockPrice != "75" {
		t.Fatalf("precedence: %q", cfg.GoldPrice.MockPrice)
	}
}

func TestLoad_FileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	body := `{"server": {"port": "8081"}, "gold_price": {"endpoint": "https://file.example.com"}}`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("GOLD_PRICE_API_URL", "https://env.example.com")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.Port != "8081" {
		t.Fatalf("file value lost: %q", cfg.Server.Port)
	}
	// Env overrides the file.
	if cfg.GoldPrice.Endpoint != "https://env.example.com" {
		t.Fatalf("env should win: %q", cfg.GoldPrice.Endpoint)
	}
}

func TestLoad_BadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{`), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("expected parse error")
	}
}
