package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Server struct {
	Port              string `json:"port"`
	RequestTimeoutSec int    `json:"request_timeout_sec"`
	DevLog            bool   `json:"dev_log"`
}

type GoldPrice struct {
	Endpoint        string `json:"endpoint"`
	APIKey          string `json:"api_key"`
	APIHeader       string `json:"api_header"`
	MockPrice       string `json:"mock_price"`
	CacheTTLSeconds int    `json:"cache_ttl_sec"`
}

type Catalog struct {
	Path string `json:"path"`
}

type Config struct {
	Server    Server    `json:"server"`
	GoldPrice GoldPrice `json:"gold_price"`
	Catalog   Catalog   `json:"catalog"`
}

func Default() Config {
	return Config{
		Server: Server{Port: "4000", RequestTimeoutSec: 10},
		GoldPrice: GoldPrice{
			APIHeader:       "X-API-KEY",
			CacheTTLSeconds: 300,
		},
		Catalog: Catalog{Path: "data/products.json"},
	}
}

// Load reads JSON config from path. If path is empty or the file does not
// exist, it returns defaults. A .env file is honored when present, and
// environment variables override select fields for secrecy.
func Load(path string) (Config, error) {
	_ = godotenv.Load()

	cfg := Default()
	if path == "" {
		if _, err := os.Stat("config.json"); err == nil {
			path = "config.json"
		}
	}
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return cfg, fmt.Errorf("read config: %w", err)
		}
		if err == nil {
			if err := json.Unmarshal(b, &cfg); err != nil {
				return cfg, fmt.Errorf("parse config: %w", err)
			}
		}
	}
	applyEnv(&cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("PORT"); v != "" {
		cfg.Server.Port = v
	}
	if v := os.Getenv("REQUEST_TIMEOUT_SEC"); v != "" {
		var x int
		fmt.Sscanf(v, "%d", &x)
		if x > 0 {
			cfg.Server.RequestTimeoutSec = x
		}
	}
	if v := os.Getenv("DEV_LOG"); v != "" {
		cfg.Server.DevLog = parseBool(v, cfg.Server.DevLog)
	}
	if v := os.Getenv("GOLD_PRICE_API_URL"); v != "" {
		cfg.GoldPrice.Endpoint = v
	}
	if v := os.Getenv("GOLD_PRICE_API_KEY"); v != "" {
		cfg.GoldPrice.APIKey = v
	}
	if v := os.Getenv("GOLD_PRICE_API_HEADER"); v != "" {
		cfg.GoldPrice.APIHeader = v
	}
	// MOCK_GOLD_PRICE wins over GOLD_PRICE_FALLBACK when both are set.
	if v := os.Getenv("GOLD_PRICE_FALLBACK"); v != "" {
		cfg.GoldPrice.MockPrice = v
	}
	if v := os.Getenv("MOCK_GOLD_PRICE"); v != "" {
		cfg.GoldPrice.MockPrice = v
	}
	if v := os.Getenv("GOLD_CACHE_TTL_SEC"); v != "" {
		var x int
		fmt.Sscanf(v, "%d", &x)
		if x > 0 {
			cfg.GoldPrice.CacheTTLSeconds = x
		}
	}
	if v := os.Getenv("PRODUCTS_FILE"); v != "" {
		cfg.Catalog.Path = v
	}
}

func parseBool(v string, def bool) bool {
	switch strings.ToLower(v) {
	case "1", "true", "yes", "y":
		return true
	case "0", "false", "no", "n":
		return false
	}
	return def
}
