package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"goldshop/internal/catalog"
	"goldshop/internal/config"
	"goldshop/internal/goldprice"
	"goldshop/internal/httpx"
	"goldshop/internal/shop"
)

// One-shot CLI: prints the enriched catalog (or just the spot price) to
// stdout. Handy for smoke-testing the upstream config without the server.
func main() {
	var (
		configPath string
		timeout    int
		minPrice   float64
		maxPrice   float64
		minPop     float64
		spotOnly   bool
	)
	flag.StringVar(&configPath, "config", os.Getenv("CONFIG_FILE"), "path to config.json (optional)")
	flag.IntVar(&timeout, "timeout", 0, "request timeout seconds (overrides config)")
	flag.Float64Var(&minPrice, "min-price", 0, "minimum price filter (0 = none)")
	flag.Float64Var(&maxPrice, "max-price", 0, "maximum price filter (0 = none)")
	flag.Float64Var(&minPop, "min-popularity", -1, "minimum popularity filter in [0,1] (-1 = none)")
	flag.BoolVar(&spotOnly, "spot", false, "print only the gold spot price")
	flag.Parse()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if timeout > 0 {
		cfg.Server.RequestTimeoutSec = timeout
	}

	client := httpx.New(time.Duration(cfg.Server.RequestTimeoutSec) * time.Second)
	gold := goldprice.New(goldprice.Config{
		URL:       cfg.GoldPrice.Endpoint,
		APIKey:    cfg.GoldPrice.APIKey,
		APIHeader: cfg.GoldPrice.APIHeader,
		MockPrice: cfg.GoldPrice.MockPrice,
	}, client, goldprice.NewSpotCache(time.Duration(cfg.GoldPrice.CacheTTLSeconds)*time.Second, nil))

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.RequestTimeoutSec+5)*time.Second)
	defer cancel()

	if spotOnly {
		spot, err := gold.Spot(ctx)
		if err != nil {
			log.Fatalf("spot: %v", err)
		}
		fmt.Printf("%.2f\n", spot)
		return
	}

	var filters shop.Filters
	if minPrice > 0 {
		filters.MinPrice = &minPrice
	}
	if maxPrice > 0 {
		filters.MaxPrice = &maxPrice
	}
	if minPop >= 0 {
		filters.MinPopularity = &minPop
	}

	svc := shop.New(catalog.NewFileSource(cfg.Catalog.Path), gold)
	items, err := svc.ListProducts(ctx, filters)
	if err != nil {
		log.Fatalf("list products: %v", err)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(items); err != nil {
		log.Fatalf("encode: %v", err)
	}
}
