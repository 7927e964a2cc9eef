// Package shop enriches the raw catalog with gold-derived prices and
// popularity ratings.
package shop

import (
	"context"

	"golang.org/x/sync/errgroup"

	"goldshop/internal/catalog"
	"goldshop/internal/pricing"
)

// GoldSource supplies the current gold spot price.
type GoldSource interface {
	Spot(ctx context.Context) (float64, error)
}

// Product is a catalog record enriched with its computed price and rating.
// It is created fresh per request and never persisted.
type Product struct {
	catalog.Product
	Price            float64 `json:"price"`
	PopularityRating float64 `json:"popularityRating"`
}

// Service orchestrates catalog enrichment.
type Service struct {
	Catalog catalog.Source
	Gold    GoldSource
}

func New(src catalog.Source, gold GoldSource) *Service {
	return &Service{Catalog: src, Gold: gold}
}

// ListProducts fetches the catalog and the spot price concurrently, enriches
// every record with the one shared spot snapshot, and applies the filters in
// catalog order. Invalid filters fail before any fetch starts; either fetch
// failing fails the whole call with no partial results.
func (s *Service) ListProducts(ctx context.Context, f Filters) ([]Product, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}

	var (
		products []catalog.Product
		spot     float64
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		products, err = s.Catalog.Products(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		spot, err = s.Gold.Spot(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make([]Product, 0, len(products))
	for _, p := range products {
		price := pricing.Price(p.PopularityScore, p.Weight, spot)
		if !f.matches(p.PopularityScore, price) {
			continue
		}
		out = append(out, Product{
			Product:          p,
			Price:            price,
			PopularityRating: pricing.Rating(p.PopularityScore),
		})
	}
	return out, nil
}
