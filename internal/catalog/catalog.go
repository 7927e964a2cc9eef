// Package catalog supplies the raw product records the shop enriches.
package catalog

import (
	"context"
	"encoding/json"
	"os"

	"github.com/rotisserie/eris"
)

// Product is a raw catalog record. PopularityScore is on a 0-1 scale,
// Weight is grams, Images maps a variant name (e.g. "yellow") to an
// image URL. Names are display identifiers and not guaranteed unique.
type Product struct {
	Name            string            `json:"name"`
	PopularityScore float64           `json:"popularityScore"`
	Weight          float64           `json:"weight"`
	Images          map[string]string `json:"images"`
}

// Source supplies the full product list. Implementations are read-only.
type Source interface {
	Products(ctx context.Context) ([]Product, error)
}

// FileSource reads the catalog from a JSON document on disk. The file is
// re-read on every call so edits show up without a restart.
type FileSource struct {
	Path string
}

func NewFileSource(path string) *FileSource { return &FileSource{Path: path} }

func (s *FileSource) Products(ctx context.Context) ([]Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	b, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, eris.Wrap(err, "read catalog")
	}
	var out []Product
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, eris.Wrap(err, "parse catalog")
	}
	return out, nil
}
