package catalog

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func writeCatalog(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "products.json")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write catalog: %v", err)
	}
	return path
}

func TestFileSource_ReadsRecords(t *testing.T) {
	path := writeCatalog(t, `[
		{"name": "Engagement Ring 1", "popularityScore": 0.85, "weight": 2.1,
		 "images": {"yellow": "https://cdn.example.com/1-y.jpg", "rose": "https://cdn.example.com/1-r.jpg"}},
		{"name": "Engagement Ring 2", "popularityScore": 0.51, "weight": 3.4,
		 "images": {"yellow": "https://cdn.example.com/2-y.jpg"}}
	]`)

	src := NewFileSource(path)
	out, err := src.Products(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("want 2 records, got %d", len(out))
	}
	got := out[0]
	if got.Name != "Engagement Ring 1" || got.PopularityScore != 0.85 || got.Weight != 2.1 {
		t.Fatalf("unexpected record: %+v", got)
	}
	if got.Images["rose"] != "https://cdn.example.com/1-r.jpg" {
		t.Fatalf("unexpected images: %+v", got.Images)
	}
}

func TestFileSource_PicksUpEdits(t *testing.T) {
	path := writeCatalog(t, `[{"name": "A", "popularityScore": 0.5, "weight": 1, "images": {}}]`)
	src := NewFileSource(path)

	if out, err := src.Products(context.Background()); err != nil || len(out) != 1 {
		t.Fatalf("first read: %v, %d records", err, len(out))
	}

	if err := os.WriteFile(path, []byte(`[]`), 0o644); err != nil {
		t.Fatalf("rewrite: %v", err)
	}
	if out, err := src.Products(context.Background()); err != nil || len(out) != 0 {
		t.Fatalf("second read: %v, %d records", err, len(out))
	}
}

func TestFileSource_MissingFile(t *testing.T) {
	src := NewFileSource(filepath.Join(t.TempDir(), "nope.json"))
	if _, err := src.Products(context.Background()); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestFileSource_MalformedJSON(t *testing.T) {
	src := NewFileSource(writeCatalog(t, `{"not": "an array"`))
	if _, err := src.Products(context.Background()); err == nil {
		t.Fatalf("expected error for malformed JSON")
	}
}
