package catalog_test

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/SergeyBogomolovv/prontix-store/internal/catalog"
	"github.com/SergeyBogomolovv/prontix-store/internal/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const products = `{
  "niches": [
    {"id": "educacao", "name": "Educação", "desc": "Materiais de estudo"},
    {"id": "design", "name": "Design", "desc": "Templates"}
  ],
  "products": [
    {"slug": "ebook-a", "title": "Ebook A", "price": 19.90, "niche": "educacao", "file": "ebooks/ebook-a.pdf", "previews": ["/img/a.png"]},
    {"slug": "ebook-b", "title": "Ebook B", "price": 9.5, "niche": "educacao", "file": "ebooks/ebook-b.pdf", "fileName": "Ebook B.pdf"},
    {"slug": "kit-c", "title": "Kit C", "price": 49, "niche": "design", "file": "kits/kit-c.zip"}
  ]
}`

func newCatalog(t *testing.T, content string) *catalog.FileCatalog {
	path := filepath.Join(t.TempDir(), "products.json")
	if content != "" {
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return catalog.NewFileCatalog(slog.New(slog.NewTextHandler(io.Discard, nil)), path)
}

func TestFileCatalog_Niches(t *testing.T) {
	c := newCatalog(t, products)

	niches, err := c.Niches(context.Background())
	require.NoError(t, err)
	require.Len(t, niches, 2)
	assert.Equal(t, entities.Niche{ID: "educacao", Name: "Educação", Description: "Materiais de estudo"}, niches[0])
}

func TestFileCatalog_Products(t *testing.T) {
	c := newCatalog(t, products)
	ctx := context.Background()

	all, err := c.Products(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	design, err := c.Products(ctx, "design")
	require.NoError(t, err)
	require.Len(t, design, 1)
	assert.Equal(t, "kit-c", design[0].Slug)

	none, err := c.Products(ctx, "unknown")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestFileCatalog_ProductBySlug(t *testing.T) {
	c := newCatalog(t, products)
	ctx := context.Background()

	p, err := c.ProductBySlug(ctx, "ebook-a")
	require.NoError(t, err)
	assert.Equal(t, "19.90", p.Price.StringFixed(2))
	assert.Equal(t, "ebooks/ebook-a.pdf", p.File)
	assert.Equal(t, "ebook-a.pdf", p.DownloadName())

	p, err = c.ProductBySlug(ctx, "ebook-b")
	require.NoError(t, err)
	assert.Equal(t, "Ebook B.pdf", p.DownloadName())

	_, err = c.ProductBySlug(ctx, "nope")
	assert.ErrorIs(t, err, entities.ErrProductNotFound)
}

func TestFileCatalog_DegradesToEmpty(t *testing.T) {
	ctx := context.Background()

	for name, content := range map[string]string{"missing": "", "corrupt": "{oops"} {
		t.Run(name, func(t *testing.T) {
			c := newCatalog(t, content)

			all, err := c.Products(ctx, "")
			require.NoError(t, err)
			assert.Empty(t, all)

			_, err = c.ProductBySlug(ctx, "ebook-a")
			assert.ErrorIs(t, err, entities.ErrProductNotFound)
		})
	}
}

func TestFileCatalog_CanceledContext(t *testing.T) {
	c := newCatalog(t, products)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.ProductBySlug(ctx, "ebook-a")
	assert.ErrorIs(t, err, context.Canceled)
}
