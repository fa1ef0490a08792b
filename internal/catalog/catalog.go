package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/SergeyBogomolovv/prontix-store/internal/entities"
	"github.com/shopspring/decimal"
)

type document struct {
	Niches   []niche   `json:"niches"`
	Products []product `json:"products"`
}

type niche struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Desc string `json:"desc"`
}

type product struct {
	Slug      string          `json:"slug"`
	Title     string          `json:"title"`
	Price     decimal.Decimal `json:"price"`
	Niche     string          `json:"niche"`
	File      string          `json:"file"`
	FileName  string          `json:"fileName"`
	Previews  []string        `json:"previews"`
	ShortDesc string          `json:"shortDesc"`
	LongDesc  string          `json:"longDesc"`
	Format    string          `json:"format"`
	WhatsIn   []string        `json:"whatsIn"`
}

// FileCatalog каталог товаров из JSON файла. Файл перечитывается на каждый вызов,
// так что правки каталога видны без перезапуска, а каждый вызов видит целостный снимок.
type FileCatalog struct {
	logger *slog.Logger
	path   string
}

func NewFileCatalog(logger *slog.Logger, path string) *FileCatalog {
	return &FileCatalog{
		logger: logger.With(slog.String("catalog", path)),
		path:   path,
	}
}

func (c *FileCatalog) Niches(ctx context.Context) ([]entities.Niche, error) {
	doc, err := c.load(ctx)
	if err != nil {
		return nil, err
	}

	res := make([]entities.Niche, 0, len(doc.Niches))
	for _, n := range doc.Niches {
		res = append(res, entities.Niche{ID: n.ID, Name: n.Name, Description: n.Desc})
	}
	return res, nil
}

// Products возвращает товары ниши, либо все товары, если niche пустая.
func (c *FileCatalog) Products(ctx context.Context, niche string) ([]entities.Product, error) {
	doc, err := c.load(ctx)
	if err != nil {
		return nil, err
	}

	res := make([]entities.Product, 0, len(doc.Products))
	for _, p := range doc.Products {
		if niche != "" && p.Niche != niche {
			continue
		}
		res = append(res, p.toEntity())
	}
	return res, nil
}

func (c *FileCatalog) ProductBySlug(ctx context.Context, slug string) (entities.Product, error) {
	doc, err := c.load(ctx)
	if err != nil {
		return entities.Product{}, err
	}

	for _, p := range doc.Products {
		if p.Slug == slug {
			return p.toEntity(), nil
		}
	}
	return entities.Product{}, entities.ErrProductNotFound
}

func (c *FileCatalog) load(ctx context.Context) (document, error) {
	if err := ctx.Err(); err != nil {
		return document{}, err
	}

	data, err := os.ReadFile(c.path)
	if errors.Is(err, fs.ErrNotExist) {
		c.logger.WarnContext(ctx, "catalog file not found, serving empty catalog")
		return document{}, nil
	}
	if err != nil {
		return document{}, fmt.Errorf("failed to read catalog: %w", err)
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		c.logger.ErrorContext(ctx, "catalog file is corrupt, serving empty catalog", slog.Any("error", err))
		return document{}, nil
	}
	return doc, nil
}

func (p product) toEntity() entities.Product {
	return entities.Product{
		Slug:      p.Slug,
		Title:     p.Title,
		Price:     p.Price,
		Niche:     p.Niche,
		File:      p.File,
		FileName:  p.FileName,
		Previews:  p.Previews,
		ShortDesc: p.ShortDesc,
		LongDesc:  p.LongDesc,
		Format:    p.Format,
		WhatsIn:   p.WhatsIn,
	}
}
