package entities

import (
	"path"

	"github.com/shopspring/decimal"
)

type Niche struct {
	ID          string
	Name        string
	Description string
}

type Product struct {
	Slug      string
	Title     string
	Price     decimal.Decimal
	Niche     string
	File      string
	FileName  string
	Previews  []string
	ShortDesc string
	LongDesc  string
	Format    string
	WhatsIn   []string
}

// DownloadName имя файла, под которым покупатель получает товар.
func (p Product) DownloadName() string {
	if p.FileName != "" {
		return p.FileName
	}
	return path.Base(p.File)
}
