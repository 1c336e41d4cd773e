package domain

import (
	"errors"
	"math"
	"time"
)

var ErrProductNotFound = errors.New("product not found")

const (
	TypeIndoor  = "indoor"
	TypeOutdoor = "outdoor"
)

type Product struct {
	ID               string
	Slug             string
	Name             string
	Brand            string
	Category         string
	Type             string
	Resolution       string
	Price            int64
	OriginalPrice    int64 // 0 means no strike-through price
	Rating           float64
	Reviews          int
	InStock          bool
	Description      string
	ShortDescription string
	Image            string
	Specifications   map[string]string
	CreatedAt        time.Time
	Featured         bool
	BestSelling      bool
}

// DiscountPercent reports the rounded percent saved against OriginalPrice.
// Products without an original price, or priced at or above it, yield 0.
func (p Product) DiscountPercent() int {
	if p.OriginalPrice <= p.Price {
		return 0
	}
	saved := float64(p.OriginalPrice-p.Price) / float64(p.OriginalPrice)
	return int(math.Round(saved * 100))
}

type SortKey string

const (
	SortNewest      SortKey = "newest"
	SortPriceAsc    SortKey = "price-asc"
	SortPriceDesc   SortKey = "price-desc"
	SortBestSelling SortKey = "best-selling"
)

// FilterState describes one catalog browsing view. Empty string fields
// impose no constraint; the zero value selects the whole catalog sorted
// by newest.
type FilterState struct {
	Category   string
	Brand      string
	Type       string
	Resolution string
	SortBy     SortKey
}

func (f FilterState) Matches(p Product) bool {
	if f.Category != "" && p.Category != f.Category {
		return false
	}
	if f.Brand != "" && p.Brand != f.Brand {
		return false
	}
	if f.Type != "" && p.Type != f.Type {
		return false
	}
	if f.Resolution != "" && p.Resolution != f.Resolution {
		return false
	}
	return true
}
