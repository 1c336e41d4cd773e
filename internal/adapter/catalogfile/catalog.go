// Package catalogfile supplies the static, read-only product catalog:
// either the built-in seed or an avro snapshot file produced by the
// catalogmaker tool.
package catalogfile

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
)

var _ port.CatalogProvider = (*Catalog)(nil)

var (
	ErrDuplicateID   = errors.New("duplicate product id")
	ErrDuplicateSlug = errors.New("duplicate product slug")
)

// Catalog is an immutable, indexed product collection. A broken bundle
// (duplicate id or slug) fails construction; it is a build defect, not a
// runtime condition.
type Catalog struct {
	products []domain.Product
	byID     map[string]int
	bySlug   map[string]int
}

func New(ps []domain.Product) (*Catalog, error) {
	const op = "catalogfile.New"

	c := &Catalog{
		products: ps,
		byID:     make(map[string]int, len(ps)),
		bySlug:   make(map[string]int, len(ps)),
	}

	for i, p := range ps {
		if _, ok := c.byID[p.ID]; ok {
			return nil, fmt.Errorf("%s: %q: %w", op, p.ID, ErrDuplicateID)
		}
		if _, ok := c.bySlug[p.Slug]; ok {
			return nil, fmt.Errorf("%s: %q: %w", op, p.Slug, ErrDuplicateSlug)
		}
		c.byID[p.ID] = i
		c.bySlug[p.Slug] = i

		if p.OriginalPrice != 0 && p.OriginalPrice < p.Price {
			slog.Warn("original price below price, discount disabled",
				"product_id", p.ID)
		}
	}
	return c, nil
}

// Products returns the catalog in bundle order. Callers receive a copy
// and may reorder it freely.
func (c *Catalog) Products() []domain.Product {
	ps := make([]domain.Product, len(c.products))
	copy(ps, c.products)
	return ps
}

func (c *Catalog) ProductByID(id string) (domain.Product, bool) {
	i, ok := c.byID[id]
	if !ok {
		return domain.Product{}, false
	}
	return c.products[i], true
}

func (c *Catalog) ProductBySlug(slug string) (domain.Product, bool) {
	i, ok := c.bySlug[slug]
	if !ok {
		return domain.Product{}, false
	}
	return c.products[i], true
}

func (c *Catalog) Len() int {
	return len(c.products)
}
