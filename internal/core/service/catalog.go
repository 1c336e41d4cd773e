package service

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
)

var _ port.CatalogViewer = (*CatalogService)(nil)

const (
	maxFeatured = 8
	maxRelated  = 4
)

// CatalogService answers catalog browsing queries over an immutable
// product source. All methods are pure reads.
type CatalogService struct {
	catalog port.CatalogProvider
}

func NewCatalogService(catalog port.CatalogProvider) CatalogService {
	return CatalogService{catalog}
}

// QueryProducts returns the products matching every non-empty filter
// criterion, ordered by the requested sort key. The result is never nil;
// filters that match nothing, including unknown categories, yield an
// empty slice.
func (s CatalogService) QueryProducts(
	ctx context.Context, filters domain.FilterState,
) ([]domain.Product, error) {
	const op = "CatalogService.QueryProducts"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	result := make([]domain.Product, 0)
	for _, p := range s.catalog.Products() {
		if filters.Matches(p) {
			result = append(result, p)
		}
	}
	sortProducts(result, filters.SortBy)
	return result, nil
}

// sortProducts orders ps in place. Sorts are stable: equal keys keep
// their relative catalog order. Unknown keys fall back to newest.
func sortProducts(ps []domain.Product, key domain.SortKey) {
	switch key {
	case domain.SortPriceAsc:
		slices.SortStableFunc(ps, func(a, b domain.Product) int {
			return cmp.Compare(a.Price, b.Price)
		})
	case domain.SortPriceDesc:
		slices.SortStableFunc(ps, func(a, b domain.Product) int {
			return cmp.Compare(b.Price, a.Price)
		})
	case domain.SortBestSelling:
		slices.SortStableFunc(ps, func(a, b domain.Product) int {
			return boolRank(b.BestSelling) - boolRank(a.BestSelling)
		})
	default:
		slices.SortStableFunc(ps, func(a, b domain.Product) int {
			return b.CreatedAt.Compare(a.CreatedAt)
		})
	}
}

func boolRank(v bool) int {
	if v {
		return 1
	}
	return 0
}

func (s CatalogService) ProductBySlug(
	ctx context.Context, slug string,
) (domain.Product, error) {
	const op = "CatalogService.ProductBySlug"

	if err := ctx.Err(); err != nil {
		return domain.Product{}, fmt.Errorf("%s: %w", op, err)
	}

	p, ok := s.catalog.ProductBySlug(slug)
	if !ok {
		return domain.Product{}, fmt.Errorf(
			"%s: %q: %w", op, slug, domain.ErrProductNotFound,
		)
	}
	return p, nil
}

// RelatedProducts returns up to four products sharing the category of the
// product behind slug, excluding the product itself.
func (s CatalogService) RelatedProducts(
	ctx context.Context, slug string,
) ([]domain.Product, error) {
	const op = "CatalogService.RelatedProducts"

	p, err := s.ProductBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	related := make([]domain.Product, 0, maxRelated)
	for _, c := range s.catalog.Products() {
		if c.Category == p.Category && c.ID != p.ID {
			related = append(related, c)
			if len(related) == maxRelated {
				break
			}
		}
	}
	return related, nil
}

// FeaturedProducts returns up to eight products carrying the featured
// flag, in catalog order.
func (s CatalogService) FeaturedProducts(
	ctx context.Context,
) ([]domain.Product, error) {
	const op = "CatalogService.FeaturedProducts"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	featured := make([]domain.Product, 0, maxFeatured)
	for _, p := range s.catalog.Products() {
		if p.Featured {
			featured = append(featured, p)
			if len(featured) == maxFeatured {
				break
			}
		}
	}
	return featured, nil
}

// Categories derives the category tiles from the catalog itself: one
// entry per distinct category with its product count, sorted by id.
func (s CatalogService) Categories(
	ctx context.Context,
) ([]domain.CategorySummary, error) {
	const op = "CatalogService.Categories"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	counts := make(map[string]int)
	for _, p := range s.catalog.Products() {
		counts[p.Category]++
	}

	summaries := make([]domain.CategorySummary, 0, len(counts))
	for id, n := range counts {
		summaries = append(summaries, domain.CategorySummary{
			ID:    id,
			Name:  categoryName(id),
			Count: n,
		})
	}
	slices.SortFunc(summaries, func(a, b domain.CategorySummary) int {
		return strings.Compare(a.ID, b.ID)
	})
	return summaries, nil
}

// categoryName turns a category id like "wifi-cameras" into a display
// name like "Wifi Cameras".
func categoryName(id string) string {
	words := strings.Split(id, "-")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// Brands lists the distinct brands present in the catalog, sorted.
func (s CatalogService) Brands(ctx context.Context) ([]string, error) {
	const op = "CatalogService.Brands"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	seen := make(map[string]struct{})
	brands := make([]string, 0)
	for _, p := range s.catalog.Products() {
		if _, ok := seen[p.Brand]; ok {
			continue
		}
		seen[p.Brand] = struct{}{}
		brands = append(brands, p.Brand)
	}
	slices.Sort(brands)
	return brands, nil
}
