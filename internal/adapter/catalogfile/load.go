package catalogfile

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/pkg/schema"
)

// Load reads an avro catalog snapshot from path.
func Load(path string) (*Catalog, error) {
	const op = "catalogfile.Load"
	log := slog.With("op", op)

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			log.Error("failed to close snapshot file", "err", err)
		}
	}()

	records, err := schema.ReadCatalogV1(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	ps := make([]domain.Product, 0, len(records))
	for _, r := range records {
		ps = append(ps, toDomain(r))
	}

	c, err := New(ps)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("catalog snapshot loaded", "path", path, "nProducts", c.Len())
	return c, nil
}

func toDomain(r schema.ProductV1) domain.Product {
	return domain.Product{
		ID:               r.ID,
		Slug:             r.Slug,
		Name:             r.Name,
		Brand:            r.Brand,
		Category:         r.Category,
		Type:             r.CameraType,
		Resolution:       r.Resolution,
		Price:            r.Price,
		OriginalPrice:    r.OriginalPrice,
		Rating:           r.Rating,
		Reviews:          r.Reviews,
		InStock:          r.InStock,
		Description:      r.Description,
		ShortDescription: r.ShortDescription,
		Image:            r.Image,
		Specifications:   r.Specifications,
		CreatedAt:        r.CreatedAt,
		Featured:         r.Featured,
		BestSelling:      r.BestSelling,
	}
}

// FromDomain converts a product to its snapshot record form. Used by the
// catalogmaker tool when writing seed snapshots.
func FromDomain(p domain.Product) schema.ProductV1 {
	return schema.ProductV1{
		ID:               p.ID,
		Slug:             p.Slug,
		Name:             p.Name,
		Brand:            p.Brand,
		Category:         p.Category,
		CameraType:       p.Type,
		Resolution:       p.Resolution,
		Price:            p.Price,
		OriginalPrice:    p.OriginalPrice,
		Rating:           p.Rating,
		Reviews:          p.Reviews,
		InStock:          p.InStock,
		Description:      p.Description,
		ShortDescription: p.ShortDescription,
		Image:            p.Image,
		Specifications:   p.Specifications,
		CreatedAt:        p.CreatedAt,
		Featured:         p.Featured,
		BestSelling:      p.BestSelling,
	}
}
