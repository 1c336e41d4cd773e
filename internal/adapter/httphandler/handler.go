package httphandler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/niksmo/storefront/internal/core/domain"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	const op = "httphandler.writeJSON"

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to write response body", "op", op, "err", err)
	}
}

func toProduct(p domain.Product) Product {
	return Product{
		ID:               p.ID,
		Slug:             p.Slug,
		Name:             p.Name,
		Brand:            p.Brand,
		Category:         p.Category,
		Type:             p.Type,
		Resolution:       p.Resolution,
		Price:            p.Price,
		OriginalPrice:    p.OriginalPrice,
		DiscountPercent:  p.DiscountPercent(),
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

// toProducts always returns a non-nil slice so empty results render as
// JSON arrays, never null.
func toProducts(ps []domain.Product) []Product {
	out := make([]Product, 0, len(ps))
	for _, p := range ps {
		out = append(out, toProduct(p))
	}
	return out
}

func toCartSummary(s domain.CartSummary) CartSummary {
	items := make([]CartItem, 0, len(s.Items))
	for _, it := range s.Items {
		items = append(items, CartItem{
			Product:   toProduct(it.Product),
			Quantity:  it.Quantity,
			LineTotal: it.LineTotal(),
		})
	}
	return CartSummary{
		SessionID:  s.SessionID,
		Items:      items,
		TotalItems: s.TotalItems,
		Subtotal:   s.Subtotal,
		Tax:        s.Tax,
		Shipping:   s.Shipping,
		GrandTotal: s.GrandTotal,
	}
}
