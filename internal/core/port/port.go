package port

import (
	"context"

	"github.com/niksmo/storefront/internal/core/domain"
)

// CatalogProvider is the outbound port for the static product catalog.
// Implementations are read-only and safe for concurrent use.
type CatalogProvider interface {
	Products() []domain.Product
	ProductByID(id string) (domain.Product, bool)
	ProductBySlug(slug string) (domain.Product, bool)
}

// CatalogViewer is the inbound port the presentation layer queries.
type CatalogViewer interface {
	QueryProducts(context.Context, domain.FilterState) ([]domain.Product, error)
	ProductBySlug(ctx context.Context, slug string) (domain.Product, error)
	RelatedProducts(ctx context.Context, slug string) ([]domain.Product, error)
	FeaturedProducts(context.Context) ([]domain.Product, error)
	Categories(context.Context) ([]domain.CategorySummary, error)
	Brands(context.Context) ([]string, error)
}

// CartKeeper is the inbound port for the session-scoped cart ledger.
// An empty or unknown session id starts a fresh session; the returned
// summary always carries the effective session id.
type CartKeeper interface {
	Cart(ctx context.Context, sessionID string) (domain.CartSummary, error)
	AddItem(ctx context.Context, sessionID, productID string, quantity int) (domain.CartSummary, error)
	UpdateItemQuantity(ctx context.Context, sessionID, productID string, quantity int) (domain.CartSummary, error)
	RemoveItem(ctx context.Context, sessionID, productID string) (domain.CartSummary, error)
	ClearCart(ctx context.Context, sessionID string) (domain.CartSummary, error)
}

// ContentViewer serves the static informational pages.
type ContentViewer interface {
	Services(context.Context) ([]domain.ServiceOffering, error)
	Testimonials(context.Context) ([]domain.Testimonial, error)
	Store(context.Context) (domain.StoreInfo, error)
}

// EnquiryReceiver accepts contact-form submissions.
type EnquiryReceiver interface {
	SubmitEnquiry(context.Context, domain.Enquiry) error
}
