package httphandler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
)

// GET /v1/products?category=&brand=&type=&resolution=&sort= (200 OK)
// GET /v1/products/{slug} (200 OK, 404 Not found)
// GET /v1/products/{slug}/related (200 OK, 404 Not found)
// GET /v1/featured, /v1/categories, /v1/brands (200 OK)

type ProductsHandler struct {
	viewer port.CatalogViewer
}

func RegisterProducts(mux *http.ServeMux, viewer port.CatalogViewer) {
	h := ProductsHandler{viewer}
	mux.HandleFunc("GET /v1/products", h.GetProducts)
	mux.HandleFunc("GET /v1/products/{slug}", h.GetProduct)
	mux.HandleFunc("GET /v1/products/{slug}/related", h.GetRelated)
	mux.HandleFunc("GET /v1/featured", h.GetFeatured)
	mux.HandleFunc("GET /v1/categories", h.GetCategories)
	mux.HandleFunc("GET /v1/brands", h.GetBrands)
}

func filtersFromQuery(r *http.Request) domain.FilterState {
	q := r.URL.Query()
	return domain.FilterState{
		Category:   q.Get("category"),
		Brand:      q.Get("brand"),
		Type:       q.Get("type"),
		Resolution: q.Get("resolution"),
		SortBy:     domain.SortKey(q.Get("sort")),
	}
}

func (h ProductsHandler) GetProducts(w http.ResponseWriter, r *http.Request) {
	const op = "ProductsHandler.GetProducts"
	log := slog.With("op", op)

	ps, err := h.viewer.QueryProducts(r.Context(), filtersFromQuery(r))
	if err != nil {
		http.Error(w, "failed to query products", http.StatusInternalServerError)
		log.Error("failed to query products", "err", err)
		return
	}
	writeJSON(w, http.StatusOK, toProducts(ps))
}

func (h ProductsHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	const op = "ProductsHandler.GetProduct"
	log := slog.With("op", op)

	slug := r.PathValue("slug")
	p, err := h.viewer.ProductBySlug(r.Context(), slug)
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			http.Error(w, "product not found", http.StatusNotFound)
			return
		}
		http.Error(w, "failed to read product", http.StatusInternalServerError)
		log.Error("failed to read product", "slug", slug, "err", err)
		return
	}
	writeJSON(w, http.StatusOK, toProduct(p))
}

func (h ProductsHandler) GetRelated(w http.ResponseWriter, r *http.Request) {
	const op = "ProductsHandler.GetRelated"
	log := slog.With("op", op)

	slug := r.PathValue("slug")
	ps, err := h.viewer.RelatedProducts(r.Context(), slug)
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			http.Error(w, "product not found", http.StatusNotFound)
			return
		}
		http.Error(w, "failed to read related products",
			http.StatusInternalServerError)
		log.Error("failed to read related products", "slug", slug, "err", err)
		return
	}
	writeJSON(w, http.StatusOK, toProducts(ps))
}

func (h ProductsHandler) GetFeatured(w http.ResponseWriter, r *http.Request) {
	const op = "ProductsHandler.GetFeatured"
	log := slog.With("op", op)

	ps, err := h.viewer.FeaturedProducts(r.Context())
	if err != nil {
		http.Error(w, "failed to read featured products",
			http.StatusInternalServerError)
		log.Error("failed to read featured products", "err", err)
		return
	}
	writeJSON(w, http.StatusOK, toProducts(ps))
}

func (h ProductsHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	const op = "ProductsHandler.GetCategories"
	log := slog.With("op", op)

	cs, err := h.viewer.Categories(r.Context())
	if err != nil {
		http.Error(w, "failed to read categories",
			http.StatusInternalServerError)
		log.Error("failed to read categories", "err", err)
		return
	}

	out := make([]Category, 0, len(cs))
	for _, c := range cs {
		out = append(out, Category{ID: c.ID, Name: c.Name, Count: c.Count})
	}
	writeJSON(w, http.StatusOK, out)
}

func (h ProductsHandler) GetBrands(w http.ResponseWriter, r *http.Request) {
	const op = "ProductsHandler.GetBrands"
	log := slog.With("op", op)

	bs, err := h.viewer.Brands(r.Context())
	if err != nil {
		http.Error(w, "failed to read brands", http.StatusInternalServerError)
		log.Error("failed to read brands", "err", err)
		return
	}
	if bs == nil {
		bs = []string{}
	}
	writeJSON(w, http.StatusOK, bs)
}
