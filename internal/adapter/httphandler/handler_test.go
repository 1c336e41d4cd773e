package httphandler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/niksmo/storefront/internal/adapter/catalogfile"
	"github.com/niksmo/storefront/internal/adapter/httphandler"
	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog(t *testing.T) *catalogfile.Catalog {
	t.Helper()
	c, err := catalogfile.New([]domain.Product{
		{
			ID: "p1", Slug: "dome-cam", Name: "Dome Cam",
			Brand: "Hikvision", Category: "dome-cameras",
			Type: domain.TypeIndoor, Resolution: "2MP",
			Price: 4000, OriginalPrice: 5000,
			CreatedAt: time.Date(2025, time.January, 2, 0, 0, 0, 0, time.UTC),
			InStock:   true, Featured: true,
		},
		{
			ID: "p2", Slug: "bullet-cam", Name: "Bullet Cam",
			Brand: "CP Plus", Category: "bullet-cameras",
			Type: domain.TypeOutdoor, Resolution: "4MP",
			Price:     2500,
			CreatedAt: time.Date(2025, time.January, 5, 0, 0, 0, 0, time.UTC),
			InStock:   true,
		},
	})
	require.NoError(t, err)
	return c
}

func newTestHandler(t *testing.T) http.Handler {
	t.Helper()
	catalog := testCatalog(t)

	mux := http.NewServeMux()
	httphandler.RegisterProducts(mux, service.NewCatalogService(catalog))
	httphandler.RegisterCart(mux,
		service.NewCartService(catalog, domain.DefaultPricing))

	content := service.NewContentService(
		catalogfile.SeedServices(),
		catalogfile.SeedTestimonials(),
		catalogfile.SeedStore(),
	)
	httphandler.RegisterContent(mux, content, content)

	return httphandler.AllowJSON(mux)
}

func doJSON(
	t *testing.T, h http.Handler, method, target, body string,
	header map[string]string,
) *httptest.ResponseRecorder {
	t.Helper()

	var r *http.Request
	if body == "" {
		r = httptest.NewRequest(method, target, nil)
	} else {
		r = httptest.NewRequest(method, target, strings.NewReader(body))
		r.Header.Set("Content-Type", "application/json")
	}
	for k, v := range header {
		r.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)
	return w
}

func TestGetProducts(t *testing.T) {
	h := newTestHandler(t)

	t.Run("AllProducts", func(t *testing.T) {
		w := doJSON(t, h, http.MethodGet, "/v1/products", "", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var ps []httphandler.Product
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &ps))
		require.Len(t, ps, 2)
		// newest first
		assert.Equal(t, "p2", ps[0].ID)
		assert.Equal(t, 20, ps[1].DiscountPercent)
	})

	t.Run("FilterByBrand", func(t *testing.T) {
		w := doJSON(t, h, http.MethodGet, "/v1/products?brand=Hikvision", "", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var ps []httphandler.Product
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &ps))
		require.Len(t, ps, 1)
		assert.Equal(t, "p1", ps[0].ID)
	})

	t.Run("NoMatchesRendersEmptyArrayNotNull", func(t *testing.T) {
		w := doJSON(t, h, http.MethodGet, "/v1/products?category=drones", "", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "[]", strings.TrimSpace(w.Body.String()))
	})

	t.Run("SortPriceAsc", func(t *testing.T) {
		w := doJSON(t, h, http.MethodGet, "/v1/products?sort=price-asc", "", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var ps []httphandler.Product
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &ps))
		require.Len(t, ps, 2)
		assert.Equal(t, "p2", ps[0].ID)
	})
}

func TestGetProduct(t *testing.T) {
	h := newTestHandler(t)

	t.Run("Found", func(t *testing.T) {
		w := doJSON(t, h, http.MethodGet, "/v1/products/dome-cam", "", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var p httphandler.Product
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &p))
		assert.Equal(t, "p1", p.ID)
		assert.Equal(t, int64(5000), p.OriginalPrice)
	})

	t.Run("NotFound", func(t *testing.T) {
		w := doJSON(t, h, http.MethodGet, "/v1/products/no-such-cam", "", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestCartFlow(t *testing.T) {
	h := newTestHandler(t)

	w := doJSON(t, h, http.MethodPost, "/v1/cart/items",
		`{"product_id":"p1","quantity":1}`, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var sum httphandler.CartSummary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &sum))
	sid := sum.SessionID
	require.NotEmpty(t, sid)
	assert.Equal(t, sid, w.Header().Get(httphandler.SessionHeader))

	// price 4000, qty 1: the canonical totals
	assert.Equal(t, int64(4000), sum.Subtotal)
	assert.Equal(t, int64(720), sum.Tax)
	assert.Equal(t, int64(199), sum.Shipping)
	assert.Equal(t, int64(4919), sum.GrandTotal)

	session := map[string]string{httphandler.SessionHeader: sid}

	t.Run("AddMergesLine", func(t *testing.T) {
		w := doJSON(t, h, http.MethodPost, "/v1/cart/items",
			`{"product_id":"p1","quantity":2}`, session)
		require.Equal(t, http.StatusOK, w.Code)

		var sum httphandler.CartSummary
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &sum))
		require.Len(t, sum.Items, 1)
		assert.Equal(t, 3, sum.Items[0].Quantity)
	})

	t.Run("PatchToZeroRemoves", func(t *testing.T) {
		w := doJSON(t, h, http.MethodPatch, "/v1/cart/items/p1",
			`{"quantity":0}`, session)
		require.Equal(t, http.StatusOK, w.Code)

		var sum httphandler.CartSummary
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &sum))
		assert.Empty(t, sum.Items)
	})

	t.Run("UnknownProductRejected", func(t *testing.T) {
		w := doJSON(t, h, http.MethodPost, "/v1/cart/items",
			`{"product_id":"ghost","quantity":1}`, session)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("ClearCart", func(t *testing.T) {
		w := doJSON(t, h, http.MethodDelete, "/v1/cart", "", session)
		require.Equal(t, http.StatusOK, w.Code)

		var sum httphandler.CartSummary
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &sum))
		assert.Empty(t, sum.Items)
		assert.Equal(t, int64(199), sum.Shipping)
		assert.Equal(t, int64(199), sum.GrandTotal)
	})
}

func TestContentEndpoints(t *testing.T) {
	h := newTestHandler(t)

	t.Run("Services", func(t *testing.T) {
		w := doJSON(t, h, http.MethodGet, "/v1/services", "", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var ss []httphandler.ServiceOffering
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &ss))
		assert.NotEmpty(t, ss)
	})

	t.Run("EnquiryAccepted", func(t *testing.T) {
		w := doJSON(t, h, http.MethodPost, "/v1/enquiries",
			`{"name":"Asha","email":"asha@example.com","message":"Need a quote"}`,
			nil)
		assert.Equal(t, http.StatusAccepted, w.Code)
	})

	t.Run("EnquiryMissingFields", func(t *testing.T) {
		w := doJSON(t, h, http.MethodPost, "/v1/enquiries",
			`{"name":"Asha"}`, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAllowJSON(t *testing.T) {
	h := newTestHandler(t)

	r := httptest.NewRequest(http.MethodPost, "/v1/cart/items",
		strings.NewReader("product_id=p1"))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)
	assert.Equal(t, http.StatusUnsupportedMediaType, w.Code)
}
