package httphandler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
)

// SessionHeader carries the cart session id. Responses always echo the
// effective id so a first request without one adopts the issued session.
const SessionHeader = "X-Session-ID"

// GET    /v1/cart (200 OK)
// POST   /v1/cart/items JSON {"product_id", "quantity"} (200 OK, 400 Bad request)
// PATCH  /v1/cart/items/{productID} JSON {"quantity"} (200 OK, 400 Bad request)
// DELETE /v1/cart/items/{productID} (200 OK)
// DELETE /v1/cart (200 OK)

type CartHandler struct {
	carts port.CartKeeper
}

func RegisterCart(mux *http.ServeMux, carts port.CartKeeper) {
	h := CartHandler{carts}
	mux.HandleFunc("GET /v1/cart", h.GetCart)
	mux.HandleFunc("POST /v1/cart/items", h.PostItem)
	mux.HandleFunc("PATCH /v1/cart/items/{productID}", h.PatchItem)
	mux.HandleFunc("DELETE /v1/cart/items/{productID}", h.DeleteItem)
	mux.HandleFunc("DELETE /v1/cart", h.DeleteCart)
}

func (h CartHandler) writeSummary(
	w http.ResponseWriter, s domain.CartSummary,
) {
	w.Header().Set(SessionHeader, s.SessionID)
	writeJSON(w, http.StatusOK, toCartSummary(s))
}

func (h CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	const op = "CartHandler.GetCart"
	log := slog.With("op", op)

	s, err := h.carts.Cart(r.Context(), r.Header.Get(SessionHeader))
	if err != nil {
		http.Error(w, "failed to read cart", http.StatusInternalServerError)
		log.Error("failed to read cart", "err", err)
		return
	}
	h.writeSummary(w, s)
}

func (h CartHandler) PostItem(w http.ResponseWriter, r *http.Request) {
	const op = "CartHandler.PostItem"
	log := slog.With("op", op)

	var req AddItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON data", http.StatusBadRequest)
		log.Warn("failed to parse JSON", "err", err)
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	s, err := h.carts.AddItem(
		r.Context(), r.Header.Get(SessionHeader), req.ProductID, req.Quantity,
	)
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			http.Error(w, "unknown product", http.StatusBadRequest)
			return
		}
		http.Error(w, "failed to add item", http.StatusInternalServerError)
		log.Error("failed to add item", "productID", req.ProductID, "err", err)
		return
	}

	log.Info("item added", "productID", req.ProductID, "qty", req.Quantity)
	h.writeSummary(w, s)
}

func (h CartHandler) PatchItem(w http.ResponseWriter, r *http.Request) {
	const op = "CartHandler.PatchItem"
	log := slog.With("op", op)

	var req UpdateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON data", http.StatusBadRequest)
		log.Warn("failed to parse JSON", "err", err)
		return
	}

	productID := r.PathValue("productID")
	s, err := h.carts.UpdateItemQuantity(
		r.Context(), r.Header.Get(SessionHeader), productID, req.Quantity,
	)
	if err != nil {
		http.Error(w, "failed to update item", http.StatusInternalServerError)
		log.Error("failed to update item", "productID", productID, "err", err)
		return
	}
	h.writeSummary(w, s)
}

func (h CartHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	const op = "CartHandler.DeleteItem"
	log := slog.With("op", op)

	productID := r.PathValue("productID")
	s, err := h.carts.RemoveItem(
		r.Context(), r.Header.Get(SessionHeader), productID,
	)
	if err != nil {
		http.Error(w, "failed to remove item", http.StatusInternalServerError)
		log.Error("failed to remove item", "productID", productID, "err", err)
		return
	}
	h.writeSummary(w, s)
}

func (h CartHandler) DeleteCart(w http.ResponseWriter, r *http.Request) {
	const op = "CartHandler.DeleteCart"
	log := slog.With("op", op)

	s, err := h.carts.ClearCart(r.Context(), r.Header.Get(SessionHeader))
	if err != nil {
		http.Error(w, "failed to clear cart", http.StatusInternalServerError)
		log.Error("failed to clear cart", "err", err)
		return
	}
	h.writeSummary(w, s)
}
