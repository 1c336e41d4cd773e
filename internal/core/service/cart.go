package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
)

var _ port.CartKeeper = (*CartService)(nil)

// CartService keeps one cart per browsing session. Carts live in memory
// only and vanish with the process; there is deliberately no persistence.
//
// A single session has a single mutator, but sessions arrive on
// concurrent requests, so the registry itself is guarded.
type CartService struct {
	catalog port.CatalogProvider
	pricing domain.Pricing

	mu    sync.RWMutex
	carts map[string]*domain.Cart
}

func NewCartService(
	catalog port.CatalogProvider, pricing domain.Pricing,
) *CartService {
	return &CartService{
		catalog: catalog,
		pricing: pricing,
		carts:   make(map[string]*domain.Cart),
	}
}

// session returns the cart for sessionID, starting a fresh session when
// the id is empty or unknown. The effective id is always returned.
func (s *CartService) session(sessionID string) (*domain.Cart, string) {
	s.mu.RLock()
	cart, ok := s.carts[sessionID]
	s.mu.RUnlock()
	if ok {
		return cart, sessionID
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if sessionID != "" {
		if cart, ok := s.carts[sessionID]; ok {
			return cart, sessionID
		}
	} else {
		sessionID = uuid.NewString()
	}
	cart = domain.NewCart(s.pricing)
	s.carts[sessionID] = cart
	return cart, sessionID
}

func (s *CartService) Cart(
	ctx context.Context, sessionID string,
) (domain.CartSummary, error) {
	const op = "CartService.Cart"

	if err := ctx.Err(); err != nil {
		return domain.CartSummary{}, fmt.Errorf("%s: %w", op, err)
	}

	cart, sid := s.session(sessionID)
	return cart.Summary(sid), nil
}

// AddItem merges quantity into the session's line for productID, looking
// the product up in the catalog. Unknown products are the one rejected
// input: the catalog is the source of truth for what can be sold.
func (s *CartService) AddItem(
	ctx context.Context, sessionID, productID string, quantity int,
) (domain.CartSummary, error) {
	const op = "CartService.AddItem"

	if err := ctx.Err(); err != nil {
		return domain.CartSummary{}, fmt.Errorf("%s: %w", op, err)
	}

	p, ok := s.catalog.ProductByID(productID)
	if !ok {
		return domain.CartSummary{}, fmt.Errorf(
			"%s: %q: %w", op, productID, domain.ErrProductNotFound,
		)
	}

	cart, sid := s.session(sessionID)
	cart.Add(p, quantity)
	return cart.Summary(sid), nil
}

func (s *CartService) UpdateItemQuantity(
	ctx context.Context, sessionID, productID string, quantity int,
) (domain.CartSummary, error) {
	const op = "CartService.UpdateItemQuantity"

	if err := ctx.Err(); err != nil {
		return domain.CartSummary{}, fmt.Errorf("%s: %w", op, err)
	}

	cart, sid := s.session(sessionID)
	cart.SetQuantity(productID, quantity)
	return cart.Summary(sid), nil
}

func (s *CartService) RemoveItem(
	ctx context.Context, sessionID, productID string,
) (domain.CartSummary, error) {
	const op = "CartService.RemoveItem"

	if err := ctx.Err(); err != nil {
		return domain.CartSummary{}, fmt.Errorf("%s: %w", op, err)
	}

	cart, sid := s.session(sessionID)
	cart.Remove(productID)
	return cart.Summary(sid), nil
}

func (s *CartService) ClearCart(
	ctx context.Context, sessionID string,
) (domain.CartSummary, error) {
	const op = "CartService.ClearCart"

	if err := ctx.Err(); err != nil {
		return domain.CartSummary{}, fmt.Errorf("%s: %w", op, err)
	}

	cart, sid := s.session(sessionID)
	cart.Clear()
	return cart.Summary(sid), nil
}
