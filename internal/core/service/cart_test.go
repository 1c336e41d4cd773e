package service_test

import (
	"context"
	"testing"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCartService() *service.CartService {
	return service.NewCartService(fixtureCatalog(), domain.DefaultPricing)
}

func TestCartServiceSessions(t *testing.T) {
	t.Run("EmptyIDStartsFreshSession", func(t *testing.T) {
		s := newCartService()

		sum, err := s.Cart(t.Context(), "")
		require.NoError(t, err)
		assert.NotEmpty(t, sum.SessionID)
		assert.Empty(t, sum.Items)
	})

	t.Run("SessionIDRoundTrips", func(t *testing.T) {
		s := newCartService()

		first, err := s.AddItem(t.Context(), "", "a", 1)
		require.NoError(t, err)

		second, err := s.AddItem(t.Context(), first.SessionID, "a", 2)
		require.NoError(t, err)

		assert.Equal(t, first.SessionID, second.SessionID)
		require.Len(t, second.Items, 1)
		assert.Equal(t, 3, second.Items[0].Quantity)
	})

	t.Run("SessionsAreIsolated", func(t *testing.T) {
		s := newCartService()

		one, err := s.AddItem(t.Context(), "", "a", 1)
		require.NoError(t, err)
		two, err := s.AddItem(t.Context(), "", "b", 1)
		require.NoError(t, err)

		assert.NotEqual(t, one.SessionID, two.SessionID)

		oneAgain, err := s.Cart(t.Context(), one.SessionID)
		require.NoError(t, err)
		require.Len(t, oneAgain.Items, 1)
		assert.Equal(t, "a", oneAgain.Items[0].Product.ID)
	})

	t.Run("UnknownSessionIDAdoptedAsNewCart", func(t *testing.T) {
		s := newCartService()

		sum, err := s.Cart(t.Context(), "stale-session")
		require.NoError(t, err)
		assert.Equal(t, "stale-session", sum.SessionID)
		assert.Empty(t, sum.Items)
	})
}

func TestCartServiceAddItem(t *testing.T) {
	t.Run("UnknownProductRejected", func(t *testing.T) {
		s := newCartService()

		_, err := s.AddItem(t.Context(), "", "ghost", 1)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrProductNotFound)
	})

	t.Run("SummaryCarriesDerivedTotals", func(t *testing.T) {
		s := newCartService()

		// product "a" costs 1000
		sum, err := s.AddItem(t.Context(), "", "a", 4)
		require.NoError(t, err)

		assert.Equal(t, int64(4000), sum.Subtotal)
		assert.Equal(t, int64(720), sum.Tax)
		assert.Equal(t, int64(199), sum.Shipping)
		assert.Equal(t, int64(4919), sum.GrandTotal)
	})
}

func TestCartServiceUpdateAndRemove(t *testing.T) {
	s := newCartService()

	sum, err := s.AddItem(t.Context(), "", "a", 2)
	require.NoError(t, err)
	sid := sum.SessionID

	t.Run("UpdateToZeroRemovesLine", func(t *testing.T) {
		sum, err := s.UpdateItemQuantity(t.Context(), sid, "a", 0)
		require.NoError(t, err)
		assert.Empty(t, sum.Items)
	})

	t.Run("UpdateUnknownIDIsNoOp", func(t *testing.T) {
		sum, err := s.UpdateItemQuantity(t.Context(), sid, "ghost", 3)
		require.NoError(t, err)
		assert.Empty(t, sum.Items)
	})

	t.Run("RemoveAbsentIsNoOp", func(t *testing.T) {
		sum, err := s.RemoveItem(t.Context(), sid, "a")
		require.NoError(t, err)
		assert.Empty(t, sum.Items)
	})
}

func TestCartServiceClear(t *testing.T) {
	s := newCartService()

	sum, err := s.AddItem(t.Context(), "", "a", 2)
	require.NoError(t, err)

	cleared, err := s.ClearCart(t.Context(), sum.SessionID)
	require.NoError(t, err)
	assert.Empty(t, cleared.Items)
	assert.Equal(t, int64(0), cleared.Subtotal)
	assert.Equal(t, int64(199), cleared.Shipping)

	again, err := s.ClearCart(t.Context(), sum.SessionID)
	require.NoError(t, err)
	assert.Empty(t, again.Items)
}

func TestCartServiceContextCancelled(t *testing.T) {
	s := newCartService()

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	_, err := s.AddItem(ctx, "", "a", 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}
