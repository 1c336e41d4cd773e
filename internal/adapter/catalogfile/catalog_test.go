package catalogfile_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/niksmo/storefront/internal/adapter/catalogfile"
	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/pkg/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("IndexesByIDAndSlug", func(t *testing.T) {
		c, err := catalogfile.New([]domain.Product{
			{ID: "p1", Slug: "cam-one", Price: 1000},
			{ID: "p2", Slug: "cam-two", Price: 2000},
		})
		require.NoError(t, err)

		p, ok := c.ProductByID("p2")
		require.True(t, ok)
		assert.Equal(t, "cam-two", p.Slug)

		p, ok = c.ProductBySlug("cam-one")
		require.True(t, ok)
		assert.Equal(t, "p1", p.ID)

		_, ok = c.ProductByID("ghost")
		assert.False(t, ok)
		_, ok = c.ProductBySlug("ghost")
		assert.False(t, ok)
	})

	t.Run("RejectsDuplicateID", func(t *testing.T) {
		_, err := catalogfile.New([]domain.Product{
			{ID: "p1", Slug: "cam-one"},
			{ID: "p1", Slug: "cam-two"},
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, catalogfile.ErrDuplicateID)
	})

	t.Run("RejectsDuplicateSlug", func(t *testing.T) {
		_, err := catalogfile.New([]domain.Product{
			{ID: "p1", Slug: "cam-one"},
			{ID: "p2", Slug: "cam-one"},
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, catalogfile.ErrDuplicateSlug)
	})

	t.Run("ProductsReturnsCopy", func(t *testing.T) {
		c, err := catalogfile.New([]domain.Product{
			{ID: "p1", Slug: "cam-one"},
			{ID: "p2", Slug: "cam-two"},
		})
		require.NoError(t, err)

		ps := c.Products()
		ps[0], ps[1] = ps[1], ps[0]

		again := c.Products()
		assert.Equal(t, "p1", again[0].ID)
	})
}

func TestLoad(t *testing.T) {
	t.Run("SnapshotRoundTrip", func(t *testing.T) {
		seed := catalogfile.Seed()

		records := make([]schema.ProductV1, 0, seed.Len())
		for _, p := range seed.Products() {
			records = append(records, catalogfile.FromDomain(p))
		}

		path := filepath.Join(t.TempDir(), "catalog.avro")
		f, err := os.Create(path)
		require.NoError(t, err)
		require.NoError(t, schema.WriteCatalogV1(f, records))
		require.NoError(t, f.Close())

		loaded, err := catalogfile.Load(path)
		require.NoError(t, err)

		require.Equal(t, seed.Len(), loaded.Len())
		for _, want := range seed.Products() {
			got, ok := loaded.ProductBySlug(want.Slug)
			require.True(t, ok, "missing %s", want.Slug)
			assert.Equal(t, want.ID, got.ID)
			assert.Equal(t, want.Price, got.Price)
			assert.Equal(t, want.OriginalPrice, got.OriginalPrice)
			assert.Equal(t, want.Specifications, got.Specifications)
			assert.True(t, want.CreatedAt.Equal(got.CreatedAt))
		}
	})

	t.Run("MissingFile", func(t *testing.T) {
		_, err := catalogfile.Load(filepath.Join(t.TempDir(), "absent.avro"))
		require.Error(t, err)
	})
}

func TestSeed(t *testing.T) {
	seed := catalogfile.Seed()
	require.NotZero(t, seed.Len())

	t.Run("InvariantsHold", func(t *testing.T) {
		for _, p := range seed.Products() {
			assert.NotEmpty(t, p.ID)
			assert.NotEmpty(t, p.Slug)
			assert.Positive(t, p.Price)
			if p.OriginalPrice != 0 {
				assert.GreaterOrEqual(t, p.OriginalPrice, p.Price,
					"product %s", p.ID)
			}
		}
	})

	t.Run("BundledContentPresent", func(t *testing.T) {
		assert.NotEmpty(t, catalogfile.SeedServices())
		assert.NotEmpty(t, catalogfile.SeedTestimonials())
		assert.NotEmpty(t, catalogfile.SeedStore().Name)
	})
}
