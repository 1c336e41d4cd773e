package schema_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/niksmo/storefront/pkg/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogV1(t *testing.T) {
	t.Run("RoundTrip", func(t *testing.T) {
		created := time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)
		in := []schema.ProductV1{
			{
				ID:               "p1",
				Slug:             "dome-cam-4mp",
				Name:             "Dome Cam 4MP",
				Brand:            "Hikvision",
				Category:         "dome-cameras",
				CameraType:       "indoor",
				Resolution:       "4MP",
				Price:            2499,
				OriginalPrice:    2999,
				Rating:           4.5,
				Reviews:          120,
				InStock:          true,
				Description:      "testDescription",
				ShortDescription: "testShortDescription",
				Image:            "/images/p1.jpg",
				Specifications:   map[string]string{"Lens": "2.8mm"},
				CreatedAt:        created,
				Featured:         true,
				BestSelling:      false,
			},
			{
				ID:             "p2",
				Slug:           "bullet-cam-2mp",
				Name:           "Bullet Cam 2MP",
				Brand:          "CP Plus",
				Category:       "bullet-cameras",
				CameraType:     "outdoor",
				Resolution:     "2MP",
				Price:          1799,
				Specifications: map[string]string{},
				CreatedAt:      created.AddDate(0, 0, 5),
			},
		}

		var buf bytes.Buffer
		err := schema.WriteCatalogV1(&buf, in)
		require.NoError(t, err)

		out, err := schema.ReadCatalogV1(&buf)
		require.NoError(t, err)

		require.Len(t, out, len(in))
		for i := range in {
			assert.Equal(t, in[i].ID, out[i].ID)
			assert.Equal(t, in[i].Slug, out[i].Slug)
			assert.Equal(t, in[i].Price, out[i].Price)
			assert.Equal(t, in[i].OriginalPrice, out[i].OriginalPrice)
			assert.Equal(t, in[i].Specifications, out[i].Specifications)
			assert.True(t, in[i].CreatedAt.Equal(out[i].CreatedAt))
			assert.Equal(t, in[i].Featured, out[i].Featured)
		}
	})

	t.Run("EmptySnapshot", func(t *testing.T) {
		var buf bytes.Buffer
		err := schema.WriteCatalogV1(&buf, nil)
		require.NoError(t, err)

		out, err := schema.ReadCatalogV1(&buf)
		require.NoError(t, err)
		assert.Empty(t, out)
	})

	t.Run("Garbage", func(t *testing.T) {
		_, err := schema.ReadCatalogV1(bytes.NewReader([]byte("not-avro")))
		require.Error(t, err)
	})
}
