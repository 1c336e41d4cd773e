package schema

import "time"

// ProductSchemaTextV1 is the avro record schema for one catalog product.
// Catalog snapshot files carry this schema in the container header, so
// readers never depend on the writer's binary.
const ProductSchemaTextV1 = `{
	"type": "record",
	"namespace": "storefront",
	"name": "product",
	"fields": [
		{"name": "id", "type": "string"},
		{"name": "slug", "type": "string"},
		{"name": "name", "type": "string"},
		{"name": "brand", "type": "string"},
		{"name": "category", "type": "string"},
		{"name": "camera_type", "type": "string"},
		{"name": "resolution", "type": "string"},
		{"name": "price", "type": "long"},
		{"name": "original_price", "type": "long"},
		{"name": "rating", "type": "double"},
		{"name": "reviews", "type": "int"},
		{"name": "in_stock", "type": "boolean"},
		{"name": "description", "type": "string"},
		{"name": "short_description", "type": "string"},
		{"name": "image", "type": "string"},
		{"name": "specifications", "type": {"type": "map", "values": "string"}},
		{"name": "created_at", "type": {"type": "long", "logicalType": "timestamp-millis"}},
		{"name": "featured", "type": "boolean"},
		{"name": "best_selling", "type": "boolean"}
	]
}`

type ProductV1 struct {
	ID               string            `avro:"id"`
	Slug             string            `avro:"slug"`
	Name             string            `avro:"name"`
	Brand            string            `avro:"brand"`
	Category         string            `avro:"category"`
	CameraType       string            `avro:"camera_type"`
	Resolution       string            `avro:"resolution"`
	Price            int64             `avro:"price"`
	OriginalPrice    int64             `avro:"original_price"`
	Rating           float64           `avro:"rating"`
	Reviews          int               `avro:"reviews"`
	InStock          bool              `avro:"in_stock"`
	Description      string            `avro:"description"`
	ShortDescription string            `avro:"short_description"`
	Image            string            `avro:"image"`
	Specifications   map[string]string `avro:"specifications"`
	CreatedAt        time.Time         `avro:"created_at"`
	Featured         bool              `avro:"featured"`
	BestSelling      bool              `avro:"best_selling"`
}
