// Package schema holds the versioned avro record schema for catalog
// snapshots and the object-container-file codec around it.
package schema

import (
	"fmt"
	"io"

	"github.com/hamba/avro/v2/ocf"
)

// WriteCatalogV1 writes the product records to w as an avro object
// container file with [ProductSchemaTextV1] embedded.
func WriteCatalogV1(w io.Writer, ps []ProductV1) error {
	const op = "schema.WriteCatalogV1"

	enc, err := ocf.NewEncoder(ProductSchemaTextV1, w)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	for _, p := range ps {
		if err := enc.Encode(p); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// ReadCatalogV1 reads every product record from an avro object container
// file previously written with [WriteCatalogV1].
func ReadCatalogV1(r io.Reader) ([]ProductV1, error) {
	const op = "schema.ReadCatalogV1"

	dec, err := ocf.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var ps []ProductV1
	for dec.HasNext() {
		var p ProductV1
		if err := dec.Decode(&p); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		ps = append(ps, p)
	}
	if err := dec.Error(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return ps, nil
}
