// Package codec imports and exports chart documents in JSON and YAML.
package codec

import (
	"io"

	"astroloh/internal/domain"
)

// Importer parses a chart document from an external representation
type Importer interface {
	Parse(r io.Reader) (*domain.Chart, error)
	Format() string
}

// Exporter writes a chart document to an external representation
type Exporter interface {
	Export(chart *domain.Chart, w io.Writer) error
	Format() string
}

// ForFormat returns the importer and exporter for a format identifier
// ("json" or "yaml"); ok is false for unknown formats.
func ForFormat(format string) (Importer, Exporter, bool) {
	switch format {
	case "json":
		c := NewJSONCodec()
		return c, c, true
	case "yaml", "yml":
		c := NewYAMLCodec()
		return c, c, true
	}
	return nil, nil, false
}
