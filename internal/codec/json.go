package codec

import (
	"encoding/json"
	"fmt"
	"io"

	"astroloh/internal/domain"
)

// JSONCodec handles JSON import/export of chart documents
type JSONCodec struct{}

// NewJSONCodec creates a new JSON codec
func NewJSONCodec() *JSONCodec {
	return &JSONCodec{}
}

// Format returns the codec format identifier
func (c *JSONCodec) Format() string {
	return "json"
}

// Parse imports a chart document from JSON
func (c *JSONCodec) Parse(r io.Reader) (*domain.Chart, error) {
	var chart domain.Chart
	if err := json.NewDecoder(r).Decode(&chart); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}
	return &chart, nil
}

// Export writes a chart document as indented JSON
func (c *JSONCodec) Export(chart *domain.Chart, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(chart); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}
