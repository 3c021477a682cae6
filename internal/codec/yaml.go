package codec

import (
	"fmt"
	"io"

	"astroloh/internal/domain"

	"gopkg.in/yaml.v3"
)

// YAMLCodec handles YAML import/export of chart documents
type YAMLCodec struct{}

// NewYAMLCodec creates a new YAML codec
func NewYAMLCodec() *YAMLCodec {
	return &YAMLCodec{}
}

// Format returns the codec format identifier
func (c *YAMLCodec) Format() string {
	return "yaml"
}

// Parse imports a chart document from YAML
func (c *YAMLCodec) Parse(r io.Reader) (*domain.Chart, error) {
	var chart domain.Chart
	decoder := yaml.NewDecoder(r)
	if err := decoder.Decode(&chart); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	return &chart, nil
}

// Export writes a chart document as YAML
func (c *YAMLCodec) Export(chart *domain.Chart, w io.Writer) error {
	encoder := yaml.NewEncoder(w)
	defer encoder.Close()
	if err := encoder.Encode(chart); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}
	return nil
}
