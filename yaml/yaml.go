// Package yaml provides a YAML codec implementation.
package yaml

import (
	"bytes"

	"github.com/RG4421/lounge"
	"gopkg.in/yaml.v3"
)

// indent is the nesting width used when encoding.
const indent = 2

// yamlCodec implements lounge.Codec for YAML.
type yamlCodec struct{}

// New returns a YAML codec.
func New() lounge.Codec {
	return &yamlCodec{}
}

// ContentType returns the MIME type for YAML.
func (c *yamlCodec) ContentType() string {
	return "application/yaml"
}

// Marshal encodes v as YAML with two-space indentation.
func (c *yamlCodec) Marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(indent)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal decodes YAML data into v.
func (c *yamlCodec) Unmarshal(data []byte, v any) error {
	return yaml.Unmarshal(data, v)
}
