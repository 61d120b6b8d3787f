// Package bson provides a BSON codec implementation.
package bson

import (
	"github.com/RG4421/lounge"
	"go.mongodb.org/mongo-driver/bson"
)

// bsonCodec implements lounge.Codec for BSON.
type bsonCodec struct{}

// New returns a BSON codec.
// BSON payloads are documents: values must clone to an object, and nil
// encodes as the empty document.
func New() lounge.Codec {
	return &bsonCodec{}
}

// ContentType returns the MIME type for BSON.
func (c *bsonCodec) ContentType() string {
	return "application/bson"
}

// Marshal encodes v as BSON.
func (c *bsonCodec) Marshal(v any) ([]byte, error) {
	if v == nil {
		return bson.Marshal(bson.D{})
	}
	return bson.Marshal(v)
}

// Unmarshal decodes BSON data into v.
func (c *bsonCodec) Unmarshal(data []byte, v any) error {
	return bson.Unmarshal(data, v)
}
