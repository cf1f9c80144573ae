// Package codec defines the record codec contract: a pair of total
// functions turning an in-memory collection into a persisted blob and back.
// Stores depend only on this contract, not on the byte format.
package codec

import "encoding/json"

// Codec round-trips collections: Decode(Encode(x)) must reproduce x exactly
// for every valid collection, including the empty one.
type Codec interface {
	Encode(v any) ([]byte, error)
	Decode(data []byte, v any) error
}

// JSON is the default codec. Blobs are indented so the on-disk files stay
// readable.
type JSON struct{}

func (JSON) Encode(v any) ([]byte, error) {
	return json.MarshalIndent(v, "", "    ")
}

func (JSON) Decode(data []byte, v any) error {
	return json.Unmarshal(data, v)
}
