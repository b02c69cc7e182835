package api

import (
	"fmt"

	"github.com/pquerna/ffjson/ffjson"
)

// CodecName is the connect codec name; it matches the application/json content type.
const CodecName = "json"

// Codec marshals the plain message structs of this package for connect.
// It replaces connect's default protobuf JSON codec, which only accepts
// generated protobuf messages.
type Codec struct{}

// Name implements connect.Codec.
func (Codec) Name() string { return CodecName }

// Marshal implements connect.Codec.
func (Codec) Marshal(msg any) ([]byte, error) {
	data, err := ffjson.Marshal(msg)
	if err != nil {
		return nil, fmt.Errorf("marshal %T: %w", msg, err)
	}
	return data, nil
}

// Unmarshal implements connect.Codec. An empty body decodes to the zero message.
func (Codec) Unmarshal(data []byte, msg any) error {
	if len(data) == 0 {
		return nil
	}
	if err := ffjson.Unmarshal(data, msg); err != nil {
		return fmt.Errorf("unmarshal %T: %w", msg, err)
	}
	return nil
}
