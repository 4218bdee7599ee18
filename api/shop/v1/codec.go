// Package shopv1 defines the coffeeshop.v1 gRPC services. Messages are plain
// Go structs carried by a JSON codec registered under the "json" content
// subtype, so clients must call with grpc.CallContentSubtype(CodecName);
// the generated Client types do this for every call.
package shopv1

import (
	"encoding/json"

	"google.golang.org/grpc/encoding"
)

// CodecName is the gRPC content subtype served by the coffeeshop.v1 services.
const CodecName = "json"

type jsonCodec struct{}

func (jsonCodec) Marshal(v any) ([]byte, error)      { return json.Marshal(v) }
func (jsonCodec) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }
func (jsonCodec) Name() string                       { return CodecName }

func init() {
	encoding.RegisterCodec(jsonCodec{})
}
