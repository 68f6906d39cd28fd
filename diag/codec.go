package diag

import (
	"encoding/json"

	"google.golang.org/grpc/encoding"
)

// codecName names this codec on the wire, negotiated the same way the
// built-in "proto" codec is: via the grpc-go Content-Type subtype.
const codecName = "json"

// jsonCodec marshals gRPC messages as JSON instead of protobuf. The
// Analyze payload is a handful of scalars and short strings; generating
// correct protoreflect-backed message types by hand for that is not
// worth the machinery protobuf normally earns through compiled .proto
// schemas, so this server speaks JSON over the same transport instead.
type jsonCodec struct{}

func (jsonCodec) Marshal(v any) ([]byte, error) { return json.Marshal(v) }

func (jsonCodec) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }

func (jsonCodec) Name() string { return codecName }

func init() {
	encoding.RegisterCodec(jsonCodec{})
}
