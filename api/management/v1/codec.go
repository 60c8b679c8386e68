package managementv1

import (
	"encoding/json"

	"google.golang.org/grpc/encoding"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
)

// ContentSubtype is the gRPC content subtype the management service is served with.
// Clients must pass grpc.CallContentSubtype(ContentSubtype). A daemon serving the
// stock protobuf encoding rejects it.
const ContentSubtype = "json"

var unmarshalOpts = protojson.UnmarshalOptions{DiscardUnknown: true}

// codec encodes protobuf well-known types with protojson and plain messages with
// encoding/json.
type codec struct{}

func (codec) Name() string { return ContentSubtype }

func (codec) Marshal(v any) ([]byte, error) {
	if m, ok := v.(proto.Message); ok {
		return protojson.Marshal(m)
	}
	return json.Marshal(v)
}

func (codec) Unmarshal(data []byte, v any) error {
	if m, ok := v.(proto.Message); ok {
		return unmarshalOpts.Unmarshal(data, m)
	}
	return json.Unmarshal(data, v)
}

func init() {
	encoding.RegisterCodec(codec{})
}
