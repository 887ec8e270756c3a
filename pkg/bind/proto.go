package bind

import (
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
)

// ProtoCodec converts between a proto.Message and a string-shaped dynamic
// value holding its protojson encoding. The prototype fixes the concrete
// message type; each extraction allocates a fresh message from it, so the
// codec works with generated messages and dynamicpb messages alike.
type ProtoCodec struct {
	prototype proto.Message
}

// Proto returns the codec for messages of prototype's type. Extraction
// requires a string shape and a payload protojson accepts for that type;
// both failures are mismatch-tier. Building marshals the message to
// protojson text.
func Proto(prototype proto.Message) ProtoCodec {
	return ProtoCodec{prototype: prototype}
}

func (c ProtoCodec) tryExtract(cx CallContext, v Value) (proto.Message, error) {
	if cx.KindOf(v) != KindString {
		return nil, mismatch(KindString.Name())
	}
	s, err := cx.StringValue(v)
	if err != nil {
		return nil, err
	}
	msg := c.prototype.ProtoReflect().New().Interface()
	if err := protojson.Unmarshal([]byte(s), msg); err != nil {
		return nil, &decodeError{format: "proto", err: err}
	}
	return msg, nil
}

func (c ProtoCodec) build(cx CallContext, m proto.Message) (Value, error) {
	b, err := protojson.Marshal(m)
	if err != nil {
		return nil, err
	}
	return cx.NewString(string(b))
}
