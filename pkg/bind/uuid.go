package bind

import "github.com/google/uuid"

// UUIDCodec converts between uuid.UUID and a string-shaped dynamic value
// in canonical textual form.
type UUIDCodec struct{}

// UUID is the uuid.UUID codec. Non-string shapes and malformed UUID text
// both probe as mismatches.
var UUID UUIDCodec

func (UUIDCodec) tryExtract(cx CallContext, v Value) (uuid.UUID, error) {
	if cx.KindOf(v) != KindString {
		return uuid.Nil, mismatch(KindString.Name())
	}
	s, err := cx.StringValue(v)
	if err != nil {
		return uuid.Nil, err
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, &decodeError{format: "uuid", err: err}
	}
	return id, nil
}

func (UUIDCodec) build(cx CallContext, id uuid.UUID) (Value, error) {
	return cx.NewString(id.String())
}
