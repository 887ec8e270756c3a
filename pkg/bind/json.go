package bind

import "encoding/json"

// JSONCodec converts between a native T and a string-shaped dynamic value
// holding its JSON encoding. It is the serialization plug-in for the
// conversion contract: the same probing and strict semantics, with decode
// failures on the mismatch tier.
type JSONCodec[T any] struct{}

// JSON returns the codec for T encoded as JSON text. Non-string shapes
// and undecodable payloads both probe as mismatches; building marshals T
// and produces a string value.
func JSON[T any]() JSONCodec[T] {
	return JSONCodec[T]{}
}

func (JSONCodec[T]) tryExtract(cx CallContext, v Value) (T, error) {
	var out T
	if cx.KindOf(v) != KindString {
		return out, mismatch(KindString.Name())
	}
	s, err := cx.StringValue(v)
	if err != nil {
		return out, err
	}
	if err := json.Unmarshal([]byte(s), &out); err != nil {
		var zero T
		return zero, &decodeError{format: "json", err: err}
	}
	return out, nil
}

func (JSONCodec[T]) build(cx CallContext, v T) (Value, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return cx.NewString(string(b))
}
