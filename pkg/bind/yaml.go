package bind

import "gopkg.in/yaml.v3"

// YAMLCodec is JSONCodec's YAML counterpart, backed by yaml.v3.
type YAMLCodec[T any] struct{}

// YAML returns the codec for T encoded as YAML text. The contract matches
// JSON: string shape required, decode failures are mismatch-tier.
func YAML[T any]() YAMLCodec[T] {
	return YAMLCodec[T]{}
}

func (YAMLCodec[T]) tryExtract(cx CallContext, v Value) (T, error) {
	var out T
	if cx.KindOf(v) != KindString {
		return out, mismatch(KindString.Name())
	}
	s, err := cx.StringValue(v)
	if err != nil {
		return out, err
	}
	if err := yaml.Unmarshal([]byte(s), &out); err != nil {
		var zero T
		return zero, &decodeError{format: "yaml", err: err}
	}
	return out, nil
}

func (YAMLCodec[T]) build(cx CallContext, v T) (Value, error) {
	b, err := yaml.Marshal(v)
	if err != nil {
		return nil, err
	}
	return cx.NewString(string(b))
}
