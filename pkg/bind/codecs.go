package bind

// NumberCodec converts between float64 and the dynamic number shape.
type NumberCodec struct{}

// Number is the float64 codec. A date mismatches even though its payload
// is a float64; use Date to select that interpretation.
var Number NumberCodec

func (NumberCodec) tryExtract(cx CallContext, v Value) (float64, error) {
	if cx.KindOf(v) != KindNumber {
		return 0, mismatch(KindNumber.Name())
	}
	return cx.NumberValue(v)
}

func (NumberCodec) build(cx CallContext, f float64) (Value, error) {
	return cx.NewNumber(f)
}

// BoolCodec converts between bool and the dynamic boolean shape. There is
// no truthiness coercion; any non-boolean shape mismatches.
type BoolCodec struct{}

// Bool is the bool codec.
var Bool BoolCodec

func (BoolCodec) tryExtract(cx CallContext, v Value) (bool, error) {
	if cx.KindOf(v) != KindBoolean {
		return false, mismatch(KindBoolean.Name())
	}
	return cx.BoolValue(v)
}

func (BoolCodec) build(cx CallContext, b bool) (Value, error) {
	return cx.NewBool(b)
}

// StringCodec converts between string and the dynamic string shape. No
// implicit stringification happens; numbers and objects mismatch.
type StringCodec struct{}

// String is the string codec.
var String StringCodec

func (StringCodec) tryExtract(cx CallContext, v Value) (string, error) {
	if cx.KindOf(v) != KindString {
		return "", mismatch(KindString.Name())
	}
	return cx.StringValue(v)
}

func (StringCodec) build(cx CallContext, s string) (Value, error) {
	return cx.NewString(s)
}

// RawCodec passes the dynamic value handle through unconverted. Extraction
// matches every shape, including null and undefined; building returns the
// handle as-is. Use it for arguments the native side only forwards back to
// the runtime.
type RawCodec struct{}

// Raw is the handle passthrough codec.
var Raw RawCodec

func (RawCodec) tryExtract(cx CallContext, v Value) (Value, error) {
	return v, nil
}

func (RawCodec) build(cx CallContext, v Value) (Value, error) {
	return v, nil
}
