package bind

// Disambiguating codecs. Some native types map onto more than one dynamic
// shape: a float64 is either a number or the millisecond payload of a
// date, and a []byte is either a Buffer or an ArrayBuffer. The default
// codecs pick the plain interpretation; the codecs in this file select
// the alternative one. The choice is a distinct nominal codec, never a
// flag, so a call signature states it statically.

// DateCodec converts between float64 milliseconds since the epoch and the
// dynamic date shape.
type DateCodec struct{}

// Date selects the date interpretation of a float64. A plain number
// mismatches; use Number for that.
var Date DateCodec

func (DateCodec) tryExtract(cx CallContext, v Value) (float64, error) {
	if cx.KindOf(v) != KindDate {
		return 0, mismatch(KindDate.Name())
	}
	return cx.DateValue(v)
}

func (DateCodec) build(cx CallContext, ms float64) (Value, error) {
	return cx.NewDate(ms)
}

// BufferCodec converts between []byte and the dynamic Buffer shape.
type BufferCodec struct{}

// Buffer selects the Buffer interpretation of a []byte.
var Buffer BufferCodec

func (BufferCodec) tryExtract(cx CallContext, v Value) ([]byte, error) {
	if cx.KindOf(v) != KindBuffer {
		return nil, mismatch(KindBuffer.Name())
	}
	return cx.BytesValue(v)
}

func (BufferCodec) build(cx CallContext, b []byte) (Value, error) {
	return cx.NewBuffer(b)
}

// ArrayBufferCodec converts between []byte and the dynamic ArrayBuffer
// shape.
type ArrayBufferCodec struct{}

// ArrayBuffer selects the ArrayBuffer interpretation of a []byte.
var ArrayBuffer ArrayBufferCodec

func (ArrayBufferCodec) tryExtract(cx CallContext, v Value) ([]byte, error) {
	if cx.KindOf(v) != KindArrayBuffer {
		return nil, mismatch(KindArrayBuffer.Name())
	}
	return cx.BytesValue(v)
}

func (ArrayBufferCodec) build(cx CallContext, b []byte) (Value, error) {
	return cx.NewArrayBuffer(b)
}
