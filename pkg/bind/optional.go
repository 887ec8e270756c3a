package bind

// OptCodec wraps an element codec so that null and undefined extract to
// nil instead of mismatching. It is how a signature expresses "this
// argument may be omitted or explicitly nullish".
type OptCodec[T any] struct {
	elem Codec[T]
}

// Opt returns the optional form of elem. Probing null or undefined yields
// nil for every element codec; any other shape delegates to elem, so a
// present-but-wrong argument still mismatches with elem's expected name.
// Building nil produces undefined.
func Opt[T any](elem Codec[T]) OptCodec[T] {
	return OptCodec[T]{elem: elem}
}

func (o OptCodec[T]) tryExtract(cx CallContext, v Value) (*T, error) {
	switch cx.KindOf(v) {
	case KindNull, KindUndefined:
		return nil, nil
	}
	t, err := o.elem.tryExtract(cx, v)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (o OptCodec[T]) build(cx CallContext, p *T) (Value, error) {
	if p == nil {
		return cx.Undefined(), nil
	}
	return o.elem.build(cx, *p)
}
