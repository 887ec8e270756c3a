package bind

// Extractor describes one interpretation of a dynamic value as a native T.
// The probing operation is the primitive: it reports a shape mismatch as a
// Mismatch error and never escalates, which is what lets the ArgsOpt
// family try several argument shapes without raising. The strict form is
// derived (Extract = Probe + OrThrow), never implemented separately.
//
// The interface is sealed: only this package supplies implementations.
// The two-tier error contract (mismatch is data, runtime failures pass
// through untouched) is load-bearing for overload probing, so arbitrary
// implementations are not accepted. User types are converted through the
// provided codecs (Any, JSON, YAML, Proto, ...), not by new machinery.
type Extractor[T any] interface {
	tryExtract(cx CallContext, v Value) (T, error)
}

// Builder describes the native-to-dynamic direction for a T. Building can
// fail only at the runtime level (for example allocation failure in the
// host); a native value always determines its dynamic shape, so there is
// no mismatch tier in this direction. The produced handle has the
// narrowest Kind representing T. Sealed like Extractor.
type Builder[T any] interface {
	build(cx CallContext, v T) (Value, error)
}

// Codec is an Extractor and Builder pair for the same native type. All
// concrete codecs in this package implement it.
type Codec[T any] interface {
	Extractor[T]
	Builder[T]
}

// Probe attempts to extract a T from v. A Mismatch error means v did not
// have the shape e requires and another interpretation may be tried; any
// other error is a runtime-level failure and must be propagated. Probe
// never constructs a host exception.
func Probe[T any](cx CallContext, e Extractor[T], v Value) (T, error) {
	return e.tryExtract(cx, v)
}

// Extract is the strict form of Probe: a mismatch is escalated into a host
// type-error naming the expected shape.
func Extract[T any](cx CallContext, e Extractor[T], v Value) (T, error) {
	t, err := e.tryExtract(cx, v)
	if err != nil {
		var zero T
		return zero, OrThrow(cx, err)
	}
	return t, nil
}

// Build converts a native value into a dynamic value handle.
func Build[T any](cx CallContext, b Builder[T], v T) (Value, error) {
	return b.build(cx, v)
}
