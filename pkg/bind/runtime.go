package bind

// Kind identifies the dynamic shape of a host value as reported by the
// runtime. The set is closed: every handle the runtime hands out maps to
// exactly one Kind.
type Kind int

const (
	KindUndefined Kind = iota
	KindNull
	KindBoolean
	KindNumber
	KindString
	KindDate
	KindBuffer
	KindArrayBuffer
	KindObject
)

// Name returns the canonical dynamic type name used in error messages.
func (k Kind) Name() string {
	switch k {
	case KindUndefined:
		return "undefined"
	case KindNull:
		return "null"
	case KindBoolean:
		return "boolean"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindDate:
		return "Date"
	case KindBuffer:
		return "Buffer"
	case KindArrayBuffer:
		return "ArrayBuffer"
	default:
		return "object"
	}
}

func (k Kind) String() string { return k.Name() }

// Value is an opaque handle to a value owned by the host runtime. Handles
// are scoped to the enclosing call: conversions borrow them for the
// duration of a single CallContext method and never retain them. The
// marker method exists so handles stay distinguishable from ordinary Go
// values; this package never calls it.
type Value interface {
	DynamicValue()
}

// CallContext is the capability surface a host runtime exposes to the
// conversion layer. It is implemented by the embedding runtime, not by
// this package; pkg/bind/bindtest carries an in-memory implementation for
// tests.
//
// Inspection methods are read-only with respect to the conversion layer,
// but the host's own semantics may make them observable (a Date wrapper
// triggering user code, for example). Any error they return is a
// runtime-level failure and must be propagated as-is.
type CallContext interface {
	// Argument returns the raw argument at position i. Positions at or
	// past ArgCount() yield the undefined value, never an error.
	Argument(i int) Value

	// ArgCount reports how many arguments the caller actually supplied.
	ArgCount() int

	// TypeError constructs a host type-error carrying msg and returns it
	// as a runtime-level failure value. The host is expected to mark the
	// current call as throwing.
	TypeError(msg string) error

	// KindOf reports the dynamic shape of v.
	KindOf(v Value) Kind

	NumberValue(v Value) (float64, error)
	BoolValue(v Value) (bool, error)
	StringValue(v Value) (string, error)

	// DateValue returns the date payload as milliseconds since the epoch.
	DateValue(v Value) (float64, error)

	// BytesValue returns a copy of the contents of a Buffer or
	// ArrayBuffer value.
	BytesValue(v Value) ([]byte, error)

	NewNumber(f float64) (Value, error)
	NewBool(b bool) (Value, error)
	NewString(s string) (Value, error)
	NewDate(ms float64) (Value, error)
	NewBuffer(b []byte) (Value, error)
	NewArrayBuffer(b []byte) (Value, error)
	Null() Value
	Undefined() Value
}
