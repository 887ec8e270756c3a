// Package bindtest carries an in-memory host runtime implementing the
// bind capability interfaces. It exists so the conversion layer can be
// exercised without a real embedding: values are plain Go structs, a
// Context serves a fixed argument slice, and inspection faults can be
// injected to simulate a throwing host object.
package bindtest

import (
	"fmt"

	"github.com/funvibe/funbind/pkg/bind"
)

// Val is the reference dynamic value. One struct covers every kind; only
// the fields for its kind are meaningful.
type Val struct {
	kind  bind.Kind
	num   float64
	str   string
	b     bool
	bytes []byte

	// trap, when set, makes every payload inspection fail with this
	// error. The kind stays visible, which is how a host object with a
	// throwing accessor behaves: the shape check passes, reading the
	// payload raises.
	trap error

	// Touched records whether any payload inspection reached this value.
	Touched bool
}

func (*Val) DynamicValue() {}

// Number returns a number value.
func Number(f float64) *Val { return &Val{kind: bind.KindNumber, num: f} }

// String returns a string value.
func String(s string) *Val { return &Val{kind: bind.KindString, str: s} }

// Bool returns a boolean value.
func Bool(b bool) *Val { return &Val{kind: bind.KindBoolean, b: b} }

// Date returns a date value with the given millisecond payload.
func Date(ms float64) *Val { return &Val{kind: bind.KindDate, num: ms} }

// Buffer returns a Buffer value holding a copy of b.
func Buffer(b []byte) *Val {
	return &Val{kind: bind.KindBuffer, bytes: append([]byte(nil), b...)}
}

// ArrayBuffer returns an ArrayBuffer value holding a copy of b.
func ArrayBuffer(b []byte) *Val {
	return &Val{kind: bind.KindArrayBuffer, bytes: append([]byte(nil), b...)}
}

// Null returns the null value.
func Null() *Val { return &Val{kind: bind.KindNull} }

// Undefined returns the undefined value.
func Undefined() *Val { return &Val{kind: bind.KindUndefined} }

// Object returns an opaque object value with no inspectable payload.
func Object() *Val { return &Val{kind: bind.KindObject} }

// Throwing returns a value of the given kind whose payload inspections
// fail with a runtime-level error carrying msg. Use it to assert that a
// slot is never inspected, or that runtime failures are not swallowed.
func Throwing(kind bind.Kind, msg string) *Val {
	return &Val{kind: kind, trap: fmt.Errorf("runtime: %s", msg)}
}

// TypeError is the host exception the reference runtime produces for
// escalated mismatches.
type TypeError struct {
	Msg string
}

func (e *TypeError) Error() string { return "TypeError: " + e.Msg }

// Context implements bind.CallContext over a fixed argument slice.
type Context struct {
	args []bind.Value

	// AllocErr, when set, makes every value constructor fail with it,
	// simulating host allocation failure.
	AllocErr error

	// Thrown collects the messages of type errors constructed through
	// TypeError, in order.
	Thrown []string

	// Reads records the slot indices handed to Argument, in order. Reading
	// a handle is distinct from inspecting its payload; Val.Touched tracks
	// the latter.
	Reads []int
}

// NewContext returns a call context serving the given arguments.
func NewContext(args ...bind.Value) *Context {
	return &Context{args: args}
}

func (c *Context) Argument(i int) bind.Value {
	c.Reads = append(c.Reads, i)
	if i < 0 || i >= len(c.args) {
		return Undefined()
	}
	return c.args[i]
}

func (c *Context) ArgCount() int { return len(c.args) }

func (c *Context) TypeError(msg string) error {
	c.Thrown = append(c.Thrown, msg)
	return &TypeError{Msg: msg}
}

func (c *Context) KindOf(v bind.Value) bind.Kind {
	if val, ok := v.(*Val); ok {
		return val.kind
	}
	return bind.KindObject
}

// inspect checks that v is a reference value of the wanted kind and marks
// it touched. A foreign or wrong-kinded handle is a runtime-level error:
// codecs are expected to check the kind before reading a payload.
func (c *Context) inspect(v bind.Value, want bind.Kind) (*Val, error) {
	val, ok := v.(*Val)
	if !ok {
		return nil, fmt.Errorf("runtime: foreign handle %T", v)
	}
	val.Touched = true
	if val.trap != nil {
		return nil, val.trap
	}
	if val.kind != want {
		return nil, fmt.Errorf("runtime: %s read on a %s value", want, val.kind)
	}
	return val, nil
}

func (c *Context) NumberValue(v bind.Value) (float64, error) {
	val, err := c.inspect(v, bind.KindNumber)
	if err != nil {
		return 0, err
	}
	return val.num, nil
}

func (c *Context) BoolValue(v bind.Value) (bool, error) {
	val, err := c.inspect(v, bind.KindBoolean)
	if err != nil {
		return false, err
	}
	return val.b, nil
}

func (c *Context) StringValue(v bind.Value) (string, error) {
	val, err := c.inspect(v, bind.KindString)
	if err != nil {
		return "", err
	}
	return val.str, nil
}

func (c *Context) DateValue(v bind.Value) (float64, error) {
	val, err := c.inspect(v, bind.KindDate)
	if err != nil {
		return 0, err
	}
	return val.num, nil
}

func (c *Context) BytesValue(v bind.Value) ([]byte, error) {
	val, ok := v.(*Val)
	if !ok {
		return nil, fmt.Errorf("runtime: foreign handle %T", v)
	}
	val.Touched = true
	if val.trap != nil {
		return nil, val.trap
	}
	if val.kind != bind.KindBuffer && val.kind != bind.KindArrayBuffer {
		return nil, fmt.Errorf("runtime: bytes read on a %s value", val.kind)
	}
	return append([]byte(nil), val.bytes...), nil
}

func (c *Context) NewNumber(f float64) (bind.Value, error) {
	if c.AllocErr != nil {
		return nil, c.AllocErr
	}
	return Number(f), nil
}

func (c *Context) NewBool(b bool) (bind.Value, error) {
	if c.AllocErr != nil {
		return nil, c.AllocErr
	}
	return Bool(b), nil
}

func (c *Context) NewString(s string) (bind.Value, error) {
	if c.AllocErr != nil {
		return nil, c.AllocErr
	}
	return String(s), nil
}

func (c *Context) NewDate(ms float64) (bind.Value, error) {
	if c.AllocErr != nil {
		return nil, c.AllocErr
	}
	return Date(ms), nil
}

func (c *Context) NewBuffer(b []byte) (bind.Value, error) {
	if c.AllocErr != nil {
		return nil, c.AllocErr
	}
	return Buffer(b), nil
}

func (c *Context) NewArrayBuffer(b []byte) (bind.Value, error) {
	if c.AllocErr != nil {
		return nil, c.AllocErr
	}
	return ArrayBuffer(b), nil
}

func (c *Context) Null() bind.Value { return Null() }

func (c *Context) Undefined() bind.Value { return Undefined() }
