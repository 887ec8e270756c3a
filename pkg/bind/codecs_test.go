package bind_test

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/funvibe/funbind/pkg/bind"
	"github.com/funvibe/funbind/pkg/bind/bindtest"
)

func TestProbeCanonicalShapes(t *testing.T) {
	cx := bindtest.NewContext()

	n, err := bind.Probe(cx, bind.Number, bindtest.Number(4.5))
	if err != nil || n != 4.5 {
		t.Errorf("number: got=(%v, %v)", n, err)
	}
	s, err := bind.Probe(cx, bind.String, bindtest.String("hi"))
	if err != nil || s != "hi" {
		t.Errorf("string: got=(%q, %v)", s, err)
	}
	b, err := bind.Probe(cx, bind.Bool, bindtest.Bool(true))
	if err != nil || !b {
		t.Errorf("bool: got=(%v, %v)", b, err)
	}
	ms, err := bind.Probe(cx, bind.Date, bindtest.Date(1700000000000))
	if err != nil || ms != 1700000000000 {
		t.Errorf("date: got=(%v, %v)", ms, err)
	}
	buf, err := bind.Probe(cx, bind.Buffer, bindtest.Buffer([]byte{1, 2, 3}))
	if err != nil || !bytes.Equal(buf, []byte{1, 2, 3}) {
		t.Errorf("buffer: got=(%v, %v)", buf, err)
	}
}

func TestProbeMismatchIsDataNotThrow(t *testing.T) {
	cx := bindtest.NewContext()
	values := []bind.Value{
		bindtest.String("no"),
		bindtest.Bool(true),
		bindtest.Null(),
		bindtest.Undefined(),
		bindtest.Date(0),
		bindtest.Object(),
	}
	for _, v := range values {
		_, err := bind.Probe(cx, bind.Number, v)
		if !bind.IsMismatch(err) {
			t.Errorf("kind %s: want mismatch, got %v", cx.KindOf(v), err)
		}
	}
	if len(cx.Thrown) != 0 {
		t.Fatalf("probing constructed host exceptions: %v", cx.Thrown)
	}
}

func TestExtractEscalates(t *testing.T) {
	cx := bindtest.NewContext()
	_, err := bind.Extract(cx, bind.Number, bindtest.String("five"))

	var te *bindtest.TypeError
	if !errors.As(err, &te) {
		t.Fatalf("expected host type error, got %T: %v", err, err)
	}
	if te.Msg != "expected number" {
		t.Errorf("wrong message: %q", te.Msg)
	}
}

func TestProbeSurfacesRuntimeFailure(t *testing.T) {
	cx := bindtest.NewContext()
	// Kind says number, reading the payload raises: a wrapper object with
	// a throwing accessor. This must not be reported as a mismatch.
	_, err := bind.Probe(cx, bind.Number, bindtest.Throwing(bind.KindNumber, "valueOf"))
	if err == nil || bind.IsMismatch(err) {
		t.Fatalf("runtime failure swallowed: %v", err)
	}
}

func TestRoundTripPrimitives(t *testing.T) {
	cx := bindtest.NewContext()

	v, err := bind.Build(cx, bind.Number, 6.25)
	if err != nil {
		t.Fatal(err)
	}
	if cx.KindOf(v) != bind.KindNumber {
		t.Errorf("built kind=%s, want number", cx.KindOf(v))
	}
	if n, err := bind.Probe(cx, bind.Number, v); err != nil || n != 6.25 {
		t.Errorf("number round trip: (%v, %v)", n, err)
	}

	v, err = bind.Build(cx, bind.String, "round")
	if err != nil {
		t.Fatal(err)
	}
	if s, err := bind.Probe(cx, bind.String, v); err != nil || s != "round" {
		t.Errorf("string round trip: (%q, %v)", s, err)
	}

	v, err = bind.Build(cx, bind.Bool, true)
	if err != nil {
		t.Fatal(err)
	}
	if b, err := bind.Probe(cx, bind.Bool, v); err != nil || !b {
		t.Errorf("bool round trip: (%v, %v)", b, err)
	}

	v, err = bind.Build(cx, bind.Date, 123456789.0)
	if err != nil {
		t.Fatal(err)
	}
	if cx.KindOf(v) != bind.KindDate {
		t.Errorf("built kind=%s, want Date", cx.KindOf(v))
	}
	if ms, err := bind.Probe(cx, bind.Date, v); err != nil || ms != 123456789.0 {
		t.Errorf("date round trip: (%v, %v)", ms, err)
	}

	v, err = bind.Build(cx, bind.ArrayBuffer, []byte{9, 8})
	if err != nil {
		t.Fatal(err)
	}
	if cx.KindOf(v) != bind.KindArrayBuffer {
		t.Errorf("built kind=%s, want ArrayBuffer", cx.KindOf(v))
	}
	if b, err := bind.Probe(cx, bind.ArrayBuffer, v); err != nil || !bytes.Equal(b, []byte{9, 8}) {
		t.Errorf("array buffer round trip: (%v, %v)", b, err)
	}
}

func TestDateDisambiguation(t *testing.T) {
	cx := bindtest.NewContext()
	date := bindtest.Date(86400000)
	num := bindtest.Number(86400000)

	if _, err := bind.Probe(cx, bind.Number, date); !bind.IsMismatch(err) {
		t.Errorf("bare float from a date should mismatch, got %v", err)
	}
	ms, err := bind.Probe(cx, bind.Date, date)
	if err != nil || ms != 86400000 {
		t.Errorf("date wrapper from a date: (%v, %v)", ms, err)
	}
	if _, err := bind.Probe(cx, bind.Date, num); !bind.IsMismatch(err) {
		t.Errorf("date wrapper from a plain number should mismatch, got %v", err)
	}
}

func TestBufferDisambiguation(t *testing.T) {
	cx := bindtest.NewContext()
	if _, err := bind.Probe(cx, bind.Buffer, bindtest.ArrayBuffer([]byte{1})); !bind.IsMismatch(err) {
		t.Errorf("Buffer codec accepted an ArrayBuffer: %v", err)
	}
	if _, err := bind.Probe(cx, bind.ArrayBuffer, bindtest.Buffer([]byte{1})); !bind.IsMismatch(err) {
		t.Errorf("ArrayBuffer codec accepted a Buffer: %v", err)
	}
}

func TestOptionalNullish(t *testing.T) {
	cx := bindtest.NewContext()

	for _, v := range []bind.Value{bindtest.Null(), bindtest.Undefined()} {
		p, err := bind.Probe(cx, bind.Opt(bind.Number), v)
		if err != nil || p != nil {
			t.Errorf("%s as Opt(Number): (%v, %v)", cx.KindOf(v), p, err)
		}
		s, err := bind.Probe(cx, bind.Opt(bind.String), v)
		if err != nil || s != nil {
			t.Errorf("%s as Opt(String): (%v, %v)", cx.KindOf(v), s, err)
		}
	}

	p, err := bind.Probe(cx, bind.Opt(bind.Number), bindtest.Number(7))
	if err != nil || p == nil || *p != 7 {
		t.Fatalf("present optional: (%v, %v)", p, err)
	}

	// A present argument of the wrong shape still mismatches with the
	// element codec's name.
	_, err = bind.Probe(cx, bind.Opt(bind.Number), bindtest.String("x"))
	var tm *bind.TypeMismatch
	if !errors.As(err, &tm) || tm.Expected != "number" {
		t.Fatalf("want mismatch naming number, got %v", err)
	}
}

func TestOptionalBuild(t *testing.T) {
	cx := bindtest.NewContext()

	v, err := bind.Build(cx, bind.Opt(bind.Number), nil)
	if err != nil || cx.KindOf(v) != bind.KindUndefined {
		t.Errorf("nil builds undefined: (%s, %v)", cx.KindOf(v), err)
	}

	n := 2.5
	v, err = bind.Build(cx, bind.Opt(bind.Number), &n)
	if err != nil || cx.KindOf(v) != bind.KindNumber {
		t.Fatalf("present builds number: (%s, %v)", cx.KindOf(v), err)
	}
}

func TestRawPassthrough(t *testing.T) {
	cx := bindtest.NewContext()
	obj := bindtest.Object()

	got, err := bind.Probe(cx, bind.Raw, obj)
	if err != nil || got != bind.Value(obj) {
		t.Fatalf("raw extract: (%v, %v)", got, err)
	}
	v, err := bind.Build[bind.Value](cx, bind.Raw, obj)
	if err != nil || v != bind.Value(obj) {
		t.Fatalf("raw build: (%v, %v)", v, err)
	}

	// Raw matches every shape, nullish included.
	if _, err := bind.Probe(cx, bind.Raw, bindtest.Undefined()); err != nil {
		t.Errorf("raw undefined: %v", err)
	}
}

func TestAnyExtract(t *testing.T) {
	cx := bindtest.NewContext()
	tests := []struct {
		name string
		v    bind.Value
		want any
	}{
		{"null", bindtest.Null(), nil},
		{"undefined", bindtest.Undefined(), nil},
		{"bool", bindtest.Bool(true), true},
		{"number", bindtest.Number(1.5), 1.5},
		{"string", bindtest.String("s"), "s"},
		{"date", bindtest.Date(1000), time.UnixMilli(1000).UTC()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := bind.Probe(cx, bind.Any, tt.v)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("got=%v (%T), want=%v (%T)", got, got, tt.want, tt.want)
			}
		})
	}

	got, err := bind.Probe(cx, bind.Any, bindtest.Buffer([]byte{7}))
	if err != nil || !bytes.Equal(got.([]byte), []byte{7}) {
		t.Errorf("buffer: (%v, %v)", got, err)
	}

	// Shapes without an inspection capability come back as the handle.
	obj := bindtest.Object()
	if got, err := bind.Probe(cx, bind.Any, obj); err != nil || got != any(obj) {
		t.Errorf("object: (%v, %v)", got, err)
	}
}

func TestAnyBuild(t *testing.T) {
	cx := bindtest.NewContext()
	tests := []struct {
		name string
		v    any
		kind bind.Kind
	}{
		{"nil", nil, bind.KindNull},
		{"int", 42, bind.KindNumber},
		{"uint16", uint16(9), bind.KindNumber},
		{"float", 2.5, bind.KindNumber},
		{"bool", false, bind.KindBoolean},
		{"string", "v", bind.KindString},
		{"bytes", []byte{1}, bind.KindBuffer},
		{"time", time.UnixMilli(5000), bind.KindDate},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := bind.Build(cx, bind.Any, tt.v)
			if err != nil {
				t.Fatal(err)
			}
			if cx.KindOf(v) != tt.kind {
				t.Errorf("kind=%s, want=%s", cx.KindOf(v), tt.kind)
			}
		})
	}

	// A handle passes through untouched.
	obj := bindtest.Object()
	if v, err := bind.Build[any](cx, bind.Any, obj); err != nil || v != bind.Value(obj) {
		t.Errorf("handle passthrough: (%v, %v)", v, err)
	}

	// Unrepresentable Go values fail at the runtime level, not as a
	// mismatch.
	_, err := bind.Build[any](cx, bind.Any, struct{ A int }{1})
	if err == nil || bind.IsMismatch(err) {
		t.Errorf("want runtime-level failure, got %v", err)
	}
}

func TestBuildAllocationFailure(t *testing.T) {
	cx := bindtest.NewContext()
	cx.AllocErr = errors.New("out of memory")

	_, err := bind.Build(cx, bind.Number, 1)
	if !errors.Is(err, cx.AllocErr) {
		t.Fatalf("allocation failure not propagated: %v", err)
	}
	if bind.IsMismatch(err) {
		t.Fatal("allocation failure classified as mismatch")
	}
}
