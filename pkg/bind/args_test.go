package bind_test

import (
	"errors"
	"testing"

	"github.com/funvibe/funbind/pkg/bind"
	"github.com/funvibe/funbind/pkg/bind/bindtest"
)

func TestArgsRequired(t *testing.T) {
	cx := bindtest.NewContext(bindtest.String("hello"), bindtest.Number(3))

	s, n, err := bind.Args2(cx, bind.String, bind.Number)
	if err != nil {
		t.Fatal(err)
	}
	if s != "hello" || n != 3 {
		t.Errorf("got=(%q, %v)", s, n)
	}
}

func TestArgsShortCircuitsLeftToRight(t *testing.T) {
	// Slot 0 has the wrong shape; slot 1 would raise if inspected. The
	// extraction must fail on slot 0 without ever inspecting slot 1's
	// payload.
	trap := bindtest.Throwing(bind.KindNumber, "getter")
	cx := bindtest.NewContext(bindtest.String("not-a-number"), trap)

	_, _, err := bind.Args2(cx, bind.Number, bind.Number)

	var te *bindtest.TypeError
	if !errors.As(err, &te) || te.Msg != "expected number" {
		t.Fatalf("want escalated mismatch for slot 0, got %v", err)
	}
	if trap.Touched {
		t.Fatal("slot 1 was inspected after slot 0 failed")
	}
}

func TestArgsReadsEveryHandle(t *testing.T) {
	// Conversion stops at the first failed slot, but the raw handle reads
	// always cover the full arity.
	cx := bindtest.NewContext(bindtest.String("x"), bindtest.Number(2), bindtest.Number(3))
	if _, _, _, err := bind.Args3(cx, bind.Number, bind.Number, bind.Number); err == nil {
		t.Fatal("slot 0 should have failed")
	}
	if got := len(cx.Reads); got != 3 {
		t.Errorf("Args3 handle reads=%d, want 3", got)
	}

	cx = bindtest.NewContext(bindtest.String("x"))
	_, _, _, ok, err := bind.ArgsOpt3(cx, bind.Number, bind.Number, bind.Number)
	if err != nil || ok {
		t.Fatalf("want clean no-match, got ok=%v err=%v", ok, err)
	}
	if got := len(cx.Reads); got != 3 {
		t.Errorf("ArgsOpt3 handle reads=%d, want 3", got)
	}
}

func TestArgsOptOverloadDispatch(t *testing.T) {
	cx := bindtest.NewContext(bindtest.Number(5), bindtest.Number(3))

	a, b, ok, err := bind.ArgsOpt2(cx, bind.Number, bind.Number)
	if err != nil || !ok {
		t.Fatalf("numeric shape should match: ok=%v err=%v", ok, err)
	}
	if a != 5.0 || b != 3.0 {
		t.Errorf("got=(%v, %v)", a, b)
	}

	_, _, ok, err = bind.ArgsOpt2(cx, bind.String, bind.String)
	if err != nil {
		t.Fatalf("mismatch leaked as error: %v", err)
	}
	if ok {
		t.Fatal("string shape should not match numeric arguments")
	}
	if len(cx.Thrown) != 0 {
		t.Fatalf("probing constructed host exceptions: %v", cx.Thrown)
	}
}

func TestArgsOptStopsAtFirstMismatch(t *testing.T) {
	trap := bindtest.Throwing(bind.KindNumber, "getter")
	cx := bindtest.NewContext(bindtest.String("x"), trap)

	_, _, ok, err := bind.ArgsOpt2(cx, bind.Number, bind.Number)
	if err != nil || ok {
		t.Fatalf("want clean no-match, got ok=%v err=%v", ok, err)
	}
	if trap.Touched {
		t.Fatal("slot 1 inspected after slot 0 mismatched")
	}
}

func TestArgsOptNeverSwallowsRuntimeFailure(t *testing.T) {
	cx := bindtest.NewContext(bindtest.Number(1), bindtest.Throwing(bind.KindNumber, "boom"))

	_, _, ok, err := bind.ArgsOpt2(cx, bind.Number, bind.Number)
	if ok {
		t.Fatal("matched through a runtime failure")
	}
	if err == nil || bind.IsMismatch(err) {
		t.Fatalf("runtime failure reported as no-match: %v", err)
	}
}

func TestArgsZeroArity(t *testing.T) {
	cx := bindtest.NewContext(bindtest.Object(), bindtest.Throwing(bind.KindNumber, "never"))

	if err := bind.Args0(cx); err != nil {
		t.Fatalf("Args0: %v", err)
	}
	ok, err := bind.ArgsOpt0(cx)
	if err != nil || !ok {
		t.Fatalf("ArgsOpt0: ok=%v err=%v", ok, err)
	}
	if len(cx.Reads) != 0 {
		t.Errorf("zero arity read slots %v", cx.Reads)
	}
}

func TestArgsMissingTrailingReadAsUndefined(t *testing.T) {
	cx := bindtest.NewContext(bindtest.Number(1))

	n, p, err := bind.Args2(cx, bind.Number, bind.Opt(bind.Number))
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 || p != nil {
		t.Errorf("got=(%v, %v)", n, p)
	}
}

func TestArgsThirtyTwo(t *testing.T) {
	// Two supplied arguments, thirty missing ones: every absent slot
	// reads as undefined and extracts to nil through Opt.
	cx := bindtest.NewContext(bindtest.Number(1), bindtest.Number(2))
	o := bind.Opt(bind.Number)

	v1, v2, v3, v4, v5, v6, v7, v8, v9, v10,
		v11, v12, v13, v14, v15, v16, v17, v18, v19, v20,
		v21, v22, v23, v24, v25, v26, v27, v28, v29, v30,
		v31, v32, err := bind.Args32(cx,
		bind.Number, bind.Number, o, o, o, o, o, o, o, o,
		o, o, o, o, o, o, o, o, o, o,
		o, o, o, o, o, o, o, o, o, o,
		o, o)
	if err != nil {
		t.Fatal(err)
	}
	if v1 != 1 || v2 != 2 {
		t.Errorf("supplied slots: (%v, %v)", v1, v2)
	}
	for i, p := range []*float64{
		v3, v4, v5, v6, v7, v8, v9, v10, v11, v12,
		v13, v14, v15, v16, v17, v18, v19, v20, v21, v22,
		v23, v24, v25, v26, v27, v28, v29, v30, v31, v32,
	} {
		if p != nil {
			t.Errorf("slot %d: want nil, got %v", i+2, *p)
		}
	}
}

func TestSingleArgAdapter(t *testing.T) {
	cx := bindtest.NewContext(bindtest.String("solo"))

	s, err := bind.Arg(cx, bind.String)
	if err != nil || s != "solo" {
		t.Fatalf("Arg: (%q, %v)", s, err)
	}

	n, ok, err := bind.ArgOpt(cx, bind.Number)
	if err != nil || ok {
		t.Fatalf("ArgOpt mismatch: ok=%v err=%v n=%v", ok, err, n)
	}
	s2, ok, err := bind.ArgOpt(cx, bind.String)
	if err != nil || !ok || s2 != "solo" {
		t.Fatalf("ArgOpt match: (%q, %v, %v)", s2, ok, err)
	}
}
