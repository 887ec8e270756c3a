package bindtest_test

import (
	"testing"

	"github.com/funvibe/funbind/pkg/bind"
	"github.com/funvibe/funbind/pkg/bind/bindtest"
)

type foreign struct{}

func (foreign) DynamicValue() {}

func TestArgumentOutOfRange(t *testing.T) {
	cx := bindtest.NewContext(bindtest.Number(1))

	if k := cx.KindOf(cx.Argument(0)); k != bind.KindNumber {
		t.Errorf("slot 0: %s", k)
	}
	for _, i := range []int{1, 5, -1} {
		if k := cx.KindOf(cx.Argument(i)); k != bind.KindUndefined {
			t.Errorf("slot %d: want undefined, got %s", i, k)
		}
	}
	if cx.ArgCount() != 1 {
		t.Errorf("ArgCount=%d", cx.ArgCount())
	}
}

func TestForeignHandle(t *testing.T) {
	cx := bindtest.NewContext()

	if k := cx.KindOf(foreign{}); k != bind.KindObject {
		t.Errorf("foreign kind: %s", k)
	}
	if _, err := cx.NumberValue(foreign{}); err == nil {
		t.Error("foreign inspection should fail")
	}
}

func TestWrongKindReadIsRuntimeError(t *testing.T) {
	cx := bindtest.NewContext()
	_, err := cx.NumberValue(bindtest.String("nope"))
	if err == nil || bind.IsMismatch(err) {
		t.Fatalf("want runtime-level error, got %v", err)
	}
}
