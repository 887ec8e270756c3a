package bind_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/funvibe/funbind/pkg/bind"
	"github.com/funvibe/funbind/pkg/bind/bindtest"
)

func TestTypeMismatchMessage(t *testing.T) {
	err := &bind.TypeMismatch{Expected: "number"}
	if got := err.Error(); got != "expected number" {
		t.Fatalf("wrong message. got=%q, want=%q", got, "expected number")
	}
}

// appMismatch is an application-defined mismatch-tier error.
type appMismatch struct{ reason string }

func (e *appMismatch) Error() string { return e.reason }
func (e *appMismatch) TypeMismatch() {}

func TestIsMismatch(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"generic carrier", &bind.TypeMismatch{Expected: "string"}, true},
		{"wrapped carrier", fmt.Errorf("slot 0: %w", &bind.TypeMismatch{Expected: "string"}), true},
		{"application-defined", &appMismatch{reason: "odd length"}, true},
		{"plain error", errors.New("boom"), false},
		{"nil", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := bind.IsMismatch(tt.err); got != tt.want {
				t.Errorf("IsMismatch(%v)=%v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestOrThrowEscalatesMismatch(t *testing.T) {
	cx := bindtest.NewContext()
	err := bind.OrThrow(cx, &bind.TypeMismatch{Expected: "Date"})

	var te *bindtest.TypeError
	if !errors.As(err, &te) {
		t.Fatalf("expected a host type error, got %T: %v", err, err)
	}
	if te.Msg != "expected Date" {
		t.Errorf("wrong exception message: %q", te.Msg)
	}
	if len(cx.Thrown) != 1 || cx.Thrown[0] != "expected Date" {
		t.Errorf("type error not constructed through the context: %v", cx.Thrown)
	}
}

func TestOrThrowPassesRuntimeFailures(t *testing.T) {
	cx := bindtest.NewContext()
	boom := errors.New("reentrant call")
	if got := bind.OrThrow(cx, boom); got != boom {
		t.Fatalf("runtime failure rewritten: got %v", got)
	}
	if got := bind.OrThrow(cx, nil); got != nil {
		t.Fatalf("nil rewritten: got %v", got)
	}
	if len(cx.Thrown) != 0 {
		t.Errorf("no exception should be constructed, got %v", cx.Thrown)
	}
}
