package bind_test

import (
	"testing"

	"github.com/google/uuid"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/funvibe/funbind/pkg/bind"
	"github.com/funvibe/funbind/pkg/bind/bindtest"
)

type point struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
}

func TestJSONCodec(t *testing.T) {
	cx := bindtest.NewContext()
	codec := bind.JSON[point]()

	v, err := bind.Build(cx, codec, point{X: 1, Y: 2})
	if err != nil {
		t.Fatal(err)
	}
	if cx.KindOf(v) != bind.KindString {
		t.Errorf("built kind=%s, want string", cx.KindOf(v))
	}
	got, err := bind.Probe(cx, codec, v)
	if err != nil {
		t.Fatal(err)
	}
	if got != (point{X: 1, Y: 2}) {
		t.Errorf("round trip: %+v", got)
	}
}

func TestJSONCodecMismatches(t *testing.T) {
	cx := bindtest.NewContext()
	codec := bind.JSON[point]()

	if _, err := bind.Probe(cx, codec, bindtest.Number(1)); !bind.IsMismatch(err) {
		t.Errorf("non-string shape: %v", err)
	}
	// An undecodable payload is recoverable too: the caller may try a
	// different interpretation of the same string.
	if _, err := bind.Probe(cx, codec, bindtest.String("{")); !bind.IsMismatch(err) {
		t.Errorf("bad payload: %v", err)
	}
}

func TestYAMLCodec(t *testing.T) {
	cx := bindtest.NewContext()
	codec := bind.YAML[point]()

	v, err := bind.Build(cx, codec, point{X: 3, Y: 4})
	if err != nil {
		t.Fatal(err)
	}
	got, err := bind.Probe(cx, codec, v)
	if err != nil {
		t.Fatal(err)
	}
	if got != (point{X: 3, Y: 4}) {
		t.Errorf("round trip: %+v", got)
	}

	got, err = bind.Probe(cx, codec, bindtest.String("x: 7\ny: 9\n"))
	if err != nil || got != (point{X: 7, Y: 9}) {
		t.Errorf("literal document: (%+v, %v)", got, err)
	}
	if _, err := bind.Probe(cx, codec, bindtest.String(": {")); !bind.IsMismatch(err) {
		t.Errorf("bad payload: %v", err)
	}
}

func TestProtoCodec(t *testing.T) {
	cx := bindtest.NewContext()
	codec := bind.Proto(&structpb.Struct{})

	msg, err := structpb.NewStruct(map[string]any{"name": "conv", "n": 1.0})
	if err != nil {
		t.Fatal(err)
	}

	v, err := bind.Build[proto.Message](cx, codec, msg)
	if err != nil {
		t.Fatal(err)
	}
	got, err := bind.Probe(cx, codec, v)
	if err != nil {
		t.Fatal(err)
	}
	if !proto.Equal(got, msg) {
		t.Errorf("round trip: %v", got)
	}

	if _, err := bind.Probe(cx, codec, bindtest.String("not json")); !bind.IsMismatch(err) {
		t.Errorf("bad payload: %v", err)
	}
	if _, err := bind.Probe(cx, codec, bindtest.Bool(true)); !bind.IsMismatch(err) {
		t.Errorf("non-string shape: %v", err)
	}
}

func TestUUIDCodec(t *testing.T) {
	cx := bindtest.NewContext()
	id := uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")

	v, err := bind.Build(cx, bind.UUID, id)
	if err != nil {
		t.Fatal(err)
	}
	got, err := bind.Probe(cx, bind.UUID, v)
	if err != nil || got != id {
		t.Fatalf("round trip: (%v, %v)", got, err)
	}

	if _, err := bind.Probe(cx, bind.UUID, bindtest.String("not-a-uuid")); !bind.IsMismatch(err) {
		t.Errorf("malformed text: %v", err)
	}
	if _, err := bind.Probe(cx, bind.UUID, bindtest.Number(4)); !bind.IsMismatch(err) {
		t.Errorf("non-string shape: %v", err)
	}
}
