package bind

import (
	"fmt"
	"reflect"
	"time"
)

// AnyCodec is the kind-directed catch-all. Extraction maps every dynamic
// shape to its natural Go type; building inspects the Go value, through
// reflection where needed, and produces the matching dynamic shape.
type AnyCodec struct{}

// Any converts without a statically chosen target type. Extraction yields:
//
//	undefined, null  nil
//	boolean          bool
//	number           float64
//	string           string
//	Date             time.Time
//	Buffer           []byte
//	ArrayBuffer      []byte
//	anything else    the raw Value handle
//
// Extraction never mismatches. Building accepts nil, booleans, all integer
// and float types, strings, []byte, time.Time and Value handles produced
// by the same runtime; other Go types fail at the runtime level.
var Any AnyCodec

func (AnyCodec) tryExtract(cx CallContext, v Value) (any, error) {
	switch cx.KindOf(v) {
	case KindUndefined, KindNull:
		return nil, nil
	case KindBoolean:
		return cx.BoolValue(v)
	case KindNumber:
		return cx.NumberValue(v)
	case KindString:
		return cx.StringValue(v)
	case KindDate:
		ms, err := cx.DateValue(v)
		if err != nil {
			return nil, err
		}
		return time.UnixMilli(int64(ms)).UTC(), nil
	case KindBuffer, KindArrayBuffer:
		return cx.BytesValue(v)
	default:
		return v, nil
	}
}

func (AnyCodec) build(cx CallContext, val any) (Value, error) {
	if val == nil {
		return cx.Null(), nil
	}

	switch v := val.(type) {
	case Value:
		return v, nil
	case bool:
		return cx.NewBool(v)
	case string:
		return cx.NewString(v)
	case []byte:
		return cx.NewBuffer(v)
	case time.Time:
		return cx.NewDate(float64(v.UnixMilli()))
	}

	rv := reflect.ValueOf(val)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return cx.NewNumber(float64(rv.Int()))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return cx.NewNumber(float64(rv.Uint()))
	case reflect.Float32, reflect.Float64:
		return cx.NewNumber(rv.Float())
	case reflect.String:
		return cx.NewString(rv.String())
	case reflect.Bool:
		return cx.NewBool(rv.Bool())
	case reflect.Slice:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return cx.NewBuffer(rv.Bytes())
		}
	}

	return nil, fmt.Errorf("cannot convert %T to a dynamic value", val)
}
