// Package bind converts values between a dynamically-typed host runtime
// and native Go code sitting behind its function boundary. The host side
// is abstracted by two interfaces, Value (an opaque handle) and
// CallContext (the capability surface a runtime exposes: raw argument
// access, type-error construction, shape inspection and value
// construction); everything else in the package is built on those.
//
// Extraction is driven by codecs. A codec names one interpretation of a
// dynamic shape as a native type:
//
//	greeting, name, err := bind.Args2(cx, bind.String, bind.String)
//	if err != nil {
//		return nil, err
//	}
//	return bind.Build(cx, bind.String, greeting+", "+name+"!")
//
// Failures come in two tiers. A shape mismatch means the value did not
// have the form the codec requires; it is reported as a Mismatch error
// and is recoverable. A runtime-level failure means the host itself could
// not complete an operation; it is always propagated and never retried.
// The Args family escalates mismatches into host type-errors; the ArgsOpt
// family reports them as a plain "no match", which is what makes overload
// dispatch a composition instead of a feature:
//
//	if a, b, ok, err := bind.ArgsOpt2(cx, bind.Number, bind.Number); err != nil {
//		return nil, err
//	} else if ok {
//		return add(cx, a, b)
//	}
//	s1, s2, err := bind.Args2(cx, bind.String, bind.String)
//	if err != nil {
//		return nil, err
//	}
//	return concat(cx, s1, s2)
//
// Ambiguous native types pick their interpretation by codec: a float64
// extracts from a number with bind.Number and from a date with bind.Date,
// a []byte from the two buffer shapes with bind.Buffer or
// bind.ArrayBuffer. Optional arguments wrap any codec with bind.Opt,
// which turns null and undefined into nil. Arities up to 32 are
// generated; missing trailing arguments read as undefined, never as an
// error.
package bind
