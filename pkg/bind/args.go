package bind

//go:generate go run github.com/funvibe/funbind/cmd/argsgen -out args_gen.go

// Arg extracts the first argument with the strict conversion. It is the
// single-value spelling of Args1 for call sites that take exactly one
// argument.
func Arg[T any](cx CallContext, e Extractor[T]) (T, error) {
	return Extract(cx, e, cx.Argument(0))
}

// ArgOpt probes the first argument. ok is false on a shape mismatch;
// runtime-level failures are returned as err.
func ArgOpt[T any](cx CallContext, e Extractor[T]) (T, bool, error) {
	t, err := Probe(cx, e, cx.Argument(0))
	if err != nil {
		var zero T
		if IsMismatch(err) {
			return zero, false, nil
		}
		return zero, false, err
	}
	return t, true, nil
}
