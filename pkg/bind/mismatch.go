package bind

import "errors"

// Mismatch is the marker for the recoverable error tier: a dynamic value
// whose runtime shape does not fit the requested native type. Errors in
// this tier are data, not control flow: a caller probing several argument
// shapes discards them and tries the next shape. Application code may
// define its own mismatch-tier errors by implementing this interface;
// anything else returned by a conversion is a runtime-level failure and is
// always propagated unchanged.
type Mismatch interface {
	error
	TypeMismatch()
}

// TypeMismatch is the generic mismatch carrier. Expected is the canonical
// dynamic type name of the shape the conversion required; it is the only
// state the error carries.
type TypeMismatch struct {
	Expected string
}

func (e *TypeMismatch) Error() string { return "expected " + e.Expected }

// TypeMismatch marks the error as mismatch-tier.
func (e *TypeMismatch) TypeMismatch() {}

func mismatch(expected string) error {
	return &TypeMismatch{Expected: expected}
}

// decodeError is the mismatch tier for codecs that parse text payloads
// (JSON, YAML, proto, uuid). A payload that fails to parse is treated the
// same way as a wrong shape: the caller may try another interpretation.
type decodeError struct {
	format string
	err    error
}

func (e *decodeError) Error() string { return e.format + ": " + e.err.Error() }

func (e *decodeError) Unwrap() error { return e.err }

func (e *decodeError) TypeMismatch() {}

// IsMismatch reports whether err belongs to the mismatch tier.
func IsMismatch(err error) bool {
	var m Mismatch
	return errors.As(err, &m)
}

// OrThrow escalates a mismatch into a host type-error carrying the same
// message. Runtime-level failures and nil pass through unchanged. This is
// the only bridge between the two error tiers: the strict conversion forms
// are the probing forms composed with OrThrow.
func OrThrow(cx CallContext, err error) error {
	if err == nil {
		return nil
	}
	if IsMismatch(err) {
		return cx.TypeError(err.Error())
	}
	return err
}
