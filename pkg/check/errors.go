package check

import "errors"

var (
	// ErrRejected is returned by Narrow when the value does not conform to the checker.
	ErrRejected = errors.New("value rejected")
	// ErrConvert is returned by Narrow when an accepted value cannot be decoded into the target type.
	ErrConvert = errors.New("cannot convert accepted value")
)
