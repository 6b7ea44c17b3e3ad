// Package errs defines the sentinel errors returned by the base4 packed
// containers.
//
// All errors are plain sentinel values; operations wrap them with context
// using fmt.Errorf("%w: ...") so callers can match with errors.Is:
//
//	if err := block.Push(d); errors.Is(err, errs.ErrCapacityExceeded) {
//	    // block is full, allocate a new one
//	}
package errs

import "errors"

var (
	// ErrInvalidDigit indicates a value outside the base-4 range 0..=3 was
	// supplied to a digit-accepting operation. The operation detects this
	// before any mutation, so the container is unchanged for that digit.
	ErrInvalidDigit = errors.New("invalid base-4 digit")

	// ErrCapacityExceeded indicates a push was attempted on a Block that
	// already holds its maximum of 64 digits. Sequence never returns this
	// error; it allocates a new block instead.
	ErrCapacityExceeded = errors.New("block capacity exceeded")

	// ErrIndexOutOfRange indicates a get or set addressed a logical index
	// that is not currently occupied.
	ErrIndexOutOfRange = errors.New("index out of range")
)
