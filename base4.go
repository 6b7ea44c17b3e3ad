// Package base4 provides dense, memory-efficient storage for sequences of
// base-4 digits (2-bit symbols, values 0..=3).
//
// Base-4 sequences show up wherever a quaternary alphabet is produced in
// bulk: quaternary-encoded payloads, DNA-like four-letter alphabets, or
// base-4 arithmetic experiments. Storing one digit per machine word wastes
// 62 of every 64 bits; this module packs digits at their natural 2-bit
// density instead.
//
// # Core Types
//
//   - packed.Block: fixed-capacity container holding up to 64 digits inside
//     one 128-bit word, with O(1) Push/Get/Set/Pop and no heap allocation.
//   - packed.Sequence: growable container chaining blocks, holding
//     arbitrarily long digit runs with O(1) append, O(1) random access and
//     O(1) length queries.
//
// # Basic Usage
//
// Loading digits and reading them back:
//
//	import (
//	    "github.com/SyedAnees21/base4"
//	    "github.com/SyedAnees21/base4/packed"
//	)
//
//	seq, err := base4.FromInts([]uint8{0, 1, 2, 3, 2, 1, 0})
//	if err != nil {
//	    // an input value was outside 0..=3
//	}
//
//	d, _ := seq.Get(2)          // packed.Digit2
//	_ = seq.Set(2, packed.Digit0)
//	total := seq.Len()          // 7
//
// Digit-level control lives in the packed package; this package adds
// convenience conversions between ordinary integer slices and packed
// sequences.
//
// # Error Handling
//
// Failures are reported as errors wrapping the sentinels in the errs
// package. Bulk pushes on the packed types follow an append-then-stop
// contract (the committed prefix stays); the conversions in this package
// validate the whole input first, so they are all-or-nothing.
package base4

import (
	"fmt"

	"github.com/SyedAnees21/base4/errs"
	"github.com/SyedAnees21/base4/packed"
)

// Unsigned covers the unsigned builtin integer types accepted by the
// conversion helpers.
type Unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint | ~uintptr
}

// NewSequence returns an empty packed digit sequence.
func NewSequence() *packed.Sequence {
	return packed.NewSequence()
}

// DigitsOf validates and converts a slice of unsigned integers to digits.
//
// Unlike Sequence.PushAll, this is all-or-nothing: if any value is outside
// 0..=3 an error wrapping errs.ErrInvalidDigit is returned and no digits
// are produced.
func DigitsOf[T Unsigned](values []T) ([]packed.Digit, error) {
	digits := make([]packed.Digit, len(values))
	for i, v := range values {
		if v > T(packed.Digit3) {
			return nil, fmt.Errorf("%w: value %d at index %d", errs.ErrInvalidDigit, v, i)
		}
		digits[i] = packed.Digit(v)
	}

	return digits, nil
}

// FromInts builds a packed sequence from a slice of unsigned integers.
//
// The input is validated up front, so on error the returned sequence is nil
// and nothing was allocated beyond the validation pass.
func FromInts[T Unsigned](values []T) (*packed.Sequence, error) {
	digits, err := DigitsOf(values)
	if err != nil {
		return nil, err
	}

	seq := packed.NewSequence()
	if err := seq.PushAll(digits); err != nil {
		// Unreachable: every digit was validated above.
		return nil, err
	}

	return seq, nil
}

// IntsOf reads every digit of a sequence back into a slice of the caller's
// integer type, in insertion order. The sequence is not modified.
func IntsOf[T Unsigned](s *packed.Sequence) []T {
	digits := s.Digits()
	values := make([]T, len(digits))
	for i, d := range digits {
		values[i] = T(d)
	}

	return values
}
