// Package packed implements dense storage for base-4 digits.
//
// A base-4 digit carries 2 bits of information, so storing one digit per
// machine word wastes 62 of every 64 bits. This package packs digits at
// their natural density: Block holds up to 64 digits inside a single
// 128-bit word, and Sequence chains blocks to hold arbitrarily long digit
// runs with O(1) append and O(1) random access.
//
// # Bit Layout
//
// Within a block, the digit at logical position k occupies bits [2k, 2k+1]
// of the 128-bit storage word, least-significant-bit first: digit 0 lives
// in the two lowest bits. Two blocks loaded with the same digits are
// bit-identical, so the layout is stable for callers that inspect the raw
// words via Words().
//
// # Error Handling
//
// Fallible operations return errors wrapping the sentinels in the errs
// package (errs.ErrInvalidDigit, errs.ErrCapacityExceeded,
// errs.ErrIndexOutOfRange); match them with errors.Is. Sequence absorbs
// ErrCapacityExceeded internally by growing, so it never surfaces it.
//
// Bulk loads follow an append-then-stop contract: PushAll commits every
// digit preceding the first invalid one and then stops. There is no
// rollback. Callers that need all-or-nothing semantics must validate the
// input before pushing.
//
// # Concurrency
//
// Block and Sequence are plain single-owner data structures with no
// internal locking. Callers sharing an instance across goroutines must
// provide their own synchronization.
package packed
