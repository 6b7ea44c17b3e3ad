package packed

import (
	"fmt"

	"github.com/SyedAnees21/base4/errs"
)

// BlockCapacity is the number of digits one Block holds: 64 digits at
// 2 bits each fill the 128-bit storage word exactly.
const BlockCapacity = 64

// digitsPerWord is how many 2-bit digits fit in one uint64 half of the
// storage word. A digit field starts at an even bit offset, so no field
// ever straddles the boundary between the two halves.
const digitsPerWord = 64 / digitBits

// Block packs up to 64 base-4 digits into a single 128-bit word, stored as
// two uint64 halves with the low half first.
//
// The zero value is an empty block ready for use. Block is a small value
// type (24 bytes); copy it freely, but note that copies do not share
// storage.
//
// Only the low count*2 bits of the storage word are meaningful; all bits
// above the occupied region are zero. Pop and Set maintain this invariant
// so that blocks holding the same digits are always bit-identical.
type Block struct {
	words [2]uint64
	count int
}

// NewBlock returns an empty Block. Equivalent to the zero value.
func NewBlock() Block {
	return Block{}
}

// Push appends one digit at the next free slot.
//
// Returns an error wrapping errs.ErrInvalidDigit if d is outside 0..=3, or
// errs.ErrCapacityExceeded if the block already holds 64 digits. The block
// is unchanged on error.
func (b *Block) Push(d Digit) error {
	if !d.Valid() {
		return fmt.Errorf("%w: %d", errs.ErrInvalidDigit, d)
	}
	if b.count == BlockCapacity {
		return fmt.Errorf("%w: block holds %d digits", errs.ErrCapacityExceeded, BlockCapacity)
	}

	b.words[b.count/digitsPerWord] |= uint64(d) << (digitBits * (b.count % digitsPerWord))
	b.count++

	return nil
}

// PushAll appends every digit in order, stopping at the first digit that is
// invalid or would exceed capacity.
//
// On error the digits preceding the failing one remain committed; there is
// no rollback. The returned error wraps errs.ErrInvalidDigit or
// errs.ErrCapacityExceeded and reports how many digits were applied.
func (b *Block) PushAll(digits []Digit) error {
	for i, d := range digits {
		if err := b.Push(d); err != nil {
			return fmt.Errorf("pushed %d of %d digits: %w", i, len(digits), err)
		}
	}

	return nil
}

// Get extracts the digit at the given logical index.
//
// Returns an error wrapping errs.ErrIndexOutOfRange when index is negative
// or addresses an unoccupied slot (index >= Len()).
func (b *Block) Get(index int) (Digit, error) {
	if index < 0 || index >= b.count {
		return 0, fmt.Errorf("%w: index %d, block holds %d digits", errs.ErrIndexOutOfRange, index, b.count)
	}

	return Digit(b.words[index/digitsPerWord] >> (digitBits * (index % digitsPerWord)) & digitMask), nil
}

// Set overwrites an occupied slot in place without changing the count.
//
// Returns an error wrapping errs.ErrIndexOutOfRange when the slot is not
// occupied, or errs.ErrInvalidDigit when d is outside 0..=3.
func (b *Block) Set(index int, d Digit) error {
	if index < 0 || index >= b.count {
		return fmt.Errorf("%w: index %d, block holds %d digits", errs.ErrIndexOutOfRange, index, b.count)
	}
	if !d.Valid() {
		return fmt.Errorf("%w: %d", errs.ErrInvalidDigit, d)
	}

	shift := digitBits * (index % digitsPerWord)
	word := &b.words[index/digitsPerWord]
	*word = *word&^(digitMask<<shift) | uint64(d)<<shift

	return nil
}

// Pop removes and returns the most recently pushed digit, clearing its bits
// so the unused region of the storage word stays zero.
//
// The second return value is false when the block is empty.
func (b *Block) Pop() (Digit, bool) {
	if b.count == 0 {
		return 0, false
	}

	b.count--
	shift := digitBits * (b.count % digitsPerWord)
	word := &b.words[b.count/digitsPerWord]
	d := Digit(*word >> shift & digitMask)
	*word &^= digitMask << shift

	return d, true
}

// Len returns the number of digits currently stored.
func (b *Block) Len() int {
	return b.count
}

// IsFull reports whether the block holds 64 digits.
func (b *Block) IsFull() bool {
	return b.count == BlockCapacity
}

// IsEmpty reports whether the block holds no digits.
func (b *Block) IsEmpty() bool {
	return b.count == 0
}

// Digits returns a copy of the occupied digits in insertion order.
func (b *Block) Digits() []Digit {
	digits := make([]Digit, b.count)
	for i := range digits {
		digits[i] = Digit(b.words[i/digitsPerWord] >> (digitBits * (i % digitsPerWord)) & digitMask)
	}

	return digits
}

// Words returns the two halves of the 128-bit storage word, low half first.
//
// The layout is the documented 2-bit LSB-first packing; blocks loaded with
// the same digit sequence return identical word pairs. This is an in-memory
// view only, not a defined byte format.
func (b *Block) Words() (lo, hi uint64) {
	return b.words[0], b.words[1]
}
