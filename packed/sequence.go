package packed

import (
	"fmt"

	"github.com/SyedAnees21/base4/errs"
)

// Sequence stores an unbounded run of base-4 digits by chaining Blocks.
//
// Blocks live in a flat slice indexed by logical position: digit i resides
// in block i/64 at offset i%64. Every block except possibly the last is
// full, and the last block is never empty (Pop releases a block as soon as
// it drains). Growth allocates exactly one block at a time, so memory stays
// proportional to the digit count with at most 63 unused slots in the tail
// block.
//
// The zero value is an empty sequence ready for use.
type Sequence struct {
	blocks []Block
	length int
}

// NewSequence returns an empty Sequence with no blocks allocated.
func NewSequence() *Sequence {
	return &Sequence{}
}

// Push appends one digit, allocating a new tail block first if the current
// tail is full or no blocks exist.
//
// Growth makes capacity unbounded, so Push fails only with an error
// wrapping errs.ErrInvalidDigit.
func (s *Sequence) Push(d Digit) error {
	if !d.Valid() {
		return fmt.Errorf("%w: %d", errs.ErrInvalidDigit, d)
	}

	tail := s.tail()
	if err := tail.Push(d); err != nil {
		// Unreachable: tail() never returns a full block and d is valid.
		return err
	}
	s.length++

	return nil
}

// PushAll appends every digit in order, growing blocks as needed.
//
// On the first invalid digit it stops and returns an error wrapping
// errs.ErrInvalidDigit; the digits pushed before it remain committed, per
// the append-then-stop contract. Validate the input first (for example with
// Digit.Valid) when atomicity is required.
func (s *Sequence) PushAll(digits []Digit) error {
	for i, d := range digits {
		if err := s.Push(d); err != nil {
			return fmt.Errorf("pushed %d of %d digits: %w", i, len(digits), err)
		}
	}

	return nil
}

// Get returns the digit at the given logical index.
//
// Returns an error wrapping errs.ErrIndexOutOfRange when index is negative
// or index >= Len().
func (s *Sequence) Get(index int) (Digit, error) {
	if index < 0 || index >= s.length {
		return 0, fmt.Errorf("%w: index %d, sequence holds %d digits", errs.ErrIndexOutOfRange, index, s.length)
	}

	return s.blocks[index/BlockCapacity].Get(index % BlockCapacity)
}

// Set overwrites the digit at the given logical index without changing the
// length.
//
// Returns an error wrapping errs.ErrIndexOutOfRange or errs.ErrInvalidDigit.
func (s *Sequence) Set(index int, d Digit) error {
	if index < 0 || index >= s.length {
		return fmt.Errorf("%w: index %d, sequence holds %d digits", errs.ErrIndexOutOfRange, index, s.length)
	}

	return s.blocks[index/BlockCapacity].Set(index%BlockCapacity, d)
}

// Pop removes and returns the last digit in the sequence. When the tail
// block drains it is released, so an emptied sequence holds zero blocks.
//
// The second return value is false when the sequence is empty.
func (s *Sequence) Pop() (Digit, bool) {
	n := len(s.blocks)
	if n == 0 {
		return 0, false
	}

	d, ok := s.blocks[n-1].Pop()
	if !ok {
		// Unreachable: an empty tail block is released immediately.
		return 0, false
	}
	s.length--

	if s.blocks[n-1].IsEmpty() {
		s.blocks = s.blocks[:n-1]
	}

	return d, true
}

// PopAll drains the whole sequence and returns the digits in their original
// insertion order. The sequence is empty afterwards.
func (s *Sequence) PopAll() []Digit {
	digits := s.Digits()
	s.Clear()

	return digits
}

// Digits returns a copy of all stored digits in insertion order without
// modifying the sequence.
func (s *Sequence) Digits() []Digit {
	digits := make([]Digit, 0, s.length)
	for i := range s.blocks {
		digits = append(digits, s.blocks[i].Digits()...)
	}

	return digits
}

// Len returns the total number of digits stored. O(1).
func (s *Sequence) Len() int {
	return s.length
}

// Blocks returns the number of blocks currently allocated.
func (s *Sequence) Blocks() int {
	return len(s.blocks)
}

// IsEmpty reports whether the sequence holds no digits.
func (s *Sequence) IsEmpty() bool {
	return s.length == 0
}

// Clear releases all blocks and resets the sequence to the empty state.
func (s *Sequence) Clear() {
	s.blocks = nil
	s.length = 0
}

// tail returns the last block, allocating one when none exists or the last
// is full.
func (s *Sequence) tail() *Block {
	if n := len(s.blocks); n > 0 && !s.blocks[n-1].IsFull() {
		return &s.blocks[n-1]
	}

	s.blocks = append(s.blocks, Block{})

	return &s.blocks[len(s.blocks)-1]
}
