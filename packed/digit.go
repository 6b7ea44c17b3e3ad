package packed

import "strconv"

// Digit is a single base-4 symbol with value 0..=3.
//
// Digit is a plain uint8 underneath; construct one from untrusted input via
// a Valid() check, or use the conversion helpers in the root base4 package
// which validate whole slices up front.
type Digit uint8

const (
	Digit0 Digit = 0
	Digit1 Digit = 1
	Digit2 Digit = 2
	Digit3 Digit = 3
)

// digitBits is the storage width of one digit.
const digitBits = 2

// digitMask selects the low 2 bits of a word.
const digitMask = uint64(1<<digitBits - 1)

// Valid reports whether d is within the base-4 range 0..=3.
func (d Digit) Valid() bool {
	return d <= Digit3
}

// String returns the decimal representation of the digit, or "invalid(n)"
// for out-of-range values.
func (d Digit) String() string {
	if !d.Valid() {
		return "invalid(" + strconv.Itoa(int(d)) + ")"
	}

	return strconv.Itoa(int(d))
}
