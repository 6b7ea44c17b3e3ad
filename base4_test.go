package base4_test

import (
	"fmt"
	"testing"

	"github.com/SyedAnees21/base4"
	"github.com/SyedAnees21/base4/errs"
	"github.com/SyedAnees21/base4/packed"
	"github.com/stretchr/testify/require"
)

func TestDigitsOf(t *testing.T) {
	digits, err := base4.DigitsOf([]uint8{0, 1, 2, 3})
	require.NoError(t, err)
	require.Equal(t, []packed.Digit{packed.Digit0, packed.Digit1, packed.Digit2, packed.Digit3}, digits)
}

func TestDigitsOf_AllOrNothing(t *testing.T) {
	digits, err := base4.DigitsOf([]uint64{0, 1, 4, 2})

	require.ErrorIs(t, err, errs.ErrInvalidDigit)
	require.Nil(t, digits)
}

func TestFromInts_RoundTrip(t *testing.T) {
	values := []uint64{0, 1, 2, 3, 2, 1, 0}

	seq, err := base4.FromInts(values)
	require.NoError(t, err)
	require.Equal(t, len(values), seq.Len())

	require.Equal(t, values, base4.IntsOf[uint64](seq))
}

func TestFromInts_Invalid(t *testing.T) {
	seq, err := base4.FromInts([]uint{1, 2, 3, 7})

	require.ErrorIs(t, err, errs.ErrInvalidDigit)
	require.Nil(t, seq)
}

func TestFromInts_MultiBlock(t *testing.T) {
	values := make([]uint16, 300)
	for i := range values {
		values[i] = uint16(i % 4)
	}

	seq, err := base4.FromInts(values)
	require.NoError(t, err)
	require.Equal(t, 300, seq.Len())
	require.Equal(t, 5, seq.Blocks())
	require.Equal(t, values, base4.IntsOf[uint16](seq))
}

func ExampleFromInts() {
	seq, _ := base4.FromInts([]uint8{0, 1, 2, 3, 2, 1, 0})

	fmt.Println(seq.Len())
	fmt.Println(base4.IntsOf[uint8](seq))
	// Output:
	// 7
	// [0 1 2 3 2 1 0]
}

func ExampleNewSequence() {
	seq := base4.NewSequence()

	_ = seq.Push(packed.Digit2)
	_ = seq.Push(packed.Digit3)
	_ = seq.Set(0, packed.Digit1)

	d, _ := seq.Get(0)
	fmt.Println(d, seq.Len())
	// Output: 1 2
}
