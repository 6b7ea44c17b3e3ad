package packed

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDigit_Valid(t *testing.T) {
	require.True(t, Digit0.Valid())
	require.True(t, Digit1.Valid())
	require.True(t, Digit2.Valid())
	require.True(t, Digit3.Valid())

	require.False(t, Digit(4).Valid())
	require.False(t, Digit(255).Valid())
}

func TestDigit_String(t *testing.T) {
	require.Equal(t, "0", Digit0.String())
	require.Equal(t, "3", Digit3.String())
	require.Equal(t, "invalid(4)", Digit(4).String())
}
