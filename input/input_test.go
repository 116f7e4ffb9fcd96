package input_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xeptore/sizeconv/input"
	"github.com/xeptore/sizeconv/unit"
)

func TestResolve(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		raw   string
		value float64
		unit  unit.Unit
	}{
		{name: "megabytes", raw: "24 mb", value: 24, unit: unit.Megabytes},
		{name: "kilobytes", raw: "1500 kb", value: 1500, unit: unit.Kilobytes},
		{name: "short bytes tag", raw: "7 b", value: 7, unit: unit.Bytes},
		{name: "long bytes tag", raw: "7 bytes", value: 7, unit: unit.Bytes},
		{name: "gigabytes", raw: "0.5 gb", value: 0.5, unit: unit.Gigabytes},
		{name: "upper case unit", raw: "3 GB", value: 3, unit: unit.Gigabytes},
		{name: "mixed case unit", raw: "3 Kb", value: 3, unit: unit.Kilobytes},
		{name: "extra whitespace", raw: "  12 \t mb ", value: 12, unit: unit.Megabytes},
		{name: "exponent", raw: "1e3 b", value: 1000, unit: unit.Bytes},
		{name: "negative", raw: "-5 mb", value: -5, unit: unit.Megabytes},
		{name: "overflowing exponent", raw: "1e400 b", value: math.Inf(1), unit: unit.Bytes},
		{name: "negative overflowing exponent", raw: "-1e400 b", value: math.Inf(-1), unit: unit.Bytes},
		{name: "underflowing exponent", raw: "1e-400 gb", value: 0, unit: unit.Gigabytes},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			in, err := input.Resolve(test.raw)
			require.NoError(t, err)
			assert.Exactly(t, test.value, in.Value)
			assert.Exactly(t, test.unit, in.Unit)
		})
	}
}

func TestResolveErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		raw      string
		expected error
		message  string
	}{
		{name: "empty", raw: "", expected: input.ErrMalformedInput, message: "bad format"},
		{name: "number only", raw: "24", expected: input.ErrMalformedInput, message: "bad format"},
		{name: "glued", raw: "24mb", expected: input.ErrMalformedInput, message: "bad format"},
		{name: "three tokens", raw: "24 mb now", expected: input.ErrMalformedInput, message: "bad format"},
		{name: "not a number", raw: "abc mb", expected: input.ErrInvalidNumber, message: "invalid number"},
		{name: "hex float", raw: "0x1p3 b", expected: input.ErrInvalidNumber, message: "invalid number"},
		{name: "signed hex float", raw: "-0X10 kb", expected: input.ErrInvalidNumber, message: "invalid number"},
		{name: "unknown unit", raw: "5 XB", expected: input.ErrUnknownUnit, message: "invalid unit"},
		{name: "binary unit", raw: "5 kib", expected: input.ErrUnknownUnit, message: "invalid unit"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			in, err := input.Resolve(test.raw)
			assert.Nil(t, in)
			require.ErrorIs(t, err, test.expected)
			assert.Contains(t, err.Error(), test.message)
		})
	}
}

func TestFromArgs(t *testing.T) {
	t.Parallel()

	_, err := input.FromArgs(nil)
	require.ErrorIs(t, err, input.ErrMissingArgument)

	in, err := input.FromArgs([]string{"24 mb", "ignored"})
	require.NoError(t, err)
	assert.Exactly(t, unit.Megabytes, in.Unit)
}
