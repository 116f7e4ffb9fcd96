// Package input resolves the raw command-line argument into a value and its unit.
package input

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/xeptore/sizeconv/unit"
)

var (
	ErrMissingArgument = errors.New("missing size argument")
	ErrMalformedInput  = errors.New("bad format, expected \"<number> <unit>\"")
	ErrInvalidNumber   = errors.New("invalid number")
	ErrUnknownUnit     = errors.New("invalid unit, use one of b, bytes, kb, mb or gb")
)

type Input struct {
	Value float64
	Unit  unit.Unit
}

func (i Input) ToDict() *zerolog.Event {
	return zerolog.Dict().
		Float64("value", i.Value).
		Str("unit", i.Unit.String())
}

// Resolve turns an argument such as "24 mb" into its value and unit.
func Resolve(raw string) (*Input, error) {
	parts := strings.Fields(raw)
	if len(parts) != 2 {
		return nil, fmt.Errorf("%w: got %d token(s) in %q", ErrMalformedInput, len(parts), raw)
	}

	value, err := parseNumber(parts[0])
	if nil != err {
		return nil, err
	}

	u, ok := unit.Lookup(strings.ToLower(parts[1]))
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownUnit, parts[1])
	}

	return &Input{Value: value, Unit: u}, nil
}

// parseNumber accepts decimal float literals. Out of range literals keep the
// ±Inf or 0 ParseFloat returns for them. Hexadecimal literals are rejected.
func parseNumber(tok string) (float64, error) {
	if strings.HasPrefix(strings.ToLower(strings.TrimLeft(tok, "+-")), "0x") {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNumber, tok)
	}

	value, err := strconv.ParseFloat(tok, 64)
	if nil != err && !errors.Is(err, strconv.ErrRange) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNumber, tok)
	}

	return value, nil
}

// FromArgs resolves the first positional argument. Extra arguments are ignored.
func FromArgs(args []string) (*Input, error) {
	if len(args) == 0 {
		return nil, ErrMissingArgument
	}

	return Resolve(args[0])
}
