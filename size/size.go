// Package size converts one quantity into its representation in every supported unit.
package size

import (
	"fmt"
	"strconv"

	"github.com/xeptore/sizeconv/mathutil"
	"github.com/xeptore/sizeconv/unit"
)

// Measurement holds one quantity printed once per unit, each as "<n> <label>".
// Values are truncated toward zero, never rounded.
type Measurement struct {
	Bytes     string `json:"bytes"`
	Kilobytes string `json:"kilobytes"`
	Megabytes string `json:"megabytes"`
	Gigabytes string `json:"gigabytes"`

	count uint64
}

// From converts value, expressed in u, into a Measurement.
// Negative values are not rejected here.
func From(value float64, u unit.Unit) Measurement {
	bytes := value * u.Scale()

	return Measurement{
		Bytes:     format(bytes, unit.Bytes),
		Kilobytes: format(bytes, unit.Kilobytes),
		Megabytes: format(bytes, unit.Megabytes),
		Gigabytes: format(bytes, unit.Gigabytes),
		count:     mathutil.Trunc(bytes),
	}
}

func format(bytes float64, u unit.Unit) string {
	return strconv.FormatUint(mathutil.Trunc(bytes/u.Scale()), 10) + " " + u.Label()
}

// ByteCount is the truncated number of bytes the measurement describes.
func (m Measurement) ByteCount() uint64 {
	return m.count
}

// In returns the representation of m in u.
func (m Measurement) In(u unit.Unit) string {
	switch u {
	case unit.Bytes:
		return m.Bytes
	case unit.Kilobytes:
		return m.Kilobytes
	case unit.Megabytes:
		return m.Megabytes
	case unit.Gigabytes:
		return m.Gigabytes
	default:
		panic("invalid unit: " + u.String())
	}
}

func (m Measurement) String() string {
	return fmt.Sprintf(
		"Sizes { bytes: %q, kilobytes: %q, megabytes: %q, gigabytes: %q }",
		m.Bytes,
		m.Kilobytes,
		m.Megabytes,
		m.Gigabytes,
	)
}
