package unit

// Unit is one of the supported decimal size scales.
type Unit int

const (
	Bytes Unit = iota
	Kilobytes
	Megabytes
	Gigabytes
)

// All lists every unit from the smallest scale to the largest.
var All = []Unit{Bytes, Kilobytes, Megabytes, Gigabytes}

// Scale returns the number of bytes in one u.
func (u Unit) Scale() float64 {
	switch u {
	case Bytes:
		return Byte
	case Kilobytes:
		return Kilobyte
	case Megabytes:
		return Megabyte
	case Gigabytes:
		return Gigabyte
	default:
		panic("invalid unit: " + u.String())
	}
}

// Label is the plural English name used when printing a quantity.
func (u Unit) Label() string {
	switch u {
	case Bytes:
		return "bytes"
	case Kilobytes:
		return "kilobytes"
	case Megabytes:
		return "megabytes"
	case Gigabytes:
		return "gigabytes"
	default:
		panic("invalid unit: " + u.String())
	}
}

func (u Unit) String() string {
	switch u {
	case Bytes:
		return "B"
	case Kilobytes:
		return "KB"
	case Megabytes:
		return "MB"
	case Gigabytes:
		return "GB"
	default:
		return "unknown"
	}
}

// Lookup matches an already lower-cased tag against the recognized unit tags.
func Lookup(tag string) (Unit, bool) {
	switch tag {
	case "b", "bytes":
		return Bytes, true
	case "kb":
		return Kilobytes, true
	case "mb":
		return Megabytes, true
	case "gb":
		return Gigabytes, true
	default:
		return 0, false
	}
}
