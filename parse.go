package mandelbrot

import (
	"fmt"
	"strconv"
	"strings"
)

// Number is the set of types ParsePair can produce.
type Number interface {
	int | int8 | int16 | int32 | int64 |
		uint | uint8 | uint16 | uint32 | uint64 |
		float32 | float64
}

// ParsePair parses s as "<left><sep><right>", splitting at the first sep.
//
// Both halves are parsed with strconv, so the accepted syntax does not
// depend on the locale. ok is false when sep is missing, a half is empty or
// does not parse, or a half carries trailing characters.
func ParsePair[T Number](s string, sep rune) (left, right T, ok bool) {
	l, r, found := strings.Cut(s, string(sep))
	if !found {
		return left, right, false
	}

	left, okL := parseNumber[T](l)
	right, okR := parseNumber[T](r)
	if !okL || !okR {
		var zero T
		return zero, zero, false
	}
	return left, right, true
}

// ParseComplex parses a "<re>,<im>" pair such as "-1.20,0.35".
func ParseComplex(s string) (complex128, error) {
	re, im, ok := ParsePair[float64](s, ',')
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrMalformedComplex, s)
	}
	return complex(re, im), nil
}

// ParseBounds parses an image size such as "1000x750".
// Negative dimensions and sizes whose pixel count overflows int are
// rejected; zero is left for Bounds.Validate.
func ParseBounds(s string) (Bounds, error) {
	w, h, ok := ParsePair[int](s, 'x')
	b := Bounds{Width: w, Height: h}
	if !ok || !b.fits() {
		return Bounds{}, fmt.Errorf("%w: %q", ErrMalformedDimension, s)
	}
	return b, nil
}

func parseNumber[T Number](s string) (T, bool) {
	var zero T
	switch any(zero).(type) {
	case int, int8, int16, int32, int64:
		v, err := strconv.ParseInt(s, 10, bitSize[T]())
		return T(v), err == nil
	case uint, uint8, uint16, uint32, uint64:
		v, err := strconv.ParseUint(s, 10, bitSize[T]())
		return T(v), err == nil
	default:
		v, err := strconv.ParseFloat(s, bitSize[T]())
		return T(v), err == nil
	}
}

// bitSize returns the width in bits of the numeric type T.
func bitSize[T Number]() int {
	var zero T
	switch any(zero).(type) {
	case int8, uint8:
		return 8
	case int16, uint16:
		return 16
	case int32, uint32, float32:
		return 32
	case int, uint:
		return strconv.IntSize
	}
	return 64
}
