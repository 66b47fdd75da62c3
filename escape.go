package mandelbrot

// DefaultLimit is the iteration limit used when none is configured.
// It matches the 256 gray levels of the output.
const DefaultLimit = 255

// EscapeTime reports whether c escapes the Mandelbrot set within limit
// iterations of z = z*z + c starting from z = 0.
//
// Before iteration i the squared magnitude of z is compared against 4. The
// first i where it is larger is returned with escaped set to true. When the
// limit is exhausted escaped is false and c is taken to be in the set.
// NaN components never compare larger and so exhaust the limit.
func EscapeTime(c complex128, limit int) (count int, escaped bool) {
	var z complex128
	for i := 0; i < limit; i++ {
		re, im := real(z), imag(z)
		if re*re+im*im > 4.0 {
			return i, true
		}
		z = z*z + c
	}
	return 0, false
}

// Shade converts an escape time into a gray level. Points in the set are
// black; points that escape quickly are bright.
func Shade(count int, escaped bool) byte {
	if !escaped {
		return 0
	}
	return byte(255 - min(count, 255))
}
