package mandelbrot

import (
	"fmt"
	"math"
)

// Bounds is the size of an image in pixels.
type Bounds struct {
	Width  int
	Height int
}

// Pixels returns Width*Height, the length of a matching pixel buffer.
// The result is only meaningful for bounds that pass Validate.
func (b Bounds) Pixels() int {
	return b.Width * b.Height
}

// fits reports whether both dimensions are non-negative and Width*Height
// does not overflow int.
func (b Bounds) fits() bool {
	if b.Width < 0 || b.Height < 0 {
		return false
	}
	return b.Height == 0 || b.Width <= math.MaxInt/b.Height
}

// Validate reports ErrInvalidBounds unless both dimensions are positive
// and the pixel count fits in an int.
func (b Bounds) Validate() error {
	if b.Width <= 0 || b.Height <= 0 || !b.fits() {
		return fmt.Errorf("%w: %dx%d", ErrInvalidBounds, b.Width, b.Height)
	}
	return nil
}

// String returns the bounds in the "WxH" form accepted by ParseBounds.
func (b Bounds) String() string {
	return fmt.Sprintf("%dx%d", b.Width, b.Height)
}

// Window is the rectangle of the complex plane mapped onto an image.
//
// UpperLeft maps to pixel (0, 0) and LowerRight to pixel (Width, Height).
// Corner ordering is not checked: a window whose corners are swapped
// renders a mirrored image.
type Window struct {
	UpperLeft  complex128
	LowerRight complex128
}

// PixelToPoint returns the point of the complex plane that corresponds to
// pixel (col, row) of an image with bounds b showing window w.
//
// Column 0 maps to real(UpperLeft) and column Width to real(LowerRight).
// Rows grow downward while the imaginary axis grows upward, so row 0 maps
// to imag(UpperLeft) and row Height to imag(LowerRight).
//
// Coordinates outside the image extrapolate linearly. Zero bounds produce
// NaN or infinite components.
func PixelToPoint(b Bounds, col, row int, w Window) complex128 {
	width := real(w.LowerRight) - real(w.UpperLeft)
	height := imag(w.UpperLeft) - imag(w.LowerRight)
	return complex(
		real(w.UpperLeft)+float64(col)*width/float64(b.Width),
		imag(w.UpperLeft)-float64(row)*height/float64(b.Height),
	)
}
