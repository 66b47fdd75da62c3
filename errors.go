package mandelbrot

import "errors"

// Errors returned by parsing and rendering.
var (
	// ErrMalformedDimension is returned when an image size string is not
	// of the form "<width>x<height>".
	ErrMalformedDimension = errors.New("mandelbrot: malformed dimension string")

	// ErrMalformedComplex is returned when a point string is not of the
	// form "<re>,<im>".
	ErrMalformedComplex = errors.New("mandelbrot: malformed complex string")

	// ErrShapeMismatch is returned when a pixel buffer's length differs
	// from width*height. It is reported before any pixel is written.
	ErrShapeMismatch = errors.New("mandelbrot: pixel buffer does not match bounds")

	// ErrWorkerFault is returned when a band task fails. The buffer
	// contents are unspecified after this error.
	ErrWorkerFault = errors.New("mandelbrot: band worker fault")

	// ErrInvalidBounds is returned when width or height is not positive.
	ErrInvalidBounds = errors.New("mandelbrot: invalid bounds")
)
