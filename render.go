package mandelbrot

import "fmt"

// band is the work handed to one band task: the rows [Top, Top+Rows) of an
// image with bounds Bounds showing Window.
type band struct {
	// Bounds and Window describe the full image every row is mapped against.
	Bounds Bounds
	Window Window

	Top  int
	Rows int
}

// Size returns the band's own dimensions.
func (bd band) Size() Bounds {
	return Bounds{Width: bd.Bounds.Width, Height: bd.Rows}
}

// Corners returns the sub-rectangle of the plane the band covers, taken
// from the full image's mapping.
func (bd band) Corners() Window {
	return Window{
		UpperLeft:  PixelToPoint(bd.Bounds, 0, bd.Top, bd.Window),
		LowerRight: PixelToPoint(bd.Bounds, bd.Bounds.Width, bd.Top+bd.Rows, bd.Window),
	}
}

// Fill renders window w into pixels sequentially, one gray byte per pixel
// in row-major order, on the calling goroutine.
//
// pixels must hold exactly b.Width*b.Height bytes; otherwise
// ErrShapeMismatch is returned and pixels is left untouched. Negative or
// overflowing bounds return ErrInvalidBounds.
func Fill(pixels []byte, b Bounds, w Window, limit int) error {
	if !b.fits() {
		return fmt.Errorf("%w: %v", ErrInvalidBounds, b)
	}
	return fillBand(pixels, band{Bounds: b, Window: w, Top: 0, Rows: b.Height}, limit)
}

// fillBand is the body of every band task. Each pixel is mapped with the
// full image's bounds and window and its absolute row, so a row renders the
// same bytes whichever band it falls in.
func fillBand(pixels []byte, bd band, limit int) error {
	if want := bd.Size().Pixels(); len(pixels) != want {
		return fmt.Errorf("%w: len %d, want %d for %v", ErrShapeMismatch, len(pixels), want, bd.Size())
	}

	width := bd.Bounds.Width
	for row := 0; row < bd.Rows; row++ {
		line := pixels[row*width : (row+1)*width]
		for col := range line {
			line[col] = Shade(EscapeTime(PixelToPoint(bd.Bounds, col, bd.Top+row, bd.Window), limit))
		}
	}
	return nil
}
