package mandelbrot

import (
	"image"
	"image/color"
	"io"

	intImage "github.com/gogpu/mandelbrot/internal/image"
)

// Pixmap is a grayscale pixel buffer, one byte per pixel in row-major order.
// It implements image.Image so it can be handed to any encoder.
type Pixmap struct {
	width  int
	height int
	data   []uint8
}

// NewPixmap creates a zeroed pixmap with the given dimensions.
func NewPixmap(width, height int) *Pixmap {
	return &Pixmap{
		width:  width,
		height: height,
		data:   make([]uint8, width*height),
	}
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.height
}

// Size returns the pixmap dimensions as Bounds.
func (p *Pixmap) Size() Bounds {
	return Bounds{Width: p.width, Height: p.height}
}

// Data returns the raw gray levels.
func (p *Pixmap) Data() []uint8 {
	return p.data
}

// GrayAt returns the gray level of a single pixel, or 0 outside the pixmap.
func (p *Pixmap) GrayAt(x, y int) uint8 {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return 0
	}
	return p.data[y*p.width+x]
}

// ToImage copies the pixmap into an image.Gray.
func (p *Pixmap) ToImage() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, p.width, p.height))
	copy(img.Pix, p.data)
	return img
}

// Encode writes the pixmap to w in the given container format.
func (p *Pixmap) Encode(w io.Writer, f Format) error {
	return intImage.Encode(w, p.ToImage(), f)
}

// Save writes the pixmap to path. The container format is chosen from the
// file extension: .png, .jpg/.jpeg, .tif/.tiff or .bmp.
func (p *Pixmap) Save(path string) error {
	return intImage.Save(path, p.ToImage())
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	return color.Gray{Y: p.GrayAt(x, y)}
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.GrayModel
}
