// Package parallel provides the row-band fork-join infrastructure used by
// the mandelbrot renderer.
//
// The canvas is divided into horizontal bands of whole rows. Every band owns
// a disjoint slice of the output buffer, so bands can be rendered by
// independent goroutines without locks. Key properties:
//
//   - Bands cover every row exactly once, in order
//   - At most workers bands are produced for any height
//   - The partition is static; there is no work stealing
//
// Thread safety: Band values are immutable and safe to share.
package parallel

// Band is a contiguous range of image rows [Top, Top+Rows).
type Band struct {
	// Index is the band's position in the partition (0-based).
	Index int

	// Top is the first row of the band.
	Top int

	// Rows is the number of rows in the band. Only the last band
	// may be shorter than RowsPerBand.
	Rows int
}

// Bottom returns the row one past the last row of the band.
func (b Band) Bottom() int {
	return b.Top + b.Rows
}

// Span returns the [start, end) element range the band occupies in a
// row-major buffer with the given row width.
func (b Band) Span(width int) (start, end int) {
	return b.Top * width, b.Bottom() * width
}

// RowsPerBand returns the number of rows assigned to each band when height
// rows are shared by workers goroutines.
//
// The result is height/workers + 1. Since that is always more than
// height/workers, the partition never needs more than workers bands. It
// can need fewer: 8 rows over 4 workers make 3 bands of 3, 3 and 2 rows.
// A workers value below 1 is treated as 1.
func RowsPerBand(height, workers int) int {
	if workers < 1 {
		workers = 1
	}
	return height/workers + 1
}

// Split partitions height rows into consecutive bands of RowsPerBand rows.
// The last band holds the remainder. A height of zero or less yields no
// bands.
func Split(height, workers int) []Band {
	if height <= 0 {
		return nil
	}

	per := RowsPerBand(height, workers)
	bands := make([]Band, 0, (height+per-1)/per)
	for top := 0; top < height; top += per {
		bands = append(bands, Band{
			Index: len(bands),
			Top:   top,
			Rows:  min(per, height-top),
		})
	}
	return bands
}
