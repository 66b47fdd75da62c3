package mandelbrot

import (
	"fmt"
	"time"

	"github.com/gogpu/mandelbrot/internal/parallel"
)

// fillFunc renders one band. It is a field on Renderer so tests can inject
// faults into individual bands.
type fillFunc func(pixels []byte, bd band, limit int) error

// Renderer renders Mandelbrot images by splitting them into row bands and
// rendering every band on its own goroutine.
//
// A Renderer holds no per-render state and is safe for concurrent use.
type Renderer struct {
	workers int
	limit   int
	fill    fillFunc
}

// NewRenderer creates a renderer with the given options.
func NewRenderer(opts ...Option) *Renderer {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Renderer{
		workers: o.workers,
		limit:   o.limit,
		fill:    fillBand,
	}
}

// Workers returns the configured worker count.
func (r *Renderer) Workers() int {
	return r.workers
}

// Limit returns the configured iteration limit.
func (r *Renderer) Limit() int {
	return r.limit
}

// Render fills pixels with window w rendered at bounds b.
//
// The image is split into at most Workers() bands of whole rows. Every
// pixel is mapped through the full image's bounds and window, so the
// output is byte-identical for any worker count and matches Fill. Render
// returns only after every band has finished.
//
// Errors:
//   - ErrInvalidBounds if b has a non-positive dimension
//   - ErrShapeMismatch if len(pixels) != b.Width*b.Height; nothing is written
//   - ErrWorkerFault if any band fails or panics; pixels must be discarded
func (r *Renderer) Render(pixels []byte, b Bounds, w Window) error {
	if err := b.Validate(); err != nil {
		return err
	}
	if len(pixels) != b.Pixels() {
		return fmt.Errorf("%w: len %d, want %d for %v", ErrShapeMismatch, len(pixels), b.Pixels(), b)
	}

	log := Logger()
	start := time.Now()

	bands := parallel.Split(b.Height, r.workers)
	log.Debug("mandelbrot: render",
		"bounds", b.String(),
		"workers", r.workers,
		"bands", len(bands),
		"rows_per_band", parallel.RowsPerBand(b.Height, r.workers),
		"limit", r.limit)

	work := make([]func() error, len(bands))
	for i, rows := range bands {
		lo, hi := rows.Span(b.Width)
		slice := pixels[lo:hi:hi]
		bd := band{Bounds: b, Window: w, Top: rows.Top, Rows: rows.Rows}
		corners := bd.Corners()
		log.Debug("mandelbrot: band",
			"index", rows.Index,
			"top", rows.Top,
			"rows", rows.Rows,
			"upper_left", corners.UpperLeft,
			"lower_right", corners.LowerRight)
		work[i] = func() error {
			return r.fill(slice, bd, r.limit)
		}
	}

	if err := parallel.ExecuteAll(work); err != nil {
		log.Warn("mandelbrot: render aborted", "bounds", b.String(), "err", err)
		return fmt.Errorf("%w: %w", ErrWorkerFault, err)
	}

	log.Debug("mandelbrot: render complete",
		"bounds", b.String(),
		"bands", len(bands),
		"elapsed", time.Since(start))
	return nil
}

// RenderPixmap allocates a pixmap of bounds b and renders window w into it.
func (r *Renderer) RenderPixmap(b Bounds, w Window) (*Pixmap, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}
	pm := NewPixmap(b.Width, b.Height)
	if err := r.Render(pm.data, b, w); err != nil {
		return nil, err
	}
	return pm, nil
}
