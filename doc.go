// Package mandelbrot renders grayscale images of the Mandelbrot set.
//
// # Overview
//
// A Window of the complex plane is mapped onto an image of Bounds pixels.
// For every pixel the corresponding point c is iterated under z = z*z + c
// and the number of iterations before |z| exceeds 2 becomes the pixel's
// gray level: points in the set are black, points that escape quickly are
// white.
//
// # Quick Start
//
//	import "github.com/gogpu/mandelbrot"
//
//	b, _ := mandelbrot.ParseBounds("1000x750")
//	ul, _ := mandelbrot.ParseComplex("-1.20,0.35")
//	lr, _ := mandelbrot.ParseComplex("-1,0.20")
//
//	pm, err := mandelbrot.NewRenderer().RenderPixmap(b, mandelbrot.Window{UpperLeft: ul, LowerRight: lr})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	_ = pm.Save("mandel.png")
//
// # Coordinate System
//
// Pixel coordinates follow the usual raster convention:
//   - Origin (0,0) at top-left
//   - Column increases right, row increases down
//
// The complex plane uses the mathematical convention, with the imaginary
// axis increasing upward. PixelToPoint inverts the vertical direction.
//
// # Parallelism
//
// Renderer splits the image into horizontal bands of whole rows and renders
// each band on its own goroutine. Every band owns a disjoint part of the
// pixel buffer, so no locking is needed, and the result is the same for
// any worker count. A fault in one band fails the whole render.
package mandelbrot

// Version is the current version of the library.
const Version = "0.1.0"
