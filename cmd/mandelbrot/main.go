// Command mandelbrot renders a grayscale image of the Mandelbrot set.
//
// Usage:
//
//	mandelbrot [flags] FILE PIXELS UPPERLEFT LOWERRIGHT
//
// Example:
//
//	mandelbrot mandel.png 1000x750 -1.20,0.35 -1,0.20
//
// The output format follows the extension of FILE: .png, .jpg, .tif or .bmp.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"time"

	"github.com/pkg/profile"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/mandelbrot"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

// run executes the command and returns the process exit code.
func run(args []string, stderr io.Writer) int {
	fs := flag.NewFlagSet("mandelbrot", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		workers = fs.Int("workers", runtime.GOMAXPROCS(0), "number of row bands rendered in parallel")
		limit   = fs.Int("limit", mandelbrot.DefaultLimit, "iteration limit per pixel")
		verbose = fs.Bool("v", false, "enable debug logging")
		prof    = fs.String("profile", "", "write a `mode` profile (cpu, mem or trace) to the current directory")
	)
	fs.Usage = func() {
		_, _ = fmt.Fprintf(stderr, "Usage: %s [flags] FILE PIXELS UPPERLEFT LOWERRIGHT\n", fs.Name())
		_, _ = fmt.Fprintf(stderr, "Example: %s mandel.png 1000x750 -1.20,0.35 -1,0.20\n", fs.Name())
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 1
	}
	if fs.NArg() != 4 {
		fs.Usage()
		return 1
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	mandelbrot.SetLogger(logger)
	defer mandelbrot.SetLogger(nil)

	file := fs.Arg(0)
	if _, err := mandelbrot.FormatFromPath(file); err != nil {
		return usageError(fs, stderr, "error parsing output file", err)
	}
	bounds, err := mandelbrot.ParseBounds(fs.Arg(1))
	if err != nil {
		return usageError(fs, stderr, "error parsing image dimensions", err)
	}
	upperLeft, err := mandelbrot.ParseComplex(fs.Arg(2))
	if err != nil {
		return usageError(fs, stderr, "error parsing upper left corner point", err)
	}
	lowerRight, err := mandelbrot.ParseComplex(fs.Arg(3))
	if err != nil {
		return usageError(fs, stderr, "error parsing lower right corner point", err)
	}

	if *prof != "" {
		mode, ok := profileModes[*prof]
		if !ok {
			return usageError(fs, stderr, "error parsing -profile", fmt.Errorf("unknown mode %q", *prof))
		}
		defer profile.Start(mode, profile.ProfilePath("."), profile.Quiet, profile.NoShutdownHook).Stop()
	}

	start := time.Now()
	r := mandelbrot.NewRenderer(mandelbrot.WithWorkers(*workers), mandelbrot.WithLimit(*limit))
	pm, err := r.RenderPixmap(bounds, mandelbrot.Window{UpperLeft: upperLeft, LowerRight: lowerRight})
	if err != nil {
		logger.Error("render failed", "err", err)
		return 1
	}
	if err := pm.Save(file); err != nil {
		logger.Error("error writing image", "file", file, "err", err)
		return 1
	}

	p := message.NewPrinter(language.English)
	logger.Info(p.Sprintf("rendered %d pixels", bounds.Pixels()),
		"file", file,
		"bounds", bounds.String(),
		"workers", r.Workers(),
		"elapsed", time.Since(start))
	return 0
}

var profileModes = map[string]func(*profile.Profile){
	"cpu":   profile.CPUProfile,
	"mem":   profile.MemProfile,
	"trace": profile.TraceProfile,
}

func usageError(fs *flag.FlagSet, stderr io.Writer, msg string, err error) int {
	_, _ = fmt.Fprintf(stderr, "%s: %v\n", msg, err)
	fs.Usage()
	return 1
}
