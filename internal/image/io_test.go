package image

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"
)

// testGray builds a gray ramp that exercises every level.
func testGray(w, h int) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.SetGray(x, y, color.Gray{Y: uint8((y*w + x) % 256)})
		}
	}
	return img
}

// =============================================================================
// Encode Tests
// =============================================================================

func TestEncode_LosslessRoundTrip(t *testing.T) {
	src := testGray(37, 19)

	for _, f := range []Format{FormatPNG, FormatTIFF, FormatBMP} {
		t.Run(f.String(), func(t *testing.T) {
			var buf bytes.Buffer
			if err := Encode(&buf, src, f); err != nil {
				t.Fatalf("Encode(%v) error = %v", f, err)
			}

			got, err := Decode(&buf)
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}
			if got.Bounds().Dx() != 37 || got.Bounds().Dy() != 19 {
				t.Fatalf("decoded size = %v, want 37x19", got.Bounds())
			}
			for y := range 19 {
				for x := range 37 {
					if g, w := got.GrayAt(x, y).Y, src.GrayAt(x, y).Y; g != w {
						t.Fatalf("pixel (%d,%d) = %d, want %d", x, y, g, w)
					}
				}
			}
		})
	}
}

func TestEncode_JPEG(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, testGray(16, 16), FormatJPEG); err != nil {
		t.Fatalf("Encode(JPEG) error = %v", err)
	}
	got, err := Decode(&buf)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if got.Bounds().Dx() != 16 || got.Bounds().Dy() != 16 {
		t.Errorf("decoded size = %v, want 16x16", got.Bounds())
	}
}

func TestEncode_Errors(t *testing.T) {
	var buf bytes.Buffer

	if err := Encode(&buf, nil, FormatPNG); !errors.Is(err, ErrEmptyImage) {
		t.Errorf("Encode(nil) error = %v, want ErrEmptyImage", err)
	}
	if err := Encode(&buf, image.NewGray(image.Rect(0, 0, 0, 5)), FormatPNG); !errors.Is(err, ErrEmptyImage) {
		t.Errorf("Encode(empty) error = %v, want ErrEmptyImage", err)
	}
	if err := Encode(&buf, testGray(2, 2), Format(200)); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Encode(Format(200)) error = %v, want ErrUnsupportedFormat", err)
	}
}

// =============================================================================
// Save Tests
// =============================================================================

func TestSave(t *testing.T) {
	dir := t.TempDir()
	src := testGray(8, 4)

	for _, name := range []string{"out.png", "out.TIFF", "out.bmp", "out.jpeg"} {
		path := filepath.Join(dir, name)
		if err := Save(path, src); err != nil {
			t.Fatalf("Save(%q) error = %v", name, err)
		}

		f, err := os.Open(path)
		if err != nil {
			t.Fatalf("open %q: %v", name, err)
		}
		got, err := Decode(f)
		_ = f.Close()
		if err != nil {
			t.Fatalf("Decode(%q) error = %v", name, err)
		}
		if got.Bounds().Dx() != 8 || got.Bounds().Dy() != 4 {
			t.Errorf("%s: size = %v, want 8x4", name, got.Bounds())
		}
	}
}

func TestSave_UnsupportedDoesNotCreate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.gif")

	if err := Save(path, testGray(2, 2)); !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("Save(.gif) error = %v, want ErrUnsupportedFormat", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("Save(.gif) created %s", path)
	}
}

func TestSave_BadDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "out.png")
	if err := Save(path, testGray(2, 2)); err == nil {
		t.Error("Save() into missing directory succeeded, want error")
	}
}

func TestDecode_Garbage(t *testing.T) {
	if _, err := Decode(bytes.NewReader([]byte("not an image"))); err == nil {
		t.Error("Decode(garbage) succeeded, want error")
	}
}
