package output

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestFilename(t *testing.T) {
	ts := time.Date(2022, time.December, 9, 12, 53, 22, 0, time.UTC)
	if got := Filename(ts); got != "09-12-2022-12-53-22.png" {
		t.Fatalf("Filename=%q", got)
	}
}

func TestWritePNGRoundTrip(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "Images")
	img := image.NewRGBA(image.Rect(0, 0, 5, 5))
	img.SetRGBA(2, 3, color.RGBA{R: 17, G: 17, B: 17, A: 255})

	path, err := WritePNG(dir, img, time.Date(2024, time.March, 1, 8, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("WritePNG: %v", err)
	}
	if !filepath.IsAbs(path) || filepath.Base(path) != "01-03-2024-08-00-00.png" {
		t.Fatalf("unexpected path %q", path)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	decoded, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if r, g, b, a := decoded.At(2, 3).RGBA(); r>>8 != 17 || g>>8 != 17 || b>>8 != 17 || a>>8 != 255 {
		t.Fatalf("pixel (2,3)=%d,%d,%d,%d", r>>8, g>>8, b>>8, a>>8)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected only the final image in %s, found %d entries", dir, len(entries))
	}
}

func TestWritePNGUnwritableDir(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	img := image.NewRGBA(image.Rect(0, 0, 5, 5))
	if _, err := WritePNG(filepath.Join(blocker, "Images"), img, time.Now()); err == nil {
		t.Fatal("expected an error when the output directory cannot be created")
	}
}

func TestWritePNGEncodeFailureLeavesNoFile(t *testing.T) {
	dir := t.TempDir()
	empty := image.NewRGBA(image.Rect(0, 0, 0, 0))
	if _, err := WritePNG(dir, empty, time.Now()); err == nil {
		t.Fatal("expected encoding an empty image to fail")
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Fatalf("failed write left %d entries in %s", len(entries), dir)
	}
}
