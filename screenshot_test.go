package pinchzoom

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestSanitizeLabel(t *testing.T) {
	tests := map[string]string{
		"zoomed":         "zoomed",
		"zoom in/out":    "zoom_in_out",
		"  v1.2-final  ": "v1.2-final",
		"":               "unlabeled",
		"   ":            "unlabeled",
		"../etc/passwd":  "_etc_passwd",
		".hidden":        "hidden",
		"...":            "unlabeled",
		"café":           "caf_",
	}
	for in, want := range tests {
		if got := sanitizeLabel(in); got != want {
			t.Errorf("sanitizeLabel(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestUnpremultiply(t *testing.T) {
	pixels := []byte{
		100, 50, 0, 128, // half alpha
		10, 20, 30, 255, // opaque
		0, 0, 0, 0, // transparent
	}
	img := unpremultiply(pixels, 3, 1)
	if got := img.NRGBAAt(0, 0); got != (color.NRGBA{199, 99, 0, 128}) {
		t.Errorf("half alpha = %v", got)
	}
	if got := img.NRGBAAt(1, 0); got != (color.NRGBA{10, 20, 30, 255}) {
		t.Errorf("opaque = %v", got)
	}
	if got := img.NRGBAAt(2, 0); got != (color.NRGBA{}) {
		t.Errorf("transparent = %v", got)
	}
}

func TestWritePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shot.png")
	src := image.NewNRGBA(image.Rect(0, 0, 4, 3))
	if err := writePNG(path, src); err != nil {
		t.Fatalf("writePNG: %v", err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if img.Bounds().Dx() != 4 || img.Bounds().Dy() != 3 {
		t.Errorf("bounds = %v", img.Bounds())
	}
}

func TestWritePNG_BadDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "shot.png")
	if err := writePNG(path, image.NewNRGBA(image.Rect(0, 0, 1, 1))); err == nil {
		t.Error("expected error for missing directory")
	}
}

func TestScreenshotQueues(t *testing.T) {
	v := newTestViewer(t)
	v.Screenshot("a")
	v.Screenshot("b")
	if len(v.screenshotQueue) != 2 {
		t.Errorf("queue = %v", v.screenshotQueue)
	}
}
