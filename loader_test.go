package pinchzoom

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io/fs"
	"strings"
	"testing"
	"testing/fstest"
	"time"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	img.Set(0, 0, color.NRGBA{R: 255, A: 255})
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func waitLoader(t *testing.T, l *Loader) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := l.Wait(ctx); err != nil {
		t.Fatalf("Wait: %v", err)
	}
}

func TestLoader_DecodesPNG(t *testing.T) {
	fsys := fstest.MapFS{"photo.png": {Data: pngBytes(t, 3, 2)}}
	l := NewLoader(fsys)
	defer l.Close()

	var got image.Image
	var gotErr error
	l.Load("photo.png", func(img image.Image, err error) { got, gotErr = img, err })
	if l.Pending() != 1 {
		t.Errorf("Pending = %d, want 1", l.Pending())
	}
	waitLoader(t, l)

	if gotErr != nil {
		t.Fatalf("load error: %v", gotErr)
	}
	if b := got.Bounds(); b.Dx() != 3 || b.Dy() != 2 {
		t.Errorf("bounds = %v, want 3x2", b)
	}
	if l.Pending() != 0 {
		t.Errorf("Pending = %d after Wait", l.Pending())
	}
}

func TestLoader_MissingFile(t *testing.T) {
	l := NewLoader(fstest.MapFS{})
	defer l.Close()

	var gotErr error
	l.Load("missing.png", func(_ image.Image, err error) { gotErr = err })
	waitLoader(t, l)
	if !errors.Is(gotErr, fs.ErrNotExist) {
		t.Errorf("err = %v, want fs.ErrNotExist", gotErr)
	}
	if !strings.Contains(gotErr.Error(), "open missing.png") {
		t.Errorf("err = %q, want open context", gotErr)
	}
}

func TestLoader_UnknownFormat(t *testing.T) {
	l := NewLoader(fstest.MapFS{"notes.txt": {Data: []byte("not an image")}})
	defer l.Close()

	var gotErr error
	l.Load("notes.txt", func(_ image.Image, err error) { gotErr = err })
	waitLoader(t, l)
	if !errors.Is(gotErr, image.ErrFormat) {
		t.Errorf("err = %v, want image.ErrFormat", gotErr)
	}
}

type blockingFS struct {
	release chan struct{}
}

func (b blockingFS) Open(name string) (fs.File, error) {
	<-b.release
	return nil, fs.ErrNotExist
}

func TestLoader_WaitHonorsContext(t *testing.T) {
	bfs := blockingFS{release: make(chan struct{})}
	l := NewLoader(bfs)
	defer close(bfs.release)
	defer l.Close()

	l.Load("slow.png", func(image.Image, error) { t.Error("callback should not run") })
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := l.Wait(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Wait = %v, want context.Canceled", err)
	}
}

func TestLoader_CloseDropsCallbacks(t *testing.T) {
	l := NewLoader(fstest.MapFS{"a.png": {Data: pngBytes(t, 1, 1)}})
	called := false
	l.Load("a.png", func(image.Image, error) { called = true })
	l.Close()
	l.Close()
	l.Poll()
	l.Load("a.png", func(image.Image, error) { called = true })
	if l.Pending() != 0 {
		t.Errorf("Pending = %d after Close", l.Pending())
	}
	if called {
		t.Error("callback ran after Close")
	}
}
