package pinchzoom

import (
	"context"
	"fmt"
	"image"
	"io"
	"io/fs"
	"os"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

type loadResult struct {
	img  image.Image
	err  error
	done func(image.Image, error)
}

// Loader decodes images on background goroutines and hands the results back
// through Poll, so callbacks run on the caller's update goroutine.
// PNG, JPEG, GIF, WebP, and BMP are supported.
type Loader struct {
	fsys    fs.FS
	results chan loadResult
	quit    chan struct{}
	pending int
	closed  bool
}

// NewLoader creates a Loader reading from fsys, or from the OS file system
// if fsys is nil.
func NewLoader(fsys fs.FS) *Loader {
	return &Loader{
		fsys:    fsys,
		results: make(chan loadResult),
		quit:    make(chan struct{}),
	}
}

// Load starts decoding src. done runs from a later Poll or Wait call.
func (l *Loader) Load(src string, done func(img image.Image, err error)) {
	if l.closed {
		return
	}
	l.pending++
	go func() {
		img, err := l.decode(src)
		select {
		case l.results <- loadResult{img: img, err: err, done: done}:
		case <-l.quit:
		}
	}()
}

// Pending returns the number of loads whose callbacks have not run yet.
func (l *Loader) Pending() int { return l.pending }

// Poll delivers every finished load without blocking.
func (l *Loader) Poll() {
	for l.pending > 0 {
		select {
		case r := <-l.results:
			l.deliver(r)
		default:
			return
		}
	}
}

// Wait blocks until every pending load has been delivered or ctx is done.
func (l *Loader) Wait(ctx context.Context) error {
	for l.pending > 0 {
		select {
		case r := <-l.results:
			l.deliver(r)
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return nil
}

func (l *Loader) deliver(r loadResult) {
	l.pending--
	r.done(r.img, r.err)
}

// Close abandons pending loads; their callbacks never run.
func (l *Loader) Close() {
	if l.closed {
		return
	}
	l.closed = true
	l.pending = 0
	close(l.quit)
}

func (l *Loader) open(src string) (io.ReadCloser, error) {
	if l.fsys != nil {
		return l.fsys.Open(src)
	}
	return os.Open(src)
}

func (l *Loader) decode(src string) (image.Image, error) {
	f, err := l.open(src)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", src, err)
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", src, err)
	}
	return img, nil
}
