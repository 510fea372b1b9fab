package pinchzoom

import (
	"fmt"
	"image"
	"image/color"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
)

// imageElement records what the Zoomer pushes to the displayed image.
type imageElement struct {
	size      Size
	transform Transform
}

func (e *imageElement) SetDisplaySize(size Size) { e.size = size }
func (e *imageElement) SetTransform(t Transform) { e.transform = t }

// Viewer is an ebiten.Game that shows one image with pinch and double-tap
// zoom. Single-pointer drags scroll the zoomed image.
type Viewer struct {
	cfg     Config
	zoomer  *Zoomer
	view    *ScrollView
	frames  *FrameQueue
	input   *Recognizer
	touches touchReader
	loader  *Loader
	element imageElement

	image         *ebiten.Image
	ambientScroll bool
	loadErr       error

	// ClearColor fills the screen behind the image.
	ClearColor color.Color
	// ScreenshotDir is where Screenshot writes PNG files.
	ScreenshotDir string
	// ShowFPS draws frame rate and zoom stats in the top-left corner.
	ShowFPS bool

	injectQueue     [][]PointerSample
	testRunner      *TestRunner
	screenshotQueue []string
}

// NewViewer creates a Viewer sized to cfg.Window.
func NewViewer(cfg Config) (*Viewer, error) {
	viewport := Size{float64(cfg.Window.Width), float64(cfg.Window.Height)}
	v := &Viewer{
		cfg:           cfg,
		view:          NewScrollView(viewport),
		frames:        NewFrameQueue(),
		loader:        NewLoader(nil),
		ambientScroll: true,
		ClearColor:    color.Black,
		ScreenshotDir: cfg.Window.ScreenshotDir,
		ShowFPS:       cfg.Window.ShowFPS,
	}

	z, err := NewZoomer(cfg, Host{
		Image:     &v.element,
		Container: v.view,
		Loader:    viewerLoader{v},
		Frames:    v.frames,
	})
	if err != nil {
		return nil, err
	}
	z.SetViewport(viewport)
	z.OnDisableScroll(func() { v.ambientScroll = false })
	z.OnEnableScroll(func() { v.ambientScroll = true })
	z.OnLoadError(func(err error) {
		v.loadErr = err
		_, _ = fmt.Fprintf(os.Stderr, "[pinchzoom] %v\n", err)
	})
	v.zoomer = z

	v.input = NewRecognizer(cfg.Input)
	v.input.OnGesture = z.HandleGesture
	v.input.OnDrag = func(delta Vec2) {
		v.view.ScrollBy(delta.Scale(-1))
	}
	return v, nil
}

// viewerLoader decodes through the Viewer's Loader and keeps the decoded
// image for drawing.
type viewerLoader struct {
	v *Viewer
}

func (l viewerLoader) Load(src string, done func(native Size, err error)) {
	l.v.loader.Load(src, func(img image.Image, err error) {
		if err != nil {
			done(Size{}, err)
			return
		}
		if src == l.v.zoomer.Source() {
			l.v.image = ebiten.NewImageFromImage(img)
		}
		b := img.Bounds()
		done(Size{float64(b.Dx()), float64(b.Dy())}, nil)
	})
}

// Open starts loading the image at path.
func (v *Viewer) Open(path string) error {
	v.loadErr = nil
	return v.zoomer.SetSource(path)
}

// Zoomer returns the zoom engine driving the view.
func (v *Viewer) Zoomer() *Zoomer { return v.zoomer }

// ScrollView returns the scroll container holding the image.
func (v *Viewer) ScrollView() *ScrollView { return v.view }

// AmbientScroll reports the last scroll gate signal: true when the
// surrounding UI may scroll, false while the image is zoomed.
func (v *Viewer) AmbientScroll() bool { return v.ambientScroll }

// LoadError returns the last image load failure, if any.
func (v *Viewer) LoadError() error { return v.loadErr }

// SetDebugMode enables or disables diagnostic output on stderr.
func (v *Viewer) SetDebugMode(enabled bool) {
	v.zoomer.SetDebugMode(enabled)
}

// Update implements ebiten.Game. A failed image load stops the game with
// the load error.
func (v *Viewer) Update() error {
	v.loader.Poll()
	if v.loadErr != nil {
		return v.loadErr
	}
	if v.testRunner != nil {
		v.testRunner.step(v)
	}
	samples, ok := v.nextInjected()
	if !ok {
		samples = v.touches.read()
	}
	v.update(samples, frameDelta(ebiten.TPS(), ebiten.ActualTPS()))
	return nil
}

// frameDelta returns the length of one update in seconds. Under
// ebiten.SyncWithFPS the tick rate is negative and the measured rate is used
// instead, falling back to 60 Hz until one is available.
func frameDelta(tps int, actualTPS float64) float32 {
	switch {
	case tps > 0:
		return float32(1 / float64(tps))
	case actualTPS > 0:
		return float32(1 / actualTPS)
	default:
		return 1.0 / 60
	}
}

// update feeds one frame of pointer input and advances animations.
func (v *Viewer) update(samples []PointerSample, dt float32) {
	v.input.Update(samples)
	v.frames.Tick(dt)
}

// Draw implements ebiten.Game.
func (v *Viewer) Draw(screen *ebiten.Image) {
	screen.Fill(v.ClearColor)
	if v.image != nil && v.zoomer.Loaded() {
		op := &ebiten.DrawImageOptions{Filter: ebiten.FilterLinear}
		op.GeoM = geoM(v.drawMatrix())
		screen.DrawImage(v.image, op)
	}
	if v.ShowFPS {
		v.drawStats(screen)
	}
	v.flushScreenshots(screen)
}

// Layout implements ebiten.Game. The image is refitted when the window
// size changes.
func (v *Viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	size := Size{float64(outsideWidth), float64(outsideHeight)}
	if size != v.view.Viewport() {
		v.view.SetViewport(size)
		v.zoomer.Resize(size)
	}
	return outsideWidth, outsideHeight
}

// Close releases the zoomer's scroll listener and abandons pending loads.
func (v *Viewer) Close() {
	v.zoomer.Close()
	v.loader.Close()
}

// drawMatrix maps native image pixels to screen pixels: fit to the display
// size, apply the zoom transform, then subtract the scroll offset.
func (v *Viewer) drawMatrix() [6]float64 {
	native := v.zoomer.NativeSize()
	display := v.element.size
	fit := [6]float64{display.Width / native.Width, 0, 0, display.Height / native.Height, 0, 0}
	off := v.view.ScrollOffset()
	scroll := [6]float64{1, 0, 0, 1, -off.X, -off.Y}
	return multiplyAffine(scroll, multiplyAffine(v.element.transform.Matrix(), fit))
}

// geoM converts an affine matrix [a, b, c, d, tx, ty] to an ebiten.GeoM.
func geoM(m [6]float64) ebiten.GeoM {
	var g ebiten.GeoM
	g.SetElement(0, 0, m[0])
	g.SetElement(1, 0, m[1])
	g.SetElement(0, 1, m[2])
	g.SetElement(1, 1, m[3])
	g.SetElement(0, 2, m[4])
	g.SetElement(1, 2, m[5])
	return g
}

// runGame starts the game loop. Tests replace it.
var runGame = ebiten.RunGame

// Run opens a resizable window configured by cfg.Window and runs the viewer
// until the window closes or the image fails to load. Call Open (and
// SetTestRunner, for scripted runs) first.
func (v *Viewer) Run() error {
	ebiten.SetWindowTitle(v.cfg.Window.Title)
	ebiten.SetWindowSize(v.cfg.Window.Width, v.cfg.Window.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return runGame(v)
}

// Run opens a window showing the image at path and blocks until the window
// closes or the image fails to load.
func Run(path string, cfg Config) error {
	v, err := NewViewer(cfg)
	if err != nil {
		return err
	}
	defer v.Close()
	if err := v.Open(path); err != nil {
		return err
	}
	return v.Run()
}
