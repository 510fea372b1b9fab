package pinchzoom

import (
	"bytes"
	"strings"
	"testing"
)

func captureDebug(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	old := debugOut
	debugOut = &buf
	t.Cleanup(func() { debugOut = old })
	return &buf
}

func TestDebugOutput(t *testing.T) {
	buf := captureDebug(t)
	z, h := newTestZoomer(t)
	z.SetDebugMode(true)

	if err := z.SetNativeSize(testNative); err != nil {
		t.Fatal(err)
	}
	z.DoubleTap(&GestureEvent{Center: Vec2{500, 400}})
	settle(t, h.frames)

	out := buf.String()
	if !strings.Contains(out, "[pinchzoom] fit 4000x2000 into 1000x800") {
		t.Errorf("missing fit line in %q", out)
	}
	if !strings.Contains(out, "disable-scroll at scale 2.5") {
		t.Errorf("missing gate line in %q", out)
	}
}

func TestDebugOutput_OffByDefault(t *testing.T) {
	buf := captureDebug(t)
	z, _ := newLoadedZoomer(t)
	z.checkScroll(2)
	if buf.Len() != 0 {
		t.Errorf("unexpected debug output: %q", buf.String())
	}
}
