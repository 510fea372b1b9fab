package pinchzoom

import (
	"strings"
	"testing"
)

// runScript steps the runner and the viewer until the runner finishes.
func runScript(t *testing.T, v *Viewer, r *TestRunner) {
	t.Helper()
	v.SetTestRunner(r)
	for i := 0; !r.Done(); i++ {
		if i > 500 {
			t.Fatal("test script never finished")
		}
		r.step(v)
		pump(v, 1)
	}
}

func TestLoadTestScript_JSON(t *testing.T) {
	r, err := LoadTestScript([]byte(`{"steps": [
		{"action": "doubletap", "x": 400, "y": 300},
		{"action": "wait", "frames": 5},
		{"action": "pinch", "x": 400, "y": 300, "from": 200, "to": 80, "frames": 10}
	]}`))
	if err != nil {
		t.Fatalf("LoadTestScript: %v", err)
	}
	if len(r.steps) != 3 || r.steps[2].From != 200 || r.steps[2].Frames != 10 {
		t.Errorf("steps = %+v", r.steps)
	}
}

func TestLoadTestScript_YAML(t *testing.T) {
	r, err := LoadTestScript([]byte("steps:\n  - action: drag\n    fromX: 1\n    toX: 50\n    frames: 4\n"))
	if err != nil {
		t.Fatalf("LoadTestScript: %v", err)
	}
	if r.steps[0].ToX != 50 {
		t.Errorf("steps = %+v", r.steps)
	}
}

func TestLoadTestScript_Errors(t *testing.T) {
	tests := []struct {
		name, data, want string
	}{
		{"empty", `{"steps": []}`, "no steps"},
		{"unknown action", `{"steps": [{"action": "spin"}]}`, `"spin"`},
		{"syntax", `{"steps": [`, "parse test script"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadTestScript([]byte(tt.data))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("err = %v, want mention of %s", err, tt.want)
			}
		})
	}
}

func TestTestRunner_ZoomAndScreenshot(t *testing.T) {
	v := newLoadedViewer(t)
	r, err := LoadTestScript([]byte(`{"steps": [
		{"action": "doubletap", "x": 400, "y": 300},
		{"action": "wait", "frames": 20},
		{"action": "screenshot", "label": "zoomed"}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	runScript(t, v, r)

	if v.Zoomer().Scale() != 2.5 {
		t.Errorf("Scale = %v, want 2.5", v.Zoomer().Scale())
	}
	if len(v.screenshotQueue) != 1 || v.screenshotQueue[0] != "zoomed" {
		t.Errorf("screenshots = %v", v.screenshotQueue)
	}
}

func TestTestRunner_Reset(t *testing.T) {
	v := newLoadedViewer(t)
	r, err := LoadTestScript([]byte(`{"steps": [
		{"action": "doubletap", "x": 400, "y": 300},
		{"action": "wait", "frames": 20},
		{"action": "reset"},
		{"action": "wait", "frames": 20}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	runScript(t, v, r)
	if v.Zoomer().Scale() != 1 || !v.AmbientScroll() {
		t.Errorf("after reset: scale=%v ambient=%v", v.Zoomer().Scale(), v.AmbientScroll())
	}
}
