package pinchzoom

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// testStep is a single action in a test script.
type testStep struct {
	Action string  `yaml:"action"`
	Label  string  `yaml:"label,omitempty"`
	X      float64 `yaml:"x,omitempty"`
	Y      float64 `yaml:"y,omitempty"`
	FromX  float64 `yaml:"fromX,omitempty"`
	FromY  float64 `yaml:"fromY,omitempty"`
	ToX    float64 `yaml:"toX,omitempty"`
	ToY    float64 `yaml:"toY,omitempty"`
	From   float64 `yaml:"from,omitempty"` // pinch start finger distance
	To     float64 `yaml:"to,omitempty"`   // pinch end finger distance
	Frames int     `yaml:"frames,omitempty"`
}

type testScript struct {
	Steps []testStep `yaml:"steps"`
}

// TestRunner sequences injected gestures and screenshots across frames for
// scripted visual testing. Attach it to a Viewer with SetTestRunner.
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	done      bool
}

// LoadTestScript parses a test script. Both JSON and YAML are accepted:
//
//	{"steps": [
//	  {"action": "doubletap", "x": 400, "y": 300},
//	  {"action": "wait", "frames": 20},
//	  {"action": "screenshot", "label": "zoomed"},
//	  {"action": "pinch", "x": 400, "y": 300, "from": 200, "to": 80, "frames": 10}
//	]}
func LoadTestScript(data []byte) (*TestRunner, error) {
	var script testScript
	if err := yaml.Unmarshal(data, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: no steps")
	}
	for i, st := range script.Steps {
		switch st.Action {
		case "screenshot", "tap", "doubletap", "pinch", "drag", "wait", "reset":
		default:
			return nil, fmt.Errorf("parse test script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

// SetTestRunner attaches a TestRunner to the viewer. Its step method runs at
// the start of every Update.
func (v *Viewer) SetTestRunner(runner *TestRunner) {
	v.testRunner = runner
}

// Done reports whether all steps have been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// step advances the runner by one frame.
func (r *TestRunner) step(v *Viewer) {
	if r.done {
		return
	}
	// Let queued input drain before the next step.
	if len(v.injectQueue) > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "screenshot":
		v.Screenshot(st.Label)
	case "tap":
		v.InjectTap(Vec2{st.X, st.Y})
	case "doubletap":
		v.InjectDoubleTap(Vec2{st.X, st.Y})
	case "pinch":
		v.InjectPinch(Vec2{st.X, st.Y}, st.From, st.To, st.Frames)
	case "drag":
		v.InjectDrag(Vec2{st.FromX, st.FromY}, Vec2{st.ToX, st.ToY}, st.Frames)
	case "reset":
		v.zoomer.Reset()
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(v.injectQueue) == 0 {
		r.done = true
	}
}
