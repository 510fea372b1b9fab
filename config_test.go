package pinchzoom

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("DefaultConfig invalid: %v", err)
	}
	if cfg.MinScale != 1 || cfg.DoubleTapScale != 2.5 || cfg.MaxScaleBounce != 0.35 {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
}

func TestParseConfig_OverridesAndKeepsDefaults(t *testing.T) {
	data := []byte(`
doubleTapScale: 3
debug: true
input:
  doubleTapFrames: 20
window:
  title: gallery
  showFPS: true
`)
	cfg, err := ParseConfig(data)
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}
	if cfg.DoubleTapScale != 3 || !cfg.Debug {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if cfg.Input.DoubleTapFrames != 20 || cfg.Input.TapMaxFrames != defaultTapMaxFrames {
		t.Errorf("input = %+v", cfg.Input)
	}
	if cfg.Window.Title != "gallery" || cfg.Window.Width != 800 || !cfg.Window.ShowFPS {
		t.Errorf("window = %+v", cfg.Window)
	}
	if cfg.MinScaleBounce != defaultMinScaleBounce {
		t.Errorf("MinScaleBounce = %v, want default", cfg.MinScaleBounce)
	}
}

func TestParseConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"zero min", "minScale: 0", "minScale"},
		{"bounce too big", "minScaleBounce: 1", "minScaleBounce"},
		{"negative max bounce", "maxScaleBounce: -1", "maxScaleBounce"},
		{"floor below min", "maxScaleFloor: 0.5", "maxScaleFloor"},
		{"double tap not zooming", "doubleTapScale: 1", "doubleTapScale"},
		{"divisor", "approachDivisor: 0.5", "approachDivisor"},
		{"snap", "snapThreshold: 0", "snapThreshold"},
		{"dead zone", "input: {dragDeadZone: -1}", "dragDeadZone"},
		{"tap window", "input: {tapMaxFrames: 0}", "tap windows"},
		{"slop", "input: {doubleTapSlop: -2}", "doubleTapSlop"},
		{"window", "window: {width: 0}", "window size"},
		{"syntax", "minScale: [", "parse config"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseConfig([]byte(tt.yaml))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "zoom.yaml")
	if err := os.WriteFile(path, []byte("maxScaleFloor: 2\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.MaxScaleFloor != 2 {
		t.Errorf("MaxScaleFloor = %v, want 2", cfg.MaxScaleFloor)
	}

	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestConfigFloorAppliesToMaxScale(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxScaleFloor = 2
	z, err := NewZoomer(cfg, Host{})
	if err != nil {
		t.Fatal(err)
	}
	z.SetViewport(Size{1000, 800})
	if err := z.SetNativeSize(Size{1000, 500}); err != nil {
		t.Fatal(err)
	}
	if z.MaxScale() != 2 {
		t.Errorf("MaxScale = %v, want floor 2", z.MaxScale())
	}
}
