package starfield

import (
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadScript(t *testing.T) {
	s, err := LoadScript([]byte(`{"steps": [
		{"action": "spawn"},
		{"action": "wait", "frames": 10},
		{"action": "screenshot", "label": "a"},
		{"action": "resize", "width": 64, "height": 32}
	]}`))
	if err != nil {
		t.Fatalf("LoadScript: %v", err)
	}
	if s.Len() != 4 {
		t.Errorf("Len = %d, want 4", s.Len())
	}
}

func TestLoadScriptErrors(t *testing.T) {
	tests := []struct {
		name, json, wantErr string
	}{
		{"bad json", `{`, "parse capture script"},
		{"no steps", `{"steps": []}`, "no steps"},
		{"unknown action", `{"steps": [{"action": "jump"}]}`, `unknown action "jump"`},
		{"bad resize", `{"steps": [{"action": "resize", "width": 10}]}`, "positive width and height"},
	}
	for _, tt := range tests {
		_, err := LoadScript([]byte(tt.json))
		if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
			t.Errorf("%s: err = %v, want containing %q", tt.name, err, tt.wantErr)
		}
	}
}

func TestScriptRunWritesFrames(t *testing.T) {
	cfg := quietConfig()
	cfg.Layers = []Layer{{Speed: 0.5, Scale: 1, Count: 20}}
	f := newTestField(t, cfg, 64, 48)
	s, err := LoadScript([]byte(`{"steps": [
		{"action": "screenshot", "label": "start"},
		{"action": "spawn"},
		{"action": "wait", "frames": 50},
		{"action": "resize", "width": 32, "height": 16},
		{"action": "screenshot", "label": "half opacity"}
	]}`))
	if err != nil {
		t.Fatalf("LoadScript: %v", err)
	}

	dir := filepath.Join(t.TempDir(), "shots")
	paths, err := s.Run(f, dir)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	want := []string{
		filepath.Join(dir, "000_start.png"),
		filepath.Join(dir, "001_half_opacity.png"),
	}
	if len(paths) != len(want) {
		t.Fatalf("paths = %v, want %v", paths, want)
	}
	for i := range want {
		if paths[i] != want[i] {
			t.Errorf("paths[%d] = %q, want %q", i, paths[i], want[i])
		}
	}

	fh, err := os.Open(paths[1])
	if err != nil {
		t.Fatal(err)
	}
	defer fh.Close()
	pc, err := png.DecodeConfig(fh)
	if err != nil {
		t.Fatalf("DecodeConfig: %v", err)
	}
	if pc.Width != 32 || pc.Height != 16 {
		t.Errorf("resized frame = %dx%d, want 32x16", pc.Width, pc.Height)
	}
	if f.Tick() != 50 {
		t.Errorf("Tick = %d, want 50", f.Tick())
	}
}

func TestScriptBlurPausesField(t *testing.T) {
	f := newTestField(t, quietConfig(), 100, 100)
	s, err := LoadScript([]byte(`{"steps": [
		{"action": "blur"},
		{"action": "wait", "frames": 5}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	before := f.Stars()[0].Particle
	if _, err := s.Run(f, t.TempDir()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !f.Paused() {
		t.Error("field not paused after blur")
	}
	if f.Stars()[0].Particle != before {
		t.Error("star moved while blurred")
	}

	s, _ = LoadScript([]byte(`{"steps": [{"action": "focus"}]}`))
	if _, err := s.Run(f, t.TempDir()); err != nil {
		t.Fatal(err)
	}
	if f.Paused() {
		t.Error("field still paused after focus")
	}
}
