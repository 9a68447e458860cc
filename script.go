package starfield

import (
	"encoding/json"
	"fmt"
	"image"
	"log"
	"os"
)

// scriptStep is a single action in a capture script.
type scriptStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	Frames int     `json:"frames,omitempty"`
	Width  float64 `json:"width,omitempty"`
	Height float64 `json:"height,omitempty"`
}

// captureScript is the top-level JSON structure for a capture script.
type captureScript struct {
	Steps []scriptStep `json:"steps"`
}

// Script drives a Field headlessly: it advances ticks, toggles focus,
// resizes, spawns shooting stars and writes labeled PNG frames.
//
//	{"steps": [
//	  {"action": "spawn"},
//	  {"action": "wait", "frames": 100},
//	  {"action": "screenshot", "label": "full-opacity"},
//	  {"action": "blur"},
//	  {"action": "wait", "frames": 30},
//	  {"action": "focus"},
//	  {"action": "resize", "width": 320, "height": 200}
//	]}
type Script struct {
	steps []scriptStep
}

// LoadScript parses a JSON capture script.
func LoadScript(jsonData []byte) (*Script, error) {
	var cs captureScript
	if err := json.Unmarshal(jsonData, &cs); err != nil {
		return nil, fmt.Errorf("parse capture script: %w", err)
	}
	if len(cs.Steps) == 0 {
		return nil, fmt.Errorf("parse capture script: no steps")
	}
	for i, st := range cs.Steps {
		switch st.Action {
		case "wait", "screenshot", "blur", "focus", "spawn":
		case "resize":
			if st.Width <= 0 || st.Height <= 0 {
				return nil, fmt.Errorf("parse capture script: step %d: resize needs positive width and height", i)
			}
		default:
			return nil, fmt.Errorf("parse capture script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &Script{steps: cs.Steps}, nil
}

// Len returns the number of steps.
func (s *Script) Len() int {
	return len(s.steps)
}

// Run executes every step against f, rendering screenshots with a
// RasterSurface sized to the field, and returns the written file paths in
// order. dir is created if needed.
func (s *Script) Run(f *Field, dir string) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("capture: mkdir %s: %w", dir, err)
	}

	var canvas *image.RGBA
	var surface *RasterSurface
	var written []string

	for _, st := range s.steps {
		switch st.Action {
		case "wait":
			for range max(st.Frames, 1) {
				f.Update()
			}
		case "spawn":
			f.SpawnShootingStar()
		case "blur":
			f.SetFocused(false)
		case "focus":
			f.SetFocused(true)
		case "resize":
			f.Resize(st.Width, st.Height)
		case "screenshot":
			w, h := f.Size()
			if canvas == nil || canvas.Bounds().Dx() != int(w) || canvas.Bounds().Dy() != int(h) {
				canvas = image.NewRGBA(image.Rect(0, 0, int(w), int(h)))
				surface = NewRasterSurface(canvas)
			}
			f.Draw(surface)
			path := screenshotPath(dir, len(written), st.Label)
			if err := writePNG(path, canvas); err != nil {
				log.Printf("starfield: screenshot: %v", err)
				return written, err
			}
			written = append(written, path)
		}
	}
	return written, nil
}
