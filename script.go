package pinchzoom

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// scriptStep represents a single action in a gesture script.
type scriptStep struct {
	Action   string  `yaml:"action"`
	X        float64 `yaml:"x,omitempty"`
	Y        float64 `yaml:"y,omitempty"`
	FromX    float64 `yaml:"fromX,omitempty"`
	FromY    float64 `yaml:"fromY,omitempty"`
	ToX      float64 `yaml:"toX,omitempty"`
	ToY      float64 `yaml:"toY,omitempty"`
	FromDist float64 `yaml:"fromDist,omitempty"`
	ToDist   float64 `yaml:"toDist,omitempty"`
	Frames   int     `yaml:"frames,omitempty"`
}

// gestureScript is the top-level structure of a gesture script.
type gestureScript struct {
	Steps []scriptStep `yaml:"steps"`
}

// ScriptRunner sequences injected gestures across frames, for demos and
// automated tests. Attach it to a Zoomable with SetScript; the Zoomable
// needs an attached Recognizer to inject into.
type ScriptRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

var scriptActions = map[string]bool{
	"tap": true, "doubleTap": true, "drag": true, "pinch": true, "wait": true,
}

// LoadScript parses a YAML or JSON gesture script:
//
//	steps:
//	  - {action: doubleTap, x: 200, y: 100}
//	  - {action: wait, frames: 30}
//	  - {action: pinch, x: 150, y: 300, fromDist: 100, toDist: 50, frames: 10}
func LoadScript(data []byte) (*ScriptRunner, error) {
	var script gestureScript
	if err := yaml.Unmarshal(data, &script); err != nil {
		return nil, fmt.Errorf("parse gesture script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse gesture script: no steps")
	}
	for i, st := range script.Steps {
		if !scriptActions[st.Action] {
			return nil, fmt.Errorf("parse gesture script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &ScriptRunner{steps: script.Steps}, nil
}

// SetScript attaches a ScriptRunner. Its step runs at the start of every
// UpdateInput, before the recognizer is polled.
func (z *Zoomable) SetScript(runner *ScriptRunner) {
	z.script = runner
}

// Done reports whether all steps of the script have been executed.
func (s *ScriptRunner) Done() bool {
	return s.done
}

// step advances the runner by one frame.
func (s *ScriptRunner) step(r *Recognizer) {
	if s.done || r == nil {
		return
	}
	// Wait for pending injections to drain before advancing.
	if r.Pending() {
		return
	}
	if s.waitCount > 0 {
		s.waitCount--
		return
	}
	if s.cursor >= len(s.steps) {
		s.done = true
		return
	}

	st := s.steps[s.cursor]
	s.cursor++

	switch st.Action {
	case "tap":
		r.InjectTap(st.X, st.Y)
	case "doubleTap":
		r.InjectDoubleTap(st.X, st.Y)
	case "drag":
		r.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	case "pinch":
		r.InjectPinch(st.X, st.Y, st.FromDist, st.ToDist, st.Frames)
	case "wait":
		if st.Frames > 0 {
			s.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if s.cursor >= len(s.steps) && s.waitCount == 0 && !r.Pending() {
		s.done = true
	}
}
