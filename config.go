package pinchzoom

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/tanema/gween/ease"
	"gopkg.in/yaml.v3"
)

const (
	defaultMinimumZoomScale  = 1.0
	defaultMaximumZoomScale  = 8.0
	defaultAnimationDuration = 0.3 // seconds
	defaultDoubleTapInterval = 300 * time.Millisecond
	defaultDoubleTapSlop     = 24.0 // pixels
	defaultPanDeadZone       = 4.0  // pixels
)

// ErrInvalidConfig is returned (wrapped) by Config.Validate and LoadConfig.
var ErrInvalidConfig = errors.New("pinchzoom: invalid config")

// Config holds the tunables of a Zoomable. Changing a config on a live
// Zoomable goes through SetConfig, which rebuilds the gesture bindings.
type Config struct {
	// MinimumZoomScale and MaximumZoomScale bound the committed scale.
	// Pinch updates that would leave this range are dropped.
	MinimumZoomScale float64
	MaximumZoomScale float64

	// ResetDuration is the length in seconds of the animated return to
	// identity on double-tap.
	ResetDuration float32
	// ZoomDuration is the length in seconds of the animated zoom-in on
	// double-tap.
	ZoomDuration float32
	// Ease is the easing function used by both double-tap animations.
	Ease ease.TweenFunc

	// DoubleTapInterval is the longest gap between two taps that still
	// counts as a double-tap. DoubleTapSlop is the farthest the second tap
	// may land from the first.
	DoubleTapInterval time.Duration
	DoubleTapSlop     float64
	// PanDeadZone is the minimum movement in pixels before a pan begins.
	PanDeadZone float64

	// MouseAsTouch maps the left mouse button to a single touch in
	// EbitenTouches, so the component can be driven on desktop.
	MouseAsTouch bool
	// Debug prints gesture transitions to stderr.
	Debug bool
}

// DefaultConfig returns the stock configuration: zoom range [1, 8], 300ms
// animations with an out-quad ease.
func DefaultConfig() Config {
	return Config{
		MinimumZoomScale:  defaultMinimumZoomScale,
		MaximumZoomScale:  defaultMaximumZoomScale,
		ResetDuration:     defaultAnimationDuration,
		ZoomDuration:      defaultAnimationDuration,
		Ease:              ease.OutQuad,
		DoubleTapInterval: defaultDoubleTapInterval,
		DoubleTapSlop:     defaultDoubleTapSlop,
		PanDeadZone:       defaultPanDeadZone,
	}
}

// Validate reports whether the config is usable.
func (c Config) Validate() error {
	if math.IsNaN(c.MinimumZoomScale) || math.IsNaN(c.MaximumZoomScale) {
		return fmt.Errorf("%w: zoom scale is NaN", ErrInvalidConfig)
	}
	if c.MinimumZoomScale <= 0 {
		return fmt.Errorf("%w: minimum zoom scale %v must be positive", ErrInvalidConfig, c.MinimumZoomScale)
	}
	if c.MaximumZoomScale < c.MinimumZoomScale {
		return fmt.Errorf("%w: maximum zoom scale %v below minimum %v",
			ErrInvalidConfig, c.MaximumZoomScale, c.MinimumZoomScale)
	}
	if c.ResetDuration < 0 || c.ZoomDuration < 0 {
		return fmt.Errorf("%w: negative animation duration", ErrInvalidConfig)
	}
	if c.DoubleTapInterval < 0 || c.DoubleTapSlop < 0 || c.PanDeadZone < 0 {
		return fmt.Errorf("%w: negative recognizer threshold", ErrInvalidConfig)
	}
	return nil
}

// easeFuncs maps the names accepted by LoadConfig to gween easing functions.
var easeFuncs = map[string]ease.TweenFunc{
	"linear":       ease.Linear,
	"inQuad":       ease.InQuad,
	"outQuad":      ease.OutQuad,
	"inOutQuad":    ease.InOutQuad,
	"inCubic":      ease.InCubic,
	"outCubic":     ease.OutCubic,
	"inOutCubic":   ease.InOutCubic,
	"outQuart":     ease.OutQuart,
	"inOutQuart":   ease.InOutQuart,
	"outExpo":      ease.OutExpo,
	"inOutExpo":    ease.InOutExpo,
	"outSine":      ease.OutSine,
	"inOutSine":    ease.InOutSine,
	"outBack":      ease.OutBack,
	"outCirc":      ease.OutCirc,
	"outElastic":   ease.OutElastic,
	"outBounce":    ease.OutBounce,
	"inOutBounce":  ease.InOutBounce,
	"inOutElastic": ease.InOutElastic,
}

// EaseByName looks up an easing function by its LoadConfig name.
func EaseByName(name string) (ease.TweenFunc, bool) {
	fn, ok := easeFuncs[name]
	return fn, ok
}

// configFile is the on-disk shape of a Config. Zero values fall back to
// DefaultConfig.
type configFile struct {
	MinimumZoomScale  *float64 `yaml:"minimumZoomScale"`
	MaximumZoomScale  *float64 `yaml:"maximumZoomScale"`
	ResetDuration     *float32 `yaml:"resetDuration"`
	ZoomDuration      *float32 `yaml:"zoomDuration"`
	Ease              string   `yaml:"ease"`
	DoubleTapInterval string   `yaml:"doubleTapInterval"`
	DoubleTapSlop     *float64 `yaml:"doubleTapSlop"`
	PanDeadZone       *float64 `yaml:"panDeadZone"`
	MouseAsTouch      bool     `yaml:"mouseAsTouch"`
	Debug             bool     `yaml:"debug"`
}

// LoadConfig parses a YAML (or JSON) document into a Config. Fields that are
// absent keep their DefaultConfig values. The result is validated.
func LoadConfig(data []byte) (Config, error) {
	var f configFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	cfg := DefaultConfig()
	if f.MinimumZoomScale != nil {
		cfg.MinimumZoomScale = *f.MinimumZoomScale
	}
	if f.MaximumZoomScale != nil {
		cfg.MaximumZoomScale = *f.MaximumZoomScale
	}
	if f.ResetDuration != nil {
		cfg.ResetDuration = *f.ResetDuration
	}
	if f.ZoomDuration != nil {
		cfg.ZoomDuration = *f.ZoomDuration
	}
	if f.Ease != "" {
		fn, ok := EaseByName(f.Ease)
		if !ok {
			return Config{}, fmt.Errorf("%w: unknown ease %q", ErrInvalidConfig, f.Ease)
		}
		cfg.Ease = fn
	}
	if f.DoubleTapInterval != "" {
		d, err := time.ParseDuration(f.DoubleTapInterval)
		if err != nil {
			return Config{}, fmt.Errorf("%w: doubleTapInterval: %v", ErrInvalidConfig, err)
		}
		cfg.DoubleTapInterval = d
	}
	if f.DoubleTapSlop != nil {
		cfg.DoubleTapSlop = *f.DoubleTapSlop
	}
	if f.PanDeadZone != nil {
		cfg.PanDeadZone = *f.PanDeadZone
	}
	cfg.MouseAsTouch = f.MouseAsTouch
	cfg.Debug = f.Debug

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
