// Package hotkey watches a hardware input source for the toggle key
// and emits debounced toggle signals.
package hotkey

import "time"

// Options configures the monitor. Zero values fall back to defaults.
type Options struct {
	KeyCode  uint16        // evdev key code of the toggle key (Linux)
	Debounce time.Duration // minimum interval between emitted signals
}

const (
	DefaultKeyCode  = 186 // KEY_F16
	DefaultDebounce = 150 * time.Millisecond
)

func (o Options) withDefaults() Options {
	if o.KeyCode == 0 {
		o.KeyCode = DefaultKeyCode
	}
	if o.Debounce <= 0 {
		o.Debounce = DefaultDebounce
	}
	return o
}

// Monitor observes the key source. Toggles delivers one signal per
// debounced press of the toggle key. Degraded reports loss of the key
// source (non-nil error) and recovery (nil); the monitor keeps retrying
// acquisition with backoff and never terminates on its own.
type Monitor interface {
	Start() error
	Stop()
	Toggles() <-chan struct{}
	Degraded() <-chan error
}
