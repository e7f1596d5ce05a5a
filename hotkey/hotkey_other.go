//go:build !linux

package hotkey

import (
	"sync"
	"time"

	"golang.design/x/hotkey"
)

// xMonitor registers a global Ctrl+Shift+Space hotkey through the
// windowing system. The evdev key code option does not apply here.
type xMonitor struct {
	hk       *hotkey.Hotkey
	deb      *debouncer
	toggles  chan struct{}
	degraded chan error
	stop     chan struct{}
	once     sync.Once
}

func New(opts Options) Monitor {
	opts = opts.withDefaults()
	return &xMonitor{
		hk:       hotkey.New([]hotkey.Modifier{hotkey.ModCtrl, hotkey.ModShift}, hotkey.KeySpace),
		deb:      newDebouncer(opts.Debounce),
		toggles:  make(chan struct{}, 1),
		degraded: make(chan error, 1),
		stop:     make(chan struct{}),
	}
}

func (m *xMonitor) Start() error {
	if err := m.hk.Register(); err != nil {
		return err
	}
	go func() {
		for {
			select {
			case <-m.stop:
				return
			case <-m.hk.Keydown():
				if !m.deb.Allow(time.Now()) {
					continue
				}
				select {
				case m.toggles <- struct{}{}:
				default:
				}
			}
		}
	}()
	return nil
}

func (m *xMonitor) Stop() {
	m.once.Do(func() {
		close(m.stop)
		m.hk.Unregister()
	})
}

func (m *xMonitor) Toggles() <-chan struct{} { return m.toggles }
func (m *xMonitor) Degraded() <-chan error   { return m.degraded }

// Diagnose checks that a global hotkey can be registered at all.
func Diagnose() (string, error) {
	hk := hotkey.New([]hotkey.Modifier{hotkey.ModCtrl, hotkey.ModShift}, hotkey.KeySpace)
	if err := hk.Register(); err != nil {
		return "", err
	}
	hk.Unregister()
	return "global hotkey registration works", nil
}
