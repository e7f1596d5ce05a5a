//go:build linux

package hotkey

import (
	"encoding/binary"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

const (
	evKey    = 1
	keyPress = 1
)

const inputEventSize = 24

const (
	initialBackoff = 250 * time.Millisecond
	maxBackoff     = 30 * time.Second
)

var errNoKeyboards = errors.New("no keyboard devices found (is user in 'input' group?)")

type evdevMonitor struct {
	opts     Options
	deb      *debouncer
	toggles  chan struct{}
	degraded chan error

	mu    sync.Mutex
	files []*os.File

	started bool
	stop    chan struct{}
	done    chan struct{}
	once    sync.Once
}

func New(opts Options) Monitor {
	opts = opts.withDefaults()
	return &evdevMonitor{
		opts:     opts,
		deb:      newDebouncer(opts.Debounce),
		toggles:  make(chan struct{}, 1),
		degraded: make(chan error, 1),
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

func (m *evdevMonitor) Start() error {
	m.mu.Lock()
	if m.started {
		m.mu.Unlock()
		return errors.New("monitor already started")
	}
	m.started = true
	m.mu.Unlock()
	go m.supervise()
	return nil
}

// supervise owns the keyboard file handles: it (re)acquires them with
// exponential backoff, runs a reader per device, and reacquires when
// every reader has exited (devices unplugged).
func (m *evdevMonitor) supervise() {
	defer close(m.done)
	backoff := initialBackoff
	wasDegraded := false

	for {
		files, err := openKeyboards()
		if err != nil || len(files) == 0 {
			if err == nil {
				err = errNoKeyboards
			}
			if !wasDegraded {
				wasDegraded = true
				m.report(err)
			}
			select {
			case <-m.stop:
				return
			case <-time.After(backoff):
			}
			backoff = min(backoff*2, maxBackoff)
			continue
		}
		backoff = initialBackoff
		if wasDegraded {
			wasDegraded = false
			m.report(nil)
		}

		m.mu.Lock()
		m.files = files
		m.mu.Unlock()

		var wg sync.WaitGroup
		for _, f := range files {
			wg.Add(1)
			go func(f *os.File) {
				defer wg.Done()
				m.readEvents(f)
			}(f)
		}
		wg.Wait()

		m.mu.Lock()
		for _, f := range m.files {
			f.Close()
		}
		m.files = nil
		m.mu.Unlock()

		select {
		case <-m.stop:
			return
		default:
		}
		wasDegraded = true
		m.report(errors.New("keyboard device lost, reacquiring"))
	}
}

func (m *evdevMonitor) readEvents(f *os.File) {
	buf := make([]byte, inputEventSize*16)
	for {
		select {
		case <-m.stop:
			return
		default:
		}

		n, err := f.Read(buf)
		if err != nil {
			return
		}

		for i := 0; i+inputEventSize <= n; i += inputEventSize {
			evType := binary.LittleEndian.Uint16(buf[i+16:])
			evCode := binary.LittleEndian.Uint16(buf[i+18:])
			evValue := int32(binary.LittleEndian.Uint32(buf[i+20:]))

			if evType != evKey || evCode != m.opts.KeyCode || evValue != keyPress {
				continue
			}
			if !m.deb.Allow(time.Now()) {
				continue
			}
			select {
			case m.toggles <- struct{}{}:
			default:
			}
		}
	}
}

func (m *evdevMonitor) report(err error) {
	select {
	case m.degraded <- err:
	default:
	}
}

func (m *evdevMonitor) Stop() {
	m.once.Do(func() {
		close(m.stop)
		m.mu.Lock()
		started := m.started
		for _, f := range m.files {
			f.Close()
		}
		m.mu.Unlock()
		if started {
			<-m.done
		}
	})
}

func (m *evdevMonitor) Toggles() <-chan struct{} { return m.toggles }
func (m *evdevMonitor) Degraded() <-chan error   { return m.degraded }

func openKeyboards() ([]*os.File, error) {
	keyboards, err := findKeyboards()
	if err != nil {
		return nil, fmt.Errorf("finding keyboards: %w", err)
	}
	var files []*os.File
	for _, path := range keyboards {
		f, err := os.Open(path)
		if err != nil {
			continue
		}
		files = append(files, f)
	}
	return files, nil
}

func findKeyboards() ([]string, error) {
	entries, err := os.ReadDir("/dev/input")
	if err != nil {
		return nil, err
	}

	var keyboards []string
	for _, e := range entries {
		if !strings.HasPrefix(e.Name(), "event") {
			continue
		}
		if isKeyboard(e.Name()) {
			keyboards = append(keyboards, filepath.Join("/dev/input", e.Name()))
		}
	}
	return keyboards, nil
}

func isKeyboard(eventName string) bool {
	capsPath := filepath.Join("/sys/class/input", eventName, "device", "capabilities", "key")
	data, err := os.ReadFile(capsPath)
	if err != nil {
		return false
	}
	caps := strings.TrimSpace(string(data))
	return len(caps) > 10
}

// Diagnose reports whether any keyboard device can be opened.
func Diagnose() (string, error) {
	keyboards, err := findKeyboards()
	if err != nil {
		return "", fmt.Errorf("cannot scan input devices: %w", err)
	}
	if len(keyboards) == 0 {
		return "", errNoKeyboards
	}

	var opened string
	for _, path := range keyboards {
		f, err := os.Open(path)
		if err == nil {
			f.Close()
			opened = path
			break
		}
	}
	if opened == "" {
		return "", fmt.Errorf("found %d keyboard(s) but cannot open any (run: sudo usermod -aG input $USER)", len(keyboards))
	}

	return fmt.Sprintf("%d keyboard(s) found, opened %s", len(keyboards), opened), nil
}
