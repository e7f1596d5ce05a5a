package hotkey

import (
	"testing"
	"time"
)

func TestDebouncerSuppressesWithinInterval(t *testing.T) {
	d := newDebouncer(150 * time.Millisecond)
	base := time.Now()

	if !d.Allow(base) {
		t.Fatal("first signal should pass")
	}
	if d.Allow(base.Add(50 * time.Millisecond)) {
		t.Error("signal 50ms after previous should be suppressed")
	}
	if d.Allow(base.Add(149 * time.Millisecond)) {
		t.Error("signal 149ms after previous should be suppressed")
	}
	if !d.Allow(base.Add(150 * time.Millisecond)) {
		t.Error("signal at exactly the interval should pass")
	}
}

func TestDebouncerSuppressedSignalDoesNotExtendWindow(t *testing.T) {
	d := newDebouncer(150 * time.Millisecond)
	base := time.Now()

	d.Allow(base)
	d.Allow(base.Add(100 * time.Millisecond)) // suppressed
	// Window is measured from the last accepted signal, not the
	// suppressed one.
	if !d.Allow(base.Add(160 * time.Millisecond)) {
		t.Error("signal 160ms after accepted signal should pass")
	}
}

func TestDebouncerKeyRepeatBurst(t *testing.T) {
	d := newDebouncer(150 * time.Millisecond)
	base := time.Now()

	accepted := 0
	// 30ms key-repeat burst over 600ms.
	for i := 0; i < 20; i++ {
		if d.Allow(base.Add(time.Duration(i) * 30 * time.Millisecond)) {
			accepted++
		}
	}
	if accepted != 4 {
		t.Errorf("accepted %d signals from repeat burst, want 4", accepted)
	}
}

func TestFakeDeliversToggles(t *testing.T) {
	f := NewFake()
	if err := f.Start(); err != nil {
		t.Fatal(err)
	}
	defer f.Stop()

	f.SimToggle()
	select {
	case <-f.Toggles():
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for toggle")
	}
}
