package indicator

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"
)

type recordSink struct {
	mu     sync.Mutex
	events []Event
}

func (r *recordSink) Notify(e Event, detail string) {
	r.mu.Lock()
	r.events = append(r.events, e)
	r.mu.Unlock()
}

func (r *recordSink) got() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Event(nil), r.events...)
}

type slowSink struct{ block chan struct{} }

func (s *slowSink) Notify(e Event, detail string) { <-s.block }

func TestMultiFansOut(t *testing.T) {
	a := &recordSink{}
	b := &recordSink{}
	m := NewMulti(a, b)
	m.Notify(Listening, "")
	m.Notify(Success, "hello")
	m.Wait()
	for name, s := range map[string]*recordSink{"a": a, "b": b} {
		if got := s.got(); len(got) != 2 {
			t.Errorf("sink %s received %d events, want 2", name, len(got))
		}
	}
}

func TestMultiDoesNotBlockOnSlowSink(t *testing.T) {
	slow := &slowSink{block: make(chan struct{})}
	fast := &recordSink{}
	m := NewMulti(slow, fast)

	done := make(chan struct{})
	go func() {
		m.Notify(Processing, "")
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Notify blocked on slow sink")
	}
	close(slow.block)
	m.Wait()
	if got := fast.got(); len(got) != 1 || got[0] != Processing {
		t.Errorf("fast sink got %v, want [Processing]", got)
	}
}

func TestMultiSkipsNilSinks(t *testing.T) {
	m := NewMulti(nil, &recordSink{})
	m.Notify(Listening, "")
	m.Wait()
}

func TestStatusFileStates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "status")
	sf := NewStatusFile(path)

	tests := []struct {
		event Event
		want  string
	}{
		{Listening, "listening\n"},
		{Processing, "processing\n"},
		{Success, "idle\n"},
		{Failure, "idle\n"},
		{EmptyAudio, "idle\n"},
		{DeviceLost, "error\n"},
		{DeviceRecovered, "idle\n"},
	}
	for _, tt := range tests {
		sf.Notify(tt.event, "")
		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("read status after %v: %v", tt.event, err)
		}
		if string(data) != tt.want {
			t.Errorf("after %v status = %q, want %q", tt.event, data, tt.want)
		}
	}

	sf.Remove()
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("Remove did not delete the status file")
	}
}

func TestEventString(t *testing.T) {
	if Listening.String() != "listening" || Event(99).String() != "unknown" {
		t.Error("Event.String mismatch")
	}
}

func TestNotifyContent(t *testing.T) {
	title, _, urgency := notifyContent(Failure, "boom")
	if title == "" || urgency != "critical" {
		t.Errorf("Failure content = (%q, %q)", title, urgency)
	}
	if title, _, _ := notifyContent(Event(99), ""); title != "" {
		t.Error("unknown event should produce no notification")
	}
}

func TestToneGeneration(t *testing.T) {
	samples := generateTick(beepSampleRate, 1000, 0.1, 0.5, 40)
	if len(samples) != int(beepSampleRate*0.1)*2 {
		t.Fatalf("tick length = %d", len(samples))
	}
	// Envelope decays: late samples quieter than early ones
	var early, late int32
	for i := 0; i < 200; i++ {
		if v := samples[i]; v > int16(early) {
			early = int32(v)
		}
	}
	for i := len(samples) - 200; i < len(samples); i++ {
		if v := samples[i]; v > int16(late) {
			late = int32(v)
		}
	}
	if late >= early {
		t.Errorf("envelope did not decay: early peak %d, late peak %d", early, late)
	}

	double := generateDoubleBeep(beepSampleRate, 350, 0.08, 0.05, 0.6, 30)
	single := generateTick(beepSampleRate, 350, 0.08, 0.6, 30)
	gap := int(beepSampleRate*0.05) * 2
	if len(double) != len(single)*2+gap {
		t.Errorf("double beep length = %d, want %d", len(double), len(single)*2+gap)
	}
}
