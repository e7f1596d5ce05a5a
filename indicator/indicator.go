// Package indicator fans pipeline state changes out to user-visible
// surfaces: desktop notifications, audio cues, and a status file that
// bars and scripts can poll.
package indicator

import "sync"

// Event is a pipeline state change worth surfacing to the user.
type Event int

const (
	Listening Event = iota
	Processing
	Success
	Failure
	EmptyAudio
	DeviceLost
	DeviceRecovered
)

func (e Event) String() string {
	switch e {
	case Listening:
		return "listening"
	case Processing:
		return "processing"
	case Success:
		return "success"
	case Failure:
		return "failure"
	case EmptyAudio:
		return "empty"
	case DeviceLost:
		return "device-lost"
	case DeviceRecovered:
		return "device-recovered"
	default:
		return "unknown"
	}
}

// Sink receives events. Implementations must tolerate being called
// from multiple goroutines and must never block the caller for long;
// Multi enforces the latter by dispatching asynchronously.
type Sink interface {
	Notify(e Event, detail string)
}

// Multi delivers each event to every sink on its own goroutine so a
// stuck notification daemon cannot stall the capture loop.
type Multi struct {
	sinks []Sink
	wg    sync.WaitGroup
}

func NewMulti(sinks ...Sink) *Multi {
	out := make([]Sink, 0, len(sinks))
	for _, s := range sinks {
		if s != nil {
			out = append(out, s)
		}
	}
	return &Multi{sinks: out}
}

func (m *Multi) Notify(e Event, detail string) {
	for _, s := range m.sinks {
		m.wg.Add(1)
		go func(s Sink) {
			defer m.wg.Done()
			defer func() { recover() }()
			s.Notify(e, detail)
		}(s)
	}
}

// Wait blocks until in-flight deliveries finish. Used at shutdown and
// in tests.
func (m *Multi) Wait() { m.wg.Wait() }
