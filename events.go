package main

// ToggleState is the pipeline's single authoritative state. It is
// owned exclusively by the orchestrator's event loop; no other
// goroutine reads or writes it.
type ToggleState int

const (
	Idle ToggleState = iota
	Listening
	Processing
)

func (s ToggleState) String() string {
	switch s {
	case Idle:
		return "idle"
	case Listening:
		return "listening"
	case Processing:
		return "processing"
	default:
		return "unknown"
	}
}
