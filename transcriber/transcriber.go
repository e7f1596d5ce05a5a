// Package transcriber turns finalized audio clips into text. The
// engine is consumed as a black box: samples in, text out.
package transcriber

import (
	"context"
	"time"
)

// Outcome classifies how an utterance session ended.
type Outcome int

const (
	Success Outcome = iota
	EmptyAudio
	EngineError
)

func (o Outcome) String() string {
	switch o {
	case Success:
		return "success"
	case EmptyAudio:
		return "empty_audio"
	case EngineError:
		return "engine_error"
	default:
		return "unknown"
	}
}

// Clip is one frozen utterance: 16-bit little-endian mono PCM.
type Clip struct {
	PCM        []byte
	SampleRate int
}

func (c Clip) Samples() int {
	return len(c.PCM) / 2
}

func (c Clip) Seconds() float64 {
	if c.SampleRate == 0 {
		return 0
	}
	return float64(c.Samples()) / float64(c.SampleRate)
}

// Result is the outcome of one transcription call.
type Result struct {
	Text         string
	Outcome      Outcome
	AudioSeconds float64
	Elapsed      time.Duration
	Detail       string // diagnostic message on EngineError
}

// Engine is a blocking transcription backend. Transcribe may take
// substantially longer than real time; callers run it off the event
// thread. Engines report internal failures as errors, never panics.
type Engine interface {
	Name() string
	Transcribe(ctx context.Context, clip Clip) (Result, error)
}
