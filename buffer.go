package main

import (
	"time"

	"github.com/bradjmsu/whisper-toggle/audio"
	"github.com/bradjmsu/whisper-toggle/transcriber"
)

// verdict is the buffer's answer to each pushed frame: keep
// listening, or finalize now.
type verdict int

const (
	keepListening verdict = iota
	autoStop              // trailing-silence run reached the limit
	ceilingHit            // hard max session duration reached
)

// minUtterance is the shortest clip worth transcribing. Anything
// shorter is treated as no speech.
const minUtterance = 100 * time.Millisecond

// utteranceBuffer accumulates classified frames for one session.
// Silence tracking is in samples, not frames, so the auto-stop point
// does not depend on the backend's chunk size.
type utteranceBuffer struct {
	sampleRate     int
	trailingLimit  int // consecutive silent samples that trigger auto-stop
	ceilingSamples int // total samples that force finalize
	minSamples     int

	pcm        []byte
	total      int
	silenceRun int
	speechSeen bool
}

func newUtteranceBuffer(sampleRate int, trailingSilence, maxSession time.Duration) *utteranceBuffer {
	return &utteranceBuffer{
		sampleRate:     sampleRate,
		trailingLimit:  samplesFor(sampleRate, trailingSilence),
		ceilingSamples: samplesFor(sampleRate, maxSession),
		minSamples:     samplesFor(sampleRate, minUtterance),
	}
}

func samplesFor(rate int, d time.Duration) int {
	return int(float64(rate) * d.Seconds())
}

// push appends one frame and reports whether the session should end.
// The ceiling wins over the trailing-silence rule when both trip on
// the same frame.
func (b *utteranceBuffer) push(f audio.Frame) verdict {
	b.pcm = append(b.pcm, f.PCM...)
	b.total += f.Samples
	if f.IsSpeech {
		b.speechSeen = true
		b.silenceRun = 0
	} else {
		b.silenceRun += f.Samples
	}

	if b.total >= b.ceilingSamples {
		return ceilingHit
	}
	if b.silenceRun >= b.trailingLimit {
		return autoStop
	}
	return keepListening
}

// finalize freezes the accumulated audio into a clip and resets the
// buffer for the next session. ok is false when the session carried
// no usable speech; such clips must not reach the engine.
func (b *utteranceBuffer) finalize() (clip transcriber.Clip, ok bool) {
	clip = transcriber.Clip{PCM: b.pcm, SampleRate: b.sampleRate}
	ok = b.speechSeen && b.total >= b.minSamples
	b.reset()
	return clip, ok
}

func (b *utteranceBuffer) reset() {
	b.pcm = nil
	b.total = 0
	b.silenceRun = 0
	b.speechSeen = false
}

// duration reports the audio accumulated so far.
func (b *utteranceBuffer) duration() time.Duration {
	if b.sampleRate == 0 {
		return 0
	}
	return time.Duration(float64(b.total) / float64(b.sampleRate) * float64(time.Second))
}
