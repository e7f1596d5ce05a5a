package audio

import (
	"sync/atomic"
)

// SourceConfig tunes how raw capture data is turned into Frames.
type SourceConfig struct {
	InputRate int     // sample rate the device delivers
	Threshold float64 // silence threshold, normalized amplitude units
	Gain      float64 // applied before classification
}

// FrameSource wraps a CaptureDevice and turns its raw callback data
// into a stream of classified Frames at EngineSampleRate. The frame
// sequence is live only between Start and Stop; a fresh Start begins a
// new sequence on the same channel.
type FrameSource struct {
	dev     CaptureDevice
	cfg     SourceConfig
	frames  chan Frame
	dropped atomic.Uint64
}

func NewFrameSource(dev CaptureDevice, cfg SourceConfig) *FrameSource {
	if cfg.Gain <= 0 {
		cfg.Gain = 1.0
	}
	return &FrameSource{
		dev:    dev,
		cfg:    cfg,
		frames: make(chan Frame, 64),
	}
}

// Start installs the frame-producing callback and opens the stream. If
// the device fails to start, the callback is cleared before returning
// so a failed Start leaves no capture state behind.
func (s *FrameSource) Start() error {
	s.dev.SetCallback(s.onData)
	if err := s.dev.Start(); err != nil {
		s.dev.ClearCallback()
		return err
	}
	return nil
}

// Stop closes the stream and detaches the callback. Safe to call after
// a failed Start and safe to call more than once.
func (s *FrameSource) Stop() {
	s.dev.Stop()
	s.dev.ClearCallback()
}

func (s *FrameSource) Frames() <-chan Frame { return s.frames }

// Dropped reports frames discarded because the consumer fell behind.
func (s *FrameSource) Dropped() uint64 { return s.dropped.Load() }

func (s *FrameSource) DeviceName() string { return s.dev.DeviceName() }

func (s *FrameSource) onData(data []byte, frameCount uint32) {
	if len(data) < bytesPerSample {
		return
	}
	pcm := make([]byte, len(data)&^1)
	copy(pcm, data)

	ApplyGain(pcm, s.cfg.Gain)
	level := RMS(pcm)
	pcm = Resample(pcm, s.cfg.InputRate, EngineSampleRate)
	if len(pcm) == 0 {
		return
	}

	frame := Frame{
		PCM:      pcm,
		Samples:  len(pcm) / bytesPerSample,
		Level:    level,
		IsSpeech: level >= s.cfg.Threshold,
	}
	// Never block the device callback; a stalled consumer loses
	// frames rather than wedging the stream.
	select {
	case s.frames <- frame:
	default:
		s.dropped.Add(1)
	}
}
