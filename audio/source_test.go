package audio

import (
	"errors"
	"testing"
	"time"
)

func collectFrames(t *testing.T, src *FrameSource, n int) []Frame {
	t.Helper()
	var frames []Frame
	timeout := time.After(2 * time.Second)
	for len(frames) < n {
		select {
		case f := <-src.Frames():
			frames = append(frames, f)
		case <-timeout:
			t.Fatalf("timed out after %d of %d frames", len(frames), n)
		}
	}
	return frames
}

func TestFrameSourceClassifiesSpeech(t *testing.T) {
	speech := pcmFromSamples(sineWave(440, 16000, 4800, 0.5))
	ctx := &FakeContext{PCM: speech, ChunkBytes: 640}
	dev, err := ctx.NewCapture(nil, CaptureConfig{SampleRate: 16000, Channels: 1})
	if err != nil {
		t.Fatal(err)
	}

	src := NewFrameSource(dev, SourceConfig{InputRate: 16000, Threshold: 0.002, Gain: 1.0})
	if err := src.Start(); err != nil {
		t.Fatal(err)
	}
	defer src.Stop()

	frames := collectFrames(t, src, 10)
	for i, f := range frames {
		if !f.IsSpeech {
			t.Errorf("frame %d: expected speech (level %g)", i, f.Level)
		}
		if f.Samples != len(f.PCM)/2 {
			t.Errorf("frame %d: samples %d != pcm len %d/2", i, f.Samples, len(f.PCM))
		}
	}
}

func TestFrameSourceClassifiesSilence(t *testing.T) {
	silence := make([]byte, 9600)
	ctx := &FakeContext{PCM: silence, ChunkBytes: 640}
	dev, err := ctx.NewCapture(nil, CaptureConfig{SampleRate: 16000, Channels: 1})
	if err != nil {
		t.Fatal(err)
	}

	src := NewFrameSource(dev, SourceConfig{InputRate: 16000, Threshold: 0.002, Gain: 1.0})
	if err := src.Start(); err != nil {
		t.Fatal(err)
	}
	defer src.Stop()

	for i, f := range collectFrames(t, src, 10) {
		if f.IsSpeech {
			t.Errorf("frame %d: classified silence as speech (level %g)", i, f.Level)
		}
	}
}

func TestFrameSourceResamplesToEngineRate(t *testing.T) {
	// One second at 48kHz in 20ms chunks.
	speech := pcmFromSamples(sineWave(440, 48000, 48000, 0.5))
	chunk := 48000 / 50 * 2
	ctx := &FakeContext{PCM: speech, ChunkBytes: chunk}
	dev, err := ctx.NewCapture(nil, CaptureConfig{SampleRate: 48000, Channels: 1})
	if err != nil {
		t.Fatal(err)
	}

	src := NewFrameSource(dev, SourceConfig{InputRate: 48000, Threshold: 0.002, Gain: 1.0})
	if err := src.Start(); err != nil {
		t.Fatal(err)
	}
	defer src.Stop()

	frames := collectFrames(t, src, 50)
	total := 0
	for _, f := range frames {
		total += f.Samples
	}
	// 50 frames of 20ms should cover one second at the engine rate.
	tolerance := EngineSampleRate / 50
	if diff := total - EngineSampleRate; diff > tolerance || diff < -tolerance {
		t.Errorf("total samples = %d, want ~%d", total, EngineSampleRate)
	}
}

func TestFrameSourceStartFailureClearsCallback(t *testing.T) {
	startErr := errors.New("device busy")
	ctx := &FakeContext{PCM: nil, FailStart: startErr}
	dev, err := ctx.NewCapture(nil, CaptureConfig{SampleRate: 16000, Channels: 1})
	if err != nil {
		t.Fatal(err)
	}

	src := NewFrameSource(dev, SourceConfig{InputRate: 16000, Threshold: 0.002})
	if err := src.Start(); !errors.Is(err, startErr) {
		t.Fatalf("Start error = %v, want %v", err, startErr)
	}
	if fc := dev.(*FakeCapture); fc.cb != nil {
		t.Error("callback not cleared after failed Start")
	}
	// Stop after failed Start must not panic.
	src.Stop()
}

func TestFrameSourceGainLiftsQuietAudioOverThreshold(t *testing.T) {
	quiet := pcmFromSamples(sineWave(440, 16000, 4800, 0.004))
	ctx := &FakeContext{PCM: quiet, ChunkBytes: 640}
	dev, err := ctx.NewCapture(nil, CaptureConfig{SampleRate: 16000, Channels: 1})
	if err != nil {
		t.Fatal(err)
	}

	src := NewFrameSource(dev, SourceConfig{InputRate: 16000, Threshold: 0.01, Gain: 8.0})
	if err := src.Start(); err != nil {
		t.Fatal(err)
	}
	defer src.Stop()

	frames := collectFrames(t, src, 5)
	for i, f := range frames {
		if !f.IsSpeech {
			t.Errorf("frame %d: gained audio below threshold (level %g)", i, f.Level)
		}
	}
}
