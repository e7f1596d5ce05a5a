package main

import (
	"context"
	"time"

	"github.com/bradjmsu/whisper-toggle/audio"
	"github.com/bradjmsu/whisper-toggle/encoder"
	"github.com/bradjmsu/whisper-toggle/hotkey"
	"github.com/bradjmsu/whisper-toggle/indicator"
	"github.com/bradjmsu/whisper-toggle/inject"
	"github.com/bradjmsu/whisper-toggle/log"
	"github.com/bradjmsu/whisper-toggle/transcriber"
)

// stallTimeout bounds how long Listening survives without a single
// frame arriving. A dropped device stops the callback silently, so
// the loop has to notice the gap itself.
const stallTimeout = 2 * time.Second

// frameSource is one capture session's frame stream.
type frameSource interface {
	Start() error
	Stop()
	Frames() <-chan audio.Frame
}

type engineResult struct {
	res transcriber.Result
	err error
}

// orchestrator owns ToggleState and drives the capture/transcribe
// pipeline from a single event loop. The key monitor, the audio
// callback, and the transcription worker never touch its state
// directly; everything arrives over channels.
type orchestrator struct {
	monitor   hotkey.Monitor
	newSource func() (frameSource, error)
	engine    transcriber.Engine
	injector  inject.Injector
	sink      indicator.Sink
	buf       *utteranceBuffer

	// extToggle carries out-of-band toggle requests (SIGUSR1). It
	// feeds the same entry point as the hardware key.
	extToggle chan struct{}

	archiveDir string // save finished clips here when non-empty

	state     ToggleState
	src       frameSource
	frames    <-chan audio.Frame
	results   chan engineResult
	lastFrame time.Time
	sessions  int
}

type orchestratorConfig struct {
	Monitor    hotkey.Monitor
	NewSource  func() (frameSource, error)
	Engine     transcriber.Engine
	Injector   inject.Injector
	Sink       indicator.Sink
	SampleRate int
	Trailing   time.Duration
	MaxSession time.Duration
	ArchiveDir string
}

func newOrchestrator(cfg orchestratorConfig) *orchestrator {
	return &orchestrator{
		monitor:    cfg.Monitor,
		newSource:  cfg.NewSource,
		engine:     cfg.Engine,
		injector:   cfg.Injector,
		sink:       cfg.Sink,
		buf:        newUtteranceBuffer(cfg.SampleRate, cfg.Trailing, cfg.MaxSession),
		extToggle:  make(chan struct{}, 1),
		archiveDir: cfg.ArchiveDir,
		results:    make(chan engineResult, 1),
	}
}

// Toggle requests a toggle from outside the hardware key path. Safe
// to call from any goroutine; coalesces when the loop is busy.
func (o *orchestrator) Toggle() {
	select {
	case o.extToggle <- struct{}{}:
	default:
	}
}

// run is the single consumer of all pipeline events. It returns when
// ctx is cancelled, after releasing any active capture.
func (o *orchestrator) run(ctx context.Context) {
	stall := time.NewTicker(500 * time.Millisecond)
	defer stall.Stop()

	for {
		select {
		case <-ctx.Done():
			o.stopCapture()
			o.state = Idle
			log.SessionEnd(o.sessions)
			return

		case <-o.monitor.Toggles():
			o.toggle()

		case <-o.extToggle:
			o.toggle()

		case err := <-o.monitor.Degraded():
			if err != nil {
				log.Errorf("toggle key source degraded: %v", err)
				o.sink.Notify(indicator.DeviceLost, err.Error())
			} else {
				log.Info("toggle key source recovered")
				o.sink.Notify(indicator.DeviceRecovered, "")
			}

		case f := <-o.frames:
			o.onFrame(f)

		case r := <-o.results:
			o.onResult(r)

		case <-stall.C:
			if o.state == Listening && time.Since(o.lastFrame) > stallTimeout {
				log.Warn("audio stream stalled, finalizing with buffered audio")
				o.finishSession()
			}
		}
	}
}

// toggle is the single authoritative trigger for session start/stop.
func (o *orchestrator) toggle() {
	switch o.state {
	case Idle:
		o.startSession()
	case Listening:
		o.finishSession()
	case Processing:
		// Transcription is not interruptible; extra presses are
		// absorbed here rather than queued.
		log.Debugf("toggle ignored while processing")
	}
}

func (o *orchestrator) startSession() {
	src, err := o.newSource()
	if err != nil {
		log.Errorf("audio device unavailable: %v", err)
		o.sink.Notify(indicator.Failure, "audio device unavailable")
		return
	}
	if err := src.Start(); err != nil {
		src.Stop()
		log.Errorf("audio capture start failed: %v", err)
		o.sink.Notify(indicator.Failure, "audio device unavailable")
		return
	}

	o.src = src
	o.frames = src.Frames()
	o.buf.reset()
	o.lastFrame = time.Now()
	o.state = Listening
	o.sessions++
	log.Info("listening")
	o.sink.Notify(indicator.Listening, "")
}

func (o *orchestrator) onFrame(f audio.Frame) {
	if o.state != Listening {
		// Frames in flight from a session just stopped; drop them.
		return
	}
	o.lastFrame = time.Now()
	if o.buf.push(f) != keepListening {
		o.finishSession()
	}
}

// finishSession closes capture and either short-circuits to Idle
// (nothing worth transcribing) or hands the clip to the engine worker.
func (o *orchestrator) finishSession() {
	o.stopCapture()

	clip, ok := o.buf.finalize()
	if !ok {
		log.Infof("session ended with no speech (%.2fs buffered)", clip.Seconds())
		o.sink.Notify(indicator.EmptyAudio, "")
		o.state = Idle
		return
	}

	o.state = Processing
	log.Infof("transcribing %.2fs of audio", clip.Seconds())
	o.sink.Notify(indicator.Processing, "")

	if o.archiveDir != "" {
		go func(c transcriber.Clip) {
			if path, err := encoder.Archive(o.archiveDir, c.PCM, uint32(c.SampleRate)); err != nil {
				log.Errorf("recording archive failed: %v", err)
			} else {
				log.Debugf("recording saved: %s", path)
			}
		}(clip)
	}

	go func(c transcriber.Clip) {
		res, err := o.engine.Transcribe(context.Background(), c)
		o.results <- engineResult{res: res, err: err}
	}(clip)
}

func (o *orchestrator) onResult(r engineResult) {
	if o.state != Processing {
		return
	}

	switch {
	case r.err != nil:
		log.Errorf("transcription failed: %v", r.err)
		log.Transcription(transcriber.EngineError.String(), r.res.AudioSeconds, float64(r.res.Elapsed.Milliseconds()), o.engine.Name())
		o.sink.Notify(indicator.Failure, r.err.Error())

	case r.res.Text == "":
		log.Info("transcription produced no text")
		log.Transcription(transcriber.EmptyAudio.String(), r.res.AudioSeconds, float64(r.res.Elapsed.Milliseconds()), o.engine.Name())
		o.sink.Notify(indicator.EmptyAudio, "")

	default:
		log.Transcription(transcriber.Success.String(), r.res.AudioSeconds, float64(r.res.Elapsed.Milliseconds()), o.engine.Name())
		log.TranscriptionText(r.res.Text)
		if err := o.injector.Inject(r.res.Text); err != nil {
			// Text is not queued or retried; the session still
			// resets so the next toggle works.
			log.Errorf("text injection failed: %v", err)
			o.sink.Notify(indicator.Failure, "could not deliver text")
		} else {
			o.sink.Notify(indicator.Success, r.res.Text)
		}
	}

	o.state = Idle
}

// stopCapture releases the active frame source. Safe when none is
// active; every exit from Listening goes through here.
func (o *orchestrator) stopCapture() {
	if o.src != nil {
		o.src.Stop()
		o.src = nil
	}
	o.frames = nil
}
