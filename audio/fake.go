package audio

import (
	"sync"
	"time"
)

// FakeContext is an in-memory Context for tests and diagnostics. Each
// capture it creates replays the provided PCM through the callback in
// fixed-size chunks, then delivers silence until stopped.
type FakeContext struct {
	PCM        []byte
	ChunkBytes int

	// FailStart, when non-nil, makes every capture's Start return it.
	FailStart error
}

func (f *FakeContext) Devices() ([]DeviceInfo, error) {
	return []DeviceInfo{{ID: "fake0", Name: "fake"}}, nil
}

func (f *FakeContext) Close() {}

func (f *FakeContext) NewCapture(_ *DeviceInfo, _ CaptureConfig) (CaptureDevice, error) {
	chunk := f.ChunkBytes
	if chunk <= 0 {
		chunk = 2048
	}
	return &FakeCapture{pcm: f.PCM, chunkBytes: chunk, failStart: f.FailStart}, nil
}

type FakeCapture struct {
	pcm        []byte
	chunkBytes int
	failStart  error

	mu       sync.Mutex
	cb       DataCallback
	stopCh   chan struct{}
	feedDone chan struct{}
}

func (f *FakeCapture) SetCallback(cb DataCallback) {
	f.mu.Lock()
	f.cb = cb
	f.mu.Unlock()
}

func (f *FakeCapture) ClearCallback() {
	f.mu.Lock()
	f.cb = nil
	f.mu.Unlock()
}

func (f *FakeCapture) DeviceName() string { return "fake" }

func (f *FakeCapture) Start() error {
	if f.failStart != nil {
		return f.failStart
	}
	f.stopCh = make(chan struct{})
	f.feedDone = make(chan struct{})

	go func() {
		defer close(f.feedDone)
		for pos := 0; pos < len(f.pcm); {
			select {
			case <-f.stopCh:
				return
			default:
			}
			f.mu.Lock()
			cb := f.cb
			f.mu.Unlock()
			if cb == nil {
				return
			}
			end := min(pos+f.chunkBytes, len(f.pcm))
			chunk := make([]byte, end-pos)
			copy(chunk, f.pcm[pos:end])
			cb(chunk, uint32(len(chunk)/bytesPerSample))
			pos = end
		}
		silence := make([]byte, f.chunkBytes)
		for {
			select {
			case <-f.stopCh:
				return
			case <-time.After(time.Millisecond):
			}
			f.mu.Lock()
			cb := f.cb
			f.mu.Unlock()
			if cb == nil {
				return
			}
			cb(silence, uint32(len(silence)/bytesPerSample))
		}
	}()
	return nil
}

func (f *FakeCapture) Stop() {
	if f.stopCh == nil {
		return
	}
	select {
	case <-f.stopCh:
	default:
		close(f.stopCh)
	}
	<-f.feedDone
}

func (f *FakeCapture) Close() {}
