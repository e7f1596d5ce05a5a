package transcriber

import (
	"context"
	"sync"
	"time"
)

// Fake is an Engine test double with scripted output.
type Fake struct {
	Text  string
	Err   error
	Delay time.Duration

	mu    sync.Mutex
	clips []Clip
}

func NewFake(text string, err error) *Fake {
	return &Fake{Text: text, Err: err}
}

func (f *Fake) Name() string { return "fake" }

func (f *Fake) Transcribe(ctx context.Context, clip Clip) (Result, error) {
	f.mu.Lock()
	f.clips = append(f.clips, clip)
	f.mu.Unlock()

	if f.Delay > 0 {
		select {
		case <-time.After(f.Delay):
		case <-ctx.Done():
			return Result{}, ctx.Err()
		}
	}
	if f.Err != nil {
		return Result{AudioSeconds: clip.Seconds()}, f.Err
	}
	return Result{
		Text:         f.Text,
		Outcome:      Success,
		AudioSeconds: clip.Seconds(),
		Elapsed:      f.Delay,
	}, nil
}

// Calls reports how many times Transcribe ran.
func (f *Fake) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.clips)
}

// LastClip returns the most recent clip, or a zero Clip if none.
func (f *Fake) LastClip() Clip {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.clips) == 0 {
		return Clip{}
	}
	return f.clips[len(f.clips)-1]
}
