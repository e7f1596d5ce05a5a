// Package audio owns microphone capture: backend device access,
// speech/silence classification, and resampling to the rate the
// transcription engine expects.
package audio

// EngineSampleRate is the rate the transcription engine requires.
// Captured audio at any other rate is resampled before leaving this
// package.
const EngineSampleRate = 16000

const bytesPerSample = 2 // 16-bit mono PCM

type DataCallback func(data []byte, frameCount uint32)

type CaptureConfig struct {
	SampleRate uint32
	Channels   uint32
}

type DeviceInfo struct {
	ID   string // opaque platform-specific identifier
	Name string
}

type Context interface {
	Devices() ([]DeviceInfo, error)
	NewCapture(device *DeviceInfo, config CaptureConfig) (CaptureDevice, error)
	Close()
}

type CaptureDevice interface {
	Start() error
	Stop()
	Close()
	SetCallback(cb DataCallback)
	ClearCallback()
	DeviceName() string
}

// Frame is one fixed-cadence chunk of captured audio, already gained,
// classified, and resampled to EngineSampleRate. Frames are handed off
// by value and never retained by this package.
type Frame struct {
	PCM      []byte  // 16-bit little-endian mono at EngineSampleRate
	Samples  int     // sample count of PCM
	Level    float64 // post-gain RMS, normalized to [0,1]
	IsSpeech bool    // Level at or above the configured silence threshold
}
