package indicator

import (
	"math"
	"sync"
)

const (
	beepSampleRate = 44100

	// Capture-start cue: high pitch, short
	startFreq   = 1200
	startVolume = 0.5
	startDecay  = 60

	// Capture-stop cue: medium pitch, slightly longer
	stopFreq   = 900
	stopVolume = 0.5
	stopDecay  = 40

	// Error cue: low pitch double-beep
	errorFreq   = 350
	errorVolume = 0.6
	errorDecay  = 30
)

var (
	startSamples []int16
	stopSamples  []int16
	errorSamples []int16
	toneOnce     sync.Once
)

func initTones() {
	startSamples = generateTick(beepSampleRate, startFreq, 0.2, startVolume, startDecay)
	stopSamples = generateTick(beepSampleRate, stopFreq, 0.2, stopVolume, stopDecay)
	errorSamples = generateDoubleBeep(beepSampleRate, errorFreq, 0.08, 0.05, errorVolume, errorDecay)
}

func generateTick(sampleRate int, freq, duration, volume, decay float64) []int16 {
	n := int(float64(sampleRate) * duration)
	samples := make([]int16, n*2)
	for i := 0; i < n; i++ {
		t := float64(i) / float64(sampleRate)
		envelope := math.Exp(-t * decay)
		s := int16(math.Sin(2*math.Pi*freq*t) * 32767 * volume * envelope)
		samples[i*2] = s
		samples[i*2+1] = s
	}
	return samples
}

func generateDoubleBeep(sampleRate int, freq, beepDur, gapDur, volume, decay float64) []int16 {
	beep := generateTick(sampleRate, freq, beepDur, volume, decay)
	gap := make([]int16, int(float64(sampleRate)*gapDur)*2)
	result := make([]int16, 0, len(beep)*2+len(gap))
	result = append(result, beep...)
	result = append(result, gap...)
	result = append(result, beep...)
	return result
}

// Beeper plays short audio cues on state changes.
type Beeper struct{}

func NewBeeper() *Beeper {
	toneOnce.Do(initTones)
	return &Beeper{}
}

func (b *Beeper) Notify(e Event, detail string) {
	switch e {
	case Listening:
		playSamples(startSamples)
	case Processing:
		playSamples(stopSamples)
	case Failure, DeviceLost:
		playSamples(errorSamples)
	}
}
