package audio

import (
	"encoding/binary"
	"math"
	"testing"
)

func pcmFromSamples(samples []int16) []byte {
	out := make([]byte, len(samples)*2)
	for i, s := range samples {
		binary.LittleEndian.PutUint16(out[i*2:], uint16(s))
	}
	return out
}

func sineWave(freq float64, rate, n int, amplitude float64) []int16 {
	samples := make([]int16, n)
	for i := range samples {
		t := float64(i) / float64(rate)
		samples[i] = int16(math.Sin(2*math.Pi*freq*t) * 32767 * amplitude)
	}
	return samples
}

func TestRMSSilence(t *testing.T) {
	pcm := make([]byte, 640)
	if got := RMS(pcm); got != 0 {
		t.Errorf("RMS(silence) = %g, want 0", got)
	}
}

func TestRMSEmpty(t *testing.T) {
	if got := RMS(nil); got != 0 {
		t.Errorf("RMS(nil) = %g, want 0", got)
	}
}

func TestRMSFullScaleSine(t *testing.T) {
	pcm := pcmFromSamples(sineWave(440, 16000, 16000, 1.0))
	got := RMS(pcm)
	// RMS of a full-scale sine is 1/sqrt(2).
	want := 1.0 / math.Sqrt2
	if math.Abs(got-want) > 0.01 {
		t.Errorf("RMS = %g, want ~%g", got, want)
	}
}

func TestRMSScalesWithAmplitude(t *testing.T) {
	loud := RMS(pcmFromSamples(sineWave(440, 16000, 16000, 0.5)))
	quiet := RMS(pcmFromSamples(sineWave(440, 16000, 16000, 0.05)))
	if loud <= quiet {
		t.Errorf("expected loud (%g) > quiet (%g)", loud, quiet)
	}
}

func TestApplyGain(t *testing.T) {
	pcm := pcmFromSamples([]int16{1000, -1000, 0})
	ApplyGain(pcm, 2.0)
	want := []int16{2000, -2000, 0}
	for i, w := range want {
		got := int16(binary.LittleEndian.Uint16(pcm[i*2:]))
		if got != w {
			t.Errorf("sample %d = %d, want %d", i, got, w)
		}
	}
}

func TestApplyGainClamps(t *testing.T) {
	pcm := pcmFromSamples([]int16{30000, -30000})
	ApplyGain(pcm, 4.0)
	if got := int16(binary.LittleEndian.Uint16(pcm[0:])); got != 32767 {
		t.Errorf("positive clamp = %d, want 32767", got)
	}
	if got := int16(binary.LittleEndian.Uint16(pcm[2:])); got != -32768 {
		t.Errorf("negative clamp = %d, want -32768", got)
	}
}

func TestApplyGainUnityIsNoop(t *testing.T) {
	pcm := pcmFromSamples([]int16{123, -456})
	ApplyGain(pcm, 1.0)
	if got := int16(binary.LittleEndian.Uint16(pcm[0:])); got != 123 {
		t.Errorf("sample 0 = %d, want 123", got)
	}
}
