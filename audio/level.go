package audio

import (
	"encoding/binary"
	"math"
)

// RMS computes the root-mean-square level of 16-bit little-endian mono
// PCM, normalized to [0,1]. Empty input reports zero.
func RMS(pcm []byte) float64 {
	n := len(pcm) / bytesPerSample
	if n == 0 {
		return 0
	}
	var sumSquares float64
	for i := 0; i+1 < len(pcm); i += bytesPerSample {
		sample := int16(binary.LittleEndian.Uint16(pcm[i:]))
		normalized := float64(sample) / 32768.0
		sumSquares += normalized * normalized
	}
	return math.Sqrt(sumSquares / float64(n))
}

// ApplyGain multiplies samples in place by gain, clamping at the int16
// range.
func ApplyGain(pcm []byte, gain float64) {
	if gain == 1.0 {
		return
	}
	for i := 0; i+1 < len(pcm); i += bytesPerSample {
		sample := int16(binary.LittleEndian.Uint16(pcm[i:]))
		amplified := float64(sample) * gain
		if amplified > 32767 {
			amplified = 32767
		} else if amplified < -32768 {
			amplified = -32768
		}
		binary.LittleEndian.PutUint16(pcm[i:], uint16(int16(amplified)))
	}
}
