package audio

import (
	"encoding/binary"
)

// Resample converts 16-bit little-endian mono PCM from one sample rate
// to another using linear interpolation. Input shorter than two samples
// yields nil. When the rates match the input is returned unchanged.
func Resample(in []byte, fromRate, toRate int) []byte {
	if fromRate == toRate {
		return in
	}
	inSamples := len(in) / bytesPerSample
	if inSamples < 2 {
		return nil
	}

	outSamples := inSamples * toRate / fromRate
	out := make([]byte, outSamples*bytesPerSample)

	ratio := float64(fromRate) / float64(toRate)
	for i := 0; i < outSamples; i++ {
		srcPos := float64(i) * ratio
		srcIdx := int(srcPos)
		frac := srcPos - float64(srcIdx)

		s0 := readSample(in, srcIdx)
		s1 := readSample(in, srcIdx+1)

		sample := int16(float64(s0) + frac*(float64(s1)-float64(s0)))
		binary.LittleEndian.PutUint16(out[i*bytesPerSample:], uint16(sample))
	}

	return out
}

func readSample(buf []byte, idx int) int16 {
	off := idx * bytesPerSample
	if off+1 >= len(buf) {
		// Clamp to last sample.
		off = len(buf) - bytesPerSample
	}
	if off < 0 {
		return 0
	}
	return int16(binary.LittleEndian.Uint16(buf[off:]))
}
