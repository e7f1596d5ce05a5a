package encoder

import (
	"bytes"
	"encoding/binary"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mewkiz/flac"
)

func sinePCM(samples int, freq float64, rate int) []byte {
	buf := make([]byte, samples*2)
	for i := 0; i < samples; i++ {
		v := int16(math.Sin(2*math.Pi*freq*float64(i)/float64(rate)) * 16000)
		binary.LittleEndian.PutUint16(buf[i*2:], uint16(v))
	}
	return buf
}

func TestFlacEncoder(t *testing.T) {
	pcm := sinePCM(16000, 440, 16000)
	samples := make([]int16, len(pcm)/2)
	for i := range samples {
		samples[i] = int16(binary.LittleEndian.Uint16(pcm[i*2:]))
	}

	enc, err := NewFlac(16000)
	if err != nil {
		t.Fatalf("NewFlac: %v", err)
	}

	var totalFed uint64
	for i := 0; i < len(samples); i += BlockSize {
		end := i + BlockSize
		if end > len(samples) {
			end = len(samples)
		}
		block := samples[i:end]
		if err := enc.EncodeBlock(block); err != nil {
			t.Fatalf("EncodeBlock at offset %d: %v", i, err)
		}
		totalFed += uint64(len(block))
	}
	if err := enc.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if enc.TotalSamples() != totalFed {
		t.Errorf("TotalSamples = %d, want %d", enc.TotalSamples(), totalFed)
	}

	data := enc.Bytes()
	if len(data) < 4 || string(data[:4]) != "fLaC" {
		t.Fatal("output does not start with FLAC magic")
	}

	stream, err := flac.Parse(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("re-parsing encoded stream: %v", err)
	}
	if stream.Info.SampleRate != 16000 {
		t.Errorf("SampleRate = %d, want 16000", stream.Info.SampleRate)
	}
	if stream.Info.NChannels != Channels {
		t.Errorf("NChannels = %d, want %d", stream.Info.NChannels, Channels)
	}
}

func TestFlacEncoderEmpty(t *testing.T) {
	enc, err := NewFlac(16000)
	if err != nil {
		t.Fatalf("NewFlac: %v", err)
	}
	if err := enc.Close(); err != nil {
		t.Fatalf("Close on empty encoder: %v", err)
	}
	if enc.TotalSamples() != 0 {
		t.Errorf("TotalSamples = %d, want 0", enc.TotalSamples())
	}
	if len(enc.Bytes()) == 0 {
		t.Error("expected non-empty FLAC output (at least header)")
	}
}

func TestArchive(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "recordings")
	pcm := sinePCM(8000, 440, 16000)

	path, err := Archive(dir, pcm, 16000)
	if err != nil {
		t.Fatalf("Archive: %v", err)
	}
	if !strings.HasSuffix(path, ".flac") {
		t.Errorf("path = %q, want .flac suffix", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading archived file: %v", err)
	}
	if string(data[:4]) != "fLaC" {
		t.Error("archived file does not start with FLAC magic")
	}
}
