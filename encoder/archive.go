package encoder

import (
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Archive compresses little-endian 16-bit mono PCM to FLAC and writes
// it to dir with a timestamped name. Returns the written path.
func Archive(dir string, pcm []byte, sampleRate uint32) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating recordings dir: %w", err)
	}

	samples := make([]int16, len(pcm)/2)
	for i := range samples {
		samples[i] = int16(binary.LittleEndian.Uint16(pcm[i*2:]))
	}

	enc, err := NewFlac(sampleRate)
	if err != nil {
		return "", err
	}
	for i := 0; i < len(samples); i += BlockSize {
		end := i + BlockSize
		if end > len(samples) {
			end = len(samples)
		}
		if err := enc.EncodeBlock(samples[i:end]); err != nil {
			return "", err
		}
	}
	if err := enc.Close(); err != nil {
		return "", fmt.Errorf("finalizing flac stream: %w", err)
	}

	name := time.Now().Format("2006-01-02-150405") + ".flac"
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, enc.Bytes(), 0o644); err != nil {
		return "", fmt.Errorf("writing recording: %w", err)
	}
	return path, nil
}
