package transcriber

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

// binaryNames are tried in order when no explicit binary is configured.
// whisper-cli is the current upstream name, the rest are older installs.
var binaryNames = []string{"whisper-cli", "whisper-cpp", "whisper", "main"}

// WhisperConfig configures the local whisper.cpp engine.
type WhisperConfig struct {
	BinPath   string // explicit binary path; searched on PATH when empty
	ModelPath string // ggml model file
	Language  string // ISO code, or "auto" to detect
	Threads   int    // 0 leaves the choice to whisper.cpp
}

// Whisper runs whisper.cpp as a subprocess per utterance. The call is
// synchronous and not interruptible mid-inference; context cancellation
// kills the subprocess and surfaces as an engine error.
type Whisper struct {
	cfg WhisperConfig
}

// NewWhisper validates that the binary and model exist before any
// session starts; model selection is fixed for the process lifetime.
func NewWhisper(cfg WhisperConfig) (*Whisper, error) {
	if cfg.BinPath == "" {
		cfg.BinPath = FindBinary()
	}
	if cfg.BinPath == "" {
		return nil, fmt.Errorf("whisper.cpp binary not found on PATH (tried %s)", strings.Join(binaryNames, ", "))
	}
	if _, err := os.Stat(cfg.ModelPath); err != nil {
		return nil, fmt.Errorf("model file %s: %w (download from https://huggingface.co/ggerganov/whisper.cpp)", cfg.ModelPath, err)
	}
	return &Whisper{cfg: cfg}, nil
}

func (w *Whisper) Name() string { return "whisper.cpp" }

func (w *Whisper) Transcribe(ctx context.Context, clip Clip) (Result, error) {
	start := time.Now()
	res := Result{AudioSeconds: clip.Seconds()}

	audioPath := filepath.Join(os.TempDir(), fmt.Sprintf("whisper-toggle-%d.wav", time.Now().UnixNano()))
	if err := os.WriteFile(audioPath, EncodeWAV(clip.PCM, clip.SampleRate), 0600); err != nil {
		return res, fmt.Errorf("write audio file: %w", err)
	}
	defer os.Remove(audioPath)

	cmd := exec.CommandContext(ctx, w.cfg.BinPath, w.args(audioPath)...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return res, fmt.Errorf("whisper.cpp: %w (stderr: %s)", err, firstLine(stderr.String()))
	}

	res.Text = cleanOutput(stdout.String())
	res.Outcome = Success
	res.Elapsed = time.Since(start)
	return res, nil
}

// args builds the whisper.cpp invocation: plain text on stdout, no
// timestamps, no progress chatter.
func (w *Whisper) args(audioPath string) []string {
	args := []string{
		"-m", w.cfg.ModelPath,
		"-f", audioPath,
		"--no-prints",
		"--no-timestamps",
	}
	if w.cfg.Language != "" {
		args = append(args, "-l", w.cfg.Language)
	}
	if w.cfg.Threads > 0 {
		args = append(args, "-t", fmt.Sprintf("%d", w.cfg.Threads))
	}
	return args
}

// cleanOutput joins whisper.cpp's stdout lines into one trimmed string.
func cleanOutput(out string) string {
	var parts []string
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			parts = append(parts, line)
		}
	}
	return strings.Join(parts, " ")
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

// FindBinary locates a whisper.cpp executable on PATH, trying the
// known install names in order. Empty when none is installed.
func FindBinary() string {
	for _, name := range binaryNames {
		if path, err := exec.LookPath(name); err == nil {
			return path
		}
	}
	return ""
}
