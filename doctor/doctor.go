// Package doctor runs environment diagnostics: input device access,
// audio capture, the whisper.cpp install, and the injection path.
package doctor

import (
	"fmt"
	"os"
	"time"

	"github.com/bradjmsu/whisper-toggle/audio"
	"github.com/bradjmsu/whisper-toggle/config"
	"github.com/bradjmsu/whisper-toggle/hotkey"
	"github.com/bradjmsu/whisper-toggle/transcriber"
)

// Run executes the diagnostic checks and returns an exit code
// (0=all pass, 1=any fail).
func Run(cfg *config.Config) int {
	resetTerminal()
	setupInterruptHandler()

	fmt.Println("whisper-toggle doctor - system diagnostics")
	fmt.Println("==========================================")

	allPass := true

	if !checkHotkeyAccess() {
		allPass = false
	}
	if !checkAudio(cfg) {
		allPass = false
	}
	if !checkWhisper(cfg) {
		allPass = false
	}
	if !checkInjection() {
		allPass = false
	}

	fmt.Println()
	if allPass {
		fmt.Println("All checks passed!")
		return 0
	}
	fmt.Println("Some checks failed. See details above.")
	return 1
}

func checkHotkeyAccess() bool {
	fmt.Println()
	fmt.Println("[1/4] Toggle key access")

	detail, err := hotkey.Diagnose()
	if err != nil {
		fmt.Printf("  FAIL: %v\n", err)
		return false
	}
	fmt.Printf("  PASS: %s\n", detail)
	return true
}

func checkAudio(cfg *config.Config) bool {
	fmt.Println()
	fmt.Println("[2/4] Audio capture")

	ctx, err := audio.NewContext()
	if err != nil {
		fmt.Printf("  FAIL: cannot connect to audio: %v\n", err)
		return false
	}
	defer ctx.Close()

	devices, err := ctx.Devices()
	if err != nil {
		fmt.Printf("  FAIL: cannot list devices: %v\n", err)
		return false
	}
	if len(devices) == 0 {
		fmt.Println("  FAIL: no capture devices found")
		return false
	}
	fmt.Printf("  Found %d capture device(s)\n", len(devices))

	device, err := audio.FindDevice(ctx, cfg.AudioDeviceName, cfg.AudioDeviceIndex)
	if err != nil {
		fmt.Printf("  FAIL: configured device: %v\n", err)
		return false
	}

	// Open a short capture to prove the device actually delivers data.
	dev, err := ctx.NewCapture(device, audio.CaptureConfig{
		SampleRate: uint32(cfg.SampleRate),
		Channels:   1,
	})
	if err != nil {
		fmt.Printf("  FAIL: cannot open capture device: %v\n", err)
		return false
	}
	defer dev.Close()

	got := make(chan struct{}, 1)
	dev.SetCallback(func(data []byte, frameCount uint32) {
		select {
		case got <- struct{}{}:
		default:
		}
	})
	if err := dev.Start(); err != nil {
		fmt.Printf("  FAIL: cannot start capture: %v\n", err)
		return false
	}
	select {
	case <-got:
		fmt.Printf("  PASS: %s delivers audio\n", dev.DeviceName())
	case <-time.After(2 * time.Second):
		dev.Stop()
		fmt.Println("  FAIL: device opened but no audio arrived within 2s")
		return false
	}
	dev.Stop()
	return true
}

func checkWhisper(cfg *config.Config) bool {
	fmt.Println()
	fmt.Println("[3/4] Transcription engine")

	bin := cfg.WhisperBin
	if bin == "" {
		bin = transcriber.FindBinary()
	}
	if bin == "" {
		fmt.Println("  FAIL: whisper.cpp binary not found on PATH")
		fmt.Println("        install whisper.cpp and ensure whisper-cli is on PATH")
		return false
	}
	fmt.Printf("  Found binary: %s\n", bin)

	model := cfg.ModelPath()
	if _, err := os.Stat(model); err != nil {
		fmt.Printf("  FAIL: model file missing: %s\n", model)
		fmt.Println("        download from https://huggingface.co/ggerganov/whisper.cpp")
		return false
	}
	fmt.Printf("  PASS: model present: %s\n", model)
	return true
}
