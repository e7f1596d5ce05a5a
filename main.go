package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/bradjmsu/whisper-toggle/audio"
	"github.com/bradjmsu/whisper-toggle/config"
	"github.com/bradjmsu/whisper-toggle/doctor"
	"github.com/bradjmsu/whisper-toggle/hotkey"
	"github.com/bradjmsu/whisper-toggle/indicator"
	"github.com/bradjmsu/whisper-toggle/inject"
	"github.com/bradjmsu/whisper-toggle/log"
	"github.com/bradjmsu/whisper-toggle/shutdown"
	"github.com/bradjmsu/whisper-toggle/transcriber"
)

var version = "dev"

func main() {
	configPath := flag.String("config", "", "config file path (default ~/.config/whisper-toggle/config.json)")
	logPath := flag.String("logpath", "", "log directory (default OS-specific)")
	modelFlag := flag.String("model", "", "whisper model size: tiny/base/small/medium/large")
	langFlag := flag.String("lang", "", "transcription language, or 'auto'")
	deviceFlag := flag.String("device", "", "capture device name")
	setupFlag := flag.Bool("setup", false, "interactively pick the microphone and save it to the config")
	doctorFlag := flag.Bool("doctor", false, "run environment diagnostics and exit")
	versionFlag := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *versionFlag {
		fmt.Printf("whisper-toggle %s\n", version)
		return
	}

	var cfg config.Config
	var err error
	if *configPath != "" {
		cfg, err = config.LoadFrom(*configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	if *modelFlag != "" {
		cfg.ModelSize = *modelFlag
	}
	if *langFlag != "" {
		cfg.Language = *langFlag
	}
	if *deviceFlag != "" {
		cfg.AudioDeviceName = *deviceFlag
		cfg.AudioDeviceIndex = -1
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	if *setupFlag {
		os.Exit(runSetup(cfg))
	}
	if *doctorFlag {
		os.Exit(doctor.Run(&cfg))
	}

	logDir, err := log.ResolveDir(*logPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "log path: %v\n", err)
		os.Exit(1)
	}
	log.SetDir(logDir)
	if err := log.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "log init: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	if err := run(cfg); err != nil {
		log.Errorf("fatal: %v", err)
		fmt.Fprintf(os.Stderr, "whisper-toggle: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg config.Config) error {
	engine, err := transcriber.NewWhisper(transcriber.WhisperConfig{
		BinPath:   cfg.WhisperBin,
		ModelPath: cfg.ModelPath(),
		Language:  language(cfg.Language),
	})
	if err != nil {
		return err
	}

	injector, err := inject.New(cfg.OutputMethod)
	if err != nil {
		return err
	}

	actx, err := audio.NewContext()
	if err != nil {
		return fmt.Errorf("audio: %w", err)
	}
	defer actx.Close()

	device, err := audio.FindDevice(actx, cfg.AudioDeviceName, cfg.AudioDeviceIndex)
	if err != nil {
		return err
	}
	deviceName := "system default"
	if device != nil {
		deviceName = device.Name
	}

	newSource := func() (frameSource, error) {
		dev, err := actx.NewCapture(device, audio.CaptureConfig{
			SampleRate: uint32(cfg.SampleRate),
			Channels:   1,
		})
		if err != nil {
			return nil, err
		}
		return audio.NewFrameSource(dev, audio.SourceConfig{
			InputRate: cfg.SampleRate,
			Threshold: cfg.SilenceThreshold,
			Gain:      cfg.AudioGain,
		}), nil
	}

	var sinks []indicator.Sink
	if cfg.ShowNotifications {
		sinks = append(sinks, indicator.NewNotifier())
	}
	if cfg.PlaySounds {
		sinks = append(sinks, indicator.NewBeeper())
	}
	var statusFile *indicator.StatusFile
	if cfg.WriteStatusFile {
		statusFile = indicator.NewStatusFile("")
		sinks = append(sinks, statusFile)
	}
	sink := indicator.NewMulti(sinks...)

	monitor := hotkey.New(hotkey.Options{
		KeyCode:  uint16(cfg.ToggleKeyCode),
		Debounce: time.Duration(cfg.DebounceMs) * time.Millisecond,
	})
	if err := monitor.Start(); err != nil {
		return fmt.Errorf("toggle key: %w", err)
	}
	defer monitor.Stop()

	archiveDir := ""
	if cfg.SaveRecordings {
		archiveDir = cfg.RecordingsDir
	}

	orch := newOrchestrator(orchestratorConfig{
		Monitor:    monitor,
		NewSource:  newSource,
		Engine:     engine,
		Injector:   injector,
		Sink:       sink,
		SampleRate: audio.EngineSampleRate,
		Trailing:   time.Duration(cfg.TrailingSilenceMs) * time.Millisecond,
		MaxSession: time.Duration(cfg.MaxSessionSeconds) * time.Second,
		ArchiveDir: archiveDir,
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	quit := make(chan os.Signal, 1)
	shutdown.Notify(quit)
	extToggle := make(chan os.Signal, 4)
	shutdown.NotifyToggle(extToggle)
	go func() {
		for {
			select {
			case <-extToggle:
				orch.Toggle()
			case <-ctx.Done():
				return
			}
		}
	}()

	log.SessionStart(cfg.ModelSize, cfg.Language, deviceName)
	fmt.Printf("whisper-toggle %s: model %s, device %s\n", version, cfg.ModelSize, deviceName)
	fmt.Println("press the toggle key (or send SIGUSR1) to dictate, Ctrl+C to quit")

	done := make(chan struct{})
	go func() {
		orch.run(ctx)
		close(done)
	}()

	<-quit
	cancel()
	<-done
	if statusFile != nil {
		statusFile.Remove()
	}
	sink.Wait()
	return nil
}

// language maps the config value to whisper.cpp's -l argument, where
// "auto" enables detection.
func language(lang string) string {
	if lang == "" {
		return "auto"
	}
	return lang
}
